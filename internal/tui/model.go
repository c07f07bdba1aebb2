package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ritual/internal/gamification"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/tracker"
	"github.com/julianstephens/ritual/internal/utils"
)

type sessionState int

const (
	stateDashboard sessionState = iota
	stateAddHabit
)

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Name      string
	Category  string
	Frequency string
	Value     string
}

type Model struct {
	store     storage.Provider
	tracker   *tracker.Service
	state     sessionState
	keys      KeyMap
	help      help.Model
	xpBar     progress.Model
	due       []tracker.DueHabit
	progress  models.UserProgress
	cursor    int
	form      *huh.Form
	habitForm *HabitFormModel
	flash     string // reward / badge message shown after marking done
	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, svc *tracker.Service) Model {
	m := Model{
		store:   store,
		tracker: svc,
		state:   stateDashboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		xpBar:   progress.New(progress.WithDefaultGradient()),
	}
	m.refresh()
	return m
}

// refresh reloads the due list and progress from the store.
func (m *Model) refresh() {
	due, err := m.tracker.DueToday(utils.Today())
	if err == nil {
		m.due = due
	}
	if p, err := m.store.GetProgress(); err == nil {
		m.progress = p
	}
	if m.cursor >= len(m.due) {
		m.cursor = 0
	}
}

// xpPercent returns progress toward the next level as a fraction.
func (m Model) xpPercent() float64 {
	current, next := gamification.LevelForXP(m.progress.TotalXP)
	if next == nil {
		return 1.0
	}
	needed := next.XPRequired - current.XPRequired
	have := m.progress.TotalXP - current.XPRequired
	if needed <= 0 {
		return 1.0
	}
	pct := float64(have) / float64(needed)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("daily", string(models.FrequencyDaily)),
					huh.NewOption("specific weekdays", string(models.FrequencyDaysOfWeek)),
					huh.NewOption("weekly", string(models.FrequencyWeekly)),
					huh.NewOption("every other week", string(models.FrequencyBiweekly)),
					huh.NewOption("monthly", string(models.FrequencyMonthly)),
					huh.NewOption("every other month", string(models.FrequencyBimonthly)),
					huh.NewOption("every N days", string(models.FrequencyCustom)),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Parameter").
				Description("Weekday list (Mon,Wed,Fri), weekday, day of month, or interval; blank for daily.").
				Value(&fm.Value),
		),
	)
}
