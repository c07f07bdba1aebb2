package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/gamification"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/recurrence"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/tracker"
	"github.com/julianstephens/ritual/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.xpBar.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.KeyMsg:
		if m.state == stateDashboard {
			return m.updateDashboard(msg)
		}
	}

	if m.state == stateAddHabit && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			m.submitHabitForm()
			return m, cmd
		}
		if m.form.State == huh.StateAborted {
			m.state = stateDashboard
			m.form = nil
			m.habitForm = nil
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return *m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.due)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.markCurrent()

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{
			Category:  string(models.CategoryOther),
			Frequency: string(models.FrequencyDaily),
		}
		m.form = newHabitForm(m.habitForm)
		m.state = stateAddHabit
		return *m, m.form.Init()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return *m, nil
}

// markCurrent logs a completion for the habit under the cursor and
// surfaces the resulting reward as a flash message.
func (m *Model) markCurrent() {
	if m.cursor >= len(m.due) {
		return
	}
	d := m.due[m.cursor]
	if d.Done {
		m.flash = fmt.Sprintf("%q is already done for today", d.Habit.Name)
		return
	}

	reward, err := m.tracker.LogCompletion(d.Habit, tracker.CompletionOptions{})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEntry) {
			m.flash = fmt.Sprintf("%q is already done for today", d.Habit.Name)
		} else {
			m.flash = errorStyle.Render(fmt.Sprintf("failed to log completion: %v", err))
		}
		m.refresh()
		return
	}

	parts := []string{fmt.Sprintf("+%d XP", reward.XPEarned)}
	if reward.LevelUp {
		parts = append(parts, fmt.Sprintf("LEVEL UP → %s %s!", reward.Level.Icon, reward.Level.Name))
	}
	for _, id := range reward.NewBadges {
		if badge, ok := gamification.BadgeCatalog[id]; ok {
			parts = append(parts, fmt.Sprintf("%s %s unlocked", badge.Icon, badge.Name))
		}
	}
	m.flash = strings.Join(parts, "  ·  ")
	m.refresh()
}

func (m *Model) submitHabitForm() {
	fm := m.habitForm
	m.state = stateDashboard
	m.form = nil
	m.habitForm = nil
	if fm == nil {
		return
	}

	habit := models.Habit{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(fm.Name),
		Category: models.Category(fm.Category),
		Recurrence: models.Recurrence{
			Type:  models.FrequencyType(fm.Frequency),
			Value: strings.TrimSpace(fm.Value),
		},
		TargetValue: constants.DefaultTargetValue,
		TargetUnit:  constants.DefaultTargetUnit,
		CreatedAt:   time.Now(),
	}
	if habit.Recurrence.Type == models.FrequencyDaysOfWeek {
		var tokens []string
		for _, wd := range recurrence.ParseWeekdays(habit.Recurrence.Value) {
			tokens = append(tokens, wd.String()[:3])
		}
		habit.Recurrence.Value = strings.Join(tokens, ",")
	}

	if err := validation.ValidateHabit(habit); err != nil {
		m.formError = err.Error()
		return
	}
	if _, err := m.store.GetHabitByName(habit.Name); err == nil {
		m.formError = fmt.Sprintf("habit with name %q already exists", habit.Name)
		return
	}

	if err := m.store.AddHabit(habit); err != nil {
		m.formError = err.Error()
		return
	}

	m.formError = ""
	m.flash = fmt.Sprintf("Added habit %q", habit.Name)
	m.refresh()
}
