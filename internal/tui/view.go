package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ritual/internal/gamification"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateAddHabit && m.form != nil {
		var b strings.Builder
		b.WriteString(titleStyle.Render("New Habit"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
		if m.formError != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.formError))
		}
		return docStyle.Render(b.String())
	}

	var b strings.Builder

	level, next := gamification.LevelForXP(m.progress.TotalXP)
	b.WriteString(titleStyle.Render("ritual"))
	b.WriteString("  ")
	b.WriteString(levelStyle.Render(fmt.Sprintf("%s %s", level.Icon, level.Name)))
	if next != nil {
		b.WriteString(fmt.Sprintf("  %d / %d XP", m.progress.TotalXP, next.XPRequired))
	} else {
		b.WriteString(fmt.Sprintf("  %d XP", m.progress.TotalXP))
	}
	b.WriteString("\n")
	b.WriteString(m.xpBar.ViewAs(m.xpPercent()))
	b.WriteString("\n\n")

	if len(m.due) == 0 {
		b.WriteString(pendingStyle.Render("Nothing due today. Press 'a' to add a habit."))
		b.WriteString("\n")
	} else {
		for i, d := range m.due {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			mark := "[ ]"
			name := pendingStyle.Render(d.Habit.Name)
			if d.Done {
				mark = doneStyle.Render("[x]")
				name = doneStyle.Render(d.Habit.Name)
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, name))
		}
	}

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.formError))
		b.WriteString("\n")
	}
	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(rewardStyle.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
