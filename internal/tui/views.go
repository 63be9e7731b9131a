package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/questionnaire"
)

func (m Model) renderHeader() string {
	return m.theme.Title.Render(cli.WindowIcon + " Window Replacement Advisor")
}

// renderQuestion renders the current wizard step.
func (m Model) renderQuestion() string {
	q := m.session.Current()
	step := m.session.Step()
	total := m.session.Len()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(step) / float64(total)))
	b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  Question %d of %d", step+1, total)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Bold.Render(q.Title))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(q.Explanation))
	b.WriteString("\n\n")

	if q.Kind == questionnaire.KindLocation {
		b.WriteString(m.renderLocation())
	} else {
		b.WriteString(m.renderOptions(q))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusWarning.Render(cli.WarningIcon + " " + m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderLocation() string {
	var b strings.Builder
	b.WriteString(m.location.View())
	b.WriteString("\n")

	if m.detected != "" {
		b.WriteString(m.theme.Faint.Render("Detected: " + m.detected))
		b.WriteString("\n")
	}

	if zone := climate.Lookup(m.location.Value()); zone.Known {
		b.WriteString(m.theme.StatusInfo.Render(cli.HomeIcon + " Climate zone " + zone.Label()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOptions(q questionnaire.Question) string {
	var b strings.Builder
	for i, o := range q.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.Cursor.Render("> ")
		}

		mark := "( )"
		if q.Kind == questionnaire.KindCheckbox {
			mark = "[ ]"
		}
		selected := m.session.Selected(o.Value)
		if selected {
			mark = "(•)"
			if q.Kind == questionnaire.KindCheckbox {
				mark = "[x]"
			}
		}

		label := mark + " " + o.Label
		if selected {
			label = m.theme.Selected.Render(label)
		} else {
			label = m.theme.Normal.Render(label)
		}

		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(m.theme.Faint.Render(o.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderScoring() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderHeader(),
		m.spinner.View()+" Scoring windows for "+m.session.Answers().Location()+"...",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderResults renders the ranked list, the selected card and the chat panel.
func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%s · Climate zone %s",
		m.session.Answers().Location(), m.zone.Label())))
	b.WriteString("\n\n")

	if len(m.recs) == 0 {
		b.WriteString(m.theme.StatusWarning.Render("No windows match your selections. Press Esc to change window types."))
		b.WriteString("\n")
	} else {
		for i, rec := range m.recs {
			cursor := "  "
			if i == m.cursor {
				cursor = m.theme.Cursor.Render("> ")
			}
			line := fmt.Sprintf("%d. %s  Score %d  $%d per window", i+1, rec.Product.DisplayName(), rec.Score, rec.Pricing.Total)
			if i == m.cursor {
				line = m.theme.Selected.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(cli.RenderCard(m.cursor+1, m.recs[m.cursor]))
		b.WriteString("\n")
	}

	b.WriteString(m.renderChat())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderChat() string {
	var lines []string
	lines = append(lines, m.theme.Bold.Render(cli.ChatIcon+" Questions about windows"))
	for _, e := range m.chat {
		lines = append(lines, m.theme.Cursor.Render("You: ")+e.question)
		lines = append(lines, e.reply, "")
	}
	if m.chatFocused {
		lines = append(lines, m.chatInput.View())
	} else {
		lines = append(lines, m.theme.Faint.Render("Press c to ask about cost, energy or materials"))
	}
	return m.theme.ChatBox.Render(strings.Join(lines, "\n"))
}
