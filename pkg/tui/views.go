package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/praxly/praxly-cli/pkg/editor"
	"github.com/praxly/praxly-cli/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	instructionsStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(lipgloss.Color("238")).
				PaddingRight(2).
				MarginRight(2)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func (a *App) View() string {
	var body string
	switch a.state {
	case lessonListView:
		body = a.viewLessonList()
	case exerciseView:
		body = a.viewExercise()
	}

	if debug := a.debugView.View(); debug != "" {
		body += "\n" + debug
	}
	return body
}

func (a *App) viewLessonList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Praxly — lessons"))
	b.WriteString("\n")

	if len(a.lessons) == 0 {
		b.WriteString(dimStyle.Render("No lessons found. Run 'praxly init' to scaffold a workspace."))
		b.WriteString("\n")
		return b.String()
	}

	for i, lesson := range a.lessons {
		line := fmt.Sprintf("  %s (%d exercises)", lesson.Name, len(lesson.Exercises))
		if i == a.cursor {
			line = selectedStyle.Render("> " + strings.TrimSpace(line))
		}
		b.WriteString(line)
		b.WriteString("\n")
		if lesson.Summary != "" {
			b.WriteString(dimStyle.Render("    " + lesson.Summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · enter open · ctrl+c quit"))
	return b.String()
}

func (a *App) viewExercise() string {
	ex := a.currentExercise()
	if ex == nil {
		return dimStyle.Render("lesson has no exercises")
	}

	var b strings.Builder
	header := fmt.Sprintf("%s · %s (%d/%d)",
		a.doc.Lesson().Name, ex.Title, a.exerciseIdx+1, len(a.doc.Lesson().Exercises))
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	editorPane := a.viewEditorPane(ex)
	if a.settings.UI.ShowInstructions {
		left := instructionsStyle.Render(a.instructions.View())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, editorPane))
	} else {
		b.WriteString(editorPane)
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(a.statusLine()))
	return b.String()
}

func (a *App) viewEditorPane(ex *models.Exercise) string {
	var b strings.Builder

	if bind, ok := a.controller.Get(editor.FieldID(ex.ID)); ok && bind.Degraded() {
		field := a.doc.FieldFor(ex.ID)
		b.WriteString(dimStyle.Render("editor unavailable — raw field (tab indents, ctrl+enter runs)"))
		b.WriteString("\n")
		b.WriteString(field.Value())
	} else if w := a.currentWidget(); w != nil {
		b.WriteString(w.View())
	}

	if out := a.doc.OutputFor(ex.ID); out != nil && out.Visible() {
		b.WriteString("\n")
		b.WriteString(outputStyle.Render(out.Content()))
	}
	return b.String()
}

func (a *App) renderInstructions(ex *models.Exercise) string {
	width := a.instructions.Width
	if width <= 0 {
		width = 46
	}
	text := ex.Instructions
	if text == "" {
		text = "No instructions for this exercise."
	}
	return wordwrap.String(text, width-2)
}

func (a *App) statusLine() string {
	parts := []string{"esc back · ctrl+r run · ctrl+x reset · ctrl+v paste · ctrl+←/→ switch"}
	if a.status != "" {
		parts = append([]string{a.status}, parts...)
	}
	line := strings.Join(parts, "  ·  ")
	if a.err != nil {
		line += "  " + errorStyle.Render(a.err.Error())
	}
	return line
}
