package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/praxly/praxly-cli/pkg/editor"
	"github.com/praxly/praxly-cli/pkg/files"
	"github.com/praxly/praxly-cli/pkg/models"
)

type viewState int

const (
	lessonListView viewState = iota
	exerciseView
)

// widgetFactory builds the real textarea-backed widgets for the controller
type widgetFactory struct{}

func (widgetFactory) New(cfg editor.Config) (editor.Widget, error) {
	return NewTextareaWidget(cfg), nil
}

// App is the playground's top-level bubbletea model: a lesson picker and,
// per opened lesson, one synchronized editor per exercise.
type App struct {
	settings *models.Settings
	keys     KeyMap
	state    viewState

	lessons []*models.Lesson
	cursor  int

	doc         *Document
	controller  *editor.Controller
	exerciseIdx int

	instructions viewport.Model
	paste        *PasteHelper
	debugView    *DebugView
	log          editor.Logger

	width  int
	height int
	status string
	err    error
}

// NewApp loads settings and lessons from the workspace and builds the model
func NewApp() *App {
	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	var lessons []*models.Lesson
	slugs, _ := files.ListLessons()
	for _, slug := range slugs {
		if lesson, err := files.ReadLesson(slug); err == nil {
			lessons = append(lessons, lesson)
		}
	}

	debug := settings.Debug.Enabled || DebugEnabled()
	return &App{
		settings:     settings,
		keys:         DefaultKeyMap(),
		lessons:      lessons,
		paste:        NewPasteHelper(),
		debugView:    NewDebugView(debug),
		instructions: viewport.New(settings.UI.InstructionsCols, 16),
		log:          editor.NopLogger(),
	}
}

// SetLogger wires the logger handed to every lesson's sync controller
func (a *App) SetLogger(l editor.Logger) {
	if l != nil {
		a.log = l
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.debugView.AddEvent(msg)
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.debugView.SetWidth(msg.Width)
		a.layout()

	case tea.MouseMsg:
		if a.state == exerciseView {
			if w := a.currentWidget(); w != nil {
				w.HandleMouse(msg)
			}
		}

	case tea.KeyMsg:
		switch a.state {
		case lessonListView:
			cmds = append(cmds, a.updateLessonList(msg))
		case exerciseView:
			cmds = append(cmds, a.updateExercise(msg))
		}

	default:
		if w := a.currentWidget(); w != nil {
			cmds = append(cmds, w.Update(msg))
		}
	}

	// One processed message is one rendering opportunity.
	if a.controller != nil {
		a.controller.Scheduler().Flush()
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updateLessonList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.lessons)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Select):
		if len(a.lessons) > 0 {
			return a.openLesson(a.lessons[a.cursor])
		}
	}
	return nil
}

// openLesson builds the host document for a lesson, binds every exercise
// field and focuses the first editor.
func (a *App) openLesson(lesson *models.Lesson) tea.Cmd {
	progress := make(map[string]string)
	for _, ex := range lesson.Exercises {
		if code, err := files.LoadProgress(ex.ID); err == nil && code != "" {
			progress[ex.ID] = code
		}
	}

	debug := a.settings.Debug.Enabled || DebugEnabled()
	a.doc = NewDocument(lesson, progress, debug, a.settings.Debug.EventTuning)
	a.controller = editor.New(a.doc, widgetFactory{})
	a.controller.SetLogger(a.log)
	a.controller.BindAll(a.settings.Editor)

	for _, ex := range lesson.Exercises {
		exID := ex.ID
		out := a.doc.OutputFor(exID)
		fieldID := editor.FieldID(exID)
		a.doc.RunTriggerFor(exID).OnFire(func() {
			code := a.controller.Value(fieldID)
			out.Show(fmt.Sprintf("run requested for %s (%d lines submitted)", exID, CountLines(code)))
		})
	}

	a.exerciseIdx = 0
	a.state = exerciseView
	a.status = ""
	a.layout()

	// Seed the widgets before the first paint of the exercise view.
	a.controller.Scheduler().Flush()
	return a.focusCurrent()
}

func (a *App) updateExercise(msg tea.KeyMsg) tea.Cmd {
	ex := a.currentExercise()
	if ex == nil {
		a.state = lessonListView
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.saveProgress()
		return tea.Quit

	case key.Matches(msg, a.keys.Back):
		a.saveProgress()
		if w := a.currentWidget(); w != nil {
			w.Blur()
		}
		a.state = lessonListView
		a.status = ""
		return nil

	case key.Matches(msg, a.keys.Run):
		if t := a.doc.RunTriggerFor(ex.ID); t != nil {
			t.Fire()
		}
		a.status = "run requested"
		return nil

	case key.Matches(msg, a.keys.Reset):
		a.controller.Reset(ex.ID)
		if err := files.ResetProgress(ex.ID); err != nil {
			a.err = err
		}
		a.status = "exercise reset"
		return nil

	case key.Matches(msg, a.keys.Paste):
		if w := a.currentWidget(); w != nil {
			content, err := a.paste.ReadClipboard()
			if err != nil {
				a.status = "clipboard unavailable"
				return nil
			}
			w.InsertString(content)
			a.status = fmt.Sprintf("pasted %d lines", CountLines(content))
		}
		return nil

	case key.Matches(msg, a.keys.NextEx):
		return a.switchExercise(1)

	case key.Matches(msg, a.keys.PrevEx):
		return a.switchExercise(-1)
	}

	if b, ok := a.controller.Get(editor.FieldID(ex.ID)); ok && b.Degraded() {
		field := a.doc.FieldFor(ex.ID)
		b.Fallback().HandleKey(msg.String(), len([]rune(field.Value())))
		return nil
	}

	w := a.currentWidget()
	if w == nil {
		return nil
	}
	// Keydown observers and their deferred checks run before the edit
	// itself is applied, mirroring how the sync contract is specified.
	w.HandleKey(msg)
	a.controller.Scheduler().Flush()
	return w.Apply()
}

func (a *App) switchExercise(delta int) tea.Cmd {
	a.saveProgress()
	if w := a.currentWidget(); w != nil {
		w.Blur()
	}
	next := clampIndex(a.exerciseIdx+delta, len(a.doc.Lesson().Exercises))
	a.exerciseIdx = next
	a.status = ""
	a.layout()
	return a.focusCurrent()
}

// saveProgress persists the current exercise's editor content
func (a *App) saveProgress() {
	ex := a.currentExercise()
	if ex == nil || a.controller == nil {
		return
	}
	code := a.controller.Value(editor.FieldID(ex.ID))
	if err := files.SaveProgress(ex.ID, code); err != nil {
		a.err = err
	}
}

func (a *App) focusCurrent() tea.Cmd {
	if w := a.currentWidget(); w != nil {
		return w.Focus()
	}
	return nil
}

func (a *App) currentExercise() *models.Exercise {
	if a.doc == nil {
		return nil
	}
	exercises := a.doc.Lesson().Exercises
	if a.exerciseIdx < 0 || a.exerciseIdx >= len(exercises) {
		return nil
	}
	return &exercises[a.exerciseIdx]
}

func (a *App) currentWidget() *TextareaWidget {
	ex := a.currentExercise()
	if ex == nil || a.controller == nil {
		return nil
	}
	b, ok := a.controller.Get(editor.FieldID(ex.ID))
	if !ok || b.Widget == nil {
		return nil
	}
	w, _ := b.Widget.(*TextareaWidget)
	return w
}

func (a *App) layout() {
	cols := a.settings.UI.InstructionsCols
	if cols <= 0 {
		cols = 46
	}
	if a.width > 0 && cols > a.width/2 {
		cols = a.width / 2
	}
	a.instructions.Width = cols
	if a.height > 8 {
		a.instructions.Height = a.height - 8
	}
	if ex := a.currentExercise(); ex != nil {
		a.instructions.SetContent(a.renderInstructions(ex))
	}
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
