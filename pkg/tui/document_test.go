package tui

import (
	"testing"

	"github.com/praxly/praxly-cli/pkg/editor"
	"github.com/praxly/praxly-cli/pkg/models"
)

func lessonFixture(exerciseID, initialCode string) *models.Lesson {
	return &models.Lesson{
		Name: "Fixture Lesson",
		Slug: "fixture",
		Exercises: []models.Exercise{
			{
				ID:           exerciseID,
				Title:        "Fixture Exercise",
				Instructions: "Do the thing.",
				InitialCode:  initialCode,
				Language:     "go",
			},
		},
	}
}

func TestDocumentHostSurface(t *testing.T) {
	lesson := lessonFixture("ex1", "print(1)")
	doc := NewDocument(lesson, nil, true, true)

	if _, ok := doc.Field("code-ex1"); !ok {
		t.Error("backing field not resolvable by derived id")
	}
	if _, ok := doc.Trigger("run-ex1"); !ok {
		t.Error("run trigger not resolvable by derived id")
	}
	if _, ok := doc.Output("output-ex1"); !ok {
		t.Error("output panel not resolvable by derived id")
	}
	if _, ok := doc.Field("code-nope"); ok {
		t.Error("unknown field id resolved")
	}

	ids := doc.FieldIDs()
	if len(ids) != 1 || ids[0] != "code-ex1" {
		t.Errorf("FieldIDs() = %v", ids)
	}

	if !doc.DebugEnabled() || !doc.TuningEnabled() {
		t.Error("session flags not carried through")
	}
}

func TestDocumentInitialContentEncoding(t *testing.T) {
	lesson := lessonFixture("ex1", "line one\n\tline two")
	doc := NewDocument(lesson, nil, false, false)

	f := doc.FieldFor("ex1")
	declared, ok := f.InitialContent()
	if !ok {
		t.Fatal("declared initial content missing")
	}
	if declared != `line one\n\tline two` {
		t.Errorf("declared initial = %q", declared)
	}
	if got := editor.DecodeInitial(declared); got != "line one\n\tline two" {
		t.Errorf("decoded initial = %q", got)
	}
}

func TestDocumentProgressSeedsFieldValue(t *testing.T) {
	lesson := lessonFixture("ex1", "starter")
	doc := NewDocument(lesson, map[string]string{"ex1": "my work"}, false, false)

	if got := doc.FieldFor("ex1").Value(); got != "my work" {
		t.Errorf("field value = %q, expected saved progress", got)
	}
}

func TestRunTrigger(t *testing.T) {
	trig := &RunTrigger{}
	fired := 0
	trig.OnFire(func() { fired++ })

	trig.Fire()
	trig.Fire()
	if trig.Fired() != 2 || fired != 2 {
		t.Errorf("Fired() = %d, callback count = %d", trig.Fired(), fired)
	}
}

func TestOutputPanel(t *testing.T) {
	p := &OutputPanel{}
	if p.Visible() {
		t.Error("panel visible before Show")
	}
	p.Show("result")
	if !p.Visible() || p.Content() != "result" {
		t.Errorf("after Show: visible=%v content=%q", p.Visible(), p.Content())
	}
	p.Hide()
	if p.Visible() || p.Content() != "" {
		t.Errorf("after Hide: visible=%v content=%q", p.Visible(), p.Content())
	}
}

func TestDocumentBoundByController(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		progress map[string]string
		want     string
	}{
		{
			name:     "saved progress wins over starter code",
			initial:  "starter",
			progress: map[string]string{"ex1": "resumed work"},
			want:     "resumed work",
		},
		{
			name:    "starter code seeds a fresh exercise",
			initial: "func main() {\n}",
			want:    "func main() {\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(lessonFixture("ex1", tt.initial), tt.progress, false, false)
			c := editor.New(doc, widgetFactory{})
			c.BindAll(editor.DefaultConfig())
			c.Scheduler().Flush()

			if !doc.FieldFor("ex1").Hidden() {
				t.Error("backing field not hidden after bind")
			}
			b, ok := c.Get("code-ex1")
			if !ok {
				t.Fatal("binding missing")
			}
			if got := b.Widget.Value(); got != tt.want {
				t.Errorf("widget value = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestDocumentResetThroughController(t *testing.T) {
	doc := NewDocument(lessonFixture("ex1", "starter\ncode"), map[string]string{"ex1": "edited"}, false, false)
	c := editor.New(doc, widgetFactory{})
	c.BindAll(editor.DefaultConfig())
	c.Scheduler().Flush()

	doc.OutputFor("ex1").Show("stale output")
	c.Reset("ex1")

	b, _ := c.Get("code-ex1")
	if got := b.Widget.Value(); got != "starter\ncode" {
		t.Errorf("widget value after reset = %q", got)
	}
	if doc.OutputFor("ex1").Visible() {
		t.Error("output panel still visible after reset")
	}
}
