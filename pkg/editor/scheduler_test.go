package editor

import "testing"

func TestSchedulerFlushOrder(t *testing.T) {
	s := NewScheduler()
	var got []int
	for i := 0; i < 4; i++ {
		i := i
		s.Defer(func() { got = append(got, i) })
	}

	if ran := s.Flush(); ran != 4 {
		t.Fatalf("Flush() ran %d tasks, expected 4", ran)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task order = %v, expected scheduling order", got)
		}
	}
}

func TestSchedulerCancelAndReplace(t *testing.T) {
	s := NewScheduler()
	ran := ""

	var pending *Task
	schedule := func(name string) {
		if pending != nil {
			pending.Cancel()
		}
		pending = s.Defer(func() { ran += name })
	}

	schedule("a")
	schedule("b")
	schedule("c")

	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1 after cancel-and-replace", s.Pending())
	}
	s.Flush()
	if ran != "c" {
		t.Errorf("ran = %q, expected only the latest task", ran)
	}
}

func TestSchedulerDeferDuringFlush(t *testing.T) {
	s := NewScheduler()
	second := false
	s.Defer(func() {
		s.Defer(func() { second = true })
	})

	if ran := s.Flush(); ran != 1 {
		t.Fatalf("first Flush() ran %d, expected 1", ran)
	}
	if second {
		t.Fatal("nested task ran in the same flush")
	}
	if ran := s.Flush(); ran != 1 {
		t.Fatalf("second Flush() ran %d, expected 1", ran)
	}
	if !second {
		t.Fatal("nested task never ran")
	}
}

func TestSchedulerCancelAfterRunIsNoop(t *testing.T) {
	s := NewScheduler()
	n := 0
	task := s.Defer(func() { n++ })
	s.Flush()

	if !task.Done() {
		t.Error("Done() = false after flush")
	}
	task.Cancel()
	s.Flush()
	if n != 1 {
		t.Errorf("task ran %d times, expected 1", n)
	}
}
