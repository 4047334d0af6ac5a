package models

import "time"

// Exercise is one in-editor coding task inside a lesson
type Exercise struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Instructions string `yaml:"instructions"`
	InitialCode  string `yaml:"initial_code"`
	Language     string `yaml:"language,omitempty"`
}

// Lesson is an ordered collection of exercises with prose around them
type Lesson struct {
	Name      string     `yaml:"name"`
	Slug      string     `yaml:"-"`
	Summary   string     `yaml:"summary,omitempty"`
	Exercises []Exercise `yaml:"exercises"`
	Modified  time.Time  `yaml:"-"`
}

// Exercise returns the exercise with the given id
func (l *Lesson) Exercise(id string) (*Exercise, bool) {
	for i := range l.Exercises {
		if l.Exercises[i].ID == id {
			return &l.Exercises[i], true
		}
	}
	return nil, false
}
