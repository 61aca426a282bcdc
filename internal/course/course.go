// Package course supplies the chapter content: reading material, learning
// objectives, and the ordered questions of each quiz. Content is declared in
// YAML; the default course ships embedded in the binary.
package course

import (
	_ "embed"
	"fmt"

	"github.com/dmitrijs2005/codetutor/internal/quiz"
	"gopkg.in/yaml.v3"
)

//go:embed chapters.yaml
var defaultContent []byte

// Chapter is one unit of course content paired with zero or more quiz
// questions. Chapters are immutable after loading.
type Chapter struct {
	Number           int
	Title            string
	Body             string
	Objectives       []string
	EstimatedMinutes int
	Exam             bool
	Certificate      bool
	Questions        []quiz.Question
}

// Course is an ordered sequence of chapters, numbered from 1.
type Course struct {
	chapters []Chapter
}

type questionSpec struct {
	Prompt     string   `yaml:"prompt"`
	Expected   string   `yaml:"expected"`
	Kind       string   `yaml:"kind"`
	Choices    []string `yaml:"choices"`
	Hint       string   `yaml:"hint"`
	Difficulty int      `yaml:"difficulty"`
}

type chapterSpec struct {
	Number           int            `yaml:"number"`
	Title            string         `yaml:"title"`
	Body             string         `yaml:"body"`
	Objectives       []string       `yaml:"objectives"`
	EstimatedMinutes int            `yaml:"estimated_minutes"`
	Exam             bool           `yaml:"exam"`
	Certificate      bool           `yaml:"certificate"`
	Questions        []questionSpec `yaml:"questions"`
}

type courseSpec struct {
	Chapters []chapterSpec `yaml:"chapters"`
}

// Load parses and validates course content. The validation pass rejects
// content errors that would otherwise surface at grading time: unknown
// question kinds, TrueFalse expected answers outside the alias tables, and
// multiple-choice questions without enough choices.
func Load(data []byte) (*Course, error) {
	var spec courseSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse course content: %w", err)
	}
	if len(spec.Chapters) == 0 {
		return nil, fmt.Errorf("course content has no chapters")
	}

	chapters := make([]Chapter, 0, len(spec.Chapters))
	for i, cs := range spec.Chapters {
		if cs.Number != i+1 {
			return nil, fmt.Errorf("chapter %q: expected number %d, got %d", cs.Title, i+1, cs.Number)
		}
		if cs.Title == "" {
			return nil, fmt.Errorf("chapter %d: missing title", cs.Number)
		}

		ch := Chapter{
			Number:           cs.Number,
			Title:            cs.Title,
			Body:             cs.Body,
			Objectives:       cs.Objectives,
			EstimatedMinutes: cs.EstimatedMinutes,
			Exam:             cs.Exam,
			Certificate:      cs.Certificate,
		}

		for qi, qs := range cs.Questions {
			q, err := buildQuestion(qs)
			if err != nil {
				return nil, fmt.Errorf("chapter %d, question %d: %w", cs.Number, qi+1, err)
			}
			ch.Questions = append(ch.Questions, q)
		}

		if ch.Certificate && len(ch.Questions) > 0 {
			return nil, fmt.Errorf("chapter %d: certificate chapter cannot carry questions", cs.Number)
		}

		chapters = append(chapters, ch)
	}

	return &Course{chapters: chapters}, nil
}

// Default loads the embedded course.
func Default() (*Course, error) {
	return Load(defaultContent)
}

func buildQuestion(qs questionSpec) (quiz.Question, error) {
	kind, err := quiz.ParseKind(qs.Kind)
	if err != nil {
		return quiz.Question{}, err
	}
	if qs.Prompt == "" {
		return quiz.Question{}, fmt.Errorf("missing prompt")
	}
	if qs.Expected == "" {
		return quiz.Question{}, fmt.Errorf("missing expected answer")
	}

	switch kind {
	case quiz.TrueFalse:
		if !quiz.IsBoolAnswer(qs.Expected) {
			return quiz.Question{}, fmt.Errorf("true/false expected answer %q is not a recognized alias", qs.Expected)
		}
	case quiz.MultipleChoice:
		if len(qs.Choices) < 2 {
			return quiz.Question{}, fmt.Errorf("multiple-choice question needs at least 2 choices")
		}
	}

	if qs.Difficulty < 0 || qs.Difficulty > 3 {
		return quiz.Question{}, fmt.Errorf("difficulty %d out of range", qs.Difficulty)
	}

	return quiz.Question{
		Prompt:     qs.Prompt,
		Expected:   qs.Expected,
		Kind:       kind,
		Choices:    qs.Choices,
		Hint:       qs.Hint,
		Difficulty: qs.Difficulty,
	}, nil
}

// Count returns the number of chapters, including the certificate chapter.
func (c *Course) Count() int {
	return len(c.chapters)
}

// Chapter returns chapter n (1-based).
func (c *Course) Chapter(n int) (Chapter, bool) {
	if n < 1 || n > len(c.chapters) {
		return Chapter{}, false
	}
	return c.chapters[n-1], true
}

// Chapters returns all chapters in order.
func (c *Course) Chapters() []Chapter {
	return c.chapters
}

// QuizzableCount returns the number of chapters that carry a quiz.
func (c *Course) QuizzableCount() int {
	n := 0
	for _, ch := range c.chapters {
		if len(ch.Questions) > 0 {
			n++
		}
	}
	return n
}
