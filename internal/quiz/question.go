// Package quiz defines question and status types and judges user answers.
package quiz

import "fmt"

// Kind enumerates the closed set of question types.
type Kind int

const (
	TrueFalse Kind = iota
	MultipleChoice
	FillBlank
	CodeCompletion
)

func (k Kind) String() string {
	switch k {
	case TrueFalse:
		return "true_false"
	case MultipleChoice:
		return "multiple_choice"
	case FillBlank:
		return "fill_blank"
	case CodeCompletion:
		return "code_completion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a content-file identifier to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "true_false":
		return TrueFalse, nil
	case "multiple_choice":
		return MultipleChoice, nil
	case "fill_blank":
		return FillBlank, nil
	case "code_completion":
		return CodeCompletion, nil
	default:
		return 0, fmt.Errorf("unknown question kind %q", s)
	}
}

// Question is one quiz item. Questions are owned by the chapter content
// provider and are never mutated here. Choices is only used for
// MultipleChoice; Difficulty (1–3) is informational.
type Question struct {
	Prompt     string
	Expected   string
	Kind       Kind
	Choices    []string
	Hint       string
	Difficulty int
}
