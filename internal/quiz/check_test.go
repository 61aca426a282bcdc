package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_TrueFalse(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		answer   string
		want     bool
	}{
		{"short alias", "true", "T", true},
		{"yes alias", "true", "yes", true},
		{"numeric alias", "true", "1", true},
		{"false via yes", "false", "yes", false},
		{"false matched", "false", "no", true},
		{"whitespace trimmed", "true", "  True  ", true},
		{"mismatch", "true", "f", false},
		{"unrecognized answer", "true", "maybe", false},
		{"misconfigured expected always false", "yep", "yep", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{Prompt: "p", Expected: tc.expected, Kind: TrueFalse}
			assert.Equal(t, tc.want, Check(q, tc.answer))
		})
	}
}

func TestCheck_MultipleChoice(t *testing.T) {
	q := Question{
		Prompt:   "Which keyword defines a function?",
		Expected: "a",
		Kind:     MultipleChoice,
		Choices:  []string{"def", "func", "fn", "lambda"},
	}

	assert.True(t, Check(q, "A"), "letter shorthand is case-insensitive")
	assert.True(t, Check(q, " a "), "letter shorthand is whitespace-trimmed")
	assert.False(t, Check(q, "b"))

	full := Question{Prompt: "p", Expected: "def", Kind: MultipleChoice}
	assert.True(t, Check(full, "DEF"), "full text compares when answer is longer than one char")
	assert.True(t, Check(full, "d"), "single char compares against first char of expected")
	assert.False(t, Check(full, "de"))
}

func TestCheck_FillBlank(t *testing.T) {
	q := Question{Prompt: "Python file extension?", Expected: ".py", Kind: FillBlank}

	assert.True(t, Check(q, " .PY "))
	assert.True(t, Check(q, ".py"))
	assert.False(t, Check(q, "py"))
	assert.False(t, Check(q, ".pyc"))
}

func TestCheck_CodeCompletion(t *testing.T) {
	q := Question{Prompt: "Complete: ___ name:", Expected: "def", Kind: CodeCompletion}

	assert.True(t, Check(q, "def"))
	assert.True(t, Check(q, "  DEF"))
	assert.False(t, Check(q, "define"))
}

func TestIsBoolAnswer(t *testing.T) {
	for _, s := range []string{"true", "T", " yes ", "N", "0", "1"} {
		assert.True(t, IsBoolAnswer(s), "%q should be recognized", s)
	}
	for _, s := range []string{"maybe", "", "2", "yeah"} {
		assert.False(t, IsBoolAnswer(s), "%q should be rejected", s)
	}
}

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Kind
	}{
		{"true_false", TrueFalse},
		{"multiple_choice", MultipleChoice},
		{"fill_blank", FillBlank},
		{"code_completion", CodeCompletion},
	} {
		got, err := ParseKind(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}

	_, err := ParseKind("essay")
	assert.Error(t, err)
}
