package quiz

import "strings"

var trueAliases = map[string]struct{}{
	"true": {}, "t": {}, "yes": {}, "y": {}, "1": {},
}

var falseAliases = map[string]struct{}{
	"false": {}, "f": {}, "no": {}, "n": {}, "0": {},
}

// Normalize trims surrounding whitespace and lowercases an answer. Both the
// user's answer and the expected answer pass through it before comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BoolAlias maps a normalized answer to its boolean class. The second return
// is false when the input belongs to neither alias set.
func BoolAlias(s string) (value, ok bool) {
	if _, isTrue := trueAliases[s]; isTrue {
		return true, true
	}
	if _, isFalse := falseAliases[s]; isFalse {
		return false, true
	}
	return false, false
}

// IsBoolAnswer reports whether raw input is a recognized true/false alias.
// The CLI uses it to reject unrecognized TrueFalse input before grading.
func IsBoolAnswer(s string) bool {
	_, ok := BoolAlias(Normalize(s))
	return ok
}

// Check judges a user's answer against the question's expected answer.
// Comparison is case- and whitespace-insensitive for every kind.
//
//   - TrueFalse: both sides resolve through the alias tables and the boolean
//     classes are compared. An expected answer outside both alias sets is a
//     content configuration error; the checker then always returns false.
//   - MultipleChoice: a single-character answer is letter-choice shorthand
//     and compares against the first character of the expected answer;
//     anything longer compares as full text.
//   - FillBlank, CodeCompletion: exact normalized equality, no fuzzy
//     matching and no partial credit.
func Check(q Question, answer string) bool {
	got := Normalize(answer)
	want := Normalize(q.Expected)

	switch q.Kind {
	case TrueFalse:
		wantBool, ok := BoolAlias(want)
		if !ok {
			return false
		}
		gotBool, ok := BoolAlias(got)
		return ok && gotBool == wantBool

	case MultipleChoice:
		gr := []rune(got)
		wr := []rune(want)
		if len(gr) == 1 && len(wr) > 0 {
			return gr[0] == wr[0]
		}
		return got == want

	default:
		return got == want
	}
}
