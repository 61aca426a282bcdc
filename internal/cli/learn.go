package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/codetutor/internal/course"
	"github.com/dmitrijs2005/codetutor/internal/quiz"
	"github.com/dmitrijs2005/codetutor/internal/student"
	"github.com/dmitrijs2005/codetutor/internal/tracker"
)

// chapterState drives the chapter flow. Transitions are explicit; failing a
// quiz loops back to presenting instead of recursing into the handler.
type chapterState int

const (
	statePresenting chapterState = iota
	stateQuizzing
	statePassed
	stateFailedRetry
	stateCompleted
)

// Learn shows the learning portal and runs the selected chapter.
func (a *App) Learn(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	a.showPortal()

	input, err := GetSimpleText(a.reader, "Chapter number (Enter for current)", a.out)
	if err != nil {
		return err
	}

	n := a.current.Progress
	if input != "" {
		n, err = strconv.Atoi(input)
		if err != nil || n < 1 || n > a.course.Count() {
			fmt.Fprintln(a.out, "Not a valid chapter number.")
			return nil
		}
		if a.chapterStatus(n) == quiz.Locked {
			fmt.Fprintln(a.out, "That chapter is still locked.")
			return nil
		}
	}

	ch, ok := a.course.Chapter(n)
	if !ok {
		fmt.Fprintln(a.out, "Not a valid chapter number.")
		return nil
	}
	return a.runChapter(ctx, ch)
}

func (a *App) chapterStatus(n int) quiz.ChapterStatus {
	switch {
	case n < a.current.Progress:
		return quiz.Completed
	case n == a.current.Progress:
		return quiz.Unlocked
	default:
		return quiz.Locked
	}
}

func (a *App) showPortal() {
	fmt.Fprintf(a.out, "\nWelcome back, %s!\n\n", a.current.Name)

	passed := 0
	for ch, score := range a.current.Scores {
		if score >= tracker.PassingScore && ch <= a.course.QuizzableCount() {
			passed++
		}
	}
	ratio := float64(passed) / float64(a.course.QuizzableCount())
	fmt.Fprintf(a.out, "Overall Progress: %s\n\n", student.ProgressBar(ratio, 40))

	fmt.Fprintln(a.out, "Course Chapters:")
	for _, ch := range a.course.Chapters() {
		scoreText := ""
		if score, ok := a.current.Scores[ch.Number]; ok {
			scoreText = fmt.Sprintf(" - Score: %d%%", score)
		}
		fmt.Fprintf(a.out, "%d. %-35s %s%s\n", ch.Number, ch.Title, a.chapterStatus(ch.Number), scoreText)
	}
	fmt.Fprintln(a.out)
}

// runChapter walks the chapter state machine until the student leaves the
// flow or the course completes.
func (a *App) runChapter(ctx context.Context, ch course.Chapter) error {
	state := statePresenting

	for {
		switch state {
		case statePresenting:
			a.presentChapter(ch)
			if ch.Certificate {
				state = stateCompleted
			} else {
				state = stateQuizzing
			}

		case stateQuizzing:
			score, err := a.administerQuiz(ch)
			if err != nil {
				return err
			}
			a.tracker.RecordScore(a.current, ch.Number, score)
			a.tracker.AddStudyTime(a.current, ch.EstimatedMinutes)
			if score >= tracker.PassingScore {
				state = statePassed
			} else {
				state = stateFailedRetry
			}

		case statePassed:
			a.tracker.AdvanceProgress(a.current, ch.Number+1)
			a.persist(ctx)
			fmt.Fprintf(a.out, "\nCongratulations! You scored %d%% and passed!\n", a.current.Scores[ch.Number])

			next, ok := a.course.Chapter(ch.Number + 1)
			if !ok {
				return nil
			}
			if !next.Certificate {
				cont, err := a.confirm("Continue to the next chapter?")
				if err != nil {
					return err
				}
				if !cont {
					fmt.Fprintln(a.out, "Your progress has been saved.")
					return nil
				}
			}
			ch = next
			state = statePresenting

		case stateFailedRetry:
			a.persist(ctx)
			fmt.Fprintf(a.out, "\nYou scored %d%%. You need at least %d%% to pass.\n",
				a.current.Scores[ch.Number], tracker.PassingScore)
			retry, err := a.confirm("Review the material and retry?")
			if err != nil {
				return err
			}
			if !retry {
				return nil
			}
			state = statePresenting

		case stateCompleted:
			path, err := student.WriteCertificate(a.certDir, a.current, a.now())
			if err != nil {
				a.logger.Error(ctx, "writing certificate", "username", a.current.Username, "error", err)
				fmt.Fprintln(a.out, "Could not generate the certificate. Please try again later.")
				return err
			}
			fmt.Fprintln(a.out, student.Certificate(a.current, a.now()))
			fmt.Fprintf(a.out, "Your certificate has been saved as %s\n", path)
			return nil
		}
	}
}

func (a *App) presentChapter(ch course.Chapter) {
	fmt.Fprintf(a.out, "\n%s\nChapter %d: %s\n%s\n\n", strings.Repeat("=", 60), ch.Number, ch.Title, strings.Repeat("=", 60))

	if len(ch.Objectives) > 0 {
		fmt.Fprintln(a.out, "Learning objectives:")
		for _, o := range ch.Objectives {
			fmt.Fprintf(a.out, "  * %s\n", o)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintln(a.out, ch.Body)
}

// administerQuiz asks every question of the chapter and returns the score
// as a 0–100 percentage.
func (a *App) administerQuiz(ch course.Chapter) (int, error) {
	if len(ch.Questions) == 0 {
		return 0, nil
	}

	if ch.Exam {
		fmt.Fprint(a.out, "\n* * * Final Exam * * *\n")
		fmt.Fprintf(a.out, "This exam covers the whole course. You need %d%% to pass.\n", tracker.PassingScore)
	} else {
		fmt.Fprintf(a.out, "\n* * * Quiz %d * * *\n", ch.Number)
	}

	correct := 0
	for i, q := range ch.Questions {
		fmt.Fprintf(a.out, "\n%d. %s\n", i+1, q.Prompt)

		if q.Kind == quiz.MultipleChoice {
			for j, choice := range q.Choices {
				fmt.Fprintf(a.out, "   %c) %s\n", 'a'+j, choice)
			}
		}
		if q.Hint != "" && a.current.Preferences.ShowHints {
			fmt.Fprintf(a.out, "   Hint: %s\n", q.Hint)
		}

		answer, err := a.readAnswer(q)
		if err != nil {
			return 0, err
		}

		if quiz.Check(q, answer) {
			fmt.Fprintln(a.out, "Correct!")
			correct++
		} else {
			fmt.Fprintln(a.out, "Incorrect.")
		}
	}

	return correct * 100 / len(ch.Questions), nil
}

// readAnswer reads a non-empty answer. TrueFalse questions re-prompt until
// the input is a recognized alias, so the checker only ever sees valid
// boolean answers.
func (a *App) readAnswer(q quiz.Question) (string, error) {
	prompt := "Your answer"
	if q.Kind == quiz.TrueFalse {
		prompt = "Your answer (true/false)"
	}

	for {
		answer, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(a.out, "Input cannot be empty. Please try again.")
			continue
		}
		if q.Kind == quiz.TrueFalse && !quiz.IsBoolAnswer(answer) {
			fmt.Fprintln(a.out, "Please enter 'true' or 'false'.")
			continue
		}
		return answer, nil
	}
}
