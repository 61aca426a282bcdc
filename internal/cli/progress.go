package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codetutor/internal/tracker"
)

// Progress prints detailed progress statistics for the logged-in student.
func (a *App) Progress(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	r := a.current

	fmt.Fprintf(a.out, "\nStudent: %s\n", r.Name)
	fmt.Fprintf(a.out, "Username: %s\n", r.Username)
	fmt.Fprintf(a.out, "Account created: %s\n", r.CreatedAt.Format("2006-01-02"))
	if r.LastLogin != nil {
		fmt.Fprintf(a.out, "Last login: %s\n", r.LastLogin.Format("2006-01-02 15:04"))
	} else {
		fmt.Fprintln(a.out, "Last login: never")
	}
	fmt.Fprintf(a.out, "Logins: %d\n", r.LoginCount)
	fmt.Fprintf(a.out, "Study time: %d minutes\n", r.TotalStudyTime)

	fmt.Fprintln(a.out, "\nChapter Progress:")
	for _, ch := range a.course.Chapters() {
		if len(ch.Questions) == 0 {
			continue
		}
		score, attempted := r.Scores[ch.Number]
		status := "NOT ATTEMPTED"
		if attempted {
			if score >= tracker.PassingScore {
				status = "PASSED"
			} else {
				status = "FAILED"
			}
		}
		fmt.Fprintf(a.out, "  Chapter %d: %d%% - %s\n", ch.Number, score, status)
	}

	fmt.Fprintln(a.out, "\nAchievements:")
	if len(r.Achievements) == 0 {
		fmt.Fprintln(a.out, "  none yet")
	}
	for _, achievement := range r.Achievements {
		fmt.Fprintf(a.out, "  * %s\n", achievement)
	}

	return nil
}
