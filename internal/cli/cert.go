package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codetutor/internal/student"
)

// Certificate re-issues the completion certificate for a student who has
// finished the course.
func (a *App) Certificate(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	if a.current.Progress < a.course.Count() {
		fmt.Fprintln(a.out, "Finish the course first to earn your certificate.")
		return nil
	}

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
