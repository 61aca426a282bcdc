package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codetutor/internal/common"
	"github.com/dmitrijs2005/codetutor/internal/credential"
	"github.com/dmitrijs2005/codetutor/internal/student"
)

// Register collects and validates the new account's details, hashes the
// password, and saves the fresh record. The user signs in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username (letters and digits, 4-20 chars)", a.out)
	if err != nil {
		return err
	}
	username = strings.ToLower(username)
	if err := a.validate.Username(username); err != nil {
		fmt.Fprintln(a.out, reason(err))
		return err
	}
	if a.store.Exists(username) {
		fmt.Fprintln(a.out, "Username already taken. Please choose another.")
		return fmt.Errorf("%w: username taken", common.ErrValidation)
	}

	name, err := GetSimpleText(a.reader, "Your full name", a.out)
	if err != nil {
		return err
	}
	if err := a.validate.Name(name); err != nil {
		fmt.Fprintln(a.out, reason(err))
		return err
	}

	email, err := GetSimpleText(a.reader, "Your email address", a.out)
	if err != nil {
		return err
	}
	email = strings.ToLower(email)
	if err := a.validate.Email(email); err != nil {
		fmt.Fprintln(a.out, reason(err))
		return err
	}

	password, err := a.readNewPassword()
	if err != nil {
		return err
	}
	cred := credential.Hash(password)
	common.WipeByteArray(password)

	rec := student.NewRecord(name, username, email, cred)
	if err := a.store.Save(rec); err != nil {
		a.logger.Error(ctx, "saving new record", "username", username, "error", err)
		fmt.Fprintln(a.out, "Could not create your account. Please try again later.")
		return err
	}

	fmt.Fprintf(a.out, "Registration successful! Welcome, %s. Use 'login' to sign in.\n", name)
	return nil
}

// Login loads the record for a username and verifies the password, allowing
// the configured number of attempts.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	rec, err := a.loadAccount(ctx, username)
	if err != nil {
		return err
	}

	for attempt := 1; attempt <= a.config.MaxLoginAttempts; attempt++ {
		password, err := GetPassword("Password", a.out)
		if err != nil {
			return err
		}

		ok, verr := credential.Verify(rec.Credential, password)
		common.WipeByteArray(password)
		if verr != nil {
			a.logger.Error(ctx, "verifying credential", "username", rec.Username, "error", verr)
			fmt.Fprintln(a.out, "Stored credential is damaged; use 'reset' to set a new password.")
			return verr
		}

		if ok {
			a.tracker.RecordLogin(rec, a.now())
			a.current = rec
			a.touch()
			a.persist(ctx)
			fmt.Fprintf(a.out, "Welcome back, %s!\n", rec.Name)
			return nil
		}

		remaining := a.config.MaxLoginAttempts - attempt
		if remaining > 0 {
			fmt.Fprintf(a.out, "Incorrect password. %d attempts remaining.\n", remaining)
		}
	}

	fmt.Fprintln(a.out, "Too many failed attempts. Please try again later.")
	return common.ErrUnauthorized
}

// ResetPassword sets a new password after the registered e-mail address has
// been matched.
func (a *App) ResetPassword(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	rec, err := a.loadAccount(ctx, username)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Your registered email", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(email) != rec.Email {
		fmt.Fprintln(a.out, "Email does not match our records.")
		return common.ErrUnauthorized
	}

	password, err := a.readNewPassword()
	if err != nil {
		return err
	}
	rec.Credential = credential.Hash(password)
	common.WipeByteArray(password)

	if err := a.store.Save(rec); err != nil {
		a.logger.Error(ctx, "saving record after password reset", "username", rec.Username, "error", err)
		fmt.Fprintln(a.out, "Could not reset the password. Please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Password successfully reset.")
	return nil
}

// Logout closes the session, keeping the stored record as-is.
func (a *App) Logout(ctx context.Context) error {
	if a.current == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "Goodbye, %s! Your progress has been saved.\n", a.current.Name)
	a.current = nil
	return nil
}

// About prints the program description.
func (a *App) About(ctx context.Context) error {
	fmt.Fprintln(a.out, `PYTHON COURSE TUTOR

This interactive program teaches Python fundamentals through:
* Progressive, hands-on chapters
* Quizzes with instant feedback
* A secure local account with progress tracking and achievements
* A certificate upon completion

Accounts are stored as encrypted files on this machine; passwords are
kept only as salted PBKDF2 digests.`)
	return nil
}

// loadAccount loads a record and translates the failure modes into the
// distinct user-facing messages: unknown account vs. unreadable data.
func (a *App) loadAccount(ctx context.Context, username string) (rec *student.Record, err error) {
	rec, err = a.store.Load(username)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "Account not found. Please register first.")
	case errors.Is(err, common.ErrDecryption), errors.Is(err, common.ErrCorruptRecord):
		a.logger.Error(ctx, "loading record", "username", username, "error", err)
		fmt.Fprintln(a.out, "Account data is corrupted and cannot be read.")
	default:
		a.logger.Error(ctx, "loading record", "username", username, "error", err)
		fmt.Fprintln(a.out, "Could not read the account. Please try again later.")
	}
	return nil, err
}

// readNewPassword prompts for a policy-conforming password and a matching
// confirmation.
func (a *App) readNewPassword() ([]byte, error) {
	password, err := GetPassword("New password (min 8 chars with letters, digits and special chars)", a.out)
	if err != nil {
		return nil, err
	}
	if err := a.validate.Password(string(password)); err != nil {
		common.WipeByteArray(password)
		fmt.Fprintln(a.out, reason(err))
		return nil, err
	}

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		common.WipeByteArray(password)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		common.WipeByteArray(password)
		fmt.Fprintln(a.out, "Passwords don't match.")
		return nil, fmt.Errorf("%w: passwords don't match", common.ErrValidation)
	}
	return password, nil
}

// reason strips the sentinel prefix from a validation error for display.
func reason(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, common.ErrValidation.Error()+": "); ok {
		return strings.ToUpper(cut[:1]) + cut[1:] + "."
	}
	return msg
}
