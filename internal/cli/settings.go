package cli

import (
	"context"
	"fmt"
)

// Settings shows and updates the student's preferences. Empty input keeps
// the current value; the record is saved once at the end.
func (a *App) Settings(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	prefs := &a.current.Preferences

	fmt.Fprintf(a.out, "\nCurrent settings: sound=%s, hints=%s, difficulty=%s\n",
		onOff(prefs.SoundEnabled), onOff(prefs.ShowHints), prefs.Difficulty)

	if v, err := a.readToggle("Sound", prefs.SoundEnabled); err != nil {
		return err
	} else {
		prefs.SoundEnabled = v
	}

	if v, err := a.readToggle("Hints", prefs.ShowHints); err != nil {
		return err
	} else {
		prefs.ShowHints = v
	}

	difficulty, err := GetSimpleText(a.reader,
		fmt.Sprintf("Difficulty (easy/normal/hard) [%s]", prefs.Difficulty), a.out)
	if err != nil {
		return err
	}
	switch difficulty {
	case "":
		// keep current
	case "easy", "normal", "hard":
		prefs.Difficulty = difficulty
	default:
		fmt.Fprintln(a.out, "Unknown difficulty, keeping", prefs.Difficulty)
	}

	a.persist(ctx)
	fmt.Fprintln(a.out, "Settings saved.")
	return nil
}

func (a *App) readToggle(name string, current bool) (bool, error) {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("%s (on/off) [%s]", name, onOff(current)), a.out)
	if err != nil {
		return current, err
	}
	switch answer {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "":
		return current, nil
	default:
		fmt.Fprintln(a.out, "Unknown value, keeping", onOff(current))
		return current, nil
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
