package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/codetutor/internal/config"
	"github.com/dmitrijs2005/codetutor/internal/course"
	"github.com/dmitrijs2005/codetutor/internal/cryptox"
	"github.com/dmitrijs2005/codetutor/internal/filex"
	"github.com/dmitrijs2005/codetutor/internal/logging"
	"github.com/dmitrijs2005/codetutor/internal/student"
	"github.com/dmitrijs2005/codetutor/internal/tracker"
	"github.com/dmitrijs2005/codetutor/internal/validation"
)

// App carries the CLI session state and its collaborators. The cipher is
// constructed once at startup and owned by the store; there is no shared
// global instance.
type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *student.Store
	course   *course.Course
	tracker  *tracker.Tracker
	validate *validation.Validator
	certDir  string

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	current      *student.Record
	lastActivity time.Time
}

// NewApp builds the application: ensures the data directory, loads or
// creates the symmetric key, and wires the store against it.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}

	key, err := cryptox.LoadOrCreateKey(filepath.Join(cfg.DataDir, "secret.key"))
	if err != nil {
		return nil, err
	}
	cipher, err := cryptox.NewCipher(key)
	if err != nil {
		return nil, err
	}

	store, err := student.NewStore(filepath.Join(cfg.DataDir, "users"), cipher)
	if err != nil {
		return nil, err
	}

	crs, err := course.Default()
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		store:    store,
		course:   crs,
		tracker:  tracker.New(crs.Count()),
		validate: validation.New(),
		certDir:  filepath.Join(cfg.DataDir, "certificates"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Python course tutor (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	a.touch()
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// sessionExpired reports whether the logged-in session has been idle longer
// than the configured timeout. Checked at each prompt; there is no
// background timer.
func (a *App) sessionExpired() bool {
	return a.current != nil && a.now().Sub(a.lastActivity) >= a.config.SessionTimeout
}

func (a *App) touch() {
	a.lastActivity = a.now()
}

func (a *App) status() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.Username)
}

// persist saves the current record, keeping it in memory and telling the
// user to retry later when the save fails.
func (a *App) persist(ctx context.Context) {
	if err := a.store.Save(a.current); err != nil {
		a.logger.Error(ctx, "saving record", "username", a.current.Username, "error", err)
		fmt.Fprintln(a.out, "Could not save your progress right now; it is kept in memory. Please try again later.")
	}
}

// confirm asks a yes/no question until it gets a recognizable answer.
func (a *App) confirm(prompt string) (bool, error) {
	for {
		answer, err := GetSimpleText(a.reader, prompt+" (yes/no)", a.out)
		if err != nil {
			return false, err
		}
		switch answer {
		case "yes", "y", "Yes", "Y":
			return true, nil
		case "no", "n", "No", "N":
			return false, nil
		}
		fmt.Fprintln(a.out, "Please enter 'yes' or 'no'.")
	}
}
