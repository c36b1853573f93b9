package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/client"
	"github.com/dmitrijs2005/trainerhub/internal/client/services"
	"github.com/dmitrijs2005/trainerhub/internal/client/session"
	"github.com/dmitrijs2005/trainerhub/internal/common"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Uploader stores a local video and returns the URL to save on an exercise.
type Uploader interface {
	UploadVideo(ctx context.Context, localPath string) (string, error)
}

type App struct {
	session  *session.Store
	svc      *services.Services
	uploader Uploader
	reader   *bufio.Reader
	out      io.Writer
	logger   logging.Logger
	now      func() time.Time
}

// NewApp builds the CLI over an already wired session and service bundle.
// uploader may be nil when media storage is not configured.
func NewApp(sess *session.Store, svc *services.Services, uploader Uploader, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		session:  sess,
		svc:      svc,
		uploader: uploader,
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   logger.With("component", "cli"),
		now:      time.Now,
	}
}

// Run restores the stored session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.session.LoadStoredAuth(ctx)

	fmt.Fprintln(a.out, "Welcome to trainerhub (type 'help' for commands)")
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	}

	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) tree() session.Tree {
	return session.NavigationTree(a.session.Snapshot())
}

func (a *App) prompt() string {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return "trainerhub> "
	}
	return fmt.Sprintf("trainerhub (%s %s)> ", snap.User.Name, snap.User.Role)
}

// handleError reports a failed command. A rejected token ends the session;
// the gateway has already purged the stored credentials.
func (a *App) handleError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.session.Logout(ctx)
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	case errors.Is(err, client.ErrForbidden):
		fmt.Fprintln(a.out, "You are not allowed to do that.")
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(a.out, "Not found.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later.")
	case errors.Is(err, common.ErrorValidation), errors.Is(err, errUsage):
		fmt.Fprintln(a.out, err.Error())
	default:
		fmt.Fprintf(a.out, "Error: %s\n", err)
	}
	a.logger.Debug(ctx, "command failed", "error", err)
}

// readSecret reads a password without echo on a terminal and as a plain
// line otherwise, so scripted input keeps working.
func (a *App) readSecret(prompt string) (string, error) {
	if isTerminal(int(os.Stdin.Fd())) {
		pw, err := getPassword(a.out)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// confirm asks a yes/no question; anything but y or yes is no.
func (a *App) confirm(question string) (bool, error) {
	v, err := a.ask(question + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
