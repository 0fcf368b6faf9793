package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError distinguishes "the user backed out of a prompt" from a real
// failure. Aborting is a normal exit, not an error; anything else ends the
// process with a non-zero status.
func HandleError(err error) {
	if IsAbort(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(err)
	os.Exit(1)
}

func IsAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, terminal.InterruptErr) ||
		strings.Contains(err.Error(), "interrupt")
}
