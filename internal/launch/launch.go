// Package launch starts applications from their desktop-entry command lines.
package launch

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"launchbox/internal/models"
)

// BuildArgs tokenizes a command line on spaces and drops desktop-entry
// format placeholders (tokens starting with %, like %u or %F). The command
// line is otherwise opaque; no shell quoting is interpreted.
func BuildArgs(commandLine string) []string {
	var args []string
	for _, arg := range strings.Split(commandLine, " ") {
		if arg == "" || strings.HasPrefix(arg, "%") {
			continue
		}
		args = append(args, arg)
	}
	return args
}

// Run starts the application's process detached from the launcher, with
// the given working directory (conventionally the user's home). It does
// not wait for the process; the launcher exits right after a launch.
func Run(app *models.Application, workDir string) error {
	args := BuildArgs(app.CommandLine)
	if len(args) == 0 {
		return fmt.Errorf("no command for %s", app.ID)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = workDir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", args[0], err)
	}
	// Reap the child in the background so it never turns into a zombie
	// while the launcher is still up.
	go cmd.Wait()
	return nil
}
