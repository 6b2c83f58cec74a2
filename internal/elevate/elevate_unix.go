//go:build !windows

package elevate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/imdisperser/iminstall/internal/log"
	"golang.org/x/sys/unix"
)

var (
	geteuid  = unix.Geteuid
	lookPath = exec.LookPath
)

type systemEscalator struct{}

func (systemEscalator) IsElevated() (bool, error) {
	return geteuid() == 0, nil
}

// forwardEnvPrefix marks the variables that must reach the elevated instance;
// both helpers scrub the environment.
const forwardEnvPrefix = "IMINSTALL_"

// launcher is an elevation helper binary. authArgs, when set, runs the helper
// on its own to authenticate before the real launch. denied reports whether an
// exit code belongs to the helper refusing the user rather than to the child.
type launcher struct {
	name     string
	authArgs []string
	argv     func(exe string, args []string) ([]string, error)
	denied   func(code int) bool
}

func launchers(goos string) []launcher {
	sudo := launcher{
		name: "sudo",
		// sudo passes the child's exit status through, so authentication is
		// checked up front and the launch itself is never read as a denial
		authArgs: []string{"-v"},
		argv: func(exe string, args []string) ([]string, error) {
			vars := forwardedEnv()
			if len(vars) == 0 {
				return append([]string{"--", exe}, args...), nil
			}
			env, err := lookPath("env")
			if err != nil {
				return nil, err
			}
			argv := append([]string{"--", env}, vars...)
			return append(append(argv, exe), args...), nil
		},
		denied: func(code int) bool { return code == 1 },
	}
	if goos != "linux" {
		return []launcher{sudo}
	}

	pkexec := launcher{
		name: "pkexec",
		// carry the terminal type so the TUI renders in the elevated instance
		argv: func(exe string, args []string) ([]string, error) {
			env, err := lookPath("env")
			if err != nil {
				return nil, err
			}
			argv := []string{env, "TERM=" + os.Getenv("TERM"), "COLORTERM=" + os.Getenv("COLORTERM")}
			argv = append(argv, forwardedEnv()...)
			argv = append(argv, exe)
			return append(argv, args...), nil
		},
		// 126: dialog dismissed, 127: not authorized
		denied: func(code int) bool { return code == 126 || code == 127 },
	}
	return []launcher{pkexec, sudo}
}

// forwardedEnv returns the set IMINSTALL_* variables as NAME=value, sorted.
func forwardedEnv() []string {
	var vars []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, forwardEnvPrefix) {
			vars = append(vars, kv)
		}
	}
	slices.Sort(vars)
	return vars
}

// RelaunchElevated runs exe through the first available helper. The elevated
// instance inherits this terminal, so this waits for it to finish before
// handing control back. Once the child is running its exit status is its own
// business and is only logged.
func (systemEscalator) RelaunchElevated(exe string, args []string) error {
	for _, l := range launchers(runtime.GOOS) {
		helper, err := lookPath(l.name)
		if err != nil {
			continue
		}

		if l.authArgs != nil {
			if err := run(helper, l.authArgs); err != nil {
				return classify(l, err)
			}
		}

		argv, err := l.argv(exe, args)
		if err != nil {
			return errdefs.Wrap(errdefs.ErrTypePlatform, fmt.Sprintf("Failed to prepare %s", l.name), "", err)
		}

		err = run(helper, argv)
		if err == nil {
			return nil
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return errdefs.Wrap(errdefs.ErrTypePlatform, fmt.Sprintf("Failed to relaunch with %s", l.name), "", err)
		}
		if l.authArgs == nil && l.denied(exitErr.ExitCode()) {
			return deniedError(err)
		}
		log.Warn("Elevated instance exited with an error", "helper", l.name, "code", exitErr.ExitCode())
		return nil
	}

	return errdefs.Wrap(errdefs.ErrTypePlatform, "No elevation helper found (pkexec or sudo)", "", exec.ErrNotFound)
}

func run(helper string, argv []string) error {
	cmd := exec.Command(helper, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// classify maps a failed authentication step onto the error taxonomy.
func classify(l launcher, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && l.denied(exitErr.ExitCode()) {
		return deniedError(err)
	}
	return errdefs.Wrap(errdefs.ErrTypePlatform, fmt.Sprintf("Failed to authenticate with %s", l.name), "", err)
}
