//go:build windows

package elevate

import (
	"errors"
	"os"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"golang.org/x/sys/windows"
)

type systemEscalator struct{}

func (systemEscalator) IsElevated() (bool, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to call check_elevated", "", err)
	}
	defer token.Close()

	return token.IsElevated(), nil
}

// RelaunchElevated asks UAC to start exe with the "runas" verb. The elevated
// instance gets its own console window, so this returns as soon as it starts.
func (systemEscalator) RelaunchElevated(exe string, args []string) error {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to build elevation request", "", err)
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to build elevation request", exe, err)
	}

	var params *uint16
	if len(args) > 0 {
		params, err = windows.UTF16PtrFromString(windows.ComposeCommandLine(args))
		if err != nil {
			return errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to build elevation request", "", err)
		}
	}

	var cwd *uint16
	if wd, err := os.Getwd(); err == nil {
		cwd, _ = windows.UTF16PtrFromString(wd)
	}

	err = windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL)
	if errors.Is(err, windows.ERROR_CANCELLED) {
		return deniedError(err)
	}
	if err != nil {
		return errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to relaunch elevated", exe, err)
	}
	return nil
}
