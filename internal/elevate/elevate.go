// Package elevate makes sure the installer runs with the rights needed to
// write into shared system plugin directories, relaunching itself through the
// OS elevation prompt when it does not.
package elevate

import (
	"errors"
	"os"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/imdisperser/iminstall/internal/log"
	"github.com/imdisperser/iminstall/internal/notify"
)

type Escalator interface {
	// IsElevated fails with an ErrTypePlatform error if the check itself
	// cannot be performed.
	IsElevated() (bool, error)
	// RelaunchElevated starts exe with args behind the OS elevation prompt.
	// It fails with ErrTypeElevationDenied when the user declines.
	RelaunchElevated(exe string, args []string) error
}

// System returns the escalator for the running OS.
func System() Escalator {
	return systemEscalator{}
}

// Gatekeeper runs the startup elevation protocol. Every path that does not
// proceed ends in Exit(0): declining elevation is a user choice, not a crash.
type Gatekeeper struct {
	Escalator  Escalator
	Sink       notify.Sink
	Exit       func(code int)
	Executable func() (string, error)
}

func NewGatekeeper(sink notify.Sink) *Gatekeeper {
	return &Gatekeeper{
		Escalator:  System(),
		Sink:       sink,
		Exit:       os.Exit,
		Executable: os.Executable,
	}
}

// Run returns true when the process already holds elevated rights and may
// build its UI. Otherwise it relaunches the executable with args unchanged and
// exits; it only returns false when Exit returns, as it does in tests.
func (g *Gatekeeper) Run(args []string) bool {
	elevated, err := g.Escalator.IsElevated()
	if err != nil {
		g.fail(platformError("Failed to call check_elevated", err))
		return false
	}
	if elevated {
		log.Debug("Running elevated")
		return true
	}

	exe, err := g.Executable()
	if err != nil {
		g.fail(platformError("Failed to get current exe path", err))
		return false
	}

	log.Info("Requesting elevation", "exe", exe, "args", args)
	if err := g.Escalator.RelaunchElevated(exe, args); err != nil {
		g.fail(err)
		return false
	}

	log.Debug("Elevated instance launched, exiting")
	g.Exit(0)
	return false
}

func (g *Gatekeeper) fail(err error) {
	notify.Error(g.Sink, err)
	g.Exit(0)
}

func platformError(message string, err error) error {
	var ce *errdefs.CustomError
	if errors.As(err, &ce) {
		return err
	}
	return errdefs.Wrap(errdefs.ErrTypePlatform, message, "", err)
}

func deniedError(cause error) error {
	return errdefs.Wrap(errdefs.ErrTypeElevationDenied, "User rejected privilege request, installation cannot continue", "", cause)
}
