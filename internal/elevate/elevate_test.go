package elevate

import (
	"errors"
	"testing"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/imdisperser/iminstall/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEscalator struct {
	elevated    bool
	checkErr    error
	relaunchErr error

	relaunches int
	exe        string
	args       []string
}

func (f *fakeEscalator) IsElevated() (bool, error) {
	return f.elevated, f.checkErr
}

func (f *fakeEscalator) RelaunchElevated(exe string, args []string) error {
	f.relaunches++
	f.exe = exe
	f.args = args
	return f.relaunchErr
}

type harness struct {
	esc   *fakeEscalator
	sink  *notify.Recorder
	exits []int
	gk    *Gatekeeper
}

func newHarness(esc *fakeEscalator) *harness {
	h := &harness{esc: esc, sink: &notify.Recorder{}}
	h.gk = &Gatekeeper{
		Escalator:  esc,
		Sink:       h.sink,
		Exit:       func(code int) { h.exits = append(h.exits, code) },
		Executable: func() (string, error) { return "/opt/iminstall/iminstall", nil },
	}
	return h
}

func TestGatekeeperAlreadyElevated(t *testing.T) {
	h := newHarness(&fakeEscalator{elevated: true})

	assert.True(t, h.gk.Run([]string{"install", "--format=clap"}))
	assert.Zero(t, h.esc.relaunches)
	assert.Empty(t, h.exits)
	assert.Empty(t, h.sink.Alerts)
}

func TestGatekeeperRelaunches(t *testing.T) {
	h := newHarness(&fakeEscalator{})
	args := []string{"install", "--format", "vst3", "--vst3-path", `C:\My Plugins`}

	assert.False(t, h.gk.Run(args))
	assert.Equal(t, 1, h.esc.relaunches)
	assert.Equal(t, "/opt/iminstall/iminstall", h.esc.exe)
	assert.Equal(t, args, h.esc.args)
	assert.Equal(t, []int{0}, h.exits)
	assert.Empty(t, h.sink.Alerts)
}

func TestGatekeeperElevationDeclined(t *testing.T) {
	h := newHarness(&fakeEscalator{relaunchErr: deniedError(errors.New("exit status 126"))})

	assert.False(t, h.gk.Run(nil))
	require.Len(t, h.sink.Alerts, 1)
	assert.Contains(t, h.sink.Alerts[0].Message, "User rejected privilege request")
	assert.Contains(t, h.sink.Alerts[0].Message, "exit status 126")
	assert.Equal(t, []int{0}, h.exits)
}

func TestGatekeeperCheckFails(t *testing.T) {
	h := newHarness(&fakeEscalator{checkErr: errors.New("token query failed")})

	assert.False(t, h.gk.Run(nil))
	assert.Zero(t, h.esc.relaunches, "no elevation is attempted after a failed check")
	require.Len(t, h.sink.Alerts, 1)
	assert.Equal(t, "Failed to call check_elevated\ntoken query failed", h.sink.Alerts[0].Message)
	assert.Equal(t, []int{0}, h.exits)
}

func TestGatekeeperExecutableUnknown(t *testing.T) {
	h := newHarness(&fakeEscalator{})
	h.gk.Executable = func() (string, error) { return "", errors.New("readlink failed") }

	assert.False(t, h.gk.Run(nil))
	assert.Zero(t, h.esc.relaunches)
	require.Len(t, h.sink.Alerts, 1)
	assert.Equal(t, []int{0}, h.exits)
}

func TestPlatformErrorKeepsTypedErrors(t *testing.T) {
	typed := errdefs.Wrap(errdefs.ErrTypePlatform, "Failed to call check_elevated", "", errors.New("x"))
	assert.Same(t, typed, platformError("ignored", typed))

	wrapped := platformError("Failed to get current exe path", errors.New("y"))
	assert.True(t, errdefs.IsType(wrapped, errdefs.ErrTypePlatform))
}
