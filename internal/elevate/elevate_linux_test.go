package elevate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHelper writes a shell script that records its argv and exits with code.
func fakeHelper(t *testing.T, code int) (script, argvFile string) {
	t.Helper()
	dir := t.TempDir()
	script = filepath.Join(dir, "helper")
	argvFile = filepath.Join(dir, "argv")
	body := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\nexit %d\n", argvFile, code)
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return script, argvFile
}

func withHelpers(t *testing.T, helpers map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if path, ok := helpers[name]; ok {
			return path, nil
		}
		if name == "env" {
			return "/usr/bin/env", nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func readArgv(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestIsElevatedUsesEffectiveUID(t *testing.T) {
	orig := geteuid
	t.Cleanup(func() { geteuid = orig })

	geteuid = func() int { return 0 }
	elevated, err := systemEscalator{}.IsElevated()
	require.NoError(t, err)
	assert.True(t, elevated)

	geteuid = func() int { return 1000 }
	elevated, err = systemEscalator{}.IsElevated()
	require.NoError(t, err)
	assert.False(t, elevated)
}

func TestRelaunchWithPkexec(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "truecolor")

	tests := []struct {
		name     string
		code     int
		wantType errdefs.ErrorType
		wantErr  bool
	}{
		{name: "granted", code: 0},
		{name: "dismissed", code: 126, wantErr: true, wantType: errdefs.ErrTypeElevationDenied},
		{name: "not authorized", code: 127, wantErr: true, wantType: errdefs.ErrTypeElevationDenied},
		{name: "elevated instance failed", code: 1},
		{name: "elevated instance exited with other status", code: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, argvFile := fakeHelper(t, tt.code)
			withHelpers(t, map[string]string{"pkexec": script})

			err := systemEscalator{}.RelaunchElevated("/opt/iminstall", []string{"install", "--format", "clap"})
			if tt.wantErr {
				assert.True(t, errdefs.IsType(err, tt.wantType), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, []string{
				"/usr/bin/env", "TERM=xterm-256color", "COLORTERM=truecolor",
				"/opt/iminstall", "install", "--format", "clap",
			}, readArgv(t, argvFile))
		})
	}

	t.Run("forwards configuration from the environment", func(t *testing.T) {
		t.Setenv("IMINSTALL_VST3_PATH", "/home/me/.vst3")
		t.Setenv("IMINSTALL_LOG_LEVEL", "debug")
		script, argvFile := fakeHelper(t, 0)
		withHelpers(t, map[string]string{"pkexec": script})

		require.NoError(t, systemEscalator{}.RelaunchElevated("/opt/iminstall", []string{"--config=/home/me/.config/iminstall/iminstall.yaml"}))

		assert.Equal(t, []string{
			"/usr/bin/env", "TERM=xterm-256color", "COLORTERM=truecolor",
			"IMINSTALL_LOG_LEVEL=debug", "IMINSTALL_VST3_PATH=/home/me/.vst3",
			"/opt/iminstall", "--config=/home/me/.config/iminstall/iminstall.yaml",
		}, readArgv(t, argvFile))
	})
}

// fakeSudo answers "sudo -v" with authCode; otherwise it records its argv and
// runs the command after "--" the way sudo does, passing its status through.
func fakeSudo(t *testing.T, authCode int) (script, argvFile string) {
	t.Helper()
	dir := t.TempDir()
	script = filepath.Join(dir, "sudo")
	argvFile = filepath.Join(dir, "argv")
	body := fmt.Sprintf("#!/bin/sh\nif [ \"$1\" = \"-v\" ]; then exit %d; fi\nprintf '%%s\\n' \"$@\" > %q\nshift\nexec \"$@\"\n", authCode, argvFile)
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return script, argvFile
}

// fakeChild stands in for the elevated installer: it leaves a marker and exits
// with code.
func fakeChild(t *testing.T, code int) (script, marker string) {
	t.Helper()
	dir := t.TempDir()
	script = filepath.Join(dir, "iminstall")
	marker = filepath.Join(dir, "ran")
	body := fmt.Sprintf("#!/bin/sh\necho child-ran > %q\nexit %d\n", marker, code)
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return script, marker
}

func TestRelaunchFallsBackToSudo(t *testing.T) {
	tests := []struct {
		name      string
		authCode  int
		childCode int
		wantType  errdefs.ErrorType
		wantErr   bool
		wantChild bool
	}{
		{name: "granted", wantChild: true},
		{name: "elevated instance exits 1", childCode: 1, wantChild: true},
		{name: "elevated instance exits 2", childCode: 2, wantChild: true},
		{name: "authentication refused", authCode: 1, wantErr: true, wantType: errdefs.ErrTypeElevationDenied},
		{name: "sudo misconfigured", authCode: 2, wantErr: true, wantType: errdefs.ErrTypePlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sudo, argvFile := fakeSudo(t, tt.authCode)
			child, marker := fakeChild(t, tt.childCode)
			withHelpers(t, map[string]string{"sudo": sudo})

			err := systemEscalator{}.RelaunchElevated(child, []string{"install", "--format=clap"})
			if tt.wantErr {
				assert.True(t, errdefs.IsType(err, tt.wantType), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			_, statErr := os.Stat(marker)
			assert.Equal(t, tt.wantChild, statErr == nil)
			if tt.wantChild {
				assert.Equal(t, []string{"--", child, "install", "--format=clap"}, readArgv(t, argvFile))
			}
		})
	}
}

func TestSudoForwardsConfigurationFromEnvironment(t *testing.T) {
	t.Setenv("IMINSTALL_CLAP_PATH", "/home/me/.clap")
	sudo, argvFile := fakeSudo(t, 0)
	child, marker := fakeChild(t, 0)
	withHelpers(t, map[string]string{"sudo": sudo})

	require.NoError(t, systemEscalator{}.RelaunchElevated(child, nil))

	assert.Equal(t, []string{"--", "/usr/bin/env", "IMINSTALL_CLAP_PATH=/home/me/.clap", child}, readArgv(t, argvFile))
	assert.FileExists(t, marker)
}

func TestRelaunchWithoutHelpers(t *testing.T) {
	withHelpers(t, nil)

	err := systemEscalator{}.RelaunchElevated("/opt/iminstall", nil)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypePlatform))
}
