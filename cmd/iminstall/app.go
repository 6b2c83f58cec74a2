package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/imdisperser/iminstall/internal/config"
	"github.com/imdisperser/iminstall/internal/deployer"
	"github.com/imdisperser/iminstall/internal/elevate"
	"github.com/imdisperser/iminstall/internal/log"
	"github.com/imdisperser/iminstall/internal/notify"
	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/imdisperser/iminstall/internal/wizard"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !log.SetLevel(cfg.LogLevel) {
		log.Warn("Unknown log level, keeping info", "level", cfg.LogLevel)
	}
	return cfg, nil
}

// passGate runs the elevation protocol. A false return means this process
// must not build any UI; on a real run Exit has already ended it.
func passGate(cfg *config.Config) bool {
	if !cfg.Elevate {
		log.Debug("Elevation disabled by configuration")
		return true
	}
	gk := elevate.NewGatekeeper(notify.Native(notify.Stderr()))
	return gk.Run(relaunchArgs(os.Args[1:], cfg.File))
}

// relaunchArgs pins the elevated instance to the config file this process
// read. The helpers reset HOME and the working directory, so a searched or
// relative config path would otherwise resolve differently or not at all.
func relaunchArgs(args []string, cfgFile string) []string {
	if cfgFile == "" {
		return args
	}

	out := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--config":
			i++
		case strings.HasPrefix(args[i], "--config="):
		default:
			out = append(out, args[i])
		}
	}
	return append(out, "--config="+cfgFile)
}

// newInstallation wires the payload source named by cfg to a deployer on fs,
// or on the OS filesystem when fs is nil.
func newInstallation(cfg *config.Config, fs afero.Fs) (*deployer.PayloadDeployer, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	var source payload.Source = payload.NewEmbeddedSource()
	if cfg.PayloadDir != "" {
		info, err := fs.Stat(cfg.PayloadDir)
		if err != nil {
			return nil, fmt.Errorf("payload dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("payload dir %s is not a directory", cfg.PayloadDir)
		}
		source = payload.NewDirSource(fs, cfg.PayloadDir)
	}

	return deployer.NewPayloadDeployer(fs, source), nil
}

// installHeadless walks the wizard through every page for formats. It reports
// true once the Finish press has been accepted; deployment failures have
// already reached the controller's sink and leave it on Confirm.
func installHeadless(ctrl *wizard.Controller, formats []payload.Format, out io.Writer) bool {
	for _, f := range formats {
		ctrl.Toggle(f)
	}

	for _, want := range []wizard.Page{wizard.PageSelectPath, wizard.PageConfirm, wizard.PageDone} {
		ctrl.Next()
		if page := ctrl.View().Page; page != want {
			log.Debug("Headless install stopped", "page", page, "expected", want)
			return false
		}
	}

	for _, result := range ctrl.View().Results {
		fmt.Fprintf(out, "Installed %s to %s\n", result.Format, result.Path)
	}
	return ctrl.Next()
}

// redirectLog sends log output to iminstall.log in the user cache dir while
// the TUI owns the terminal. The returned func restores stderr.
func redirectLog() func() {
	restore := func() { log.SetOutput(os.Stderr) }

	dir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return restore
	}
	dir = filepath.Join(dir, "iminstall")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return restore
	}

	f, err := os.OpenFile(filepath.Join(dir, "iminstall.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return restore
	}
	log.SetOutput(f)
	return func() {
		restore()
		f.Close()
	}
}
