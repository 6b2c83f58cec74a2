package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/log"
	"github.com/imdisperser/iminstall/internal/notify"
	"github.com/imdisperser/iminstall/internal/osinfo"
	"github.com/imdisperser/iminstall/internal/tui"
	"github.com/imdisperser/iminstall/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "iminstall",
	Short:         "IM Disperser plugin installer",
	Long:          "IM Disperser plugin installer\n\nCopies the VST3 and CLAP builds of IM Disperser into your plugin folders.\nRun without arguments for the interactive installer.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install without the interactive UI",
	Long:  "Install the selected formats to their configured folders without the interactive UI.\nErrors are reported as desktop notifications, or on stderr when none are available.",
	Example: "  iminstall install --format vst3 --format clap\n" +
		"  iminstall install --format clap --clap-path ~/.clap --no-elevate",
	Args: cobra.NoArgs,
	RunE: runInstall,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if len(cfg.Formats) > 0 {
			log.Info("No terminal attached, installing configured formats")
			return runInstall(cmd, args)
		}
		return errors.New("no terminal attached; use `iminstall install --format ...` instead")
	}

	if !passGate(cfg) {
		return nil
	}

	info, err := osinfo.GetOSInfo()
	if err != nil {
		log.Warn("Could not detect platform", "err", err)
	}

	inst, err := newInstallation(cfg, nil)
	if err != nil {
		return err
	}
	alerts := &tui.AlertQueue{}
	ctrl := wizard.NewController(wizard.NewState(cfg.Roots()), inst, alerts)

	restore := redirectLog()
	defer restore()

	model := tui.NewModel(tui.Options{
		Version:    Version,
		Controller: ctrl,
		Alerts:     alerts,
		Installed:  inst.Installed,
		OSInfo:     info,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Finished() {
		restore()
		os.Exit(wizard.ExitCode)
	}
	return nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	formats, err := cfg.SelectedFormats()
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		return errors.New("no formats selected; pass --format vst3 and/or --format clap")
	}

	if !passGate(cfg) {
		return nil
	}

	sink := notify.Native(notify.Stderr())
	inst, err := newInstallation(cfg, nil)
	if err != nil {
		return err
	}

	ctrl := wizard.NewController(wizard.NewState(cfg.Roots()), inst, sink)
	if installHeadless(ctrl, formats, cmd.OutOrStdout()) {
		os.Exit(wizard.ExitCode)
	}
	return nil
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "IM Disperser installer v%s\n", Version)
}
