package main

import (
	"os"

	"github.com/imdisperser/iminstall/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: iminstall.yaml in the user config dir or the working directory)")
	rootCmd.PersistentFlags().String("vst3-path", "", "Destination root for the VST3 bundle")
	rootCmd.PersistentFlags().String("clap-path", "", "Destination root for the CLAP plugin")
	rootCmd.PersistentFlags().String("payload-dir", "", "Read plugin binaries from this directory instead of the bundled ones")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-elevate", false, "Skip the privilege check, for installs into user-writable folders")

	installCmd.Flags().StringSlice("format", nil, "Plugin format to install: vst3, clap (repeatable)")

	rootCmd.AddCommand(installCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
