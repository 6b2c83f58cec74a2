package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "iminstall"
	envPrefix = "IMINSTALL"
)

type Config struct {
	VST3Path   string   `mapstructure:"vst3_path"`
	CLAPPath   string   `mapstructure:"clap_path"`
	PayloadDir string   `mapstructure:"payload_dir"`
	Elevate    bool     `mapstructure:"elevate"`
	LogLevel   string   `mapstructure:"log_level"`
	Formats    []string `mapstructure:"formats"`

	// File is the absolute path of the config file that was read, if any.
	File string `mapstructure:"-"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"vst3-path":   "vst3_path",
	"clap-path":   "clap_path",
	"payload-dir": "payload_dir",
	"log-level":   "log_level",
	"format":      "formats",
}

var goos = runtime.GOOS

func Default() *Config {
	roots := payload.DefaultRoots(goos)
	return &Config{
		VST3Path: roots[payload.FormatVST3],
		CLAPPath: roots[payload.FormatCLAP],
		Elevate:  true,
		LogLevel: "info",
	}
}

// Load layers defaults, the optional config file, IMINSTALL_* environment
// variables and any flags the user actually set, in increasing precedence.
// An explicitly named config file must exist.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("vst3_path", def.VST3Path)
	v.SetDefault("clap_path", def.CLAPPath)
	v.SetDefault("payload_dir", def.PayloadDir)
	v.SetDefault("elevate", def.Elevate)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("formats", []string{})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := flags.Lookup("no-elevate"); f != nil && f.Changed {
			v.Set("elevate", false)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if used := v.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			if abs, err := filepath.Abs(used); err == nil {
				used = abs
			}
			cfg.File = used
		}
	}

	return cfg, nil
}

// Roots returns the destination root per format.
func (c *Config) Roots() map[payload.Format]string {
	return map[payload.Format]string{
		payload.FormatVST3: c.VST3Path,
		payload.FormatCLAP: c.CLAPPath,
	}
}

// SelectedFormats parses Formats, dropping duplicates and keeping the
// deployment order of payload.All.
func (c *Config) SelectedFormats() ([]payload.Format, error) {
	want := make(map[payload.Format]bool)
	for _, name := range c.Formats {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			f, err := payload.ParseFormat(part)
			if err != nil {
				return nil, err
			}
			want[f] = true
		}
	}

	var formats []payload.Format
	for _, f := range payload.All() {
		if want[f] {
			formats = append(formats, f)
		}
	}
	return formats, nil
}
