package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the preferences file looked up in the config directory.
const FileName = "portfolio.json"

// EnvPrefix prefixes environment overrides, e.g. PORTFOLIO_WINDOW_WIDTH.
const EnvPrefix = "PORTFOLIO"

// Window holds the initial window settings.
type Window struct {
	Width      int  `json:"width" mapstructure:"width"`
	Height     int  `json:"height" mapstructure:"height"`
	Fullscreen bool `json:"fullscreen" mapstructure:"fullscreen"`
}

// Assets points at files loaded at runtime.
type Assets struct {
	Portrait string `json:"portrait" mapstructure:"portrait"`
}

// Prefs holds the portfolio's preferences. Persisted across runs.
type Prefs struct {
	LogLevel        string `json:"logLevel" mapstructure:"logLevel"`
	LogsDir         string `json:"logsDir" mapstructure:"logsDir"`
	Window          Window `json:"window" mapstructure:"window"`
	TargetFPS       int    `json:"targetFps" mapstructure:"targetFps"`
	ShowFPS         bool   `json:"showFps" mapstructure:"showFps"`
	ShowMemAlloc    bool   `json:"showMemAlloc" mapstructure:"showMemAlloc"`
	ShowInteraction bool   `json:"showInteraction" mapstructure:"showInteraction"`
	Assets          Assets `json:"assets" mapstructure:"assets"`
	SettleDelayMs   int    `json:"settleDelayMs" mapstructure:"settleDelayMs"`
}

// SettleDelay is how long the transition guard stays up after a page is built.
func (p Prefs) SettleDelay() time.Duration {
	return time.Duration(p.SettleDelayMs) * time.Millisecond
}

// Default returns default preferences (windowed 1280x720, overlays off).
func Default() Prefs {
	return Prefs{
		LogLevel:      "info",
		LogsDir:       "./logs",
		Window:        Window{Width: 1280, Height: 720},
		TargetFPS:     60,
		Assets:        Assets{Portrait: "assets/portrait.jpeg"},
		SettleDelayMs: 2000,
	}
}

func setDefaults() {
	d := Default()
	viper.SetDefault("logLevel", d.LogLevel)
	viper.SetDefault("logsDir", d.LogsDir)

	viper.SetDefault("window.width", d.Window.Width)
	viper.SetDefault("window.height", d.Window.Height)
	viper.SetDefault("window.fullscreen", d.Window.Fullscreen)

	viper.SetDefault("targetFps", d.TargetFPS)
	viper.SetDefault("showFps", d.ShowFPS)
	viper.SetDefault("showMemAlloc", d.ShowMemAlloc)
	viper.SetDefault("showInteraction", d.ShowInteraction)

	viper.SetDefault("assets.portrait", d.Assets.Portrait)
	viper.SetDefault("settleDelayMs", d.SettleDelayMs)
}

// Load reads preferences from configDir/portfolio.json, applying defaults and PORTFOLIO_*
// environment overrides. A missing file is not an error and no file is created. A malformed
// file returns the error together with Default().
func Load(configDir string) (Prefs, error) {
	setDefaults()

	viper.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("error reading config file: %w", err)
		}
	}

	var p Prefs
	if err := viper.Unmarshal(&p); err != nil {
		return Default(), fmt.Errorf("error decoding config: %w", err)
	}
	return p, nil
}

// Save writes preferences to configDir/portfolio.json, creating the directory if needed.
func Save(configDir string, p Prefs) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, FileName), data, 0644)
}
