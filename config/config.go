package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"pegsol/types"
)

var (
	cfgFile = "pegsol/config.json"
	logFile = "pegsol/pegsol.log"
)

// Environment variables that override the config file.
const (
	EnvLogLevel = "PEGSOL_LOG_LEVEL"
	EnvLogFile  = "PEGSOL_LOG_FILE"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	HoleColor         int `json:"hole"`
	PegColor          int `json:"peg"`
	CursorColorBG     int `json:"cursor_bg"`
	SelectedColorBG   int `json:"selected_bg"`
	LastMovedColorBG  int `json:"last_moved_bg"`
	CoordinateColorFG int `json:"coordinate_fg"`
}

type ConfigSymbols struct {
	Peg  rune `json:"peg"`
	Hole rune `json:"hole"`
}

type Theme struct {
	DrawCursorBackground    bool          `json:"draw_cursor_bg"`
	DrawLastMovedBackground bool          `json:"draw_last_moved_bg"`
	ShowCoordinates         bool          `json:"show_coordinates"`
	Colors                  ConfigColors  `json:"colors"`
	Symbols                 ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the options preselected on the setup screen.
type GameDefaults struct {
	Board         string `json:"default_board"`
	AllowDiagonal bool   `json:"allow_diagonal"`
}

// LogConfig controls the log file. An empty File means the XDG state dir.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the config file from the XDG config dirs on top of
// DefaultConfig, applies environment overrides and validates the result.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	config.applyEnv()
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Peg, c.Theme.Symbols.Hole} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := types.ParseShape(c.Game.Board); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// DefaultShape returns the configured board shape.
func (c *Config) DefaultShape() types.Shape {
	shape, _ := types.ParseShape(c.Game.Board)
	return shape
}

// LogLevel returns the configured zerolog level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// LogPath returns the log file path, creating its parent dir under the XDG
// state home when no explicit file is configured.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
