package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Keys   KeyConfig    `mapstructure:"keys"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Surface   string `mapstructure:"surface"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Highlight string `mapstructure:"highlight"`
	Current   string `mapstructure:"current"`
}

type RenderConfig struct {
	// Source selects the renderer: "man" shells out to the system man
	// binary, "markdown" renders NAME.md files from DocsDir.
	Source  string `mapstructure:"source"`
	ManPath string `mapstructure:"man_path"`
	DocsDir string `mapstructure:"docs_dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type KeyConfig struct {
	Quit         string `mapstructure:"quit"`
	Help         string `mapstructure:"help"`
	Command      string `mapstructure:"command"`
	Search       string `mapstructure:"search"`
	NextMatch    string `mapstructure:"next_match"`
	PrevMatch    string `mapstructure:"prev_match"`
	ScrollUp     string `mapstructure:"scroll_up"`
	ScrollDown   string `mapstructure:"scroll_down"`
	HalfPageUp   string `mapstructure:"half_page_up"`
	HalfPageDown string `mapstructure:"half_page_down"`
	GoTop        string `mapstructure:"go_top"`
	GoBottom     string `mapstructure:"go_bottom"`
	TabNext      string `mapstructure:"tab_next"`
	TabPrev      string `mapstructure:"tab_prev"`
}

func defaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#4ECDC4",
				Secondary: "#95E1D3",
				Accent:    "#FFE66D",
				Surface:   "#16213E",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Highlight: "#FFE66D",
				Current:   "#FF6B6B",
			},
		},
		Keys: KeyConfig{
			Quit:         "q",
			Help:         "?",
			Command:      ":",
			Search:       "/",
			NextMatch:    "n",
			PrevMatch:    "N",
			ScrollUp:     "k",
			ScrollDown:   "j",
			HalfPageUp:   "ctrl+u",
			HalfPageDown: "ctrl+d",
			GoTop:        "g",
			GoBottom:     "G",
			TabNext:      "tab",
			TabPrev:      "shift+tab",
		},
		Render: RenderConfig{
			Source:  "man",
			ManPath: "man",
			DocsDir: "",
		},
		Log: LogConfig{
			Level: "off",
			File:  "",
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)
	v.SetDefault("render", cfg.Render)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "manifold")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MANIFOLD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Render.DocsDir = expandPath(cfg.Render.DocsDir)
	cfg.Log.File = expandPath(cfg.Log.File)
}

func Save(config *Config, path string) error {
	v := viper.New()

	v.Set("ui", config.UI)
	v.Set("keys", config.Keys)
	v.Set("render", config.Render)
	v.Set("log", config.Log)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
