package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/pandora"
	bt "github.com/fwojciec/pandora/bubbletea"
	pandorahttp "github.com/fwojciec/pandora/http"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "PANDORA"
	configName = "config"
	dotenvFile = ".env"
)

// config is the resolved runtime configuration.
type config struct {
	BaseURL    string
	User       string
	StateFile  string
	DataDir    string
	Dark       bool
	View       pandora.View
	DateLayout string
	Timeout    time.Duration
	LogLevel   string
	LogFile    string
}

func addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default ~/.pandora/config.yaml)")
	f.String("base-url", pandorahttp.DefaultBaseURL, "companion API base URL")
	f.String("user", "", "user id for this run, overrides the stored identity")
	f.String("state-file", defaultPath("state.json"), "file holding the stored identity and theme")
	f.String("data-dir", "", "directory searched for mood.json, stress.json and sleep.json")
	f.Bool("dark", true, "start in night mode when no theme is stored")
	f.String("view", pandora.ViewChat.String(), "view shown at start-up (chat|insights|rituals)")
	f.String("date-layout", pandora.DefaultDateLayout, "Go time layout for session dates")
	f.Duration("timeout", bt.DefaultFetchTimeout, "session fetch timeout")
	f.String("log-level", "info", "log level (debug|info|warn|error)")
	f.String("log-file", defaultPath("pandora.log"), "log file")
}

// initConfig layers configuration sources into v. Precedence from highest:
// flags, PANDORA_* environment (including .env), config file, defaults.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := loadDotenv(dotenvFile); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// loadDotenv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		BaseURL:    strings.TrimSpace(v.GetString("base-url")),
		User:       strings.TrimSpace(v.GetString("user")),
		StateFile:  expandHome(v.GetString("state-file")),
		DataDir:    expandHome(v.GetString("data-dir")),
		Dark:       v.GetBool("dark"),
		DateLayout: v.GetString("date-layout"),
		Timeout:    v.GetDuration("timeout"),
		LogLevel:   v.GetString("log-level"),
		LogFile:    expandHome(v.GetString("log-file")),
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return config{}, fmt.Errorf("invalid base-url %q", cfg.BaseURL)
	}
	if cfg.StateFile == "" {
		return config{}, errors.New("state-file must not be empty")
	}
	view, err := pandora.ParseView(strings.TrimSpace(v.GetString("view")))
	if err != nil {
		return config{}, fmt.Errorf("invalid view: %w", err)
	}
	cfg.View = view
	if cfg.DateLayout == "" {
		cfg.DateLayout = pandora.DefaultDateLayout
	}
	if cfg.Timeout < 0 {
		return config{}, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pandora")
}

func defaultPath(name string) string {
	return filepath.Join(defaultDir(), name)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
