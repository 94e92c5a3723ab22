// Command pandora is a terminal client for the Pandora wellness companion.
//
// Usage:
//
//	pandora [flags]                 run the TUI
//	pandora identity set <user-id>  store the user id
//	pandora identity show           print the stored user id
//	pandora identity clear          forget the stored user id
//
// Every flag can also be set as PANDORA_<FLAG> in the environment, in a
// .env file in the working directory, or in ~/.pandora/config.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/pandora"
	bt "github.com/fwojciec/pandora/bubbletea"
	"github.com/fwojciec/pandora/fs"
	pandorahttp "github.com/fwojciec/pandora/http"
	pandorajson "github.com/fwojciec/pandora/json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pandora: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "pandora",
		Short: "Terminal client for the Pandora wellness companion",
		Long: `Pandora shows your past conversations with the companion, lets you resume
one or start fresh, and charts your mood, stress and sleep.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	addFlags(cmd)
	cmd.AddCommand(newIdentityCmd(v))
	return cmd
}

func runTUI(ctx context.Context, cfg config) error {
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store := pandorajson.NewStore(cfg.StateFile)
	userID, err := resolveUserID(store, cfg.User)
	if err != nil {
		return err
	}
	isDark, err := pandora.LookupTheme(store, cfg.Dark)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	datasets, err := fs.LoadDatasets(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	client := pandorahttp.NewSessionClient(
		pandorahttp.WithBaseURL(cfg.BaseURL),
		pandorahttp.WithLogger(logger),
	)
	directory := pandora.NewSessionDirectory(client,
		pandora.WithDateLayout(cfg.DateLayout),
		pandora.WithDirectoryLogger(logger),
	)

	logger.Info("starting", "base_url", cfg.BaseURL, "identity", userID != "", "dark", isDark, "state_file", cfg.StateFile)

	m := bt.New(directory,
		bt.WithSidebar(bt.NewSidebar(directory, bt.WithFetchTimeout(cfg.Timeout))),
		bt.WithUserID(userID),
		bt.WithDark(isDark),
		bt.WithView(cfg.View),
		bt.WithStore(store),
		bt.WithDatasets(datasets),
		bt.WithLogger(logger),
	)
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// resolveUserID returns override when set, otherwise the stored identity.
// An empty result means no identity is available.
func resolveUserID(store pandora.KeyValueStore, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	id, err := pandora.LookupUserID(store)
	if err != nil {
		return "", fmt.Errorf("read identity: %w", err)
	}
	return id, nil
}
