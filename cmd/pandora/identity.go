package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/pandora"
	pandorajson "github.com/fwojciec/pandora/json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newIdentityCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the stored user id",
	}

	store := func() (*pandorajson.Store, error) {
		cfg, err := loadConfig(v)
		if err != nil {
			return nil, err
		}
		return pandorajson.NewStore(cfg.StateFile), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <user-id>",
		Short: "Store the user id whose sessions are listed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return errors.New("user id must not be empty")
			}
			s, err := store()
			if err != nil {
				return err
			}
			if err := s.Set(pandora.UserIDKey, id); err != nil {
				return fmt.Errorf("store identity: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user id set to %s\n", id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store()
			if err != nil {
				return err
			}
			id, err := pandora.LookupUserID(s)
			if err != nil {
				return fmt.Errorf("read identity: %w", err)
			}
			if id == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no user id stored")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the stored user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store()
			if err != nil {
				return err
			}
			if err := s.Delete(pandora.UserIDKey); err != nil {
				return fmt.Errorf("clear identity: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "user id cleared")
			return nil
		},
	})

	return cmd
}
