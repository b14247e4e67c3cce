// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var roleSyncCmd = &cobra.Command{
	Use:   "role-sync",
	Short: "Run one role sync pass",
	Long:  `Push the store role of every user with a pending role sync marker to the identity provider, then exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadSpecs()
		if err != nil {
			return err
		}

		b, err := newBackends(cmd.Context(), specs)
		if err != nil {
			return err
		}
		defer b.close()

		n, err := b.roleSync.Reconcile(cmd.Context())
		if err != nil {
			return fmt.Errorf("role sync failed after %d users: %w", n, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Synced %d roles\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roleSyncCmd)
}
