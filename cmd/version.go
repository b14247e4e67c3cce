// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the agency-service version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !versionJSON {
			fmt.Fprintf(cmd.OutOrStdout(), "agency-service %s\n", version.Version)
			return nil
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
			"version": version.Version,
			"go":      runtime.Version(),
		})
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
