// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	userID       string
	httpEndpoint string
	bearerToken  string
)

var rootCmd = &cobra.Command{
	Use:           "agency-service",
	Short:         "Agency back office",
	Long:          `Runs the agency back office and manages agencies, subaccounts and their teams through its API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "Agency service endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity ID to act as, sent in the trusted identity header")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token, see the token command")
}
