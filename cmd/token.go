// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenConfig clientcredentials.Config

var (
	issuerURL   string
	printHeader bool
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the agency API using the client credentials flow",
	Long:  `Get an access token using the client credentials flow. Pass it to the other commands with --token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if tokenConfig.TokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
			}
			tokenConfig.TokenURL = provider.Endpoint().TokenURL
		}

		token, err := tokenConfig.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if printHeader {
			fmt.Fprintf(cmd.OutOrStdout(), "Authorization: %s %s\n", token.Type(), token.AccessToken)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenConfig.ClientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&tokenConfig.ClientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenConfig.TokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&tokenConfig.Scopes, "scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().BoolVar(&printHeader, "header", false, "Print a ready to use Authorization header")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
