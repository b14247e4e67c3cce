// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/invitations"
	"github.com/canonical/agency-service/pkg/subaccount"
)

var (
	subAccountInput subaccount.SubAccountInput
	denyAccess      bool
)

var invitationCmd = &cobra.Command{
	Use:   "invitation",
	Short: "Manage agency invitations",
}

var createInvitationCmd = &cobra.Command{
	Use:   "create [agency-id] [email] [role]",
	Short: "Invite an email to join an agency",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		invite := new(invitations.Invite)
		req := invitations.CreateInvitationRequest{Email: args[1], Role: args[2]}

		if err := getClient().do(context.Background(), http.MethodPost, "/api/v0/agencies/"+args[0]+"/invitations", req, invite); err != nil {
			return fmt.Errorf("failed to invite: %w", err)
		}

		fmt.Printf("Invitation created: %s\n", invite.Invitation.ID)
		if invite.Link != "" {
			fmt.Printf("Recovery link: %s\nCode: %s\n", invite.Link, invite.Code)
		}
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list [agency-id]",
	Short: "List the invitations of an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []*types.Invitation
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/agencies/"+args[0]+"/invitations", nil, &list); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tSTATUS")
		for _, i := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, i.Status)
		}
		w.Flush()
		return nil
	},
}

var cancelInvitationCmd = &cobra.Command{
	Use:   "cancel [agency-id] [invitation-id]",
	Short: "Cancel a pending invitation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/api/v0/agencies/%s/invitations/%s", args[0], args[1])
		if err := getClient().do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}

		fmt.Printf("Invitation cancelled: %s\n", args[1])
		return nil
	},
}

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the pending invitation of the caller, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp invitations.ReconcileResponse
		if err := getClient().do(context.Background(), http.MethodPost, "/api/v0/me/reconcile", nil, &resp); err != nil {
			return fmt.Errorf("failed to reconcile: %w", err)
		}

		if resp.AgencyID == "" {
			fmt.Println("No invitation found")
			return nil
		}
		fmt.Printf("Member of agency %s\n", resp.AgencyID)
		return nil
	},
}

var subAccountCmd = &cobra.Command{
	Use:   "subaccount",
	Short: "Manage subaccounts and their access grants",
}

var createSubAccountCmd = &cobra.Command{
	Use:   "create [agency-id] [name]",
	Short: "Create a subaccount under an agency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		subAccountInput.Name = args[1]

		sub := new(types.SubAccount)
		if err := getClient().do(context.Background(), http.MethodPost, "/api/v0/agencies/"+args[0]+"/subaccounts", &subAccountInput, sub); err != nil {
			return fmt.Errorf("failed to create subaccount: %w", err)
		}

		fmt.Printf("Subaccount created: %s (ID: %s)\n", sub.Name, sub.ID)
		return nil
	},
}

var listSubAccountsCmd = &cobra.Command{
	Use:   "list [agency-id]",
	Short: "List the subaccounts visible to the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var subs []*types.SubAccount
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/agencies/"+args[0]+"/subaccounts", nil, &subs); err != nil {
			return fmt.Errorf("failed to list subaccounts: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL")
		for _, s := range subs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.CompanyEmail)
		}
		w.Flush()
		return nil
	},
}

var deleteSubAccountCmd = &cobra.Command{
	Use:   "delete [subaccount-id]",
	Short: "Delete a subaccount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(context.Background(), http.MethodDelete, "/api/v0/subaccounts/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete subaccount: %w", err)
		}

		fmt.Printf("Subaccount deleted: %s\n", args[0])
		return nil
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant [agency-id] [subaccount-id] [email]",
	Short: "Grant, or with --deny revoke, access to a subaccount",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := subaccount.SetPermissionRequest{SubAccountID: args[1], Email: args[2], Access: !denyAccess}

		if err := getClient().do(context.Background(), http.MethodPut, "/api/v0/agencies/"+args[0]+"/permissions", req, nil); err != nil {
			return fmt.Errorf("failed to set permission: %w", err)
		}

		fmt.Printf("Access of %s to %s set to %v\n", args[2], args[1], req.Access)
		return nil
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions [agency-id] [email]",
	Short: "Show the effective grants of an email",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var perms []*types.Permission
		path := "/api/v0/agencies/" + args[0] + "/permissions?email=" + url.QueryEscape(args[1])

		if err := getClient().do(context.Background(), http.MethodGet, path, nil, &perms); err != nil {
			return fmt.Errorf("failed to list permissions: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SUBACCOUNT_ID\tACCESS\tSINCE")
		for _, p := range perms {
			fmt.Fprintf(w, "%s\t%v\t%s\n", p.SubAccountID, p.Access, p.CreatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invitationCmd)
	invitationCmd.AddCommand(createInvitationCmd)
	invitationCmd.AddCommand(listInvitationsCmd)
	invitationCmd.AddCommand(cancelInvitationCmd)
	invitationCmd.AddCommand(acceptCmd)

	rootCmd.AddCommand(subAccountCmd)
	subAccountCmd.AddCommand(createSubAccountCmd)
	subAccountCmd.AddCommand(listSubAccountsCmd)
	subAccountCmd.AddCommand(deleteSubAccountCmd)
	subAccountCmd.AddCommand(grantCmd)
	subAccountCmd.AddCommand(permissionsCmd)

	createSubAccountCmd.Flags().StringVar(&subAccountInput.CompanyEmail, "email", "", "Company email")
	createSubAccountCmd.Flags().StringVar(&subAccountInput.CompanyPhone, "phone", "", "Company phone")
	createSubAccountCmd.Flags().StringVar(&subAccountInput.SubAccountLogo, "logo", "", "Logo URL")
	createSubAccountCmd.Flags().IntVar(&subAccountInput.Goal, "goal", 5000, "Goal")
	_ = createSubAccountCmd.MarkFlagRequired("email")
	_ = createSubAccountCmd.MarkFlagRequired("phone")

	grantCmd.Flags().BoolVar(&denyAccess, "deny", false, "Record a revoked grant instead")
}
