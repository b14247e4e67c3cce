// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/agency"
)

var agencyInput agency.AgencyInput

var agencyCmd = &cobra.Command{
	Use:   "agency",
	Short: "Manage agencies and their team",
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the caller and where the agency entry point sends them",
	RunE: func(cmd *cobra.Command, args []string) error {
		var me agency.MeResponse
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/me", nil, &me); err != nil {
			return fmt.Errorf("failed to get caller: %w", err)
		}

		if me.Caller != nil {
			fmt.Printf("Caller: %s (ID: %s)\n", me.Caller.Email, me.Caller.ID)
		}
		switch {
		case me.Entry == nil:
		case me.Entry.Onboarding:
			fmt.Println("Not a member of any agency, create one to get started")
		default:
			fmt.Printf("Agency: %s\nRedirect: %s\n", me.Entry.AgencyID, me.Entry.Redirect)
		}
		return nil
	},
}

var createAgencyCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an agency owned by the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agencyInput.Name = args[0]

		a := new(types.Agency)
		if err := getClient().do(context.Background(), http.MethodPost, "/api/v0/agencies", &agencyInput, a); err != nil {
			return fmt.Errorf("failed to create agency: %w", err)
		}

		fmt.Printf("Agency created: %s (ID: %s)\n", a.Name, a.ID)
		return nil
	},
}

var getAgencyCmd = &cobra.Command{
	Use:   "get [agency-id]",
	Short: "Show an agency with its sidebar and latest activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		details := new(agency.Details)
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/agencies/"+args[0], nil, details); err != nil {
			return fmt.Errorf("failed to get agency: %w", err)
		}

		a := details.Agency
		fmt.Printf("%s (ID: %s)\nEmail: %s\nWhite label: %v\nGoal: %d\n\n", a.Name, a.ID, a.CompanyEmail, a.WhiteLabel, a.Goal)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SIDEBAR\tLINK")
		for _, o := range details.Sidebar {
			fmt.Fprintf(w, "%s\t%s\n", o.Name, o.Link)
		}
		w.Flush()

		fmt.Println()
		for _, n := range details.Notifications {
			fmt.Printf("%s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
		}
		return nil
	},
}

var deleteAgencyCmd = &cobra.Command{
	Use:   "delete [agency-id]",
	Short: "Delete an agency and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(context.Background(), http.MethodDelete, "/api/v0/agencies/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete agency: %w", err)
		}

		fmt.Printf("Agency deleted: %s\n", args[0])
		return nil
	},
}

var teamCmd = &cobra.Command{
	Use:   "team [agency-id]",
	Short: "List the members of an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []*types.User
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/agencies/"+args[0]+"/team", nil, &users); err != nil {
			return fmt.Errorf("failed to list team: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tNAME\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Name, u.Role)
		}
		w.Flush()
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [agency-id] [user-id] [role]",
	Short: "Change the role of a team member",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(args[2])
		if err != nil {
			return err
		}

		path := fmt.Sprintf("/api/v0/agencies/%s/team/%s", args[0], args[1])
		if err := getClient().do(context.Background(), http.MethodPut, path, agency.UpdateRoleRequest{Role: role.String()}, nil); err != nil {
			return fmt.Errorf("failed to change role: %w", err)
		}

		fmt.Printf("User %s is now %s\n", args[1], role)
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [agency-id] [user-id]",
	Short: "Remove a member from the agency team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/api/v0/agencies/%s/team/%s", args[0], args[1])
		if err := getClient().do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("User removed: %s\n", args[1])
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "activity [agency-id]",
	Short: "Show the agency activity feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var notifications []*types.Notification
		if err := getClient().do(context.Background(), http.MethodGet, "/api/v0/agencies/"+args[0]+"/notifications", nil, &notifications); err != nil {
			return fmt.Errorf("failed to list activity: %w", err)
		}

		for _, n := range notifications {
			fmt.Printf("%s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agencyCmd)
	agencyCmd.AddCommand(meCmd)
	agencyCmd.AddCommand(createAgencyCmd)
	agencyCmd.AddCommand(getAgencyCmd)
	agencyCmd.AddCommand(deleteAgencyCmd)
	agencyCmd.AddCommand(teamCmd)
	agencyCmd.AddCommand(setRoleCmd)
	agencyCmd.AddCommand(removeMemberCmd)
	agencyCmd.AddCommand(notificationsCmd)

	createAgencyCmd.Flags().StringVar(&agencyInput.CompanyEmail, "email", "", "Company email")
	createAgencyCmd.Flags().StringVar(&agencyInput.CompanyPhone, "phone", "", "Company phone")
	createAgencyCmd.Flags().StringVar(&agencyInput.AgencyLogo, "logo", "", "Logo URL")
	createAgencyCmd.Flags().StringVar(&agencyInput.Country, "country", "", "Country")
	createAgencyCmd.Flags().BoolVar(&agencyInput.WhiteLabel, "white-label", false, "Let subaccounts use the agency logo")
	createAgencyCmd.Flags().IntVar(&agencyInput.Goal, "goal", 5, "Subaccount goal")

	_ = createAgencyCmd.MarkFlagRequired("email")
	_ = createAgencyCmd.MarkFlagRequired("phone")
}
