package cli

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-attendance/models"
	"github.com/spf13/cobra"
)

func newLoginCommand(st *rootState) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			if password, err = readSecret(cmd, password, "Password"); err != nil {
				return err
			}

			user, err := svcs.AuthService.Login(st.context(cmd), models.Credentials{
				Email:    strings.TrimSpace(email),
				Password: password,
			})
			if err != nil {
				return err
			}

			name := user.Name
			if name == "" {
				name = user.Email
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", name, user.EmployeeCode)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Employee e-mail")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			svcs.AuthService.Logout(st.context(cmd))
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoAmICommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			user, ok := svcs.AuthService.CurrentUser(st.context(cmd))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			printFields(cmd.OutOrStdout(), [][2]string{
				{"Employee code", user.EmployeeCode},
				{"Name", orDash(user.Name)},
				{"Email", orDash(user.Email)},
				{"Role", orDash(user.Role)},
			})
			return nil
		},
	}
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
