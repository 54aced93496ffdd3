package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPasswordCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password management",
	}

	var current, next, confirm string
	change := &cobra.Command{
		Use:   "change",
		Short: "Change the signed-in employee's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			msg, err := svcs.PasswordService.ChangePassword(st.context(cmd), current, next, confirm)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	f := change.Flags()
	f.StringVar(&current, "current", "", "Current password")
	f.StringVar(&next, "new", "", "New password (8-16 characters)")
	f.StringVar(&confirm, "confirm", "", "New password again")

	cmd.AddCommand(change)
	return cmd
}
