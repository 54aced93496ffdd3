package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-attendance/models"
	"github.com/spf13/cobra"
)

const notificationTimeLayout = "2006-01-02 15:04"

func newNotificationsCommand(st *rootState) *cobra.Command {
	var global bool

	list := func(cmd *cobra.Command, args []string) error {
		svcs, err := st.services(cmd)
		if err != nil {
			return err
		}
		var feed string
		if global {
			feed = models.GlobalFeed
		}
		notifications, err := svcs.NotificationService.Load(st.context(cmd), feed)
		if err != nil {
			return err
		}
		if len(notifications) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No announcements")
			return nil
		}

		rows := make([][]string, 0, len(notifications))
		for _, n := range notifications {
			ts := "-"
			if !n.Timestamp.IsZero() {
				ts = n.Timestamp.Format(notificationTimeLayout)
			}
			read := ""
			if n.IsRead {
				read = "yes"
			}
			rows = append(rows, []string{strconv.FormatInt(n.ID, 10), ts, n.Message, read})
		}
		renderTable(cmd.OutOrStdout(), []string{"ID", "Time", "Message", "Read"}, rows)
		return nil
	}

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"announcements"},
		Short:   "List announcements",
		RunE:    list,
	}
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Show the global feed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	listCmd.Flags().BoolVarP(&global, "global", "g", false, "Show the global feed")

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one announcement read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid announcement id %q", args[0])
			}
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			if err = svcs.NotificationService.MarkAsRead(st.context(cmd), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Announcement %d marked as read\n", id)
			return nil
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every announcement read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			if err = svcs.NotificationService.MarkAllAsRead(st.context(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All announcements marked as read")
			return nil
		},
	}

	cmd.AddCommand(listCmd, read, readAll)
	return cmd
}
