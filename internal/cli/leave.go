package cli

import (
	"fmt"

	"github.com/MKhiriev/go-attendance/models"
	"github.com/spf13/cobra"
)

func newLeaveCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave requests",
	}

	var req models.LeaveRequest
	var leaveType string
	apply := &cobra.Command{
		Use:   "apply",
		Short: "Apply for leave",
		Example: `  attendancectl leave apply --type sick --from 2025-06-10 --to 2025-06-12 \
    --reason "Flu"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			req.LeaveType = models.LeaveType(leaveType)
			msg, days, err := svcs.LeaveService.Apply(st.context(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d day(s))\n", msg, days)
			return nil
		},
	}
	f := apply.Flags()
	f.StringVarP(&leaveType, "type", "t", "", "Leave type: sick, personal, vacation or emergency")
	f.StringVar(&req.StartDate, "from", "", "First day (YYYY-MM-DD)")
	f.StringVar(&req.EndDate, "to", "", "Last day (YYYY-MM-DD)")
	f.StringVarP(&req.Reason, "reason", "r", "", "Reason")

	cmd.AddCommand(apply)
	return cmd
}
