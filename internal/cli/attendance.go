package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/spf13/cobra"
)

func newEntryCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "entry",
		Short: "Mark today's entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			msg, err := svcs.AttendanceService.MarkEntry(st.context(cmd))
			if errors.Is(err, service.ErrEntryAlreadyMarked) {
				fmt.Fprintln(cmd.OutOrStdout(), "Entry already marked for today")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newExitCommand(st *rootState) *cobra.Command {
	var statusFlag, remarks string

	cmd := &cobra.Command{
		Use:   "exit",
		Short: "Mark today's exit",
		Long: `Mark today's exit with a status. Status is a number or a name:
1 Present, 2 Absent, 3 Half-day, 4 Leave, 5 WFH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseAttendanceStatus(statusFlag)
			if err != nil {
				return err
			}
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			msg, err := svcs.AttendanceService.MarkExit(st.context(cmd), status, remarks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "1", "Attendance status")
	cmd.Flags().StringVarP(&remarks, "remarks", "r", "", "Free-form remarks")
	return cmd
}

func newStatusCommand(st *rootState) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's check-in status and worked duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			ctx := st.context(cmd)
			if !cached {
				if err = svcs.CheckInService.RefreshCheckInStatus(ctx); err != nil {
					return err
				}
			}
			status, _ := svcs.CheckInService.CheckInStatus(ctx)
			duration, _ := svcs.CheckInService.Duration(ctx)
			marked := "no"
			if svcs.AttendanceService.HasMarkedAttendance(ctx) {
				marked = "yes"
			}
			printFields(cmd.OutOrStdout(), [][2]string{
				{"Entry marked", marked},
				{"Status", orDash(status)},
				{"Duration", orDash(duration)},
			})
			return nil
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "Only show what is cached for today")
	return cmd
}

func newDetailsCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "details",
		Short: "Show today's entry and exit times",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			v := svcs.AttendanceService.TodayAttendance(st.context(cmd))
			printFields(cmd.OutOrStdout(), [][2]string{
				{"Check-in", v.CheckInTime},
				{"Check-out", v.CheckOutTime},
				{"Status", v.Status},
				{"Remarks", orDash(v.Remarks)},
			})
			return nil
		},
	}
}
