package cli

import (
	"fmt"

	"github.com/MKhiriev/go-attendance/models"
	"github.com/spf13/cobra"
)

func newEmployeeCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Employee records",
	}

	show := &cobra.Command{
		Use:   "show [employee-code]",
		Short: "Show an employee, the signed-in one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			var code string
			if len(args) == 1 {
				code = args[0]
			}
			d, err := svcs.EmployeeService.Details(st.context(cmd), code)
			if err != nil {
				return err
			}
			printFields(cmd.OutOrStdout(), [][2]string{
				{"Employee code", orDash(d.EmployeeCode)},
				{"Full name", orDash(d.FullName)},
			})
			return nil
		},
	}

	var req models.RegisterEmployeeRequest
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			msg, err := svcs.EmployeeService.Register(st.context(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	f := register.Flags()
	f.StringVar(&req.FirstName, "first-name", "", "First name")
	f.StringVar(&req.MiddleName, "middle-name", "", "Middle name")
	f.StringVar(&req.LastName, "last-name", "", "Last name")
	f.StringVar(&req.EmailID, "email", "", "E-mail")
	f.StringVar(&req.PhoneNumber, "phone", "", "10-digit phone number")
	f.StringVar(&req.JoiningDate, "joining-date", "", "Joining date (YYYY-MM-DD)")

	cmd.AddCommand(show, register)
	return cmd
}

func newAdminCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator corrections",
	}

	var req models.SetAttendanceRequest
	var statusFlag string
	set := &cobra.Command{
		Use:   "set-attendance",
		Short: "Overwrite one day of an employee's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseAttendanceStatus(statusFlag)
			if err != nil {
				return err
			}
			req.Status = status

			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			msg, err := svcs.AdminService.SetAttendance(st.context(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	f := set.Flags()
	f.StringVar(&req.EmployeeCode, "employee", "", "Employee code")
	f.StringVar(&req.Date, "date", "", "Day to correct (YYYY-MM-DD)")
	f.StringVar(&req.CheckInTime, "check-in", "", "Entry time (HH:MM)")
	f.StringVar(&req.CheckOutTime, "check-out", "", "Exit time (HH:MM)")
	f.StringVar(&statusFlag, "status", "1", "Attendance status")
	f.StringVar(&req.Remarks, "remarks", "", "Remarks")

	cmd.AddCommand(set)
	return cmd
}
