package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/spf13/cobra"
)

type period struct {
	month, year int
}

func (p *period) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&p.month, "month", "m", 0, "Month 1-12 (current month by default)")
	cmd.Flags().IntVarP(&p.year, "year", "y", 0, "Year (current year by default)")
}

func (p period) resolve(st *rootState) (int, int) {
	now := st.opts.Now()
	month, year := p.month, p.year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func newReportCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly attendance reports",
	}
	cmd.AddCommand(
		newReportMonthlyCommand(st),
		newReportAllCommand(st),
		newReportPerformanceCommand(st),
		newReportCalendarCommand(st),
		newReportCSVCommand(st),
	)
	return cmd
}

func newReportMonthlyCommand(st *rootState) *cobra.Command {
	var p period
	var code string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Daily records of one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			month, year := p.resolve(st)
			report, err := svcs.ReportService.EmployeeMonthly(st.context(cmd), code, month, year)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(report.AttendanceDetails))
			for _, d := range report.AttendanceDetails {
				rows = append(rows, []string{
					d.Date,
					orDash(service.FormatClockTime(d.CheckIn)),
					orDash(service.FormatClockTime(d.CheckOut)),
					strconv.FormatFloat(d.HoursWorked, 'f', 2, 64),
					orDash(d.Status),
					orDash(d.ArrivalStatus),
				})
			}
			out := cmd.OutOrStdout()
			renderTable(out, []string{"Date", "Check-in", "Check-out", "Hours", "Status", "Arrival"}, rows)
			fmt.Fprintf(out, "Total hours worked: %.2f\n", report.Summary.TotalHoursWorked)
			return nil
		},
	}
	p.bind(cmd)
	cmd.Flags().StringVar(&code, "employee", "", "Employee code (signed-in employee by default)")
	return cmd
}

func newReportAllCommand(st *rootState) *cobra.Command {
	var p period

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Monthly summary of every employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			month, year := p.resolve(st)
			entries, err := svcs.ReportService.AllEmployees(st.context(cmd), month, year)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.EmployeeName,
					e.EmployeeCode,
					strconv.Itoa(e.PresentDays),
					strconv.Itoa(e.AbsentDays),
					strconv.Itoa(e.TotalWorkingDays),
					strconv.FormatFloat(e.AttendancePercentage, 'f', -1, 64) + "%",
					e.TotalTimeWorked,
				})
			}
			out := cmd.OutOrStdout()
			renderTable(out, service.CSVHeader, rows)

			stats := service.OverallStatsOf(entries)
			high, medium, low := service.AttendanceBuckets(entries)
			printFields(out, [][2]string{
				{"Employees", strconv.Itoa(stats.TotalEmployees)},
				{"Average attendance", strconv.Itoa(stats.AvgAttendance) + "%"},
				{"Present days", strconv.Itoa(stats.TotalPresent)},
				{"Absent days", strconv.Itoa(stats.TotalAbsent)},
				{"High / medium / low", fmt.Sprintf("%d / %d / %d", high, medium, low)},
			})
			return nil
		},
	}
	p.bind(cmd)
	return cmd
}

func newReportPerformanceCommand(st *rootState) *cobra.Command {
	var p period

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Rank employees by hours worked",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			month, year := p.resolve(st)
			entries, err := svcs.ReportService.AllEmployees(st.context(cmd), month, year)
			if err != nil {
				return err
			}

			overview := service.PerformanceOverviewOf(entries)
			rows := make([][]string, 0, len(overview.Entries))
			for _, e := range overview.Entries {
				rows = append(rows, []string{
					strconv.Itoa(e.Rank),
					e.EmployeeName,
					e.EmployeeCode,
					strconv.FormatFloat(e.HoursWorked, 'f', 2, 64),
					strconv.FormatFloat(e.AttendanceRate, 'f', -1, 64) + "%",
					string(e.Band),
				})
			}
			out := cmd.OutOrStdout()
			renderTable(out, []string{"Rank", "Employee", "Code", "Hours", "Attendance", "Band"}, rows)

			top := "-"
			if overview.TopPerformer != nil {
				top = overview.TopPerformer.EmployeeName
			}
			printFields(out, [][2]string{
				{"Average hours", strconv.Itoa(overview.AvgHours)},
				{"Average attendance", strconv.Itoa(overview.AvgAttendance) + "%"},
				{"Top performer", top},
				{"Improvement needed", strconv.Itoa(overview.ImprovementNeeded)},
			})
			return nil
		},
	}
	p.bind(cmd)
	return cmd
}

func newReportCalendarCommand(st *rootState) *cobra.Command {
	var p period
	var code string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Month grid of present and absent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			month, year := p.resolve(st)
			cal, err := svcs.ReportService.DailyCalendar(st.context(cmd), code, month, year)
			if err != nil {
				return err
			}

			var rows [][]string
			for i := 0; i < len(cal.Cells); i += 7 {
				week := make([]string, 7)
				for j := 0; j < 7 && i+j < len(cal.Cells); j++ {
					c := cal.Cells[i+j]
					if c.Day == 0 {
						continue
					}
					week[j] = strconv.Itoa(c.Day)
					if c.Mark != "" {
						week[j] += " " + string(c.Mark)
					}
				}
				rows = append(rows, week)
			}
			out := cmd.OutOrStdout()
			renderTable(out, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, rows)
			fmt.Fprintf(out, "Present %d, absent %d, attendance %d%%\n", cal.Present, cal.Absent, cal.Percentage)
			return nil
		},
	}
	p.bind(cmd)
	cmd.Flags().StringVar(&code, "employee", "", "Employee code (signed-in employee by default)")
	return cmd
}

func newReportCSVCommand(st *rootState) *cobra.Command {
	var p period
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the all-employee report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := st.services(cmd)
			if err != nil {
				return err
			}
			month, year := p.resolve(st)

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err = svcs.ReportService.ExportCSV(st.context(cmd), w, month, year); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			}
			return nil
		},
	}
	p.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout by default)")
	return cmd
}
