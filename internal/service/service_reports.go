package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/models"
)

// CSVHeader is the first row of ExportCSV.
var CSVHeader = []string{
	"Employee Name",
	"Employee Code",
	"Present Days",
	"Absent Days",
	"Total Working Days",
	"Attendance %",
	"Total Time Worked",
}

type reportService struct {
	identity IdentityStore
	api      adapter.AttendanceAPI
}

// NewReportService constructs a ReportService.
func NewReportService(identity IdentityStore, api adapter.AttendanceAPI) ReportService {
	return &reportService{identity: identity, api: api}
}

// EmployeeMonthly implements ReportService.
func (s *reportService) EmployeeMonthly(ctx context.Context, code string, month, year int) (models.EmployeeMonthlyReport, error) {
	if err := validPeriod(month, year); err != nil {
		return models.EmployeeMonthlyReport{}, err
	}
	code, err := resolveEmployeeCode(ctx, s.identity, code)
	if err != nil {
		return models.EmployeeMonthlyReport{}, err
	}

	report, err := s.api.ByEmployeeReport(ctx, code, month, year)
	if err != nil {
		return models.EmployeeMonthlyReport{}, mapAdapterError(err)
	}
	return report, nil
}

// AllEmployees implements ReportService.
func (s *reportService) AllEmployees(ctx context.Context, month, year int) ([]models.MonthlyReportEntry, error) {
	if err := validPeriod(month, year); err != nil {
		return nil, err
	}
	if !s.identity.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}

	entries, err := s.api.AllEmployeeReport(ctx, month, year)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

// DailyCalendar implements ReportService.
func (s *reportService) DailyCalendar(ctx context.Context, code string, month, year int) (models.CalendarMonth, error) {
	report, err := s.EmployeeMonthly(ctx, code, month, year)
	if err != nil {
		return models.CalendarMonth{}, err
	}
	return BuildCalendar(year, month, report.AttendanceDetails), nil
}

// ExportCSV implements ReportService.
func (s *reportService) ExportCSV(ctx context.Context, w io.Writer, month, year int) error {
	entries, err := s.AllEmployees(ctx, month, year)
	if err != nil {
		return err
	}
	if err = WriteReportCSV(w, entries); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "reportService.ExportCSV").Msg("csv export failed")
		return err
	}
	return nil
}

func validPeriod(month, year int) error {
	if month < 1 || month > 12 || year <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// WriteReportCSV writes entries under CSVHeader.
func WriteReportCSV(w io.Writer, entries []models.MonthlyReportEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.EmployeeName,
			e.EmployeeCode,
			strconv.Itoa(e.PresentDays),
			strconv.Itoa(e.AbsentDays),
			strconv.Itoa(e.TotalWorkingDays),
			strconv.FormatFloat(e.AttendancePercentage, 'f', -1, 64) + "%",
			e.TotalTimeWorked,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// OverallStatsOf aggregates an all-employee report.
func OverallStatsOf(entries []models.MonthlyReportEntry) models.OverallStats {
	stats := models.OverallStats{TotalEmployees: len(entries)}
	if len(entries) == 0 {
		return stats
	}
	var sum float64
	for _, e := range entries {
		sum += e.AttendancePercentage
		stats.TotalPresent += e.PresentDays
		stats.TotalAbsent += e.AbsentDays
	}
	stats.AvgAttendance = int(math.Round(sum / float64(len(entries))))
	return stats
}

// AttendanceBuckets counts employees at or above 80%, between 60% and 80%,
// and below 60%.
func AttendanceBuckets(entries []models.MonthlyReportEntry) (high, medium, low int) {
	for _, e := range entries {
		switch {
		case e.AttendancePercentage >= 80:
			high++
		case e.AttendancePercentage >= 60:
			medium++
		default:
			low++
		}
	}
	return high, medium, low
}

// BandOf grades an attendance percentage.
func BandOf(rate float64) models.PerformanceBand {
	switch {
	case rate >= 90:
		return models.BandExcellent
	case rate >= 80:
		return models.BandGood
	case rate >= 70:
		return models.BandAverage
	default:
		return models.BandPoor
	}
}

// PerformanceOverviewOf ranks employees by hours worked, highest first. The
// top performer is the first employee, in report order, with the highest
// attendance rate.
func PerformanceOverviewOf(entries []models.MonthlyReportEntry) models.PerformanceOverview {
	var ov models.PerformanceOverview
	if len(entries) == 0 {
		return ov
	}

	ov.Entries = make([]models.PerformanceEntry, 0, len(entries))
	var hours, rate float64
	top := -1
	for i, e := range entries {
		pe := models.PerformanceEntry{
			EmployeeName:   e.EmployeeName,
			EmployeeCode:   e.EmployeeCode,
			HoursWorked:    ParseHours(e.TotalTimeWorked),
			AttendanceRate: e.AttendancePercentage,
			Band:           BandOf(e.AttendancePercentage),
		}
		hours += pe.HoursWorked
		rate += pe.AttendanceRate
		if pe.Band == models.BandPoor || pe.Band == models.BandAverage {
			ov.ImprovementNeeded++
		}
		if top < 0 || pe.AttendanceRate > ov.Entries[top].AttendanceRate {
			top = i
		}
		ov.Entries = append(ov.Entries, pe)
	}

	topPerformer := ov.Entries[top]
	ov.AvgHours = int(math.Round(hours / float64(len(entries))))
	ov.AvgAttendance = int(math.Round(rate / float64(len(entries))))

	sort.SliceStable(ov.Entries, func(i, j int) bool {
		return ov.Entries[i].HoursWorked > ov.Entries[j].HoursWorked
	})
	for i := range ov.Entries {
		ov.Entries[i].Rank = i + 1
		if ov.Entries[i].EmployeeCode == topPerformer.EmployeeCode && topPerformer.Rank == 0 {
			topPerformer.Rank = i + 1
		}
	}
	ov.TopPerformer = &topPerformer
	return ov
}

var (
	hoursMinutesRe = regexp.MustCompile(`^(\d+):(\d{1,2})`)
	hoursNumberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseHours reads a total-time-worked value such as "152 hrs", "123.5" or
// "7:30". Unreadable values count as zero.
func ParseHours(v string) float64 {
	v = strings.TrimSpace(v)
	if m := hoursMinutesRe.FindStringSubmatch(v); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return float64(h) + float64(mins)/60
	}
	n := hoursNumberRe.FindString(v)
	if n == "" {
		return 0
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0
	}
	return f
}

// BuildCalendar lays out month/year on a Monday-first grid and marks each
// day from details. Present and Absent count the detail rows; Percentage is
// the rounded share of present rows.
func BuildCalendar(year, month int, details []models.AttendanceDetail) models.CalendarMonth {
	cal := models.CalendarMonth{Year: year, Month: month}

	marks := make(map[string]models.DayMark, len(details))
	for _, d := range details {
		mark := dayMark(d.Status)
		if mark == models.DayPresent {
			cal.Present++
		}
		if len(d.Date) >= len(models.DateLayout) {
			marks[d.Date[:len(models.DateLayout)]] = mark
		}
	}
	total := len(details)
	cal.Absent = total - cal.Present
	if total > 0 {
		cal.Percentage = int(math.Round(float64(cal.Present) / float64(total) * 100))
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		lead = 6
	}
	days := first.AddDate(0, 1, -1).Day()

	cal.Cells = make([]models.CalendarDay, 0, lead+days)
	for range lead {
		cal.Cells = append(cal.Cells, models.CalendarDay{})
	}
	for d := 1; d <= days; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		cal.Cells = append(cal.Cells, models.CalendarDay{Date: date, Day: d, Mark: marks[date]})
	}
	return cal
}

func dayMark(status string) models.DayMark {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "p", "present":
		return models.DayPresent
	case "a", "absent":
		return models.DayAbsent
	}
	return models.DayUnknown
}
