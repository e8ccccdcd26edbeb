package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Renderer turns a Summary into an alternative representation, such as CSV
// for download.
type Renderer interface {
	RenderSummary(summary Summary) (string, error)
}

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (r *CsvReportRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := [][]string{
		{"Start date", summary.Period.StartDate},
		{"End date", summary.Period.EndDate},
		{"Total work", durationToString(summary.TotalWork)},
		{"Total overtime", durationToString(summary.TotalOvertime)},
		{"Work days", strconv.Itoa(summary.TotalWorkDays)},
		{"Sick days", strconv.Itoa(summary.SickDays)},
		{"Official holidays", strconv.Itoa(summary.OfficialHolidayDays)},
		{"Target work", durationToString(summary.TargetWork)},
		{"Remaining vacation days", strconv.Itoa(summary.RemainingVacationDays)},
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

// durationToString renders HH:MM:SS. Negative durations display as zero.
func durationToString(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}
	hours := strconv.Itoa(int(duration.Hours()))
	if len(hours) == 1 {
		hours = "0" + hours
	}
	minutes := strconv.Itoa(int(duration.Minutes()) % 60)
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	seconds := strconv.Itoa(int(duration.Seconds()) % 60)
	if len(seconds) == 1 {
		seconds = "0" + seconds
	}
	return hours + ":" + minutes + ":" + seconds
}
