package csvio

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// ScheduleRow is one meeting of one section of a generated schedule.
// Schedule numbers start at 1 and follow generation order. A section without meetings (TBA)
// takes a single row with empty term, day, start and end
type ScheduleRow struct {
	Schedule int    `csv:"schedule"`
	Section  string `csv:"section"`
	Term     string `csv:"term"`
	Day      string `csv:"day"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
}

func (row ScheduleRow) hasMeeting() bool {
	return row.Term != "" || row.Day != "" || row.Start != "" || row.End != ""
}

// Rows flattens schedules into one row per meeting, keeping schedule, course and meeting order
func Rows(schedules []model.Schedule) []*ScheduleRow {
	rows := make([]*ScheduleRow, 0)
	for i, schedule := range schedules {
		for _, section := range schedule {
			if len(section.Meetings) == 0 {
				rows = append(rows, &ScheduleRow{Schedule: i + 1, Section: section.Name})
				continue
			}
			for _, meeting := range section.Meetings {
				rows = append(rows, &ScheduleRow{
					Schedule: i + 1,
					Section:  section.Name,
					Term:     meeting.Term,
					Day:      meeting.Day,
					Start:    meeting.Start,
					End:      meeting.End,
				})
			}
		}
	}
	return rows
}

// ExportSchedules writes the rows of the schedules, header included, to out
func ExportSchedules(out io.Writer, schedules []model.Schedule) error {
	rows := Rows(schedules)
	return gocsv.Marshal(&rows, out)
}

func ExportSchedulesString(schedules []model.Schedule) (string, error) {
	rows := Rows(schedules)
	return gocsv.MarshalString(&rows)
}
