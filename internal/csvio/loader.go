package csvio

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduler/pkg/model"
)

// LoadSchedules reads rows written by ExportSchedules and groups them back into schedules.
// Section names and meeting order are preserved; consecutive rows of the same section form one section,
// and a row without meeting fields stands for a section without meetings
func LoadSchedules(in io.Reader) ([]model.Schedule, error) {
	var rows []*ScheduleRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, err
	}

	schedules := make([]model.Schedule, 0)
	for i, row := range rows {
		if i == 0 || row.Schedule != rows[i-1].Schedule {
			schedules = append(schedules, model.Schedule{})
		}
		current := &schedules[len(schedules)-1]
		if i == 0 || row.Schedule != rows[i-1].Schedule || row.Section != rows[i-1].Section {
			*current = append(*current, model.Section{Name: row.Section, Meetings: []model.Meeting{}})
		}
		if !row.hasMeeting() {
			continue
		}
		section := &(*current)[len(*current)-1]
		section.Meetings = append(section.Meetings, model.Meeting{
			Term:  row.Term,
			Day:   row.Day,
			Start: row.Start,
			End:   row.End,
		})
	}
	return schedules, nil
}

// LoadSchedulesFile reads a file written by ExportSchedules
func LoadSchedulesFile(path string) ([]model.Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadSchedules(file)
}
