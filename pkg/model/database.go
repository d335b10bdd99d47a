package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// RawSection is a section record exactly as stored in the course database.
// Term, Days, StartTime and EndTime are parallel: index i describes one meeting block,
// and Days[i] may list several weekdays ("Mon Wed Fri") sharing that block
type RawSection struct {
	Status    string   `json:"status"`
	Activity  []string `json:"activity"`
	Term      []string `json:"term"`
	Days      []string `json:"days"`
	StartTime []string `json:"start_time" mapstructure:"start_time"`
	EndTime   []string `json:"end_time" mapstructure:"end_time"`
	Interval  string   `json:"interval"`
}

type CourseMeta struct {
	Title   string
	Credits int
	PreReqs string `mapstructure:"pre_reqs"`
	CoReqs  string `mapstructure:"co_reqs"`
}

type Course struct {
	Name     string
	Meta     CourseMeta
	Sections map[string]RawSection
}

// Department maps a course name ("CPSC 221") to its course
type Department map[string]Course

// Database maps a department ("CPSC") to its courses. It is read-only once loaded
type Database map[string]Department

func DatabaseFromJson(file string) (Database, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open course database: %w", err)
	}
	defer reader.Close()
	return DatabaseFromReader(reader)
}

func DatabaseFromReader(reader io.Reader) (Database, error) {
	var rawDatabase map[string]any
	if err := json.NewDecoder(reader).Decode(&rawDatabase); err != nil {
		return nil, fmt.Errorf("cannot parse course database: %w", err)
	}
	return ProcessRawDatabase(rawDatabase)
}

func ProcessRawDatabase(rawDatabase map[string]any) (Database, error) {
	database := make(Database, len(rawDatabase))
	for departmentName, rawDepartment := range rawDatabase {
		courses, ok := rawDepartment.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("department \"%v\" must be an object, got %T", departmentName, rawDepartment)
		}

		department := make(Department, len(courses))
		for courseName, rawCourse := range courses {
			entries, ok := rawCourse.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("course \"%v\" must be an object, got %T", courseName, rawCourse)
			}

			course, err := processRawCourse(courseName, entries)
			if err != nil {
				return nil, err
			}
			department[courseName] = course
		}
		database[departmentName] = department
	}
	return database, nil
}

// Object entries of a course are its sections, every other entry (title, credits, pre_reqs, co_reqs) is metadata
func processRawCourse(courseName string, entries map[string]any) (Course, error) {
	course := Course{
		Name:     courseName,
		Sections: make(map[string]RawSection),
	}

	meta := make(map[string]any)
	for entryName, entry := range entries {
		rawSection, isSection := entry.(map[string]any)
		if !isSection {
			meta[entryName] = entry
			continue
		}

		var section RawSection
		if err := weakDecode(rawSection, &section); err != nil {
			return Course{}, fmt.Errorf("cannot decode section \"%v\" of course \"%v\": %w", entryName, courseName, err)
		}
		course.Sections[entryName] = section
	}

	if err := weakDecode(meta, &course.Meta); err != nil {
		return Course{}, fmt.Errorf("cannot decode metadata of course \"%v\": %w", courseName, err)
	}
	return course, nil
}

// Converts a department back to the stored shape, with metadata and sections side by side in each course
func RawDepartment(department Department) map[string]map[string]any {
	return lo.MapValues(department, func(course Course, _ string) map[string]any {
		entries := map[string]any{
			"title":    course.Meta.Title,
			"credits":  course.Meta.Credits,
			"pre_reqs": nullable(course.Meta.PreReqs),
			"co_reqs":  nullable(course.Meta.CoReqs),
		}
		for sectionName, section := range course.Sections {
			entries[sectionName] = section
		}
		return entries
	})
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func weakDecode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// Returns the sorted distinct primary activity types (Lecture, Laboratory, ...) found in the database
func (database Database) ActivityTypes() []string {
	activities := make([]string, 0)
	for _, department := range database {
		for _, course := range department {
			for _, section := range course.Sections {
				if len(section.Activity) > 0 {
					activities = append(activities, section.Activity[0])
				}
			}
		}
	}

	activities = lo.Uniq(activities)
	slices.Sort(activities)
	return activities
}
