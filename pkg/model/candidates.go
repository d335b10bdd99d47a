package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Only sections whose primary activity is a lecture are eligible; labs, tutorials, seminars, etc. are ignored.
// TODO: decide whether non-lecture activities should be scheduled alongside their lecture
const LectureActivity = "Lecture"

// Splits "<DEPARTMENT> <COURSE #>" into its two tokens
func ParseCourseName(courseName string) (department, number string, err error) {
	tokens := strings.Fields(courseName)
	if len(tokens) != 2 {
		return "", "", InvalidRequestError{Request: courseName}
	}
	return tokens[0], tokens[1], nil
}

// Returns the eligible sections of a course, sorted by section name
func Candidates(courseName string, database Database) ([]Section, error) {
	departmentName, number, err := ParseCourseName(courseName)
	if err != nil {
		return nil, err
	}
	courseName = departmentName + " " + number

	department, ok := database[departmentName]
	if !ok {
		return nil, DataNotFoundError{Department: departmentName}
	}
	course, ok := department[courseName]
	if !ok {
		return nil, DataNotFoundError{Department: departmentName, Course: courseName}
	}

	sectionNames := lo.Keys(course.Sections)
	slices.Sort(sectionNames)

	candidates := make([]Section, 0, len(sectionNames))
	for _, sectionName := range sectionNames {
		rawSection := course.Sections[sectionName]
		if len(rawSection.Activity) == 0 || rawSection.Activity[0] != LectureActivity {
			continue
		}

		meetings, err := sectionMeetings(courseName, sectionName, rawSection)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Section{Name: sectionName, Meetings: meetings})
	}
	return candidates, nil
}

// Returns the candidates of every requested course, in request order
func ResolveCandidates(courseNames []string, database Database) ([][]Section, error) {
	domains := make([][]Section, 0, len(courseNames))
	for _, courseName := range courseNames {
		candidates, err := Candidates(courseName, database)
		if err != nil {
			return nil, err
		}
		domains = append(domains, candidates)
	}
	return domains, nil
}

// Expands the parallel arrays of a section into one meeting per weekday token.
// A block whose days are empty (TBA) yields no meeting
func sectionMeetings(courseName, sectionName string, rawSection RawSection) ([]Meeting, error) {
	lengths := [4]int{len(rawSection.Term), len(rawSection.Days), len(rawSection.StartTime), len(rawSection.EndTime)}
	if lo.SomeBy(lengths[1:], func(length int) bool { return length != lengths[0] }) {
		return nil, MalformedSectionError{Course: courseName, Section: sectionName, Lengths: lengths}
	}

	meetings := make([]Meeting, 0, len(rawSection.Days))
	for i, days := range rawSection.Days {
		for _, day := range strings.Fields(days) {
			meetings = append(meetings, Meeting{
				Term:  rawSection.Term[i],
				Day:   day,
				Start: rawSection.StartTime[i],
				End:   rawSection.EndTime[i],
			})
		}
	}
	return meetings, nil
}
