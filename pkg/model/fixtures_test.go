package model

import (
	"fmt"
	"math/rand"
	"strings"
)

const sampleDatabaseJson = `{
	"CPSC": {
		"CPSC 221": {
			"title": "CPSC 221 Basic Algorithms and Data Structures",
			"credits": 4,
			"pre_reqs": "One of CPSC 210, EECE 210, CPEN 221 and one of CPSC 121, MATH 220.",
			"co_reqs": null,
			"CPSC 221 102": {
				"status": "",
				"activity": ["Lecture"],
				"term": ["1"],
				"interval": "",
				"days": ["Tue"],
				"start_time": ["09:00"],
				"end_time": ["10:00"]
			},
			"CPSC 221 101": {
				"status": "Full",
				"activity": ["Lecture"],
				"term": ["1"],
				"interval": "",
				"days": ["Mon"],
				"start_time": ["09:00"],
				"end_time": ["10:00"]
			},
			"CPSC 221 L1A": {
				"status": "",
				"activity": ["Laboratory"],
				"term": ["1"],
				"interval": "",
				"days": ["Wed"],
				"start_time": ["14:00"],
				"end_time": ["16:00"]
			}
		},
		"CPSC 310": {
			"title": "CPSC 310 Introduction to Software Engineering",
			"credits": 4,
			"CPSC 310 101": {
				"status": "",
				"activity": ["Lecture", "Lecture"],
				"term": ["2", "2"],
				"interval": "",
				"days": ["Mon Wed Fri", "Tue"],
				"start_time": ["09:30", "14:00"],
				"end_time": ["10:30", "15:30"]
			},
			"CPSC 310 T1A": {
				"status": "",
				"activity": ["Tutorial"],
				"term": ["2"],
				"interval": "",
				"days": ["Thu"],
				"start_time": ["10:00"],
				"end_time": ["11:00"]
			}
		}
	},
	"MATH": {
		"MATH 100": {
			"title": "MATH 100 Differential Calculus",
			"credits": 3,
			"MATH 100 101": {
				"status": "",
				"activity": ["Lecture"],
				"term": ["1"],
				"interval": "",
				"days": ["Mon Wed Fri"],
				"start_time": ["09:00"],
				"end_time": ["10:00"]
			},
			"MATH 100 102": {
				"status": "",
				"activity": ["Lecture"],
				"term": ["1"],
				"interval": "",
				"days": ["Mon Wed Fri"],
				"start_time": ["10:00"],
				"end_time": ["11:00"]
			},
			"MATH 100 103": {
				"status": "",
				"activity": ["Lecture"],
				"term": ["2"],
				"interval": "",
				"days": ["Mon Wed Fri"],
				"start_time": ["09:00"],
				"end_time": ["10:00"]
			}
		}
	}
}`

func sampleDatabase() Database {
	database, err := DatabaseFromReader(strings.NewReader(sampleDatabaseJson))
	if err != nil {
		panic(fmt.Sprintf("cannot parse sample database: %v", err))
	}
	return database
}

func lectureSection(term, days, start, end string) RawSection {
	return RawSection{
		Activity:  []string{LectureActivity},
		Term:      []string{term},
		Days:      []string{days},
		StartTime: []string{start},
		EndTime:   []string{end},
	}
}

// Builds a database holding a single course per department, named "<department> <number>"
func databaseOf(courses map[string]map[string]RawSection) Database {
	database := make(Database)
	for courseName, sections := range courses {
		department, _, err := ParseCourseName(courseName)
		if err != nil {
			panic(err)
		}
		if _, ok := database[department]; !ok {
			database[department] = make(Department)
		}
		database[department][courseName] = Course{Name: courseName, Sections: sections}
	}
	return database
}

var (
	days  = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	terms = []string{"1", "2"}
)

// Random domains of lecture sections with zero-padded times between 08:00 and 18:00
func randomDomains(random *rand.Rand, courses, maxSections int) [][]Section {
	domains := make([][]Section, courses)
	for course := range courses {
		sections := random.Intn(maxSections) + 1
		for section := range sections {
			meetings := make([]Meeting, 0)
			for range random.Intn(3) + 1 {
				start := random.Intn(8) + 8
				duration := random.Intn(2) + 1
				meetings = append(meetings, Meeting{
					Term:  terms[random.Intn(len(terms))],
					Day:   days[random.Intn(len(days))],
					Start: fmt.Sprintf("%02d:%02d", start, 30*random.Intn(2)),
					End:   fmt.Sprintf("%02d:%02d", start+duration, 30*random.Intn(2)),
				})
			}
			domains[course] = append(domains[course], Section{
				Name:     fmt.Sprintf("C%d %d %03d", course, course, section),
				Meetings: meetings,
			})
		}
	}
	return domains
}

func sectionNames(schedules []Schedule) [][]string {
	names := make([][]string, len(schedules))
	for i, schedule := range schedules {
		for _, section := range schedule {
			names[i] = append(names[i], section.Name)
		}
	}
	return names
}
