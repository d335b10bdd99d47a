package model

import "fmt"

// DataNotFoundError is returned when the requested department or course is not in the database.
// Course is empty when the department itself is missing
type DataNotFoundError struct {
	Department string
	Course     string
}

func (err DataNotFoundError) Error() string {
	if err.Course == "" {
		return fmt.Sprintf("department \"%v\" was not found in the course database", err.Department)
	}
	return fmt.Sprintf("course \"%v\" was not found in department \"%v\"", err.Course, err.Department)
}

// MalformedSectionError is returned when the parallel arrays of a section record disagree in length
type MalformedSectionError struct {
	Course  string
	Section string
	Lengths [4]int // term, days, start_time, end_time
}

func (err MalformedSectionError) Error() string {
	return fmt.Sprintf("section \"%v\" of course \"%v\" is malformed: term, days, start_time and end_time must have the same length, got %v",
		err.Section, err.Course, err.Lengths)
}

// InvalidRequestError is returned when a requested name does not have the expected number of tokens
type InvalidRequestError struct {
	Request string
	Format  string
}

func (err InvalidRequestError) Error() string {
	format := err.Format
	if format == "" {
		format = "<DEPARTMENT> <COURSE #>"
	}
	return fmt.Sprintf("invalid request \"%v\": must be in the form of '%v'", err.Request, format)
}
