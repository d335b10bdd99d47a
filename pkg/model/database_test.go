package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseFromReader(t *testing.T) {
	//** Act
	database, err := DatabaseFromReader(strings.NewReader(sampleDatabaseJson))

	//** Assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CPSC", "MATH"}, keysOf(database))

	course := database["CPSC"]["CPSC 221"]
	assert.Equal(t, "CPSC 221", course.Name)
	assert.Equal(t, CourseMeta{
		Title:   "CPSC 221 Basic Algorithms and Data Structures",
		Credits: 4,
		PreReqs: "One of CPSC 210, EECE 210, CPEN 221 and one of CPSC 121, MATH 220.",
	}, course.Meta)
	assert.Len(t, course.Sections, 3)
	assert.Equal(t, RawSection{
		Status:    "Full",
		Activity:  []string{"Lecture"},
		Term:      []string{"1"},
		Days:      []string{"Mon"},
		StartTime: []string{"09:00"},
		EndTime:   []string{"10:00"},
	}, course.Sections["CPSC 221 101"])
}

func TestDatabaseFromJson(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "2017W.json")
	require.NoError(t, os.WriteFile(file, []byte(sampleDatabaseJson), 0o644))

	//** Act
	database, err := DatabaseFromJson(file)
	_, missingErr := DatabaseFromJson(filepath.Join(t.TempDir(), "missing.json"))

	//** Assert
	require.NoError(t, err)
	assert.Len(t, database["MATH"]["MATH 100"].Sections, 3)
	assert.Error(t, missingErr)
}

func TestDatabaseWeaklyTypedFields(t *testing.T) {
	raw := `{"CPSC": {"CPSC 221": {"credits": "4", "CPSC 221 101": {"activity": ["Lecture"], "term": [1], "days": ["Mon"], "start_time": ["09:00"], "end_time": ["10:00"]}}}}`

	database, err := DatabaseFromReader(strings.NewReader(raw))

	require.NoError(t, err)
	course := database["CPSC"]["CPSC 221"]
	assert.Equal(t, 4, course.Meta.Credits)
	assert.Equal(t, []string{"1"}, course.Sections["CPSC 221 101"].Term)
}

func TestDatabaseInvalidShapes(t *testing.T) {
	scenarios := map[string]string{
		"not json":              `{"CPSC": `,
		"department not object": `{"CPSC": []}`,
		"course not object":     `{"CPSC": {"CPSC 221": "x"}}`,
		"section field type":    `{"CPSC": {"CPSC 221": {"CPSC 221 101": {"activity": {"a": 1}}}}}`,
	}

	for name, raw := range scenarios {
		t.Run(name, func(t *testing.T) {
			database, err := DatabaseFromReader(strings.NewReader(raw))

			assert.Error(t, err)
			assert.Nil(t, database)
		})
	}
}

func TestActivityTypes(t *testing.T) {
	database := sampleDatabase()

	assert.Equal(t, []string{"Laboratory", "Lecture", "Tutorial"}, database.ActivityTypes())
	assert.Empty(t, Database{}.ActivityTypes())
}

func keysOf(database Database) []string {
	keys := make([]string, 0, len(database))
	for key := range database {
		keys = append(keys, key)
	}
	return keys
}

func TestRawDepartmentRoundTrip(t *testing.T) {
	//** Arrange
	database := sampleDatabase()

	//** Act
	encoded, err := json.Marshal(map[string]any{"CPSC": RawDepartment(database["CPSC"])})
	require.NoError(t, err)
	decoded, err := DatabaseFromReader(bytes.NewReader(encoded))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, database["CPSC"], decoded["CPSC"])
	assert.Contains(t, string(encoded), `"co_reqs":null`)
	assert.Contains(t, string(encoded), `"start_time":["09:00"]`)
}
