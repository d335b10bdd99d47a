package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduler/internal/planner"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/samber/lo"
)

const (
	defaultDatabasePath         = "../../test/coursedb.json"
	defaultRequestsPath         = "../../test/requests.txt"
	defaultResultsPath          = "benchmark_results.csv"
	MB                  float32 = 1024 * 1024
)

type ResultType int

const (
	accepted ResultType = iota
	empty
	failed
)

var resultTypes = map[ResultType]string{
	accepted: "accepted",
	empty:    "empty",
	failed:   "failed",
}

type BenchmarkResult struct {
	Strategy     string  `csv:"Strategy"`
	Request      string  `csv:"Request"`
	Courses      int     `csv:"Courses"`
	Combinations uint64  `csv:"Combinations"`
	Accepted     int     `csv:"Accepted"`
	Duration     int64   `csv:"Duration(ms)"`
	Allocated    float32 `csv:"Allocated(MB)"`
	Result       string  `csv:"Result"`
}

func main() {
	databasePath := flag.String("db", defaultDatabasePath, "Path to the course database file")
	requestsPath := flag.String("requests", defaultRequestsPath, "Path to a file holding one comma separated request per line; lines starting with # are ignored")
	resultsPath := flag.String("out", defaultResultsPath, "Path to the CSV file where the results will be written")
	runs := flag.Int("runs", 1, "Number of runs per request and strategy")
	flag.Parse()

	database, err := model.DatabaseFromJson(*databasePath)
	if err != nil {
		log.Fatalf("cannot parse database file: %v", err)
	}
	requestsFile, err := os.Open(*requestsPath)
	if err != nil {
		log.Fatalf("cannot open requests file: %v", err)
	}
	requests, err := readRequests(requestsFile)
	requestsFile.Close()
	if err != nil {
		log.Fatalf("cannot read requests file: %v", err)
	}

	results := make([]*BenchmarkResult, 0, len(requests)*len(model.Strategies())*(*runs))
	for _, request := range requests {
		for _, strategy := range model.Strategies() {
			scheduler := lo.Must(model.NewScheduler(strategy))
			for range *runs {
				fmt.Printf("Benchmarking request \"%v\" with strategy \"%v\"\n", strings.Join(request, ","), strategy)
				results = append(results, measure(scheduler, strategy, request, database))
			}
		}
	}

	if err := toCsv(results, *resultsPath); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func readRequests(reader io.Reader) ([][]string, error) {
	requests := make([][]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if request, ok := parseRequestLine(scanner.Text()); ok {
			requests = append(requests, request)
		}
	}
	return requests, scanner.Err()
}

// Blank lines and comments hold no request
func parseRequestLine(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	courses := planner.ParseCourses(line)
	return courses, len(courses) > 0
}

func measure(scheduler model.Scheduler, strategy string, request []string, database model.Database) *BenchmarkResult {
	result := &BenchmarkResult{
		Strategy: strategy,
		Request:  strings.Join(request, ","),
		Courses:  len(request),
		Result:   resultTypes[failed],
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	domains, err := model.ResolveCandidates(request, database)
	if err != nil {
		log.Printf("request \"%v\" failed: %v", result.Request, err)
		return result
	}
	schedules := scheduler.Generate(domains)

	result.Duration = time.Since(start).Milliseconds()
	runtime.ReadMemStats(&after)
	result.Allocated = float32(after.TotalAlloc-before.TotalAlloc) / MB
	result.Combinations = model.CrossProductSize(domains)
	result.Accepted = len(schedules)
	result.Result = resultTypes[accepted]
	if len(schedules) == 0 {
		result.Result = resultTypes[empty]
	}
	return result
}

func toCsv(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()
	return gocsv.MarshalFile(&results, file)
}
