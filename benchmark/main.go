// Package main provides a performance benchmarking tool for the intentctl CLI.
// It measures end-to-end command latency against a live intent analytics
// service, running each command multiple times, treating the first successful
// run as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - intentctl binary installed and available in PATH
// - A reachable intent analytics service with an existing tenant and company
// - An API key for the tenant exported as INTENTCTL_API_KEY
//
// Usage: go run benchmark/main.go [base-url] [tenant-id] [company-id]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-journal average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command       string
	NoJournalTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	BaseURL       string
	TenantID      string
	CompanyID     string
	Timeout       time.Duration
	NoJournalRuns int
	JournalRuns   int
	JournalPath   string
}

// benchCommand describes one command under test.
type benchCommand struct {
	name        string
	description string
	args        []string
	journaled   bool
}

func main() {
	if len(os.Args) != 4 {
		fmt.Printf("Usage: %s [base-url] [tenant-id] [company-id]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		BaseURL:       os.Args[1],
		TenantID:      os.Args[2],
		CompanyID:     os.Args[3],
		Timeout:       2 * time.Minute,
		NoJournalRuns: 3,
		JournalRuns:   4,
		JournalPath:   fmt.Sprintf("/tmp/intentctl_bench_%d.db", os.Getpid()),
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.Remove(config.JournalPath) }()

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the intentctl binary and the service are available.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("intentctl"); err != nil {
		return fmt.Errorf("intentctl binary not found in PATH")
	}
	if os.Getenv("INTENTCTL_API_KEY") == "" {
		return fmt.Errorf("INTENTCTL_API_KEY is not set")
	}

	// A cheap authenticated call proves the service, tenant and key all work.
	probe := exec.Command("intentctl", "watchlist",
		"--base-url", config.BaseURL,
		"--tenant", config.TenantID,
		"--journal-backend", "none")
	if output, err := probe.CombinedOutput(); err != nil {
		return fmt.Errorf("service probe failed: %v\nOutput: %s", err, string(output))
	}
	return nil
}

// runBenchmarks executes all benchmark tests for the configured tenant.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	commands := []benchCommand{
		{
			name:        "dashboard",
			description: "company dashboard load",
			args:        []string{"dashboard", "--company", config.CompanyID},
			journaled:   true,
		},
		{
			name:        "watchlist",
			description: "tenant watchlist load",
			args:        []string{"watchlist"},
			journaled:   true,
		},
		{
			name:        "backtest-report",
			description: "backtest scorecard render",
			args:        []string{"backtest", "report", "--company", config.CompanyID},
			journaled:   false,
		},
		{
			name:        "portfolio",
			description: "portfolio report render",
			args:        []string{"portfolio"},
			journaled:   false,
		},
	}

	fmt.Printf("Starting benchmark: %s, tenant %s, %v timeout, no-journal: %d runs, journal: %d runs\n",
		config.BaseURL, config.TenantID, config.Timeout, config.NoJournalRuns, config.JournalRuns)

	for _, cmd := range commands {
		results = append(results, runBenchmarkSuite(config, cmd))
	}

	return results
}

// runBenchmarkSuite runs both no-journal and journal benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, cmd benchCommand) BenchmarkResult {
	fmt.Printf("Running %s\n", cmd.description)

	runPhase := func(journalBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, cmd.args, journalBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-journal runs
	_, noJournalAvg := runPhase("none", config.NoJournalRuns, "No-journal")

	// Phase 2: Journal runs. Commands that never write the journal skip it.
	coldTimeStr := "-"
	warmAvg := "-"
	if cmd.journaled {
		coldTime, avg := runPhase("sqlite", config.JournalRuns, "Journal")
		warmAvg = avg
		coldTimeStr = "TIMEOUT"
		if coldTime > 0 {
			coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
		}
	}

	fmt.Printf("  No-journal average: %s, Cold time: %s, Warm average: %s\n", noJournalAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Command:       cmd.name,
		NoJournalTime: noJournalAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes an intentctl command multiple times with the given
// journal backend and returns the cold time plus the warm times.
func runBenchmark(config BenchmarkConfig, cmdArgs []string, journalBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, cmdArgs...)
	args = append(args,
		"--base-url", config.BaseURL,
		"--tenant", config.TenantID,
		"--journal-backend", journalBackend)
	if journalBackend == "sqlite" {
		args = append(args, "--journal-db-connect", config.JournalPath)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("intentctl", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/intentctl_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"cmd", "no_journal_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.NoJournalTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, result := range results {
		fmt.Printf("  %-16s: No-journal: %s, Cold: %s, Warm: %s\n",
			result.Command, result.NoJournalTime, result.ColdTime, result.WarmTime)
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
