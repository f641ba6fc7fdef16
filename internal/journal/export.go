package journal

import (
	"errors"
	"fmt"
	"os"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/parquet"
)

// ExecuteJournalExport exports all journal data to Parquet files.
func ExecuteJournalExport(store contract.JournalStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get journal status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no journal data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total view runs: %d\n", status.TotalRuns)
	fmt.Printf("Total panel records: %d\n", status.TotalPanels)

	runs, err := store.GetAllViewRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve view runs: %w", err)
	}
	panels, err := store.GetAllViewPanels()
	if err != nil {
		return fmt.Errorf("failed to retrieve view panels: %w", err)
	}

	runsFile := outputFile + ".view_runs.parquet"
	if err := writeParquetFile(runsFile, func(f *os.File) error {
		return parquet.WriteViewRuns(f, runs)
	}); err != nil {
		return fmt.Errorf("failed to write view runs: %w", err)
	}
	fmt.Printf("Exported %d view runs to: %s\n", len(runs), runsFile)

	panelsFile := outputFile + ".view_panels.parquet"
	if err := writeParquetFile(panelsFile, func(f *os.File) error {
		return parquet.WriteViewPanels(f, panels)
	}); err != nil {
		return fmt.Errorf("failed to write view panels: %w", err)
	}
	fmt.Printf("Exported %d panel records to: %s\n", len(panels), panelsFile)

	fmt.Println("Export completed successfully!")
	return nil
}

func writeParquetFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
