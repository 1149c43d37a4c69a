package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"guidegen/core/config"
	"guidegen/core/llm"
	"guidegen/core/logger"
	"guidegen/feature/ingest"

	"github.com/spf13/cobra"
)

var (
	// Flags for the index commands
	sourcesContains string
	reconcileDir    string
	reconcileJSON   bool
)

// indexCmd is the parent command for read-only index inspection.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect the vector index",
	Long:  `Read-only commands that answer what is actually in the vector index.`,
}

// indexSourcesCmd lists indexed sources with chunk counts.
var indexSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List indexed sources and their chunk counts",
	Long: `Walks the whole index and counts chunks per source document.

Examples:
  # All sources
  guidegen index sources

  # Only sources whose name contains "printer"
  guidegen index sources --contains printer`,
	RunE: runIndexSources,
}

// indexReconcileCmd reports drift between the docs directory and the index.
var indexReconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare the docs directory with the index (report only)",
	Long: `Reports files never ingested (missing), indexed sources whose file is
gone from disk (orphans) and sources present on both sides. Nothing is
deleted; re-run ingest to fix missing sources.

Examples:
  # Report against the configured docs directory
  guidegen index reconcile

  # Machine-readable output
  guidegen index reconcile --json`,
	RunE: runIndexReconcile,
}

func init() {
	indexSourcesCmd.Flags().StringVar(&sourcesContains, "contains", "", "Only count sources whose name contains this substring")
	indexReconcileCmd.Flags().StringVar(&reconcileDir, "dir", "", "Docs directory (default: ingest.docs_dir on the asset search path)")
	indexReconcileCmd.Flags().BoolVar(&reconcileJSON, "json", false, "Emit the report as JSON")

	indexCmd.AddCommand(indexSourcesCmd)
	indexCmd.AddCommand(indexReconcileCmd)
	RootCmd.AddCommand(indexCmd)
}

// newIndexService builds an ingest service for inspection commands.
func newIndexService() (*ingest.Service, *config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := openVectorStore(cfg, l)
	if err != nil {
		return nil, nil, err
	}

	return ingest.NewService(cfg.Ingest, llm.NewClient(cfg.LLM), store, l), cfg, nil
}

func runIndexSources(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, _, err := newIndexService()
	if err != nil {
		return err
	}

	counts, total, err := svc.ScanSources(ctx, sourcesContains)
	if err != nil {
		return fmt.Errorf("failed to scan index: %w", err)
	}

	if len(counts) == 0 {
		fmt.Println("No matching sources in the index.")
	} else {
		fmt.Printf("%-50s %s\n", "SOURCE", "CHUNKS")
		for _, c := range counts {
			fmt.Printf("%-50s %6d\n", c.Source, c.Chunks)
		}
	}

	fmt.Printf("\n%d matching sources, %d points total in the index.\n", len(counts), total)
	return nil
}

func runIndexReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cfg, err := newIndexService()
	if err != nil {
		return err
	}

	dir := resolveDocsDir(cfg, reconcileDir)
	report, err := svc.Reconcile(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}

	if reconcileJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println("\n=== Index Reconcile ===")
	fmt.Printf("Directory: %s\n\n", report.Dir)

	for _, sc := range report.OK {
		fmt.Printf("OK       %s: %d chunks\n", sc.Source, sc.Chunks)
	}
	for _, name := range report.Missing {
		fmt.Printf("MISSING  %s: on disk but not indexed\n", name)
	}
	for _, sc := range report.Orphans {
		fmt.Printf("ORPHAN   %s: %d chunks indexed, file gone\n", sc.Source, sc.Chunks)
	}

	fmt.Printf("\n%d ok, %d missing, %d orphans.\n", len(report.OK), len(report.Missing), len(report.Orphans))
	if len(report.Missing) > 0 {
		fmt.Println("Run 'guidegen ingest' to index the missing files.")
	}
	return nil
}
