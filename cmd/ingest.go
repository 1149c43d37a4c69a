package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"guidegen/core/assets"
	"guidegen/core/config"
	"guidegen/core/database"
	"guidegen/core/llm"
	"guidegen/core/logger"
	"guidegen/core/vector"
	"guidegen/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the ingest command
	ingestDir     string
	ingestChunker string
)

// ingestCmd loads documents into the vector index.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest documents into the vector index",
	Long: `Ingest loads .txt and .docx documents from the docs directory, splits
them into chunks, embeds every chunk and upserts the vectors into the index.
Unreadable or empty documents are skipped and reported.

Examples:
  # Ingest the configured docs directory
  guidegen ingest

  # Ingest another directory with the paragraph chunker
  guidegen ingest --dir ./manuals --chunker paragraph`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDir, "dir", "", "Docs directory (default: ingest.docs_dir on the asset search path)")
	ingestCmd.Flags().StringVar(&ingestChunker, "chunker", "", "Chunker to use: pack or paragraph (default: ingest.chunker)")

	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if ingestChunker != "" {
		cfg.Ingest.Chunker = ingestChunker
	}
	dir := resolveDocsDir(cfg, ingestDir)

	// Open the vector index. Unlike serving, ingestion cannot degrade
	// without one.
	store, err := openVectorStore(cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting ingestion",
		zap.String("dir", dir),
		zap.String("chunker", cfg.Ingest.Chunker),
	)

	svc := ingest.NewService(cfg.Ingest, llm.NewClient(cfg.LLM), store, l)
	summary, err := svc.Run(ctx, dir)
	if err != nil {
		return err
	}

	printIngestSummary(summary)
	return nil
}

// openVectorStore opens the configured vector index, embedded or qdrant.
// The index commands share it.
func openVectorStore(cfg *config.Config, l *zap.Logger) (vector.Store, error) {
	if cfg.Vector.Mode == vector.ModeQdrant {
		l.Info("Using qdrant vector index", zap.String("url", cfg.Vector.URL))
		return vector.NewQdrantStore(cfg.Vector), nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector index: %w", err)
	}
	l.Info("Using embedded vector index", zap.String("path", cfg.Database.Path))
	return vector.NewEmbeddedStore(db, cfg.Vector.Collection), nil
}

// resolveDocsDir picks the docs directory: an explicit flag wins, otherwise
// the configured directory is looked up on the asset search path.
func resolveDocsDir(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	if dir, ok := assets.ResolveDir(cfg.Ingest.DocsDir); ok {
		return dir
	}
	return filepath.Join(assets.Root(), cfg.Ingest.DocsDir)
}

// printIngestSummary prints a human-readable run report.
func printIngestSummary(s *ingest.Summary) {
	fmt.Println("\n=== Ingestion Summary ===")
	fmt.Printf("Directory: %s\n\n", s.Dir)

	for _, f := range s.Files {
		if f.Skipped {
			fmt.Printf("SKIP  %s: %s\n", f.Source, f.Reason)
			continue
		}
		fmt.Printf("OK    %s: %d chunks\n", f.Source, f.Chunks)
	}

	fmt.Printf("\nIndexed %d of %d files, upserted %d vectors.\n", s.Indexed, len(s.Files), s.Vectors)
}
