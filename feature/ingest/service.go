package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"guidegen/core/config"
	"guidegen/core/llm"
	"guidegen/core/vector"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileReport records the outcome for one document.
type FileReport struct {
	Source  string `json:"source"`
	Chunks  int    `json:"chunks"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Summary reports one ingestion run.
type Summary struct {
	Dir     string       `json:"dir"`
	Files   []FileReport `json:"files"`
	Indexed int          `json:"indexed"`
	Skipped int          `json:"skipped"`
	Vectors int          `json:"vectors"`
}

// Service runs ingestion and index inspection.
type Service struct {
	cfg    config.IngestConfig
	llm    llm.Client
	store  vector.Store
	logger *zap.Logger
}

// NewService creates a Service. The vector store is required here, unlike
// serving, where retrieval degrades gracefully.
func NewService(cfg config.IngestConfig, client llm.Client, store vector.Store, logg *zap.Logger) *Service {
	return &Service{cfg: cfg, llm: client, store: store, logger: logg}
}

// Run ingests every document in dir: load, chunk, embed, upsert. Unreadable
// and empty documents are skipped with a reason. The collection is sized
// from the first embedding batch, so the index dimension always matches the
// configured embedding model.
func (s *Service) Run(ctx context.Context, dir string) (*Summary, error) {
	if !IsValidChunker(s.cfg.Chunker) {
		return nil, fmt.Errorf("unknown chunker %q", s.cfg.Chunker)
	}

	files, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("docs folder not readable: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s or %s files in %s", extText, extDocx, dir)
	}

	summary := &Summary{Dir: dir, Files: []FileReport{}}
	ensured := false

	for _, path := range files {
		source := filepath.Base(path)

		text, err := LoadDocument(path)
		if err != nil {
			s.logger.Warn("Skipping document", zap.String("source", source), zap.Error(err))
			summary.Files = append(summary.Files, FileReport{Source: source, Skipped: true, Reason: err.Error()})
			summary.Skipped++
			continue
		}

		chunks := s.chunk(text)
		if len(chunks) == 0 {
			s.logger.Warn("Skipping document, no text", zap.String("source", source))
			summary.Files = append(summary.Files, FileReport{Source: source, Skipped: true, Reason: "no text"})
			summary.Skipped++
			continue
		}

		vecs, err := s.llm.Embed(ctx, chunks)
		if err != nil {
			s.logger.Warn("Skipping document, embedding failed", zap.String("source", source), zap.Error(err))
			summary.Files = append(summary.Files, FileReport{Source: source, Skipped: true, Reason: err.Error()})
			summary.Skipped++
			continue
		}

		if !ensured {
			if err := s.store.EnsureCollection(ctx, len(vecs[0])); err != nil {
				return nil, fmt.Errorf("failed to ensure collection: %w", err)
			}
			ensured = true
		}

		points := make([]vector.Point, 0, len(chunks))
		for i, chunk := range chunks {
			points = append(points, vector.Point{
				ID:      uuid.NewString(),
				Vector:  vecs[i],
				Payload: vector.Payload{Source: source, Chunk: chunk},
			})
		}

		if err := s.store.Upsert(ctx, points); err != nil {
			return nil, fmt.Errorf("failed to upsert %s: %w", source, err)
		}

		s.logger.Info("Indexed document", zap.String("source", source), zap.Int("chunks", len(points)))
		summary.Files = append(summary.Files, FileReport{Source: source, Chunks: len(points)})
		summary.Indexed++
		summary.Vectors += len(points)
	}

	return summary, nil
}

// chunk splits text with the configured chunker.
func (s *Service) chunk(text string) []string {
	if s.cfg.Chunker == ChunkerParagraph {
		return ParagraphChunks(text, s.cfg.ParagraphMaxChars, s.cfg.ParagraphOverlap)
	}
	return PackChunks(text, s.cfg.MaxChars)
}

// SourceCount pairs an indexed source with its chunk count.
type SourceCount struct {
	Source string `json:"source"`
	Chunks int    `json:"chunks"`
}

// scanPageSize is the scroll page size for full index scans.
const scanPageSize = 1000

// ScanSources walks the whole index and counts chunks per source, sorted by
// source name. contains narrows to sources whose name contains the
// substring; the returned total always covers the whole index.
func (s *Service) ScanSources(ctx context.Context, contains string) ([]SourceCount, int, error) {
	counts := make(map[string]int)
	total := 0

	cursor := ""
	for {
		points, next, err := s.store.Scroll(ctx, cursor, scanPageSize)
		if err != nil {
			return nil, 0, err
		}

		for _, point := range points {
			total++
			if contains != "" && !strings.Contains(point.Payload.Source, contains) {
				continue
			}
			counts[point.Payload.Source]++
		}

		if next == "" {
			break
		}
		cursor = next
	}

	out := make([]SourceCount, 0, len(counts))
	for source, n := range counts {
		out = append(out, SourceCount{Source: source, Chunks: n})
	}
	sortSourceCounts(out)
	return out, total, nil
}
