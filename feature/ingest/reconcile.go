package ingest

import (
	"context"
	"path/filepath"
	"sort"
)

// ReconcileReport compares the docs directory with the index.
type ReconcileReport struct {
	Dir string `json:"dir"`
	// OK lists sources present both on disk and in the index.
	OK []SourceCount `json:"ok"`
	// Missing lists files on disk that were never ingested.
	Missing []string `json:"missing"`
	// Orphans lists indexed sources whose file is gone from disk.
	Orphans []SourceCount `json:"orphans"`
}

// Reconcile reports drift between dir and the index. It changes nothing;
// re-running ingest fixes missing sources, orphans point at renamed or
// deleted files whose chunks are still served.
func (s *Service) Reconcile(ctx context.Context, dir string) (*ReconcileReport, error) {
	files, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}

	onDisk := make(map[string]bool, len(files))
	for _, path := range files {
		onDisk[filepath.Base(path)] = true
	}

	indexed, _, err := s.ScanSources(ctx, "")
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{
		Dir:     dir,
		OK:      []SourceCount{},
		Missing: []string{},
		Orphans: []SourceCount{},
	}

	inIndex := make(map[string]bool, len(indexed))
	for _, sc := range indexed {
		inIndex[sc.Source] = true
		if onDisk[sc.Source] {
			report.OK = append(report.OK, sc)
		} else {
			report.Orphans = append(report.Orphans, sc)
		}
	}

	for _, path := range files {
		if name := filepath.Base(path); !inIndex[name] {
			report.Missing = append(report.Missing, name)
		}
	}
	sort.Strings(report.Missing)

	return report, nil
}

func sortSourceCounts(counts []SourceCount) {
	sort.Slice(counts, func(i, j int) bool { return counts[i].Source < counts[j].Source })
}
