package probe

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"guidegen/core/assets"
	"guidegen/core/llm"
	"guidegen/core/vector"
)

// maxDirEntries caps how many names a directory listing reports.
const maxDirEntries = 12

// RuntimeProbe reports the Go runtime version and platform.
func RuntimeProbe() Probe {
	return Probe{
		Name: "runtime",
		Run: func(ctx context.Context) (string, error) {
			return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH), nil
		},
	}
}

// WorkdirProbe reports the current working directory.
func WorkdirProbe() Probe {
	return Probe{
		Name: "workdir",
		Run: func(ctx context.Context) (string, error) {
			return os.Getwd()
		},
	}
}

// SearchPathProbe reports the asset search path entries.
func SearchPathProbe() Probe {
	return Probe{
		Name: "search_path",
		Run: func(ctx context.Context) (string, error) {
			return strings.Join(assets.SearchPath(), string(os.PathListSeparator)), nil
		},
	}
}

// RoutesProbe verifies the handler wiring by checking the route table for the
// expected entries. routes yields lines in "METHOD /path" form.
func RoutesProbe(routes func() []string, expected ...string) Probe {
	return Probe{
		Name: "routes",
		Run: func(ctx context.Context) (string, error) {
			have := routes()
			set := make(map[string]struct{}, len(have))
			for _, r := range have {
				set[r] = struct{}{}
			}

			for _, want := range expected {
				if _, ok := set[want]; !ok {
					return "", fmt.Errorf("route %s not registered", want)
				}
			}
			return fmt.Sprintf("%d routes registered", len(have)), nil
		},
	}
}

// TemplateProbe verifies the guide template loads and renders.
func TemplateProbe(check func() (string, error)) Probe {
	return Probe{
		Name: "template",
		Run: func(ctx context.Context) (string, error) {
			return check()
		},
	}
}

// LayoutProbe lists the application root and the directories guides depend on.
func LayoutProbe(root string) Probe {
	return Probe{
		Name: "layout",
		Run: func(ctx context.Context) (string, error) {
			parts := []string{"root: " + describeDir(root)}

			if dir, ok := assets.ResolveDir("templates"); ok {
				parts = append(parts, "templates: "+describeDir(dir))
			} else {
				parts = append(parts, "No templates directory")
			}

			if dir, ok := assets.ResolveDir("static"); ok {
				parts = append(parts, "static: "+describeDir(dir))
			}

			return strings.Join(parts, "; "), nil
		},
	}
}

// DependenciesProbe reports the build-info versions of dependencies whose
// path contains one of the given names.
func DependenciesProbe(names ...string) Probe {
	return Probe{
		Name: "dependencies",
		Run: func(ctx context.Context) (string, error) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				return "", fmt.Errorf("build info unavailable")
			}

			var lines []string
			for _, dep := range info.Deps {
				for _, name := range names {
					if strings.Contains(dep.Path, name) {
						lines = append(lines, dep.Path+" "+dep.Version)
						break
					}
				}
			}

			if len(lines) == 0 {
				return "no matching dependencies", nil
			}
			return strings.Join(lines, "; "), nil
		},
	}
}

// VectorStoreProbe checks that the vector index is reachable and counts its points.
func VectorStoreProbe(store vector.Store, mode string) Probe {
	return Probe{
		Name: "vector_store",
		Run: func(ctx context.Context) (string, error) {
			if store == nil {
				return "", fmt.Errorf("no store configured, retrieval disabled")
			}

			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			count, err := store.Count(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s store, %d points", mode, count), nil
		},
	}
}

// LLMProbe checks that guide generation is configured.
func LLMProbe(cfg llm.Config) Probe {
	return Probe{
		Name: "llm",
		Run: func(ctx context.Context) (string, error) {
			if cfg.APIKey == "" {
				return "", fmt.Errorf("api key not configured, generation falls back to scaffold guides")
			}
			return fmt.Sprintf("model %s, embeddings %s", cfg.Model, cfg.EmbedModel), nil
		},
	}
}

// describeDir lists up to maxDirEntries sorted entry names, directories
// marked with a trailing slash.
func describeDir(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Sprintf("unreadable (%v)", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return "empty"
	}
	if len(names) > maxDirEntries {
		names = append(names[:maxDirEntries], "...")
	}
	return strings.Join(names, " ")
}
