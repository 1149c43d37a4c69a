package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"guidegen/core/assets"
	"guidegen/core/config"
	"guidegen/core/logger"
	"guidegen/core/probe"
	"guidegen/core/vector"
	"guidegen/feature/howto"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var diagJSON bool

// diagCmd runs the startup diagnostics without starting the server.
var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Run the startup diagnostics and exit",
	Long: `Runs the same advisory probes the server runs at startup: runtime,
working directory, asset search path, layout, dependencies, guide template,
vector index and LLM configuration. Probe failures are reported, never fatal.

Examples:
  # Human-readable report
  guidegen diag

  # Machine-readable report
  guidegen diag --json`,
	RunE: runDiag,
}

func init() {
	diagCmd.Flags().BoolVar(&diagJSON, "json", false, "Emit the report as JSON")
	RootCmd.AddCommand(diagCmd)
}

func runDiag(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	root := assets.Root()
	assets.EnsureSearchPath(root)

	// Open the vector index (optional). A failure surfaces through the
	// vector_store probe instead of aborting the report.
	var store vector.Store
	if s, err := openVectorStore(cfg, logg); err != nil {
		logg.Warn("Optional vector index unavailable", zap.Error(err))
	} else {
		store = s
	}

	templateCheck := func() (string, error) {
		return "", errors.New("guide template unavailable")
	}
	if renderer, err := howto.NewRenderer(logg); err == nil {
		templateCheck = renderer.Check
	}

	probes := []probe.Probe{
		probe.RuntimeProbe(),
		probe.WorkdirProbe(),
		probe.SearchPathProbe(),
		probe.LayoutProbe(root),
		probe.DependenciesProbe(
			"github.com/gofiber/fiber",
			"github.com/spf13/viper",
			"go.uber.org/zap",
			"gorm.io/gorm",
		),
		probe.TemplateProbe(templateCheck),
		probe.VectorStoreProbe(store, cfg.Vector.Mode),
		probe.LLMProbe(cfg.LLM),
	}

	report := probe.Run(ctx, logg, probes)

	if diagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println("\n=== Diagnostics ===")
	for _, r := range report.Results {
		if r.Status == probe.StatusOK {
			fmt.Printf("OK    %-12s  %s\n", r.Name, r.Detail)
			continue
		}
		fmt.Printf("FAIL  %-12s  %s\n", r.Name, r.Error)
	}
	fmt.Printf("\n%d passed, %d failed.\n", report.Passed, report.Failed)
	return nil
}
