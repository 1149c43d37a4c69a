package probe

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Result statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Probe is one advisory startup check.
type Probe struct {
	// Name tags the probe in logs and reports.
	Name string
	// Run performs the check and returns a human-readable detail line.
	Run func(ctx context.Context) (string, error)
}

// Result is the outcome of one probe.
type Result struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates all probe results.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// Run executes every probe in order. Failures are logged and recorded but
// never abort the run.
func Run(ctx context.Context, logg *zap.Logger, probes []Probe) Report {
	report := Report{Results: make([]Result, 0, len(probes))}

	for _, p := range probes {
		detail, err := runProbe(ctx, p)
		if err != nil {
			report.Failed++
			report.Results = append(report.Results, Result{
				Name:   p.Name,
				Status: StatusError,
				Error:  err.Error(),
			})
			logg.Warn("Startup probe failed", zap.String("probe", p.Name), zap.Error(err))
			continue
		}

		report.Passed++
		report.Results = append(report.Results, Result{
			Name:   p.Name,
			Status: StatusOK,
			Detail: detail,
		})
		logg.Info("Startup probe", zap.String("probe", p.Name), zap.String("detail", detail))
	}

	return report
}

// runProbe converts a panicking probe into a failed one.
func runProbe(ctx context.Context, p Probe) (detail string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()
	return p.Run(ctx)
}
