package howto

import (
	"context"

	"guidegen/core/metrics"

	"go.uber.org/zap"
)

// Attacher decorates guide steps with illustrations.
type Attacher interface {
	// Illustrate returns the public URL for a step illustration and an error
	// message when generation failed. Both empty means the step was skipped.
	Illustrate(ctx context.Context, title, action string) (url string, errMsg string)
}

// Service builds complete guides for the HTTP handlers.
type Service struct {
	generator *Generator
	attacher  Attacher
	logger    *zap.Logger
}

// NewService creates a Service. attacher may be nil; steps are then served
// without illustrations.
func NewService(generator *Generator, attacher Attacher, logg *zap.Logger) *Service {
	return &Service{generator: generator, attacher: attacher, logger: logg}
}

// BuildGuide answers a request. A body already carrying steps is passed
// through unchanged so clients can reuse the illustration pipeline on their
// own guides; otherwise a guide is generated for the question.
func (s *Service) BuildGuide(ctx context.Context, req Request) Guide {
	var guide Guide
	if req.HasSteps() {
		guide = req.Guide
		guide.Normalize()
		metrics.GuidesTotal.WithLabelValues(metrics.ModePassthrough).Inc()
	} else {
		guide = s.generator.Generate(ctx, req.Question, req.Source)
	}

	s.attachImages(ctx, &guide)
	return guide
}

// attachImages decorates steps in place. Illustration failures are recorded
// on the step and never fail the request.
func (s *Service) attachImages(ctx context.Context, guide *Guide) {
	if s.attacher == nil {
		return
	}

	for i := range guide.Steps {
		step := &guide.Steps[i]
		url, errMsg := s.attacher.Illustrate(ctx, step.Title, step.Action)
		if url == "" && errMsg == "" {
			continue
		}
		step.ImageURL = url
		step.ImageError = errMsg
	}
}
