package howto

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"guidegen/core/llm"
	"guidegen/core/metrics"
	"guidegen/core/vector"

	"go.uber.org/zap"
)

// retrieveLimit is how many context chunks retrieval asks the index for.
const retrieveLimit = 8

// Generator turns questions into guides, grounded on retrieved context when
// the vector index is available.
type Generator struct {
	llm    llm.Client
	store  vector.Store
	logger *zap.Logger
}

// NewGenerator creates a Generator. store may be nil; retrieval is then
// skipped and guides are written from general knowledge.
func NewGenerator(client llm.Client, store vector.Store, logg *zap.Logger) *Generator {
	return &Generator{llm: client, store: store, logger: logg}
}

// Retrieve returns context chunks for the question, best effort: every
// failure path logs a warning and returns no context.
func (g *Generator) Retrieve(ctx context.Context, question, source string) []string {
	if g.store == nil {
		g.logger.Warn("Retrieval disabled, no vector store")
		metrics.RetrievedChunks.Observe(0)
		return nil
	}

	vecs, err := g.llm.Embed(ctx, []string{question})
	if err != nil || len(vecs) == 0 {
		g.logger.Warn("Query embedding failed, generating without context", zap.Error(err))
		metrics.RetrievedChunks.Observe(0)
		return nil
	}

	var filter *vector.Filter
	if source != "" {
		filter = &vector.Filter{SourceContains: source}
	}

	hits, err := g.store.Search(ctx, vecs[0], retrieveLimit, filter)
	if err != nil {
		g.logger.Warn("Vector search failed, generating without context", zap.Error(err))
		metrics.RetrievedChunks.Observe(0)
		return nil
	}

	chunks := make([]string, 0, len(hits))
	seen := make(map[string]struct{})
	for _, hit := range hits {
		if hit.Payload.Chunk == "" {
			continue
		}
		chunks = append(chunks, hit.Payload.Chunk)
		if hit.Payload.Source != "" {
			seen[hit.Payload.Source] = struct{}{}
		}
	}

	sources := make([]string, 0, len(seen))
	for name := range seen {
		sources = append(sources, name)
	}
	sort.Strings(sources)

	g.logger.Info("Retrieved context",
		zap.Int("chunks", len(chunks)),
		zap.Strings("sources", sources))
	metrics.RetrievedChunks.Observe(float64(len(chunks)))
	return chunks
}

// Generate produces a guide for the question. It never fails: any model or
// parse error yields the fallback scaffold so the caller always has a guide
// to serve.
func (g *Generator) Generate(ctx context.Context, question, source string) Guide {
	if strings.TrimSpace(question) == "" {
		question = "placeholder"
	}

	contexts := g.Retrieve(ctx, question, source)
	prompt := BuildPrompt(question, contexts)

	guide, err := g.complete(ctx, prompt)
	if err != nil {
		g.logger.Warn("Guide generation failed, using fallback scaffold", zap.Error(err))
		metrics.GuidesTotal.WithLabelValues(metrics.ModeFallback).Inc()
		return FallbackGuide(question)
	}

	guide.Normalize()
	metrics.GuidesTotal.WithLabelValues(metrics.ModeGenerated).Inc()
	return guide
}

// complete runs the prompt through the responses endpoint and retries via
// chat completions when that path fails anywhere, including JSON parsing.
func (g *Generator) complete(ctx context.Context, prompt string) (Guide, error) {
	raw, err := g.llm.Respond(ctx, prompt)
	if err == nil {
		guide, parseErr := parseGuide(raw)
		if parseErr == nil {
			return guide, nil
		}
		err = parseErr
	}

	g.logger.Debug("Responses path failed, retrying via chat completions", zap.Error(err))

	raw, err = g.llm.Chat(ctx, prompt)
	if err != nil {
		return Guide{}, err
	}
	return parseGuide(raw)
}

// parseGuide extracts and decodes the JSON object in raw model output.
func parseGuide(raw string) (Guide, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return Guide{}, err
	}

	var guide Guide
	if err := json.Unmarshal(payload, &guide); err != nil {
		return Guide{}, err
	}
	return guide, nil
}

// FallbackGuide builds the minimal scaffold served when generation is
// unavailable, so requests still succeed without an API key or model.
func FallbackGuide(question string) Guide {
	topic := question
	for _, prefix := range []string{"How do I", "How to"} {
		if strings.HasPrefix(topic, prefix) {
			topic = strings.TrimSpace(topic[len(prefix):])
		}
	}
	topic = strings.TrimSpace(topic)

	title := "How-To Guide"
	if topic != "" {
		title = "How to " + capitalize(topic)
	}

	return Guide{
		Title:       title,
		Description: "This guide was generated without full context (fallback mode).",
		Steps: []Step{{
			Number:              1,
			Title:               "Start with the basics",
			Action:              "Break the task into small, verifiable steps.",
			Why:                 "Smaller steps reduce errors and make progress visible.",
			Check:               "You can confirm each step independently.",
			IllustrationCaption: "Show the first action on screen.",
		}},
		ProTip:          "Add more details as you iterate.",
		Troubleshooting: []TroubleshootItem{},
		Safety:          FlexStrings{},
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
