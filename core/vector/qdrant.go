package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// errNotFound marks a 404 from the Qdrant API.
var errNotFound = errors.New("not found")

// qdrantStore talks to a Qdrant instance over its REST API.
type qdrantStore struct {
	baseURL    string
	apiKey     string
	collection string
	client     *http.Client
}

// NewQdrantStore creates a Store backed by the Qdrant REST API.
func NewQdrantStore(cfg Config) Store {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &qdrantStore{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		client: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}
}

// do sends one API request and decodes the response into out when non-nil.
func (s *qdrantStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("qdrant %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (s *qdrantStore) EnsureCollection(ctx context.Context, dim int) error {
	err := s.do(ctx, http.MethodGet, "/collections/"+s.collection, nil, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errNotFound) {
		return err
	}

	body := map[string]any{
		"vectors": map[string]any{"size": dim, "distance": "Cosine"},
	}
	return s.do(ctx, http.MethodPut, "/collections/"+s.collection, body, nil)
}

func (s *qdrantStore) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	items := make([]map[string]any, 0, len(points))
	for _, p := range points {
		items = append(items, map[string]any{
			"id":      p.ID,
			"vector":  p.Vector,
			"payload": p.Payload,
		})
	}

	body := map[string]any{"points": items}
	return s.do(ctx, http.MethodPut, "/collections/"+s.collection+"/points?wait=true", body, nil)
}

func (s *qdrantStore) Search(ctx context.Context, vec []float32, limit int, filter *Filter) ([]ScoredPoint, error) {
	body := map[string]any{
		"vector":       vec,
		"limit":        limit,
		"with_payload": true,
	}
	if filter != nil && filter.SourceContains != "" {
		body["filter"] = map[string]any{
			"must": []any{
				map[string]any{
					"key":   "source",
					"match": map[string]any{"text": filter.SourceContains},
				},
			},
		}
	}

	var out struct {
		Result []struct {
			ID      json.RawMessage `json:"id"`
			Score   float32         `json:"score"`
			Payload Payload         `json:"payload"`
		} `json:"result"`
	}
	if err := s.do(ctx, http.MethodPost, "/collections/"+s.collection+"/points/search", body, &out); err != nil {
		return nil, err
	}

	hits := make([]ScoredPoint, 0, len(out.Result))
	for _, r := range out.Result {
		hits = append(hits, ScoredPoint{
			Point: Point{ID: decodeID(r.ID), Payload: r.Payload},
			Score: r.Score,
		})
	}
	return hits, nil
}

func (s *qdrantStore) Scroll(ctx context.Context, cursor string, limit int) ([]Point, string, error) {
	body := map[string]any{
		"limit":        limit,
		"with_payload": true,
	}
	if cursor != "" {
		body["offset"] = cursor
	}

	var out struct {
		Result struct {
			Points []struct {
				ID      json.RawMessage `json:"id"`
				Payload Payload         `json:"payload"`
			} `json:"points"`
			NextPageOffset json.RawMessage `json:"next_page_offset"`
		} `json:"result"`
	}
	if err := s.do(ctx, http.MethodPost, "/collections/"+s.collection+"/points/scroll", body, &out); err != nil {
		return nil, "", err
	}

	points := make([]Point, 0, len(out.Result.Points))
	for _, p := range out.Result.Points {
		points = append(points, Point{ID: decodeID(p.ID), Payload: p.Payload})
	}

	next := ""
	if raw := string(out.Result.NextPageOffset); raw != "" && raw != "null" {
		next = decodeID(out.Result.NextPageOffset)
	}
	return points, next, nil
}

func (s *qdrantStore) Count(ctx context.Context) (int, error) {
	var out struct {
		Result struct {
			Count int `json:"count"`
		} `json:"result"`
	}
	err := s.do(ctx, http.MethodPost, "/collections/"+s.collection+"/points/count", map[string]any{"exact": true}, &out)
	if err != nil {
		return 0, err
	}
	return out.Result.Count, nil
}

// decodeID renders a Qdrant point ID, which may be a UUID string or an integer.
func decodeID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
