package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrNoAPIKey is returned when a request is attempted without a configured key.
var ErrNoAPIKey = errors.New("llm api key not configured")

// generationTemperature keeps guide output stable across runs.
const generationTemperature = 0.2

// Client is the language model surface the application depends on.
type Client interface {
	// Embed returns one embedding vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Respond completes prompt through the Responses API.
	Respond(ctx context.Context, prompt string) (string, error)
	// Chat completes prompt through the Chat Completions API. Callers use
	// it as the fallback for endpoints without Responses support.
	Chat(ctx context.Context, prompt string) (string, error)
	// GenerateImage renders prompt as PNG bytes.
	GenerateImage(ctx context.Context, prompt, size string) ([]byte, error)
}

type client struct {
	endpoint   string
	apiKey     string
	model      string
	embedModel string
	imageModel string
	http       *http.Client
}

// NewClient creates a Client for the configured OpenAI-compatible endpoint.
func NewClient(cfg Config) Client {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 120
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		embedModel: cfg.EmbedModel,
		imageModel: cfg.ImageModel,
		http: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}
}

// post sends one API request and decodes the JSON response into out.
func (c *client) post(ctx context.Context, path string, body, out any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("llm %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body := map[string]any{
		"model": c.embedModel,
		"input": texts,
	}

	var out struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/embeddings", body, &out); err != nil {
		return nil, err
	}
	if len(out.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(out.Data))
	}

	// Place by index, the API does not guarantee input order.
	vectors := make([][]float32, len(texts))
	for _, item := range out.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", item.Index)
		}
		vec := make([]float32, len(item.Embedding))
		for i, v := range item.Embedding {
			vec[i] = float32(v)
		}
		vectors[item.Index] = vec
	}
	return vectors, nil
}

func (c *client) Respond(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": c.model,
		"input": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": generationTemperature,
	}

	var out struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := c.post(ctx, "/responses", body, &out); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range out.Output {
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	if b.Len() == 0 {
		return "", errors.New("response output contained no text")
	}
	return b.String(), nil
}

func (c *client) Chat(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": generationTemperature,
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.post(ctx, "/chat/completions", body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func (c *client) GenerateImage(ctx context.Context, prompt, size string) ([]byte, error) {
	body := map[string]any{
		"model":  c.imageModel,
		"prompt": prompt,
	}
	if size != "" {
		body["size"] = size
	}

	var out struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/images/generations", body, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, errors.New("image response contained no data")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return img, nil
}
