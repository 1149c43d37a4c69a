package llm

// Config holds configuration for the language model client.
type Config struct {
	// Endpoint is the base URL of an OpenAI-compatible API.
	Endpoint string `mapstructure:"endpoint" default:"https://api.openai.com/v1"`
	// APIKey authenticates requests. Generation degrades to scaffold
	// guides when it is empty.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the generation model.
	Model string `mapstructure:"model" default:"gpt-4o-mini"`
	// EmbedModel is the embedding model used for indexing and retrieval.
	EmbedModel string `mapstructure:"embed_model" default:"text-embedding-3-small"`
	// ImageModel is the image generation model for the openai provider.
	ImageModel string `mapstructure:"image_model" default:"gpt-image-1"`
	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
}
