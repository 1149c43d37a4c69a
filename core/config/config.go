package config

import (
	"os"
	"reflect"
	"strings"

	"guidegen/core/database"
	"guidegen/core/llm"
	"guidegen/core/logger"
	"guidegen/core/server"
	"guidegen/core/storage"
	"guidegen/core/vector"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Vector holds configuration for the vector index.
	Vector vector.Config `mapstructure:"vector"`
	// Database holds configuration for the embedded index database.
	Database database.Config `mapstructure:"database"`
	// LLM holds configuration for the language model client.
	LLM llm.Config `mapstructure:"llm"`
	// Storage holds configuration for the object storage mirror (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Image holds configuration for step illustration generation.
	Image ImageConfig `mapstructure:"image"`
	// Ingest holds configuration for the document ingestion pipeline.
	Ingest IngestConfig `mapstructure:"ingest"`
}

// ImageConfig holds configuration for per-step illustration generation.
type ImageConfig struct {
	// Enabled toggles illustration generation for guide steps.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Provider selects the image backend (openai, stability).
	Provider string `mapstructure:"provider" default:"openai"`
	// Style leads every illustration prompt.
	Style string `mapstructure:"style" default:"instructional diagram, flat UI, neutral background, clear labels, no clutter"`
	// Size is the generated image size for providers that accept one.
	Size string `mapstructure:"size" default:"1024x1024"`
	// StabilityKey is the API key for the stability provider.
	StabilityKey string `mapstructure:"stability_key" default:""`
	// LogPrompts echoes composed illustration prompts into the log.
	LogPrompts bool `mapstructure:"log_prompts" default:"false"`
	// Dir is the local illustration cache directory, relative to the
	// application root.
	Dir string `mapstructure:"dir" default:"static/images"`
}

// IngestConfig holds configuration for the document ingestion pipeline.
type IngestConfig struct {
	// DocsDir is the default directory scanned for source documents.
	DocsDir string `mapstructure:"docs_dir" default:"docs"`
	// Chunker selects the chunking strategy (pack, paragraph).
	Chunker string `mapstructure:"chunker" default:"pack"`
	// MaxChars caps chunk size for the pack strategy.
	MaxChars int `mapstructure:"max_chars" default:"1000"`
	// ParagraphMaxChars caps chunk size for the paragraph strategy.
	ParagraphMaxChars int `mapstructure:"paragraph_max_chars" default:"1200"`
	// ParagraphOverlap is the overlap carried between paragraph chunks.
	ParagraphOverlap int `mapstructure:"paragraph_overlap" default:"150"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyLegacyEnv(&config)

	return &config, nil
}

// applyLegacyEnv maps the flat environment variable names earlier deployments
// used onto the structured configuration. A set legacy variable wins over its
// structured counterpart so existing deployments keep their behavior.
func applyLegacyEnv(config *Config) {
	legacy := map[string]*string{
		"OPENAI_API_KEY":     &config.LLM.APIKey,
		"OPENAI_MODEL":       &config.LLM.Model,
		"OPENAI_EMBED_MODEL": &config.LLM.EmbedModel,
		"QDRANT_URL":         &config.Vector.URL,
		"QDRANT_API_KEY":     &config.Vector.APIKey,
		"COLLECTION_NAME":    &config.Vector.Collection,
		"STABILITY_API_KEY":  &config.Image.StabilityKey,
		"IMAGE_PROVIDER":     &config.Image.Provider,
		"IMAGE_STYLE":        &config.Image.Style,
		"IMAGE_SIZE":         &config.Image.Size,
	}

	for name, target := range legacy {
		if value := os.Getenv(name); value != "" {
			*target = value
		}
	}

	switch strings.ToLower(os.Getenv("LOG_IMAGE_PROMPTS")) {
	case "1", "true", "yes":
		config.Image.LogPrompts = true
	}
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
