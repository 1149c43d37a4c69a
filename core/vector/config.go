package vector

// Index backend modes.
const (
	ModeEmbedded = "embedded"
	ModeQdrant   = "qdrant"
)

// Config holds configuration for the vector index.
type Config struct {
	// Mode selects the index backend (embedded, qdrant).
	Mode string `mapstructure:"mode" default:"embedded"`
	// URL is the Qdrant endpoint for the qdrant mode.
	URL string `mapstructure:"url" default:"http://localhost:6333"`
	// APIKey authenticates against managed Qdrant deployments.
	APIKey string `mapstructure:"api_key" default:""`
	// Collection is the collection holding the document index.
	Collection string `mapstructure:"collection" default:"docs"`
	// TimeoutSeconds is the request timeout for the qdrant mode.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
