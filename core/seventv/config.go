package seventv

// Config holds configuration for the upstream emote provider.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `mapstructure:"endpoint" default:"https://7tv.io/v3/gql"`
	// Token is the bearer token used for mutations.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-call timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SearchLimit is the page size for name searches.
	SearchLimit int `mapstructure:"search_limit" default:"300"`
}
