package config

const (
	// DefaultTheme is a dark base16 chroma style
	DefaultTheme = "base16-snazzy"
	// DefaultMaxRedirects matches the usual client default
	DefaultMaxRedirects = 10
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Theme:           DefaultTheme,
		Timeout:         0,
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    DefaultMaxRedirects,
		Verbose:         BoolPtr(false),
	}
}
