package storage

// Config holds configuration for the serving root.
type Config struct {
	// Root is the directory whose tree is served. Relative paths are resolved
	// against the working directory at startup.
	Root string `mapstructure:"root" default:"."`
}
