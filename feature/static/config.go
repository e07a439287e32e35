package static

// Config holds configuration for the file-serving feature.
type Config struct {
	// Index is the document served for "/" and for directory paths.
	Index string `mapstructure:"index" default:"index.html"`
	// ListDirectories renders an HTML listing for directories without an
	// index document. When false such directories are not found.
	ListDirectories bool `mapstructure:"list_directories" default:"false"`
}
