package cors

// Config holds the values written to the Access-Control-* response headers.
type Config struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin.
	AllowOrigin string `mapstructure:"allow_origin" default:"*"`
	// AllowMethods is sent as Access-Control-Allow-Methods.
	AllowMethods string `mapstructure:"allow_methods" default:"GET, POST, PUT, DELETE, OPTIONS"`
	// AllowHeaders is sent as Access-Control-Allow-Headers.
	AllowHeaders string `mapstructure:"allow_headers" default:"Content-Type, Authorization"`
}

// ConfigDefault is the permissive development policy.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	AllowHeaders: "Content-Type, Authorization",
}

func (c Config) withDefaults() Config {
	if c.AllowOrigin == "" {
		c.AllowOrigin = ConfigDefault.AllowOrigin
	}
	if c.AllowMethods == "" {
		c.AllowMethods = ConfigDefault.AllowMethods
	}
	if c.AllowHeaders == "" {
		c.AllowHeaders = ConfigDefault.AllowHeaders
	}
	return c
}
