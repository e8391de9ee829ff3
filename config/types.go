package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// GTFSConfig contains GTFS static feed configuration. StaticURL accepts a
// local zip path or an http(s) URL.
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL" validate:"omitempty"`
	AgencyID  string `yaml:"agency_id" validate:"omitempty"`
}

// OverridesConfig locates the boarding/alighting restriction overrides file.
type OverridesConfig struct {
	Path string `yaml:"path" validate:"omitempty"`
}

// OutputConfig controls where and how the compiled feed fragment is written.
type OutputConfig struct {
	Path   string `yaml:"path" validate:"omitempty"`
	Format string `yaml:"format" validate:"omitempty,oneof=csv json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	GTFS      GTFSConfig      `yaml:"gtfs"`
	Overrides OverridesConfig `yaml:"overrides"`
	Output    OutputConfig    `yaml:"output"`
	LogLevel  string          `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error fatal panic"`
}
