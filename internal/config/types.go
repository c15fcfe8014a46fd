package config

// ExportFormat selects the output of the export command.
type ExportFormat string

const (
	FormatHTML ExportFormat = "html"
	FormatPNG  ExportFormat = "png"
	FormatJPG  ExportFormat = "jpg"
	FormatJPEG ExportFormat = "jpeg"
)

// Config is the top-level configuration, corresponding to .chronoline.yml.
type Config struct {
	Data      string       `yaml:"data" koanf:"data"`
	Include   []string     `yaml:"include" koanf:"include"`
	Theme     string       `yaml:"theme" koanf:"theme"`
	StartYear int          `yaml:"start_year" koanf:"start_year"`
	Category  string       `yaml:"category" koanf:"category"`
	Watch     bool         `yaml:"watch" koanf:"watch"`
	LogFile   string       `yaml:"log_file" koanf:"log_file"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Export    ExportConfig `yaml:"export" koanf:"export"`
}

// ServerConfig holds settings for the HTTP host.
type ServerConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ExportConfig holds settings for static exports.
type ExportConfig struct {
	Format ExportFormat `yaml:"format" koanf:"format"`
	Output string       `yaml:"output" koanf:"output"`
	Width  int          `yaml:"width" koanf:"width"`
}
