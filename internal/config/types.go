package config

// Config is the top-level restohub configuration, corresponding to .restohub.yml.
type Config struct {
	APIBaseURL            string `yaml:"api_base_url" koanf:"api_base_url"`
	ImageBaseURL          string `yaml:"image_base_url" koanf:"image_base_url"`
	ImageSize             string `yaml:"image_size" koanf:"image_size"`
	DataDir               string `yaml:"data_dir" koanf:"data_dir"`
	Port                  int    `yaml:"port" koanf:"port"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	AllowAllOrigins       bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ListCache             string `yaml:"list_cache" koanf:"list_cache"`
	DetailCache           string `yaml:"detail_cache" koanf:"detail_cache"`
}
