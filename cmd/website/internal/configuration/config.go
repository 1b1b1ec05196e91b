package configuration

import "github.com/adampresley/configinator"

type Config struct {
	CataasBaseURL      string `flag:"cataas" env:"CATAAS_BASE_URL" default:"https://cataas.com" description:"Base URL of the cat generation service"`
	CatalogSampleLimit int    `flag:"samplelimit" env:"CATALOG_SAMPLE_LIMIT" default:"20" description:"Number of catalog records to show on the browse tab"`
	CookieSecret       string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	DSN                string `flag:"dsn" env:"DSN" default:"file:catplayground?mode=memory&cache=shared" description:"Data source name for session gallery storage"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	HttpTimeoutSeconds int    `flag:"httptimeout" env:"HTTP_TIMEOUT_SECONDS" default:"15" description:"Timeout in seconds for requests to the cat generation service"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxCatalogWorkers  int    `flag:"mcw" env:"MAX_CATALOG_WORKERS" default:"3" description:"Maximum number of concurrent catalog fetches at startup"`
	QuickTagCount      int    `flag:"quicktags" env:"QUICK_TAG_COUNT" default:"15" description:"Number of tags offered as one-click buttons"`
	ThumbnailSize      int    `flag:"thumbsize" env:"THUMBNAIL_SIZE" default:"300" description:"Longest edge in pixels of catalog thumbnails"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
