package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   Server
	Data     Data
	Prefetch Prefetch
}

type Server struct {
	Addr            string `envconfig:"LISTEN_ADDR" default:":8080"`
	SessionKey      string `envconfig:"SESSION_KEY"`
	SharedPagesFile string `envconfig:"SHARED_PAGES_FILE"`
	LeagueName      string `envconfig:"LEAGUE_NAME" default:"Fantasy League"`
}

type Data struct {
	BaseURL     string        `envconfig:"DATA_BASE_URL" default:"http://localhost:8080/data"`
	Dir         string        `envconfig:"DATA_DIR" default:"."`
	Years       []int         `envconfig:"YEARS" default:"2024,2025"`
	DefaultYear int           `envconfig:"DEFAULT_YEAR" default:"2025"`
	Timeout     time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
}

// Prefetch controls the background job that warms the year cache.
// A zero Interval runs the job once at startup.
type Prefetch struct {
	Interval time.Duration `envconfig:"PREFETCH_INTERVAL" default:"0s"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
