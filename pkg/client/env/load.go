package env

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds DBM connection settings taken from the environment.
type Config struct {
	APIURL    string        `env:"DBM_API_URL"`
	AppCode   string        `env:"BK_APP_CODE"`
	AppSecret string        `env:"BK_APP_SECRET"`
	Username  string        `env:"BK_USERNAME"`
	BizID     int64         `env:"DBM_BIZ_ID"`
	TimeZone  string        `env:"DBM_TIME_ZONE" envDefault:"Local"`
	Timeout   time.Duration `env:"DBM_TIMEOUT" envDefault:"60s"`
}

func (c *Config) String() string {
	secret := ""
	if c.AppSecret != "" {
		secret = "******"
	}
	return fmt.Sprintf(
		"Config{APIURL: %s, AppCode: %s, AppSecret: %s, Username: %s, BizID: %d, TimeZone: %s}",
		c.APIURL, c.AppCode, secret, c.Username, c.BizID, c.TimeZone,
	)
}

// Location resolves TimeZone. Empty and "Local" both mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DBM_TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Load reads the given dotenv files (or the .env next to this package when
// none are passed) and parses the environment into a Config. Missing dotenv
// files are not an error: real environment variables still apply.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_, filename, _, _ := runtime.Caller(0)
		files = []string{filepath.Join(filepath.Dir(filename), ".env")}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
