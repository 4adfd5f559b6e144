package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds every runtime setting of the API server.
type Config struct {
	HTTPAddr           string        `validate:"required"`
	Env                string        `validate:"oneof=development production"`
	CORSAllowedOrigins []string      `validate:"dive,url"`
	RateLimitRPS       float64       `validate:"gte=0"`
	RateLimitBurst     int           `validate:"gte=1"`
	MaxBodyBytes       int64         `validate:"gte=1024"`
	ShutdownTimeout    time.Duration `validate:"gte=1s"`
	ServiceName        string        `validate:"required"`
	OTelEnabled        bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		HTTPAddr:           ":8080",
		Env:                EnvDevelopment,
		CORSAllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		RateLimitRPS:       20,
		RateLimitBurst:     40,
		MaxBodyBytes:       1 << 20,
		ShutdownTimeout:    5 * time.Second,
		ServiceName:        "gpa-calculator",
	}
}

// Load reads the configuration from the process environment, falling back
// to Default for anything unset, and validates the result.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	p.setString("HTTP_ADDR", &cfg.HTTPAddr)
	p.setString("APP_ENV", &cfg.Env)
	p.setList("CORS_ALLOWED_ORIGINS", &cfg.CORSAllowedOrigins)
	p.setFloat("RATE_LIMIT_RPS", &cfg.RateLimitRPS)
	p.setInt("RATE_LIMIT_BURST", &cfg.RateLimitBurst)
	p.setInt64("MAX_BODY_BYTES", &cfg.MaxBodyBytes)
	p.setDuration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	p.setBool("OTEL_ENABLED", &cfg.OTelEnabled)
	p.setString("OTEL_SERVICE_NAME", &cfg.ServiceName)

	if p.err != nil {
		return Config{}, p.err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// parser records the first conversion error and skips the rest.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) value(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *parser) fail(key, raw string, err error) {
	p.err = fmt.Errorf("parse %s=%q: %w", key, raw, err)
}

func (p *parser) setString(key string, dst *string) {
	if v, ok := p.value(key); ok {
		*dst = v
	}
}

func (p *parser) setList(key string, dst *[]string) {
	v, ok := p.value(key)
	if !ok {
		return
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func (p *parser) setFloat(key string, dst *float64) {
	if v, ok := p.value(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (p *parser) setInt(key string, dst *int) {
	if v, ok := p.value(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) setInt64(key string, dst *int64) {
	if v, ok := p.value(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) setDuration(key string, dst *time.Duration) {
	if v, ok := p.value(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (p *parser) setBool(key string, dst *bool) {
	if v, ok := p.value(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = b
	}
}
