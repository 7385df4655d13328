package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultUTCOffset          = "-3h"
	defaultCatalogPath        = "config/catalog.yaml"
	defaultGoogleLanguage     = "pt-BR"
	defaultGoogleTimeout      = 10 * time.Second
	defaultJustifierModel     = "gpt-4o-mini"
	defaultJustifierTimeout   = 8 * time.Second
	defaultJustifierMaxTokens = 80
	defaultJustifierRPS       = 3
	defaultJustifierBurst     = 5
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	// Google configuration for the geocoding and places web services
	Google *GoogleConfig `json:"google" yaml:"google"`

	// Justification configuration for the text-generation provider
	Justification *JustificationConfig `json:"justification" yaml:"justification"`

	// Search configuration for the resolution engine
	Search *SearchConfig `json:"search" yaml:"search"`

	// CountryGate configuration for country-based access gating
	CountryGate *CountryGateConfig `json:"countryGate" yaml:"countryGate"`

	// PubSub configuration for search event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines the per-client request limit
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// GoogleConfig defines access to the Google Maps web services
type GoogleConfig struct {
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Language string `json:"language" yaml:"language"`
	// Region biases forward geocoding, e.g. "br"
	Region  string        `json:"region" yaml:"region"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// BaseURL overrides the Maps endpoint (proxies, tests)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// JustificationConfig defines the text-generation provider used for the one-sentence reason
type JustificationConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	Model     string        `json:"model" yaml:"model"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	MaxTokens int           `json:"maxTokens" yaml:"maxTokens"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	// RequestsPerSecond caps generator calls; requests over the cap get the fixed sentence
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// SearchConfig defines the resolution engine settings
type SearchConfig struct {
	// CatalogPath points to the partner registry and noise rules file
	CatalogPath string `json:"catalogPath" yaml:"catalogPath"`

	// UTCOffset is the fixed offset used to read opening hours, e.g. "-3h"
	UTCOffset string `json:"utcOffset" yaml:"utcOffset"`
}

// Offset parses UTCOffset.
func (c *SearchConfig) Offset() (time.Duration, error) {
	offset, err := time.ParseDuration(c.UTCOffset)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid search.utcOffset %q", c.UTCOffset)
	}
	if offset < -14*time.Hour || offset > 14*time.Hour {
		return 0, errors.Errorf("search.utcOffset %q out of range", c.UTCOffset)
	}

	return offset, nil
}

// CountryGateConfig defines the GeoIP country filter at the HTTP boundary
type CountryGateConfig struct {
	Enabled          bool     `json:"enabled" yaml:"enabled"`
	DatabasePath     string   `json:"databasePath" yaml:"databasePath"`
	AllowedCountries []string `json:"allowedCountries" yaml:"allowedCountries"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GOOGLE_APIKEY -> google.apiKey, aligned with the keys already present in YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := Unmarshal(koanfInstance, "", cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// Unmarshal decodes path of a loaded koanf instance into out, matching keys case-insensitively
// and converting duration strings.
func Unmarshal(k *koanf.Koanf, path string, out any) error {
	return errors.WithStack(k.UnmarshalWithConf(path, out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: strings.EqualFold,
		},
	}))
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Google == nil {
		cfg.Google = &GoogleConfig{}
	}
	if cfg.Google.Language == "" {
		cfg.Google.Language = defaultGoogleLanguage
	}
	if cfg.Google.Timeout <= 0 {
		cfg.Google.Timeout = defaultGoogleTimeout
	}

	if cfg.Justification == nil {
		cfg.Justification = &JustificationConfig{}
	}
	if cfg.Justification.Model == "" {
		cfg.Justification.Model = defaultJustifierModel
	}
	if cfg.Justification.Timeout <= 0 {
		cfg.Justification.Timeout = defaultJustifierTimeout
	}
	if cfg.Justification.MaxTokens <= 0 {
		cfg.Justification.MaxTokens = defaultJustifierMaxTokens
	}
	if cfg.Justification.RequestsPerSecond <= 0 {
		cfg.Justification.RequestsPerSecond = defaultJustifierRPS
	}
	if cfg.Justification.Burst <= 0 {
		cfg.Justification.Burst = defaultJustifierBurst
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.CatalogPath == "" {
		cfg.Search.CatalogPath = defaultCatalogPath
	}
	if cfg.Search.UTCOffset == "" {
		cfg.Search.UTCOffset = defaultUTCOffset
	}
	if _, err := cfg.Search.Offset(); err != nil {
		return err
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
