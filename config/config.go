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
	defaultPath             = "."
	defaultAPITimeout       = 10 * time.Second
	defaultStaleTime        = 30 * time.Second
	defaultRetry            = 1
	defaultRetryDelay       = time.Second
	defaultUserPollInterval = 15 * time.Second
	defaultPageSize         = 20
	defaultTokenTTL         = 12 * time.Hour
	defaultHTTPPort         = 8080
	defaultMaxBodySize      = "1M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API describes the remote Alerty backend consumed by the client.
	API struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"api" yaml:"api"`

	// Storage configures the on-device secure key-value store.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Query configures the client-side query cache.
	Query *QueryConfig `json:"query" yaml:"query"`

	// HTTP is used by the development backend only.
	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the secure store keeps its objects
type StorageConfig struct {
	// Directory for the file-backed bucket. Empty keeps everything in memory.
	Dir string `json:"dir" yaml:"dir"`

	// Passphrase the sealing key is derived from
	Passphrase string `json:"passphrase" yaml:"passphrase"`
}

// QueryConfig defines cache and polling behaviour of the query layer
type QueryConfig struct {
	StaleTime        time.Duration `json:"staleTime" yaml:"staleTime"`
	Retry            int           `json:"retry" yaml:"retry"`
	RetryDelay       time.Duration `json:"retryDelay" yaml:"retryDelay"`
	UserPollInterval time.Duration `json:"userPollInterval" yaml:"userPollInterval"`
	PageSize         int           `json:"pageSize" yaml:"pageSize"`
}

// AuthConfig defines token issuing for the development backend
type AuthConfig struct {
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseUrl, aligned with the keys already present in YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset value with the client defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}

	if cfg.Query == nil {
		cfg.Query = &QueryConfig{StaleTime: defaultStaleTime, Retry: defaultRetry}
	}
	if cfg.Query.StaleTime == 0 {
		cfg.Query.StaleTime = defaultStaleTime
	}
	if cfg.Query.Retry < 0 {
		cfg.Query.Retry = 0
	}
	if cfg.Query.RetryDelay <= 0 {
		cfg.Query.RetryDelay = defaultRetryDelay
	}
	if cfg.Query.UserPollInterval <= 0 {
		cfg.Query.UserPollInterval = defaultUserPollInterval
	}
	if cfg.Query.PageSize <= 0 {
		cfg.Query.PageSize = defaultPageSize
	}

	if cfg.HTTP.Port <= 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
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
