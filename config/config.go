package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// writeMargin is left between the request budget and the HTTP write timeout
	// so the error response can still be written.
	writeMargin = 5 * time.Second
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration for the alternative knowledge document store
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// LLM configuration for the generation and embedding services
	LLM *LLMConfig `json:"llm" yaml:"llm"`

	// Retrieval configuration for the knowledge base index
	Retrieval *RetrievalConfig `json:"retrieval" yaml:"retrieval"`

	// Safety configuration for the calorie policy and generation checks
	Safety *SafetyConfig `json:"safety" yaml:"safety"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the Redis connection used when retrieval.store is "redis"
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// LLMConfig defines the OpenAI-compatible endpoint used for completions and embeddings
type LLMConfig struct {
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	ChatModel      string `json:"chatModel" yaml:"chatModel"`
	EmbeddingModel string `json:"embeddingModel" yaml:"embeddingModel"`

	// Upper bound on generated tokens per completion
	MaxTokens int `json:"maxTokens" yaml:"maxTokens"`

	// Sampling temperature for plan and chat completions
	Temperature float64 `json:"temperature" yaml:"temperature"`

	GenerationTimeout time.Duration `json:"generationTimeout" yaml:"generationTimeout"`
	EmbeddingTimeout  time.Duration `json:"embeddingTimeout" yaml:"embeddingTimeout"`

	// RequestTimeout bounds one plan or chat request end to end, retrieval and retries included.
	// Defaults to the HTTP write timeout minus a margin.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// RetrievalConfig defines how the knowledge base is stored and queried
type RetrievalConfig struct {
	// Store selects the document backend: "postgres" or "redis"
	Store string `json:"store" yaml:"store"`

	// TopK is the number of snippets fetched per collection
	TopK int `json:"topK" yaml:"topK"`

	// RequireReady fails startup when the index could not be loaded
	RequireReady bool `json:"requireReady" yaml:"requireReady"`
}

// SafetyConfig defines the calorie policy and the generation output checks
type SafetyConfig struct {
	CalorieFloor int `json:"calorieFloor" yaml:"calorieFloor"`
	MaxDeficit   int `json:"maxDeficit" yaml:"maxDeficit"`

	// GoalAdjustments overrides the default kcal adjustment per goal
	GoalAdjustments map[string]int `json:"goalAdjustments" yaml:"goalAdjustments"`

	// RequireSections rejects generated plans missing any mandatory section label
	RequireSections bool `json:"requireSections" yaml:"requireSections"`

	MaxGenerationAttempts int           `json:"maxGenerationAttempts" yaml:"maxGenerationAttempts"`
	RetryBackoff          time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.normalizeTimeouts(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalizeTimeouts fills the request budget and checks that a plan request
// finishes before the server gives up on writing its response.
func (c *Config) normalizeTimeouts() error {
	if c.LLM == nil {
		return nil
	}

	write := c.HTTP.Timeouts.WriteTimeout
	if c.LLM.RequestTimeout == 0 && write > writeMargin {
		c.LLM.RequestTimeout = write - writeMargin
	}

	if write > 0 && c.LLM.RequestTimeout >= write {
		return errors.Errorf("llm.requestTimeout %s must be shorter than http.timeouts.writeTimeout %s",
			c.LLM.RequestTimeout, write)
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
