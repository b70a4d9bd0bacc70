package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RandomSeed  int64             `yaml:"random_seed"`
	DateRange   DateRangeConfig   `yaml:"date_range"`
	Products    ProductsConfig    `yaml:"products"`
	Reviews     ReviewsConfig     `yaml:"reviews"`
	SocialPosts SocialPostsConfig `yaml:"social_posts"`
	Output      OutputConfig      `yaml:"output"`
	Sinks       SinksConfig       `yaml:"sinks"`
	Observ      ObservabilityConfig
	Env         string
}

type DateRangeConfig struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type ProductsConfig struct {
	Lines []ProductLineConfig `yaml:"lines"`
}

type ProductLineConfig struct {
	Name        string `yaml:"name"`
	SeriesCount int    `yaml:"series_count"`
}

type ReviewsConfig struct {
	MinPerProduct int `yaml:"min_per_product"`
	MaxPerProduct int `yaml:"max_per_product"`
}

type SocialPostsConfig struct {
	PostsPerProductPerMonth int `yaml:"posts_per_product_per_month"`
}

type OutputConfig struct {
	DataDir string `yaml:"data_dir"`
}

type SinksConfig struct {
	DatabaseURL  string   `yaml:"database_url"`
	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

// Load reads the YAML config file and applies environment overrides. A
// missing or malformed file is an error; the caller is expected to abort
// before any generation starts.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		Reviews:     ReviewsConfig{MinPerProduct: 5, MaxPerProduct: 20},
		SocialPosts: SocialPostsConfig{PostsPerProductPerMonth: 30},
		Output:      OutputConfig{DataDir: "data"},
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Env = getEnv("ENV", "development")
	cfg.Observ.JaegerEndpoint = getEnv("JAEGER_ENDPOINT", "")

	if seed := os.Getenv("NOVAGEN_SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid NOVAGEN_SEED %q: %w", seed, err)
		}
		cfg.RandomSeed = parsed
	}
	if dir := os.Getenv("NOVAGEN_OUTPUT_DIR"); dir != "" {
		cfg.Output.DataDir = dir
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Sinks.DatabaseURL = url
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Sinks.KafkaBrokers = strings.Split(brokers, ",")
	}
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		cfg.Sinks.KafkaTopic = topic
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DateRange.StartDate == "" || c.DateRange.EndDate == "" {
		return fmt.Errorf("date_range start_date and end_date are required")
	}
	if len(c.Products.Lines) == 0 {
		return fmt.Errorf("at least one product line is required")
	}
	for _, line := range c.Products.Lines {
		if line.Name == "" {
			return fmt.Errorf("product line name must not be empty")
		}
		if line.SeriesCount < 1 {
			return fmt.Errorf("product line %q: series_count must be >= 1", line.Name)
		}
	}
	if c.Reviews.MinPerProduct < 0 || c.Reviews.MaxPerProduct < c.Reviews.MinPerProduct {
		return fmt.Errorf("reviews: need 0 <= min_per_product <= max_per_product")
	}
	if c.SocialPosts.PostsPerProductPerMonth < 0 {
		return fmt.Errorf("social_posts: posts_per_product_per_month must be >= 0")
	}
	if c.Output.DataDir == "" {
		return fmt.Errorf("output data_dir must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
