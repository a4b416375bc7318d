package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"darionassist/pkg/options"
)

type Config struct {
	Server     ServerConfig  `yaml:"server"`
	Redis      RedisConfig   `yaml:"redis"`
	Dictionary DictConfig    `yaml:"dictionary"`
	Suggest    SuggestConfig `yaml:"suggest"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DictConfig struct {
	VocabularyPath  string `yaml:"vocabulary_path"`
	CorrectionsPath string `yaml:"corrections_path"`
}

type SuggestConfig struct {
	MaxSuggestions   int     `yaml:"max_suggestions"`
	MaxEditDistance  int     `yaml:"max_edit_distance"`
	LambdaPenalty    float64 `yaml:"lambda_penalty"`
	TransposeCost    float64 `yaml:"transpose_cost"`
	NeighborInsDel   float64 `yaml:"neighbor_ins_del"`
	KeyboardNearSub  float64 `yaml:"keyboard_near_sub"`
	PrefixWeight     float64 `yaml:"prefix_weight"`
	SubseqBonus      float64 `yaml:"subseq_bonus"`
	FilterShortQuery bool    `yaml:"filter_short_query"`
}

// Default returns the built-in configuration: local Redis, built-in
// dictionaries, default ranking weights.
func Default() Config {
	d := options.DefaultOptions
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Suggest: SuggestConfig{
			MaxSuggestions:  d.MaxSuggestions,
			MaxEditDistance: d.MaxEditDistance,
			LambdaPenalty:   d.LambdaPenalty,
			TransposeCost:   d.TransposeCost,
			NeighborInsDel:  d.NeighborInsDel,
			KeyboardNearSub: d.KeyboardNearSub,
			PrefixWeight:    d.PrefixWeight,
			SubseqBonus:     d.SubseqBonus,
		},
	}
}

// Load reads the YAML config at path over the defaults, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = i
		}
	}
	if v := os.Getenv("VOCABULARY_PATH"); v != "" {
		c.Dictionary.VocabularyPath = v
	}
	if v := os.Getenv("CORRECTIONS_PATH"); v != "" {
		c.Dictionary.CorrectionsPath = v
	}
}

// Options converts the suggest section into engine options.
func (s SuggestConfig) Options() []options.Options {
	opts := []options.Options{
		options.WithMaxSuggestions(s.MaxSuggestions),
		options.WithMaxEditDistance(s.MaxEditDistance),
		options.WithLambdaPenalty(s.LambdaPenalty),
		options.WithTransposeCost(s.TransposeCost),
		options.WithNeighborInsDel(s.NeighborInsDel),
		options.WithKeyboardNearSub(s.KeyboardNearSub),
		options.WithPrefixWeight(s.PrefixWeight),
		options.WithSubseqBonus(s.SubseqBonus),
	}
	if s.FilterShortQuery {
		opts = append(opts, options.WithFilterShortQuery())
	}
	return opts
}
