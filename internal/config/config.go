package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/deidaraiorek/ptstem/internal/algorithm"
	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
	"github.com/deidaraiorek/ptstem/internal/stemmer"
)

const DefaultPath = "ptstem.toml"

type Config struct {
	Stemmer Stemmer `toml:"stemmer"`
	Server  Server  `toml:"server"`
	Store   Store   `toml:"store"`
	Batch   Batch   `toml:"batch"`
	Watch   Watch   `toml:"watch"`
}

type Stemmer struct {
	Algorithm     string `toml:"algorithm"`
	NamedEntities string `toml:"named_entities"`
	Stopwords     string `toml:"stopwords"`
	Cache         int    `toml:"cache"`
}

type Server struct {
	Addr string `toml:"addr"`
}

type Store struct {
	Path string `toml:"path"`
}

type Batch struct {
	Workers int `toml:"workers"`
}

type Watch struct {
	Enabled bool `toml:"enabled"`
}

func Default() *Config {
	return &Config{
		Stemmer: Stemmer{
			Algorithm: stemmer.DefaultAlgorithm.String(),
			Cache:     stemmer.DefaultCacheSize,
		},
		Server: Server{Addr: ":8080"},
		Store:  Store{Path: "ptstem.db"},
		Batch:  Batch{Workers: 4},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; keys absent from the file keep their default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, stemerr.NewConfigError("parse "+path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := algorithm.ParseKind(c.Stemmer.Algorithm); err != nil {
		return err
	}
	if c.Stemmer.Cache < 0 {
		return stemerr.NewConfigError("validate", fmt.Errorf("stemmer.cache must be >= 0, got %d", c.Stemmer.Cache))
	}
	if c.Batch.Workers < 1 {
		return stemerr.NewConfigError("validate", fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers))
	}
	return nil
}

// StemmerOptions renders the [stemmer] table as a -S/-N/-W/-C option
// array for stemmer.SetOptions.
func (c *Config) StemmerOptions() []string {
	opts := []string{"-S", c.Stemmer.Algorithm}
	if c.Stemmer.NamedEntities != "" {
		opts = append(opts, "-N", c.Stemmer.NamedEntities)
	}
	if c.Stemmer.Stopwords != "" {
		opts = append(opts, "-W", c.Stemmer.Stopwords)
	}
	return append(opts, "-C", strconv.Itoa(c.Stemmer.Cache))
}

func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
