package stemmer

import (
	"fmt"
	"log"
	"sync"

	"github.com/deidaraiorek/ptstem/internal/algorithm"
	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
)

const (
	DefaultAlgorithm = algorithm.Orengo
	DefaultCacheSize = 1000
)

// Config selects the algorithm, the optional exclusion lists and the
// cache capacity. An empty path means no list; CacheSize 0 disables
// caching.
type Config struct {
	Algorithm     algorithm.Kind
	NamedEntities string
	Stopwords     string
	CacheSize     int
}

func DefaultConfig() Config {
	return Config{
		Algorithm: DefaultAlgorithm,
		CacheSize: DefaultCacheSize,
	}
}

func (c Config) Validate() error {
	if !c.Algorithm.Valid() {
		return stemerr.NewConfigError("validate", fmt.Errorf("unknown algorithm %v", c.Algorithm))
	}
	if c.CacheSize < 0 {
		return stemerr.NewConfigError("validate", fmt.Errorf("invalid cache size: %d (must be >= 0)", c.CacheSize))
	}
	return nil
}

type Stats struct {
	Built         bool   `json:"built"`
	Algorithm     string `json:"algorithm"`
	Builds        int    `json:"builds"`
	CacheLen      int    `json:"cache_len"`
	CacheCapacity int    `json:"cache_capacity"`
	Excluded      int    `json:"excluded_words"`
	Hits          int64  `json:"hits"`
	Misses        int64  `json:"misses"`
	Skipped       int64  `json:"skipped"`
	Failures      int64  `json:"failures"`
}

// Stemmer holds the configuration and builds the stemming adapter on
// first use. Every setter discards the built adapter; the next Stem
// call rebuilds it from the new configuration.
type Stemmer struct {
	mu           sync.Mutex
	config       Config
	built        *adapter
	builds       int
	newAlgorithm algorithmFactory
}

func New() *Stemmer {
	return &Stemmer{
		config:       DefaultConfig(),
		newAlgorithm: algorithm.New,
	}
}

func NewWithConfig(cfg Config) (*Stemmer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := New()
	s.config = cfg
	return s, nil
}

func (s *Stemmer) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *Stemmer) SetAlgorithm(kind algorithm.Kind) error {
	if !kind.Valid() {
		return stemerr.NewConfigError("set algorithm", fmt.Errorf("unknown algorithm %v", kind))
	}
	s.update(func(c *Config) { c.Algorithm = kind })
	return nil
}

func (s *Stemmer) SetNamedEntities(path string) {
	s.update(func(c *Config) { c.NamedEntities = path })
}

func (s *Stemmer) SetStopwords(path string) {
	s.update(func(c *Config) { c.Stopwords = path })
}

func (s *Stemmer) SetCacheSize(size int) error {
	if size < 0 {
		return stemerr.NewConfigError("set cache size", fmt.Errorf("invalid cache size: %d (must be >= 0)", size))
	}
	s.update(func(c *Config) { c.CacheSize = size })
	return nil
}

// Invalidate drops the built adapter without touching the
// configuration, e.g. after a list file changed on disk.
func (s *Stemmer) Invalidate() {
	s.update(func(*Config) {})
}

func (s *Stemmer) update(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.config)
	s.built = nil
}

// acquire returns the current adapter, building it if needed. A failed
// build is not remembered, so the next call retries.
func (s *Stemmer) acquire() (*adapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built != nil {
		return s.built, nil
	}

	a, err := buildAdapter(s.config, s.newAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("building %s stemmer: %w", s.config.Algorithm, err)
	}
	s.built = a
	s.builds++
	return a, nil
}

// Stem lower-cases word and returns its stem. Words in the named-entity
// or stopword lists come back normalized but unstemmed. Build failures
// are config or list_load errors; a failure inside the algorithm is an
// algorithm error that affects only this word.
func (s *Stemmer) Stem(word string) (string, error) {
	word = Normalize(word)
	if word == "" {
		return "", nil
	}

	a, err := s.acquire()
	if err != nil {
		return "", err
	}
	return a.stem(word)
}

// TryStem is Stem for per-word pipelines that must not abort: the
// error is logged and ok is false.
func (s *Stemmer) TryStem(word string) (string, bool) {
	stem, err := s.Stem(word)
	if err != nil {
		log.Printf("Failed to stem %q: %v", word, err)
		return "", false
	}
	return stem, true
}

func (s *Stemmer) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Algorithm:     s.config.Algorithm.String(),
		Builds:        s.builds,
		CacheCapacity: s.config.CacheSize,
	}
	if a := s.built; a != nil {
		st.Built = true
		st.CacheLen = a.cacheLen()
		st.Excluded = a.excluded.Len()
		st.Hits = a.hits.Load()
		st.Misses = a.misses.Load()
		st.Skipped = a.skipped.Load()
		st.Failures = a.failures.Load()
	}
	return st
}
