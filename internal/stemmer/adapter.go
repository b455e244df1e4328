package stemmer

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/deidaraiorek/ptstem/internal/algorithm"
	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
	"github.com/deidaraiorek/ptstem/internal/wordlist"
)

type algorithmFactory func(algorithm.Kind) (algorithm.Algorithm, error)

// adapter is one configuration epoch: the chosen algorithm, the
// exclusion set and the result cache. A nil cache means caching is off.
type adapter struct {
	kind     algorithm.Kind
	alg      algorithm.Algorithm
	excluded wordlist.Set
	cache    *lru.Cache[string, string]
	capacity int

	hits     atomic.Int64
	misses   atomic.Int64
	skipped  atomic.Int64
	failures atomic.Int64
}

func buildAdapter(cfg Config, newAlgorithm algorithmFactory) (*adapter, error) {
	alg, err := newAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	entities, err := wordlist.Load(cfg.NamedEntities)
	if err != nil {
		return nil, err
	}
	stopwords, err := wordlist.Load(cfg.Stopwords)
	if err != nil {
		return nil, err
	}

	merged := entities.Union(stopwords)
	excluded := make(wordlist.Set, merged.Len())
	for w := range merged {
		excluded[Normalize(w)] = struct{}{}
	}

	a := &adapter{
		kind:     cfg.Algorithm,
		alg:      alg,
		excluded: excluded,
		capacity: cfg.CacheSize,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, string](cfg.CacheSize)
		if err != nil {
			return nil, stemerr.NewConfigError("create cache", err)
		}
		a.cache = cache
	}

	return a, nil
}

// stem expects a normalized word. Exclusion is checked before the
// cache so excluded words never occupy cache slots.
func (a *adapter) stem(word string) (string, error) {
	if a.excluded.Contains(word) {
		a.skipped.Add(1)
		return word, nil
	}

	if a.cache != nil {
		if stem, ok := a.cache.Get(word); ok {
			a.hits.Add(1)
			return stem, nil
		}
	}
	a.misses.Add(1)

	stem, err := a.compute(word)
	if err != nil {
		a.failures.Add(1)
		return "", err
	}

	if a.cache != nil {
		a.cache.Add(word, stem)
	}
	return stem, nil
}

func (a *adapter) compute(word string) (stem string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stemerr.NewAlgorithmError(a.kind.String(), word, fmt.Errorf("panic: %v", r))
		}
	}()
	return a.alg.Stem(word), nil
}

func (a *adapter) cacheLen() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}

func (a *adapter) cached(word string) bool {
	return a.cache != nil && a.cache.Contains(word)
}
