package stemmer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/deidaraiorek/ptstem/internal/algorithm"
	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
)

type rawOptions struct {
	algorithm     string
	namedEntities string
	stopwords     string
	cache         string
}

// optionParser builds a throwaway cli.App for one -S/-N/-W/-C array.
// Nothing is printed; usage errors come back from Run.
func optionParser(out *rawOptions) *cli.App {
	return &cli.App{
		Name:           "stemmer",
		HideHelp:       true,
		HideVersion:    true,
		Writer:         io.Discard,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(*cli.Context, error) {},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return err
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "S", Value: DefaultAlgorithm.String(), Usage: "stemmer algorithm: ORENGO, PORTER or SAVOY"},
			&cli.StringFlag{Name: "N", Usage: "file with named entities to ignore, one per line"},
			&cli.StringFlag{Name: "W", Usage: "file with stopwords to ignore, one per line"},
			&cli.StringFlag{Name: "C", Value: strconv.Itoa(DefaultCacheSize), Usage: "cache size, 0 disables caching"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}
			*out = rawOptions{
				algorithm:     c.String("S"),
				namedEntities: c.String("N"),
				stopwords:     c.String("W"),
				cache:         c.String("C"),
			}
			return nil
		},
	}
}

// ParseOptions decodes the -S/-N/-W/-C option array. Flags that are
// absent take their default; the result never inherits earlier values.
func ParseOptions(args []string) (Config, error) {
	var raw rawOptions
	if err := optionParser(&raw).Run(append([]string{"stemmer"}, args...)); err != nil {
		return Config{}, stemerr.NewConfigError("parse options", err)
	}

	kind, err := algorithm.ParseKind(raw.algorithm)
	if err != nil {
		return Config{}, err
	}

	size, err := strconv.Atoi(strings.TrimSpace(raw.cache))
	if err != nil {
		return Config{}, stemerr.NewConfigError("parse -C", fmt.Errorf("invalid cache size %q", raw.cache))
	}

	cfg := Config{
		Algorithm:     kind,
		NamedEntities: raw.namedEntities,
		Stopwords:     raw.stopwords,
		CacheSize:     size,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FormatOptions encodes cfg as an option array accepted by
// ParseOptions. Unset list paths are omitted.
func FormatOptions(cfg Config) []string {
	opts := []string{"-S", cfg.Algorithm.String()}
	if cfg.NamedEntities != "" {
		opts = append(opts, "-N", cfg.NamedEntities)
	}
	if cfg.Stopwords != "" {
		opts = append(opts, "-W", cfg.Stopwords)
	}
	return append(opts, "-C", strconv.Itoa(cfg.CacheSize))
}

func (s *Stemmer) Options() []string {
	return FormatOptions(s.Config())
}

// SetOptions replaces the whole configuration. On error the current
// configuration and adapter are left as they were.
func (s *Stemmer) SetOptions(args []string) error {
	cfg, err := ParseOptions(args)
	if err != nil {
		return err
	}
	s.update(func(c *Config) { *c = cfg })
	return nil
}
