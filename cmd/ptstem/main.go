package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/deidaraiorek/ptstem/internal/batch"
	"github.com/deidaraiorek/ptstem/internal/config"
	"github.com/deidaraiorek/ptstem/internal/server"
	"github.com/deidaraiorek/ptstem/internal/stemmer"
	"github.com/deidaraiorek/ptstem/internal/storage"
	"github.com/deidaraiorek/ptstem/internal/textprocessor"
	"github.com/deidaraiorek/ptstem/internal/watch"
)

var logFile *os.File

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("ptstem: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ptstem",
		Usage: "Portuguese stemmer with Orengo, Porter and Savoy algorithms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config file",
				Value: config.DefaultPath,
			},
			&cli.StringFlag{
				Name:    "stemmer",
				Aliases: []string{"S"},
				Usage:   "stemmer algorithm: ORENGO, PORTER or SAVOY (default: ORENGO)",
			},
			&cli.StringFlag{
				Name:    "named-entities",
				Aliases: []string{"N"},
				Usage:   "file with named entities to ignore, one per line",
			},
			&cli.StringFlag{
				Name:    "stopwords",
				Aliases: []string{"W"},
				Usage:   "file with stopwords to ignore, one per line",
			},
			&cli.IntFlag{
				Name:    "cache",
				Aliases: []string{"C"},
				Usage:   "size of the stem cache, 0 disables it (default: 1000)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also append log output to this file",
			},
		},
		Before: setupLogging,
		After: func(c *cli.Context) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		Action: stemCommand,
		Commands: []*cli.Command{
			{
				Name:   "stem",
				Usage:  "Stem text line by line",
				Action: stemCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input file (default: stdin)"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
				},
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP stemming service",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (overrides config)"},
					&cli.BoolFlag{Name: "watch", Usage: "rebuild the stemmer when a word list changes"},
				},
			},
			{
				Name:      "export",
				Usage:     "Stem files concurrently and store the results in SQLite",
				ArgsUsage: "FILE...",
				Action:    exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite database path (overrides config)"},
					&cli.IntFlag{Name: "workers", Usage: "concurrent files (overrides config)"},
				},
			},
			{
				Name:   "options",
				Usage:  "Print the effective stemmer options",
				Action: optionsCommand,
			},
		},
	}
}

func setupLogging(c *cli.Context) error {
	path := c.String("log-file")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}

// loadConfig reads the config file and applies -S/-N/-W/-C overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", c.String("config"), err)
	}

	if c.IsSet("stemmer") {
		cfg.Stemmer.Algorithm = c.String("stemmer")
	}
	if c.IsSet("named-entities") {
		cfg.Stemmer.NamedEntities = c.String("named-entities")
	}
	if c.IsSet("stopwords") {
		cfg.Stemmer.Stopwords = c.String("stopwords")
	}
	if c.IsSet("cache") {
		cfg.Stemmer.Cache = c.Int("cache")
	}
	return cfg, nil
}

func newStemmer(cfg *config.Config) (*stemmer.Stemmer, error) {
	s := stemmer.New()
	if err := s.SetOptions(cfg.StemmerOptions()); err != nil {
		return nil, err
	}
	return s, nil
}

func stemCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := newStemmer(cfg)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	// Every word of a line is stemmed, one-letter words included.
	return stemLines(textprocessor.NewTextProcessorWithLimits(s, 1, 50), in, out)
}

func stemLines(tp *textprocessor.TextProcessor, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, strings.Join(tp.Process(scanner.Text()), " ")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return w.Flush()
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := newStemmer(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if c.IsSet("addr") {
		addr = c.String("addr")
	}

	var watcher *watch.Watcher
	if cfg.Watch.Enabled || c.Bool("watch") {
		watcher, err = watch.New(s, cfg.Stemmer.NamedEntities, cfg.Stemmer.Stopwords)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.New(s, addr).Run(ctx)
	})
	if watcher != nil {
		log.Printf("Watching word lists for changes")
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	return g.Wait()
}

func exportCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("export needs at least one input file", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := newStemmer(cfg)
	if err != nil {
		return err
	}

	dbPath := cfg.Store.Path
	if c.IsSet("db") {
		dbPath = c.String("db")
	}
	workers := cfg.Batch.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	db, err := storage.NewStemDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SetMetadata("options", strings.Join(s.Options(), " ")); err != nil {
		return fmt.Errorf("failed to record options: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.New(textprocessor.NewTextProcessor(s), db, &batch.Config{Workers: workers})
	summary, err := runner.Run(ctx, c.Args().Slice())
	if err != nil {
		return err
	}

	if err := db.SetMetadata("last_export_files", strconv.Itoa(summary.Files)); err != nil {
		return err
	}
	log.Printf("Database saved to: %s", dbPath)
	return nil
}

func optionsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := newStemmer(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, strings.Join(s.Options(), " "))
	return nil
}
