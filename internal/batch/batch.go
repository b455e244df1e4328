package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/deidaraiorek/ptstem/internal/storage"
	"github.com/deidaraiorek/ptstem/internal/textprocessor"
)

type Config struct {
	Workers int
}

type Summary struct {
	Files      int
	Failed     int
	TotalTerms int
}

// Store is the part of storage.StemDB the runner writes to.
type Store interface {
	SaveDocument(doc storage.Document) (int64, error)
}

type Runner struct {
	config    *Config
	processor *textprocessor.TextProcessor
	store     Store
}

func New(processor *textprocessor.TextProcessor, store Store, config *Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = 4
	}

	return &Runner{
		config:    config,
		processor: processor,
		store:     store,
	}
}

// tally accumulates the summary of a single Run.
type tally struct {
	mu      sync.Mutex
	summary Summary
}

func (t *tally) record(terms int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ok {
		t.summary.Files++
		t.summary.TotalTerms += terms
	} else {
		t.summary.Failed++
	}
}

func (t *tally) snapshot() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary
}

// Run stems every file with at most Workers files in flight. Unreadable
// files are logged and counted; a store failure stops the run.
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	log.Printf("Stemming %d files with %d workers", len(paths), r.config.Workers)

	t := &tally{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			return r.processFile(gctx, t, path)
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	summary := t.snapshot()
	log.Printf("Stemming completed. Files: %d (failed: %d), terms: %d", summary.Files, summary.Failed, summary.TotalTerms)
	return summary, err
}

func (r *Runner) processFile(ctx context.Context, t *tally, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Skipping %s: %v", path, err)
		t.record(0, false)
		return nil
	}

	doc := r.processor.ProcessDocument(textprocessor.DocumentFields{
		Content: string(data),
	})

	_, err = r.store.SaveDocument(storage.Document{
		Path:        path,
		Algorithm:   r.processor.Stemmer().Config().Algorithm.String(),
		StemPairs:   doc.StemPairs,
		Frequencies: doc.TermFrequencies,
		TotalTerms:  doc.TotalTerms,
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	t.record(doc.TotalTerms, true)
	return nil
}
