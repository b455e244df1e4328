package textprocessor

import (
	"github.com/deidaraiorek/ptstem/internal/stemmer"
	"github.com/deidaraiorek/ptstem/internal/tokenizer"
)

type TextProcessor struct {
	tokenizer *tokenizer.Tokenizer
	stemmer   *stemmer.Stemmer
}

func NewTextProcessor(s *stemmer.Stemmer) *TextProcessor {
	return &TextProcessor{
		tokenizer: tokenizer.NewTokenizer(),
		stemmer:   s,
	}
}

// NewTextProcessorWithLimits tokenizes with the given rune-length limits.
func NewTextProcessorWithLimits(s *stemmer.Stemmer, minLength, maxLength int) *TextProcessor {
	return &TextProcessor{
		tokenizer: tokenizer.NewTokenizerWithLimits(minLength, maxLength),
		stemmer:   s,
	}
}

func (tp *TextProcessor) Stemmer() *stemmer.Stemmer {
	return tp.stemmer
}

// Process returns the stem of every token. Tokens the stemmer fails on
// are logged by the stemmer and left out.
func (tp *TextProcessor) Process(text string) []string {
	tokens := tp.tokenizer.Tokenize(text)

	stemmed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stem, ok := tp.stemmer.TryStem(token); ok {
			stemmed = append(stemmed, stem)
		}
	}
	return stemmed
}

func (tp *TextProcessor) ProcessToFrequency(text string) map[string]int {
	tokens := tp.Process(text)

	freq := make(map[string]int)
	for _, token := range tokens {
		freq[token]++
	}

	return freq
}

// StemPairs maps every distinct token to its stem.
func (tp *TextProcessor) StemPairs(text string) map[string]string {
	pairs := make(map[string]string)
	for _, token := range tp.tokenizer.Tokenize(text) {
		if _, seen := pairs[token]; seen {
			continue
		}
		if stem, ok := tp.stemmer.TryStem(token); ok {
			pairs[token] = stem
		}
	}
	return pairs
}

type DocumentFields struct {
	Title   string
	Content string
}

type ProcessedDocument struct {
	TermFrequencies map[string]int
	StemPairs       map[string]string
	TotalTerms      int
	UniqueTerms     int
}

func (tp *TextProcessor) ProcessDocument(doc DocumentFields) ProcessedDocument {
	allText := doc.Title + " " + doc.Content

	pairs := tp.StemPairs(allText)
	termFreq := make(map[string]int)
	totalTerms := 0
	for _, token := range tp.tokenizer.Tokenize(allText) {
		stem, ok := pairs[token]
		if !ok {
			continue
		}
		termFreq[stem]++
		totalTerms++
	}

	return ProcessedDocument{
		TermFrequencies: termFreq,
		StemPairs:       pairs,
		TotalTerms:      totalTerms,
		UniqueTerms:     len(termFreq),
	}
}
