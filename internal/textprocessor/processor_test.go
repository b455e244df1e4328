package textprocessor_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deidaraiorek/ptstem/internal/stemmer"
	"github.com/deidaraiorek/ptstem/internal/textprocessor"
)

func TestProcess(t *testing.T) {
	processor := textprocessor.NewTextProcessor(stemmer.New())

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plural and feminine reduction",
			input:    "Meninas e meninos",
			expected: []string{"menin", "menin"},
		},
		{
			name:     "verbs and adverbs",
			input:    "correr felizmente",
			expected: []string{"corr", "feliz"},
		},
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processor.Process(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Process(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestProcessSkipsWordsThatFailToStem(t *testing.T) {
	dir := t.TempDir()
	stopwords := filepath.Join(dir, "stop.txt")
	if err := os.WriteFile(stopwords, []byte("\xff\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := stemmer.New()
	s.SetStopwords(stopwords)
	processor := textprocessor.NewTextProcessor(s)

	if result := processor.Process("casas bonitas"); len(result) != 0 {
		t.Errorf("Expected no stems when the stemmer cannot be built, got %v", result)
	}
}

func TestProcessToFrequency(t *testing.T) {
	processor := textprocessor.NewTextProcessor(stemmer.New())

	result := processor.ProcessToFrequency("casas casa Casas correr")
	expected := map[string]int{"cas": 3, "corr": 1}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("ProcessToFrequency() = %v, want %v", result, expected)
	}
}

func TestProcessDocumentKeepsExcludedWords(t *testing.T) {
	dir := t.TempDir()
	entities := filepath.Join(dir, "entidades.txt")
	if err := os.WriteFile(entities, []byte("Lisboa\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := stemmer.New()
	s.SetNamedEntities(entities)
	processor := textprocessor.NewTextProcessor(s)

	result := processor.ProcessDocument(textprocessor.DocumentFields{
		Title:   "Casas em Lisboa",
		Content: "As casas de Lisboa",
	})

	if result.TermFrequencies["lisboa"] != 2 {
		t.Errorf("Expected 'lisboa' twice, got %d", result.TermFrequencies["lisboa"])
	}
	if result.TermFrequencies["cas"] != 2 {
		t.Errorf("Expected 'cas' twice, got %d", result.TermFrequencies["cas"])
	}
	if result.StemPairs["casas"] != "cas" {
		t.Errorf("Expected pair casas -> cas, got %q", result.StemPairs["casas"])
	}
	if result.TotalTerms != 7 {
		t.Errorf("Expected 7 terms, got %d", result.TotalTerms)
	}
	if result.UniqueTerms != len(result.TermFrequencies) {
		t.Errorf("UniqueTerms = %d, want %d", result.UniqueTerms, len(result.TermFrequencies))
	}
}

func BenchmarkProcess(b *testing.B) {
	processor := textprocessor.NewTextProcessor(stemmer.New())
	text := `O processamento de linguagem natural estuda as interações entre
	computadores e línguas humanas, em particular como programar computadores
	para processar e analisar grandes quantidades de dados linguísticos.`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		processor.Process(text)
	}
}

func TestProcessDecomposedMatchesPrecomposed(t *testing.T) {
	processor := textprocessor.NewTextProcessor(stemmer.New())

	precomposed := processor.Process("café português")
	decomposed := processor.Process("cafe\u0301 portugue\u0302s")

	if !reflect.DeepEqual(decomposed, precomposed) {
		t.Errorf("Process(decomposed) = %q, want %q", decomposed, precomposed)
	}
}

func TestProcessWithLimitsKeepsShortWords(t *testing.T) {
	processor := textprocessor.NewTextProcessorWithLimits(stemmer.New(), 1, 50)

	result := processor.Process("Meninas e meninos")
	expected := []string{"menin", "e", "menin"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Process() = %v, want %v", result, expected)
	}
}
