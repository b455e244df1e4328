package tokenizer_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/deidaraiorek/ptstem/internal/tokenizer"
)

func TestTokenize(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "basic text",
			input:    "Os meninos correram pela praia",
			expected: []string{"os", "meninos", "correram", "pela", "praia"},
		},
		{
			name:     "accents are part of words",
			input:    "A ação do coração não pára",
			expected: []string{"ação", "do", "coração", "não", "pára"},
		},
		{
			name:     "with punctuation",
			input:    "Olá, mundo! Tudo bem?",
			expected: []string{"olá", "mundo", "tudo", "bem"},
		},
		{
			name:     "hyphenated words",
			input:    "guarda-chuva e bem-vindo",
			expected: []string{"guarda", "chuva", "bem", "vindo"},
		},
		{
			name:     "mixed alphanumeric",
			input:    "COVID-19 em 2020 foi difícil",
			expected: []string{"covid", "em", "foi", "difícil"},
		},
		{
			name:     "HTML entities",
			input:    "pão&amp;manteiga&nbsp;quente",
			expected: []string{"pão", "manteiga", "quente"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeLengthLimits(t *testing.T) {
	tok := tokenizer.NewTokenizerWithLimits(3, 6)

	result := tok.Tokenize("eu vou " + strings.Repeat("a", 7) + " casa")
	expected := []string{"vou", "casa"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize() = %v, want %v", result, expected)
	}
}

func TestTokenizeToFrequency(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	result := tok.TokenizeToFrequency("casa casa Casa gato")
	expected := map[string]int{"casa": 3, "gato": 1}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("TokenizeToFrequency() = %v, want %v", result, expected)
	}
}

func TestIsValidToken(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	tests := []struct {
		word  string
		valid bool
	}{
		{"casa", true},
		{"mp3", true},
		{"2020", false},
		{"a1234", false},
		{"ção", true},
	}

	for _, tt := range tests {
		if got := tok.IsValidToken(tt.word); got != tt.valid {
			t.Errorf("IsValidToken(%q) = %v, want %v", tt.word, got, tt.valid)
		}
	}
}

func TestTokenizeDecomposedInput(t *testing.T) {
	tok := tokenizer.NewTokenizer()

	decomposed := "cafe\u0301 portugue\u0302s"
	precomposed := "café português"

	got := tok.Tokenize(decomposed)
	want := []string{"café", "português"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(%q) = %q, want %q", decomposed, got, want)
	}
	if !reflect.DeepEqual(got, tok.Tokenize(precomposed)) {
		t.Errorf("decomposed and precomposed input tokenize differently")
	}
}
