package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Marks are part of the class so that sequences with no precomposed
// form stay inside one token after NFC.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)

type Tokenizer struct {
	minLength int
	maxLength int
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		minLength: 2,
		maxLength: 50,
	}
}

func NewTokenizerWithLimits(minLength, maxLength int) *Tokenizer {
	return &Tokenizer{minLength: minLength, maxLength: maxLength}
}

func (t *Tokenizer) Tokenize(text string) []string {
	words := wordPattern.FindAllString(t.normalize(text), -1)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n < t.minLength || n > t.maxLength {
			continue
		}

		if !t.IsValidToken(word) {
			continue
		}

		tokens = append(tokens, word)
	}
	return tokens
}

func (t *Tokenizer) TokenizeToFrequency(text string) map[string]int {
	tokens := t.Tokenize(text)
	result := make(map[string]int)

	for _, token := range tokens {
		result[token]++
	}
	return result
}

func (t *Tokenizer) normalize(text string) string {
	text = strings.ToLower(norm.NFC.String(text))

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", " e ")
	text = strings.ReplaceAll(text, "_", " ")

	return text
}

func (t *Tokenizer) IsValidToken(word string) bool {
	alphaCount := 0
	digitCount := 0

	for _, r := range word {
		if unicode.IsLetter(r) {
			alphaCount++
		} else if unicode.IsDigit(r) {
			digitCount++
		}
	}
	if alphaCount == 0 {
		return false
	}
	if digitCount > alphaCount {
		return false
	}
	return true
}
