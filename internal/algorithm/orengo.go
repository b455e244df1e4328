package algorithm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// rule rewrites a suffix when the remaining stem keeps at least
// minStem runes and the whole word is not listed as an exception.
type rule struct {
	suffix      string
	minStem     int
	replacement string
	exceptions  map[string]struct{}
}

func r(suffix string, minStem int, replacement string, exceptions ...string) rule {
	ex := make(map[string]struct{}, len(exceptions))
	for _, w := range exceptions {
		ex[w] = struct{}{}
	}
	return rule{suffix: suffix, minStem: minStem, replacement: replacement, exceptions: ex}
}

type step []rule

// apply rewrites with the first matching rule and reports whether one fired.
func (s step) apply(word string) (string, bool) {
	for _, rl := range s {
		if !strings.HasSuffix(word, rl.suffix) {
			continue
		}
		stem := word[:len(word)-len(rl.suffix)]
		if utf8.RuneCountInString(stem) < rl.minStem {
			continue
		}
		if _, skip := rl.exceptions[word]; skip {
			continue
		}
		return stem + rl.replacement, true
	}
	return word, false
}

// OrengoStemmer implements RSLP (Orengo & Huyck, 2001): plural,
// feminine, augmentative and adverb reduction, then noun suffixes,
// falling back to verb suffixes and finally vowel removal, with accents
// stripped from the result.
type OrengoStemmer struct{}

func NewOrengo() *OrengoStemmer {
	return &OrengoStemmer{}
}

func (s *OrengoStemmer) Stem(word string) string {
	if utf8.RuneCountInString(word) < 3 {
		return word
	}

	if strings.HasSuffix(word, "s") {
		word, _ = pluralStep.apply(word)
	}
	if strings.HasSuffix(word, "a") {
		word, _ = feminineStep.apply(word)
	}
	word, _ = augmentativeStep.apply(word)
	word, _ = adverbStep.apply(word)

	var changed bool
	if word, changed = nounStep.apply(word); !changed {
		if word, changed = verbStep.apply(word); !changed {
			word, _ = vowelStep.apply(word)
		}
	}

	return removeAccents(word)
}

func removeAccents(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return out
}
