package algorithm

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/portuguese"
)

// PorterStemmer is the Snowball Portuguese stemmer, Porter's own
// algorithm for the language.
type PorterStemmer struct{}

func NewPorter() *PorterStemmer {
	return &PorterStemmer{}
}

func (s *PorterStemmer) Stem(word string) string {
	if word == "" {
		return word
	}
	env := snowballstem.NewEnv(word)
	portuguese.Stem(env)
	return env.Current()
}
