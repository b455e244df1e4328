package algorithm

import (
	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/analysis/lang/pt"
)

// SavoyStemmer is Savoy's light Portuguese stemmer as shipped in
// bleve's stemmer_pt_light token filter. The filter holds no state, so
// one instance is shared by all callers.
type SavoyStemmer struct {
	filter *pt.PortugueseLightStemmerFilter
}

func NewSavoy() *SavoyStemmer {
	return &SavoyStemmer{filter: pt.NewPortugueseLightStemmerFilter()}
}

func (s *SavoyStemmer) Stem(word string) string {
	if word == "" {
		return word
	}
	stream := analysis.TokenStream{&analysis.Token{Term: []byte(word)}}
	stream = s.filter.Filter(stream)
	return string(stream[0].Term)
}
