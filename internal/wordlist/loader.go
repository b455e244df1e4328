package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
)

type Set map[string]struct{}

func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Union returns a new set; neither operand is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range other {
		out[w] = struct{}{}
	}
	return out
}

func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Load reads one entry per line from path. An empty path, a missing
// path, or anything that is not a regular file means no list was
// configured and yields an empty set.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, stemerr.NewListLoadError(path, err)
	}
	if !info.Mode().IsRegular() {
		return Set{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, stemerr.NewListLoadError(path, err)
	}
	defer f.Close()

	words := Set{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, stemerr.NewListLoadError(path, fmt.Errorf("line %d is not valid UTF-8", lineNo))
		}
		words[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, stemerr.NewListLoadError(path, err)
	}

	return words, nil
}
