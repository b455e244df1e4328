package algorithm

import (
	"fmt"
	"strings"

	stemerr "github.com/deidaraiorek/ptstem/internal/errors"
)

// Algorithm reduces a lower-cased Portuguese word to its stem.
// Implementations must be safe for concurrent use.
type Algorithm interface {
	Stem(word string) string
}

type Kind int

const (
	Orengo Kind = iota
	Porter
	Savoy
)

var kindNames = map[Kind]string{
	Orengo: "ORENGO",
	Porter: "PORTER",
	Savoy:  "SAVOY",
}

func Kinds() []Kind {
	return []Kind{Orengo, Porter, Savoy}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func ParseKind(s string) (Kind, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == token {
			return k, nil
		}
	}
	return 0, stemerr.NewConfigError("parse algorithm",
		fmt.Errorf("unknown algorithm %q (want ORENGO, PORTER or SAVOY)", s))
}

func New(kind Kind) (Algorithm, error) {
	switch kind {
	case Orengo:
		return NewOrengo(), nil
	case Porter:
		return NewPorter(), nil
	case Savoy:
		return NewSavoy(), nil
	default:
		return nil, stemerr.NewConfigError("new algorithm", fmt.Errorf("unhandled algorithm %v", kind))
	}
}
