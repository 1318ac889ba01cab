package config

import (
	"fmt"

	"github.com/cognicore/lexaug/pkg/lexaug/lexicon"
	"github.com/cognicore/lexaug/pkg/lexaug/stoplist"
)

// Loader loads the data files a run refers to.
type Loader struct {
	StoplistPath string
	LexiconPath  string
}

// Components holds the loaded data.
type Components struct {
	Stoplist *stoplist.Manager
	Lexicon  *lexicon.Lexicon // nil unless LexiconPath is set
}

// Load reads all configured files. An unset stop list path yields an empty list.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.StoplistPath != "" {
		stops, err := stoplist.LoadFromYAML(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stops
	} else {
		comp.Stoplist = stoplist.NewManager(nil)
	}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	}

	return comp, nil
}
