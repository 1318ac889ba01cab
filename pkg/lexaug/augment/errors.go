package augment

import (
	"errors"
	"fmt"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// SelectionError reports a record for which no replacement could be chosen.
type SelectionError struct {
	Index    int // position in the input
	Category string
	Morph    string
	Lemma    string

	// Kind is ErrNoCandidates or ErrConfigurationMismatch.
	Kind error
	// Err is the failed lookup.
	Err error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("record %d (category %q, morph %q, lemma %q): %v: %v",
		e.Index, e.Category, e.Morph, e.Lemma, e.Kind, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Kind
}

func isKeyNotFound(err error) bool {
	return errors.Is(err, internalerr.ErrKeyNotFound)
}
