// Package errs narrows cockroachdb/errors to the handful of operations the
// rest of the codebase needs: constructing sentinels, wrapping causes with
// context, and attaching sentinels to errors crossing layer boundaries.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an equivalence mark. The mark is only visible to
// cockroach's Is, so use it for internal sentinels that no stdlib errors.Is
// check ever needs to see.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Tag joins markErr into the unwrap chain, so stdlib errors.Is matches it.
// Use it for sentinels that handlers translate into specific HTTP statuses.
func Tag(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(markErr, err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
