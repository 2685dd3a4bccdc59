// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package po

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedText is returned when a [Text] fragment cannot be represented
// as a string.
var ErrMalformedText = errors.New("malformed text")

// Text is message text as an ordered list of fragments. Parsers may split
// escaped or line-continued source text into several fragments; plain text is
// simply Text{"..."}. A nil or empty Text flattens to the empty string, which
// is how an absent msgctxt is represented.
type Text []any

// Flatten coalesces the fragments into a single string. string and []byte
// fragments are concatenated in order; any other fragment type fails with an
// error wrapping [ErrMalformedText] that reports the offending index.
func (t Text) Flatten() (string, error) {
	var b strings.Builder

	for i, frag := range t {
		switch f := frag.(type) {
		case string:
			b.WriteString(f)
		case []byte:
			b.Write(f)
		default:
			return "", fmt.Errorf("%w: fragment %d is %T, not text", ErrMalformedText, i, frag)
		}
	}

	return b.String(), nil
}
