// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package po

import "sort"

// Flag tokens with on-disk meaning. These literals appear in "#," flag lines
// of catalog files and must be preserved exactly.
const (
	// FlagFuzzy marks a translation as needing human review.
	FlagFuzzy = "fuzzy"

	// FlagAutogenerated marks an entry as produced entirely by extraction
	// tooling, not hand-edited.
	FlagAutogenerated = "elixir-format"
)

// Reference is one "#:" source reference: the file a message was extracted
// from and the line it appeared on.
type Reference struct {
	Path string
	Line int
}

// Flags is a set of flag tokens. Membership is binary; insertion order and
// multiplicity are irrelevant.
type Flags map[string]struct{}

// NewFlags builds a flag set from tokens, collapsing duplicates.
func NewFlags(tokens ...string) Flags {
	f := make(Flags, len(tokens))
	for _, t := range tokens {
		f[t] = struct{}{}
	}

	return f
}

// Has reports whether token is a member of the set. Safe on a nil set.
func (f Flags) Has(token string) bool {
	_, ok := f[token]

	return ok
}

// With returns a set containing token. The receiver is updated in place when
// non-nil; a nil receiver yields a fresh single-element set.
func (f Flags) With(token string) Flags {
	if f == nil {
		return Flags{token: {}}
	}

	f[token] = struct{}{}

	return f
}

// Sorted returns the tokens in lexicographic order, for deterministic output.
func (f Flags) Sorted() []string {
	out := make([]string, 0, len(f))
	for t := range f {
		out = append(out, t)
	}

	sort.Strings(out)

	return out
}

// Message is a catalog entry: either a *Singular or a *Plural. The interface
// is sealed; operations dispatch on the concrete variant.
type Message interface {
	isMessage()
}

// Singular is a singular-only catalog entry.
type Singular struct {
	Msgctxt    Text
	Msgid      Text
	Flags      Flags
	References []Reference
	Comments   []string
}

// Plural is a catalog entry carrying both singular and plural source text.
// It is a distinct message from any Singular sharing its msgid: the
// translator must supply structurally different translations for the two.
type Plural struct {
	Msgctxt     Text
	Msgid       Text
	MsgidPlural Text
	Flags       Flags
	References  []Reference
	Comments    []string
}

func (*Singular) isMessage() {}
func (*Plural) isMessage()   {}

// MarkFuzzy adds the "fuzzy" flag to m and returns it. Flags are a set, so
// marking twice is the same as marking once. All other attributes are left
// untouched. This is the only operation in the package that mutates an
// entry; callers sharing an entry across goroutines must synchronize.
func MarkFuzzy(m Message) Message {
	switch msg := m.(type) {
	case *Singular:
		msg.Flags = msg.Flags.With(FlagFuzzy)
	case *Plural:
		msg.Flags = msg.Flags.With(FlagFuzzy)
	default:
		panic("po: unknown message variant")
	}

	return m
}

func flagsOf(m Message) Flags {
	switch msg := m.(type) {
	case *Singular:
		return msg.Flags
	case *Plural:
		return msg.Flags
	default:
		panic("po: unknown message variant")
	}
}

func referencesOf(m Message) []Reference {
	switch msg := m.(type) {
	case *Singular:
		return msg.References
	case *Plural:
		return msg.References
	default:
		panic("po: unknown message variant")
	}
}
