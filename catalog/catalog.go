// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/olafura/gettext/po"
)

// Catalog is an ordered collection of catalog entries for one locale,
// indexed by entry identity. The zero value is not usable; construct with
// [New] or [NewForTag].
type Catalog struct {
	// Language is the canonical BCP 47 tag of the locale this catalog
	// belongs to.
	Language language.Tag

	entries []entry
	index   map[po.Key]int
}

type entry struct {
	key po.Key
	msg po.Message
}

// New builds an empty catalog for the named locale. The locale may use
// hyphens or underscores, for example "pt-BR" or "pt_BR", and is normalised
// to a canonical BCP 47 tag.
func New(locale string) (*Catalog, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return NewForTag(tag), nil
}

// NewForTag builds an empty catalog for an already-parsed language tag.
func NewForTag(tag language.Tag) *Catalog {
	return &Catalog{
		Language: tag,
		index:    make(map[po.Key]int),
	}
}

// Add appends m to the catalog. If an entry with the same identity is
// already present, m's references, comments and flags are folded into it
// instead, keeping one entry per logical message. Fails only on malformed
// message text.
func (c *Catalog) Add(m po.Message) error {
	k, err := po.KeyOf(m)
	if err != nil {
		return err
	}

	if i, ok := c.index[k]; ok {
		foldInto(c.entries[i].msg, m)

		return nil
	}

	c.index[k] = len(c.entries)
	c.entries = append(c.entries, entry{key: k, msg: m})

	return nil
}

// Find returns the entry with the given identity key, or nil.
func (c *Catalog) Find(k po.Key) po.Message {
	if i, ok := c.index[k]; ok {
		return c.entries[i].msg
	}

	return nil
}

// FindSame returns the entry sharing identity with m, or nil. Unlike
// [po.FindSame] this is an indexed lookup, not a linear scan.
func (c *Catalog) FindSame(m po.Message) (po.Message, error) {
	k, err := po.KeyOf(m)
	if err != nil {
		return nil, err
	}

	return c.Find(k), nil
}

// Len returns the number of distinct entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Messages returns the entries in their current order. The slice is a copy
// and safe to retain; the entries themselves are shared.
func (c *Catalog) Messages() []po.Message {
	out := make([]po.Message, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.msg
	}

	return out
}

// Sort orders entries by identity key and each entry's references by path
// and line, dropping duplicate references. Serialization after Sort is
// deterministic regardless of insertion order.
func (c *Catalog) Sort() {
	sort.Slice(c.entries, func(i, j int) bool {
		return c.entries[i].key.Less(c.entries[j].key)
	})

	for i, e := range c.entries {
		c.index[e.key] = i

		sortReferences(e.msg)
	}
}

func sortReferences(m po.Message) {
	switch msg := m.(type) {
	case *po.Singular:
		msg.References = normalizeReferences(msg.References)
	case *po.Plural:
		msg.References = normalizeReferences(msg.References)
	}
}

func normalizeReferences(refs []po.Reference) []po.Reference {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Path != refs[j].Path {
			return refs[i].Path < refs[j].Path
		}

		return refs[i].Line < refs[j].Line
	})

	// After sorting, duplicates are adjacent.
	out := refs[:0]

	for i, r := range refs {
		if i == 0 || r != refs[i-1] {
			out = append(out, r)
		}
	}

	return out
}

// foldInto merges the non-identity attributes of src into dst. Both sides
// share an identity key, so they are the same concrete variant.
func foldInto(dst, src po.Message) {
	switch d := dst.(type) {
	case *po.Singular:
		s := src.(*po.Singular)
		d.References = append(d.References, s.References...)
		d.Comments = append(d.Comments, s.Comments...)

		for _, f := range s.Flags.Sorted() {
			d.Flags = d.Flags.With(f)
		}
	case *po.Plural:
		s := src.(*po.Plural)
		d.References = append(d.References, s.References...)
		d.Comments = append(d.Comments, s.Comments...)

		for _, f := range s.Flags.Sorted() {
			d.Flags = d.Flags.With(f)
		}
	}
}
