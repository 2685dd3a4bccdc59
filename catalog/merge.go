// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"regexp"

	"github.com/olafura/gettext/po"
)

// Options controls how [Merge] treats entries that disappeared from the
// extraction.
type Options struct {
	// Protected exempts entries from purging when one of their source
	// references matches it. Nil means no protection is configured.
	Protected *regexp.Regexp

	// MarkObsoleteFuzzy adds the "fuzzy" flag to surviving entries that are
	// no longer referenced by the extraction, flagging them for human
	// review.
	MarkObsoleteFuzzy bool
}

// Merge reconciles a freshly extracted catalog against an existing one and
// returns the result, in extraction order followed by surviving obsolete
// entries. Merge takes ownership of the entries in both inputs; the input
// catalogs should not be used afterwards.
//
// For each extracted entry: if the existing catalog holds the same logical
// message, the existing entry is kept with its references replaced by the
// freshly extracted ones; otherwise the extracted entry is adopted and
// marked autogenerated. Existing entries absent from the extraction are
// purged when they are autogenerated and unprotected, and kept otherwise.
//
// No fuzzy matching between different messages happens here; two entries
// either share identity per [po.KeyOf] or they are unrelated.
func Merge(existing, extracted *Catalog, opts Options) (*Catalog, error) {
	out := NewForTag(existing.Language)

	for _, m := range extracted.Messages() {
		prev, err := existing.FindSame(m)
		if err != nil {
			return nil, err
		}

		if prev != nil {
			replaceReferences(prev, m)

			if err := out.Add(prev); err != nil {
				return nil, err
			}

			continue
		}

		markAutogenerated(m)

		if err := out.Add(m); err != nil {
			return nil, err
		}

		logDecision("adopted", m)
	}

	for _, m := range existing.Messages() {
		same, err := extracted.FindSame(m)
		if err != nil {
			return nil, err
		}

		if same != nil {
			continue
		}

		if po.IsAutogenerated(m) && !po.IsProtected(m, opts.Protected) {
			logDecision("purged", m)

			continue
		}

		if opts.MarkObsoleteFuzzy {
			po.MarkFuzzy(m)
		}

		if err := out.Add(m); err != nil {
			return nil, err
		}

		logDecision("kept obsolete", m)
	}

	return out, nil
}

func replaceReferences(dst, src po.Message) {
	refs := normalizeReferences(referencesCopy(src))

	switch d := dst.(type) {
	case *po.Singular:
		d.References = refs
	case *po.Plural:
		d.References = refs
	}
}

func referencesCopy(m po.Message) []po.Reference {
	var refs []po.Reference

	switch msg := m.(type) {
	case *po.Singular:
		refs = msg.References
	case *po.Plural:
		refs = msg.References
	}

	out := make([]po.Reference, len(refs))
	copy(out, refs)

	return out
}

func markAutogenerated(m po.Message) {
	switch msg := m.(type) {
	case *po.Singular:
		msg.Flags = msg.Flags.With(po.FlagAutogenerated)
	case *po.Plural:
		msg.Flags = msg.Flags.With(po.FlagAutogenerated)
	}
}

func logDecision(action string, m po.Message) {
	k, err := po.KeyOf(m)
	if err != nil {
		return
	}

	Logger.Debug().
		Str("action", action).
		Str("key", k.String()).
		Msg("Merge decision")
}
