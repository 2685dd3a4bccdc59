// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package po

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Key is the comparable identity of a catalog entry: the flattened msgctxt
// plus the variant-dependent id part. Keys are valid map keys and have a
// total order via [Key.Less].
//
// A Singular and a Plural never compare equal, even when their msgid
// coincides: IsPlural is part of the identity.
type Key struct {
	Ctx      string
	ID       string
	PluralID string
	IsPlural bool
}

// Less orders keys lexicographically by context, msgid, variant and
// msgid_plural. Singular sorts before plural for an equal msgid.
func (k Key) Less(o Key) bool {
	if k.Ctx != o.Ctx {
		return k.Ctx < o.Ctx
	}

	if k.ID != o.ID {
		return k.ID < o.ID
	}

	if k.IsPlural != o.IsPlural {
		return !k.IsPlural
	}

	return k.PluralID < o.PluralID
}

// String renders the gettext-style lookup key, joining context and msgid
// with the EOT separator when a context is present. It is intended for log
// output, not as an identity substitute for the Key itself.
func (k Key) String() string {
	if k.Ctx != "" {
		return k.Ctx + gotext.EotSeparator + k.ID
	}

	return k.ID
}

// KeyOf derives the identity key for m. An absent msgctxt flattens to the
// empty string, so entries with no context and entries with an explicitly
// empty context share identity. KeyOf is the single source of truth for
// entry identity; every identity-sensitive decision must go through it.
//
// The only failure mode is a malformed text fragment, reported as an error
// wrapping [ErrMalformedText].
func KeyOf(m Message) (Key, error) {
	switch msg := m.(type) {
	case *Singular:
		ctx, err := msg.Msgctxt.Flatten()
		if err != nil {
			return Key{}, fmt.Errorf("msgctxt: %w", err)
		}

		id, err := msg.Msgid.Flatten()
		if err != nil {
			return Key{}, fmt.Errorf("msgid: %w", err)
		}

		return Key{Ctx: ctx, ID: id}, nil
	case *Plural:
		ctx, err := msg.Msgctxt.Flatten()
		if err != nil {
			return Key{}, fmt.Errorf("msgctxt: %w", err)
		}

		id, err := msg.Msgid.Flatten()
		if err != nil {
			return Key{}, fmt.Errorf("msgid: %w", err)
		}

		plural, err := msg.MsgidPlural.Flatten()
		if err != nil {
			return Key{}, fmt.Errorf("msgid_plural: %w", err)
		}

		return Key{Ctx: ctx, ID: id, PluralID: plural, IsPlural: true}, nil
	default:
		panic("po: unknown message variant")
	}
}

// AreSame reports whether a and b represent the same logical message, that
// is, whether their keys are equal. It is reflexive, symmetric and
// transitive, and fails only by propagating [ErrMalformedText] from key
// derivation.
func AreSame(a, b Message) (bool, error) {
	ka, err := KeyOf(a)
	if err != nil {
		return false, err
	}

	kb, err := KeyOf(b)
	if err != nil {
		return false, err
	}

	return ka == kb, nil
}

// FindSame scans entries in order and returns the first one sharing identity
// with target, or nil if none does. The result depends only on the order and
// content of entries. The scan is linear; callers doing repeated lookups
// should build their own index keyed by [KeyOf].
func FindSame(entries []Message, target Message) (Message, error) {
	want, err := KeyOf(target)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		k, err := KeyOf(e)
		if err != nil {
			return nil, err
		}

		if k == want {
			return e, nil
		}
	}

	return nil, nil
}
