// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

/*
Package po models entries of GNU gettext message catalogs and decides when
two entries are the same logical message.

An entry is either a [Singular] (msgid only) or a [Plural] (msgid plus
msgid_plural); both carry an optional msgctxt, a flag set, source references
and comments. Identity is determined solely by msgctxt, msgid and, for plural
entries, msgid_plural. Flags, references, comments and any translated text
never participate.

[KeyOf] derives the comparable [Key] for an entry and is the single source of
truth for identity: [AreSame] and [FindSame] are defined in terms of it, and
any merge or purge logic built on top of this package must route identity
decisions through these functions rather than comparing fields directly.
Callers that need repeated lookups should index entries in a map keyed by
[Key]; see package catalog.

Message text may arrive from a parser as a list of fragments rather than a
plain string (escaped or line-continued source text). [Text.Flatten] coalesces
the fragments and fails with [ErrMalformedText] if a fragment is not textual;
that error is never swallowed, since substituting a placeholder would corrupt
identity decisions downstream.

The flag vocabulary is part of the on-disk catalog format. The literal
strings "elixir-format" (entries produced entirely by extraction tooling) and
"fuzzy" (translations needing human review) must round-trip exactly for
interoperability with other tools reading the same files.
*/
package po
