// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

/*
Package catalog collects gettext catalog entries for one locale and keeps
them indexed by identity.

A [Catalog] stores entries in insertion order alongside a map keyed by
[po.Key], so lookups that package po's linear FindSame would make O(n) are a
single map access here. Adding an entry whose identity is already present
merges its references and comments into the existing entry instead of
appending a duplicate.

[Merge] reconciles a freshly extracted catalog against an existing one. All
identity decisions go through package po's key derivation; no raw field
comparison happens here. Entries that disappeared from the extraction are
purged only when they are autogenerated and not protected by the configured
reference pattern.
*/
package catalog
