// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package po

import "regexp"

// IsAutogenerated reports whether m was produced entirely by extraction
// tooling, that is, whether its flag set contains [FlagAutogenerated].
func IsAutogenerated(m Message) bool {
	return flagsOf(m).Has(FlagAutogenerated)
}

// IsProtected reports whether m is exempt from automatic removal because at
// least one of its source references matches pattern. Line numbers are
// ignored. A nil pattern means no protection is configured; an entry with no
// references has nothing to match and is never protected.
func IsProtected(m Message, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}

	for _, ref := range referencesOf(m) {
		if pattern.MatchString(ref.Path) {
			return true
		}
	}

	return false
}
