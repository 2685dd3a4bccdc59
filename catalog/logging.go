// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package catalog. Merge decisions are logged
// at debug level; replace or silence it from the host application.
var Logger zerolog.Logger = log.With().Str("sys", "catalog").Logger()
