package coachplan

import "embed"

// WebFS holds the embedded static frontend.
//
//go:embed web
var WebFS embed.FS
