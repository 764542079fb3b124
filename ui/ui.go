// Package ui embeds the templates and static assets into the binary.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
