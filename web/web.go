// Package web carries the embedded HTML templates so the binary and the
// tests render the same markup regardless of working directory.
package web

import "embed"

// Templates holds the page and résumé template markup.
//
//go:embed templates/*.html
var Templates embed.FS
