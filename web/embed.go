// Package web embeds the browser client served at the site root.
package web

import "embed"

//go:embed static
var FS embed.FS
