// Package web embeds the static assets (stylesheet, client scripts)
// served at /static/.
package web

import "embed"

//go:embed all:static
var StaticFS embed.FS
