// Package web embeds the HTML templates and static assets served by the
// mood playlists UI.
package web

import "embed"

// TemplatesFS holds layouts, pages and partials under templates/.
//
//go:embed all:templates
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and browser script under static/.
//
//go:embed all:static
var StaticFS embed.FS
