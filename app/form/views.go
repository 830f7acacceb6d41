package form

import (
	"embed"
	"io/fs"
)

//go:embed views/*.html
var embeddedViews embed.FS

// Views exposes the embedded page templates for the view engine.
func Views() fs.FS {
	sub, err := fs.Sub(embeddedViews, "views")
	if err != nil {
		return embeddedViews
	}
	return sub
}
