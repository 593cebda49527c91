// Package web holds the page skeleton and the static assets served with it.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// Page returns the page skeleton the renderer fills in.
func Page() ([]byte, error) {
	return files.ReadFile("index.html")
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
