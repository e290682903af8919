package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns an http.FileSystem for the embedded board site.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Should never happen when the embed directive matches the
		// tree; fall back to the raw FS.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
