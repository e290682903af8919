// Package site serves the embedded market-board page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded market-board routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded board at root /.
	files := http.FileServer(FS())
	mux.Handle("/", files)
}
