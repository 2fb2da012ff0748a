// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/danielhkuo/keycap-swiss/middleware"
)

type ImageHandler struct {
	root fs.FS
}

func NewImageHandler(imagesDir string) *ImageHandler {
	return &ImageHandler{root: os.DirFS(imagesDir)}
}

// Serve handles GET /images/{path...}
// Only regular files are served; directories are not listed.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	if !fs.ValidPath(name) {
		middleware.ErrorPage(w, http.StatusNotFound, "")
		return
	}

	info, err := fs.Stat(h.root, name)
	if err != nil || !info.Mode().IsRegular() {
		middleware.ErrorPage(w, http.StatusNotFound, "")
		return
	}

	http.ServeFileFS(w, r, h.root, name)
}
