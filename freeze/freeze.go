// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package freeze

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// Route is one GET route written to a file in the static copy.
type Route struct {
	Path string
	File string
}

// Routes are the read-only pages of the site. /tournament takes votes and
// is left out.
var Routes = []Route{
	{Path: "/", File: "index.html"},
	{Path: "/list", File: "list/index.html"},
	{Path: "/results", File: "results/index.html"},
	{Path: "/results/chart.png", File: "results/chart.png"},
	{Path: "/results.xlsx", File: "results.xlsx"},
	{Path: "/results.json", File: "results.json"},
}

const imagesPrefix = "/images/"

// copyConcurrency bounds open files while copying images
const copyConcurrency = 8

// Freezer renders routes through an http.Handler and writes them under a
// directory.
type Freezer struct {
	handler   http.Handler
	imagesDir string
	routes    map[string]string
}

func New(handler http.Handler, imagesDir string) *Freezer {
	routes := make(map[string]string, len(Routes))
	for _, r := range Routes {
		routes[r.Path] = r.File
	}
	return &Freezer{handler: handler, imagesDir: imagesDir, routes: routes}
}

// Freeze writes every route and the given images (paths relative to the
// images root) to outDir. It returns the written files relative to outDir.
func (f *Freezer) Freeze(ctx context.Context, outDir string, images []string) ([]string, error) {
	var written []string

	for _, route := range Routes {
		body, err := f.render(ctx, route)
		if err != nil {
			return nil, err
		}
		if err := writeFile(outDir, route.File, bytes.NewReader(body)); err != nil {
			return nil, err
		}
		written = append(written, route.File)
	}

	copied, err := f.copyImages(ctx, outDir, images)
	if err != nil {
		return nil, err
	}
	written = append(written, copied...)

	slog.Info("site frozen", "dir", outDir, "files", len(written))
	return written, nil
}

func (f *Freezer) render(ctx context.Context, route Route) ([]byte, error) {
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, route.Path, nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("GET %s returned %d", route.Path, rec.Code)
	}

	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		return rec.Body.Bytes(), nil
	}
	return f.relativize(rec.Body, route.File)
}

// relativize rewrites root-relative links so the page works from any
// directory. Links to routes that are not frozen, and forms, are removed.
func (f *Freezer) relativize(r io.Reader, file string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	up := strings.Repeat("../", strings.Count(file, "/"))

	doc.Find("form").Remove()
	doc.Find("a[href], img[src]").Each(func(_ int, s *goquery.Selection) {
		attr := "href"
		if goquery.NodeName(s) == "img" {
			attr = "src"
		}
		link, _ := s.Attr(attr)
		if !strings.HasPrefix(link, "/") {
			return
		}

		target, ok := f.target(link)
		if !ok {
			if parent := s.Parent(); goquery.NodeName(parent) == "li" {
				parent.Remove()
			} else {
				s.Remove()
			}
			return
		}
		s.SetAttr(attr, up+target)
	})

	html, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", file, err)
	}
	return []byte(html), nil
}

func (f *Freezer) target(link string) (string, bool) {
	if strings.HasPrefix(link, imagesPrefix) {
		return strings.TrimPrefix(link, "/"), true
	}
	file, ok := f.routes[link]
	return file, ok
}

func (f *Freezer) copyImages(ctx context.Context, outDir string, images []string) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(copyConcurrency)

	files := make([]string, len(images))
	for i, rel := range images {
		files[i] = path.Join("images", rel)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.Open(filepath.Join(f.imagesDir, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer src.Close()
			return writeFile(outDir, files[i], src)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func writeFile(outDir, rel string, r io.Reader) error {
	dst := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", rel, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return out.Close()
}
