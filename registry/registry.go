// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/keycap-swiss/models"
)

// DefaultSources are the directories scanned under the images root.
var DefaultSources = []string{"dsa-keycaps", "gmk-keycaps"}

// ImageDirs are the per-set folders that hold pictures, in scan order.
var ImageDirs = []string{"kits_pics", "rendering_pics"}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ScanDir scans baseDir on the local filesystem.
func ScanDir(baseDir string, sources []string) ([]*models.Player, error) {
	return Scan(os.DirFS(baseDir), sources)
}

// Scan registers one player per set directory found under each source.
// Missing directories yield no players. Any other filesystem error is
// returned.
func Scan(fsys fs.FS, sources []string) ([]*models.Player, error) {
	type set struct {
		name   string
		images []string
	}
	var sets []set

	for _, source := range sources {
		entries, err := readDirIfExists(fsys, source)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			setDir := path.Join(source, entry.Name())

			images := []string{}
			for _, sub := range ImageDirs {
				found, err := imagesIn(fsys, path.Join(setDir, sub))
				if err != nil {
					return nil, err
				}
				images = append(images, found...)
			}
			sort.Strings(images)

			sets = append(sets, set{
				name:   DisplayName(source, entry.Name()),
				images: images,
			})
		}
	}

	players := make([]*models.Player, 0, len(sets))
	for i, s := range sets {
		p, err := models.NewPlayer(i+1, s.name, s.images)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// DisplayName builds "DSA Alchemy" from source "dsa-keycaps" and set "alchemy".
func DisplayName(source, setDir string) string {
	prefix, _, _ := strings.Cut(source, "-")
	return strings.ToUpper(prefix) + " " + capitalize(setDir)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func imagesIn(fsys fs.FS, dir string) ([]string, error) {
	entries, err := readDirIfExists(fsys, dir)
	if err != nil {
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if imageExts[strings.ToLower(path.Ext(entry.Name()))] {
			images = append(images, path.Join(dir, entry.Name()))
		}
	}
	return images, nil
}

// readDirIfExists treats a missing path, or one that is not a directory, as empty.
func readDirIfExists(fsys fs.FS, dir string) ([]fs.DirEntry, error) {
	info, err := fs.Stat(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	return entries, nil
}
