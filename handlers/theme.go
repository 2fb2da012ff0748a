// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sync"

	"github.com/danielhkuo/keycap-swiss/views"
)

// Theme is the page background shared by every page.
type Theme struct {
	mu         sync.RWMutex
	background string
}

func NewTheme(background string) *Theme {
	return &Theme{background: background}
}

func (t *Theme) Background() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.background
}

func (t *Theme) SetBackground(color string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.background = color
}

func (t *Theme) page() views.Page {
	return views.Page{Background: t.Background()}
}
