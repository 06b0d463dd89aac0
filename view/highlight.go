/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package view

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"time"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// HighlightDuration is how long a revealed command keeps its highlight.
const HighlightDuration = 2 * time.Second

// HighlightClass is the class name the site toggles on a revealed item.
const HighlightClass = "highlight-command"

////////////////////////////////////////////////////////////////////////////////////////////////////

// Surface is the part of a renderer the reveal step drives.
type Surface interface {
	// ScrollIntoView centres the element with id. It reports false when nothing with that id is rendered.
	ScrollIntoView(id string) bool
	SetHighlight(id string, on bool)
}

// Expiry is a pending highlight removal. The host schedules it After the delay
// and hands it back to Highlighter.Clear.
type Expiry struct {
	ID    string
	After time.Duration
	token uint64
}

// Highlighter tracks transient highlights per element id. It is not safe for
// concurrent use; hosts drive it from their event loop.
type Highlighter struct {
	delay time.Duration
	seq   uint64
	live  map[string]uint64
}

func NewHighlighter(delay time.Duration) *Highlighter {
	if delay <= 0 {
		delay = HighlightDuration
	}
	return &Highlighter{delay: delay, live: make(map[string]uint64)}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Reveal scrolls to id and highlights it. A missing element is skipped silently.
// A second reveal of the same id supersedes the pending expiry of the first.
func (h *Highlighter) Reveal(s Surface, id string) (Expiry, bool) {
	if id == "" || !s.ScrollIntoView(id) {
		return Expiry{}, false
	}

	h.seq++
	h.live[id] = h.seq
	s.SetHighlight(id, true)

	return Expiry{ID: id, After: h.delay, token: h.seq}, true
}

// Clear removes the highlight of exp.ID if exp is still the current one.
// Stale or repeated expiries do nothing.
func (h *Highlighter) Clear(s Surface, exp Expiry) bool {
	if tok, ok := h.live[exp.ID]; !ok || tok != exp.token {
		return false
	}
	delete(h.live, exp.ID)
	s.SetHighlight(exp.ID, false)
	return true
}

func (h *Highlighter) Active(id string) bool {
	_, ok := h.live[id]
	return ok
}

// Apply runs reveal effects against s and returns the expiries to schedule.
func (h *Highlighter) Apply(s Surface, effects []Effect) []Expiry {
	var out []Expiry
	for _, eff := range effects {
		if eff.Kind != Reveal {
			continue
		}
		if exp, ok := h.Reveal(s, eff.Target); ok {
			out = append(out, exp)
		}
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////////////////////////
