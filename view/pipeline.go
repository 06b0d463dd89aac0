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
	"github.com/DanielRivasMD/Razor/catalog"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type EffectKind int

const (
	// Reveal scrolls the target command to the centre and highlights it for HighlightDuration.
	Reveal EffectKind = iota + 1
)

func (k EffectKind) String() string {
	switch k {
	case Reveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Effect is work for the rendering surface, keyed by command name.
type Effect struct {
	Kind   EffectKind
	Target string
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Pipeline binds the reducer to a catalogue.
type Pipeline struct {
	catalog catalog.Catalog
}

func NewPipeline(c catalog.Catalog) Pipeline {
	return Pipeline{catalog: c}
}

func (p Pipeline) Catalog() catalog.Catalog { return p.catalog }

// Dispatch reduces ev and then runs the derived steps in order:
//  1. find, only when the search term changed
//  2. reveal, only when the found command changed to a non-empty name
func (p Pipeline) Dispatch(s State, ev Event) (State, []Effect) {
	next := Reduce(s, ev)

	if next.search != s.search {
		next = p.find(next)
	}

	var effects []Effect
	if next.found != s.found && next.found != "" {
		effects = append(effects, Effect{Kind: Reveal, Target: next.found})
	}
	return next, effects
}

// find opens the first category holding a match and records its first visible command.
// Later matching categories keep whatever state the user left them in.
func (p Pipeline) find(s State) State {
	if s.search == "" {
		s.found = ""
		return s
	}

	cat, cmd, ok := p.catalog.FirstMatch(s.search)
	if !ok {
		s.found = ""
		return s
	}

	s = s.withExpanded(cat.Name)
	s.found = cmd.Name
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Sections is what the catalogue renders for s: visible categories with their visible commands.
func (p Pipeline) Sections(s State) []catalog.Section {
	return p.catalog.Filter(s.search)
}

// Empty reports the "no results" state.
func (p Pipeline) Empty(s State) bool {
	return p.catalog.Visible(s.search) == 0
}

////////////////////////////////////////////////////////////////////////////////////////////////////
