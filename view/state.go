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

// Package view holds the catalogue page state and the search, expand and reveal
// rules shared by the site, the terminal tables and the interactive browser.
//
// State never changes in place. Every user action is an Event folded by Reduce,
// and Pipeline.Dispatch runs the derived steps in a fixed order:
//
//	search term -> found command -> reveal effect
package view

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"slices"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// State is an immutable snapshot of one catalogue session.
type State struct {
	search   string
	expanded []string
	found    string
}

// NewState starts from an empty search with the given categories expanded.
// Repeated names are kept once.
func NewState(expanded ...string) State {
	var s State
	for _, name := range expanded {
		if !slices.Contains(s.expanded, name) {
			s.expanded = append(s.expanded, name)
		}
	}
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (s State) Search() string { return s.search }

// Found is the command revealed by the last search, empty when there is none.
func (s State) Found() string { return s.found }

func (s State) Expanded(category string) bool {
	return slices.Contains(s.expanded, category)
}

// ExpandedNames lists expanded categories in the order they were opened.
func (s State) ExpandedNames() []string {
	return slices.Clone(s.expanded)
}

// Restore rebuilds a snapshot a host serialized earlier, for instance into
// query parameters. No derived step runs.
func Restore(search, found string, expanded ...string) State {
	s := NewState(expanded...)
	s.search = search
	s.found = found
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (s State) withExpanded(category string) State {
	if s.Expanded(category) {
		return s
	}
	s.expanded = append(slices.Clone(s.expanded), category)
	return s
}

func (s State) withoutExpanded(category string) State {
	s.expanded = slices.DeleteFunc(slices.Clone(s.expanded), func(name string) bool { return name == category })
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////
