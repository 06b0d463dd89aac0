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

// Event is a discrete user action on the catalogue.
type Event interface {
	event()
}

// SetSearch replaces the search text, one keystroke or one form submit at a time.
type SetSearch struct {
	Term string
}

// ClearSearch is the "clear search" action of the empty state.
type ClearSearch struct{}

// ToggleCategory is a click on a category header.
type ToggleCategory struct {
	Name string
}

func (SetSearch) event()      {}
func (ClearSearch) event()    {}
func (ToggleCategory) event() {}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Reduce folds ev into s. It only touches what the event names; the found
// command and auto-expansion are derived later by Pipeline.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case SetSearch:
		s.search = e.Term
	case ClearSearch:
		s.search = ""
	case ToggleCategory:
		if s.Expanded(e.Name) {
			return s.withoutExpanded(e.Name)
		}
		return s.withExpanded(e.Name)
	}
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////
