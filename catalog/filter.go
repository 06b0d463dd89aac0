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
package catalog

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"

	"github.com/samber/lo"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Section is a category paired with the commands visible under a search term.
type Section struct {
	Category Category
	Commands []Command
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Matches reports whether cmd is visible for term. An empty term matches everything.
func Matches(cmd Command, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(cmd.Name), needle) ||
		strings.Contains(strings.ToLower(cmd.Description), needle) ||
		strings.Contains(strings.ToLower(cmd.Usage), needle)
}

// VisibleIn returns the visible commands of cat in catalogue order.
func VisibleIn(cat Category, term string) []Command {
	return lo.Filter(cat.Commands, func(cmd Command, _ int) bool { return Matches(cmd, term) })
}

// Filter drops categories without a visible command.
func (c Catalog) Filter(term string) []Section {
	var out []Section
	for _, cat := range c.Categories {
		visible := VisibleIn(cat, term)
		if len(visible) == 0 {
			continue
		}
		out = append(out, Section{Category: cat, Commands: visible})
	}
	return out
}

func (c Catalog) Visible(term string) int {
	return lo.SumBy(c.Categories, func(cat Category) int { return len(VisibleIn(cat, term)) })
}

// FirstMatch scans categories in order and stops at the first one holding a visible command.
func (c Catalog) FirstMatch(term string) (Category, Command, bool) {
	for _, cat := range c.Categories {
		if cmd, ok := lo.Find(cat.Commands, func(cmd Command) bool { return Matches(cmd, term) }); ok {
			return cat, cmd, true
		}
	}
	return Category{}, Command{}, false
}

////////////////////////////////////////////////////////////////////////////////////////////////////
