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

// Package catalog holds the bot command catalogue and the search predicate
// every view filters it with.
package catalog

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	ErrDuplicate = errors.New("duplicate name")
	ErrEmptyName = errors.New("empty name")
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Command is a single bot action. Name doubles as the anchor id of the rendered item.
type Command struct {
	Name        string   `toml:"name" edn:"name" yaml:"name" json:"name"`
	Description string   `toml:"description" edn:"description" yaml:"description" json:"description"`
	Usage       string   `toml:"usage" edn:"usage" yaml:"usage" json:"usage"`
	Permissions []string `toml:"permissions" edn:"permissions" yaml:"permissions" json:"permissions,omitempty"`
	Examples    []string `toml:"examples" edn:"examples" yaml:"examples" json:"examples,omitempty"`
}

type Category struct {
	Name        string    `toml:"name" edn:"name" yaml:"name" json:"name"`
	Description string    `toml:"description" edn:"description" yaml:"description" json:"description"`
	Icon        string    `toml:"icon" edn:"icon" yaml:"icon" json:"icon"`
	Commands    []Command `toml:"commands" edn:"commands" yaml:"commands" json:"commands"`
}

// Catalog is the ordered list of categories. It is never mutated after load.
type Catalog struct {
	Categories []Category
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func New(categories ...Category) Catalog {
	return Catalog{Categories: categories}
}

// Total counts every command, ignoring any search.
func (c Catalog) Total() int {
	return lo.SumBy(c.Categories, func(cat Category) int { return len(cat.Commands) })
}

// Lookup returns the category holding the named command.
func (c Catalog) Lookup(command string) (Category, Command, bool) {
	for _, cat := range c.Categories {
		for _, cmd := range cat.Commands {
			if cmd.Name == command {
				return cat, cmd, true
			}
		}
	}
	return Category{}, Command{}, false
}

// Validate enforces unique, non-empty category and command names.
func (c Catalog) Validate() error {
	var errs []error

	catNames := make(map[string]struct{}, len(c.Categories))
	cmdNames := make(map[string]string, c.Total())

	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			errs = append(errs, fmt.Errorf("category #%d: %w", i+1, ErrEmptyName))
		} else if _, seen := catNames[cat.Name]; seen {
			errs = append(errs, fmt.Errorf("category %q: %w", cat.Name, ErrDuplicate))
		}
		catNames[cat.Name] = struct{}{}

		for j, cmd := range cat.Commands {
			if strings.TrimSpace(cmd.Name) == "" {
				errs = append(errs, fmt.Errorf("category %q command #%d: %w", cat.Name, j+1, ErrEmptyName))
				continue
			}
			if owner, seen := cmdNames[cmd.Name]; seen {
				errs = append(errs, fmt.Errorf("command %q in %q (first in %q): %w", cmd.Name, cat.Name, owner, ErrDuplicate))
				continue
			}
			cmdNames[cmd.Name] = cat.Name
		}
	}

	return errors.Join(errs...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
