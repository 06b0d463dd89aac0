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

// Package data loads the hand-authored catalogue and changelog files.
package data

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/DanielRivasMD/Razor/catalog"
	"github.com/DanielRivasMD/Razor/feed"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	ErrUnknownFormat = errors.New("unknown data format")
	ErrUnknownKeys   = errors.New("unknown keys")
	ErrNoFiles       = errors.New("no data files")
	ErrNotWatchable  = errors.New("store is not backed by the OS filesystem")
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Document is the shape of a single data file. Either list may be absent.
type Document struct {
	Categories []catalog.Category `toml:"categories" edn:"categories" yaml:"categories"`
	Updates    []feed.Update      `toml:"updates" edn:"updates" yaml:"updates"`
}

// Bundle is everything the site renders, merged from all data files in order.
type Bundle struct {
	Categories []catalog.Category
	Updates    []feed.Update
	Sources    []string
}

func (b Bundle) Catalog() catalog.Catalog {
	return catalog.New(b.Categories...)
}

func (b Bundle) Entries() []feed.Entry {
	return feed.Entries(b.Updates)
}

func (b Bundle) Validate() error {
	return b.Catalog().Validate()
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Resolve returns either the single file or every data file under root, in lexical order.
func Resolve(fsys afero.Fs, file, root string) ([]string, error) {
	if file != "" {
		return []string{file}, nil
	}

	var paths []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if _, ok := decoders[strings.ToLower(filepath.Ext(path))]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoFiles)
	}

	sort.Strings(paths)
	return paths, nil
}

// Load decodes every path and concatenates categories and updates in path order.
func Load(fsys afero.Fs, paths ...string) (Bundle, error) {
	var b Bundle
	for _, path := range paths {
		doc, err := LoadFile(fsys, path)
		if err != nil {
			return Bundle{}, err
		}
		b.Categories = append(b.Categories, doc.Categories...)
		b.Updates = append(b.Updates, doc.Updates...)
		b.Sources = append(b.Sources, path)
	}
	return b, nil
}

func LoadFile(fsys afero.Fs, path string) (Document, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Document{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
