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
package data

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/afero"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Store holds the current bundle. Readers get an immutable snapshot; Reload swaps it whole.
type Store struct {
	fs   afero.Fs
	file string
	root string
	cur  atomic.Pointer[Bundle]
}

// Open resolves and loads the data once. The bundle must validate.
func Open(fsys afero.Fs, file, root string) (*Store, error) {
	s := &Store{fs: fsys, file: file, root: root}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Static wraps an already loaded bundle. Reload on it is a no-op.
func Static(b Bundle) *Store {
	s := &Store{}
	s.cur.Store(&b)
	return s
}

func (s *Store) Current() Bundle {
	return *s.cur.Load()
}

// Reload re-reads every data file. On failure the previous bundle stays current.
func (s *Store) Reload() (Bundle, error) {
	if s.fs == nil {
		return s.Current(), nil
	}

	paths, err := Resolve(s.fs, s.file, s.root)
	if err != nil {
		return Bundle{}, err
	}
	b, err := Load(s.fs, paths...)
	if err != nil {
		return Bundle{}, err
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}

	s.cur.Store(&b)
	return b, nil
}

// WatchDir is the directory a watcher should follow.
func (s *Store) WatchDir() string {
	if s.file != "" {
		return filepath.Dir(s.file)
	}
	return s.root
}

////////////////////////////////////////////////////////////////////////////////////////////////////
