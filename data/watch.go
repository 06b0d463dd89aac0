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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// settle absorbs the burst of events editors produce on a single save
const settle = 150 * time.Millisecond

// Watch reloads s whenever a data file under its root changes, until ctx ends.
// Failed reloads are logged and the last good bundle keeps serving.
// Events come from the OS, so s must read through afero.OsFs; other stores get ErrNotWatchable.
func Watch(ctx context.Context, s *Store, log *zap.Logger, onReload func(Bundle)) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return ErrNotWatchable
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()

	err = afero.Walk(s.fs, s.WatchDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.WatchDir(), err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			log.Debug("data changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			b, err := s.Reload()
			if err != nil {
				log.Warn("reload failed, keeping previous data", zap.Error(err))
				continue
			}
			log.Info("data reloaded",
				zap.Int("categories", len(b.Categories)),
				zap.Int("updates", len(b.Updates)),
				zap.Strings("sources", b.Sources),
			)
			if onReload != nil {
				onReload(b)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	_, ok := decoders[strings.ToLower(filepath.Ext(ev.Name))]
	return ok
}

////////////////////////////////////////////////////////////////////////////////////////////////////
