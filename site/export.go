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
package site

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Export writes a static copy of the site under out. The catalogue page has
// every category expanded and no search form, since nothing can answer it.
// It returns the written paths relative to out, sorted.
func Export(ctx context.Context, fsys afero.Fs, out string, site config.SiteConfig, b data.Bundle) ([]string, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	pipe := view.NewPipeline(b.Catalog())
	open := make([]string, 0, len(b.Categories))
	for _, cat := range b.Categories {
		open = append(open, cat.Name)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	emit := func(rel string, body []byte) error {
		dst := filepath.Join(out, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, dst, body, 0o644); err != nil {
			return err
		}
		mu.Lock()
		written = append(written, rel)
		mu.Unlock()
		return nil
	}
	renderTo := func(rel, name string, model any) error {
		var buf bytes.Buffer
		if err := pages.render(&buf, name, model); err != nil {
			return err
		}
		return emit(rel, buf.Bytes())
	}
	at := func(rel, name, heading string) page {
		return page{Site: site, Base: baseFor(rel), Page: name, Heading: heading}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return renderTo("index.html", pageHome, homeModel(at("index.html", pageHome, "Home"), b))
	})
	g.Go(func() error {
		rel := "commands/index.html"
		return renderTo(rel, pageCommands, commandsModel(at(rel, pageCommands, "Commands"), pipe, view.NewState(open...), nil, true))
	})
	g.Go(func() error {
		rel := "updates/index.html"
		return renderTo(rel, pageUpdates, updatesModel(at(rel, pageUpdates, "Updates"), b))
	})
	g.Go(func() error {
		body, err := json.MarshalIndent(apiModel(pipe, ""), "", "  ")
		if err != nil {
			return err
		}
		return emit("api/commands.json", body)
	})
	g.Go(func() error {
		static := staticFS()
		return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			body, err := fs.ReadFile(static, p)
			if err != nil {
				return err
			}
			return emit(path.Join("static", p), body)
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.Sort(written)
	return written, nil
}

// baseFor climbs from rel back to the export root.
func baseFor(rel string) string {
	dir := path.Dir(rel)
	if dir == "." {
		return ""
	}
	return strings.Repeat("../", strings.Count(dir, "/")+1)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
