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
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/glyph"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	markdownOnce sync.Once
	markdownConv goldmark.Markdown
)

func converter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownConv = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownConv
}

// markdown renders description text. Raw HTML in the source is dropped by goldmark's default renderer.
func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := converter().Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

var funcs = template.FuncMap{
	"glyph":    glyph.Lookup,
	"markdown": markdown,
	"changeColor": func(t feed.ChangeType) string {
		return feed.StyleFor(t).Color
	},
	"changeIcon": func(t feed.ChangeType) string {
		return feed.StyleFor(t).Icon
	},
}

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	pageHome     = "home"
	pageCommands = "commands"
	pageUpdates  = "updates"
)

// renderer holds one layout clone per page, each with its own "content".
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	layout, err := template.New("layout").Funcs(funcs).ParseFS(assets, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageHome, pageCommands, pageUpdates} {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(assets, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes into a buffer first so a failed page never reaches w half written.
func (r *renderer) render(w io.Writer, name string, model any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", model); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

////////////////////////////////////////////////////////////////////////////////////////////////////
