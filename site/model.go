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
	"html/template"
	"net/url"

	"github.com/samber/lo"

	"github.com/DanielRivasMD/Razor/catalog"
	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/glyph"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// page is shared by every template. Base prefixes every internal link so
// the same templates work served from / and exported at any depth.
type page struct {
	Site    config.SiteConfig
	Base    string
	Page    string
	Heading string
}

type homePage struct {
	page
	Categories int
	Total      int
	Updates    []widgetEntry
}

type widgetEntry struct {
	feed.Entry
	Shown []feed.Change
	More  int
}

type updatesPage struct {
	page
	Entries []feed.Entry
}

type commandsPage struct {
	page
	Categories int
	Total      int
	Visible    int
	Search     string
	Found      string
	Open       []string
	Searching  bool
	Empty      bool
	Static     bool

	Reveal          string
	HighlightClass  string
	HighlightMillis int64

	Sections []sectionModel
	ClearURL string
}

type sectionModel struct {
	Name        string
	Description string
	Glyph       string
	Count       int
	Expanded    bool
	ToggleURL   string
	Commands    []commandModel
}

type commandModel struct {
	catalog.Command
	DescriptionHTML template.HTML
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func homeModel(p page, b data.Bundle) homePage {
	c := b.Catalog()
	m := homePage{page: p, Categories: len(c.Categories), Total: c.Total()}
	for _, e := range b.Entries() {
		shown, more := e.Compact(feed.WidgetChanges)
		m.Updates = append(m.Updates, widgetEntry{Entry: e, Shown: shown, More: more})
	}
	return m
}

func updatesModel(p page, b data.Bundle) updatesPage {
	return updatesPage{page: p, Entries: b.Entries()}
}

// commandsModel renders state s. effects are the ones Dispatch returned for
// this request; a reveal whose command is not on the page is dropped.
func commandsModel(p page, pipe view.Pipeline, s view.State, effects []view.Effect, static bool) commandsPage {
	c := pipe.Catalog()
	m := commandsPage{
		page:           p,
		Categories:     len(c.Categories),
		Total:          c.Total(),
		Visible:        c.Visible(s.Search()),
		Search:         s.Search(),
		Found:          s.Found(),
		Open:           s.ExpandedNames(),
		Searching:      s.Search() != "",
		Empty:          pipe.Empty(s),
		Static:         static,
		HighlightClass: view.HighlightClass,
	}

	surface := &markup{rendered: make(map[string]bool)}
	for _, sec := range pipe.Sections(s) {
		sm := sectionModel{
			Name:        sec.Category.Name,
			Description: sec.Category.Description,
			Glyph:       glyph.Lookup(sec.Category.Icon),
			Count:       len(sec.Commands),
			Expanded:    s.Expanded(sec.Category.Name),
		}
		if !static {
			sm.ToggleURL = p.Base + "commands/" + stateQuery(view.Reduce(s, view.ToggleCategory{Name: sec.Category.Name}), false)
		}
		if sm.Expanded {
			sm.Commands = lo.Map(sec.Commands, func(cmd catalog.Command, _ int) commandModel {
				surface.rendered[cmd.Name] = true
				return commandModel{Command: cmd, DescriptionHTML: markdown(cmd.Description)}
			})
		}
		m.Sections = append(m.Sections, sm)
	}
	if !static {
		m.ClearURL = p.Base + "commands/" + stateQuery(s, true)
	}

	h := view.NewHighlighter(view.HighlightDuration)
	for _, exp := range h.Apply(surface, effects) {
		m.HighlightMillis = exp.After.Milliseconds()
	}
	m.Reveal = surface.reveal
	if m.HighlightMillis == 0 {
		m.HighlightMillis = view.HighlightDuration.Milliseconds()
	}
	return m
}

// markup is the server side of the reveal: it knows which commands made it
// onto the page and leaves the scroll and timed removal to site.js.
type markup struct {
	rendered map[string]bool
	reveal   string
}

func (m *markup) ScrollIntoView(id string) bool { return m.rendered[id] }

func (m *markup) SetHighlight(id string, on bool) {
	switch {
	case on:
		m.reveal = id
	case m.reveal == id:
		m.reveal = ""
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// stateQuery serializes s for a follow-up request. q and prev carry the same
// term so the next request sees no search change unless the form edits q.
func stateQuery(s view.State, clear bool) string {
	v := url.Values{}
	if s.Search() != "" {
		v.Set("q", s.Search())
		v.Set("prev", s.Search())
	}
	if s.Found() != "" {
		v.Set("found", s.Found())
	}
	for _, name := range s.ExpandedNames() {
		v.Add("open", name)
	}
	if clear {
		v.Set("clear", "1")
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// requestState restores the snapshot carried by the query and applies the
// request's event: a clear, or the (possibly unchanged) search term.
func requestState(pipe view.Pipeline, q url.Values) (view.State, []view.Effect) {
	// a found command that no longer exists, after a reload or in a stale link, is forgotten
	found := q.Get("found")
	if _, _, ok := pipe.Catalog().Lookup(found); !ok {
		found = ""
	}
	s := view.Restore(q.Get("prev"), found, q["open"]...)

	var ev view.Event = view.SetSearch{Term: q.Get("q")}
	if q.Has("clear") {
		ev = view.ClearSearch{}
	}
	return pipe.Dispatch(s, ev)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type apiCommands struct {
	Term     string       `json:"term"`
	Total    int          `json:"total"`
	Visible  int          `json:"visible"`
	Found    string       `json:"found,omitempty"`
	Sections []apiSection `json:"sections"`
}

type apiSection struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Commands    []catalog.Command `json:"commands"`
}

func apiModel(pipe view.Pipeline, term string) apiCommands {
	s, _ := pipe.Dispatch(view.NewState(), view.SetSearch{Term: term})
	c := pipe.Catalog()
	return apiCommands{
		Term:    term,
		Total:   c.Total(),
		Visible: c.Visible(term),
		Found:   s.Found(),
		Sections: lo.Map(pipe.Sections(s), func(sec catalog.Section, _ int) apiSection {
			return apiSection{
				Name:        sec.Category.Name,
				Description: sec.Category.Description,
				Icon:        sec.Category.Icon,
				Commands:    sec.Commands,
			}
		}),
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
