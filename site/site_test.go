package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/DanielRivasMD/Razor/catalog"
	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/view"
)

func bundle() data.Bundle {
	return data.Bundle{
		Categories: []catalog.Category{
			{Name: "Moderation", Description: "Keep order", Icon: "shield", Commands: []catalog.Command{
				{Name: "/ban", Description: "Ban a user", Usage: "/ban <user>", Permissions: []string{"Ban Members"}},
				{Name: "/kick", Description: "Kick a member", Usage: "/kick <user>"},
			}},
			{Name: "Fun", Description: "Games and jokes", Icon: "gamepad", Commands: []catalog.Command{
				{Name: "/joke", Description: "Tell a **joke**", Usage: "/joke"},
			}},
		},
		Updates: []feed.Update{
			{Version: "v2.0", Date: "2025-03-01", Title: "Music Arrives", Icon: "music", Changes: []feed.Change{
				{Type: feed.Feature, Description: "Queue songs"},
				{Type: feed.Fix, Description: "Voice reconnects"},
				{Type: feed.Security, Description: "Token rotation"},
			}},
			{Version: "v1.0", Date: "2025-01-01", Title: "First Release", Icon: "rocket", Highlighted: true, Changes: []feed.Change{
				{Type: feed.Other, Description: "Hello"},
			}},
		},
	}
}

var siteCfg = config.SiteConfig{Title: "Razor Bot", Tagline: "Commands for everyone", InviteURL: "https://discord.example/invite"}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := New(siteCfg, data.Static(bundle()), zaptest.NewLogger(t))
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w, w.Body.String()
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestCommandsSearchRevealsFirstMatch(t *testing.T) {
	h := newTestServer(t)
	w, body := get(t, h, "/commands/?q=ban")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `data-reveal="/ban"`)
	assert.Contains(t, body, `data-highlight-ms="2000"`)
	assert.Contains(t, body, `id="/ban"`)
	assert.Contains(t, body, `class="category expanded"`)
	assert.Contains(t, body, "1 found")
	assert.NotContains(t, body, `id="/joke"`)
	assert.NotContains(t, body, "<h3>Fun</h3>")
	assert.NotContains(t, body, "No Commands Found")
}

func TestCommandsSameSearchDoesNotRevealAgain(t *testing.T) {
	h := newTestServer(t)
	q := url.Values{"q": {"ban"}, "prev": {"ban"}, "found": {"/ban"}, "open": {"Moderation"}}
	_, body := get(t, h, "/commands/?"+q.Encode())

	assert.NotContains(t, body, "data-reveal")
	assert.Contains(t, body, `id="/ban"`)
}

func TestCommandsNoMatch(t *testing.T) {
	h := newTestServer(t)
	_, body := get(t, h, "/commands/?q=xyz")

	assert.Contains(t, body, "No Commands Found")
	assert.Contains(t, body, "0 found")
	assert.Contains(t, body, "clear=1")
	assert.NotContains(t, body, "data-reveal")
	assert.NotContains(t, body, `class="category-head"`)
}

func TestCommandsClearShowsEverything(t *testing.T) {
	h := newTestServer(t)
	q := url.Values{"clear": {"1"}, "prev": {"xyz"}, "open": {"Fun"}}
	_, body := get(t, h, "/commands/?"+q.Encode())

	assert.NotContains(t, body, "No Commands Found")
	assert.NotContains(t, body, "data-reveal")
	assert.Contains(t, body, "<h3>Moderation</h3>")
	assert.Contains(t, body, "<h3>Fun</h3>")
	assert.Contains(t, body, `id="/joke"`, "Fun stays open")
	assert.NotContains(t, body, `id="/ban"`)
}

func TestCommandsToggleLinks(t *testing.T) {
	h := newTestServer(t)
	_, body := get(t, h, "/commands")

	assert.Contains(t, body, `href="/commands/?open=Moderation"`)
	assert.Contains(t, body, `href="/commands/?open=Fun"`)
	assert.Contains(t, body, "Discover all 3 powerful commands")

	_, body = get(t, h, "/commands/?open=Fun")
	assert.Contains(t, body, `href="/commands/?open=Fun&amp;open=Moderation"`)
	assert.Contains(t, body, "Click to collapse")
	assert.Contains(t, body, "<strong>joke</strong>")
}

func TestAPICommands(t *testing.T) {
	h := newTestServer(t)
	w, _ := get(t, h, "/api/commands?q=user")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var got apiCommands
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "user", got.Term)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Visible)
	assert.Equal(t, "/ban", got.Found)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Moderation", got.Sections[0].Name)

	w, _ = get(t, h, "/api/commands?q=nothing")
	var none apiCommands
	require.NoError(t, json.NewDecoder(w.Body).Decode(&none))
	assert.Equal(t, "nothing", none.Term)
	assert.Equal(t, 3, none.Total)
	assert.Equal(t, 0, none.Visible)
	assert.Empty(t, none.Found)
	assert.NotNil(t, none.Sections)
	assert.Empty(t, none.Sections)
}

func TestAPICommandsOmitsFoundWithoutMatch(t *testing.T) {
	h := newTestServer(t)
	w, _ := get(t, h, "/api/commands?q=nothing")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.NotContains(t, raw, "found")
	assert.Equal(t, []any{}, raw["sections"])
}

func TestUpdatesPage(t *testing.T) {
	h := newTestServer(t)
	_, body := get(t, h, "/updates/")

	first := strings.Index(body, "Music Arrives")
	second := strings.Index(body, "First Release")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Equal(t, 1, strings.Count(body, "latest-badge"))
	assert.Contains(t, body, "change-red")
	assert.Contains(t, body, "entry highlighted")
}

func TestHomeWidget(t *testing.T) {
	h := newTestServer(t)
	_, body := get(t, h, "/")

	assert.Contains(t, body, "Queue songs")
	assert.Contains(t, body, "Voice reconnects")
	assert.NotContains(t, body, "Token rotation")
	assert.Contains(t, body, "+1 more")
	assert.Contains(t, body, "https://discord.example/invite")
}

func TestStaticAndHeaders(t *testing.T) {
	h := newTestServer(t)
	w, body := get(t, h, "/static/site.js")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "scrollIntoView")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w, _ = get(t, h, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerFollowsStoreReload(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/data/a.toml", []byte(`
[[categories]]
name = "Utility"
[[categories.commands]]
name = "/ping"
description = "Check latency"
usage = "/ping"
`), 0o644))
	store, err := data.Open(fsys, "", "/data")
	require.NoError(t, err)

	srv, err := New(siteCfg, store, nil)
	require.NoError(t, err)
	h := srv.Handler()

	_, body := get(t, h, "/commands/?q=pong")
	assert.Contains(t, body, "No Commands Found")

	require.NoError(t, afero.WriteFile(fsys, "/data/a.toml", []byte(`
[[categories]]
name = "Utility"
[[categories.commands]]
name = "/ping"
description = "Reply with pong"
usage = "/ping"
`), 0o644))
	_, err = store.Reload()
	require.NoError(t, err)

	_, body = get(t, h, "/commands/?q=pong")
	assert.Contains(t, body, `data-reveal="/ping"`)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestRequestState(t *testing.T) {
	t.Parallel()
	pipe := view.NewPipeline(bundle().Catalog())

	s, effects := requestState(pipe, url.Values{"q": {"kick"}})
	assert.Equal(t, "/kick", s.Found())
	assert.Len(t, effects, 1)

	s, effects = requestState(pipe, url.Values{"q": {"kick"}, "prev": {"kick"}, "found": {"/kick"}})
	assert.Equal(t, "/kick", s.Found())
	assert.Empty(t, effects)

	s, effects = requestState(pipe, url.Values{"q": {"kick"}, "prev": {"kick"}, "clear": {"1"}})
	assert.Empty(t, s.Search())
	assert.Empty(t, effects)
}

func TestRequestStateForgetsUnknownFound(t *testing.T) {
	t.Parallel()
	pipe := view.NewPipeline(bundle().Catalog())

	s, effects := requestState(pipe, url.Values{"q": {"kick"}, "prev": {"kick"}, "found": {"/gone"}, "open": {"Fun"}})
	assert.Empty(t, s.Found())
	assert.Empty(t, effects)
	assert.Equal(t, []string{"Fun"}, s.ExpandedNames())
}

func TestStateQuery(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stateQuery(view.NewState(), false))
	assert.Equal(t, "?clear=1", stateQuery(view.NewState(), true))

	s := view.Restore("ban", "/ban", "Moderation", "Fun")
	got, err := url.ParseQuery(strings.TrimPrefix(stateQuery(s, false), "?"))
	require.NoError(t, err)
	assert.Equal(t, "ban", got.Get("q"))
	assert.Equal(t, "ban", got.Get("prev"))
	assert.Equal(t, "/ban", got.Get("found"))
	assert.Equal(t, []string{"Moderation", "Fun"}, got["open"])
}

func TestRevealOfMissingCommandIsDropped(t *testing.T) {
	t.Parallel()
	pipe := view.NewPipeline(bundle().Catalog())

	// Fun is collapsed, so /joke is not on the page
	m := commandsModel(page{}, pipe, view.NewState(), []view.Effect{{Kind: view.Reveal, Target: "/joke"}}, false)
	assert.Empty(t, m.Reveal)

	m = commandsModel(page{}, pipe, view.NewState("Fun"), []view.Effect{{Kind: view.Reveal, Target: "/joke"}}, false)
	assert.Equal(t, "/joke", m.Reveal)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestExport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	written, err := Export(context.Background(), fsys, "/out", siteCfg, bundle())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"api/commands.json",
		"commands/index.html",
		"index.html",
		"static/site.css",
		"static/site.js",
		"updates/index.html",
	}, written)

	page, err := afero.ReadFile(fsys, "/out/commands/index.html")
	require.NoError(t, err)
	body := string(page)
	assert.NotContains(t, body, "<form")
	assert.NotContains(t, body, "data-reveal")
	for _, id := range []string{"/ban", "/kick", "/joke"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `href="../static/site.css"`)

	index, err := afero.ReadFile(fsys, "/out/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="static/site.css"`)

	raw, err := afero.ReadFile(fsys, "/out/api/commands.json")
	require.NoError(t, err)
	var api apiCommands
	require.NoError(t, json.Unmarshal(raw, &api))
	assert.Equal(t, 3, api.Visible)
	assert.Len(t, api.Sections, 2)
}

func TestBaseFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", baseFor("index.html"))
	assert.Equal(t, "../", baseFor("commands/index.html"))
	assert.Equal(t, "../../", baseFor("a/b/index.html"))
}
