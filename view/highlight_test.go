package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeSurface struct {
	rendered    map[string]bool
	highlighted map[string]bool
	scrolled    []string
}

func newFakeSurface(ids ...string) *fakeSurface {
	f := &fakeSurface{rendered: map[string]bool{}, highlighted: map[string]bool{}}
	for _, id := range ids {
		f.rendered[id] = true
	}
	return f
}

func (f *fakeSurface) ScrollIntoView(id string) bool {
	if !f.rendered[id] {
		return false
	}
	f.scrolled = append(f.scrolled, id)
	return true
}

func (f *fakeSurface) SetHighlight(id string, on bool) {
	f.highlighted[id] = on
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestRevealAndClear(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(0)
	surface := newFakeSurface("/ban")

	exp, ok := h.Reveal(surface, "/ban")
	require.True(t, ok)
	assert.Equal(t, HighlightDuration, exp.After)
	assert.Equal(t, []string{"/ban"}, surface.scrolled)
	assert.True(t, surface.highlighted["/ban"])
	assert.True(t, h.Active("/ban"))

	assert.True(t, h.Clear(surface, exp))
	assert.False(t, surface.highlighted["/ban"])
	assert.False(t, h.Active("/ban"))

	// a repeated expiry is a no-op
	assert.False(t, h.Clear(surface, exp))
}

func TestRevealMissingElementIsSilent(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(time.Second)
	surface := newFakeSurface()

	_, ok := h.Reveal(surface, "/ban")
	assert.False(t, ok)
	assert.Empty(t, surface.highlighted)
	assert.False(t, h.Active("/ban"))

	_, ok = h.Reveal(surface, "")
	assert.False(t, ok)
}

func TestRevealSupersedesPendingExpiry(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(time.Second)
	surface := newFakeSurface("/ban")

	first, ok := h.Reveal(surface, "/ban")
	require.True(t, ok)
	second, ok := h.Reveal(surface, "/ban")
	require.True(t, ok)

	assert.False(t, h.Clear(surface, first), "stale expiry must not clear the newer highlight")
	assert.True(t, surface.highlighted["/ban"])

	assert.True(t, h.Clear(surface, second))
	assert.False(t, surface.highlighted["/ban"])
}

func TestApplyOnlyRevealEffects(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(time.Second)
	surface := newFakeSurface("/ban")

	expiries := h.Apply(surface, []Effect{
		{Kind: EffectKind(0), Target: "/ban"},
		{Kind: Reveal, Target: "/missing"},
		{Kind: Reveal, Target: "/ban"},
	})
	require.Len(t, expiries, 1)
	assert.Equal(t, "/ban", expiries[0].ID)
}

// Host loop: timers only post expiries back, the loop owns the highlighter.
func TestHighlightClearsAfterDelayDespiteOtherEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	const delay = 20 * time.Millisecond

	p := NewPipeline(scenario())
	h := NewHighlighter(delay)
	surface := newFakeSurface("/ban", "/joke")
	expired := make(chan Expiry, 1)

	s, effects := p.Dispatch(NewState(), SetSearch{Term: "ban"})
	for _, exp := range h.Apply(surface, effects) {
		time.AfterFunc(exp.After, func() { expired <- exp })
	}
	require.True(t, h.Active("/ban"))

	// unrelated events while the timer runs
	s, _ = p.Dispatch(s, ToggleCategory{Name: "Fun"})
	s, _ = p.Dispatch(s, ToggleCategory{Name: "Fun"})
	_, effects = p.Dispatch(s, SetSearch{Term: "ba"})
	assert.Empty(t, effects)
	assert.True(t, h.Active("/ban"))

	select {
	case exp := <-expired:
		assert.True(t, h.Clear(surface, exp))
	case <-time.After(2 * time.Second):
		t.Fatal("highlight expiry never fired")
	}

	assert.False(t, h.Active("/ban"))
	assert.False(t, surface.highlighted["/ban"])
}
