package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielRivasMD/Razor/catalog"
)

func scenario() catalog.Catalog {
	return catalog.New(
		catalog.Category{Name: "Moderation", Commands: []catalog.Command{
			{Name: "/ban", Description: "Ban a user", Usage: "/ban <user>"},
		}},
		catalog.Category{Name: "Fun", Commands: []catalog.Command{
			{Name: "/joke", Description: "Tell a joke", Usage: "/joke"},
		}},
	)
}

// wider catalogue where "user" matches in two categories
func twoMatches() catalog.Catalog {
	return catalog.New(
		catalog.Category{Name: "Moderation", Commands: []catalog.Command{
			{Name: "/purge", Description: "Delete messages", Usage: "/purge <count>"},
			{Name: "/ban", Description: "Ban a user", Usage: "/ban <user>"},
		}},
		catalog.Category{Name: "Fun", Commands: []catalog.Command{
			{Name: "/hug", Description: "Hug a user", Usage: "/hug <user>"},
		}},
	)
}

var stateCmp = cmp.AllowUnexported(State{})

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestNewStateDeduplicates(t *testing.T) {
	t.Parallel()

	s := NewState("Fun", "Moderation", "Fun")
	assert.Equal(t, []string{"Fun", "Moderation"}, s.ExpandedNames())
	assert.Empty(t, s.Search())
	assert.Empty(t, s.Found())
}

func TestToggleRoundTrip(t *testing.T) {
	t.Parallel()

	for _, start := range []State{NewState(), NewState("Fun"), NewState("Fun", "Moderation")} {
		once := Reduce(start, ToggleCategory{Name: "Moderation"})
		assert.NotEqual(t, start.Expanded("Moderation"), once.Expanded("Moderation"))

		twice := Reduce(once, ToggleCategory{Name: "Moderation"})
		assert.ElementsMatch(t, start.ExpandedNames(), twice.ExpandedNames())
	}
}

func TestReduceDoesNotMutate(t *testing.T) {
	t.Parallel()

	start := NewState("Fun")
	names := start.ExpandedNames()
	names[0] = "changed"

	_ = Reduce(start, ToggleCategory{Name: "Moderation"})
	_ = Reduce(start, ToggleCategory{Name: "Fun"})
	_ = Reduce(start, SetSearch{Term: "x"})

	if diff := cmp.Diff(NewState("Fun"), start, stateCmp); diff != "" {
		t.Fatalf("state mutated (-want +got):\n%s", diff)
	}
}

func TestReduceSearch(t *testing.T) {
	t.Parallel()

	s := Reduce(NewState(), SetSearch{Term: "ban"})
	assert.Equal(t, "ban", s.Search())
	assert.Empty(t, s.Found(), "reduce alone derives nothing")
	assert.Empty(t, s.ExpandedNames())

	s = Reduce(s, ClearSearch{})
	assert.Empty(t, s.Search())
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func TestDispatchScenarioMatch(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	s, effects := p.Dispatch(NewState(), SetSearch{Term: "ban"})

	assert.Equal(t, "/ban", s.Found())
	assert.Equal(t, []string{"Moderation"}, s.ExpandedNames())
	assert.Equal(t, []Effect{{Kind: Reveal, Target: "/ban"}}, effects)

	sections := p.Sections(s)
	require.Len(t, sections, 1)
	assert.Equal(t, "Moderation", sections[0].Category.Name)
	assert.False(t, p.Empty(s))
}

func TestDispatchScenarioNoMatch(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	start := NewState("Fun")
	s, effects := p.Dispatch(start, SetSearch{Term: "xyz"})

	assert.True(t, p.Empty(s))
	assert.Empty(t, p.Sections(s))
	assert.Empty(t, effects)
	assert.Empty(t, s.Found())
	assert.Equal(t, start.ExpandedNames(), s.ExpandedNames())
}

func TestDispatchEmptySearchLeavesExpansion(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	start := NewState("Fun")
	s, effects := p.Dispatch(start, SetSearch{Term: ""})

	assert.Empty(t, effects)
	assert.Equal(t, []string{"Fun"}, s.ExpandedNames())
	assert.Equal(t, 2, p.Catalog().Visible(s.Search()))
	assert.Len(t, p.Sections(s), 2)
}

func TestDispatchClearDoesNotRetrigger(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	s, effects := p.Dispatch(NewState(), SetSearch{Term: "ban"})
	require.Len(t, effects, 1)

	s, effects = p.Dispatch(s, ClearSearch{})
	assert.Empty(t, effects)
	assert.Empty(t, s.Found())
	assert.Empty(t, s.Search())
	// the auto-opened category stays open
	assert.True(t, s.Expanded("Moderation"))

	s, effects = p.Dispatch(s, SetSearch{Term: ""})
	assert.Empty(t, effects)
	assert.Empty(t, s.Found())
}

func TestDispatchOpensOnlyFirstMatchingCategory(t *testing.T) {
	t.Parallel()

	p := NewPipeline(twoMatches())
	s, effects := p.Dispatch(NewState(), SetSearch{Term: "user"})

	assert.Equal(t, []string{"Moderation"}, s.ExpandedNames())
	assert.False(t, s.Expanded("Fun"))
	assert.Equal(t, "/ban", s.Found())
	assert.Equal(t, []Effect{{Kind: Reveal, Target: "/ban"}}, effects)
	assert.Len(t, p.Sections(s), 2)
}

func TestDispatchRespectsManualCollapse(t *testing.T) {
	t.Parallel()

	p := NewPipeline(twoMatches())
	s, _ := p.Dispatch(NewState(), SetSearch{Term: "user"})
	s, effects := p.Dispatch(s, ToggleCategory{Name: "Moderation"})
	assert.Empty(t, effects)
	assert.False(t, s.Expanded("Moderation"))

	// same found command: no re-reveal, no forced re-open
	s, effects = p.Dispatch(s, SetSearch{Term: "use"})
	assert.Equal(t, "/ban", s.Found())
	assert.Empty(t, effects)
	assert.True(t, s.Expanded("Moderation"), "term change re-runs find")
}

func TestDispatchNewFoundRevealsAgain(t *testing.T) {
	t.Parallel()

	p := NewPipeline(twoMatches())
	s, effects := p.Dispatch(NewState(), SetSearch{Term: "ban"})
	require.Equal(t, []Effect{{Kind: Reveal, Target: "/ban"}}, effects)

	s, effects = p.Dispatch(s, SetSearch{Term: "hug"})
	assert.Equal(t, []Effect{{Kind: Reveal, Target: "/hug"}}, effects)
	assert.Equal(t, []string{"Moderation", "Fun"}, s.ExpandedNames())

	s, effects = p.Dispatch(s, SetSearch{Term: "hugx"})
	assert.Empty(t, effects)
	assert.Empty(t, s.Found())

	_, effects = p.Dispatch(s, SetSearch{Term: "hug"})
	assert.Equal(t, []Effect{{Kind: Reveal, Target: "/hug"}}, effects)
}

func TestDispatchSameTermIsIdle(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	s, _ := p.Dispatch(NewState(), SetSearch{Term: "ban"})
	s = Reduce(s, ToggleCategory{Name: "Moderation"})

	next, effects := p.Dispatch(s, SetSearch{Term: "ban"})
	assert.Empty(t, effects)
	if diff := cmp.Diff(s, next, stateCmp); diff != "" {
		t.Fatalf("unchanged term altered state (-want +got):\n%s", diff)
	}
}

func TestEffectKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reveal", Reveal.String())
	assert.Equal(t, "unknown", EffectKind(0).String())
}

func TestRestoreKeepsFoundAcrossRequests(t *testing.T) {
	t.Parallel()

	p := NewPipeline(scenario())
	first, effects := p.Dispatch(NewState(), SetSearch{Term: "ban"})
	require.Len(t, effects, 1)

	// a later request carrying the same snapshot
	s := Restore(first.Search(), first.Found(), first.ExpandedNames()...)
	if diff := cmp.Diff(first, s, stateCmp); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}

	s, effects = p.Dispatch(s, SetSearch{Term: "ba"})
	assert.Equal(t, "/ban", s.Found())
	assert.Empty(t, effects)
}
