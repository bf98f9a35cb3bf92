package session

import (
	"context"
	"strings"
	"testing"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/engine"
	"github.com/ashfall/mudcore/internal/pipeline"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-testutil"
)

func testSession(t *testing.T, input string) (*Session, *strings.Builder) {
	t.Helper()
	cat := catalog.New()
	cat.Register(&catalog.ItemDef{ItemID: "iron_sword", Name: "Iron Sword", ItemType: catalog.ItemTypeWeapon})

	w := world.New(cat)
	w.Player("hero", "village_1")
	w.Locations.DropToGround("village_1", "iron_sword", 1, w.ItemLookup())

	e := engine.New(w, bus.New())
	p := pipeline.New(e, pipeline.NewEntityTagger(cat.AllNames()), nil)

	out := &strings.Builder{}
	return NewSession("hero", p, strings.NewReader(input), out), out
}

func TestSession_ProcessesEachLine(t *testing.T) {
	s, out := testSession(t, "take iron sword\n")
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Iron Sword") {
		t.Fatalf("expected output to mention the item, got %q", out.String())
	}
}

func TestSession_UnknownInputRespondsWithSuggestions(t *testing.T) {
	s, out := testSession(t, "xyzzy plugh\n")
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "unknown response mentions misunderstanding", strings.Contains(out.String(), "don't understand"), true)
}

func TestSession_SkipsBlankLines(t *testing.T) {
	s, out := testSession(t, "\n\ntake iron sword\n")
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out.String(), "\n") == 0 {
		t.Fatal("expected at least one rendered line")
	}
}
