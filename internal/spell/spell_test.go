package spell

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func testTemplate() *Template {
	return &Template{
		ID:            "firebolt",
		Name:          "Firebolt",
		Elements:      []Element{ElementFire},
		Purpose:       "damage",
		Complexity:    2,
		BasePower:     10,
		BaseDuration:  TierMinimal,
		BaseRange:     TierModerate,
		BaseArea:      TierSmall,
		ManaCost:      15,
		FocusRequired: false,
		CastingTimeMs: 1500,
		Components:    []string{"verbal", "somatic"},
	}
}

func TestRegistry_RegisterAndByID(t *testing.T) {
	r := NewRegistry()
	r.Register(testTemplate())

	got, ok := r.ByID("firebolt")
	if !ok {
		t.Fatal("expected firebolt to be registered")
	}
	testutil.AssertEqual(t, "template name", got.Name, "Firebolt")
}

func TestInstantiate_ScalarMultipliers(t *testing.T) {
	tmpl := testTemplate()
	inst := Instantiate(tmpl, Modifications{PowerMultiplier: 1.5, CostMultiplier: 0.5, TimeMultiplier: 2})

	testutil.AssertEqual(t, "power", inst.Power, 15.0)
	testutil.AssertEqual(t, "mana cost", inst.ManaCost, 7)
	testutil.AssertEqual(t, "casting time", inst.CastingTimeMs, 3000)
}

func TestInstantiate_EnumDeltasClampToBounds(t *testing.T) {
	tmpl := testTemplate()

	// Range starts at TierModerate (2); a delta of +10 must clamp to TierMassive.
	inst := Instantiate(tmpl, Modifications{RangeDelta: 10, AreaDelta: -10})
	testutil.AssertEqual(t, "range clamps to max", inst.Range, TierMassive)
	testutil.AssertEqual(t, "area clamps to min", inst.Area, TierMinimal)
}

func TestInstantiate_AddsLocationElementsWithoutDuplication(t *testing.T) {
	tmpl := testTemplate()
	mods := LocationAffinityModifications([]Element{ElementFire, ElementEarth})

	inst := Instantiate(tmpl, mods)
	if len(inst.Elements) != 2 {
		t.Fatalf("expected fire (deduped) + earth, got %v", inst.Elements)
	}
	testutil.AssertEqual(t, "first element unchanged", inst.Elements[0], ElementFire)
	testutil.AssertEqual(t, "second element added", inst.Elements[1], ElementEarth)
}

func TestInstantiate_NoModificationsPreservesBase(t *testing.T) {
	tmpl := testTemplate()
	inst := Instantiate(tmpl, Modifications{})

	testutil.AssertEqual(t, "power unchanged", inst.Power, tmpl.BasePower)
	testutil.AssertEqual(t, "mana cost unchanged", inst.ManaCost, tmpl.ManaCost)
	testutil.AssertEqual(t, "duration unchanged", inst.Duration, tmpl.BaseDuration)
}
