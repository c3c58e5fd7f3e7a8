package inventory

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/item"
	"github.com/osse101/gameitems/internal/metrics"
	"github.com/osse101/gameitems/internal/modifier"
)

type fixture struct {
	inv    *Inventory
	sword  *item.Weapon
	bow    *item.Weapon
	jacket *item.Armour
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	sword, err := item.NewWeapon(item.WeaponParams{
		ID: "sword_01", Category: domain.CategoryMelee, Level: 1, Rarity: domain.RarityCommon, Damage: 20, Speed: 1,
	})
	require.NoError(t, err)

	bow, err := item.NewWeapon(item.WeaponParams{
		ID: "bow_01", Category: domain.CategoryRanged, Level: 1, Rarity: domain.RarityRare, Damage: 15, Speed: 2,
	})
	require.NoError(t, err)

	jacket, err := item.NewArmour(item.ArmourParams{
		ID: "jacket_01", Level: 1, Rarity: domain.RarityCommon, Protection: 4,
	})
	require.NoError(t, err)

	inv := New()
	inv.Add(sword)
	inv.Add(bow)
	inv.Add(jacket)

	return fixture{inv: inv, sword: sword, bow: bow, jacket: jacket}
}

func newModifier(t *testing.T, id string, effect domain.EffectKind, magnitude float64, filters ...modifier.Filter) *modifier.Modifier {
	t.Helper()
	m, err := modifier.New(modifier.Params{ID: id, Effect: effect, Magnitude: magnitude})
	require.NoError(t, err)
	for _, f := range filters {
		require.NoError(t, m.AddFilter(f))
	}
	return m
}

func TestInventory_AddAndItems(t *testing.T) {
	f := newFixture(t)

	items := f.inv.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "sword_01", items[0].ID())
	assert.Equal(t, "bow_01", items[1].ID())
	assert.Equal(t, "jacket_01", items[2].ID())
	assert.Equal(t, 3, f.inv.Len())

	assert.Equal(t, f.sword.Describe(), f.inv.Describe()[0])
}

func TestUseModifier(t *testing.T) {
	ctx := context.Background()

	t.Run("damage buff on matching weapon", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "whetstone", domain.EffectDamageBuff, 7.5,
			modifier.Filter{Category: domain.CategoryMelee})

		applied := f.inv.UseModifier(ctx, m)

		assert.Equal(t, 1, applied)
		assert.InDelta(t, 27.5, f.sword.Damage(), 1e-9)
		assert.Equal(t, "whetstone (+7.500000 DMG)", f.sword.ModifierLabel())
	})

	t.Run("non-matching items are untouched", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "whetstone", domain.EffectDamageBuff, 7.5,
			modifier.Filter{Category: domain.CategoryMelee})

		f.inv.UseModifier(ctx, m)

		assert.InDelta(t, 15.0, f.bow.Damage(), 1e-9)
		assert.Equal(t, domain.DefaultModifierLabel, f.bow.ModifierLabel())
		assert.InDelta(t, 4.0, f.jacket.Protection(), 1e-9)
		assert.Equal(t, domain.DefaultModifierLabel, f.jacket.ModifierLabel())
	})

	t.Run("matching item of the wrong kind keeps its stats but gets the label", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "blessing", domain.EffectDamageBuff, 5, modifier.Filter{})

		applied := f.inv.UseModifier(ctx, m)

		assert.Equal(t, 3, applied)
		assert.InDelta(t, 4.0, f.jacket.Protection(), 1e-9)
		assert.Equal(t, "blessing (+5.000000 DMG)", f.jacket.ModifierLabel())
	})

	t.Run("protection buff on common armour", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "plating", domain.EffectProtectionBuff, 3,
			modifier.Filter{Rarity: domain.RarityCommon, Category: domain.CategoryArmour})

		applied := f.inv.UseModifier(ctx, m)

		assert.Equal(t, 1, applied)
		assert.InDelta(t, 7.0, f.jacket.Protection(), 1e-9)
		assert.Equal(t, "plating (+3.000000 PROTECTION)", f.jacket.ModifierLabel())
	})

	t.Run("modifier without filters applies to nothing", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "inert", domain.EffectSpeedBuff, 1)

		assert.Equal(t, 0, f.inv.UseModifier(ctx, m))
		assert.InDelta(t, 1.0, f.sword.Speed(), 1e-9)
		assert.Equal(t, domain.DefaultModifierLabel, f.sword.ModifierLabel())
	})

	t.Run("deltas accumulate and the last label wins", func(t *testing.T) {
		f := newFixture(t)
		haste := newModifier(t, "haste", domain.EffectSpeedBuff, 0.5,
			modifier.Filter{Category: domain.CategoryRanged})
		focus := newModifier(t, "focus", domain.EffectSpeedBuff, 0.25,
			modifier.Filter{Rarity: domain.RarityRare})

		f.inv.UseModifier(ctx, haste)
		f.inv.UseModifier(ctx, focus)

		assert.InDelta(t, 2.75, f.bow.Speed(), 1e-9)
		assert.Equal(t, "focus (+0.250000 SPEED)", f.bow.ModifierLabel())
	})

	t.Run("same modifier twice stacks", func(t *testing.T) {
		f := newFixture(t)
		m := newModifier(t, "whetstone", domain.EffectDamageBuff, 1,
			modifier.Filter{Category: domain.CategoryMelee})

		f.inv.UseModifier(ctx, m)
		f.inv.UseModifier(ctx, m)

		assert.InDelta(t, 22.0, f.sword.Damage(), 1e-9)
	})
}

func TestUseModifier_Metrics(t *testing.T) {
	f := newFixture(t)
	m := newModifier(t, "haste_counted", domain.EffectSpeedBuff, 1,
		modifier.Filter{Category: domain.CategoryRanged},
		modifier.Filter{Category: domain.CategoryMelee})

	runs := metrics.ModifierRuns.WithLabelValues("haste_counted")
	applications := metrics.ModifierApplications.WithLabelValues("haste_counted", "SpeedBuff")
	ranged := metrics.ItemsModified.WithLabelValues("ranged")
	melee := metrics.ItemsModified.WithLabelValues("melee")
	armour := metrics.ItemsModified.WithLabelValues("armour")
	runsBefore := testutil.ToFloat64(runs)
	appsBefore := testutil.ToFloat64(applications)
	rangedBefore := testutil.ToFloat64(ranged)
	meleeBefore := testutil.ToFloat64(melee)
	armourBefore := testutil.ToFloat64(armour)

	f.inv.UseModifier(context.Background(), m)

	assert.Equal(t, runsBefore+1, testutil.ToFloat64(runs))
	assert.Equal(t, appsBefore+2, testutil.ToFloat64(applications))
	assert.Equal(t, rangedBefore+1, testutil.ToFloat64(ranged))
	assert.Equal(t, meleeBefore+1, testutil.ToFloat64(melee))
	assert.Equal(t, armourBefore, testutil.ToFloat64(armour), "unmatched armour is not counted")
}

func TestApplyAll(t *testing.T) {
	f := newFixture(t)

	mods := modifier.NewList()
	mods.Add(newModifier(t, "sharpen", domain.EffectDamageBuff, 2,
		modifier.Filter{Category: domain.CategoryMelee}))
	mods.Add(newModifier(t, "quiver", domain.EffectSpeedBuff, 1,
		modifier.Filter{Category: domain.CategoryRanged}))
	mods.Add(newModifier(t, "berserk", domain.EffectSpeedBuff, 3,
		modifier.Filter{Category: domain.CategoryMelee}))

	total := f.inv.ApplyAll(context.Background(), mods)

	assert.Equal(t, 3, total)
	assert.InDelta(t, 22.0, f.sword.Damage(), 1e-9)
	assert.InDelta(t, 4.0, f.sword.Speed(), 1e-9)
	assert.Equal(t, "berserk (+3.000000 SPEED)", f.sword.ModifierLabel(), "later modifier overwrites label")
	assert.InDelta(t, 3.0, f.bow.Speed(), 1e-9)
	assert.Equal(t, domain.DefaultModifierLabel, f.jacket.ModifierLabel())
}

func TestUseModifier_HighLevels(t *testing.T) {
	veteran, err := item.NewWeapon(item.WeaponParams{
		ID: "relic_01", Category: domain.CategoryMelee, Level: 1001, Rarity: domain.RarityEpic, Damage: 100, Speed: 1,
	})
	require.NoError(t, err)

	inv := New()
	inv.Add(veteran)

	m := newModifier(t, "ancient_rune", domain.EffectDamageBuff, 5, modifier.Filter{MinLevel: 1001})
	assert.Equal(t, 1, inv.UseModifier(context.Background(), m))
	assert.InDelta(t, 105.0, veteran.Damage(), 1e-9)

	out := newModifier(t, "mythic_rune", domain.EffectDamageBuff, 5, modifier.Filter{MinLevel: 5000})
	assert.Equal(t, 0, inv.UseModifier(context.Background(), out))
}
