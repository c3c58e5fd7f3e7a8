package inventory

import (
	"context"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/item"
	"github.com/osse101/gameitems/internal/logger"
	"github.com/osse101/gameitems/internal/metrics"
	"github.com/osse101/gameitems/internal/modifier"
)

// Inventory is an ordered, append-only collection of items.
// It owns its items and mutates them in place when modifiers are applied.
type Inventory struct {
	items []item.Item
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{}
}

// Add appends it to the end of the inventory
func (inv *Inventory) Add(it item.Item) {
	inv.items = append(inv.items, it)
}

// Items returns the items in insertion order. The slice is a copy; the items are not.
func (inv *Inventory) Items() []item.Item {
	out := make([]item.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of items in the inventory
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Describe returns one description line per item in insertion order
func (inv *Inventory) Describe() []string {
	lines := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		lines = append(lines, it.Describe())
	}
	return lines
}

// UseModifier applies m to every item matching at least one of its filters,
// in insertion order, and returns the number of items it was applied to.
// Stat deltas accumulate across calls; the item label is overwritten.
func (inv *Inventory) UseModifier(ctx context.Context, m *modifier.Modifier) int {
	label := m.Label()
	effect := m.Effect()

	metrics.ModifierRuns.WithLabelValues(m.ID()).Inc()

	applied := 0
	for _, it := range inv.items {
		if !m.CheckFilters(it) {
			continue
		}

		switch effect {
		case domain.EffectDamageBuff:
			it.ApplyDamage(m.Magnitude())
		case domain.EffectSpeedBuff:
			it.ApplySpeed(m.Magnitude())
		case domain.EffectProtectionBuff:
			it.ApplyProtection(m.Magnitude())
		}
		it.SetModifierLabel(label)

		metrics.ModifierApplications.WithLabelValues(m.ID(), string(effect)).Inc()
		metrics.ItemsModified.WithLabelValues(string(it.Category())).Inc()
		applied++
	}

	logger.FromContext(ctx).Debug(LogMsgModifierApplied,
		"modifier", m.ID(),
		"effect", effect,
		"items", applied)

	return applied
}

// ApplyAll runs every modifier of mods against the whole inventory in list order
// and returns the total number of applications.
func (inv *Inventory) ApplyAll(ctx context.Context, mods *modifier.List) int {
	total := 0
	for _, m := range mods.All() {
		total += inv.UseModifier(ctx, m)
	}

	logger.FromContext(ctx).Info(LogMsgAllApplied,
		"modifiers", mods.Len(),
		"items", inv.Len(),
		"applications", total)

	return total
}
