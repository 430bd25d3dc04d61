package inventory

import (
	"fmt"

	"github.com/klimvill/RPG-task/internal/catalog"
)

// Slot is one inventory cell. Equipment slots accept a single item type;
// generic slots hold stacks of anything.
type Slot struct {
	Type   catalog.ItemType
	ItemID string
	Amount int
}

func (s *Slot) Empty() bool {
	if s.Amount == 0 {
		s.ItemID = ""
	}
	if s.ItemID == "" {
		s.Amount = 0
	}
	return s.Amount == 0
}

func (s *Slot) Clear() {
	s.ItemID = ""
	s.Amount = 0
}

// Swap exchanges the contents of two slots. Used by equip/unequip.
func (s *Slot) Swap(other *Slot) {
	s.ItemID, other.ItemID = other.ItemID, s.ItemID
	s.Amount, other.Amount = other.Amount, s.Amount
}

// carrierSize is the number of generic stack slots a player carries.
const carrierSize = 10

// equipmentLayout is the fixed equipment slot order after the generic slots.
var equipmentLayout = []catalog.ItemType{
	catalog.TypeHelmet,
	catalog.TypeBreastplate,
	catalog.TypeLeggings,
	catalog.TypeBoots,
	catalog.TypeWeapon,
	catalog.TypeRing,
	catalog.TypeRing,
	catalog.TypeAmulet,
}

// Inventory is the player's slot set: generic stacks first, then one slot
// per equipment piece (two rings).
type Inventory struct {
	Slots []*Slot

	items *catalog.Registry
}

func New(items *catalog.Registry) *Inventory {
	inv := &Inventory{items: items}
	for i := 0; i < carrierSize; i++ {
		inv.Slots = append(inv.Slots, &Slot{Type: catalog.TypeGeneric})
	}
	for _, t := range equipmentLayout {
		inv.Slots = append(inv.Slots, &Slot{Type: t})
	}
	return inv
}

// Take adds qty of an item to generic slots, filling stacks before empty
// cells, and returns the leftover that did not fit.
func (inv *Inventory) Take(item catalog.Item, qty int) int {
	stack := item.Stack
	if stack <= 0 {
		stack = 1
	}

	for _, slot := range inv.Slots {
		if slot.Type != catalog.TypeGeneric {
			continue
		}
		switch {
		case slot.Empty():
			n := min(stack, qty)
			slot.ItemID = item.ID
			slot.Amount = n
			qty -= n
		case slot.ItemID == item.ID:
			n := min(stack-slot.Amount, qty)
			slot.Amount += n
			qty -= n
		}
		if qty == 0 {
			break
		}
	}
	return qty
}

// Count returns how many of an item the inventory holds, across all slots.
func (inv *Inventory) Count(itemID string) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID {
			total += slot.Amount
		}
	}
	return total
}

// Slot returns the slot at a 1-based position.
func (inv *Inventory) Slot(pos int) (*Slot, error) {
	if pos < 1 || pos > len(inv.Slots) {
		return nil, fmt.Errorf("slot %d not found", pos)
	}
	return inv.Slots[pos-1], nil
}

// Equip moves the item in a generic slot to a matching empty equipment slot,
// or takes an equipped item back off into an empty generic slot. It reports
// whether anything moved.
func (inv *Inventory) Equip(pos int) (bool, error) {
	slot, err := inv.Slot(pos)
	if err != nil {
		return false, err
	}
	if slot.Empty() {
		return false, nil
	}

	if slot.Type == catalog.TypeGeneric {
		item, err := inv.items.Item(slot.ItemID)
		if err != nil {
			return false, err
		}
		if !item.Type.Wearable() {
			return false, nil
		}
		if target := inv.emptySlotOfType(item.Type); target != nil {
			target.Swap(slot)
			return true, nil
		}
		return false, nil
	}

	// Unequip back into a free generic slot.
	if target := inv.emptySlotOfType(catalog.TypeGeneric); target != nil {
		target.Swap(slot)
		return true, nil
	}
	return false, nil
}

func (inv *Inventory) emptySlotOfType(t catalog.ItemType) *Slot {
	for _, slot := range inv.Slots {
		if slot.Type == t && slot.Empty() {
			return slot
		}
	}
	return nil
}

// SkillBonus aggregates the multiplicative experience bonus of every
// equipped item for a skill, in decimal form: no effects means 1.0, a 1.03
// item contributes +0.03, a 0.9 item contributes -0.1.
func (inv *Inventory) SkillBonus(skill string) float64 {
	result := 1.0
	for _, slot := range inv.Slots {
		if slot.Type == catalog.TypeGeneric || slot.Empty() {
			continue
		}
		item, err := inv.items.Item(slot.ItemID)
		if err != nil {
			continue
		}
		if eff, ok := item.Effects[skill]; ok {
			result += eff - 1.0
		}
	}
	return result
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
