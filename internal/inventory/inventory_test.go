package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klimvill/RPG-task/internal/catalog"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry(map[catalog.Rarity][]catalog.Item{
		catalog.TierOne: {
			{ID: "herb", Name: "Herb", Type: catalog.TypeGeneric, Stack: 3, Sell: 0.1, Sellable: true},
			{ID: "cap", Name: "Cap", Type: catalog.TypeHelmet, Effects: map[string]float64{"intellect": 1.05}},
			{ID: "band", Name: "Band", Type: catalog.TypeRing, Effects: map[string]float64{"intellect": 1.02, "craft": 1.1}},
			{ID: "brick", Name: "Brick", Type: catalog.TypeGeneric, Stack: 1},
		},
	}, nil, nil)
	require.NoError(t, err)
	return reg
}

func TestTakeStacksBeforeEmptySlots(t *testing.T) {
	reg := testRegistry(t)
	inv := New(reg)
	herb, err := reg.Item("herb")
	require.NoError(t, err)

	require.Equal(t, 0, inv.Take(herb, 2))
	require.Equal(t, 0, inv.Take(herb, 2))
	require.Equal(t, 4, inv.Count("herb"))

	// 2 in the first stack (cap 3), so the first slot tops up before a
	// second one opens.
	require.Equal(t, 3, inv.Slots[0].Amount)
	require.Equal(t, 1, inv.Slots[1].Amount)
}

func TestTakeOverflow(t *testing.T) {
	reg := testRegistry(t)
	inv := New(reg)
	brick, err := reg.Item("brick")
	require.NoError(t, err)

	// Ten generic slots, stack size 1.
	require.Equal(t, 0, inv.Take(brick, 10))
	require.Equal(t, 3, inv.Take(brick, 3))
	require.Equal(t, 10, inv.Count("brick"))
}

func TestEquipAndUnequip(t *testing.T) {
	reg := testRegistry(t)
	inv := New(reg)
	helmet, err := reg.Item("cap")
	require.NoError(t, err)
	require.Equal(t, 0, inv.Take(helmet, 1))

	moved, err := inv.Equip(1)
	require.NoError(t, err)
	require.True(t, moved)
	require.True(t, inv.Slots[0].Empty())

	// The helmet slot is the first equipment slot.
	helmetPos := 0
	for i, slot := range inv.Slots {
		if slot.Type == catalog.TypeHelmet {
			helmetPos = i + 1
			break
		}
	}
	require.NotZero(t, helmetPos)
	require.Equal(t, "cap", inv.Slots[helmetPos-1].ItemID)

	moved, err = inv.Equip(helmetPos)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, "cap", inv.Slots[0].ItemID)
}

func TestEquipRejectsPlainItems(t *testing.T) {
	reg := testRegistry(t)
	inv := New(reg)
	herb, err := reg.Item("herb")
	require.NoError(t, err)
	require.Equal(t, 0, inv.Take(herb, 1))

	moved, err := inv.Equip(1)
	require.NoError(t, err)
	require.False(t, moved)

	moved, err = inv.Equip(2)
	require.NoError(t, err)
	require.False(t, moved, "an empty slot must not move")

	_, err = inv.Equip(99)
	require.Error(t, err)
}

func TestSkillBonusAggregates(t *testing.T) {
	reg := testRegistry(t)
	inv := New(reg)

	require.InDelta(t, 1.0, inv.SkillBonus("intellect"), 1e-9)

	for _, id := range []string{"cap", "band"} {
		item, err := reg.Item(id)
		require.NoError(t, err)
		require.Equal(t, 0, inv.Take(item, 1))
		moved, err := inv.Equip(1)
		require.NoError(t, err)
		require.True(t, moved)
	}

	// 1.05 and 1.02 stack additively on the decimal parts.
	require.InDelta(t, 1.07, inv.SkillBonus("intellect"), 1e-9)
	require.InDelta(t, 1.10, inv.SkillBonus("craft"), 1e-9)
	require.InDelta(t, 1.0, inv.SkillBonus("power"), 1e-9)
}
