package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinContentLoads(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	for _, tier := range Tiers {
		require.NotEmpty(t, reg.TierItems(tier), "tier %s has no items", tier)
	}

	for _, id := range reg.AllItemIDs() {
		item, err := reg.Item(id)
		require.NoError(t, err)
		require.NotEmpty(t, item.Name)
		require.Positive(t, item.Stack)
		require.True(t, item.Tier().IsValid())
	}

	require.NotEmpty(t, reg.Quests())
	for _, q := range reg.Quests() {
		require.NotEmpty(t, q.Name)
		_, ok := q.Stages[q.Start]
		require.True(t, ok, "quest %s start stage missing", q.ID)
	}

	require.NotEmpty(t, reg.Dailies())
}

func TestLookupErrors(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	_, err = reg.Item("no_such_item")
	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "item", nf.Kind)

	_, err = reg.Quest("no_such_quest")
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "quest", nf.Kind)
}

func TestNewRegistryValidation(t *testing.T) {
	_, err := NewRegistry(map[Rarity][]Item{
		TierOne: {{ID: "a"}, {ID: "a"}},
	}, nil, nil)
	require.Error(t, err, "duplicate ids must be rejected")

	_, err = NewRegistry(nil, []Quest{{
		ID:    "broken",
		Start: 1,
		Stages: map[int]Stage{
			1: {Goals: []GoalDef{{Kind: GoalPlain, Text: "x"}}, Next: Directive{Stage: 9}},
		},
	}}, nil)
	require.Error(t, err, "a dangling stage directive must be rejected")

	_, err = NewRegistry(nil, []Quest{{
		ID:    "noitem",
		Start: 1,
		Stages: map[int]Stage{
			1: {Goals: []GoalDef{{Kind: GoalPlain, Text: "x"}}, Next: Directive{End: true}},
		},
		Reward: QuestReward{Items: []string{"missing"}},
	}}, nil)
	require.Error(t, err, "an unresolvable reward item must be rejected")
}
