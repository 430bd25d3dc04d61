package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingFilesYieldZeroState(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tasks, err := store.LoadTasks()
	require.NoError(t, err)
	require.Empty(t, tasks.UserTasks)
	require.NotNil(t, tasks.Quests)

	player, err := store.LoadPlayer()
	require.NoError(t, err)
	require.Zero(t, player.Gold)
	require.NotNil(t, player.Skills)

	inv, err := store.LoadInventory()
	require.NoError(t, err)
	require.Empty(t, inv.Slots)
}

func TestRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tasks := TasksFile{
		UserTasks: []UserTaskState{{ID: "u1", Text: "fix the shelf", Skills: []string{"craft"}}},
		Daily: DailyState{
			Tasks: []DailyTaskState{
				{ID: "d1", Done: true},
				{ID: "user_7", Text: "stretch", Skills: []string{"endurance"}},
			},
			Done: false,
			Date: "2026-01-05",
		},
		Quests: map[string]QuestState{
			"trial": {Stage: 2, DoneStages: []int{1}, Goals: []GoalState{{Damage: 2}}},
		},
	}
	player := PlayerFile{
		Name:       "lina",
		Rank:       2,
		Experience: 17,
		Gold:       3.25,
		Skills:     map[string]SkillState{"craft": {Level: 3, Exp: 0.7}},
		Shop:       ShopState{Date: "2026-01-05", Quests: []string{"trial"}, Items: []string{"cap"}},
	}
	inv := InventoryFile{Slots: []*SlotState{{ID: "cap", Amount: 1}, nil, {ID: "herb", Amount: 3}}}

	require.NoError(t, store.SaveAll(tasks, player, inv))

	gotTasks, err := store.LoadTasks()
	require.NoError(t, err)
	require.Equal(t, tasks, gotTasks)

	gotPlayer, err := store.LoadPlayer()
	require.NoError(t, err)
	require.Equal(t, player, gotPlayer)

	gotInv, err := store.LoadInventory()
	require.NoError(t, err)
	require.Equal(t, inv, gotInv)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.json"), []byte("{not json"), 0o644))
	_, err = store.LoadPlayer()
	require.Error(t, err)
}
