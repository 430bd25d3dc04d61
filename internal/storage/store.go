package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	tasksFileName     = "tasks.json"
	playerFileName    = "player.json"
	inventoryFileName = "inventory.json"
)

// DefaultDataDir returns the default save location.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".rpgtask"), nil
}

// FileStore persists the three save aggregates as flat JSON files. Saves are
// explicit checkpoints; there is no background syncing.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string { return s.dir }

// LoadTasks reads tasks.json. A missing file yields an empty aggregate.
func (s *FileStore) LoadTasks() (TasksFile, error) {
	out := TasksFile{Quests: map[string]QuestState{}}
	err := s.read(tasksFileName, &out)
	if out.Quests == nil {
		out.Quests = map[string]QuestState{}
	}
	return out, err
}

func (s *FileStore) SaveTasks(f TasksFile) error {
	return s.write(tasksFileName, f)
}

// LoadPlayer reads player.json. A missing file yields a zero aggregate.
func (s *FileStore) LoadPlayer() (PlayerFile, error) {
	out := PlayerFile{Skills: map[string]SkillState{}}
	err := s.read(playerFileName, &out)
	if out.Skills == nil {
		out.Skills = map[string]SkillState{}
	}
	return out, err
}

func (s *FileStore) SavePlayer(f PlayerFile) error {
	return s.write(playerFileName, f)
}

// LoadInventory reads inventory.json. A missing file yields no slots.
func (s *FileStore) LoadInventory() (InventoryFile, error) {
	var out InventoryFile
	err := s.read(inventoryFileName, &out)
	return out, err
}

func (s *FileStore) SaveInventory(f InventoryFile) error {
	return s.write(inventoryFileName, f)
}

// SaveAll checkpoints all three aggregates.
func (s *FileStore) SaveAll(tasks TasksFile, player PlayerFile, inv InventoryFile) error {
	if err := s.SaveTasks(tasks); err != nil {
		return err
	}
	if err := s.SavePlayer(player); err != nil {
		return err
	}
	return s.SaveInventory(inv)
}

func (s *FileStore) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) write(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
