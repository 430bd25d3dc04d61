package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var contentFS embed.FS

// NotFoundError is returned when a saved state or shop rotation references
// content that no longer exists.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Registry is an explicitly constructed, read-only content lookup. It is
// passed to the engine instead of being reached through package globals so
// tests can substitute fixture content.
type Registry struct {
	items   map[string]Item
	tiers   map[Rarity][]string
	quests  map[string]Quest
	dailies []DailyDef
}

type itemsFile struct {
	Tiers map[Rarity][]Item `yaml:"tiers"`
}

type questsFile struct {
	Quests []Quest `yaml:"quests"`
}

type dailiesFile struct {
	Dailies []DailyDef `yaml:"dailies"`
}

// NewRegistry builds a registry from explicit content, mainly for tests.
func NewRegistry(byTier map[Rarity][]Item, quests []Quest, dailies []DailyDef) (*Registry, error) {
	r := &Registry{
		items:   map[string]Item{},
		tiers:   map[Rarity][]string{},
		quests:  map[string]Quest{},
		dailies: dailies,
	}

	for tier, items := range byTier {
		if !tier.IsValid() {
			return nil, fmt.Errorf("invalid rarity tier %q", tier)
		}
		for _, it := range items {
			if it.ID == "" {
				return nil, fmt.Errorf("item in tier %q has no id", tier)
			}
			if _, dup := r.items[it.ID]; dup {
				return nil, fmt.Errorf("duplicate item id %q", it.ID)
			}
			if it.Stack <= 0 {
				it.Stack = 1
			}
			if it.Type == "" {
				it.Type = TypeGeneric
			}
			it.tier = tier
			r.items[it.ID] = it
			r.tiers[tier] = append(r.tiers[tier], it.ID)
		}
		sort.Strings(r.tiers[tier])
	}

	for _, q := range quests {
		if q.ID == "" {
			return nil, fmt.Errorf("quest has no id")
		}
		if _, dup := r.quests[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id %q", q.ID)
		}
		if _, ok := q.Stages[q.Start]; !ok {
			return nil, fmt.Errorf("quest %q: start stage %d does not exist", q.ID, q.Start)
		}
		for sid, stage := range q.Stages {
			if len(stage.Goals) == 0 {
				return nil, fmt.Errorf("quest %q: stage %d has no goals", q.ID, sid)
			}
			for i, goal := range stage.Goals {
				switch goal.Kind {
				case "":
					stage.Goals[i].Kind = GoalPlain
				case GoalPlain:
				case GoalBoss:
					if goal.HP <= 0 {
						return nil, fmt.Errorf("quest %q: stage %d boss goal has no hp", q.ID, sid)
					}
				default:
					return nil, fmt.Errorf("quest %q: stage %d has unknown goal kind %q", q.ID, sid, goal.Kind)
				}
			}
			if !stage.Next.End {
				if _, ok := q.Stages[stage.Next.Stage]; !ok {
					return nil, fmt.Errorf("quest %q: stage %d advances to missing stage %d", q.ID, sid, stage.Next.Stage)
				}
			}
		}
		for _, id := range q.Reward.Items {
			if _, ok := r.items[id]; !ok {
				return nil, fmt.Errorf("quest %q: reward item %q not found", q.ID, id)
			}
		}
		r.quests[q.ID] = q
	}

	return r, nil
}

// Builtin loads the embedded content files.
func Builtin() (*Registry, error) {
	var items itemsFile
	if err := loadYAML("content/items.yaml", &items); err != nil {
		return nil, err
	}
	var quests questsFile
	if err := loadYAML("content/quests.yaml", &quests); err != nil {
		return nil, err
	}
	var dailies dailiesFile
	if err := loadYAML("content/daily.yaml", &dailies); err != nil {
		return nil, err
	}
	return NewRegistry(items.Tiers, quests.Quests, dailies.Dailies)
}

func loadYAML(path string, out any) error {
	data, err := contentFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (r *Registry) Item(id string) (Item, error) {
	it, ok := r.items[id]
	if !ok {
		return Item{}, NotFoundError{Kind: "item", ID: id}
	}
	return it, nil
}

func (r *Registry) Quest(id string) (Quest, error) {
	q, ok := r.quests[id]
	if !ok {
		return Quest{}, NotFoundError{Kind: "quest", ID: id}
	}
	return q, nil
}

// TierItems returns the item ids of a rarity tier in stable order.
func (r *Registry) TierItems(tier Rarity) []string {
	return r.tiers[tier]
}

// AllItemIDs returns every item id across tiers in stable order.
func (r *Registry) AllItemIDs() []string {
	var ids []string
	for _, tier := range Tiers {
		ids = append(ids, r.tiers[tier]...)
	}
	return ids
}

// Quests returns all quest templates in stable id order.
func (r *Registry) Quests() []Quest {
	ids := make([]string, 0, len(r.quests))
	for id := range r.quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Quest, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.quests[id])
	}
	return out
}

// Dailies returns the daily task pool.
func (r *Registry) Dailies() []DailyDef {
	return r.dailies
}
