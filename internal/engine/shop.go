package engine

import (
	"github.com/klimvill/RPG-task/internal/catalog"
)

// refreshShop redraws the guild shop rotation: quests banded around the
// player's rank, and a random slice of the item catalog.
func (s *Service) refreshShop(today string) {
	var questIDs []string
	for _, q := range s.items.Quests() {
		if !q.InGuild {
			continue
		}
		rank := ParseRank(q.Rank)
		if rank >= s.player.Rank-1 && rank <= s.player.Rank+1 {
			questIDs = append(questIDs, q.ID)
		}
	}
	questPick := samplePositions(len(questIDs), s.bal.QuestShopSize, s.roller)
	picked := make([]string, 0, len(questPick))
	for _, i := range questPick {
		picked = append(picked, questIDs[i])
	}

	all := s.items.AllItemIDs()
	itemPick := samplePositions(len(all), s.bal.ItemShopSize, s.roller)
	items := make([]string, 0, len(itemPick))
	for _, i := range itemPick {
		items = append(items, all[i])
	}

	s.player.Shop = ShopRotation{Date: today, QuestIDs: picked, ItemIDs: items}
}

// QuestBoard returns today's guild quest offers.
func (s *Service) QuestBoard() ([]catalog.Quest, error) {
	out := make([]catalog.Quest, 0, len(s.player.Shop.QuestIDs))
	for _, id := range s.player.Shop.QuestIDs {
		q, err := s.items.Quest(id)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// ShopItems returns today's item shop offers.
func (s *Service) ShopItems() ([]catalog.Item, error) {
	out := make([]catalog.Item, 0, len(s.player.Shop.ItemIDs))
	for _, id := range s.player.Shop.ItemIDs {
		it, err := s.items.Item(id)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// AcceptQuest starts the quest at a 1-based position on today's board.
func (s *Service) AcceptQuest(pos int) (catalog.Quest, error) {
	board, err := s.QuestBoard()
	if err != nil {
		return catalog.Quest{}, err
	}
	if pos < 1 || pos > len(board) {
		return catalog.Quest{}, TaskNotFoundError{Pos: pos}
	}
	q := board[pos-1]
	if err := s.quests.Start(q); err != nil {
		return catalog.Quest{}, err
	}
	return q, nil
}

// BuyResult reports an item shop purchase batch.
type BuyResult struct {
	Bought  []catalog.Item
	NoGold  bool
	NoSpace bool
}

// BuyItems purchases the selected shop positions in order. The batch stops
// at the first unaffordable item; items that no longer fit are skipped.
func (s *Service) BuyItems(nums []int) (*BuyResult, error) {
	shop, err := s.ShopItems()
	if err != nil {
		return nil, err
	}

	res := &BuyResult{}
	for _, pos := range nums {
		if pos < 1 || pos > len(shop) {
			continue
		}
		item := shop[pos-1]

		if item.Cost > s.player.Gold.Balance {
			res.NoGold = true
			break
		}
		if left := s.inv.Take(item, 1); left > 0 {
			res.NoSpace = true
			continue
		}
		s.player.Gold.PayClamped(item.Cost)
		res.Bought = append(res.Bought, item)
	}
	return res, nil
}

// BuySkillLevels buys one level for each selected skill position, in order.
// Experience is a threshold, not a currency: a skill below the required
// experience is skipped, and only gold is spent. The batch stops when gold
// runs out.
func (s *Service) BuySkillLevels(nums []int) []SkillType {
	skills := s.player.Skills()

	var bought []SkillType
	for _, pos := range nums {
		if pos < 1 || pos > len(skills) {
			continue
		}
		skill := skills[pos-1]

		needExp, needGold := s.bal.PriceForLevel(skill.Level)
		if needExp > skill.Exp {
			continue
		}
		if s.player.Gold.Balance < needGold {
			break
		}

		s.player.Gold.PayClamped(needGold)
		skill.AddLevel()
		bought = append(bought, skill.Type)
	}
	return bought
}

// SellSlot sells the contents of an inventory slot at the item's sell price
// and clears the slot. Unsellable items are left alone.
func (s *Service) SellSlot(pos int) (catalog.Item, float64, error) {
	slot, err := s.inv.Slot(pos)
	if err != nil {
		return catalog.Item{}, 0, err
	}
	if slot.Empty() {
		return catalog.Item{}, 0, nil
	}
	item, err := s.items.Item(slot.ItemID)
	if err != nil {
		return catalog.Item{}, 0, err
	}
	if !item.Sellable {
		return item, 0, nil
	}

	credit := item.Sell * float64(slot.Amount)
	s.player.Gold.Add(credit)
	slot.Clear()
	return item, credit, nil
}

// EquipSlot equips or unequips the item in a slot.
func (s *Service) EquipSlot(pos int) (bool, error) {
	return s.inv.Equip(pos)
}
