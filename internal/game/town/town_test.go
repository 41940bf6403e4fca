package town

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/model"
)

func newHero(t *testing.T, name string, level int32) *model.Entity {
	t.Helper()
	e, err := model.NewEntity(model.EntityConfig{Name: name, Level: level, Spec: model.NewWarrior(0)})
	require.NoError(t, err)
	return e
}

func newPurse(t *testing.T, gold int32, capacity int) *model.Inventory {
	t.Helper()
	inv, err := model.NewInventory("Conan", gold, capacity)
	require.NoError(t, err)
	return inv
}

func newTestTown(t *testing.T) *Town {
	t.Helper()
	m, err := NewMerchant("Trader Tom", model.NewHealthPotion())
	require.NoError(t, err)
	g, err := NewQuestGiver("Elder Sage", QuestOffer{Title: "Defeat the Dragon", Difficulty: quest.DifficultyHard, Reward: 1000})
	require.NoError(t, err)
	guard, err := NewGuard("Captain Marcus")
	require.NoError(t, err)
	inn, err := NewInnkeeper("Friendly Barkeep", 0)
	require.NoError(t, err)

	town := New("Riverwood")
	town.Add(m, g, guard, inn, nil)
	return town
}

func TestTown_Walk(t *testing.T) {
	town := newTestTown(t)
	hero := newHero(t, "Conan", 1)

	greetings := town.Walk(hero)
	require.Len(t, greetings, 4)

	roles := make([]Role, 0, len(greetings))
	for _, g := range greetings {
		assert.Equal(t, "Conan", g.Visitor)
		roles = append(roles, g.Role)
	}
	assert.Equal(t, []Role{RoleMerchant, RoleQuestGiver, RoleGuard, RoleInnkeeper}, roles)
	assert.Equal(t, 1, greetings[0].Offers)
	assert.Equal(t, 1, greetings[1].Offers)
	assert.False(t, greetings[2].Hostile)
	assert.Equal(t, int32(DefaultLodgingPrice), greetings[3].Price)

	n, ok := town.Find("captain marcus")
	require.True(t, ok)
	assert.Equal(t, RoleGuard, n.Role())
}

func TestGuard_TurnsAwayEnemies(t *testing.T) {
	guard, err := NewGuard("Captain Marcus")
	require.NoError(t, err)

	goblin, err := model.NewMonster(model.SectGoblin, 10)
	require.NoError(t, err)
	enemy, err := model.NewEntity(model.EntityConfig{Name: "Goblin", Level: 1, Spec: goblin})
	require.NoError(t, err)

	assert.True(t, guard.Interact(enemy).Hostile)
	assert.False(t, guard.Interact(nil).Hostile)
}

func TestMerchant_Sell(t *testing.T) {
	m, err := NewMerchant("Trader Tom", model.NewHealthPotion(), model.NewManaPotion())
	require.NoError(t, err)
	purse := newPurse(t, 100, 5)

	res := m.Sell(purse, "health potion")
	require.True(t, res.OK, "reason %s", res.Reason)
	assert.Equal(t, int32(25), res.Price)
	assert.Equal(t, int32(75), purse.Gold())
	assert.Equal(t, 1, purse.Count())
	assert.Equal(t, 1, m.Stock())

	res = m.Sell(purse, "Health Potion")
	assert.Equal(t, model.ReasonNotFound, res.Reason)
	assert.Equal(t, model.ReasonNoTarget, m.Sell(nil, "Mana Potion").Reason)
}

func TestMerchant_SellInsufficientGold(t *testing.T) {
	m, err := NewMerchant("Trader Tom", model.NewHealthPotion())
	require.NoError(t, err)
	purse := newPurse(t, 10, 5)

	res := m.Sell(purse, "Health Potion")
	assert.False(t, res.OK)
	assert.Equal(t, model.ReasonInsufficient, res.Reason)
	assert.Equal(t, int32(10), purse.Gold())
	assert.Equal(t, 1, m.Stock())
}

func TestMerchant_SellRefundsWhenBagFull(t *testing.T) {
	m, err := NewMerchant("Trader Tom", model.NewHealthPotion())
	require.NoError(t, err)
	purse := newPurse(t, 100, 1)
	require.True(t, purse.AddItem(model.NewTeleportScroll()).OK)

	res := m.Sell(purse, "Health Potion")
	assert.False(t, res.OK)
	assert.Equal(t, model.ReasonCapacity, res.Reason)
	assert.Equal(t, int32(100), purse.Gold(), "gold refunded")
	assert.Equal(t, int32(100), res.Balance)
	assert.Equal(t, 1, m.Stock(), "ware stays in stock")
}

func TestNewMerchant_NilWare(t *testing.T) {
	_, err := NewMerchant("Trader Tom", nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = NewGuard(" ")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestQuestGiver_Assign(t *testing.T) {
	g, err := NewQuestGiver("Elder Sage",
		QuestOffer{Title: "Gather Herbs", Difficulty: quest.DifficultyEasy, Reward: 50},
		QuestOffer{Title: "Defeat the Dragon", Difficulty: quest.DifficultyHard, Reward: 1000},
	)
	require.NoError(t, err)

	purse := newPurse(t, 0, 5)
	log := quest.NewLog(purse)
	require.NoError(t, log.Accept(mustQuest(t, "Gather Herbs")))

	res := g.Assign(log)
	require.True(t, res.OK)
	assert.Equal(t, "Defeat the Dragon", res.Quest.Title, "already accepted offers are skipped")

	res = g.Assign(log)
	assert.False(t, res.OK)
	assert.Equal(t, model.ReasonNotFound, res.Reason)

	log.Advance("Defeat the Dragon", 100)
	assert.Equal(t, int32(1000), purse.Gold())
}

func TestNewQuestGiver_InvalidOffer(t *testing.T) {
	_, err := NewQuestGiver("Elder Sage", QuestOffer{Title: "", Reward: 1})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestInnkeeper_Lodge(t *testing.T) {
	inn, err := NewInnkeeper("Friendly Barkeep", 0)
	require.NoError(t, err)
	hero := newHero(t, "Conan", 2)
	purse := newPurse(t, 120, 5)

	res := inn.Lodge(hero, purse)
	assert.Equal(t, model.ReasonFull, res.Reason, "healthy guests are not charged")
	assert.Equal(t, int32(120), purse.Gold())

	_, err = hero.TakeDamage(150)
	require.NoError(t, err)
	res = inn.Lodge(hero, purse)
	require.True(t, res.OK)
	assert.Equal(t, int32(150), res.Heal.Restored)
	assert.Equal(t, int32(200), hero.Health())
	assert.Equal(t, int32(70), purse.Gold())

	_, err = hero.TakeDamage(10)
	require.NoError(t, err)
	res = inn.Lodge(hero, purse)
	require.True(t, res.OK)
	_, err = hero.TakeDamage(10)
	require.NoError(t, err)
	res = inn.Lodge(hero, purse)
	assert.Equal(t, model.ReasonInsufficient, res.Reason)
	assert.Equal(t, int32(20), purse.Gold())
}

func TestInnkeeper_LodgeDefeated(t *testing.T) {
	inn, err := NewInnkeeper("Friendly Barkeep", 30)
	require.NoError(t, err)
	hero := newHero(t, "Conan", 1)
	_, err = hero.TakeDamage(500)
	require.NoError(t, err)
	purse := newPurse(t, 100, 5)

	res := inn.Lodge(hero, purse)
	assert.Equal(t, model.ReasonDefeated, res.Reason)
	assert.Equal(t, int32(100), purse.Gold())

	_, err = NewInnkeeper("x", -1)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func mustQuest(t *testing.T, title string) *quest.Quest {
	t.Helper()
	q, err := quest.New(title, quest.DifficultyEasy, 50)
	require.NoError(t, err)
	return q
}
