package narrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/game/skill"
	"github.com/udisondev/jxsim/internal/game/town"
	"github.com/udisondev/jxsim/internal/model"
)

func newNarrator(t *testing.T) *Narrator {
	t.Helper()
	n, err := New("en")
	require.NoError(t, err)
	return n
}

func newEntity(t *testing.T, name string, level int32, spec model.Specialization) *model.Entity {
	t.Helper()
	e, err := model.NewEntity(model.EntityConfig{Name: name, Level: level, Spec: spec})
	require.NoError(t, err)
	return e
}

func TestNew_BadLanguage(t *testing.T) {
	_, err := New("!!")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestNarrator_GroupsThousands(t *testing.T) {
	n := newNarrator(t)
	line := n.QuestStatus(quest.Status{Title: "Defeat the Dragon", Difficulty: quest.DifficultyHard, Reward: 1000})
	assert.Equal(t, "Quest: Defeat the Dragon [Hard] - 0% - In Progress (Reward: 1,000 gold)", line)
}

func TestNarrator_Stats(t *testing.T) {
	n := newNarrator(t)
	hero := newEntity(t, "Zhang Wei", 5, model.NewShaolin(model.DefaultInnerStrength))

	assert.Equal(t,
		"Zhang Wei (Shaolin) - Level 5 | HP: 500/500 | XP: 0 | inner_strength: 50",
		n.Stats(hero.Stats()))
}

func TestNarrator_ActionAndDamage(t *testing.T) {
	n := newNarrator(t)
	hero := newEntity(t, "Zhang Wei", 5, model.NewShaolin(model.DefaultInnerStrength))
	bandit := newEntity(t, "Bandit", 1, model.NewWarrior(model.DefaultWarriorPower))

	lines := n.Action(hero.Attack(bandit))
	require.Len(t, lines, 2)
	assert.Equal(t, "Zhang Wei unleashes Dragon Strike for 125 damage!", lines[0])
	assert.Equal(t, "  Bandit takes 125 damage and is defeated!", lines[1])

	lines = n.Action(bandit.Attack(hero))
	require.Len(t, lines, 1)
	assert.Equal(t, "Bandit cannot use attack: already defeated.", lines[0])
}

func TestNarrator_ActionCost(t *testing.T) {
	n := newNarrator(t)
	mage := newEntity(t, "Gandalf", 5, model.NewMage(model.DefaultMagePower, 60))

	lines := n.Action(mage.Special())
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Meteor Storm for 150 damage")
	assert.Contains(t, lines[1], "left: 10/100")

	lines = n.Action(mage.Special())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Gandalf cannot use Meteor Storm: not enough")
}

func TestNarrator_Guard(t *testing.T) {
	n := newNarrator(t)
	hero := newEntity(t, "Zhang Wei", 5, model.NewShaolin(model.DefaultInnerStrength))

	assert.Equal(t,
		[]string{"Zhang Wei activates Iron Body, absorbing the next 50 damage!"},
		n.Action(hero.Special()))

	hit, err := hero.TakeDamage(80)
	require.NoError(t, err)
	assert.Equal(t, "Zhang Wei takes 30 damage! HP: 470/500 (50 absorbed)", n.Damage(hit))
}

func TestNarrator_LevelUpAtMax(t *testing.T) {
	n := newNarrator(t)
	hero := newEntity(t, "Li Mei", model.MaxLevel, model.NewEmei(model.DefaultChi))

	assert.Equal(t, "Li Mei cannot level up: already at the maximum level (level 1,000).", n.LevelUp(hero.LevelUp()))
}

func TestNarrator_Loot(t *testing.T) {
	n := newNarrator(t)
	sword, err := model.NewWeapon(model.WeaponConfig{Name: "Dragonslayer", Type: "Sword", Damage: 120, Value: 900, Rarity: model.RarityLegendary, Durability: 100})
	require.NoError(t, err)
	boss, err := model.NewBoss(100, "Dragon's Breath", sword)
	require.NoError(t, err)
	dragon := newEntity(t, "Ancient Dragon", 20, boss)

	assert.Equal(t, "Ancient Dragon dropped 500 gold and Dragonslayer (Legendary)!", n.Loot(dragon.Loot()))
	assert.Equal(t,
		[]string{"Ancient Dragon unleashes Dragon's Breath for 200 damage!"},
		n.Action(dragon.Attack(nil)))

	hero := newEntity(t, "Li Mei", 1, model.NewEmei(model.DefaultChi))
	assert.Equal(t, "Li Mei has nothing to drop.", n.Loot(hero.Loot()))
}

func TestNarrator_Economy(t *testing.T) {
	n := newNarrator(t)
	inv, err := model.NewInventory("Aragorn", 500, 2)
	require.NoError(t, err)

	assert.Equal(t, "Earned 150 gold. Total: 650", n.Pool(inv.EarnGold(150)))
	assert.Equal(t, "Spent 100 gold. Remaining: 550", n.Pool(inv.SpendGold(100)))
	assert.Equal(t, "Cannot spend 10,000 gold: not enough. Balance: 550", n.Pool(inv.SpendGold(10000)))
	assert.Equal(t, "Added Health Potion to inventory (1/2)", n.Bag(inv.AddItem(model.NewHealthPotion()), true))
	assert.Equal(t, "Aragorn - Gold: 550 | Items: 1/2", n.Inventory(inv.Status()))
	assert.Equal(t, "Sold Health Potion for 25 gold. Total: 575", n.Sale(inv.Sell("Health Potion")))
	assert.Equal(t, "Cannot sell Health Potion: not found.", n.Sale(inv.Sell("Health Potion")))
}

func TestNarrator_Stat(t *testing.T) {
	n := newNarrator(t)
	sheet := model.NewStatSheet()

	assert.Equal(t, "Agility increased to 13 (points left: 2)", n.Stat(sheet.Increase(model.StatAgility, 3), false))
	assert.Equal(t, "Not enough stat points! Available: 2", n.Stat(sheet.Increase(model.StatStrength, 5), false))
	assert.Equal(t, "Level up! Gained 3 stat points (available: 5)", n.Stat(sheet.Reward(3), true))
	assert.Equal(t, "Legolas - STR: 10 | AGI: 13 | INT: 10 | Points: 5", n.StatSheet("Legolas", sheet.Snapshot()))
}

func TestNarrator_Items(t *testing.T) {
	n := newNarrator(t)
	sword, err := model.NewWeapon(model.WeaponConfig{Name: "Excalibur", Type: "Sword", Damage: 75, Durability: 100})
	require.NoError(t, err)

	assert.Equal(t, []string{"Excalibur strikes for 75 damage!", "  Durability: 90%"}, n.Item(sword.Use(nil, nil)))
	assert.Equal(t, "Excalibur repaired to 100% durability", n.Repair(sword.Repair()))
	assert.Equal(t, "Excalibur [Common] - Value: 0 gold", n.ItemInfo(model.InfoOf(sword)))

	hero := newEntity(t, "Conan", 5, model.NewWarrior(model.DefaultWarriorPower))
	assert.Equal(t, []string{"Read Teleport Scroll! Teleported to town"}, n.Item(model.NewTeleportScroll().Use(hero, nil)))
	assert.Equal(t, []string{"Cannot use Mana Potion: cannot be used that way."}, n.Item(model.NewManaPotion().Use(hero, nil)))
}

func TestNarrator_Skill(t *testing.T) {
	n := newNarrator(t)
	s, err := skill.New("Dragon Strike", skill.KindMelee, 500, 3)
	require.NoError(t, err)

	lines := n.SkillUse(s.Use("Zhang Wei"))
	assert.Equal(t, "Zhang Wei uses Dragon Strike: a close-range strike with 500 power!", lines[0])
	assert.Equal(t, []string{"Dragon Strike is on cooldown! 3 turns remaining"}, n.SkillUse(s.Use("Zhang Wei")))
	assert.Equal(t, "Dragon Strike cooldown: 2 turns remaining", n.Turn(s.AdvanceTurn()))
	s.AdvanceTurn()
	assert.Equal(t, "Dragon Strike is ready to use!", n.Turn(s.AdvanceTurn()))
	assert.Equal(t, "Dragon Strike (Melee, 500 power): Ready", n.SkillStatus(s.Status()))
}

func TestNarrator_Quest(t *testing.T) {
	n := newNarrator(t)
	q, err := quest.New("Gather Herbs", quest.DifficultyEasy, 50)
	require.NoError(t, err)

	assert.Equal(t, "Quest progress: 40%", n.Progress(q.UpdateProgress(40)))
	assert.Equal(t, "Quest 'Gather Herbs' completed! Earned 50 gold", n.Progress(q.UpdateProgress(60)))
	assert.Equal(t, "Quest 'Gather Herbs': already completed.", n.Progress(q.UpdateProgress(1)))
}

func TestNarrator_Town(t *testing.T) {
	n := newNarrator(t)
	inn, err := town.NewInnkeeper("Friendly Barkeep", 0)
	require.NoError(t, err)
	guard, err := town.NewGuard("Captain Marcus")
	require.NoError(t, err)

	assert.Equal(t, "Friendly Barkeep: 'Rest here for 50 gold and restore your health.'", n.Greeting(inn.Interact(nil)))
	assert.Equal(t, "Captain Marcus: 'Halt! State your business in this city.'", n.Greeting(guard.Interact(nil)))

	goblin, err := model.NewMonster(model.SectGoblin, 5)
	require.NoError(t, err)
	enemy := newEntity(t, "Sneaky Goblin", 3, goblin)
	assert.Equal(t, "Captain Marcus: 'You shall not pass, Sneaky Goblin!'", n.Greeting(guard.Interact(enemy)))
}
