package lesson

import (
	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/model"
	"github.com/udisondev/jxsim/internal/roster"
)

func classes(s *script, r *roster.Roster) {
	n := s.n

	s.banner("JX Game - Hero Character Creation")
	zhang := s.hero(r, "Zhang Wei", model.SectShaolin, 5)
	li := s.hero(r, "Li Mei", model.SectEmei, 10)
	if s.err != nil {
		return
	}
	s.say(n.Stats(zhang.Stats()))
	s.say(n.Action(zhang.Attack(nil))...)
	s.experience(zhang, 150)
	s.blank()
	s.say(n.Stats(li.Stats()))
	s.say(n.Action(li.Attack(nil))...)
	s.say(n.LevelUp(li.LevelUp()))
	s.say(n.Stats(li.Stats()))
	s.blank()

	s.banner("Weapon System Example")
	sword, err := model.NewWeapon(model.WeaponConfig{Name: "Excalibur", Type: "Sword", Damage: 75, Value: 300, Rarity: model.RarityEpic, Durability: model.MaxDurability})
	if s.fail(err) {
		return
	}
	staff, err := model.NewWeapon(model.WeaponConfig{Name: "Staff of Power", Type: "Magic Staff", Damage: 90, Value: 250, Rarity: model.RarityRare, Durability: 80})
	if s.fail(err) {
		return
	}
	s.say(n.ItemInfo(model.InfoOf(sword)))
	s.say(n.Item(sword.Use(nil, nil))...)
	s.say(n.Item(sword.Use(nil, nil))...)
	s.say(n.Repair(sword.Repair()))
	s.blank()
	s.say(n.ItemInfo(model.InfoOf(staff)))
	s.say(n.Item(staff.Use(nil, nil))...)
	s.blank()

	s.banner("Quest System Example")
	dragon, err := quest.New("Defeat the Dragon", quest.DifficultyHard, 1000)
	if s.fail(err) {
		return
	}
	herbs, err := quest.New("Gather Herbs", quest.DifficultyEasy, 50)
	if s.fail(err) {
		return
	}
	s.say(n.QuestStatus(dragon.Status()))
	for _, step := range []int32{50, 30, 25} {
		s.say(n.Progress(dragon.UpdateProgress(step)))
	}
	s.say(n.QuestStatus(dragon.Status()))
	s.blank()
	s.say(n.QuestStatus(herbs.Status()))
	s.say(n.Progress(herbs.UpdateProgress(100)))
	s.say(n.QuestStatus(herbs.Status()))
}

func inheritance(s *script, r *roster.Roster) {
	n := s.n

	s.banner("JX Game - Sect Inheritance Example")
	shaolin := s.hero(r, "Zhang Wei", model.SectShaolin, 5)
	emei := s.hero(r, "Li Mei", model.SectEmei, 5)
	if s.err != nil {
		return
	}
	s.damage(shaolin, 80)
	s.say(n.Action(shaolin.Attack(nil))...)
	s.say(n.Heal(shaolin.Rest()))
	s.blank()
	s.damage(emei, 120)
	s.say(n.Action(emei.Special())...)
	s.say(n.Action(emei.Special())...)
	s.blank()

	s.banner("Item Inheritance Example")
	sword, err := model.NewWeapon(model.WeaponConfig{Name: "Legendary Sword", Type: "Sword", Damage: 85, Value: 500, Rarity: model.RarityLegendary, Durability: model.MaxDurability})
	if s.fail(err) {
		return
	}
	potion, err := model.NewPotion("Greater Health Potion", 50, model.RarityRare, 150)
	if s.fail(err) {
		return
	}
	bag, err := r.Inventory(shaolin.Name())
	if s.fail(err) {
		return
	}
	s.say(n.ItemInfo(model.InfoOf(sword)))
	s.say(n.Item(sword.Use(shaolin, nil))...)
	s.say(n.Bag(bag.AddItem(sword), true))
	s.say(n.Sale(bag.Sell(sword.Name())))
	s.blank()
	s.damage(shaolin, 200)
	s.say(n.ItemInfo(model.InfoOf(potion)))
	s.say(n.Item(potion.Use(shaolin, nil))...)
	s.blank()

	s.banner("Method Overriding Example - Boss Battles")
	goblin := s.enemy(r, "Goblin Scout", model.SectGoblin, 1, 15)
	if s.err != nil {
		return
	}
	relic, err := model.NewValuable("Dragon Heart", 1000, model.RarityLegendary)
	if s.fail(err) {
		return
	}
	dragon, err := r.Boss("Ancient Dragon", 50, 100, "Dragon's Breath", relic)
	if s.fail(err) {
		return
	}
	s.say(n.Action(goblin.Attack(nil))...)
	s.say(n.Loot(goblin.Loot()))
	s.blank()
	s.say(n.Action(dragon.Attack(nil))...)
	s.say(n.Loot(dragon.Loot()))
}

func encapsulation(s *script, r *roster.Roster) {
	n := s.n

	s.banner("Encapsulation Example - Player Inventory")
	bag, err := model.NewInventory("Aragorn", 500, model.DefaultCapacity)
	if s.fail(err) {
		return
	}
	sword, err := model.NewValuable("Legendary Sword", 500, model.RarityLegendary)
	if s.fail(err) {
		return
	}
	s.say("Player: " + bag.Owner())
	s.say(n.Inventory(bag.Status()))
	s.say(n.Pool(bag.EarnGold(150)))
	s.say(n.Pool(bag.SpendGold(100)))
	s.say(n.Pool(bag.SpendGold(10000)))
	s.say(n.Bag(bag.AddItem(model.NewHealthPotion()), true))
	s.say(n.Bag(bag.AddItem(sword), true))
	s.say(n.Inventory(bag.Status()))
	s.blank()

	s.banner("Encapsulation Example - Character Stats")
	legolas := s.hero(r, "Legolas", model.SectArcher, 1)
	if s.err != nil {
		return
	}
	sheet := legolas.StatSheet()
	s.say(n.StatSheet(legolas.Name(), sheet.Snapshot()))
	s.say(n.Stat(sheet.Increase(model.StatAgility, 3), false))
	s.say(n.Stat(sheet.Increase(model.StatStrength, 2), false))
	s.say(n.Stat(sheet.Increase(model.StatStrength, 5), false))
	s.experience(legolas, 100)
	s.say(n.Stat(sheet.Increase(model.StatIntelligence, 2), false))
	s.say(n.StatSheet(legolas.Name(), sheet.Snapshot()))
	s.blank()

	s.banner("Encapsulation Example - Skill Cooldown System")
	ultimate, err := newSkill("Dragon Strike", "melee", 500, 3)
	if s.fail(err) {
		return
	}
	s.say(n.SkillStatus(ultimate.Status()))
	s.say(n.SkillUse(ultimate.Use("Zhang Wei"))...)
	s.say(n.SkillUse(ultimate.Use("Zhang Wei"))...)
	s.blank()
	for range ultimate.CooldownTurns() {
		s.say(n.Turn(ultimate.AdvanceTurn()))
	}
	s.blank()
	s.say(n.SkillUse(ultimate.Use("Zhang Wei"))...)
	s.say(n.SkillStatus(ultimate.Status()))
}
