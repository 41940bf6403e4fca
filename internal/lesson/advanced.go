package lesson

import (
	"fmt"

	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/game/skill"
	"github.com/udisondev/jxsim/internal/game/town"
	"github.com/udisondev/jxsim/internal/model"
	"github.com/udisondev/jxsim/internal/roster"
)

func newSkill(name, kind string, power, cooldown int32) (*skill.Skill, error) {
	k, err := skill.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return skill.New(name, k, power, cooldown)
}

func polymorphism(s *script, r *roster.Roster) {
	n := s.n

	s.banner("Polymorphism Example - Hero Attacks")
	party, err := r.Recruit(
		roster.Member{Name: "Conan", Sect: "Warrior", Level: 5},
		roster.Member{Name: "Gandalf", Sect: "Mage", Level: 5},
		roster.Member{Name: "Legolas", Sect: "Archer", Level: 5},
	)
	if s.fail(err) {
		return
	}
	troll := s.enemy(r, "Mountain Troll", model.SectTroll, 10, 30)
	if s.err != nil {
		return
	}
	s.say("Battle begins! All heroes attack:")
	for _, hero := range party {
		s.say(n.Stats(hero.Stats()))
		s.say(n.Action(hero.Attack(troll))...)
		s.blank()
	}

	s.banner("Polymorphism Example - Enemy Abilities")
	enemies := []*model.Entity{
		s.enemy(r, "Sneaky Goblin", model.SectGoblin, 3, 8),
		s.enemy(r, "Ancient Dragon", model.SectDragon, 20, 100),
		s.enemy(r, "Dark Sorcerer", model.SectNecromancer, 15, 40),
		troll,
	}
	if s.err != nil {
		return
	}
	s.say("Enemies use their special abilities:")
	for _, enemy := range enemies {
		s.say(n.Action(enemy.Special(party...))...)
	}
	s.blank()

	s.banner("Polymorphism Example - Item Usage")
	conan, gandalf := party[0], party[1]
	bag, err := r.Inventory(conan.Name())
	if s.fail(err) {
		return
	}
	for _, it := range []model.Item{model.NewHealthPotion(), model.NewManaPotion(), model.NewFireScroll(), model.NewTeleportScroll()} {
		s.fail(errIfRejected(bag.AddItem(it)))
	}
	if s.err != nil {
		return
	}
	s.say(n.Action(gandalf.Special(troll))...)
	s.say("Using items from inventory:")
	s.say(n.Item(bag.UseItem("Health Potion", conan, nil))...)
	s.say(n.Item(bag.UseItem("Mana Potion", gandalf, nil))...)
	s.say(n.Item(bag.UseItem("Scroll of Fireball", conan, troll))...)
	s.say(n.Item(bag.UseItem("Teleport Scroll", conan, nil))...)
	s.say(n.Inventory(bag.Status()))
	s.blank()

	s.banner("Polymorphism Example - NPC Interactions")
	riverwood, giver, merchant, inn := newTown(s)
	if s.err != nil {
		return
	}
	s.say("Walking through town and talking to NPCs:")
	for _, g := range riverwood.Walk(conan) {
		s.say(n.Greeting(g))
	}
	s.blank()
	s.say(n.Purchase(merchant.Sell(bag, "Health Potion")))
	journal := quest.NewLog(bag)
	s.say(n.Assignment(giver.Assign(journal)))
	s.say(n.Advance(journal.Advance("Clear the Troll Bridge", 100))...)
	s.say(n.Lodging(inn.Lodge(conan, bag)))
	s.say(n.Inventory(bag.Status()))
}

func newTown(s *script) (*town.Town, *town.QuestGiver, *town.Merchant, *town.Innkeeper) {
	merchant, err := town.NewMerchant("Trader Tom", model.NewHealthPotion(), model.NewManaPotion())
	if s.fail(err) {
		return nil, nil, nil, nil
	}
	giver, err := town.NewQuestGiver("Elder Sage", town.QuestOffer{Title: "Clear the Troll Bridge", Difficulty: quest.DifficultyNormal, Reward: 150})
	if s.fail(err) {
		return nil, nil, nil, nil
	}
	guard, err := town.NewGuard("Captain Marcus")
	if s.fail(err) {
		return nil, nil, nil, nil
	}
	inn, err := town.NewInnkeeper("Friendly Barkeep", town.DefaultLodgingPrice)
	if s.fail(err) {
		return nil, nil, nil, nil
	}
	t := town.New("Riverwood")
	t.Add(merchant, giver, guard, inn)
	return t, giver, merchant, inn
}

func errIfRejected(b model.BagResult) error {
	if b.OK {
		return nil
	}
	return fmt.Errorf("add %s to bag: %s", b.Item, b.Reason)
}

func homework(s *script, r *roster.Roster) {
	n := s.n

	s.banner("Part 1: Classes and Objects Test")
	wei := s.hero(r, "Wei Lan", model.SectShaolin, 1)
	mei := s.hero(r, "Mei Hua", model.SectEmei, 1)
	if s.err != nil {
		return
	}
	s.experience(wei, 250)
	s.say(n.LevelUp(mei.LevelUp()))
	s.damage(mei, 150)
	if s.err != nil {
		return
	}
	heal, err := mei.Heal(80)
	if s.fail(err) {
		return
	}
	s.say(n.Heal(heal))
	s.say(n.Stats(wei.Stats()), n.Stats(mei.Stats()))
	s.blank()

	s.banner("Part 2: Inheritance Test")
	shaolin := s.hero(r, "Zhang Wei", model.SectShaolin, 3)
	wudang := s.hero(r, "Chen Yu", model.SectWudang, 3)
	emei := s.hero(r, "Li Mei", model.SectEmei, 3)
	if s.err != nil {
		return
	}
	s.say(n.Action(shaolin.Special())...)
	s.damage(shaolin, 80)
	s.say(n.Action(wudang.Attack(nil))...)
	s.say(n.Action(wudang.Special())...)
	s.damage(wudang, 120)
	s.damage(emei, 100)
	s.say(n.Action(emei.Special(shaolin))...)
	s.say(n.Action(emei.Special())...)
	s.say(n.Action(emei.Special())...)
	s.say(n.Action(emei.Special())...)
	if chi, ok := emei.Spec().(*model.Emei); ok {
		s.say(n.Pool(chi.RestoreChi()))
	}
	s.blank()

	s.banner("Part 3: Encapsulation Test")
	bag, err := r.Inventory(shaolin.Name())
	if s.fail(err) {
		return
	}
	s.say(n.Pool(bag.EarnGold(50)))
	s.say(n.Pool(bag.EarnGold(-5)))
	s.say(n.Pool(bag.SpendGold(500)))
	s.say(n.Bag(bag.AddItem(model.NewHealthPotion()), true))
	s.say(n.Bag(bag.RemoveItem("Health Potion"), false))
	s.say(n.Bag(bag.RemoveItem("Health Potion"), false))
	s.say(n.Inventory(bag.Status()))
	s.blank()

	s.banner("Part 4: Polymorphism Test")
	book := skill.NewBook()
	for _, sk := range []struct {
		name, kind      string
		power, cooldown int32
	}{
		{"Shaolin Fist", "melee", 40, 0},
		{"Flying Dagger", "ranged", 35, 1},
		{"Lotus Bloom", "healing", 60, 2},
		{"Battle Cry", "buff", 10, 3},
	} {
		learned, err := newSkill(sk.name, sk.kind, sk.power, sk.cooldown)
		if s.fail(err) {
			return
		}
		if s.fail(book.Learn(learned)) {
			return
		}
	}
	bandit := s.enemy(r, "Mountain Bandit", model.SectGoblin, 2, 10)
	if s.err != nil {
		return
	}
	for _, st := range book.Statuses() {
		target := bandit
		if st.Kind == skill.KindHealing {
			target = nil
		}
		s.say(n.SkillUse(book.Cast(st.Name, shaolin, target))...)
	}
	for _, tr := range book.AdvanceTurn() {
		s.say(n.Turn(tr))
	}
	s.blank()
	s.say("All tests completed!")
}
