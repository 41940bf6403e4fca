package lesson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/jxsim/internal/config"
	"github.com/udisondev/jxsim/internal/model"
	"github.com/udisondev/jxsim/internal/narrate"
	"github.com/udisondev/jxsim/internal/roster"
)

func newEnv(t *testing.T) Env {
	t.Helper()
	n, err := narrate.New("en")
	require.NoError(t, err)
	return Env{Roster: roster.New(config.Default()), Narrator: n}
}

func play(t *testing.T, name string) string {
	t.Helper()
	l, ok := Lookup(name)
	require.True(t, ok, "lesson %s", name)
	lines, err := l.Run(newEnv(t))
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	return strings.Join(lines, "\n")
}

func TestAll_MatchesDefaultLessons(t *testing.T) {
	names := make([]string, 0, len(All()))
	for _, l := range All() {
		names = append(names, l.Name)
	}
	assert.Equal(t, config.DefaultLessons(), names)
}

func TestSelect(t *testing.T) {
	got, err := Select([]string{"Homework", "classes"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "homework", got[0].Name)

	_, err = Select([]string{"classes", "alchemy"})
	assert.ErrorIs(t, err, ErrUnknownLesson)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestRun_NeedsEnv(t *testing.T) {
	l, ok := Lookup("classes")
	require.True(t, ok)
	_, err := l.Run(Env{})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestClasses(t *testing.T) {
	out := play(t, "classes")
	assert.Contains(t, out, "Zhang Wei unleashes Dragon Strike for 125 damage!")
	assert.Contains(t, out, "Zhang Wei reached level 6! Max HP: 600")
	assert.Contains(t, out, "Li Mei reached level 11! Max HP: 1,100")
	assert.Contains(t, out, "Excalibur repaired to 100% durability")
	assert.Contains(t, out, "Quest progress: 80%")
	assert.Contains(t, out, "Quest 'Defeat the Dragon' completed! Earned 1,000 gold")
	assert.Contains(t, out, "Quest 'Gather Herbs' completed! Earned 50 gold")
}

func TestInheritance(t *testing.T) {
	out := play(t, "inheritance")
	assert.Contains(t, out, "Zhang Wei takes 80 damage! HP: 420/500")
	assert.Contains(t, out, "Li Mei casts Healing Light!")
	assert.Contains(t, out, "chi left: 40/100")
	assert.Contains(t, out, "Sold Legendary Sword for 500 gold. Total: 600")
	assert.Contains(t, out, "Goblin Scout attacks for 15 damage!")
	assert.Contains(t, out, "Ancient Dragon unleashes Dragon's Breath for 200 damage!")
	assert.Contains(t, out, "Ancient Dragon dropped 500 gold and Dragon Heart (Legendary)!")
}

func TestEncapsulation(t *testing.T) {
	out := play(t, "encapsulation")
	assert.Contains(t, out, "Cannot spend 10,000 gold: not enough. Balance: 550")
	assert.Contains(t, out, "Aragorn - Gold: 550 | Items: 2/20")
	assert.Contains(t, out, "Not enough stat points! Available: 0")
	assert.Contains(t, out, "Legolas - STR: 12 | AGI: 13 | INT: 12 | Points: 1")
	assert.Contains(t, out, "Dragon Strike is on cooldown! 3 turns remaining")
	assert.Contains(t, out, "Dragon Strike is ready to use!")
}

func TestPolymorphism(t *testing.T) {
	out := play(t, "polymorphism")
	assert.Contains(t, out, "Conan swings a mighty sword for 100 damage!")
	assert.Contains(t, out, "Gandalf casts a devastating fireball for 135 damage!")
	assert.Contains(t, out, "Legolas shoots a precise arrow for 80 damage!")
	assert.Contains(t, out, "Dark Sorcerer summons 3 undead minions!")
	assert.Contains(t, out, "Mountain Troll regenerates health rapidly!")
	assert.Contains(t, out, "Read Teleport Scroll! Teleported to town")
	assert.Contains(t, out, "Captain Marcus: 'Halt! State your business in this city.'")
	assert.Contains(t, out, "Quest 'Clear the Troll Bridge' completed! Earned 150 gold")
	assert.Contains(t, out, "Conan - Gold: 175 | Items: 1/20")
}

func TestHomework(t *testing.T) {
	out := play(t, "homework")
	assert.Contains(t, out, "Wei Lan reached level 3! Max HP: 300")
	assert.Contains(t, out, "Mei Hua restores 80 HP! HP: 130/200")
	assert.Contains(t, out, "Chen Yu gracefully evades the attack!")
	assert.Contains(t, out, "Li Mei cannot use Healing Light: not enough chi (10/100).")
	assert.Contains(t, out, "Restored 50 chi. Now: 60/100")
	assert.Contains(t, out, "Removed Health Potion from inventory (0/20)")
	assert.Contains(t, out, "Battle Cry cooldown: 2 turns remaining")
	assert.True(t, strings.HasSuffix(out, "All tests completed!"))
}
