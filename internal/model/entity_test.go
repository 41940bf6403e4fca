package model

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHero -- хелпер: Shaolin заданного уровня.
func newTestHero(t *testing.T, name string, level int32) *Entity {
	t.Helper()
	e, err := NewEntity(EntityConfig{Name: name, Level: level, Spec: NewShaolin(DefaultInnerStrength)})
	require.NoError(t, err, "NewEntity(%s, %d)", name, level)
	return e
}

func TestNewEntity(t *testing.T) {
	e := newTestHero(t, "Zhang Wei", 5)

	assert.Equal(t, "Zhang Wei", e.Name())
	assert.Equal(t, int32(5), e.Level())
	assert.Equal(t, int32(500), e.Health())
	assert.Equal(t, int32(500), e.MaxHealth())
	assert.Equal(t, int32(0), e.Experience())
	assert.True(t, e.IsAlive())
	assert.Equal(t, SectShaolin, e.Sect())
	assert.NotEqual(t, e.ID(), newTestHero(t, "Zhang Wei", 5).ID(), "same name must get different ids")
}

func TestNewEntity_DefaultLevel(t *testing.T) {
	e, err := NewEntity(EntityConfig{Name: "Li Mei", Spec: NewEmei(DefaultChi)})
	require.NoError(t, err)
	assert.Equal(t, int32(1), e.Level())
	assert.Equal(t, int32(100), e.MaxHealth())
}

func TestNewEntity_InvalidArgument(t *testing.T) {
	bound := NewWudang(DefaultSwordMastery)
	_, err := NewEntity(EntityConfig{Name: "owner", Spec: bound})
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  EntityConfig
	}{
		{name: "empty name", cfg: EntityConfig{Name: "", Spec: NewShaolin(1)}},
		{name: "blank name", cfg: EntityConfig{Name: "   ", Spec: NewShaolin(1)}},
		{name: "negative level", cfg: EntityConfig{Name: "x", Level: -1, Spec: NewShaolin(1)}},
		{name: "nil spec", cfg: EntityConfig{Name: "x", Level: 1}},
		{name: "spec already owned", cfg: EntityConfig{Name: "thief", Spec: bound}},
		{name: "level overflow", cfg: EntityConfig{Name: "x", Level: 1 << 30, Spec: NewShaolin(1)}},
		{name: "level above max", cfg: EntityConfig{Name: "x", Level: MaxLevel + 1, Spec: NewShaolin(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntity(tt.cfg)
			assert.Nil(t, e)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "err = %v", err)
		})
	}
}

func TestEntity_TakeDamage(t *testing.T) {
	e := newTestHero(t, "Zhang Wei", 5)

	res, err := e.TakeDamage(80)
	require.NoError(t, err)
	assert.Equal(t, int32(80), res.Dealt)
	assert.Equal(t, int32(420), res.Health)
	assert.False(t, res.Defeated)
	assert.Equal(t, int32(420), e.Health())
	assert.True(t, e.IsAlive())
}

func TestEntity_TakeDamage_Floor(t *testing.T) {
	e := newTestHero(t, "Goblin Bait", 1)

	res, err := e.TakeDamage(250)
	require.NoError(t, err)
	assert.True(t, res.Defeated)
	assert.True(t, res.Finished)
	assert.Equal(t, int32(0), e.Health())
	assert.False(t, e.IsAlive())

	// Повторный урон не меняет здоровье и не повторяет переход.
	res, err = e.TakeDamage(10)
	require.NoError(t, err)
	assert.True(t, res.Defeated)
	assert.False(t, res.Finished)
	assert.Equal(t, int32(0), e.Health())
}

func TestEntity_TakeDamage_Negative(t *testing.T) {
	e := newTestHero(t, "x", 1)
	_, err := e.TakeDamage(-5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, int32(100), e.Health())
}

func TestEntity_Heal(t *testing.T) {
	e := newTestHero(t, "x", 2)
	_, err := e.TakeDamage(50)
	require.NoError(t, err)

	res, err := e.Heal(500)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, int32(50), res.Restored)
	assert.Equal(t, int32(200), e.Health(), "heal is clamped to max health")

	_, err = e.Heal(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEntity_Heal_Defeated(t *testing.T) {
	e := newTestHero(t, "x", 1)
	_, err := e.TakeDamage(100)
	require.NoError(t, err)

	res, err := e.Heal(50)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonDefeated, res.Reason)
	assert.Equal(t, int32(0), e.Health())
}

func TestEntity_Rest(t *testing.T) {
	e := newTestHero(t, "x", 5)
	_, err := e.TakeDamage(120)
	require.NoError(t, err)

	res := e.Rest()
	assert.True(t, res.OK)
	assert.Equal(t, int32(100), res.Requested, "rest heals level×20")
	assert.Equal(t, int32(100), res.Restored)
	assert.Equal(t, int32(480), e.Health())

	res = e.Rest()
	assert.Equal(t, int32(20), res.Restored)
	assert.Equal(t, int32(500), e.Health())
}

func TestEntity_LevelUp(t *testing.T) {
	e := newTestHero(t, "Li Mei", 10)
	_, err := e.TakeDamage(300)
	require.NoError(t, err)
	_, err = e.GainExperience(40)
	require.NoError(t, err)

	res := e.LevelUp()
	assert.Equal(t, int32(11), res.Level)
	assert.Equal(t, int32(1100), res.MaxHealth)
	assert.Equal(t, int32(1100), e.Health())
	assert.Equal(t, int32(0), e.Experience(), "explicit level up resets experience")
	assert.Equal(t, int32(BaseStatPoints+3), res.StatPoints)
}

func TestEntity_GainExperience(t *testing.T) {
	tests := []struct {
		name      string
		gains     []int32
		wantLevel int32
		wantXP    int32
		wantUps   int
	}{
		{name: "below threshold", gains: []int32{40, 50}, wantLevel: 1, wantXP: 90},
		{name: "exact threshold", gains: []int32{100}, wantLevel: 2, wantXP: 0, wantUps: 1},
		{name: "carry remainder", gains: []int32{150}, wantLevel: 2, wantXP: 50, wantUps: 1},
		{name: "multiple levels", gains: []int32{60, 260}, wantLevel: 4, wantXP: 20, wantUps: 3},
		{name: "zero gain", gains: []int32{0}, wantLevel: 1, wantXP: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestHero(t, "x", 1)
			ups := 0
			for _, xp := range tt.gains {
				res, err := e.GainExperience(xp)
				require.NoError(t, err)
				ups += len(res.LevelUps)
			}
			assert.Equal(t, tt.wantLevel, e.Level())
			assert.Equal(t, tt.wantXP, e.Experience())
			assert.Equal(t, tt.wantUps, ups)
			assert.Equal(t, e.Level()*100, e.MaxHealth())
			assert.Equal(t, e.MaxHealth(), e.Health())
		})
	}
}

func TestEntity_GainExperience_Negative(t *testing.T) {
	e := newTestHero(t, "x", 1)
	_, err := e.GainExperience(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEntity_CustomProgression(t *testing.T) {
	e, err := NewEntity(EntityConfig{
		Name:        "x",
		Level:       2,
		Spec:        NewShaolin(0),
		Progression: Progression{HealthPerLevel: 50, XPPerLevel: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(100), e.MaxHealth())

	res, err := e.GainExperience(25)
	require.NoError(t, err)
	assert.Len(t, res.LevelUps, 2)
	assert.Equal(t, int32(200), e.MaxHealth())
	assert.Equal(t, int32(5), e.Experience())
}

func TestEntity_HealthInvariant(t *testing.T) {
	e := newTestHero(t, "x", 3)
	ops := []func(){
		func() { _, _ = e.TakeDamage(45) },
		func() { _, _ = e.Heal(1000) },
		func() { e.LevelUp() },
		func() { _, _ = e.TakeDamage(10_000) },
		func() { _, _ = e.Heal(10) },
		func() { e.LevelUp() },
		func() { e.Rest() },
	}
	for i, op := range ops {
		op()
		st := e.Stats()
		assert.GreaterOrEqual(t, st.Health, int32(0), "op %d", i)
		assert.LessOrEqual(t, st.Health, st.MaxHealth, "op %d", i)
	}
}

func TestEntity_GainExperience_MaxInt32(t *testing.T) {
	e := newTestHero(t, "x", 1)

	res, err := e.GainExperience(math.MaxInt32)
	require.NoError(t, err)
	assert.Len(t, res.LevelUps, MaxLevel-1)
	assert.Equal(t, int32(MaxLevel), e.Level())
	assert.Equal(t, int32(MaxLevel*100), e.MaxHealth())
	assert.Equal(t, e.MaxHealth(), e.Health())
	assert.Equal(t, int32(math.MaxInt32-(MaxLevel-1)*100), e.Experience(), "leftover experience is kept")

	res, err = e.GainExperience(math.MaxInt32)
	require.NoError(t, err)
	assert.Empty(t, res.LevelUps)
	assert.Equal(t, int32(math.MaxInt32), e.Experience())

	up := e.LevelUp()
	assert.False(t, up.OK)
	assert.Equal(t, ReasonMaxLevel, up.Reason)
	assert.Equal(t, int32(MaxLevel), e.Level())
	assert.Equal(t, int32(math.MaxInt32), e.Experience())
}

func TestEntity_ProgressionLimits(t *testing.T) {
	tests := []struct {
		name  string
		level int32
		prog  Progression
	}{
		{name: "huge health per level", level: MaxLevel, prog: Progression{HealthPerLevel: math.MaxInt32}},
		{name: "huge rest per level", level: 3, prog: Progression{RestPerLevel: 1 << 30}},
		{name: "everything at max", level: MaxLevel, prog: Progression{
			HealthPerLevel: math.MaxInt32, RestPerLevel: math.MaxInt32,
			XPPerLevel: math.MaxInt32, StatPointsPerLevel: math.MaxInt32,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntity(EntityConfig{Name: "x", Level: tt.level, Spec: NewShaolin(0), Progression: tt.prog})
			require.NoError(t, err)
			assert.Positive(t, e.MaxHealth())

			_, err = e.TakeDamage(10)
			require.NoError(t, err)
			before := e.Health()

			rest := e.Rest()
			require.True(t, rest.OK)
			assert.Positive(t, rest.Requested)
			assert.GreaterOrEqual(t, e.Health(), before, "rest never lowers health")
			assert.Equal(t, e.MaxHealth(), e.Health())

			_, err = e.GainExperience(math.MaxInt32)
			require.NoError(t, err)
			e.LevelUp()
			st := e.Stats()
			assert.GreaterOrEqual(t, st.Health, int32(0))
			assert.LessOrEqual(t, st.Health, st.MaxHealth)
			assert.LessOrEqual(t, st.Level, int32(MaxLevel))
		})
	}
}

func TestEntity_Stats(t *testing.T) {
	e := newTestHero(t, "Zhang Wei", 5)
	st := e.Stats()

	assert.Equal(t, e.ID(), st.ID)
	assert.Equal(t, SectShaolin, st.Sect)
	assert.True(t, st.Alive)
	assert.Equal(t, []Attribute{{Name: "inner_strength", Value: 50}}, st.Attributes)
	assert.Equal(t, int32(BaseStatValue), st.Stats.Strength)
}

func TestEntity_ConcurrentDamage(t *testing.T) {
	e := newTestHero(t, "x", 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	finished := 0
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.TakeDamage(7)
			if err == nil && res.Finished {
				mu.Lock()
				finished++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), e.Health())
	assert.Equal(t, 1, finished, "exactly one hit performs the defeat")
}
