package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/core/coretest"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

func arena(enemies ...core.Box) State {
	s := NewState(config.DefaultInvadersConfig())
	s.Enemies = enemies
	return s
}

func enemy(x, y float64) core.Box {
	return core.NewBox(x, y, 30, 30)
}

func TestNewStateLayout(t *testing.T) {
	s := NewState(config.DefaultInvadersConfig())

	require.Len(t, s.Enemies, 50)
	assert.Equal(t, enemy(50, 50), s.Enemies[0])
	assert.Equal(t, enemy(680, 250), s.Enemies[49])
	assert.Equal(t, core.NewBox(400, 560, 40, 20), s.Player)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 1, s.Direction)
	assert.Equal(t, 1.0, s.Speed)
}

func TestBulletDestroysEnemy(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100))
	s.PlayerBullets = []Projectile{{Box: core.NewBox(113, 200, 4, 10), VY: -8}}
	rng := &coretest.Rand{}

	var res core.StepResult
	for i := 0; i < 50 && len(s.Enemies) > 0; i++ {
		res = Step(&s, cfg, rng)
	}

	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.PlayerBullets)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 9, s.Ticks)
	assert.Equal(t, []core.Event{
		core.ScoreChanged{Score: 10},
		core.GameOver{Cause: core.CauseCleared},
	}, res.Events)
	assert.True(t, res.State.Cause.Victory())
}

func TestOverlapResolvedInSameTick(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100), enemy(300, 100))
	s.PlayerBullets = []Projectile{{Box: core.NewBox(110, 130, 4, 10), VY: -8}}

	res := Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, []core.Box{enemy(301, 100)}, s.Enemies)
	assert.Empty(t, s.PlayerBullets)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, []core.Event{core.ScoreChanged{Score: 10}}, res.Events)
}

func TestBulletRemovesOnlyOneEnemy(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100), enemy(100, 100), enemy(400, 100))
	s.PlayerBullets = []Projectile{{Box: core.NewBox(110, 130, 4, 10), VY: -8}}

	Step(&s, cfg, &coretest.Rand{})

	assert.Len(t, s.Enemies, 2)
	assert.Equal(t, 10, s.Score)
}

func TestBulletLeavesField(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(300, 100))
	s.PlayerBullets = []Projectile{
		{Box: core.NewBox(10, 5, 4, 10), VY: -8},
		{Box: core.NewBox(10, 300, 4, 10), VY: -8},
	}

	Step(&s, cfg, &coretest.Rand{})

	require.Len(t, s.PlayerBullets, 1)
	assert.Equal(t, 292.0, s.PlayerBullets[0].Y)
}

func TestFormationReversesOncePerTick(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(770, 100), enemy(770, 150), enemy(500, 200))

	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, -1, s.Direction)
	assert.InDelta(t, 1.2, s.Speed, 1e-9)
	assert.Equal(t, 1, s.Drops)
	assert.Equal(t, []core.Box{enemy(770, 120), enemy(770, 170), enemy(500, 220)}, s.Enemies)

	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, 1, s.Drops)
	assert.InDelta(t, 768.8, s.Enemies[0].X, 1e-9)
	assert.Equal(t, 120.0, s.Enemies[0].Y)
}

func TestFormationBounds(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	tests := []struct {
		name     string
		x        float64
		dir      int
		wantFlip bool
	}{
		{"left bound moving left", 0, -1, true},
		{"left bound moving right", 0, 1, false},
		{"right bound moving right", 770, 1, true},
		{"right bound moving left", 770, -1, false},
		{"past right bound", 775, 1, true},
		{"inside", 400, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := arena(enemy(tt.x, 100))
			s.Direction = tt.dir

			Step(&s, cfg, &coretest.Rand{})

			assert.Equal(t, tt.wantFlip, s.Direction != tt.dir)
			if tt.wantFlip {
				assert.Equal(t, 120.0, s.Enemies[0].Y)
				assert.Equal(t, tt.x, s.Enemies[0].X)
			} else {
				assert.Equal(t, tt.x+float64(tt.dir), s.Enemies[0].X)
			}
		})
	}
}

func TestEnemyFire(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100), enemy(300, 100))
	rng := &coretest.Rand{Floats: []float64{0.005}, Ints: []int{1}}

	Step(&s, cfg, rng)

	require.Len(t, s.EnemyBullets, 1)
	b := s.EnemyBullets[0]
	assert.Equal(t, 316.0, b.X)
	assert.Equal(t, 133.0, b.Y, "spawned at the shooter's bottom and moved once")
	assert.Equal(t, 3.0, b.VY)
}

func TestNoFireAboveChance(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100))

	Step(&s, cfg, &coretest.Rand{Floats: []float64{0.01}})

	assert.Empty(t, s.EnemyBullets)
}

func TestEnemyBulletCostsLife(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100))
	s.EnemyBullets = []Projectile{{Box: core.NewBox(410, 550, 4, 10), VY: 3}}

	res := Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, 2, s.Lives)
	assert.Empty(t, s.EnemyBullets)
	assert.False(t, res.State.Over())
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100))
	s.Lives = 1
	s.EnemyBullets = []Projectile{{Box: core.NewBox(410, 550, 4, 10), VY: 3}}

	res := Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, 0, s.Lives)
	assert.Equal(t, core.CauseOutOfLives, s.Cause)
	assert.Equal(t, []core.Event{core.GameOver{Cause: core.CauseOutOfLives}}, res.Events)
	assert.False(t, res.State.Cause.Victory())
}

func TestEnemyBulletLeavesField(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 100))
	s.EnemyBullets = []Projectile{{Box: core.NewBox(10, 598, 4, 10), VY: 3}}

	Step(&s, cfg, &coretest.Rand{})

	assert.Empty(t, s.EnemyBullets)
}

func TestInvadedRegardlessOfLives(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := arena(enemy(100, 530))

	res := Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, core.CauseInvaded, res.State.Cause)
	assert.Equal(t, 3, s.Lives)
}

func TestHeldMovementClamped(t *testing.T) {
	g := New(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{Rand: &coretest.Rand{}})

	g.Apply(core.Move(core.DirRight))
	for i := 0; i < 100; i++ {
		g.Step()
	}
	assert.Equal(t, 760.0, g.state.Player.X)

	g.Apply(core.Release(core.DirRight))
	g.Apply(core.Move(core.DirLeft))
	g.Step()
	assert.Equal(t, 755.0, g.state.Player.X)
}

func TestShootIsImmediate(t *testing.T) {
	g := New(config.DefaultInvadersConfig())

	g.Apply(core.Shoot())

	require.Len(t, g.state.PlayerBullets, 1)
	assert.Equal(t, Projectile{Box: core.NewBox(420, 560, 4, 10), VY: -8}, g.state.PlayerBullets[0])
}

func TestTerminatedIgnoresInput(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	g := New(cfg)
	g.state = arena()
	g.Step()
	require.True(t, g.State().Over())

	g.Apply(core.Shoot())
	res := g.Step()

	assert.Empty(t, g.state.PlayerBullets)
	assert.Empty(t, res.Events)
	assert.Equal(t, core.CauseCleared, res.State.Cause)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := New(config.DefaultInvadersConfig())
	snap := g.Snapshot().(State)
	snap.Enemies[0].X = -100

	assert.Equal(t, 50.0, g.state.Enemies[0].X)
}

func TestProject(t *testing.T) {
	s := arena(enemy(100, 100), enemy(200, 100))
	s.PlayerBullets = []Projectile{{Box: core.NewBox(1, 1, 4, 10)}}

	f := Project(s)

	assert.Equal(t, 3, f.Count(render.LayerActor))
	assert.Equal(t, 1, f.Count(render.LayerProjectile))
}
