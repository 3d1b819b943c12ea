package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/core/coretest"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

func running(segments ...Point) State {
	return State{
		TileCount: 30,
		Segments:  segments,
		Food:      Point{X: 29, Y: 29},
		Status:    core.StatusRunning,
	}
}

func TestSpawnDownTickOnce(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	rng := &coretest.Rand{Ints: []int{15, 15}}
	s := NewState(cfg, rng)

	require.Equal(t, Point{X: 10, Y: 10}, s.Head())
	require.Equal(t, Point{X: 15, Y: 15}, s.Food)

	require.True(t, Turn(&s, core.DirDown))
	res := Step(&s, cfg, rng)

	assert.Equal(t, Point{X: 10, Y: 11}, s.Head())
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, res.Events)
	assert.False(t, res.State.Over())
}

func TestLengthGrowsByOnePerMeal(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 5, Y: 5})
	s.DX = 1
	s.Food = Point{X: 6, Y: 5}
	rng := &coretest.Rand{Ints: []int{7, 5, 8, 5, 9, 5, 0, 0}}

	for n := 1; n <= 4; n++ {
		res := Step(&s, cfg, rng)
		require.Len(t, res.Events, 1)
		assert.Equal(t, core.ScoreChanged{Score: n * 10}, res.Events[0])
		assert.Equal(t, 1+n, s.Len())
	}
	assert.Equal(t, 40, s.Score)
	assert.Equal(t, Point{X: 0, Y: 0}, s.Food)
}

func TestMoveKeepsLength(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 5, Y: 5}, Point{X: 4, Y: 5}, Point{X: 3, Y: 5})
	s.DX = 1

	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, []Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Segments)
}

func TestTurnRejectsReversal(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		dir    core.Direction
		want   bool
	}{
		{"idle accepts any", 0, 0, core.DirLeft, true},
		{"right rejects left", 1, 0, core.DirLeft, false},
		{"left rejects right", -1, 0, core.DirRight, false},
		{"down rejects up", 0, 1, core.DirUp, false},
		{"up rejects down", 0, -1, core.DirDown, false},
		{"right accepts up", 1, 0, core.DirUp, true},
		{"right accepts right", 1, 0, core.DirRight, true},
		{"none is ignored", 1, 0, core.DirNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := running(Point{X: 5, Y: 5})
			s.DX, s.DY = tt.dx, tt.dy

			got := Turn(&s, tt.dir)

			assert.Equal(t, tt.want, got)
			if !tt.want {
				assert.Equal(t, tt.dx, s.DX)
				assert.Equal(t, tt.dy, s.DY)
			}
		})
	}
}

func TestTurnAppliesImmediately(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 5, Y: 5})
	s.DX = 1

	Turn(&s, core.DirUp)
	Turn(&s, core.DirLeft)
	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, Point{X: 4, Y: 5}, s.Head(), "second turn replaces the first, no queue")
}

func TestWallCollision(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	for _, dir := range []core.Direction{core.DirLeft, core.DirUp} {
		s := running(Point{X: 0, Y: 0})
		Turn(&s, dir)

		res := Step(&s, cfg, &coretest.Rand{})

		assert.Equal(t, core.StatusTerminated, s.Status)
		assert.Equal(t, core.CauseWall, s.Cause)
		assert.Equal(t, []core.Event{core.GameOver{Cause: core.CauseWall}}, res.Events)
		assert.Equal(t, Point{X: 0, Y: 0}, s.Head())
	}

	s := running(Point{X: 29, Y: 3})
	Turn(&s, core.DirRight)
	Step(&s, cfg, &coretest.Rand{})
	assert.Equal(t, core.CauseWall, s.Cause)
}

func TestSelfCollision(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(
		Point{X: 2, Y: 2},
		Point{X: 2, Y: 3},
		Point{X: 3, Y: 3},
		Point{X: 3, Y: 2},
		Point{X: 3, Y: 1},
	)
	s.DX = 1

	res := Step(&s, cfg, &coretest.Rand{})

	assert.True(t, res.State.Over())
	assert.Equal(t, core.CauseSelf, res.State.Cause)
}

func TestTailCountsAsBody(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(
		Point{X: 1, Y: 1},
		Point{X: 1, Y: 2},
		Point{X: 2, Y: 2},
		Point{X: 2, Y: 1},
	)
	s.DX = 1

	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, core.CauseSelf, s.Cause)
}

func TestTerminatedIgnoresSteps(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 0, Y: 0})
	Turn(&s, core.DirLeft)
	Step(&s, cfg, &coretest.Rand{})
	ticks := s.Ticks

	res := Step(&s, cfg, &coretest.Rand{})

	assert.Empty(t, res.Events)
	assert.Equal(t, ticks, s.Ticks)
	assert.False(t, Turn(&s, core.DirDown))
}

func TestFoodMayRespawnOnBody(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 5, Y: 5}, Point{X: 4, Y: 5}, Point{X: 3, Y: 5})
	s.DX = 1
	s.Food = Point{X: 6, Y: 5}

	Step(&s, cfg, &coretest.Rand{Ints: []int{4, 5}})

	assert.Equal(t, Point{X: 4, Y: 5}, s.Food)
	assert.Contains(t, s.Segments, s.Food, "food is drawn uniformly, body cells included")
}

func TestIdleSnakeStaysPut(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := running(Point{X: 5, Y: 5})
	s.Food = Point{X: 5, Y: 5}

	Step(&s, cfg, &coretest.Rand{})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Ticks)
}

func TestGameDeterminism(t *testing.T) {
	play := func() core.Snapshot {
		g := New(config.DefaultSnakeConfig())
		g.Reset(core.RuntimeConfig{Seed: 12345})
		for i := 0; i < 60; i++ {
			switch i {
			case 0:
				g.Apply(core.Move(core.DirRight))
			case 10:
				g.Apply(core.Move(core.DirDown))
			case 20:
				g.Apply(core.Move(core.DirLeft))
			}
			g.Step()
		}
		return g.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestGameIgnoresRelease(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Apply(core.Move(core.DirUp))
	g.Apply(core.Release(core.DirUp))

	snap := g.Snapshot().(State)
	assert.Equal(t, -1, snap.DY)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	snap := g.Snapshot().(State)
	snap.Segments[0] = Point{X: 99, Y: 99}

	assert.Equal(t, Point{X: 10, Y: 10}, g.state.Head())
	assert.Equal(t, ID, snap.GameID())
}

func TestProject(t *testing.T) {
	s := running(Point{X: 2, Y: 1}, Point{X: 1, Y: 1})
	s.Food = Point{X: 5, Y: 5}

	f := Project(s)

	assert.Equal(t, 600.0, f.Width)
	assert.Equal(t, 600.0, f.Height)
	assert.Equal(t, 2, f.Count(render.LayerActor))
	assert.Equal(t, 1, f.Count(render.LayerBoard))
	assert.Contains(t, f.Rects, render.Rect{X: 41, Y: 21, W: 18, H: 18, Color: core.ColorBrightCyan, Layer: render.LayerActor})
	assert.Equal(t, 2, s.Len(), "projection does not mutate")
}
