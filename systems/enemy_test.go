package systems

import (
	"testing"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyDriftsLeft(t *testing.T) {
	w := newTestWorld(t,
		"0,0,0,0",
		"p,0,x,0",
		"1,1,1,1",
	)
	enemy := w.enemies()[0]
	x := components.Object.Get(enemy).X

	w.steps(10)

	assert.Equal(t, x+10*cfg.Enemy.Drift, components.Object.Get(enemy).X)
	assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction.X)
}

func TestEnemyStopsAtWorldEdge(t *testing.T) {
	w := newTestWorld(t,
		"0,0,0,0",
		"x,0,p,0",
		"1,1,1,1",
	)
	enemy := w.enemies()[0]
	require.Equal(t, 0.0, components.Object.Get(enemy).X)

	w.steps(10)

	require.Len(t, w.enemies(), 1)
	assert.Equal(t, 0.0, components.Object.Get(enemy).X)
}

func TestEnemyRemovedBelowKillLine(t *testing.T) {
	w := newTestWorld(t,
		"0,0,0,0,0",
		"p,0,0,0,x",
		"1,0,0,0,0",
	)
	require.Len(t, w.enemies(), 1)

	for i := 0; i < 400 && len(w.enemies()) > 0; i++ {
		w.step()
	}
	assert.Empty(t, w.enemies())
}

func TestMaintainEnemyPopulationSpawnsOnePerCall(t *testing.T) {
	w := newTestWorld(t,
		"p,0",
		"1,1",
	)
	require.Equal(t, 0, LiveEnemyCount(w.ecs))

	MaintainEnemyPopulation(w.ecs)
	require.Equal(t, 1, LiveEnemyCount(w.ecs))

	enemy := w.enemies()[0]
	obj := components.Object.Get(enemy)
	assert.Equal(t, cfg.Enemy.RespawnX, obj.X)
	assert.Equal(t, cfg.Enemy.RespawnY, obj.Y)

	for i := 0; i < 10; i++ {
		MaintainEnemyPopulation(w.ecs)
		require.LessOrEqual(t, LiveEnemyCount(w.ecs), cfg.Enemy.Population)
	}
	assert.Equal(t, cfg.Enemy.Population, LiveEnemyCount(w.ecs))
}

func TestMaintainEnemyPopulationAtCapIsNoOp(t *testing.T) {
	w := newTestWorld(t,
		"0,0,0,0,0",
		"p,x,x,x,x",
		"1,1,1,1,1",
	)
	require.Equal(t, 4, LiveEnemyCount(w.ecs))

	MaintainEnemyPopulation(w.ecs)

	assert.Len(t, w.enemies(), 4)
}

func TestMaintainEnemyPopulationIgnoresDeadEnemies(t *testing.T) {
	w := newTestWorld(t,
		"0,0,0,0,0",
		"p,x,x,x,x",
		"1,1,1,1,1",
	)
	components.Enemy.Get(w.enemies()[0]).Dead = true

	MaintainEnemyPopulation(w.ecs)
	assert.Equal(t, 4, LiveEnemyCount(w.ecs))

	SweepDeadEnemies(w.ecs)
	assert.Len(t, w.enemies(), 4)
}
