package factory

import (
	"testing"
	"time"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/automoto/tilerunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var sampleLayout = []string{
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,0,0,0,0,0",
	"0,0,0,0,0,0,x,0,0,0,0",
	"4,5,r,0,0,0,0,0,0,0,0",
	"-,-,m,0,0,0,0,0,0,0,0",
	"-,-,m,0,0,0,0,0,p,0,7",
	"-,-,m,0,0,0,0,l,5,5,6",
	"1,2,2,R,0,A,0,n,-,-,-",
	"-,-,-,M,0,I,0,n,-,-,-",
}

func countOf(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildLevelSpawnsEverything(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	def := leveldata.Definition{Name: "sample", TileSize: 75, Layout: sampleLayout}

	level, err := BuildLevel(e, def, 2, 5, nil)
	require.NoError(t, err)

	data := components.Level.Get(level)
	assert.Equal(t, 2, data.LevelIndex)
	assert.Equal(t, 5, data.LevelCount)
	assert.True(t, data.JumpSound)

	assert.Equal(t, len(data.Grid.Solid), countOf(e.World, tags.Solid))
	assert.Equal(t, len(data.Grid.Background), countOf(e.World, tags.Background))
	assert.Equal(t, 1, countOf(e.World, tags.Goal))
	assert.Equal(t, 1, countOf(e.World, tags.Player))
	assert.Equal(t, 1, countOf(e.World, tags.Enemy))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(player)
	assert.Equal(t, 300.0, obj.X)
	assert.Equal(t, 525.0, obj.Y)
	assert.Equal(t, float64(cfg.Player.FrameWidth), obj.W)
	assert.Equal(t, float64(cfg.Player.FrameHeight), obj.H)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	assert.Len(t, space.Objects(), countOf(e.World, tags.Solid)+countOf(e.World, tags.Background)+2)
	assert.Same(t, space, obj.Space)

	_, ok = components.Camera.First(e.World)
	assert.True(t, ok)
}

func TestBuildLevelGoalTilesAreBackground(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	def := leveldata.Definition{Name: "goal", TileSize: 75, Layout: []string{"p,7", "1,1"}}
	_, err := BuildLevel(e, def, 0, 1, nil)
	require.NoError(t, err)

	goal, ok := tags.Goal.First(e.World)
	require.True(t, ok)
	assert.True(t, goal.HasComponent(tags.Background))
	assert.False(t, goal.HasComponent(tags.Solid))

	obj := components.Object.Get(goal)
	assert.True(t, obj.HasTags(tags.ResolvGoal))
	assert.False(t, obj.HasTags(tags.ResolvSolid))
	assert.Equal(t, leveldata.Goal, components.Tile.Get(goal).Class)
}

func TestBuildLevelRejectsBadLayout(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	def := leveldata.Definition{Name: "bad", TileSize: 75, Layout: []string{"0,1"}}

	_, err := BuildLevel(e, def, 0, 1, nil)
	assert.ErrorIs(t, err, leveldata.ErrNoPlayer)
}

func TestRespawnEnemyUsesRespawnPoint(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	def := leveldata.Definition{Name: "r", TileSize: 75, Layout: []string{"p"}}
	_, err := BuildLevel(e, def, 0, 1, nil)
	require.NoError(t, err)

	enemy := RespawnEnemy(e)
	obj := components.Object.Get(enemy)
	assert.Equal(t, cfg.Enemy.RespawnX, obj.X)
	assert.Equal(t, cfg.Enemy.RespawnY, obj.Y)
	assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction.X)
	assert.NotNil(t, obj.Space)
}

func TestClockDefaultsToWallClock(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	before := time.Now()
	assert.False(t, Now(e).Before(before))

	fixed := time.Unix(42, 0)
	SetClock(e, func() time.Time { return fixed })
	assert.Equal(t, fixed, Now(e))
}
