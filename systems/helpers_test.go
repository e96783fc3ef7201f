package systems

import (
	"testing"
	"time"

	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/leveldata"
	"github.com/automoto/tilerunner/systems/factory"
	"github.com/automoto/tilerunner/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type heldKeys struct {
	held [cfg.ActionCount]bool
}

func (k *heldKeys) Poll() [cfg.ActionCount]bool {
	return k.held
}

func (k *heldKeys) set(id cfg.ActionID, down bool) {
	k.held[id] = down
}

type recordingSink struct {
	played []cfg.SoundID
}

func (s *recordingSink) Play(id cfg.SoundID) {
	s.played = append(s.played, id)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type testWorld struct {
	t     *testing.T
	ecs   *ecs.ECS
	keys  *heldKeys
	sink  *recordingSink
	clock *fakeClock
	input func(*ecs.ECS)
}

func newTestWorld(t *testing.T, layout ...string) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := &testWorld{
		t:     t,
		ecs:   ecs.NewECS(donburi.NewWorld()),
		keys:  &heldKeys{},
		sink:  &recordingSink{},
		clock: &fakeClock{now: time.Unix(1000, 0)},
	}
	w.input = NewInputSystem(w.keys)
	factory.SetClock(w.ecs, w.clock.Now)
	SetAudioSink(w.ecs, w.sink)

	def := leveldata.Definition{Name: t.Name(), TileSize: 75, Layout: layout}
	_, err := factory.BuildLevel(w.ecs, def, 0, 1, nil)
	require.NoError(t, err)
	return w
}

// step runs one gameplay frame without enemy respawning.
func (w *testWorld) step() {
	w.input(w.ecs)
	UpdatePlayer(w.ecs)
	UpdateEnemies(w.ecs)
	UpdateCamera(w.ecs)
	UpdateObjects(w.ecs)
	SweepDeadEnemies(w.ecs)
	UpdateStates(w.ecs)
}

func (w *testWorld) steps(n int) {
	for i := 0; i < n; i++ {
		w.step()
	}
}

func (w *testWorld) player() *donburi.Entry {
	w.t.Helper()
	e, ok := tags.Player.First(w.ecs.World)
	require.True(w.t, ok)
	return e
}

func (w *testWorld) playerObject() *components.ObjectData {
	return components.Object.Get(w.player())
}

func (w *testWorld) playerPhysics() *components.PhysicsData {
	return components.Physics.Get(w.player())
}

// settle steps until the player stands on something.
func (w *testWorld) settle() {
	w.t.Helper()
	for i := 0; i < 200; i++ {
		w.step()
		p := w.playerPhysics()
		if !p.Falling && !p.Jumping {
			return
		}
	}
	w.t.Fatal("player never landed")
}

func (w *testWorld) enemies() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w.ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
