package systems

import (
	"testing"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/stretchr/testify/assert"
)

func TestUpdateAudioFlushesQueue(t *testing.T) {
	w := newTestWorld(t, "p")
	QueueSound(w.ecs, cfg.SoundJump)
	QueueSound(w.ecs, cfg.SoundGoal)

	UpdateAudio(w.ecs)

	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundGoal}, w.sink.played)
	assert.Empty(t, GetOrCreateAudio(w.ecs).PendingSFX)

	UpdateAudio(w.ecs)
	assert.Len(t, w.sink.played, 2, "nothing is replayed")
}

func TestUpdateAudioMuted(t *testing.T) {
	w := newTestWorld(t, "p")
	GetOrCreateAudio(w.ecs).Muted = true
	QueueSound(w.ecs, cfg.SoundJump)

	UpdateAudio(w.ecs)

	assert.Empty(t, w.sink.played)
	assert.Empty(t, GetOrCreateAudio(w.ecs).PendingSFX, "muted sounds are dropped, not deferred")
}

func TestUpdateAudioWithoutSink(t *testing.T) {
	w := newTestWorld(t, "p")
	SetAudioSink(w.ecs, nil)
	QueueSound(w.ecs, cfg.SoundGoal)

	assert.NotPanics(t, func() { UpdateAudio(w.ecs) })
}
