package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.Equal(t, 100*time.Millisecond, fs.Step())
	assert.True(t, fs.ShouldStep(), "first call fires immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(60 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(5 * time.Second)
	fires := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fires++
		}
	}
	assert.Equal(t, 2, fires)
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Step())
}
