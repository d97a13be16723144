package entity_test

import (
	"fmt"
	"testing"

	"mini-scene/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestIDEncoding(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,gen=%d", tt.index, tt.generation), func(t *testing.T) {
			id := entity.New(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}
}

func TestAllocatorRecyclesWithNewGeneration(t *testing.T) {
	a := entity.NewAllocator()

	first := a.Create()
	second := a.Create()
	assert.NotEqual(t, first, second)
	assert.True(t, a.IsAlive(first))

	assert.True(t, a.Destroy(first))
	assert.False(t, a.IsAlive(first))
	assert.False(t, a.Destroy(first), "double destroy must be rejected")

	reused := a.Create()
	assert.Equal(t, first.Index(), reused.Index())
	assert.Equal(t, first.Generation()+1, reused.Generation())
	assert.NotEqual(t, first, reused)
	assert.True(t, a.IsAlive(second))
}

func TestAllocatorUnknownID(t *testing.T) {
	a := entity.NewAllocator()
	assert.False(t, a.IsAlive(entity.New(7, 0)))
	assert.False(t, a.Destroy(entity.New(7, 0)))
}
