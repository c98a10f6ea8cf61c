package world

import (
	"testing"

	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
	"github.com/stretchr/testify/assert"
)

func TestChunk_Creation(t *testing.T) {
	// Тест создания чанка
	chunk := NewChunk(vec.Vec2{X: 3, Y: -2}, 128)

	assert.NotNil(t, chunk)
	assert.Equal(t, vec.Vec2{X: 3, Y: -2}, chunk.Coords)
	assert.Equal(t, 128, chunk.Height)

	// Свежий чанк заполнен воздухом без жидкостей
	pos := vec.Vec3{X: 5, Y: 64, Z: 9}
	assert.Equal(t, palette.AirBlockID, chunk.GetBlock(pos))
	assert.Equal(t, palette.FluidNone, chunk.GetFluid(pos))
}

func TestChunk_BlockOperations(t *testing.T) {
	// Тест операций с блоками
	chunk := NewChunk(vec.Vec2{}, 64)
	p := palette.Default()

	pos := vec.Vec3{X: 10, Y: 30, Z: 15}
	chunk.SetBlock(pos, p.Granite)
	assert.Equal(t, p.Granite, chunk.GetBlock(pos), "блок должен сохраняться")

	chunk.SetFluid(pos, p.Water)
	assert.Equal(t, p.Water, chunk.GetFluid(pos), "жидкость живёт отдельно от блока")
	assert.Equal(t, p.Granite, chunk.GetBlock(pos), "установка жидкости не трогает блок")
}

func TestChunk_SetContent(t *testing.T) {
	// Тест записи блока и жидкости одной операцией
	chunk := NewChunk(vec.Vec2{}, 64)
	p := palette.Default()

	pos := vec.Vec3{X: 0, Y: 10, Z: 0}
	chunk.SetContent(pos, subbiome.Content{Block: p.Gravel, Fluid: p.Water})

	assert.Equal(t, p.Gravel, chunk.GetBlock(pos))
	assert.Equal(t, p.Water, chunk.GetFluid(pos))

	// Контент без жидкости затирает старую жидкость
	chunk.SetContent(pos, subbiome.Content{Block: p.Dirt})
	assert.Equal(t, p.Dirt, chunk.GetBlock(pos))
	assert.Equal(t, palette.FluidNone, chunk.GetFluid(pos))
}

func TestChunk_SurfaceHeight(t *testing.T) {
	// Тест хранения высот поверхности
	chunk := NewChunk(vec.Vec2{}, 256)

	chunk.SetSurfaceHeight(vec.Vec2{X: 4, Y: 11}, 87)
	assert.Equal(t, 87, chunk.SurfaceHeight(vec.Vec2{X: 4, Y: 11}))
	assert.Equal(t, 0, chunk.SurfaceHeight(vec.Vec2{X: 0, Y: 0}))
}

func TestChunk_InBounds(t *testing.T) {
	chunk := NewChunk(vec.Vec2{}, 64)

	assert.True(t, chunk.InBounds(vec.Vec3{X: 0, Y: 0, Z: 0}))
	assert.True(t, chunk.InBounds(vec.Vec3{X: 15, Y: 63, Z: 15}))
	assert.False(t, chunk.InBounds(vec.Vec3{X: 16, Y: 0, Z: 0}))
	assert.False(t, chunk.InBounds(vec.Vec3{X: 0, Y: 64, Z: 0}))
	assert.False(t, chunk.InBounds(vec.Vec3{X: 0, Y: -1, Z: 0}))
	assert.False(t, chunk.InBounds(vec.Vec3{X: 0, Y: 0, Z: -1}))
}
