package world

import (
	"context"
	"testing"

	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() GeneratorParams {
	return GeneratorParams{
		Seed:       12345,
		Height:     128,
		FillLevel:  48,
		BaseHeight: 56,
		NoiseKind:  "perlin",
	}
}

func newTestGenerator(t *testing.T) *Generator {
	p := palette.Default()
	cat, err := catalog.Default(p)
	require.NoError(t, err)

	g, err := NewGenerator(testParams(), p, cat)
	require.NoError(t, err)
	return g
}

// fixedPicker всегда выбирает один саббиом
type fixedPicker string

func (f fixedPicker) Pick(pos vec.Vec2) string { return string(f) }

func TestGenerator_EmptyCatalog(t *testing.T) {
	// Тест отказа при пустом каталоге
	_, err := NewGenerator(testParams(), palette.Default(), catalog.New())
	assert.Error(t, err)
}

func TestGenerator_Determinism(t *testing.T) {
	// Тест детерминированности: один сид даёт одинаковые чанки
	a := newTestGenerator(t)
	b := newTestGenerator(t)

	coords := vec.Vec2{X: 2, Y: -3}
	chunkA := a.GenerateChunk(coords)
	chunkB := b.GenerateChunk(coords)

	for y := 0; y < chunkA.Height; y += 7 {
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				assert.Equal(t, chunkA.GetBlock(pos), chunkB.GetBlock(pos),
					"блоки в %v должны совпадать", pos)
				assert.Equal(t, chunkA.GetFluid(pos), chunkB.GetFluid(pos))
			}
		}
	}
}

func TestGenerator_SeedsDiffer(t *testing.T) {
	// Тест: разные сиды дают разный ландшафт
	p := palette.Default()
	cat, err := catalog.Default(p)
	require.NoError(t, err)

	params := testParams()
	a, err := NewGenerator(params, p, cat)
	require.NoError(t, err)

	params.Seed = 99999
	b, err := NewGenerator(params, p, cat)
	require.NoError(t, err)

	chunkA := a.GenerateChunk(vec.Vec2{})
	chunkB := b.GenerateChunk(vec.Vec2{})

	differ := false
	for x := 0; x < ChunkSize && !differ; x++ {
		for z := 0; z < ChunkSize && !differ; z++ {
			if chunkA.SurfaceHeight(vec.Vec2{X: x, Y: z}) != chunkB.SurfaceHeight(vec.Vec2{X: x, Y: z}) {
				differ = true
			}
		}
	}
	assert.True(t, differ, "разные сиды должны давать разные высоты")
}

func TestGenerator_ColumnStructure(t *testing.T) {
	// Тест структуры колонн: дно твёрдое, над поверхностью пусто
	g := newTestGenerator(t)
	chunk := g.GenerateChunk(vec.Vec2{X: 0, Y: 0})

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			local := vec.Vec2{X: x, Y: z}
			surface := chunk.SurfaceHeight(local)

			assert.GreaterOrEqual(t, surface, 1)
			assert.Less(t, surface, chunk.Height-1)

			// Поверхность и дно не бывают воздухом
			assert.NotEqual(t, palette.AirBlockID,
				chunk.GetBlock(vec.Vec3{X: x, Y: surface, Z: z}),
				"колонна (%d,%d): на поверхности воздух", x, z)
			assert.NotEqual(t, palette.AirBlockID,
				chunk.GetBlock(vec.Vec3{X: x, Y: 0, Z: z}),
				"колонна (%d,%d): на дне воздух", x, z)

			// Выше поверхности, покрытия и уровня воды пусто
			top := surface + 2
			if g.fillLevel > top {
				top = g.fillLevel
			}
			for y := top; y < chunk.Height; y++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				assert.Equal(t, palette.AirBlockID, chunk.GetBlock(pos),
					"колонна (%d,%d): мусор над рельефом на высоте %d", x, z, y)
				assert.Equal(t, palette.FluidNone, chunk.GetFluid(pos))
			}
		}
	}
}

func TestGenerator_FilledColumns(t *testing.T) {
	// Тест затопленных колонн: разрыв до уровня воды не пустой
	g := newTestGenerator(t)

	found := false
	for cx := -3; cx <= 3 && !found; cx++ {
		for cz := -3; cz <= 3 && !found; cz++ {
			chunk := g.GenerateChunk(vec.Vec2{X: cx, Y: cz})
			for x := 0; x < ChunkSize; x++ {
				for z := 0; z < ChunkSize; z++ {
					surface := chunk.SurfaceHeight(vec.Vec2{X: x, Y: z})
					if surface >= g.fillLevel-1 {
						continue
					}
					found = true
					for y := surface + 1; y < g.fillLevel; y++ {
						pos := vec.Vec3{X: x, Y: y, Z: z}
						empty := chunk.GetBlock(pos) == palette.AirBlockID &&
							chunk.GetFluid(pos) == palette.FluidNone
						assert.False(t, empty,
							"затопленная колонна (%d,%d): дыра на высоте %d", x, z, y)
					}
				}
			}
		}
	}
	assert.True(t, found, "в окрестности должна найтись хотя бы одна затопленная колонна")
}

func TestGenerator_FixedPicker(t *testing.T) {
	// Тест подмены пикера: вся площадь из одного саббиома
	g := newTestGenerator(t)
	g.SetPicker(fixedPicker("glacier"))

	p := palette.Default()
	chunk := g.GenerateChunk(vec.Vec2{X: 1, Y: 1})

	snowOrIce := 0
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			surface := chunk.SurfaceHeight(vec.Vec2{X: x, Y: z})
			top := chunk.GetBlock(vec.Vec3{X: x, Y: surface, Z: z})
			if top == p.Snow || top == p.Ice || top == p.PackedSnow {
				snowOrIce++
			}
		}
	}
	assert.Equal(t, ChunkSize*ChunkSize, snowOrIce,
		"на леднике вся поверхность из снега или льда")
}

func TestGenerator_GenerateRegion(t *testing.T) {
	// Тест региона: все чанки на месте, координаты не перепутаны
	g := newTestGenerator(t)

	chunks, err := g.GenerateRegion(context.Background(), vec.Vec2{X: -1, Y: -1}, vec.Vec2{X: 1, Y: 1}, 4)
	require.NoError(t, err)
	require.Len(t, chunks, 9)

	seen := make(map[vec.Vec2]bool)
	for _, chunk := range chunks {
		require.NotNil(t, chunk)
		seen[chunk.Coords] = true
	}
	assert.Len(t, seen, 9, "каждый чанк региона должен быть сгенерирован ровно один раз")

	// Порядок соответствует обходу снизу вверх построчно
	assert.Equal(t, vec.Vec2{X: -1, Y: -1}, chunks[0].Coords)
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, chunks[8].Coords)
}

func TestGenerator_RegionMatchesSingleChunks(t *testing.T) {
	// Тест: параллельная генерация даёт те же чанки, что одиночная
	g := newTestGenerator(t)

	chunks, err := g.GenerateRegion(context.Background(), vec.Vec2{}, vec.Vec2{X: 1, Y: 0}, 2)
	require.NoError(t, err)

	single := g.GenerateChunk(vec.Vec2{X: 1, Y: 0})
	var fromRegion *Chunk
	for _, ch := range chunks {
		if ch.Coords == (vec.Vec2{X: 1, Y: 0}) {
			fromRegion = ch
		}
	}
	require.NotNil(t, fromRegion)

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			local := vec.Vec2{X: x, Y: z}
			assert.Equal(t, single.SurfaceHeight(local), fromRegion.SurfaceHeight(local))
		}
	}
}

func TestGenerator_RegionCancellation(t *testing.T) {
	// Тест отмены: уже отменённый контекст прерывает генерацию
	g := newTestGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateRegion(ctx, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 7, Y: 7}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// Benchmarks

func BenchmarkGenerator_GenerateChunk(b *testing.B) {
	p := palette.Default()
	cat, err := catalog.Default(p)
	if err != nil {
		b.Fatal(err)
	}
	g, err := NewGenerator(GeneratorParams{
		Seed:       12345,
		Height:     128,
		FillLevel:  48,
		BaseHeight: 56,
		NoiseKind:  "perlin",
	}, p, cat)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateChunk(vec.Vec2{X: i % 64, Y: i / 64})
	}
}
