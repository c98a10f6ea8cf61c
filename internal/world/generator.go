package world

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/annel0/mmo-worldgen/internal/logging"
	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/noise"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome/catalog"
)

// Picker выбирает саббиом для колонны. Сам выбор биома остаётся за
// внешним кодом; генератору важно только получить имя из каталога.
type Picker interface {
	Pick(pos vec.Vec2) string
}

// NoisePicker выбирает саббиом низкочастотным шумом: соседние колонны
// почти всегда попадают в один регион
type NoisePicker struct {
	names []string
	src   noise.Source
	scale float64
}

// NewNoisePicker создаёт пикер над упорядоченным списком имён
func NewNoisePicker(names []string, src noise.Source, scale float64) *NoisePicker {
	owned := make([]string, len(names))
	copy(owned, names)
	return &NoisePicker{names: owned, src: src, scale: scale}
}

// Pick возвращает имя саббиома для колонны
func (p *NoisePicker) Pick(pos vec.Vec2) string {
	if len(p.names) == 0 {
		return ""
	}
	v := (p.src.Sample(float64(pos.X)*p.scale, float64(pos.Y)*p.scale) + 1.0) / 2.0
	idx := int(v * float64(len(p.names)))
	if idx >= len(p.names) {
		idx = len(p.names) - 1
	}
	return p.names[idx]
}

// GeneratorParams параметры создания генератора
type GeneratorParams struct {
	Seed       int64
	Height     int    // высота мира в блоках
	FillLevel  int    // глобальный уровень воды
	BaseHeight int    // базовая высота поверхности
	NoiseKind  string // perlin | simplex

	// Параметры шума Перлина; нулевые значения заменяются стандартными
	NoiseAlpha   float64
	NoiseBeta    float64
	NoiseOctaves int
}

// newSource создаёт источник шума по параметрам генератора
func (p GeneratorParams) newSource(seed int64) noise.Source {
	if p.NoiseKind == "simplex" {
		return noise.NewSimplex(seed)
	}
	if p.NoiseAlpha > 0 && p.NoiseBeta > 0 && p.NoiseOctaves > 0 {
		return noise.NewPerlinParams(seed, p.NoiseAlpha, p.NoiseBeta, p.NoiseOctaves)
	}
	return noise.NewPerlin(seed)
}

// Generator генерирует ландшафт мира поколоночно. После создания
// только читает свои поля, поэтому чанки можно генерировать
// параллельно из нескольких воркеров без блокировок.
type Generator struct {
	height     int
	fillLevel  int
	baseHeight int

	baseScale     float64 // Масштаб базового рельефа
	baseAmplitude float64 // Амплитуда базового рельефа
	stoneScale    float64 // Масштаб поля каменных пород
	coverScale    float64 // Масштаб шума покрытий

	pal    palette.Palette
	picker Picker

	heightNoise noise.Source
	stoneNoise  noise.Source
	coverNoise  noise.Source

	instances map[string]*subbiome.Instance

	metrics *Metrics
}

// NewGenerator создаёт генератор над каталогом саббиомов. Каждое
// определение получает собственный источник шума, чей сид выводится
// из сида мира и имени саббиома.
func NewGenerator(params GeneratorParams, pal palette.Palette, cat *catalog.Catalog) (*Generator, error) {
	if cat.Len() == 0 {
		return nil, fmt.Errorf("каталог саббиомов пуст")
	}

	g := &Generator{
		height:        params.Height,
		fillLevel:     params.FillLevel,
		baseHeight:    params.BaseHeight,
		baseScale:     0.005, // Настройка сглаженности базового рельефа
		baseAmplitude: 24,
		stoneScale:    0.004, // Настройка размера каменных регионов
		coverScale:    0.9,
		pal:           pal,
		heightNoise:   params.newSource(params.Seed),
		stoneNoise:    params.newSource(params.Seed + 42),
		coverNoise:    params.newSource(params.Seed + 1337),
		instances:     make(map[string]*subbiome.Instance),
	}

	for _, name := range cat.Names() {
		def, _ := cat.Get(name)
		src := params.newSource(instanceSeed(params.Seed, name))
		g.instances[name] = subbiome.NewInstance(def, src)
	}

	g.picker = NewNoisePicker(cat.Names(), params.newSource(params.Seed+7), 0.003)

	return g, nil
}

// SetPicker заменяет выбор саббиомов
func (g *Generator) SetPicker(p Picker) {
	g.picker = p
}

// SetMetrics подключает экспорт метрик генерации
func (g *Generator) SetMetrics(m *Metrics) {
	g.metrics = m
}

// instanceSeed выводит сид инстанса из сида мира и имени саббиома
func instanceSeed(worldSeed int64, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return worldSeed ^ int64(h.Sum64())
}

// GenerateChunk генерирует чанк по его координатам
func (g *Generator) GenerateChunk(coords vec.Vec2) *Chunk {
	start := time.Now()
	chunk := NewChunk(coords, g.height)

	origin := vec.Vec2{X: coords.X << 4, Y: coords.Y << 4} // chunk * 16

	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			local := vec.Vec2{X: x, Y: z}
			g.generateColumn(chunk, local, origin.Add(local))
		}
	}

	if g.metrics != nil {
		g.metrics.chunksGenerated.Inc()
		g.metrics.columnsGenerated.Add(ChunkSize * ChunkSize)
		g.metrics.generationSeconds.Observe(time.Since(start).Seconds())
	}

	return chunk
}

// generateColumn собирает одну колонну: поверхность, пласты саббиома,
// порода до дна, вода до уровня заполнения и покрытие сверху
func (g *Generator) generateColumn(chunk *Chunk, local, col vec.Vec2) {
	name := g.picker.Pick(col)
	inst, ok := g.instances[name]
	if !ok {
		logging.Error("пикер вернул неизвестный саббиом %q для колонны %v", name, col)
		return
	}

	originalOffset := int(math.Round(inst.GetOffset(col)))
	damp := inst.CalculateDampening(originalOffset)

	base := g.baseHeight + int(math.Round(
		g.heightNoise.Sample(float64(col.X)*g.baseScale, float64(col.Y)*g.baseScale)*g.baseAmplitude))

	surface := base + originalOffset
	if surface > g.height-2 {
		surface = g.height - 2
	}
	if surface < 1 {
		surface = 1
	}
	chunk.SetSurfaceHeight(local, surface)

	isFilled := surface < g.fillLevel
	stone := g.stoneKind(col)

	// Пласты саббиома от поверхности вглубь
	total := inst.GetTotalWidth(damp)
	for depth := 0; depth < total; depth++ {
		y := surface - depth
		if y < 0 {
			break
		}
		content := inst.GetContent(depth, y, damp, stone, isFilled)
		chunk.SetContent(vec.Vec3{X: local.X, Y: y, Z: local.Y}, content)
	}

	// Под пластами сплошная порода до дна мира
	for y := surface - total; y >= 0; y-- {
		chunk.SetBlock(vec.Vec3{X: local.X, Y: y, Z: local.Y}, g.pal.StoneFor(stone))
	}

	// Разрыв между поверхностью и уровнем заполнения
	if isFilled {
		stuffer := inst.Definition().Stuffer()
		for y := surface + 1; y < g.fillLevel && y < g.height; y++ {
			pos := vec.Vec3{X: local.X, Y: y, Z: local.Y}
			if stuffer != nil {
				chunk.SetContent(pos, stuffer.Content(g.fillLevel-1-y))
			} else {
				chunk.SetFluid(pos, g.pal.Water)
			}
		}
	}

	// Покрытие над поверхностью. Под водой жидкость не затирается:
	// ставится только блок.
	coverY := surface + 1
	if inst.Definition().Cover() != nil && coverY < g.height {
		ambient := g.coverNoise.Sample(float64(col.X)*g.coverScale, float64(col.Y)*g.coverScale)
		heightFraction := float64(surface) / float64(g.height)
		if content, ok := inst.GetCoverContent(col, isFilled, heightFraction, ambient); ok {
			chunk.SetBlock(vec.Vec3{X: local.X, Y: coverY, Z: local.Y}, content.Block)
		}
	}
}

// stoneKind выбирает региональную породу камня для колонны
func (g *Generator) stoneKind(col vec.Vec2) palette.StoneKind {
	v := (g.stoneNoise.Sample(float64(col.X)*g.stoneScale, float64(col.Y)*g.stoneScale) + 1.0) / 2.0
	switch {
	case v < 0.40:
		return palette.StoneGranite
	case v < 0.65:
		return palette.StoneLimestone
	case v < 0.85:
		return palette.StoneBasalt
	default:
		return palette.StoneSandstone
	}
}

// GenerateRegion генерирует прямоугольник чанков пулом воркеров.
// Колонны независимы, поэтому чанки раздаются воркерам без какой-либо
// синхронизации результатов: каждый пишет в свою ячейку среза.
func (g *Generator) GenerateRegion(ctx context.Context, from, to vec.Vec2, workers int) ([]*Chunk, error) {
	if workers < 1 {
		workers = 1
	}

	minX, maxX := from.X, to.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minZ, maxZ := from.Y, to.Y
	if minZ > maxZ {
		minZ, maxZ = maxZ, minZ
	}

	var coords []vec.Vec2
	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			coords = append(coords, vec.Vec2{X: x, Y: z})
		}
	}

	chunks := make([]*Chunk, len(coords))
	jobs := make(chan int)

	go func() {
		defer close(jobs)
		for i := range coords {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.metrics != nil {
				g.metrics.workersActive.Inc()
				defer g.metrics.workersActive.Dec()
			}
			for i := range jobs {
				chunks[i] = g.GenerateChunk(coords[i])
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}
