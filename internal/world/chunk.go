package world

import (
	"sync"

	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
)

// ChunkSize сторона чанка в колоннах
const ChunkSize = 16

// Chunk представляет участок мира размером 16x16 колонн на полную
// высоту. Блоки и жидкости лежат в отдельных матрицах: воксель может
// одновременно нести блок и жидкость в порах.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире
	Height int      // Высота мира в блоках

	blocks  [][ChunkSize][ChunkSize]palette.BlockID // [y][x][z]
	fluids  [][ChunkSize][ChunkSize]palette.FluidID
	surface [ChunkSize][ChunkSize]int // Высота поверхности по колоннам

	Mu sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт пустой чанк указанной высоты
func NewChunk(coords vec.Vec2, height int) *Chunk {
	return &Chunk{
		Coords: coords,
		Height: height,
		blocks: make([][ChunkSize][ChunkSize]palette.BlockID, height),
		fluids: make([][ChunkSize][ChunkSize]palette.FluidID, height),
	}
}

// InBounds проверяет, лежит ли локальная позиция внутри чанка
func (c *Chunk) InBounds(local vec.Vec3) bool {
	return local.X >= 0 && local.X < ChunkSize &&
		local.Z >= 0 && local.Z < ChunkSize &&
		local.Y >= 0 && local.Y < c.Height
}

// SetBlock устанавливает блок по локальным координатам
func (c *Chunk) SetBlock(local vec.Vec3, id palette.BlockID) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.blocks[local.Y][local.X][local.Z] = id
}

// GetBlock возвращает блок по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec3) palette.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.blocks[local.Y][local.X][local.Z]
}

// SetFluid устанавливает жидкость по локальным координатам
func (c *Chunk) SetFluid(local vec.Vec3, id palette.FluidID) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.fluids[local.Y][local.X][local.Z] = id
}

// GetFluid возвращает жидкость по локальным координатам
func (c *Chunk) GetFluid(local vec.Vec3) palette.FluidID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.fluids[local.Y][local.X][local.Z]
}

// SetContent записывает блок и жидкость вокселя одной операцией
func (c *Chunk) SetContent(local vec.Vec3, content subbiome.Content) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.blocks[local.Y][local.X][local.Z] = content.Block
	c.fluids[local.Y][local.X][local.Z] = content.Fluid
}

// SetSurfaceHeight запоминает высоту поверхности колонны
func (c *Chunk) SetSurfaceHeight(local vec.Vec2, height int) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.surface[local.X][local.Y] = height
}

// SurfaceHeight возвращает высоту поверхности колонны
func (c *Chunk) SurfaceHeight(local vec.Vec2) int {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.surface[local.X][local.Y]
}
