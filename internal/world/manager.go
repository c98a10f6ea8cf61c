package world

import (
	"context"
	"sync"

	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
)

// Manager хранит сгенерированные чанки и отдаёт содержимое мира по
// глобальным координатам. Чанки генерируются лениво при первом
// обращении; повторные обращения читают из кэша.
type Manager struct {
	generator *Generator
	chunks    map[vec.Vec2]*Chunk
	mu        sync.RWMutex
}

// NewManager создаёт менеджер над генератором
func NewManager(g *Generator) *Manager {
	return &Manager{
		generator: g,
		chunks:    make(map[vec.Vec2]*Chunk),
	}
}

// GetChunk возвращает чанк, генерируя его при первом обращении
func (m *Manager) GetChunk(coords vec.Vec2) *Chunk {
	m.mu.RLock()
	chunk := m.chunks[coords]
	m.mu.RUnlock()
	if chunk != nil {
		return chunk
	}

	// Генерация вне блокировки: колонны чистые, двойная генерация
	// одинакова покоординатно, выигрывает первый записавший
	generated := m.generator.GenerateChunk(coords)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing := m.chunks[coords]; existing != nil {
		return existing
	}
	m.chunks[coords] = generated
	return generated
}

// ChunkCount возвращает число чанков в кэше
func (m *Manager) ChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// Preload прогревает кэш регионом чанков через пул воркеров
func (m *Manager) Preload(ctx context.Context, from, to vec.Vec2, workers int) error {
	chunks, err := m.generator.GenerateRegion(ctx, from, to, workers)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, chunk := range chunks {
		if _, exists := m.chunks[chunk.Coords]; !exists {
			m.chunks[chunk.Coords] = chunk
		}
	}
	return nil
}

// GetBlock возвращает блок по глобальным координатам
func (m *Manager) GetBlock(pos vec.Vec3) palette.BlockID {
	if pos.Y < 0 || pos.Y >= m.generator.height {
		return m.generator.pal.Air
	}
	chunk := m.GetChunk(pos.Column().ToChunkCoords())
	local := pos.Column().LocalInChunk()
	return chunk.GetBlock(vec.Vec3{X: local.X, Y: pos.Y, Z: local.Y})
}

// GetFluid возвращает жидкость по глобальным координатам
func (m *Manager) GetFluid(pos vec.Vec3) palette.FluidID {
	if pos.Y < 0 || pos.Y >= m.generator.height {
		return palette.FluidNone
	}
	chunk := m.GetChunk(pos.Column().ToChunkCoords())
	local := pos.Column().LocalInChunk()
	return chunk.GetFluid(vec.Vec3{X: local.X, Y: pos.Y, Z: local.Y})
}

// SurfaceHeight возвращает высоту поверхности колонны по глобальным
// координатам
func (m *Manager) SurfaceHeight(col vec.Vec2) int {
	chunk := m.GetChunk(col.ToChunkCoords())
	return chunk.SurfaceHeight(col.LocalInChunk())
}
