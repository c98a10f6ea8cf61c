package subbiome

import (
	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
)

// Cover поверхностное убранство саббиома: растительность, лишайник,
// соль. Ставится одним блоком над верхним слоем рельефа.
type Cover struct {
	block   palette.BlockID
	density float64 // доля колонн с покрытием, 0..1
	minFrac float64 // нижняя граница высоты, доля от высоты мира
	maxFrac float64 // верхняя граница высоты
	flooded bool    // ставить ли покрытие под водой
}

// NewCover создаёт покрытие, растущее на любой высоте
func NewCover(block palette.BlockID, density float64) *Cover {
	return &Cover{block: block, density: density, minFrac: 0, maxFrac: 1}
}

// NewBandedCover создаёт покрытие, растущее только в диапазоне высот
func NewBandedCover(block palette.BlockID, density, minFrac, maxFrac float64) *Cover {
	return &Cover{block: block, density: density, minFrac: minFrac, maxFrac: maxFrac}
}

// NewFloodedCover создаёт покрытие, живущее и под водой (водоросли, соль)
func NewFloodedCover(block palette.BlockID, density float64) *Cover {
	return &Cover{block: block, density: density, minFrac: 0, maxFrac: 1, flooded: true}
}

// Content решает, есть ли покрытие в колонне. ambient — значение шума
// в [-1, 1] для этой позиции, heightFraction — высота поверхности как
// доля от высоты мира.
func (c *Cover) Content(pos vec.Vec2, isFilled bool, heightFraction, ambient float64) (Content, bool) {
	if isFilled && !c.flooded {
		return Content{}, false
	}
	if heightFraction < c.minFrac || heightFraction > c.maxFrac {
		return Content{}, false
	}

	// Шум в [0, 1] против плотности: детерминированное разрежение
	if (ambient+1.0)/2.0 >= c.density {
		return Content{}, false
	}

	return Content{Block: c.block}, true
}
