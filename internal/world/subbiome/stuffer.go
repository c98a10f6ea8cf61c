package subbiome

import "github.com/annel0/mmo-worldgen/internal/world/palette"

// Stuffer заполняет разрыв между локальной высотой рельефа и глобальным
// уровнем заполнения мира: водой, льдом или льдом поверх воды.
type Stuffer struct {
	fluid    palette.FluidID
	cap      palette.BlockID
	capDepth int // сколько верхних юнитов разрыва занимает блок-крышка
}

// NewFluidStuffer заполняет весь разрыв жидкостью
func NewFluidStuffer(fluid palette.FluidID) *Stuffer {
	return &Stuffer{fluid: fluid}
}

// NewBlockStuffer заполняет весь разрыв блоком (сплошной лёд)
func NewBlockStuffer(block palette.BlockID) *Stuffer {
	return &Stuffer{cap: block, capDepth: int(^uint(0) >> 1)}
}

// NewCappedStuffer заполняет разрыв жидкостью с блоком-крышкой сверху
// (ледяная корка над водой)
func NewCappedStuffer(fluid palette.FluidID, cap palette.BlockID, capDepth int) *Stuffer {
	return &Stuffer{fluid: fluid, cap: cap, capDepth: capDepth}
}

// Content возвращает содержимое вокселя разрыва. depthBelowFill — глубина
// от уровня заполнения, ноль у самой поверхности воды.
func (s *Stuffer) Content(depthBelowFill int) Content {
	if depthBelowFill < s.capDepth {
		return Content{Block: s.cap}
	}
	return Content{Fluid: s.fluid}
}
