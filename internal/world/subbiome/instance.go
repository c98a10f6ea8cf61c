package subbiome

import (
	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world/noise"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
)

// Instance связывает определение с одним источником шума и отвечает
// на запросы по колоннам. Состояния между запросами нет: все операции
// суть чистые функции от входов, определения и read-only шума, поэтому
// колонны можно генерировать параллельно без блокировок.
type Instance struct {
	def   *Definition
	noise noise.Source
}

// NewInstance создаёт инстанс саббиома над источником шума
func NewInstance(def *Definition, src noise.Source) *Instance {
	return &Instance{def: def, noise: src}
}

// Definition возвращает определение инстанса
func (in *Instance) Definition() *Definition { return in.def }

// GetOffset возвращает вертикальный сдвиг колонны: шум в позиции,
// умноженный на амплитуду, плюс базовый сдвиг определения. Частота
// масштабирует координаты перед выборкой.
func (in *Instance) GetOffset(pos vec.Vec2) float64 {
	sample := in.noise.Sample(
		float64(pos.X)*in.def.frequency,
		float64(pos.Y)*in.def.frequency,
	)
	return sample*in.def.amplitude + float64(in.def.offset)
}

// CalculateDampening превращает сырой оффсет колонны в демпфирование
func (in *Instance) CalculateDampening(originalOffset int) Dampening {
	return calculateDampening(originalOffset, in.def.maxDampenWidth)
}

// GetTotalWidth возвращает полную ширину рельефа колонны
func (in *Instance) GetTotalWidth(d Dampening) int {
	return in.def.minWidth + d.Width
}

// GetDepthToSolid возвращает глубину до твёрдого грунта в колонне
func (in *Instance) GetDepthToSolid(d Dampening) int {
	return in.def.minDepthToSolid + d.Width
}

// GetContent разрешает воксель колонны на заданной глубине под
// поверхностью. Глубина делится на три диапазона: верхний горизонт,
// растянутый слой демпфирования и нижний горизонт. Верхний горизонт
// видит сырой оффсет, всё под ним видит демпфированный.
func (in *Instance) GetContent(depthBelowSurface, y int, d Dampening, stone palette.StoneKind, isFilled bool) Content {
	var (
		layer        *Layer
		depthInLayer int
		actualOffset int
	)

	if depthBelowSurface < in.def.depthToDampen {
		layer, depthInLayer = in.def.GetUpperHorizon(depthBelowSurface)
		actualOffset = d.OriginalOffset
	} else {
		depthToLowerHorizon := in.def.depthToDampen + d.Width
		if depthBelowSurface < depthToLowerHorizon {
			layer = in.def.dampen
			depthInLayer = depthBelowSurface - in.def.depthToDampen
			actualOffset = d.DampenedOffset
		} else {
			layer, depthInLayer = in.def.GetLowerHorizon(depthBelowSurface - depthToLowerHorizon)
			actualOffset = d.DampenedOffset
		}
	}

	// Затопленной считается только часть колонны над твёрдым порогом
	isFilledAtDepth := depthBelowSurface < (in.def.minDepthToSolid+d.Width) && isFilled

	return layer.Content(depthInLayer, actualOffset, stone, y, isFilledAtDepth)
}

// GetCoverContent возвращает поверхностное покрытие колонны.
// Второе значение false, если покрытия нет (не задано или не выпало).
func (in *Instance) GetCoverContent(pos vec.Vec2, isFilled bool, heightFraction, ambient float64) (Content, bool) {
	if in.def.cover == nil {
		return Content{}, false
	}
	return in.def.cover.Content(pos, isFilled, heightFraction, ambient)
}
