package subbiome

import "github.com/annel0/mmo-worldgen/internal/world/palette"

// Переиспользуемые фрагменты слоёв. Фабрики возвращают собственные
// срезы значений, общего изменяемого реестра нет: слои неизменяемы,
// каждый саббиом получает свою копию.

// Permafrost полоса вечной мерзлоты под холодными саббиомами
func Permafrost(p palette.Palette, width int) []Layer {
	return []Layer{
		NewSimple(width, true, p.Permafrost),
	}
}

// Clay глинистая прослойка с гравийным дном, обычная для низин
func Clay(p palette.Palette) []Layer {
	return []Layer{
		NewSimple(2, false, p.Clay),
		NewLoose(1, p.Gravel, p.Clay),
	}
}

// SingleGroundwaterStone один водоносный юнит на границе с породой
func SingleGroundwaterStone(p palette.Palette) []Layer {
	return []Layer{
		NewGroundwater(1, p.Gravel, p.Water),
		NewStone(1, p),
	}
}
