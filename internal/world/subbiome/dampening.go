package subbiome

// dampenThreshold в пределах ±2 юнитов рельеф считается достаточно
// ровным и слой демпфирования держит номинальную половинную ширину.
// Числа 2 и деление maxDampenWidth пополам менять нельзя: от них
// зависит, где появляются видимые ступени между соседними колоннами.
const dampenThreshold = 2

// Dampening результат сглаживания оффсета одной колонны.
// Создаётся заново на каждую колонну и нигде не кэшируется.
type Dampening struct {
	DampenedOffset int // оффсет после прижима
	OriginalOffset int // сырой оффсет из шума
	Width          int // добавочная ширина слоя демпфирования
}

// calculateDampening превращает сырой оффсет в ограниченную добавочную
// ширину. Ширина может быть и меньше номинала: отрицательный оффсет
// сжимает слой, но никогда не уводит ширину ниже нуля.
func calculateDampening(originalOffset, maxDampenWidth int) Dampening {
	normalWidth := maxDampenWidth / 2

	if absInt(originalOffset) <= dampenThreshold {
		return Dampening{
			DampenedOffset: originalOffset,
			OriginalOffset: originalOffset,
			Width:          normalWidth,
		}
	}

	maxDampening := maxDampenWidth / 2
	dampened := clampInt(absInt(originalOffset)-dampenThreshold, 0, maxDampening)
	if originalOffset < 0 {
		dampened = -dampened
	}

	return Dampening{
		DampenedOffset: dampened,
		OriginalOffset: originalOffset,
		Width:          normalWidth + dampened,
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
