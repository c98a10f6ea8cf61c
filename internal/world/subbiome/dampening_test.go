package subbiome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDampening_FlatTerrain(t *testing.T) {
	// Тест: в пределах ±2 оффсет не прижимается, ширина номинальная
	for offset := -2; offset <= 2; offset++ {
		d := calculateDampening(offset, 10)
		assert.Equal(t, offset, d.DampenedOffset, "оффсет %d не должен меняться", offset)
		assert.Equal(t, offset, d.OriginalOffset)
		assert.Equal(t, 5, d.Width, "ширина должна быть половиной максимума")
	}
}

func TestCalculateDampening_PositiveOffset(t *testing.T) {
	// Тест прижима положительных оффсетов
	d := calculateDampening(8, 10)
	assert.Equal(t, 5, d.DampenedOffset, "clamp(8-2, 0, 5) = 5")
	assert.Equal(t, 8, d.OriginalOffset)
	assert.Equal(t, 10, d.Width, "5 + 5 = 10")

	d = calculateDampening(3, 10)
	assert.Equal(t, 1, d.DampenedOffset, "clamp(3-2, 0, 5) = 1")
	assert.Equal(t, 6, d.Width)

	d = calculateDampening(100, 10)
	assert.Equal(t, 5, d.DampenedOffset, "большой оффсет прижимается к максимуму")
	assert.Equal(t, 10, d.Width)
}

func TestCalculateDampening_NegativeOffset(t *testing.T) {
	// Тест: отрицательный оффсет сжимает слой, но ширина не ниже нуля
	d := calculateDampening(-8, 10)
	assert.Equal(t, -5, d.DampenedOffset, "знак должен сохраняться")
	assert.Equal(t, -8, d.OriginalOffset)
	assert.Equal(t, 0, d.Width, "5 + (-5) = 0")

	d = calculateDampening(-4, 10)
	assert.Equal(t, -2, d.DampenedOffset)
	assert.Equal(t, 3, d.Width)
}

func TestCalculateDampening_SignAndBounds(t *testing.T) {
	// Тест свойств для всех оффсетов: знак сохраняется, |прижатый| в границах
	for _, maxWidth := range []int{4, 10, 11, 20} {
		half := maxWidth / 2
		for offset := -30; offset <= 30; offset++ {
			d := calculateDampening(offset, maxWidth)

			if offset > 0 {
				assert.GreaterOrEqual(t, d.DampenedOffset, 0)
			} else if offset < 0 {
				assert.LessOrEqual(t, d.DampenedOffset, 0)
			}

			assert.LessOrEqual(t, absInt(d.DampenedOffset), half,
				"|прижатый оффсет| не должен превышать половину максимума")
			assert.GreaterOrEqual(t, d.Width, 0, "ширина не бывает отрицательной")
			assert.Equal(t, offset, d.OriginalOffset, "сырой оффсет сохраняется как есть")
		}
	}
}

func TestCalculateDampening_Monotonic(t *testing.T) {
	// Тест монотонности: больший оффсет не даёт меньшую ширину
	prev := calculateDampening(0, 10).Width
	for offset := 1; offset <= 30; offset++ {
		w := calculateDampening(offset, 10).Width
		assert.GreaterOrEqual(t, w, prev, "ширина не должна убывать при росте оффсета")
		prev = w
	}
}

func TestCalculateDampening_OddMaxWidth(t *testing.T) {
	// Тест нечётного максимума: деление целочисленное
	d := calculateDampening(0, 11)
	assert.Equal(t, 5, d.Width, "11 / 2 = 5")

	d = calculateDampening(20, 11)
	assert.Equal(t, 5, d.DampenedOffset)
	assert.Equal(t, 10, d.Width)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 3, clampInt(3, 0, 5))
	assert.Equal(t, 0, clampInt(-2, 0, 5))
	assert.Equal(t, 5, clampInt(9, 0, 5))
}
