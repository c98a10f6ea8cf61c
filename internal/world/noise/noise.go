package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source выдаёт детерминированный 2D шум в диапазоне [-1, 1].
// Один и тот же сид и координаты всегда дают одно и то же значение,
// поэтому источник безопасно использовать из нескольких горутин.
type Source interface {
	Sample(x, z float64) float64
}

// PerlinSource источник шума Перлина
type PerlinSource struct {
	p *perlin.Perlin
}

// NewPerlin создаёт источник шума Перлина со стандартными параметрами
func NewPerlin(seed int64) *PerlinSource {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &PerlinSource{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// NewPerlinParams создаёт источник шума Перлина с указанными параметрами
func NewPerlinParams(seed int64, alpha, beta float64, octaves int) *PerlinSource {
	return &PerlinSource{p: perlin.NewPerlin(alpha, beta, int32(octaves), seed)}
}

// Sample возвращает значение шума для указанных координат
func (s *PerlinSource) Sample(x, z float64) float64 {
	return clamp(s.p.Noise2D(x, z))
}

// SimplexSource источник шума OpenSimplex
type SimplexSource struct {
	n opensimplex.Noise
}

// NewSimplex создаёт источник шума OpenSimplex
func NewSimplex(seed int64) *SimplexSource {
	return &SimplexSource{n: opensimplex.New(seed)}
}

// Sample возвращает значение шума для указанных координат
func (s *SimplexSource) Sample(x, z float64) float64 {
	return clamp(s.n.Eval2(x, z))
}

// clamp прижимает значение к диапазону [-1, 1].
// go-perlin на больших октавах может слегка выходить за границы.
func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}

// Constant источник с постоянным значением. Удобен в тестах,
// где нужен предсказуемый оффсет вместо настоящего шума.
type Constant float64

// Sample возвращает постоянное значение независимо от координат
func (c Constant) Sample(x, z float64) float64 {
	return float64(c)
}
