package subbiome

import (
	"errors"
	"fmt"
)

// Ошибки конфигурации саббиома. Обнаруживаются один раз при сборке
// определения; определение с такой ошибкой использовать нельзя.
var (
	ErrNoDampenLayer        = errors.New("нет слоя демпфирования")
	ErrMultipleDampenLayers = errors.New("больше одного слоя демпфирования")
	ErrNoSolidLayer         = errors.New("нет твёрдого слоя")
	ErrNegativeWidth        = errors.New("отрицательная ширина слоя")
)

// StructureRef непрозрачная ссылка на генератор структур.
// Хранится на определении, самим ядром не вызывается.
type StructureRef struct {
	Name string
}

// Decoration элемент взвешенного списка декораций саббиома.
// Размещением занимается отдельный проход генерации.
type Decoration struct {
	Name   string
	Weight int
}

// Config сырое описание саббиома до валидации. Собирается автором
// контента, превращается в определение вызовом Build.
type Config struct {
	Name        string
	Amplitude   float64
	Frequency   float64
	Offset      int
	Layers      []Layer
	Cover       *Cover
	Stuffer     *Stuffer
	Structure   *StructureRef
	Decorations []Decoration
}

// horizonEntry одна ступень глубины: слой и локальная глубина в нём
type horizonEntry struct {
	layer        *Layer
	depthInLayer int
}

// Definition неизменяемое, проверенное определение саббиома.
// Горизонты построены заранее, поэтому запрос содержимого на заданной
// глубине решается прямым индексированием, без обхода списка слоёв.
type Definition struct {
	name      string
	amplitude float64
	frequency float64
	offset    int

	layers []Layer
	dampen *Layer

	upperHorizon []horizonEntry
	lowerHorizon []horizonEntry

	depthToDampen   int
	maxDampenWidth  int
	minWidth        int
	minDepthToSolid int

	cover       *Cover
	stuffer     *Stuffer
	structure   *StructureRef
	decorations []Decoration
}

// Build валидирует конфигурацию и строит определение с горизонтами.
// Двухфазная сборка: частично инициализированное определение наружу
// не выходит, возвращается либо готовое значение, либо ошибка.
func (c Config) Build() (*Definition, error) {
	layers := make([]Layer, len(c.Layers))
	copy(layers, c.Layers)

	dampenIdx := -1
	for i := range layers {
		if layers[i].width < 0 {
			return nil, fmt.Errorf("саббиом %q, слой %d: %w", c.Name, i, ErrNegativeWidth)
		}
		if layers[i].IsDampen() {
			if dampenIdx >= 0 {
				return nil, fmt.Errorf("саббиом %q: %w", c.Name, ErrMultipleDampenLayers)
			}
			dampenIdx = i
		}
	}
	if dampenIdx < 0 {
		return nil, fmt.Errorf("саббиом %q: %w", c.Name, ErrNoDampenLayer)
	}

	d := &Definition{
		name:            c.Name,
		amplitude:       c.Amplitude,
		frequency:       c.Frequency,
		offset:          c.Offset,
		layers:          layers,
		dampen:          &layers[dampenIdx],
		maxDampenWidth:  layers[dampenIdx].width,
		minDepthToSolid: -1,
		cover:           c.Cover,
		stuffer:         c.Stuffer,
		structure:       c.Structure,
		decorations:     c.Decorations,
	}

	// Один проход по слоям: копим ширину, раскладываем юниты глубины
	// по горизонтам. Маркер демпфирования в горизонты не попадает и
	// ширины не добавляет; до него заполняется верхний горизонт,
	// после него нижний.
	runningWidth := 0
	for i := range layers {
		l := &layers[i]

		if l.solid && d.minDepthToSolid < 0 {
			d.minDepthToSolid = runningWidth
		}

		if l.IsDampen() {
			d.depthToDampen = runningWidth
			continue
		}

		for depth := 0; depth < l.width; depth++ {
			entry := horizonEntry{layer: l, depthInLayer: depth}
			if i < dampenIdx {
				d.upperHorizon = append(d.upperHorizon, entry)
			} else {
				d.lowerHorizon = append(d.lowerHorizon, entry)
			}
		}
		runningWidth += l.width
	}
	d.minWidth = runningWidth

	if d.minDepthToSolid < 0 {
		return nil, fmt.Errorf("саббиом %q: %w", c.Name, ErrNoSolidLayer)
	}

	return d, nil
}

// Name возвращает уникальное имя саббиома
func (d *Definition) Name() string { return d.name }

// Amplitude возвращает амплитуду шума
func (d *Definition) Amplitude() float64 { return d.amplitude }

// Frequency возвращает частоту выборки шума
func (d *Definition) Frequency() float64 { return d.frequency }

// Offset возвращает базовый целочисленный сдвиг высоты
func (d *Definition) Offset() int { return d.offset }

// DepthToDampen возвращает суммарную ширину слоёв над демпфированием
func (d *Definition) DepthToDampen() int { return d.depthToDampen }

// MaxDampenWidth возвращает максимальную ширину слоя демпфирования
func (d *Definition) MaxDampenWidth() int { return d.maxDampenWidth }

// MinWidth возвращает ширину определения при нулевой добавке демпфирования
func (d *Definition) MinWidth() int { return d.minWidth }

// MinDepthToSolid возвращает глубину начала первого твёрдого слоя
func (d *Definition) MinDepthToSolid() int { return d.minDepthToSolid }

// DampenLayer возвращает слой демпфирования
func (d *Definition) DampenLayer() *Layer { return d.dampen }

// Cover возвращает правило поверхностного покрытия, может быть nil
func (d *Definition) Cover() *Cover { return d.cover }

// Stuffer возвращает правило заполнения разрыва до уровня воды, может быть nil
func (d *Definition) Stuffer() *Stuffer { return d.stuffer }

// Structure возвращает ссылку на генератор структур, может быть nil
func (d *Definition) Structure() *StructureRef { return d.structure }

// Decorations возвращает взвешенный список декораций
func (d *Definition) Decorations() []Decoration { return d.decorations }

// GetUpperHorizon возвращает слой и локальную глубину для юнита выше
// демпфирования. Выход за границы не проверяется и паникует: такой
// вызов означает ошибку в цикле глубин генератора.
func (d *Definition) GetUpperHorizon(depth int) (*Layer, int) {
	e := d.upperHorizon[depth]
	return e.layer, e.depthInLayer
}

// GetLowerHorizon возвращает слой и локальную глубину для юнита ниже
// демпфирования. Границы не проверяются, как и в GetUpperHorizon.
func (d *Definition) GetLowerHorizon(depth int) (*Layer, int) {
	e := d.lowerHorizon[depth]
	return e.layer, e.depthInLayer
}
