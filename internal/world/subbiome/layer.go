package subbiome

import (
	"math"

	"github.com/annel0/mmo-worldgen/internal/world/palette"
)

// Content результат разрешения одного вокселя колонны
type Content struct {
	Block palette.BlockID
	Fluid palette.FluidID
}

// layerKind закрытый набор видов слоёв
type layerKind int

const (
	kindSimple layerKind = iota
	kindTop
	kindStone
	kindStonyTop
	kindDampen
	kindStonyDampen
	kindIceDampen
	kindLoose
	kindGroundwater
	kindMud
	kindSnow
	kindIce
	kindOasis
	kindCoastlineTop
)

// Layer один пласт вертикального состава саббиома.
// Слои неизменяемы: создаются один раз при сборке определения и
// разделяются всеми колоннами этого саббиома.
// Палитра блоков привязывается в конструкторе, а не ищется глобально.
type Layer struct {
	kind  layerKind
	width int // для слоёв демпфирования хранит максимальную ширину
	solid bool

	// Параметры вариантов. Каждый вид использует своё подмножество.
	block     palette.BlockID
	crust     palette.BlockID
	subsoil   palette.BlockID
	wet       palette.BlockID
	fluid     palette.FluidID
	amplitude float64
	pal       palette.Palette
}

// Width возвращает ширину слоя в юнитах глубины.
// У слоя демпфирования здесь лежит максимальная ширина.
func (l *Layer) Width() int { return l.width }

// IsSolid возвращает, считается ли слой твёрдым грунтом
func (l *Layer) IsSolid() bool { return l.solid }

// IsDampen возвращает, является ли слой маркером демпфирования
func (l *Layer) IsDampen() bool {
	return l.kind == kindDampen || l.kind == kindStonyDampen || l.kind == kindIceDampen
}

// MaxDampenWidth возвращает максимальную ширину демпфирования.
// Имеет смысл только для слоёв демпфирования.
func (l *Layer) MaxDampenWidth() int { return l.width }

// NewSimple слой из одного фиксированного блока
func NewSimple(width int, solid bool, block palette.BlockID) Layer {
	return Layer{kind: kindSimple, width: width, solid: solid, block: block}
}

// NewTop верхний слой: корка на нулевой глубине, подпочва ниже.
// Под водой корка не растёт и заменяется подпочвой.
func NewTop(width int, crust, subsoil palette.BlockID) Layer {
	return Layer{kind: kindTop, width: width, crust: crust, subsoil: subsoil}
}

// NewStone слой региональной породы камня. Всегда твёрдый.
func NewStone(width int, pal palette.Palette) Layer {
	return Layer{kind: kindStone, width: width, solid: true, pal: pal}
}

// NewStonyTop каменистая поверхность: корка переменной толщины над
// региональной породой. Толщина корки зависит от оффсета колонны,
// масштабированного собственной амплитудой слоя.
func NewStonyTop(width int, crust palette.BlockID, amplitude float64, pal palette.Palette) Layer {
	return Layer{kind: kindStonyTop, width: width, solid: true, crust: crust, amplitude: amplitude, pal: pal}
}

// NewDampen маркер демпфирования с обычным наполнителем
func NewDampen(maxWidth int, filler palette.BlockID) Layer {
	return Layer{kind: kindDampen, width: maxWidth, block: filler}
}

// NewStonyDampen маркер демпфирования, заполняемый региональной породой
func NewStonyDampen(maxWidth int, pal palette.Palette) Layer {
	return Layer{kind: kindStonyDampen, width: maxWidth, solid: true, pal: pal}
}

// NewIceDampen маркер демпфирования, заполняемый льдом
func NewIceDampen(maxWidth int, ice palette.BlockID) Layer {
	return Layer{kind: kindIceDampen, width: maxWidth, block: ice}
}

// NewLoose рыхлый слой: сухой материал над водой, мокрый под ней
func NewLoose(width int, dry, wet palette.BlockID) Layer {
	return Layer{kind: kindLoose, width: width, block: dry, wet: wet}
}

// NewGroundwater водоносный слой: блок с жидкостью в порах
func NewGroundwater(width int, block palette.BlockID, fluid palette.FluidID) Layer {
	return Layer{kind: kindGroundwater, width: width, block: block, fluid: fluid}
}

// NewMud слой водоёма: грязь под водой, сухой материал на суше
func NewMud(width int, mud, dry palette.BlockID) Layer {
	return Layer{kind: kindMud, width: width, wet: mud, block: dry}
}

// NewLooseSnow слой свежего снега
func NewLooseSnow(width int, snow palette.BlockID) Layer {
	return Layer{kind: kindSnow, width: width, block: snow}
}

// NewPackedSnow слой слежавшегося снега
func NewPackedSnow(width int, packed palette.BlockID) Layer {
	return Layer{kind: kindSnow, width: width, solid: true, block: packed}
}

// NewIce ледяной слой. Твёрдый.
func NewIce(width int, ice palette.BlockID) Layer {
	return Layer{kind: kindIce, width: width, solid: true, block: ice}
}

// NewOasis плодородный слой оазиса: грязь под водой, иначе корка
// на нулевой глубине и подпочва ниже
func NewOasis(width int, crust, subsoil, mud palette.BlockID) Layer {
	return Layer{kind: kindOasis, width: width, crust: crust, subsoil: subsoil, wet: mud}
}

// NewCoastlineTop прибрежный верхний слой: пляжная корка видна
// и под водой, в отличие от обычного Top
func NewCoastlineTop(width int, beach, subsoil palette.BlockID) Layer {
	return Layer{kind: kindCoastlineTop, width: width, crust: beach, subsoil: subsoil}
}

// Content разрешает воксель слоя по локальной глубине и параметрам колонны.
// Все входы предварительно нормированы вызывающей стороной, поэтому
// путей отказа здесь нет.
func (l *Layer) Content(depthInLayer, offset int, stone palette.StoneKind, y int, isFilled bool) Content {
	switch l.kind {
	case kindSimple:
		return Content{Block: l.block}

	case kindTop:
		if depthInLayer == 0 && !isFilled {
			return Content{Block: l.crust}
		}
		return Content{Block: l.subsoil}

	case kindStone, kindStonyDampen:
		return Content{Block: l.pal.StoneFor(stone)}

	case kindStonyTop:
		// Толщина корки растёт вместе с локальным оффсетом
		crustDepth := 1 + int(math.Abs(float64(offset)*l.amplitude))
		if depthInLayer < crustDepth {
			return Content{Block: l.crust}
		}
		return Content{Block: l.pal.StoneFor(stone)}

	case kindDampen, kindSnow, kindIce, kindIceDampen:
		return Content{Block: l.block}

	case kindLoose:
		if isFilled {
			return Content{Block: l.wet}
		}
		return Content{Block: l.block}

	case kindGroundwater:
		return Content{Block: l.block, Fluid: l.fluid}

	case kindMud:
		if isFilled {
			return Content{Block: l.wet}
		}
		return Content{Block: l.block}

	case kindOasis:
		if isFilled {
			return Content{Block: l.wet}
		}
		if depthInLayer == 0 {
			return Content{Block: l.crust}
		}
		return Content{Block: l.subsoil}

	case kindCoastlineTop:
		if depthInLayer == 0 {
			return Content{Block: l.crust}
		}
		return Content{Block: l.subsoil}
	}

	return Content{}
}
