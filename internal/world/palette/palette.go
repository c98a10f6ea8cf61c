package palette

// BlockID представляет идентификатор блока
type BlockID uint16

// FluidID представляет идентификатор жидкости в колонне
type FluidID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0
	GrassBlockID                // 1
	DirtBlockID                 // 2
	SandBlockID                 // 3
	MudBlockID                  // 4
	ClayBlockID                 // 5
	GravelBlockID               // 6

	// Каменные породы (начиная с 100)
	GraniteBlockID   BlockID = 100 // Гранит
	LimestoneBlockID BlockID = 101 // Известняк
	BasaltBlockID    BlockID = 102 // Базальт
	SandstoneBlockID BlockID = 103 // Песчаник

	// Холодный климат (начиная с 200)
	SnowBlockID       BlockID = 200 // Свежий снег
	PackedSnowBlockID BlockID = 201 // Слежавшийся снег
	IceBlockID        BlockID = 202 // Лёд
	PermafrostBlockID BlockID = 203 // Вечная мерзлота
)

// Константы ID жидкостей
const (
	FluidNone  FluidID = iota // 0 — жидкости нет
	WaterFluid                // 1
)

// StoneKind определяет породу камня колонны.
// Порода выбирается генератором по полю пород, а не самим слоем.
type StoneKind int

const (
	StoneGranite StoneKind = iota
	StoneLimestone
	StoneBasalt
	StoneSandstone
)

// String возвращает строковое представление породы
func (k StoneKind) String() string {
	switch k {
	case StoneGranite:
		return "granite"
	case StoneLimestone:
		return "limestone"
	case StoneBasalt:
		return "basalt"
	case StoneSandstone:
		return "sandstone"
	default:
		return "unknown"
	}
}

// Palette сопоставляет роли блоков конкретным ID.
// Слои оперируют ролями (трава, грунт, снег), а не числовыми ID,
// поэтому один набор слоёв работает с любой палитрой.
type Palette struct {
	Air        BlockID
	Grass      BlockID
	Dirt       BlockID
	Sand       BlockID
	Mud        BlockID
	Clay       BlockID
	Gravel     BlockID
	Granite    BlockID
	Limestone  BlockID
	Basalt     BlockID
	Sandstone  BlockID
	Snow       BlockID
	PackedSnow BlockID
	Ice        BlockID
	Permafrost BlockID

	Water FluidID
}

// Default возвращает палитру со стандартными ID блоков
func Default() Palette {
	return Palette{
		Air:        AirBlockID,
		Grass:      GrassBlockID,
		Dirt:       DirtBlockID,
		Sand:       SandBlockID,
		Mud:        MudBlockID,
		Clay:       ClayBlockID,
		Gravel:     GravelBlockID,
		Granite:    GraniteBlockID,
		Limestone:  LimestoneBlockID,
		Basalt:     BasaltBlockID,
		Sandstone:  SandstoneBlockID,
		Snow:       SnowBlockID,
		PackedSnow: PackedSnowBlockID,
		Ice:        IceBlockID,
		Permafrost: PermafrostBlockID,
		Water:      WaterFluid,
	}
}

// StoneFor возвращает блок указанной породы камня
func (p Palette) StoneFor(kind StoneKind) BlockID {
	switch kind {
	case StoneLimestone:
		return p.Limestone
	case StoneBasalt:
		return p.Basalt
	case StoneSandstone:
		return p.Sandstone
	default:
		return p.Granite
	}
}
