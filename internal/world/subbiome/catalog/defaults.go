package catalog

import (
	"errors"

	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
)

// Default возвращает каталог со стандартным набором саббиомов на
// указанной палитре. Ошибки авторинга отдельных саббиомов собираются
// в одну диагностику; каталог при этом остаётся рабочим для тех, кто
// зарегистрировался успешно.
func Default(p palette.Palette) (*Catalog, error) {
	c := New()

	var errs []error
	for _, cfg := range defaultConfigs(p) {
		if err := c.Register(cfg); err != nil {
			errs = append(errs, err)
		}
	}

	return c, errors.Join(errs...)
}

func defaultConfigs(p palette.Palette) []subbiome.Config {
	return []subbiome.Config{
		meadow(p),
		forestLoam(p),
		desert(p),
		oasis(p),
		coastline(p),
		swamp(p),
		tundraPermafrost(p),
		glacier(p),
		stonyHighlands(p),
	}
}

// meadow луг: трава над грунтом, глинистая прослойка, водоносный
// юнит на границе с породой
func meadow(p palette.Palette) subbiome.Config {
	layers := []subbiome.Layer{
		subbiome.NewTop(1, p.Grass, p.Dirt),
		subbiome.NewSimple(2, false, p.Dirt),
	}
	layers = append(layers, subbiome.Clay(p)...)
	layers = append(layers, subbiome.NewDampen(8, p.Dirt))
	layers = append(layers, subbiome.SingleGroundwaterStone(p)...)
	layers = append(layers, subbiome.NewStone(18, p))

	return subbiome.Config{
		Name:      "meadow",
		Amplitude: 4,
		Frequency: 0.015,
		Layers:    layers,
		Cover:     subbiome.NewCover(p.Grass, 0.35),
		Decorations: []subbiome.Decoration{
			{Name: "flowers", Weight: 6},
			{Name: "bushes", Weight: 2},
		},
	}
}

// forestLoam лесной суглинок: толстая подпочва, пересыхающие лужи
func forestLoam(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "forest_loam",
		Amplitude: 5,
		Frequency: 0.012,
		Layers: []subbiome.Layer{
			subbiome.NewTop(1, p.Grass, p.Dirt),
			subbiome.NewMud(1, p.Mud, p.Dirt),
			subbiome.NewSimple(3, false, p.Dirt),
			subbiome.NewDampen(10, p.Dirt),
			subbiome.NewStone(20, p),
		},
		Cover: subbiome.NewCover(p.Grass, 0.2),
		Decorations: []subbiome.Decoration{
			{Name: "oak", Weight: 8},
			{Name: "birch", Weight: 4},
			{Name: "mushrooms", Weight: 1},
		},
	}
}

// desert пустыня: рыхлый песок над каменным демпфированием
func desert(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "desert",
		Amplitude: 6,
		Frequency: 0.02,
		Offset:    1,
		Layers: []subbiome.Layer{
			subbiome.NewLoose(2, p.Sand, p.Sand),
			subbiome.NewSimple(3, false, p.Sand),
			subbiome.NewStonyDampen(8, p),
			subbiome.NewStone(18, p),
		},
		Structure: &subbiome.StructureRef{Name: "buried_ruins"},
		Decorations: []subbiome.Decoration{
			{Name: "cactus", Weight: 3},
			{Name: "dead_bush", Weight: 2},
		},
	}
}

// oasis оазис: плодородная кромка вокруг воды посреди песков
func oasis(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "oasis",
		Amplitude: 2,
		Frequency: 0.03,
		Offset:    -1,
		Layers: []subbiome.Layer{
			subbiome.NewOasis(2, p.Grass, p.Dirt, p.Mud),
			subbiome.NewSimple(2, false, p.Sand),
			subbiome.NewDampen(6, p.Sand),
			subbiome.NewGroundwater(1, p.Gravel, p.Water),
			subbiome.NewStone(16, p),
		},
		Stuffer: subbiome.NewFluidStuffer(p.Water),
		Decorations: []subbiome.Decoration{
			{Name: "palm", Weight: 5},
			{Name: "reeds", Weight: 3},
		},
	}
}

// coastline побережье: пляж, не исчезающий под водой
func coastline(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "coastline",
		Amplitude: 3,
		Frequency: 0.025,
		Offset:    -2,
		Layers: []subbiome.Layer{
			subbiome.NewCoastlineTop(3, p.Sand, p.Sand),
			subbiome.NewLoose(2, p.Sand, p.Gravel),
			subbiome.NewDampen(8, p.Sand),
			subbiome.NewStone(16, p),
		},
		Stuffer: subbiome.NewFluidStuffer(p.Water),
	}
}

// swamp болото: грязь, глина и вода в порах, водоросли и под водой
func swamp(p palette.Palette) subbiome.Config {
	layers := []subbiome.Layer{
		subbiome.NewMud(2, p.Mud, p.Dirt),
	}
	layers = append(layers, subbiome.Clay(p)...)
	layers = append(layers,
		subbiome.NewDampen(4, p.Mud),
		subbiome.NewGroundwater(2, p.Gravel, p.Water),
		subbiome.NewStone(14, p),
	)

	return subbiome.Config{
		Name:      "swamp",
		Amplitude: 1,
		Frequency: 0.02,
		Offset:    -1,
		Layers:    layers,
		Cover:     subbiome.NewFloodedCover(p.Mud, 0.15),
		Stuffer:   subbiome.NewFluidStuffer(p.Water),
		Decorations: []subbiome.Decoration{
			{Name: "willow", Weight: 4},
			{Name: "reeds", Weight: 6},
		},
	}
}

// tundraPermafrost тундра: тонкий дёрн над вечной мерзлотой,
// промёрзшие водоёмы заполняются сплошным льдом
func tundraPermafrost(p palette.Palette) subbiome.Config {
	layers := []subbiome.Layer{
		subbiome.NewTop(1, p.Grass, p.Dirt),
		subbiome.NewLooseSnow(1, p.Snow),
	}
	layers = append(layers, subbiome.Permafrost(p, 4)...)
	layers = append(layers,
		subbiome.NewDampen(6, p.Permafrost),
		subbiome.NewStone(16, p),
	)

	return subbiome.Config{
		Name:      "tundra_permafrost",
		Amplitude: 3,
		Frequency: 0.01,
		Layers:    layers,
		Cover:     subbiome.NewBandedCover(p.Snow, 0.5, 0.3, 1.0),
		Stuffer:   subbiome.NewBlockStuffer(p.Ice),
		Decorations: []subbiome.Decoration{
			{Name: "lichen", Weight: 4},
		},
	}
}

// glacier ледник: снег над льдом, ледяное демпфирование,
// вода под ледяной коркой
func glacier(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "glacier",
		Amplitude: 5,
		Frequency: 0.008,
		Offset:    2,
		Layers: []subbiome.Layer{
			subbiome.NewLooseSnow(1, p.Snow),
			subbiome.NewPackedSnow(2, p.PackedSnow),
			subbiome.NewIce(3, p.Ice),
			subbiome.NewIceDampen(8, p.Ice),
			subbiome.NewStone(12, p),
		},
		Cover:   subbiome.NewBandedCover(p.Snow, 0.8, 0.0, 1.0),
		Stuffer: subbiome.NewCappedStuffer(p.Water, p.Ice, 2),
	}
}

// stonyHighlands каменистое нагорье: голая порода с гравийной коркой
func stonyHighlands(p palette.Palette) subbiome.Config {
	return subbiome.Config{
		Name:      "stony_highlands",
		Amplitude: 9,
		Frequency: 0.02,
		Offset:    3,
		Layers: []subbiome.Layer{
			subbiome.NewStonyTop(3, p.Gravel, 0.4, p),
			subbiome.NewStonyDampen(10, p),
			subbiome.NewStone(20, p),
		},
		Structure: &subbiome.StructureRef{Name: "standing_stones"},
		Decorations: []subbiome.Decoration{
			{Name: "boulder", Weight: 2},
		},
	}
}
