package catalog

import (
	"testing"

	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(name string) subbiome.Config {
	p := palette.Default()
	return subbiome.Config{
		Name:      name,
		Amplitude: 2,
		Frequency: 0.01,
		Layers: []subbiome.Layer{
			subbiome.NewTop(1, p.Grass, p.Dirt),
			subbiome.NewDampen(6, p.Dirt),
			subbiome.NewStone(10, p),
		},
	}
}

func TestCatalog_Register(t *testing.T) {
	// Тест регистрации и поиска по имени
	c := New()

	require.NoError(t, c.Register(validConfig("alpha")))
	require.NoError(t, c.Register(validConfig("beta")))

	assert.Equal(t, 2, c.Len())

	def, ok := c.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, "alpha", def.Name())

	_, ok = c.Get("gamma")
	assert.False(t, ok, "незарегистрированное имя не должно находиться")

	assert.Equal(t, []string{"alpha", "beta"}, c.Names())
}

func TestCatalog_DuplicateName(t *testing.T) {
	// Тест отказа в регистрации дубликата
	c := New()

	require.NoError(t, c.Register(validConfig("alpha")))
	err := c.Register(validConfig("alpha"))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_RefusesBrokenConfig(t *testing.T) {
	// Тест: сломанная конфигурация не попадает в каталог
	p := palette.Default()
	c := New()

	broken := subbiome.Config{
		Name: "no_dampen",
		Layers: []subbiome.Layer{
			subbiome.NewStone(10, p),
		},
	}

	err := c.Register(broken)
	assert.ErrorIs(t, err, subbiome.ErrNoDampenLayer)
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("no_dampen")
	assert.False(t, ok)
}

func TestDefault_AllRegistered(t *testing.T) {
	// Тест стандартного набора: все саббиомы собираются без ошибок
	c, err := Default(palette.Default())
	require.NoError(t, err, "стандартный набор не должен содержать ошибок авторинга")

	expected := []string{
		"coastline",
		"desert",
		"forest_loam",
		"glacier",
		"meadow",
		"oasis",
		"stony_highlands",
		"swamp",
		"tundra_permafrost",
	}
	assert.Equal(t, expected, c.Names())
}

func TestDefault_DefinitionsUsable(t *testing.T) {
	// Тест пригодности определений: сводные величины согласованы
	c, err := Default(palette.Default())
	require.NoError(t, err)

	for _, name := range c.Names() {
		def, ok := c.Get(name)
		require.True(t, ok)

		assert.NotNil(t, def.DampenLayer(), "%s: слой демпфирования обязателен", name)
		assert.GreaterOrEqual(t, def.MinDepthToSolid(), 0, "%s: твёрдый слой обязателен", name)
		assert.Greater(t, def.MinWidth(), 0, "%s: нулевая ширина определения", name)
		assert.LessOrEqual(t, def.DepthToDampen(), def.MinWidth(), name)
		assert.Greater(t, def.MaxDampenWidth(), 0, name)
		assert.Greater(t, def.Frequency(), 0.0, "%s: нулевая частота шума", name)
	}
}

func TestDefault_AuthoredMetadata(t *testing.T) {
	// Тест авторских метаданных: структуры и декорации на месте
	c, err := Default(palette.Default())
	require.NoError(t, err)

	desert, ok := c.Get("desert")
	require.True(t, ok)
	require.NotNil(t, desert.Structure())
	assert.Equal(t, "buried_ruins", desert.Structure().Name)
	assert.Equal(t, 1, desert.Offset(), "пустыня приподнята над базовой высотой")

	meadow, ok := c.Get("meadow")
	require.True(t, ok)
	assert.Nil(t, meadow.Structure(), "у луга нет генератора структур")
	assert.NotNil(t, meadow.Cover(), "луг зарастает травой")
	assert.NotEmpty(t, meadow.Decorations())
	assert.Equal(t, 4.0, meadow.Amplitude())

	glacier, ok := c.Get("glacier")
	require.True(t, ok)
	require.NotNil(t, glacier.Stuffer(), "промёрзшие водоёмы заполняются")
	assert.Empty(t, glacier.Decorations())
}
