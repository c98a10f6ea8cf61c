package config

import (
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора.
// Содержит секции мира, шума и метрик; может расширяться.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Noise   NoiseConfig   `yaml:"noise"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed       int64 `yaml:"seed"`
	Height     int   `yaml:"height"`
	FillLevel  int   `yaml:"fill_level"`
	BaseHeight int   `yaml:"base_height"`
	Workers    int   `yaml:"workers"`
}

type NoiseConfig struct {
	Kind    string  `yaml:"kind"` // perlin | simplex
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int     `yaml:"octaves"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetSeed возвращает сид мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("WORLDGEN_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1337
}

// GetHeight возвращает высоту мира в блоках
func (w *WorldConfig) GetHeight() int {
	return getIntWithEnvFallback(w.Height, "WORLDGEN_HEIGHT", 256)
}

// GetFillLevel возвращает уровень воды мира
func (w *WorldConfig) GetFillLevel() int {
	return getIntWithEnvFallback(w.FillLevel, "WORLDGEN_FILL_LEVEL", 64)
}

// GetBaseHeight возвращает базовую высоту поверхности
func (w *WorldConfig) GetBaseHeight() int {
	return getIntWithEnvFallback(w.BaseHeight, "WORLDGEN_BASE_HEIGHT", 72)
}

// GetWorkers возвращает число воркеров генерации
func (w *WorldConfig) GetWorkers() int {
	return getIntWithEnvFallback(w.Workers, "WORLDGEN_WORKERS", 4)
}

// GetKind возвращает вид источника шума (perlin или simplex)
func (n *NoiseConfig) GetKind() string {
	if n.Kind != "" {
		return n.Kind
	}
	if envVal := os.Getenv("WORLDGEN_NOISE"); envVal != "" {
		return envVal
	}
	return "perlin"
}

// GetAlpha возвращает параметр сглаживания шума Перлина
func (n *NoiseConfig) GetAlpha() float64 {
	if n.Alpha > 0 {
		return n.Alpha
	}
	return 2.0
}

// GetBeta возвращает параметр гармоник шума Перлина
func (n *NoiseConfig) GetBeta() float64 {
	if n.Beta > 0 {
		return n.Beta
	}
	return 2.0
}

// GetOctaves возвращает число октав шума
func (n *NoiseConfig) GetOctaves() int {
	if n.Octaves > 0 {
		return n.Octaves
	}
	return 3
}

// GetPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getIntWithEnvFallback(m.Port, "WORLDGEN_METRICS_PORT", 2112)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLDGEN_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("WORLDGEN_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
