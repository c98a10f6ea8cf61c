package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/annel0/mmo-worldgen/internal/world/subbiome"
)

// ErrDuplicateName саббиом с таким именем уже зарегистрирован
var ErrDuplicateName = errors.New("имя саббиома уже занято")

// Catalog именованный набор проверенных определений саббиомов.
// Заполняется один раз при старте, после этого только читается,
// поэтому генерация может обращаться к нему без блокировок.
type Catalog struct {
	defs map[string]*subbiome.Definition
}

// New создаёт пустой каталог
func New() *Catalog {
	return &Catalog{defs: make(map[string]*subbiome.Definition)}
}

// Register собирает определение из конфигурации и добавляет его в каталог.
// Конфигурация с ошибкой авторинга не регистрируется: ошибка
// возвращается как диагностика загрузки.
func (c *Catalog) Register(cfg subbiome.Config) error {
	if _, exists := c.defs[cfg.Name]; exists {
		return fmt.Errorf("саббиом %q: %w", cfg.Name, ErrDuplicateName)
	}

	def, err := cfg.Build()
	if err != nil {
		return err
	}

	c.defs[def.Name()] = def
	return nil
}

// Get возвращает определение по имени
func (c *Catalog) Get(name string) (*subbiome.Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names возвращает отсортированные имена зарегистрированных саббиомов
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len возвращает число зарегистрированных саббиомов
func (c *Catalog) Len() int {
	return len(c.defs)
}
