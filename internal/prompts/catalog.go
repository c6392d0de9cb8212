package prompts

import (
	_ "embed"
	"fmt"

	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the fixed text every prompt is assembled from.
type Catalog struct {
	Person     PersonCatalog     `yaml:"person"`
	Background BackgroundCatalog `yaml:"background"`
}

type PersonCatalog struct {
	ProfessionalPrefix string                     `yaml:"professional_prefix"`
	Gender             map[string]string          `yaml:"gender"` // keyed by gender, "default" for everyone else
	Studio             string                     `yaml:"studio"`
	StudioNegative     string                     `yaml:"studio_negative"`
	Modes              map[models.Mode]ModeClause `yaml:"modes"`
	Creatures          []Creature                 `yaml:"creatures"`
}

type ModeClause struct {
	Clause       string `yaml:"clause"`
	Negative     string `yaml:"negative"`
	Professional bool   `yaml:"professional"`
}

// Creature is one furry archetype.
type Creature struct {
	Name       string `yaml:"name"`
	Descriptor string `yaml:"descriptor"`
	Negative   string `yaml:"negative"`
}

type BackgroundCatalog struct {
	Suffix     string   `yaml:"suffix"`
	EmptyScene string   `yaml:"empty_scene"`
	Negative   string   `yaml:"negative"`
	Scenes     []string `yaml:"scenes"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse prompt catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	if len(c.Background.Scenes) == 0 {
		return fmt.Errorf("prompt catalog: no background scenes")
	}
	if _, ok := c.Person.Gender["default"]; !ok {
		return fmt.Errorf("prompt catalog: no default gender clause")
	}
	for _, m := range models.Modes {
		if _, ok := c.Person.Modes[m]; !ok {
			return fmt.Errorf("prompt catalog: no clause for mode %s", m)
		}
	}
	if len(c.Person.Creatures) == 0 {
		return fmt.Errorf("prompt catalog: no furry creatures")
	}
	return nil
}
