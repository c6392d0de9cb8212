package prompts

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sbilibin2017/motiv8-batch/internal/models"
)

// Engine builds prompts from a catalog. Output depends only on the day, mode and
// gender, except for furry mode where the creature is drawn with pick.
type Engine struct {
	catalog Catalog
	pick    func(n int) int
}

// NewEngine loads the embedded catalog. A nil pick draws creatures uniformly at random.
func NewEngine(pick func(n int) int) (*Engine, error) {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return nil, err
	}
	return NewEngineWithCatalog(c, pick), nil
}

func NewEngineWithCatalog(c Catalog, pick func(n int) int) *Engine {
	if pick == nil {
		pick = rand.IntN
	}
	return &Engine{catalog: c, pick: pick}
}

// Scene returns the scenic description for the day.
func (e *Engine) Scene(day models.DayContext) string {
	scenes := e.catalog.Background.Scenes
	return scenes[day.Weekday%len(scenes)]
}

// Background builds the empty-scene prompt shared by every user in a run.
func (e *Engine) Background(day models.DayContext) models.Prompt {
	bg := e.catalog.Background
	return models.Prompt{
		Positive: fmt.Sprintf("%s, %s, %s", e.Scene(day), bg.EmptyScene, bg.Suffix),
		Negative: bg.Negative,
	}
}

// Build returns the person, background and combined prompts for one user.
func (e *Engine) Build(day models.DayContext, mode models.Mode, gender models.Gender) models.PromptSet {
	p := e.catalog.Person

	mc, ok := p.Modes[mode]
	if !ok {
		mode = models.ModeToned
		mc = p.Modes[mode]
	}

	clause := mc.Clause
	negative := mc.Negative
	var creature string
	if mode == models.ModeFurry {
		c := p.Creatures[e.pick(len(p.Creatures))]
		creature = c.Name
		clause = joinNonEmpty(strings.ReplaceAll(clause, "{creature}", c.Name), c.Descriptor)
		negative = joinNonEmpty(negative, c.Negative)
	}

	subject := fmt.Sprintf("%s %s", e.genderClause(gender), clause)
	if mc.Professional && p.ProfessionalPrefix != "" {
		subject = p.ProfessionalPrefix + " " + subject
	}

	bg := e.catalog.Background
	return models.PromptSet{
		Mode:     mode,
		Creature: creature,
		Person: models.Prompt{
			Positive: joinNonEmpty(subject, p.Studio, bg.Suffix),
			Negative: joinNonEmpty(negative, p.StudioNegative),
		},
		Background: e.Background(day),
		Combined: models.Prompt{
			Positive: fmt.Sprintf("%s, at %s, %s", subject, e.Scene(day), bg.Suffix),
			Negative: negative,
		},
	}
}

func (e *Engine) genderClause(g models.Gender) string {
	if c, ok := e.catalog.Person.Gender[string(g)]; ok && g != "" {
		return c
	}
	return e.catalog.Person.Gender["default"]
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
