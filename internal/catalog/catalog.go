package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownDomain is returned when a domain ID is not in the catalog.
var ErrUnknownDomain = errors.New("unknown domain")

// Catalog is the immutable question bank: the domain list and the
// skill -> ordered questions mapping. All accessors return copies, so a
// Catalog can be shared freely once built.
type Catalog struct {
	version   string
	domains   []Domain
	byDomain  map[string]int
	bySkill   map[string][]Question
	byID      map[string]Question
	skills    []string
	questions int
}

// New validates the given domains and questions and builds a Catalog.
// Questions keep their relative order within each skill.
func New(version string, domains []Domain, questions []Question) (*Catalog, error) {
	if err := validate(domains, questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:   version,
		domains:   make([]Domain, 0, len(domains)),
		byDomain:  make(map[string]int, len(domains)),
		bySkill:   make(map[string][]Question),
		byID:      make(map[string]Question, len(questions)),
		questions: len(questions),
	}

	for i, d := range domains {
		c.domains = append(c.domains, d.clone())
		c.byDomain[d.ID] = i
	}

	for _, q := range questions {
		if _, seen := c.bySkill[q.Skill]; !seen {
			c.skills = append(c.skills, q.Skill)
		}
		q = q.clone()
		c.bySkill[q.Skill] = append(c.bySkill[q.Skill], q)
		c.byID[q.ID] = q
	}

	return c, nil
}

// Version returns the catalog format version it was loaded from.
func (c *Catalog) Version() string {
	return c.version
}

// Domains returns all domains in catalog order.
func (c *Catalog) Domains() []Domain {
	out := make([]Domain, len(c.domains))
	for i, d := range c.domains {
		out[i] = d.clone()
	}
	return out
}

// Domain returns the domain with the given ID.
func (c *Catalog) Domain(id string) (Domain, error) {
	i, ok := c.byDomain[id]
	if !ok {
		return Domain{}, fmt.Errorf("%w: %q", ErrUnknownDomain, id)
	}
	return c.domains[i].clone(), nil
}

// Questions returns the ordered questions for a skill.
// Unknown skills yield nil.
func (c *Catalog) Questions(skill string) []Question {
	qs := c.bySkill[skill]
	if len(qs) == 0 {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

// Question looks up a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// Skills returns every skill that owns at least one question, in the order
// the skills first appear in the question list.
func (c *Catalog) Skills() []string {
	out := make([]string, len(c.skills))
	copy(out, c.skills)
	return out
}

// QuestionCount returns the total number of questions.
func (c *Catalog) QuestionCount() int {
	return c.questions
}
