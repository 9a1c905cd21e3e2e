// Package catalog serves the static marketing content: formulas and case studies.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"tekki/internal/model"
)

// ErrNotFound is returned when a slug is not in the catalog.
var ErrNotFound = errors.New("catalog entry not found")

//go:embed content.yaml
var defaultContent []byte

type document struct {
	Formulas    []model.Formula   `yaml:"formulas"`
	CaseStudies []model.CaseStudy `yaml:"case_studies"`
}

// Catalog is read-only once loaded and safe for concurrent use.
type Catalog struct {
	formulas    []model.Formula
	caseStudies []model.CaseStudy
	formulaIdx  map[string]int
	caseIdx     map[string]int
}

// Default parses the embedded content.
func Default() (*Catalog, error) {
	return Parse(defaultContent)
}

// Parse builds a Catalog from YAML. Slugs must be unique and non-empty.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		formulas:    doc.Formulas,
		caseStudies: doc.CaseStudies,
		formulaIdx:  make(map[string]int, len(doc.Formulas)),
		caseIdx:     make(map[string]int, len(doc.CaseStudies)),
	}
	for i, f := range doc.Formulas {
		if err := index(c.formulaIdx, f.Slug, i); err != nil {
			return nil, fmt.Errorf("formula: %w", err)
		}
	}
	for i, cs := range doc.CaseStudies {
		if err := index(c.caseIdx, cs.Slug, i); err != nil {
			return nil, fmt.Errorf("case study: %w", err)
		}
		if _, ok := c.formulaIdx[cs.Formula]; cs.Formula != "" && !ok {
			return nil, fmt.Errorf("case study %s: unknown formula %q", cs.Slug, cs.Formula)
		}
	}
	return c, nil
}

func index(idx map[string]int, slug string, i int) error {
	if slug == "" {
		return errors.New("empty slug")
	}
	if _, dup := idx[slug]; dup {
		return fmt.Errorf("duplicate slug %q", slug)
	}
	idx[slug] = i
	return nil
}

func (c *Catalog) Formulas() []model.Formula {
	return append([]model.Formula(nil), c.formulas...)
}

func (c *Catalog) Formula(slug string) (model.Formula, error) {
	i, ok := c.formulaIdx[slug]
	if !ok {
		return model.Formula{}, ErrNotFound
	}
	return c.formulas[i], nil
}

// HasFormula reports whether slug names a formula.
func (c *Catalog) HasFormula(slug string) bool {
	_, ok := c.formulaIdx[slug]
	return ok
}

func (c *Catalog) CaseStudies() []model.CaseStudy {
	return append([]model.CaseStudy(nil), c.caseStudies...)
}

func (c *Catalog) CaseStudy(slug string) (model.CaseStudy, error) {
	i, ok := c.caseIdx[slug]
	if !ok {
		return model.CaseStudy{}, ErrNotFound
	}
	return c.caseStudies[i], nil
}
