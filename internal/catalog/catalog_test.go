package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Formulas(), 3)
	f, err := c.Formula("business")
	require.NoError(t, err)
	assert.True(t, f.Highlighted)
	assert.Equal(t, "XOF", f.Currency)
	assert.True(t, c.HasFormula("starter"))
	assert.False(t, c.HasFormula("gold"))

	_, err = c.Formula("gold")
	assert.ErrorIs(t, err, ErrNotFound)

	cs, err := c.CaseStudy("momo-le-bottier")
	require.NoError(t, err)
	assert.Equal(t, "business", cs.Formula)
	assert.NotEmpty(t, c.CaseStudies())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "invalid yaml", yaml: "formulas: [", want: "parse catalog"},
		{name: "duplicate formula", yaml: "formulas:\n  - slug: a\n  - slug: a\n", want: "duplicate slug"},
		{name: "empty slug", yaml: "formulas:\n  - name: x\n", want: "empty slug"},
		{name: "unknown formula", yaml: "case_studies:\n  - slug: c\n    formula: nope\n", want: "unknown formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestFormulasReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	fs := c.Formulas()
	fs[0].Name = "changed"
	f, _ := c.Formula(fs[0].Slug)
	assert.NotEqual(t, "changed", f.Name)
}
