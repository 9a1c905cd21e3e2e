package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name    string
	Email   string
	Status  string
	Amount  int64
	Created time.Time
}

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func rows() []row {
	return []row{
		{Name: "Awa Diop", Email: "awa@example.com", Status: "new", Amount: 30, Created: base},
		{Name: "Moussa Fall", Email: "moussa@tekki.sn", Status: "contacted", Amount: 10, Created: base.Add(24 * time.Hour)},
		{Name: "Fatou Ndiaye", Email: "fatou@example.com", Status: "new", Amount: 20, Created: base.Add(48 * time.Hour)},
		{Name: "Ibrahima Sow", Email: "ibou@tekki.sn", Status: "lost", Amount: 40, Created: base.Add(-24 * time.Hour)},
	}
}

var acc = Accessors[row]{
	Fields:  func(r row) []string { return []string{r.Name, r.Email} },
	Status:  func(r row) string { return r.Status },
	Created: func(r row) time.Time { return r.Created },
	Sorters: map[string]func(a, b row) int{
		"name":   func(a, b row) int { return CompareStrings(a.Name, b.Name) },
		"amount": func(a, b row) int { return CompareInts(a.Amount, b.Amount) },
	},
}

func names(items []row) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty search matches all", search: "", want: []string{"Fatou Ndiaye", "Moussa Fall", "Awa Diop", "Ibrahima Sow"}},
		{name: "case insensitive name", search: "FATOU", want: []string{"Fatou Ndiaye"}},
		{name: "matches any field", search: "tekki.sn", want: []string{"Moussa Fall", "Ibrahima Sow"}},
		{name: "trims whitespace", search: "  awa ", want: []string{"Awa Diop"}},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Apply(rows(), Query{Search: tt.search}, acc)
			assert.Equal(t, tt.want, names(page.Items))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestApply_StatusAndDates(t *testing.T) {
	page := Apply(rows(), Query{Status: "new"}, acc)
	assert.Equal(t, []string{"Fatou Ndiaye", "Awa Diop"}, names(page.Items))

	page = Apply(rows(), Query{Status: "all"}, acc)
	assert.Equal(t, 4, page.Total)

	from := base
	to := base.Add(24 * time.Hour).Truncate(24 * time.Hour)
	page = Apply(rows(), Query{From: &from, To: &to}, acc)
	assert.Equal(t, []string{"Moussa Fall", "Awa Diop"}, names(page.Items))
}

func TestApply_SortAndPage(t *testing.T) {
	page := Apply(rows(), Query{SortBy: "name", Order: "asc"}, acc)
	assert.Equal(t, []string{"Awa Diop", "Fatou Ndiaye", "Ibrahima Sow", "Moussa Fall"}, names(page.Items))

	page = Apply(rows(), Query{SortBy: "amount", Order: "desc", Limit: 2, Offset: 1}, acc)
	assert.Equal(t, []string{"Awa Diop", "Fatou Ndiaye"}, names(page.Items))
	assert.Equal(t, 4, page.Total)

	page = Apply(rows(), Query{SortBy: "unknown", Order: "asc"}, acc)
	assert.Equal(t, "Ibrahima Sow", page.Items[0].Name)

	page = Apply(rows(), Query{Offset: 10}, acc)
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.Total)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := rows()
	_ = Apply(in, Query{SortBy: "name", Order: "asc"}, acc)
	assert.Equal(t, "Awa Diop", in[0].Name)
	assert.Equal(t, "Moussa Fall", in[1].Name)
}
