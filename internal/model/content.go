package model

// Formula is a service package described on the marketing pages.
type Formula struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Name        string   `json:"name" yaml:"name"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Price       int64    `json:"price" yaml:"price"`
	Currency    string   `json:"currency" yaml:"currency"`
	Features    []string `json:"features" yaml:"features"`
	Highlighted bool     `json:"highlighted" yaml:"highlighted"`
}

// CaseStudy is a published client success story.
type CaseStudy struct {
	Slug    string   `json:"slug" yaml:"slug"`
	Title   string   `json:"title" yaml:"title"`
	Client  string   `json:"client" yaml:"client"`
	Formula string   `json:"formula" yaml:"formula"`
	Summary string   `json:"summary" yaml:"summary"`
	Results []string `json:"results" yaml:"results"`
}
