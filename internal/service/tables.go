package service

import (
	"strconv"
	"strings"
	"time"

	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
)

const exportTimeLayout = "2006-01-02 15:04"

func exportTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(exportTimeLayout)
}

func byCreated[T any](created func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return created(a).Compare(created(b)) }
}

var jobAccessors = listing.Accessors[model.JobOpening]{
	Fields: func(j model.JobOpening) []string {
		return []string{j.Title, j.Department, j.Location, string(j.ContractType)}
	},
	Status: func(j model.JobOpening) string {
		if j.IsActive {
			return "active"
		}
		return "inactive"
	},
	Created: func(j model.JobOpening) time.Time { return j.CreatedAt },
	Sorters: map[string]func(a, b model.JobOpening) int{
		listing.SortCreatedAt: byCreated(func(j model.JobOpening) time.Time { return j.CreatedAt }),
		"title":               func(a, b model.JobOpening) int { return listing.CompareStrings(a.Title, b.Title) },
		"department":          func(a, b model.JobOpening) int { return listing.CompareStrings(a.Department, b.Department) },
		"location":            func(a, b model.JobOpening) int { return listing.CompareStrings(a.Location, b.Location) },
	},
}

func jobColumns(loc *time.Location) export.Columns[model.JobOpening] {
	return export.Columns[model.JobOpening]{
		Sheet:   "Jobs",
		Headers: []string{"ID", "Title", "Department", "Location", "Contract", "Active", "Requirements", "Created"},
		Row: func(j model.JobOpening) []string {
			return []string{
				j.ID, j.Title, j.Department, j.Location, string(j.ContractType),
				strconv.FormatBool(j.IsActive), strings.Join(j.Requirements, "; "),
				exportTime(j.CreatedAt, loc),
			}
		},
	}
}

var applicationAccessors = listing.Accessors[model.JobApplication]{
	Fields: func(a model.JobApplication) []string {
		return []string{a.FullName, a.Email, a.Phone, a.JobTitle}
	},
	Status:  func(a model.JobApplication) string { return string(a.Status) },
	Created: func(a model.JobApplication) time.Time { return a.CreatedAt },
	Sorters: map[string]func(a, b model.JobApplication) int{
		listing.SortCreatedAt: byCreated(func(a model.JobApplication) time.Time { return a.CreatedAt }),
		"full_name":           func(a, b model.JobApplication) int { return listing.CompareStrings(a.FullName, b.FullName) },
		"job_title":           func(a, b model.JobApplication) int { return listing.CompareStrings(a.JobTitle, b.JobTitle) },
		"status":              func(a, b model.JobApplication) int { return listing.CompareStrings(string(a.Status), string(b.Status)) },
	},
}

func applicationColumns(loc *time.Location) export.Columns[model.JobApplication] {
	return export.Columns[model.JobApplication]{
		Sheet:   "Applications",
		Headers: []string{"ID", "Job", "Full name", "Email", "Phone", "LinkedIn", "Portfolio", "Status", "Notes", "Created"},
		Row: func(a model.JobApplication) []string {
			return []string{
				a.ID, a.JobTitle, a.FullName, a.Email, a.Phone, a.LinkedInURL, a.PortfolioURL,
				string(a.Status), a.Notes, exportTime(a.CreatedAt, loc),
			}
		},
	}
}

var leadAccessors = listing.Accessors[model.Lead]{
	Fields: func(l model.Lead) []string {
		return []string{l.FullName, l.Email, l.Phone, l.Company, l.Formula, l.Message}
	},
	Status:  func(l model.Lead) string { return string(l.Status) },
	Created: func(l model.Lead) time.Time { return l.CreatedAt },
	Sorters: map[string]func(a, b model.Lead) int{
		listing.SortCreatedAt: byCreated(func(l model.Lead) time.Time { return l.CreatedAt }),
		"full_name":           func(a, b model.Lead) int { return listing.CompareStrings(a.FullName, b.FullName) },
		"company":             func(a, b model.Lead) int { return listing.CompareStrings(a.Company, b.Company) },
		"status":              func(a, b model.Lead) int { return listing.CompareStrings(string(a.Status), string(b.Status)) },
	},
}

func leadColumns(loc *time.Location) export.Columns[model.Lead] {
	return export.Columns[model.Lead]{
		Sheet:   "Leads",
		Headers: []string{"ID", "Full name", "Email", "Phone", "Company", "Formula", "Source", "Message", "Status", "Notes", "Created"},
		Row: func(l model.Lead) []string {
			return []string{
				l.ID, l.FullName, l.Email, l.Phone, l.Company, l.Formula, l.Source, l.Message,
				string(l.Status), l.Notes, exportTime(l.CreatedAt, loc),
			}
		},
	}
}

var enrollmentAccessors = listing.Accessors[model.Enrollment]{
	Fields: func(e model.Enrollment) []string {
		return []string{e.FullName, e.Email, e.Phone, e.Country, e.City, e.Formula}
	},
	Status:  func(e model.Enrollment) string { return string(e.Status) },
	Created: func(e model.Enrollment) time.Time { return e.CreatedAt },
	Sorters: map[string]func(a, b model.Enrollment) int{
		listing.SortCreatedAt: byCreated(func(e model.Enrollment) time.Time { return e.CreatedAt }),
		"full_name":           func(a, b model.Enrollment) int { return listing.CompareStrings(a.FullName, b.FullName) },
		"amount":              func(a, b model.Enrollment) int { return listing.CompareInts(a.Amount, b.Amount) },
		"payment_status": func(a, b model.Enrollment) int {
			return listing.CompareStrings(string(a.PaymentStatus), string(b.PaymentStatus))
		},
	},
}

func enrollmentColumns(loc *time.Location) export.Columns[model.Enrollment] {
	return export.Columns[model.Enrollment]{
		Sheet:   "Enrollments",
		Headers: []string{"ID", "Full name", "Email", "Phone", "Country", "City", "Formula", "Amount", "Payment", "Status", "Notes", "Created"},
		Row: func(e model.Enrollment) []string {
			return []string{
				e.ID, e.FullName, e.Email, e.Phone, e.Country, e.City, e.Formula,
				strconv.FormatInt(e.Amount, 10), string(e.PaymentStatus), string(e.Status),
				e.Notes, exportTime(e.CreatedAt, loc),
			}
		},
	}
}

var businessAccessors = listing.Accessors[model.Business]{
	Fields: func(b model.Business) []string {
		return []string{b.Name, b.Category, b.Description}
	},
	Status:  func(b model.Business) string { return string(b.Status) },
	Created: func(b model.Business) time.Time { return b.CreatedAt },
	Sorters: map[string]func(a, b model.Business) int{
		listing.SortCreatedAt: byCreated(func(b model.Business) time.Time { return b.CreatedAt }),
		"name":                func(a, b model.Business) int { return listing.CompareStrings(a.Name, b.Name) },
		"price":               func(a, b model.Business) int { return listing.CompareInts(a.Price, b.Price) },
		"monthly_revenue":     func(a, b model.Business) int { return listing.CompareInts(a.MonthlyRevenue, b.MonthlyRevenue) },
	},
}

func businessColumns(loc *time.Location) export.Columns[model.Business] {
	return export.Columns[model.Business]{
		Sheet:   "Businesses",
		Headers: []string{"ID", "Name", "Category", "Price", "Monthly revenue", "Status", "Created"},
		Row: func(b model.Business) []string {
			return []string{
				b.ID, b.Name, b.Category, strconv.FormatInt(b.Price, 10),
				strconv.FormatInt(b.MonthlyRevenue, 10), string(b.Status), exportTime(b.CreatedAt, loc),
			}
		},
	}
}

var brandAccessors = listing.Accessors[model.Brand]{
	Fields: func(b model.Brand) []string {
		return []string{b.Name, b.Category, b.Description}
	},
	Status: func(b model.Brand) string {
		if b.Featured {
			return "featured"
		}
		return "regular"
	},
	Created: func(b model.Brand) time.Time { return b.CreatedAt },
	Sorters: map[string]func(a, b model.Brand) int{
		listing.SortCreatedAt: byCreated(func(b model.Brand) time.Time { return b.CreatedAt }),
		"name":                func(a, b model.Brand) int { return listing.CompareStrings(a.Name, b.Name) },
		"category":            func(a, b model.Brand) int { return listing.CompareStrings(a.Category, b.Category) },
	},
}
