package handler

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/catalog"
	"tekki/internal/http/middleware"
	"tekki/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	DB           *sql.DB
	Catalog      *catalog.Catalog
	Jobs         service.JobService
	Applications service.ApplicationService
	Leads        service.LeadService
	Enrollments  service.EnrollmentService
	Businesses   service.BusinessService
	Brands       service.BrandService
	Dashboard    service.DashboardService
	AdminToken   string
	Logger       *slog.Logger
	Location     *time.Location
}

// RegisterRoutes mounts health checks, the public site API under /api and the
// back-office under /admin.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	loc := d.Location

	if d.DB != nil {
		app.Get("/health", HealthCheck(d.DB))
	}
	app.Get("/healthz", Liveness())

	api := app.Group("/api")
	api.Get("/formulas", ListFormulas(d.Catalog))
	api.Get("/formulas/:slug", GetFormula(d.Catalog, log))
	api.Get("/case-studies", ListCaseStudies(d.Catalog))
	api.Get("/case-studies/:slug", GetCaseStudy(d.Catalog, log))
	api.Get("/brands", ListShowcase(d.Brands, log))
	api.Get("/jobs", ListOpenJobs(d.Jobs, log))
	api.Get("/jobs/:id", GetOpenJob(d.Jobs, log))
	api.Post("/jobs/:id/applications", Apply(d.Applications, log))
	api.Post("/leads", SubmitLead(d.Leads, log))
	api.Post("/enrollments", SubmitEnrollment(d.Enrollments, log))
	api.Get("/businesses", ListBusinesses(d.Businesses, log))

	admin := app.Group("/admin", middleware.AdminAuth(d.AdminToken))
	admin.Get("/dashboard", Dashboard(d.Dashboard, log))

	// export routes are registered before /:id so "export.csv" is not taken for an id
	jobs := admin.Group("/jobs")
	jobs.Get("/", ListJobs(d.Jobs, log, loc))
	jobs.Get("/export.csv", ExportJobs(d.Jobs, log, loc, formatCSV))
	jobs.Get("/export.xlsx", ExportJobs(d.Jobs, log, loc, formatXLSX))
	jobs.Post("/", CreateJob(d.Jobs, log))
	jobs.Get("/:id", GetJob(d.Jobs, log))
	jobs.Put("/:id", UpdateJob(d.Jobs, log))
	jobs.Patch("/:id/active", SetJobActive(d.Jobs, log))
	jobs.Delete("/:id", DeleteJob(d.Jobs, log))

	apps := admin.Group("/applications")
	apps.Get("/", ListApplications(d.Applications, log, loc))
	apps.Get("/export.csv", ExportApplications(d.Applications, log, loc, formatCSV))
	apps.Get("/export.xlsx", ExportApplications(d.Applications, log, loc, formatXLSX))
	apps.Get("/:id", GetApplication(d.Applications, log))
	apps.Get("/:id/resume", DownloadResume(d.Applications, log))
	apps.Patch("/:id/status", UpdateApplicationStatus(d.Applications, log))
	apps.Delete("/:id", DeleteApplication(d.Applications, log))

	leads := admin.Group("/leads")
	leads.Get("/", ListLeads(d.Leads, log, loc))
	leads.Get("/export.csv", ExportLeads(d.Leads, log, loc, formatCSV))
	leads.Get("/export.xlsx", ExportLeads(d.Leads, log, loc, formatXLSX))
	leads.Get("/:id", GetLead(d.Leads, log))
	leads.Patch("/:id/status", UpdateLeadStatus(d.Leads, log))
	leads.Delete("/:id", DeleteLead(d.Leads, log))

	enrollments := admin.Group("/enrollments")
	enrollments.Get("/", ListEnrollments(d.Enrollments, log, loc))
	enrollments.Get("/export.csv", ExportEnrollments(d.Enrollments, log, loc, formatCSV))
	enrollments.Get("/export.xlsx", ExportEnrollments(d.Enrollments, log, loc, formatXLSX))
	enrollments.Get("/:id", GetEnrollment(d.Enrollments, log))
	enrollments.Patch("/:id/status", UpdateEnrollmentStatus(d.Enrollments, log))
	enrollments.Delete("/:id", DeleteEnrollment(d.Enrollments, log))

	businesses := admin.Group("/businesses")
	businesses.Get("/", ListAdminBusinesses(d.Businesses, log, loc))
	businesses.Get("/export.csv", ExportBusinesses(d.Businesses, log, loc, formatCSV))
	businesses.Get("/export.xlsx", ExportBusinesses(d.Businesses, log, loc, formatXLSX))
	businesses.Post("/", CreateBusiness(d.Businesses, log))
	businesses.Get("/:id", GetBusiness(d.Businesses, log))
	businesses.Put("/:id", UpdateBusiness(d.Businesses, log))
	businesses.Patch("/:id/status", SetBusinessStatus(d.Businesses, log))
	businesses.Post("/:id/image", UploadBusinessImage(d.Businesses, log))
	businesses.Delete("/:id", DeleteBusiness(d.Businesses, log))

	brands := admin.Group("/brands")
	brands.Get("/", ListBrands(d.Brands, log, loc))
	brands.Post("/", CreateBrand(d.Brands, log))
	brands.Get("/:id", GetBrand(d.Brands, log))
	brands.Put("/:id", UpdateBrand(d.Brands, log))
	brands.Delete("/:id", DeleteBrand(d.Brands, log))
}
