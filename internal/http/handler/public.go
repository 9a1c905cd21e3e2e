package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/catalog"
	"tekki/internal/service"
)

// ListFormulas godoc
//
// @Summary  Service formulas
// @Tags     public
// @Produce  json
// @Success  200 {array} model.Formula
// @Router   /api/formulas [get]
func ListFormulas(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.Formulas())
	}
}

// GetFormula godoc
//
// @Summary  Formula by slug
// @Tags     public
// @Produce  json
// @Param    slug path string true "Formula slug"
// @Success  200 {object} model.Formula
// @Failure  404 {object} errorPayload
// @Router   /api/formulas/{slug} [get]
func GetFormula(cat *catalog.Catalog, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := cat.Formula(c.Params("slug"))
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(f)
	}
}

// ListCaseStudies godoc
//
// @Summary  Published case studies
// @Tags     public
// @Produce  json
// @Success  200 {array} model.CaseStudy
// @Router   /api/case-studies [get]
func ListCaseStudies(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.CaseStudies())
	}
}

// GetCaseStudy godoc
//
// @Summary  Case study by slug
// @Tags     public
// @Produce  json
// @Param    slug path string true "Case study slug"
// @Success  200 {object} model.CaseStudy
// @Failure  404 {object} errorPayload
// @Router   /api/case-studies/{slug} [get]
func GetCaseStudy(cat *catalog.Catalog, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cs, err := cat.CaseStudy(c.Params("slug"))
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(cs)
	}
}

// ListShowcase godoc
//
// @Summary  Brand showcase, featured first
// @Tags     public
// @Produce  json
// @Success  200 {array} model.Brand
// @Router   /api/brands [get]
func ListShowcase(svc service.BrandService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		brands, err := svc.Showcase(c.UserContext())
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(brands)
	}
}

// ListOpenJobs godoc
//
// @Summary  Active job openings
// @Tags     public
// @Produce  json
// @Success  200 {array} model.JobOpening
// @Router   /api/jobs [get]
func ListOpenJobs(svc service.JobService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobs, err := svc.ListOpen(c.UserContext())
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(jobs)
	}
}

// GetOpenJob godoc
//
// @Summary  Active job opening
// @Tags     public
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} model.JobOpening
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /api/jobs/{id} [get]
func GetOpenJob(svc service.JobService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}
		job, err := svc.GetOpen(c.UserContext(), id)
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(job)
	}
}

// Apply godoc
//
// @Summary  Apply to a job opening
// @Tags     public
// @Accept   multipart/form-data
// @Produce  json
// @Param    id            path     string true  "Job ID"
// @Param    full_name     formData string true  "Full name"
// @Param    email         formData string true  "Email"
// @Param    phone         formData string true  "Phone"
// @Param    cover_letter  formData string false "Cover letter"
// @Param    linkedin_url  formData string false "LinkedIn profile"
// @Param    portfolio_url formData string false "Portfolio"
// @Param    resume        formData file   true  "PDF, DOC or DOCX"
// @Success  201 {object} model.JobApplication
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  413 {object} errorPayload
// @Failure  415 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /api/jobs/{id}/applications [post]
func Apply(svc service.ApplicationService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}

		fh, err := c.FormFile("resume")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "resume is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		in := service.ApplicationInput{
			FullName:     c.FormValue("full_name"),
			Email:        c.FormValue("email"),
			Phone:        c.FormValue("phone"),
			CoverLetter:  c.FormValue("cover_letter"),
			LinkedInURL:  c.FormValue("linkedin_url"),
			PortfolioURL: c.FormValue("portfolio_url"),
		}
		app, err := svc.Apply(c.UserContext(), id, in, &service.Upload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
		})
		if err != nil {
			return fail(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(app)
	}
}

// SubmitLead godoc
//
// @Summary  Contact form
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body service.LeadInput true "Lead"
// @Success  201 {object} model.Lead
// @Failure  422 {object} errorPayload
// @Router   /api/leads [post]
func SubmitLead(svc service.LeadService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LeadInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		lead, err := svc.Submit(c.UserContext(), in)
		if err != nil {
			return fail(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(lead)
	}
}

// SubmitEnrollment godoc
//
// @Summary  Enroll in a formula
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body service.EnrollmentInput true "Enrollment"
// @Success  201 {object} model.Enrollment
// @Failure  422 {object} errorPayload
// @Router   /api/enrollments [post]
func SubmitEnrollment(svc service.EnrollmentService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EnrollmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		e, err := svc.Submit(c.UserContext(), in)
		if err != nil {
			return fail(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// ListBusinesses godoc
//
// @Summary  Businesses for sale (available or reserved)
// @Tags     public
// @Produce  json
// @Success  200 {array} model.Business
// @Router   /api/businesses [get]
func ListBusinesses(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListPublic(c.UserContext())
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(items)
	}
}
