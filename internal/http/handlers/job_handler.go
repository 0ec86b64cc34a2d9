package handlers

import (
	"errors"

	"linkjobs/internal/domain"
	applog "linkjobs/internal/log"
	"linkjobs/internal/services"
	"linkjobs/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	Catalog *services.CatalogService
}

func (h *JobHandler) Home(c *fiber.Ctx) error {
	jobs, err := h.Catalog.ListJobsForHome()
	if err != nil {
		applog.Error(c, "jobs.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load jobs"})
	}
	return render(c, "home", fiber.Map{"Jobs": jobs})
}

func (h *JobHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "job"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
	}
	j, err := h.Catalog.GetJobDetail(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
	}
	return render(c, "job_details", fiber.Map{"Job": j})
}

func (h *JobHandler) PostForm(c *fiber.Ctx) error {
	return render(c, "post_job", fiber.Map{"Err": ""})
}

func (h *JobHandler) Post(c *fiber.Ctx) error {
	exp, ok := validate.Experience(c.FormValue("experience"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "experience"})
		return c.Status(fiber.StatusBadRequest).Render("post_job", fiber.Map{"Err": "Experience must be a non-negative number of years", "CSRFToken": c.Cookies("csrf_")})
	}

	j, err := h.Catalog.PostJob(principal(c), services.PostJobInput{
		Title:          c.FormValue("title"),
		Company:        c.FormValue("company"),
		Location:       c.FormValue("location"),
		EmploymentType: c.FormValue("employment_type"),
		Experience:     exp,
		Description:    c.FormValue("description"),
	})
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Only admins can post jobs"})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).Render("post_job", fiber.Map{"Err": "Please fill in all required fields", "CSRFToken": c.Cookies("csrf_")})
	case err != nil:
		applog.Error(c, "jobs.post.fail", err, nil)
		return err
	}

	applog.Audit(c, "jobs.post", map[string]any{"job_id": j.ID, "title": j.Title})
	return c.Redirect("/job-details/" + j.ID)
}
