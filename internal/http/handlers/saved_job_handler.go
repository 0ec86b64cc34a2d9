package handlers

import (
	"errors"

	"linkjobs/internal/domain"
	applog "linkjobs/internal/log"
	"linkjobs/internal/services"
	"linkjobs/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SavedJobHandler struct {
	Catalog *services.CatalogService
}

func (h *SavedJobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.Catalog.ListSaved(principal(c))
	if err != nil {
		applog.Error(c, "saved.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load saved jobs"})
	}
	return render(c, "saved_jobs", fiber.Map{"Jobs": jobs})
}

func (h *SavedJobHandler) Save(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
	}
	if err := h.Catalog.SaveJob(principal(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
		}
		applog.Error(c, "saved.save.fail", err, map[string]any{"job_id": id})
		return err
	}
	applog.Audit(c, "saved.save", map[string]any{"job_id": id})
	// back to where the save came from, or the saved list
	back := c.Get("Referer")
	if back == "" {
		back = "/saved-jobs"
	}
	return c.Redirect(back)
}

func (h *SavedJobHandler) Unsave(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
	}
	if err := h.Catalog.UnsaveJob(principal(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This job is no longer available"})
		}
		applog.Error(c, "saved.unsave.fail", err, map[string]any{"job_id": id})
		return err
	}
	applog.Audit(c, "saved.unsave", map[string]any{"job_id": id})
	return c.Redirect("/saved-jobs")
}
