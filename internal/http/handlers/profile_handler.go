package handlers

import (
	"errors"

	"linkjobs/internal/domain"
	applog "linkjobs/internal/log"
	"linkjobs/internal/services"
	"linkjobs/internal/upload"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profile *services.ProfileService
	Blobs   upload.BlobStore
}

func (h *ProfileHandler) Form(c *fiber.Ctx) error {
	u, err := h.Profile.Get(principal(c))
	if err != nil {
		applog.Error(c, "profile.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load profile"})
	}
	return render(c, "profile", fiber.Map{"Profile": u, "Err": "", "Msg": ""})
}

// storeUpload saves one optional multipart file. A missing part is a
// no-op and returns an empty key so the existing ref stays put.
func (h *ProfileHandler) storeUpload(c *fiber.Ctx, field, kind string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.Blobs.Save(kind, fh.Filename, f)
}

func (h *ProfileHandler) uploadFail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrPayloadTooLarge) {
		applog.Security(c, "profile.upload.too_large", nil)
		return c.Status(fiber.StatusRequestEntityTooLarge).Render("notfound", fiber.Map{"Message": "Upload is too large (5 MiB max)"})
	}
	if errors.Is(err, domain.ErrValidation) {
		u, _ := h.Profile.Get(principal(c))
		return c.Status(fiber.StatusBadRequest).Render("profile", fiber.Map{"Profile": u, "Err": "That file name cannot be stored", "Msg": ""})
	}
	applog.Error(c, "profile.upload.fail", err, nil)
	return err
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	imageRef, err := h.storeUpload(c, "image", upload.KindImage)
	if err != nil {
		return h.uploadFail(c, err)
	}
	cvRef, err := h.storeUpload(c, "cv", upload.KindCV)
	if err != nil {
		return h.uploadFail(c, err)
	}

	u, err := h.Profile.Update(principal(c), services.ProfileInput{
		Fullname:      c.FormValue("fullname"),
		Phone:         c.FormValue("phone"),
		Qualification: c.FormValue("qualification"),
	}, imageRef, cvRef)
	if errors.Is(err, domain.ErrValidation) {
		cur, _ := h.Profile.Get(principal(c))
		return c.Status(fiber.StatusBadRequest).Render("profile", fiber.Map{"Profile": cur, "Err": "Please check your details", "Msg": ""})
	}
	if err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return err
	}

	applog.Audit(c, "profile.update", map[string]any{"image": imageRef != "", "cv": cvRef != ""})
	return render(c, "profile", fiber.Map{"Profile": u, "Err": "", "Msg": "Profile updated"})
}
