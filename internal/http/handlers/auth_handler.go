package handlers

import (
	"errors"
	"time"

	"linkjobs/internal/domain"
	"linkjobs/internal/log"
	"linkjobs/internal/services"
	"linkjobs/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	in := services.SignupInput{
		Fullname:  c.FormValue("fullname"),
		Email:     c.FormValue("email"),
		Password:  c.FormValue("password"),
		AdminCode: c.FormValue("admin_code"),
	}

	u, err := h.Auth.Signup(sid, in)
	switch {
	case errors.Is(err, domain.ErrValidation):
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.signup.fail", map[string]any{"email": in.Email, "reason": "bad_input"})
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": "Please fill in all fields correctly", "CSRFToken": tok})
	case errors.Is(err, domain.ErrConflict):
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.signup.fail", map[string]any{"email": in.Email, "reason": "duplicate_email"})
		return c.Status(fiber.StatusConflict).Render("signup", fiber.Map{"Err": "An account with that email already exists", "CSRFToken": tok})
	case err != nil:
		return err
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": u.Email, "role": u.Role})
	return c.Redirect("/")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}
	if !validate.Password(pass) {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
