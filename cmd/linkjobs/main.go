package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"linkjobs/internal/config"
	"linkjobs/internal/http/handlers"
	applog "linkjobs/internal/log"
	"linkjobs/internal/repos"
	"linkjobs/internal/services"
	"linkjobs/internal/upload"
)

const maxUploadBytes = 5 << 20 // 5 MiB request cap, shared by store and server

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	blobs, err := upload.NewDirStore(cfg.UploadDir, maxUploadBytes)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Hasher: services.BcryptHasher{}, AdminCode: cfg.AdminCode}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard; fasthttp answers 413 past this
	app.Server().MaxRequestBodySize = maxUploadBytes

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/uploads/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets & uploads ----------
	log.Printf("[static] /static  -> ./web/static")
	log.Printf("[static] /uploads -> %s", cfg.UploadDir)

	app.Static("/static", "./web/static")
	// Stored uploads are served through the blob store only; the key is
	// re-sanitized there, so traversal attempts collapse to a 404.
	app.Get("/uploads/:filename", func(c *fiber.Ctx) error {
		key := c.Params("filename")
		f, err := blobs.Open(key)
		if err != nil {
			applog.Security(c, "uploads.miss", map[string]any{"key": key})
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "File not found"})
		}
		c.Type(strings.TrimPrefix(filepath.Ext(key), "."))
		return c.SendStream(f)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, blobs)

	// Public pages
	app.Get("/", deps.JobHandler.Home)
	app.Get("/about", func(c *fiber.Ctx) error {
		return c.Render("about", fiber.Map{})
	})
	app.Get("/job-details/:id", deps.JobHandler.Detail)

	// Auth routes (login throttled)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Get("/logout", handlers.RequireUser(authSvc), authH.Logout)

	// Profile (own data only)
	app.Get("/profile", handlers.RequireUser(authSvc), deps.ProfileHandler.Form)
	app.Post("/profile", handlers.RequireUser(authSvc), deps.ProfileHandler.Update)

	// Saved jobs
	app.Get("/saved-jobs", handlers.RequireUser(authSvc), deps.SavedHandler.List)
	app.Get("/save-job/:id", handlers.RequireUser(authSvc), deps.SavedHandler.Save)
	app.Get("/unsave-job/:id", handlers.RequireUser(authSvc), deps.SavedHandler.Unsave)

	// Admin
	app.Get("/post-job", handlers.RequireAdmin(authSvc), deps.JobHandler.PostForm)
	app.Post("/post-job", handlers.RequireAdmin(authSvc), deps.JobHandler.Post)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
