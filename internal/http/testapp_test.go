package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/crypto/bcrypt"

	"linkjobs/internal/http/handlers"
	"linkjobs/internal/repos"
	"linkjobs/internal/services"
	"linkjobs/internal/upload"

	"github.com/jmoiron/sqlx"
)

const testAdminCode = "let-me-admin"

type testEnv struct {
	app   *fiber.App
	db    *sqlx.DB
	auth  *services.AuthService
	users *repos.UserRepo
	blobs *upload.DirStore
}

// newTestEnv wires the real handlers against an in-memory database,
// mirroring the route table in main.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{
		Users:     userRepo,
		Hasher:    services.BcryptHasher{Cost: bcrypt.MinCost},
		AdminCode: testAdminCode,
	}
	authH := &handlers.AuthHandler{Auth: authSvc}

	blobs, err := upload.NewDirStore(t.TempDir(), 5<<20)
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 5 << 20
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, blobs)

	app.Get("/", deps.JobHandler.Home)
	app.Get("/job-details/:id", deps.JobHandler.Detail)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/logout", handlers.RequireUser(authSvc), authH.Logout)
	app.Get("/profile", handlers.RequireUser(authSvc), deps.ProfileHandler.Form)
	app.Post("/profile", handlers.RequireUser(authSvc), deps.ProfileHandler.Update)
	app.Get("/saved-jobs", handlers.RequireUser(authSvc), deps.SavedHandler.List)
	app.Get("/save-job/:id", handlers.RequireUser(authSvc), deps.SavedHandler.Save)
	app.Get("/unsave-job/:id", handlers.RequireUser(authSvc), deps.SavedHandler.Unsave)
	app.Get("/post-job", handlers.RequireAdmin(authSvc), deps.JobHandler.PostForm)
	app.Post("/post-job", handlers.RequireAdmin(authSvc), deps.JobHandler.Post)
	app.Get("/uploads/:filename", func(c *fiber.Ctx) error {
		f, err := blobs.Open(c.Params("filename"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "File not found"})
		}
		return c.SendStream(f)
	})

	return &testEnv{app: app, db: db, auth: authSvc, users: userRepo, blobs: blobs}
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func (e *testEnv) csrf(t *testing.T) string {
	t.Helper()
	resp, err := e.app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatalf("fetch csrf: %v", err)
	}
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func (e *testEnv) get(t *testing.T, path, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	return resp
}

func (e *testEnv) postForm(t *testing.T, path, sid, csrfTok string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return resp
}

// signup creates an account over HTTP and returns the sid cookie it was
// auto-logged-in with.
func (e *testEnv) signup(t *testing.T, fullname, email, password, adminCode string) string {
	t.Helper()
	tok := e.csrf(t)
	resp := e.postForm(t, "/signup", "", tok, url.Values{
		"fullname":   {fullname},
		"email":      {email},
		"password":   {password},
		"admin_code": {adminCode},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("signup expected redirect, got %d", resp.StatusCode)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("signup did not set sid cookie")
	}
	return sid
}

// postJob creates a listing over HTTP as the given admin session and
// returns the new job id taken from the redirect location.
func (e *testEnv) postJob(t *testing.T, sid, title string) string {
	t.Helper()
	tok := e.csrf(t)
	resp := e.postForm(t, "/post-job", sid, tok, url.Values{
		"title":           {title},
		"company":         {"Acme"},
		"location":        {"Lagos"},
		"employment_type": {"Full-time"},
		"experience":      {"2"},
		"description":     {"Build things"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("post-job expected redirect, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	const prefix = "/job-details/"
	if !strings.HasPrefix(loc, prefix) {
		t.Fatalf("unexpected redirect %q", loc)
	}
	return strings.TrimPrefix(loc, prefix)
}
