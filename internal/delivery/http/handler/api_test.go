package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"profile-folio/internal/delivery/http/middleware"
	"profile-folio/internal/pkg/jwt"
	"profile-folio/internal/repository"
	"profile-folio/internal/usecase"
	ucauth "profile-folio/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type tokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type memCredentialRepo struct {
	byEmail map[string]repository.Credential
}

func (m *memCredentialRepo) Create(_ context.Context, c repository.Credential) error {
	m.byEmail[c.Email] = c
	return nil
}

func (m *memCredentialRepo) FindByEmail(_ context.Context, email string) (repository.Credential, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return repository.Credential{}, repository.ErrCredentialNotFound
	}
	return c, nil
}

func (m *memCredentialRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type memProfileRepo struct {
	byID map[uuid.UUID]repository.Profile
}

func (m *memProfileRepo) Create(_ context.Context, p repository.Profile) (repository.Profile, error) {
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProfileRepo) Update(_ context.Context, p repository.Profile) (repository.Profile, error) {
	if _, ok := m.byID[p.ID]; !ok {
		return repository.Profile{}, repository.ErrProfileNotFound
	}
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memProfileRepo) FindByEmail(_ context.Context, email string) (repository.Profile, error) {
	for _, p := range m.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

func (m *memProfileRepo) FindByMobile(_ context.Context, mobile string) (repository.Profile, error) {
	for _, p := range m.byID {
		if p.MobileNumber != nil && *p.MobileNumber == mobile {
			return p, nil
		}
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

func (m *memProfileRepo) FindFirst(_ context.Context) (repository.Profile, error) {
	for _, p := range m.byID {
		return p, nil
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

type memProjectRepo struct {
	byID     map[uuid.UUID]repository.Project
	profiles *memProfileRepo
}

func (m *memProjectRepo) FindByProfileID(_ context.Context, profileID uuid.UUID) ([]repository.Project, error) {
	var out []repository.Project
	for _, p := range m.byID {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Project, error) {
	p, ok := m.byID[id]
	if !ok {
		return repository.Project{}, repository.ErrProjectNotFound
	}
	if owner, ok := m.profiles.byID[p.ProfileID]; ok {
		p.OwnerEmail = owner.Email
	}
	return p, nil
}

func (m *memProjectRepo) Create(_ context.Context, p repository.Project) (repository.Project, error) {
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProjectRepo) Update(_ context.Context, p repository.Project) (repository.Project, error) {
	if _, ok := m.byID[p.ID]; !ok {
		return repository.Project{}, repository.ErrProjectNotFound
	}
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(m.byID, id)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	credRepo := &memCredentialRepo{byEmail: map[string]repository.Credential{}}
	profileRepo := &memProfileRepo{byID: map[uuid.UUID]repository.Profile{}}
	projectRepo := &memProjectRepo{byID: map[uuid.UUID]repository.Project{}, profiles: profileRepo}

	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)

	authHandler := NewAuthHandler(usecase.NewAuthUsecase(ucauth.NewService(credRepo), jwtSvc))
	profileHandler := NewProfileHandler(usecase.NewProfileUsecase(profileRepo, nil))
	projectHandler := NewProjectHandler(usecase.NewProjectUsecase(projectRepo, profileRepo, nil))

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware(nil)
	app.Use(errMw.Middleware())

	authHandler.RegisterRoutes(app)
	app.Get("/basic-info", profileHandler.Get)
	app.Get("/projects", projectHandler.List)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	protected := app.Group("", authMw.Middleware())
	protected.Post("/basic-info", profileHandler.Upsert)
	protected.Delete("/basic-info", profileHandler.Delete)
	protected.Post("/projects", projectHandler.Create)
	protected.Put("/projects/:id", projectHandler.Update)
	protected.Delete("/projects/:id", projectHandler.Delete)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = b
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func obtainToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	status, _ := doJSON(t, app, "POST", "/register", "", map[string]string{"email": email, "password": password})
	if status != fiber.StatusOK {
		t.Fatalf("register failed with status %d", status)
	}

	status, env := doJSON(t, app, "POST", "/token", "", map[string]string{"email": email, "password": password})
	if status != fiber.StatusOK {
		t.Fatalf("token failed with status %d", status)
	}

	var data tokenData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode token data: %v", err)
	}
	if data.TokenType != "bearer" || data.AccessToken == "" {
		t.Fatalf("unexpected token data: %+v", data)
	}
	return data.AccessToken
}

func TestAPI_RegisterLoginAndProfileFlow(t *testing.T) {
	app := newTestApp(t)

	token := obtainToken(t, app, "alice@example.com", "secret1")

	// mutation without a token is rejected at the middleware
	status, _ := doJSON(t, app, "POST", "/basic-info", "", map[string]string{"name": "Alice", "email": "alice@example.com"})
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}

	status, _ = doJSON(t, app, "POST", "/basic-info", token, map[string]string{"name": "Alice", "email": "alice@example.com"})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	status, env := doJSON(t, app, "GET", "/basic-info?email=alice@example.com", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		t.Fatalf("decode profile data: %v", err)
	}
	if profile.Name != "Alice" || profile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAPI_UpsertOtherEmailForbidden(t *testing.T) {
	app := newTestApp(t)

	token := obtainToken(t, app, "alice@example.com", "secret1")

	status, _ := doJSON(t, app, "POST", "/basic-info", token, map[string]string{"name": "Bob", "email": "bob@example.com"})
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestAPI_ProjectRequiresBasicInfo(t *testing.T) {
	app := newTestApp(t)

	token := obtainToken(t, app, "alice@example.com", "secret1")

	body := map[string]string{
		"name":        "Portfolio Site",
		"one_liner":   "Personal portfolio",
		"tech_stack":  "Go, Fiber, PostgreSQL",
		"description": "A portfolio backend.",
	}
	status, env := doJSON(t, app, "POST", "/projects", token, body)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Message != "Create Basic Info first" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	if s, _ := doJSON(t, app, "POST", "/basic-info", token, map[string]string{"name": "Alice", "email": "alice@example.com"}); s != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", s)
	}

	status, _ = doJSON(t, app, "POST", "/projects", token, body)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	status, env = doJSON(t, app, "GET", "/projects?email=alice@example.com", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode projects data: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 project, got %d", len(items))
	}
}

func TestAPI_ProjectCrossOwnerForbidden(t *testing.T) {
	app := newTestApp(t)

	aliceToken := obtainToken(t, app, "alice@example.com", "secret1")
	bobToken := obtainToken(t, app, "bob@example.com", "secret2")

	if s, _ := doJSON(t, app, "POST", "/basic-info", aliceToken, map[string]string{"name": "Alice", "email": "alice@example.com"}); s != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", s)
	}

	body := map[string]string{
		"name":        "Portfolio Site",
		"one_liner":   "Personal portfolio",
		"tech_stack":  "Go, Fiber, PostgreSQL",
		"description": "A portfolio backend.",
	}
	status, env := doJSON(t, app, "POST", "/projects", aliceToken, body)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var created struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created project: %v", err)
	}

	status, _ = doJSON(t, app, "DELETE", "/projects/"+created.ID.String(), bobToken, nil)
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}

	status, _ = doJSON(t, app, "DELETE", "/projects/"+created.ID.String(), aliceToken, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}
