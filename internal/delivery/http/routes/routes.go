package routes

import (
	"log"

	"profile-folio/internal/config"
	"profile-folio/internal/database"
	"profile-folio/internal/delivery/http/handler"
	"profile-folio/internal/delivery/http/middleware"
	"profile-folio/internal/infrastructure/cache"
	"profile-folio/internal/pkg/jwt"
	"profile-folio/internal/repository"
	"profile-folio/internal/usecase"
	ucauth "profile-folio/internal/usecase/auth"
	"profile-folio/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	auth       *handler.AuthHandler
	profile    *handler.ProfileHandler
	project    *handler.ProjectHandler
	experience *handler.ExperienceHandler
	skill      *handler.SkillHandler
	hobby      *handler.HobbyHandler
	wsHandler  *ws.Handler
	authMw     *middleware.AuthMiddleware
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn)

	credentialRepo := repository.NewPostgresCredentialRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	experienceRepo := repository.NewPostgresExperienceRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	hobbyRepo := repository.NewPostgresHobbyRepository(db)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(credentialRepo), jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, c)
	projectUC := usecase.NewProjectUsecase(projectRepo, profileRepo, c)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, profileRepo, c)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, c)
	hobbyUC := usecase.NewHobbyUsecase(hobbyRepo, profileRepo, c)

	return &Registry{
		health:     handler.NewHealthHandler(),
		auth:       handler.NewAuthHandler(authUC),
		profile:    handler.NewProfileHandler(profileUC),
		project:    handler.NewProjectHandler(projectUC),
		experience: handler.NewExperienceHandler(experienceUC),
		skill:      handler.NewSkillHandler(skillUC),
		hobby:      handler.NewHobbyHandler(hobbyUC),
		wsHandler:  ws.NewHandler(hub, logger),
		authMw:     middleware.NewAuthMiddleware(jwtSvc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.auth.RegisterRoutes(app)

	app.Get("/ws", r.wsHandler.HandleWS)

	app.Get("/basic-info", r.profile.Get)
	app.Get("/projects", r.project.List)
	app.Get("/experiences", r.experience.List)
	app.Get("/skills", r.skill.List)
	app.Get("/hobbies", r.hobby.List)

	protected := app.Group("", r.authMw.Middleware())

	protected.Post("/basic-info", r.profile.Upsert)
	protected.Delete("/basic-info", r.profile.Delete)

	protected.Post("/projects", r.project.Create)
	protected.Put("/projects/:id", r.project.Update)
	protected.Delete("/projects/:id", r.project.Delete)

	protected.Post("/experiences", r.experience.Create)
	protected.Put("/experiences/:id", r.experience.Update)
	protected.Delete("/experiences/:id", r.experience.Delete)

	protected.Post("/skills", r.skill.Create)
	protected.Put("/skills/:id", r.skill.Update)
	protected.Delete("/skills/:id", r.skill.Delete)

	protected.Post("/hobbies", r.hobby.Create)
	protected.Put("/hobbies/:id", r.hobby.Update)
	protected.Delete("/hobbies/:id", r.hobby.Delete)
}
