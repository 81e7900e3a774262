package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
	"github.com/jhoicas/leave-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ViewUC    *usecase.ViewUseCase
	RequestUC *usecase.RequestUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	// Users fuente del rol vigente de cada actor autenticado.
	Users     repository.UserRepository
	JWTSecret string
	Sessions  *session.Store
	Cookie    CookieConfig
	// LinkBase URL pública para los enlaces de invitación ("" = la de la petición).
	LinkBase     string
	Renderer     Renderer
	Metrics      *Metrics
	LoginLimiter *RateLimiter
	Logger       *logger.Logger
}

// Router registra las rutas del tracker.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	web := app.Group("/", SessionMiddleware(deps.Sessions, deps.Metrics, log.Component("http")), AuthMiddleware(deps.JWTSecret, deps.Users))
	requireActor := RequireActor()

	viewHandler := NewViewHandler(deps.ViewUC, deps.Renderer)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	requestHandler := NewRequestHandler(deps.RequestUC, deps.Metrics)
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC, deps.LinkBase)

	// Públicas
	web.Get("/", viewHandler.Index)
	web.Get("/login", viewHandler.Login)
	web.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	web.Post("/logout", authHandler.Logout)
	web.Get("/register/:token", viewHandler.Register)
	web.Post("/register/:token", authHandler.Register)
	web.Get("/forgot", viewHandler.Reset)

	// Sin sesión guarda el borrador y redirige a /login
	web.Post("/dashboard/submit", requestHandler.Submit)

	// Dashboard y solicitudes
	web.Get("/dashboard", requireActor, viewHandler.Dashboard)
	web.Get("/dashboard/submit", requireActor, viewHandler.SubmitForm)
	web.Get("/requests/:id", requireActor, viewHandler.Approval)
	web.Get("/requests/:id/edit", requireActor, viewHandler.EditRequest)
	web.Post("/requests/:id/edit", requireActor, requestHandler.Update)
	web.Post("/requests/:id/approve", requireActor, requestHandler.Approve)
	web.Post("/requests/:id/deny", requireActor, requestHandler.Deny)

	// Usuarios y perfiles
	web.Get("/users", requireActor, viewHandler.Users)
	web.Get("/users/add", requireActor, viewHandler.AddUsers)
	web.Post("/users/add", requireActor, userHandler.Invite)
	web.Get("/profile", requireActor, viewHandler.Profile)
	web.Get("/profile/:userId", requireActor, viewHandler.Profile)
	web.Post("/profile/:userId", requireActor, userHandler.UpdateProfile)
	web.Delete("/api/users", requireActor, userHandler.Delete)
}
