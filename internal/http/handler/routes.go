package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"matchapi/internal/chat"
	"matchapi/internal/http/middleware"
	"matchapi/internal/repository"
	"matchapi/internal/service"
	"matchapi/internal/token"
)

// Deps bundles everything the route table needs. Handlers stay thin and
// free of business logic.
type Deps struct {
	DB           *sql.DB
	Tokens       *token.Manager
	Denylist     token.Denylist
	Users        repository.UserRepository
	Auth         service.AuthService
	Profile      service.ProfileService
	Directory    service.DirectoryService
	Verification service.VerificationService
	Chat         *chat.Channel
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	auth := app.Group("/auth")
	auth.Post("/register", Register(d.Auth))
	auth.Post("/login", Login(d.Auth))

	authed := app.Group("/", middleware.RequireAuth(d.Tokens, d.Denylist, d.Users))
	authed.Post("/auth/logout", Logout(d.Auth))

	authed.Get("/profile", GetMyProfile(d.Profile))
	authed.Put("/profile", UpdateMyProfile(d.Profile))
	authed.Post("/profile/photo", UploadProfilePhoto(d.Profile))

	authed.Get("/profiles", SearchProfiles(d.Directory))

	authed.Post("/verifications", UploadVerification(d.Verification))
	authed.Get("/verifications", ListVerifications(d.Verification))

	authed.Post("/conversations/:key/messages", SendMessage(d.Chat))
	authed.Get("/conversations/:key/stream", RequireWebSocketUpgrade(), StreamMessages(d.Chat))
}
