package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tutorhub/internal/config"
	"tutorhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	credentialHandler *handler.CredentialHandler,
	searchHandler *handler.SearchHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register/student", authHandler.RegisterStudent)
	api.POST("/auth/register/tutor", authHandler.RegisterTutor)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/users", seedHandler.SeedUsers)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:sub/public", userHandler.GetPublicProfile)
	api.GET("/tutors/search", searchHandler.SearchTutors)
	api.GET("/tutors/:sub/rate", userHandler.GetTutorRate)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
	secured.DELETE("/me", userHandler.DeleteMe)
	secured.GET("/me/roles", userHandler.GetRoles)
	secured.POST("/me/roles", userHandler.AddRole)
	secured.PUT("/me/roles", userHandler.UpdateRoles)
	secured.GET("/me/profile-status", profileHandler.GetProfileStatus)

	// Student profile routes
	secured.GET("/students/profile", profileHandler.GetStudentProfile)
	secured.PUT("/students/profile", profileHandler.UpdateStudentProfile)
	secured.DELETE("/students/profile", profileHandler.RemoveStudentRole)

	// Tutor profile routes
	secured.GET("/tutors/profile", profileHandler.GetTutorProfile)
	secured.PUT("/tutors/profile", profileHandler.UpdateTutorProfile)
	secured.DELETE("/tutors/profile", profileHandler.RemoveTutorRole)
	secured.GET("/tutors/rate", profileHandler.GetTokensPerHour)
	secured.PUT("/tutors/rate", profileHandler.UpdateTokensPerHour)

	// Credential routes
	secured.POST("/tutors/credentials", credentialHandler.Upload)
	secured.DELETE("/tutors/credentials", credentialHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
