package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// SeedHandler handles demo data endpoints.
type SeedHandler struct {
	userRepo repository.UserRepository
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(userRepo repository.UserRepository) *SeedHandler {
	return &SeedHandler{userRepo: userRepo}
}

// SeedUsersResponse represents the seed response.
type SeedUsersResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

type seedUser struct {
	Name           string
	Email          string
	PhoneNumber    string
	Roles          []string
	EducationLevel string
	Bio            string
}

// demoUsers is the fixture set created by the seed endpoint. All seeded
// accounts share the password "demo-password".
var demoUsers = []seedUser{
	{Name: "Alice Demo", Email: "alice.student@example.com", PhoneNumber: "+15550000001", Roles: []string{model.RoleStudent}, EducationLevel: "High school"},
	{Name: "Bruno Demo", Email: "bruno.student@example.com", PhoneNumber: "+15550000002", Roles: []string{model.RoleStudent}, EducationLevel: "Undergraduate"},
	{Name: "Carla Demo", Email: "carla.tutor@example.com", PhoneNumber: "+15550000003", Roles: []string{model.RoleTutor}, Bio: "Mathematics tutor with ten years of classroom experience."},
	{Name: "Diego Demo", Email: "diego.tutor@example.com", PhoneNumber: "+15550000004", Roles: []string{model.RoleTutor}, Bio: "Physics and chemistry, exam preparation focus."},
	{Name: "Eva Demo", Email: "eva.both@example.com", PhoneNumber: "+15550000005", Roles: []string{model.RoleStudent, model.RoleTutor}, EducationLevel: "Graduate", Bio: "Languages tutor, learning data science."},
}

// SeedUsers godoc
// @Summary Seed demo users
// @Tags seed
// @Produce json
// @Success 200 {object} SeedUsersResponse
// @Failure 500 {object} map[string]string
// @Router /seed/users [get]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	ctx := c.Request().Context()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to hash password: %v", err),
		})
	}

	created, skipped := 0, 0
	for _, item := range demoUsers {
		existing, err := h.userRepo.FindByEmail(ctx, item.Email)
		if err == nil && existing != nil {
			skipped++
			continue
		}

		user := &model.User{
			Sub:            uuid.NewString(),
			Name:           item.Name,
			Email:          item.Email,
			PasswordHash:   string(hash),
			PhoneNumber:    item.PhoneNumber,
			Roles:          item.Roles,
			EducationLevel: item.EducationLevel,
			Bio:            item.Bio,
		}
		if err := h.userRepo.Create(ctx, user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": fmt.Sprintf("failed to seed user %s: %v", item.Email, err),
			})
		}
		created++
	}

	return c.JSON(http.StatusOK, SeedUsersResponse{
		Message: "Demo users seeded successfully",
		Created: created,
		Skipped: skipped,
	})
}
