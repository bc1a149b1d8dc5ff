package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tutorhub/internal/config"
	"tutorhub/internal/db"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// seedPassword is the shared password for every seeded account.
const seedPassword = "demo-password"

type seedUser struct {
	Name           string
	Email          string
	PhoneNumber    string
	Roles          []string
	EducationLevel string
	Bio            string
	Specialization string
}

var seedUsers = []seedUser{
	{Name: "Alice Demo", Email: "alice.student@example.com", PhoneNumber: "+15550000001", Roles: []string{model.RoleStudent}, EducationLevel: "High school"},
	{Name: "Bruno Demo", Email: "bruno.student@example.com", PhoneNumber: "+15550000002", Roles: []string{model.RoleStudent}, EducationLevel: "Undergraduate"},
	{Name: "Carla Demo", Email: "carla.tutor@example.com", PhoneNumber: "+15550000003", Roles: []string{model.RoleTutor}, Bio: "Mathematics tutor with ten years of classroom experience.", Specialization: "Mathematics"},
	{Name: "Diego Demo", Email: "diego.tutor@example.com", PhoneNumber: "+15550000004", Roles: []string{model.RoleTutor}, Bio: "Physics and chemistry, exam preparation focus.", Specialization: "Physics"},
	{Name: "Eva Demo", Email: "eva.both@example.com", PhoneNumber: "+15550000005", Roles: []string{model.RoleStudent, model.RoleTutor}, EducationLevel: "Graduate", Bio: "Languages tutor, learning data science.", Specialization: "English"},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.CredentialEvent{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding demo users into database...")
	created, updated, err := seed(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users updated: %d", updated)
	log.Printf("  - Total users processed: %d", created+updated)
}

// seed creates the demo users, updating profile fields on accounts that
// already exist so re-runs converge on the fixture data.
func seed(ctx context.Context, repo repository.UserRepository) (created int, updated int, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, 0, fmt.Errorf("hash seed password: %w", err)
	}

	for _, item := range seedUsers {
		existing, err := repo.FindByEmail(ctx, item.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("error checking user %s: %w", item.Email, err)
		}

		if existing != nil {
			existing.Name = item.Name
			existing.PhoneNumber = item.PhoneNumber
			existing.Roles = item.Roles
			existing.EducationLevel = item.EducationLevel
			existing.Bio = item.Bio
			existing.Specializations = specializationsOf(item)
			if err := repo.Save(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating user %s: %w", item.Email, err)
			}
			updated++
		} else {
			user := &model.User{
				Sub:             uuid.NewString(),
				Name:            item.Name,
				Email:           item.Email,
				PasswordHash:    string(hash),
				PhoneNumber:     item.PhoneNumber,
				Roles:           item.Roles,
				EducationLevel:  item.EducationLevel,
				Bio:             item.Bio,
				Specializations: specializationsOf(item),
			}
			if err := repo.Create(ctx, user); err != nil {
				return created, updated, fmt.Errorf("error creating user %s: %w", item.Email, err)
			}
			created++
		}
	}

	return created, updated, nil
}

func specializationsOf(item seedUser) model.SpecializationList {
	if item.Specialization == "" {
		return nil
	}
	return model.SpecializationList{
		{Name: item.Specialization, Source: model.SourceManual},
	}
}
