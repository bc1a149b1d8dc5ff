package service

import (
	"context"
	"strings"

	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// SearchService finds tutors by free-text query.
type SearchService interface {
	SearchTutors(ctx context.Context, query string) ([]model.User, error)
}

type searchService struct {
	repo repository.UserRepository
}

// NewSearchService creates a new search service.
func NewSearchService(repo repository.UserRepository) SearchService {
	return &searchService{repo: repo}
}

// SearchTutors matches the query case-insensitively against name, bio and
// specialization names of users holding the TUTOR role. A blank query
// returns every tutor.
func (s *searchService) SearchTutors(ctx context.Context, query string) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]model.User, 0)
	for _, user := range users {
		if !user.HasRole(model.RoleTutor) {
			continue
		}
		if needle == "" || tutorMatches(&user, needle) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func tutorMatches(user *model.User, needle string) bool {
	if strings.Contains(strings.ToLower(user.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(user.Bio), needle) {
		return true
	}
	for _, spec := range user.Specializations {
		if strings.Contains(strings.ToLower(spec.Name), needle) {
			return true
		}
	}
	return false
}
