package service

import (
	"strings"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// EvaluateProfileStatus reports whether a user's profile is complete for a
// role. When requestedRole is blank the user's first role is evaluated; when
// it is given the user must actually hold it. A user with no roles at all is
// incomplete with "role" as the single missing field.
//
// MissingFields stays nil when nothing is missing, so callers can tell
// "complete" apart from "not evaluated".
func EvaluateProfileStatus(user *model.User, requestedRole string) (*model.ProfileStatus, error) {
	currentRole, err := resolveRole(user, requestedRole)
	if err != nil {
		return nil, err
	}

	status := &model.ProfileStatus{CurrentRole: currentRole}
	if currentRole == "" {
		status.MissingFields = []string{"role"}
		return status, nil
	}

	missing := missingFieldsForRole(user, currentRole)
	status.Complete = len(missing) == 0
	if len(missing) > 0 {
		status.MissingFields = missing
	}
	return status, nil
}

func resolveRole(user *model.User, requestedRole string) (string, error) {
	if strings.TrimSpace(requestedRole) != "" {
		if !user.HasRole(requestedRole) {
			return "", apperrors.ErrRoleMismatch
		}
		return strings.ToUpper(requestedRole), nil
	}
	if len(user.Roles) > 0 {
		return strings.ToUpper(user.Roles[0]), nil
	}
	return "", nil
}

func missingFieldsForRole(user *model.User, role string) []string {
	var missing []string
	appendIfBlank := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	switch {
	case strings.EqualFold(role, model.RoleStudent):
		appendIfBlank(user.Name, "name")
		appendIfBlank(user.Email, "email")
		appendIfBlank(user.PhoneNumber, "phoneNumber")
		appendIfBlank(user.EducationLevel, "educationLevel")
	case strings.EqualFold(role, model.RoleTutor):
		appendIfBlank(user.Name, "name")
		appendIfBlank(user.Email, "email")
		appendIfBlank(user.PhoneNumber, "phoneNumber")
		appendIfBlank(user.Bio, "bio")
		if len(user.Specializations) == 0 {
			missing = append(missing, "specializations")
		}
		if len(user.Credentials) == 0 {
			missing = append(missing, "credentials")
		}
	}
	return missing
}
