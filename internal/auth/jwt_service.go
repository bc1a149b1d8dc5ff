package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour

	bearerPrefix = "Bearer "
)

// Identity is the user information carried by a bearer token.
type Identity struct {
	Sub         string
	Email       string
	Name        string
	PhoneNumber string
	Roles       []string
}

// Claims represents JWT claims. The subject claim carries the user's sub.
type Claims struct {
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateAccessToken generates a new access token for the identity.
func (s *JWTService) GenerateAccessToken(identity Identity) (string, error) {
	claims := &Claims{
		Email:       identity.Email,
		Name:        identity.Name,
		PhoneNumber: identity.PhoneNumber,
		Roles:       identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken generates a new refresh token for the identity.
// The refresh token ID is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(identity Identity) (tokenID string, token string, err error) {
	tokenID = uuid.New().String()
	claims := &Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   identity.Sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return tokenID, token, err
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractIdentity decodes a bearer token (with or without the "Bearer "
// prefix) into the identity it carries.
func (s *JWTService) ExtractIdentity(bearerToken string) (Identity, error) {
	claims, err := s.ValidateToken(strings.TrimPrefix(bearerToken, bearerPrefix))
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Sub:         claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		PhoneNumber: claims.PhoneNumber,
		Roles:       claims.Roles,
	}, nil
}

// IsValid reports whether the token parses and has not expired.
func (s *JWTService) IsValid(bearerToken string) bool {
	_, err := s.ValidateToken(strings.TrimPrefix(bearerToken, bearerPrefix))
	return err == nil
}

// ExtractTokenID extracts the token ID (JTI) from a refresh token.
func (s *JWTService) ExtractTokenID(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("token ID not found")
	}
	return claims.ID, nil
}
