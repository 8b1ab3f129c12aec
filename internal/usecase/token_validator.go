package usecase

import (
	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token to the staff user it was issued to.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// TokenParser is the part of the JWT service the validator needs.
type TokenParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidator struct {
	parser TokenParser
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{parser: jwtService}
}

// ValidateToken also rejects tokens whose role claim is no longer a staff
// role, so retired roles lose access without waiting for expiry.
func (t *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.parser.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthorized)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthorized)
	}

	return claims.UserID, role, nil
}
