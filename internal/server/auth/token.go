package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/models"
)

// Claims is the validated claim set of a session token. The role is the one
// embedded at issuance; it is never re-derived from current identity state,
// so a role changed after issuance takes effect only when the token expires.
type Claims struct {
	UserID    int64
	Role      models.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// tokenClaims is the wire shape of the claim set.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// GenerateToken produces a signed, self-contained session token for the
// given identity. No server-side session state is created.
func GenerateToken(userID int64, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			ID:        uuid.NewString(),
		},
		Role: role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a session token against the signing key and returns
// the embedded claims. Failures are distinguished with sentinel errors:
// common.ErrTokenExpired, common.ErrBadSignature, common.ErrTokenMalformed.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrBadSignature
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, common.ErrTokenMalformed
	}
	if !claims.Role.IsValid() {
		return nil, common.ErrTokenMalformed
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, common.ErrTokenMalformed
	}

	return &Claims{
		UserID:    userID,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
