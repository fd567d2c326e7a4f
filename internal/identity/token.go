package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/theLastOfCats/bookstore-go/internal/model"
)

// sessionClaims embeds the user snapshot in the signed session record.
// Sessions do not expire; the signature only makes tampering detectable.
type sessionClaims struct {
	jwt.RegisteredClaims
	User model.User `json:"user"`
}

func signSessionToken(user *model.User, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{User: *user})
	return token.SignedString(secret)
}

func parseSessionToken(raw string, secret []byte) (*model.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &claims.User, nil
}
