// Package utils holds small helpers shared by the catalog clients and the
// views.
package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceToken is a signed bearer token presented to the backend API.
type ServiceToken struct {
	Token string
	Exp   time.Time
}

// Expired reports whether the token is unusable at now, keeping a small
// margin so a token never expires while a request is in flight.
func (t ServiceToken) Expired(now time.Time) bool {
	return t.Token == "" || !now.Add(10*time.Second).Before(t.Exp)
}

// NewServiceToken signs an HS256 token identifying subject with the
// read-only "catalog:read" scope.
func NewServiceToken(secret, subject string, ttl time.Duration) (ServiceToken, error) {
	if secret == "" {
		return ServiceToken{}, fmt.Errorf("utils: empty signing secret")
	}
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":   subject,
		"scope": "catalog:read",
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return ServiceToken{}, err
	}
	return ServiceToken{Token: signed, Exp: exp}, nil
}
