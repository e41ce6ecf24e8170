package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeToCapitalizedWords(t *testing.T) {
	cases := map[string]string{
		"rental_rate":      "Rental Rate",
		"special_features": "Special Features",
		"title":            "Title",
		"cast_count":       "Cast Count",
		"":                 "",
		"a__b":             "A  B",
		"éclair_time":      "Éclair Time",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeToCapitalizedWords(in), in)
	}
}

func TestServiceToken_RoundTrip(t *testing.T) {
	tok, err := NewServiceToken("s3cret", "rental-manager", time.Minute)
	require.NoError(t, err)
	assert.False(t, tok.Expired(time.Now()))
	assert.True(t, tok.Expired(time.Now().Add(2*time.Minute)))

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tok.Token, claims, func(*jwt.Token) (any, error) { return []byte("s3cret"), nil },
		jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.Equal(t, "rental-manager", claims["sub"])
	assert.Equal(t, "catalog:read", claims["scope"])

	_, err = jwt.Parse(tok.Token, func(*jwt.Token) (any, error) { return []byte("other"), nil })
	assert.Error(t, err)
}

func TestServiceToken_EmptySecret(t *testing.T) {
	_, err := NewServiceToken("", "x", time.Minute)
	assert.Error(t, err)
	assert.True(t, ServiceToken{}.Expired(time.Now()))
}
