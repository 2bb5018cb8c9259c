package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acasal/gastos/internal/auth"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)
	personID := uuid.New()

	token, err := m.Generate(personID, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, personID, claims.PersonID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestJWTManager_Expired(t *testing.T) {
	m := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := auth.NewJWTManager("secret-a", time.Hour).Generate(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = auth.NewJWTManager("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
