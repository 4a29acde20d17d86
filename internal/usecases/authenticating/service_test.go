package authenticating

import (
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AdminEmail:    "admin@pauloenterprise.com.br",
			AdminPassword: "senha-correta",
			Secret:        "segredo-de-teste",
			TokenTTLHours: 1,
		},
	}
}

func TestLogin(t *testing.T) {
	service := NewService(testAuthConfig())

	token, err := service.Login("admin@pauloenterprise.com.br", "senha-correta")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@pauloenterprise.com.br", claims.Email)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	service := NewService(testAuthConfig())

	token, err := service.Login("  Admin@PauloEnterprise.com.br ", "senha-correta")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_RejectsWrongCredentials(t *testing.T) {
	service := NewService(testAuthConfig())

	_, err := service.Login("admin@pauloenterprise.com.br", "senha-errada")
	assert.True(t, IsCredentialsError(err))

	_, err = service.Login("outro@exemplo.com", "senha-correta")
	assert.True(t, IsCredentialsError(err))

	_, err = service.Login("", "")
	require.Error(t, err)
	assert.False(t, IsCredentialsError(err), "campos vazios são erro de validação, não de credencial")
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	service := NewService(testAuthConfig())

	_, err := service.ValidateToken("não-é-um-token")
	assert.True(t, IsAuthorizationError(err))
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	service := NewService(testAuthConfig())

	otherCfg := testAuthConfig()
	otherCfg.Auth.Secret = "outro-segredo"
	other := NewService(otherCfg)

	token, err := other.Login("admin@pauloenterprise.com.br", "senha-correta")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.True(t, IsAuthorizationError(err))
}
