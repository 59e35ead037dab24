package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTOTP(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("senami@example.org")
	require.NoError(t, err)
	assert.Contains(t, url, "otpauth://")

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, VerifyTOTP(secret, code))
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	assert.False(t, VerifyTOTP(secret, wrong))
	assert.False(t, VerifyTOTP(secret, "pas-un-code"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse", hash)

	assert.True(t, CheckPassword("motdepasse", hash))
	assert.False(t, CheckPassword("autre", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("member-1", "a@b.org", "admin")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.MemberID)
	assert.Equal(t, "a@b.org", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestAccessTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateAccessToken("m", "a@b.org", "member")
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseAccessToken("garbage")
	assert.Error(t, err)
}

func TestNewMembershipNumber(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	n := NewMembershipNumber(now)

	assert.True(t, strings.HasPrefix(n, "MC-2026-"), n)
	assert.Len(t, n, len("MC-2026-")+6)
	// Deux numéros consécutifs ne se répètent pas.
	assert.NotEqual(t, n, NewMembershipNumber(now))
}

func TestEncryptDecryptSecret(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	encrypted, err := EncryptSecret("totp-secret-value")
	require.NoError(t, err)
	assert.NotEqual(t, "totp-secret-value", encrypted)

	decrypted, err := DecryptSecret(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "totp-secret-value", decrypted)
}

func TestEncryptSecretRequiresKey(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "too-short")
	_, err := EncryptSecret("x")
	assert.Error(t, err)
}

func TestMaskEmail(t *testing.T) {
	// Hors production, rien n'est masqué.
	old := IsProduction
	defer func() { IsProduction = old }()

	IsProduction = false
	assert.Equal(t, "a@b.org", MaskEmail("a@b.org"))

	IsProduction = true
	assert.Equal(t, "***@***.***", MaskEmail("a@b.org"))
	assert.NotContains(t, MaskString("contact: a@b.org tel: +229 97 00 11 22"), "a@b.org")
}
