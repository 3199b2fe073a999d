package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit_test_secret_key_for_chat_sync")

func Test_Generate_And_Validate_Token(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(testSecret, "user-42", "Alice", time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(testSecret, token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.Equal("Alice", claims.DisplayName)
	req.Equal("chat-sync", claims.Issuer)
}

func Test_Validate_Expired_Token(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(testSecret, "user-42", "Alice", -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(testSecret, token)
	req.Error(err)
}

func Test_Validate_Wrong_Secret(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(testSecret, "user-42", "Alice", time.Hour)
	req.NoError(err)

	_, err = ValidateToken([]byte("another_secret_entirely_here"), token)
	req.Error(err)
}
