package service

import (
	"bitwise74/storage-api/internal/model"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// With mail disabled the key must still surface somewhere, and the only
// somewhere is the log
func TestSendVerificationMailDisabledLogsKey(t *testing.T) {
	viper.Set("mail.enabled", false)

	core, logs := observer.New(zap.InfoLevel)
	prev := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	defer zap.ReplaceGlobals(prev)

	token := &model.VerificationToken{
		UserID: "u1",
		Token:  "0123456789abcdef0123456789abcdef",
		Active: true,
	}

	err := SendVerificationMail(token, "sealed-id", "a@test.com")
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "u1", fields["user_id"])
	assert.Equal(t, "sealed-id", fields["encrypted_user_id"])
	assert.Equal(t, token.Token, fields["verification_key"])
}
