package security

import (
	"bitwise74/storage-api/internal/model"
	"bitwise74/storage-api/pkg/util"
	"errors"
	"time"
)

// 16 random bytes hex-encoded, so 32 characters on the wire
const tokenSize = 16

// MakeVerificationToken creates a fresh, active verification token for the
// given user. The token is random and single-use
func MakeVerificationToken(userID string) (*model.VerificationToken, error) {
	if userID == "" {
		return nil, errors.New("no user ID provided")
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		return nil, err
	}

	return &model.VerificationToken{
		UserID:    userID,
		Token:     token,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}
