// Package service holds background and side-effect services used by handlers
package service

import (
	"bitwise74/storage-api/internal/model"
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SendVerificationMail delivers the verification key to a freshly registered
// user. Callers dispatch this fire-and-forget: a failed send never rolls back
// the registration, the user can request the mail again later
func SendVerificationMail(t *model.VerificationToken, encryptedID, sendTo string) error {
	if !viper.GetBool("mail.enabled") {
		// With mail disabled the log line is the only way the key ever
		// reaches anyone, so it has to carry the full credentials
		zap.L().Info("Mail delivery disabled, logging verification key instead",
			zap.String("user_id", t.UserID),
			zap.String("encrypted_user_id", encryptedID),
			zap.String("verification_key", t.Token))
		return nil
	}

	from := viper.GetString("mail.sender")
	if sendTo == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()

	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Account verification")
	m.SetBody("text/plain", fmt.Sprintf(
		"Here is your verification key: %s\n\nYour user ID: %s", t.Token, encryptedID))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
