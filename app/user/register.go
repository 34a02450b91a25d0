package user

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"bitwise74/storage-api/internal/service"
	"bitwise74/storage-api/pkg/security"
	"bitwise74/storage-api/pkg/validators"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type registerBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	verifToken, err := security.MakeVerificationToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		ID:           userID,
		Email:        data.Email,
		PasswordHash: hash,
		VerificationTokens: []model.VerificationToken{
			*verifToken,
		},
	}
	if data.Username != "" {
		user.Username = &data.Username
	}

	// Uniqueness is enforced by the unique indexes on email and username.
	// A duplicate surfaces as exactly one thing: a conflict
	if err := d.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Username or email already exists",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	encryptedID, err := d.Cipher.Seal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to encrypt user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Fire and forget. A failed send never rolls back the registration
	go func() {
		if err := service.SendVerificationMail(verifToken, encryptedID, data.Email); err != nil {
			zap.L().Error("Failed to send verification email",
				zap.Error(err), zap.String("user_id", userID))
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"message":   "User registered successfully",
		"userID":    encryptedID,
		"requestID": requestID,
	})
}
