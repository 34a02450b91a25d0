package middleware

import (
	"bitwise74/storage-api/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupJWT(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.User{}))

	r := gin.New()
	r.Use(NewRequestIDMiddleware(), NewJWTMiddleware(db))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet("userID")})
	})

	return r, db
}

func mintToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	})

	s, err := token.SignedString([]byte(viper.GetString("jwt.secret")))
	require.NoError(t, err)
	return s
}

func doProtected(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMissingToken(t *testing.T) {
	r, _ := setupJWT(t)

	w := doProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTGarbageToken(t *testing.T) {
	r, _ := setupJWT(t)

	w := doProtected(r, "not.a.jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTExpiredToken(t *testing.T) {
	r, db := setupJWT(t)

	require.NoError(t, db.Create(&model.User{ID: "u1", Email: "a@test.com", PasswordHash: "x", Verified: true}).Error)

	w := doProtected(r, mintToken(t, "u1", -time.Minute))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTWrongSecret(t *testing.T) {
	r, db := setupJWT(t)

	require.NoError(t, db.Create(&model.User{ID: "u1", Email: "a@test.com", PasswordHash: "x", Verified: true}).Error)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	w := doProtected(r, s)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTDeletedUser(t *testing.T) {
	r, _ := setupJWT(t)

	// Token is valid but the account is gone
	w := doProtected(r, mintToken(t, "ghost", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTUnverifiedUser(t *testing.T) {
	r, db := setupJWT(t)

	require.NoError(t, db.Create(&model.User{ID: "u1", Email: "a@test.com", PasswordHash: "x"}).Error)

	w := doProtected(r, mintToken(t, "u1", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTValidToken(t *testing.T) {
	r, db := setupJWT(t)

	require.NoError(t, db.Create(&model.User{ID: "u1", Email: "a@test.com", PasswordHash: "x", Verified: true}).Error)

	w := doProtected(r, mintToken(t, "u1", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestJWTBearerPrefix(t *testing.T) {
	r, db := setupJWT(t)

	require.NoError(t, db.Create(&model.User{ID: "u1", Email: "a@test.com", PasswordHash: "x", Verified: true}).Error)

	w := doProtected(r, "Bearer "+mintToken(t, "u1", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
