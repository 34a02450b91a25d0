package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Validate only runs after the JWT middleware, so reaching it means the
// token checks out
func Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
