package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:52114"

	assert.Equal(t, "10.0.0.1", clientIP(c))

	c.Request.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", clientIP(c))

	// The first forwarded hop wins over everything else.
	c.Request.Header.Set("X-Forwarded-For", " 198.51.100.7 , 10.0.0.1")
	assert.Equal(t, "198.51.100.7", clientIP(c))
}
