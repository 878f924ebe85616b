package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceID resolves the device identity for the request. The app is a
// single-profile-per-device product, so the device id is the account id.
// Clients send X-Device-ID; when absent a fresh id is minted and echoed
// back so the client can persist it.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Device-ID"))
		if id == "" {
			id = uuid.NewString()
			c.Header("X-Device-ID", id)
		}
		c.Set("deviceID", id)
		c.Next()
	}
}

// KeyByDeviceID rate-limits per device, falling back to IP for requests
// that somehow carry no device id.
func KeyByDeviceID() KeyFunc {
	return func(c *gin.Context) string {
		id := c.GetString("deviceID")
		if id == "" {
			return "rl:device:anon:ip:" + ipFromCtx(c)
		}
		return "rl:device:" + id
	}
}
