package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderSharerID carries the caller's identity. The gateway in front of
// this service authenticates users; the header value is trusted as-is.
const HeaderSharerID = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireSharerID parses the identity header into the request context.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerID)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("identity header missing"), HeaderSharerID+" header required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, HeaderSharerID+" header must be a UUID", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
