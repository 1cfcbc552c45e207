package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cozyhomes-backend/internal/shared/session"
	"cozyhomes-backend/pkg/jwt"
)

const sessionKey = "session"

// Auth validates the bearer token and attaches an explicit session.Session
// to the request context. Handlers read it with SessionFrom and pass it
// down as a value; services never reach into gin state themselves.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		actorID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(sessionKey, session.Session{
			ActorID: actorID,
			Email:   claims.Email,
		})

		c.Next()
	}
}

// SessionFrom returns the session attached by Auth, or the anonymous
// session when the middleware did not run.
func SessionFrom(c *gin.Context) session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Anonymous
	}
	sess, ok := v.(session.Session)
	if !ok {
		return session.Anonymous
	}
	return sess
}
