package handlers

import (
	"net/http"
	"strings"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/scope"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthRequired verifies the bearer token and pins the route to one actor
// kind. A valid student token on a company route is 403: the caller is
// known, just the wrong kind. Everything past this middleware can assume
// currentActor is set.
func AuthRequired(auth *services.AuthService, kind scope.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		actor, err := auth.ResolveToken(token)
		if err != nil {
			status, msg := apperr.Public(err)
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}
		if err := actor.Require(kind); err != nil {
			status, msg := apperr.Public(err)
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func currentActor(c *gin.Context) scope.Actor {
	return c.MustGet(actorKey).(scope.Actor)
}

// respondError translates a service error into its HTTP shape.
func respondError(c *gin.Context, err error) {
	status, msg := apperr.Public(err)
	c.JSON(status, gin.H{"error": msg})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
