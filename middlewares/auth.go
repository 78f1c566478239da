package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

// Cookie names used by the dashboard.
const (
	ParentSessionCookie = "kidsafe_session"
	ChildSessionCookie  = "kidsafe_child"
)

// AuthMiddleware guards parent API routes. The token comes from the
// Authorization header or from the session cookie.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(ParentSessionCookie); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claims, err := auth.VerifyParentToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("parent_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

// ChildAuthMiddleware guards the device-facing API routes. It accepts the
// session token issued at child login, either as a bearer token or inside
// the stored child payload cookie.
func ChildAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(ChildSessionCookie); err == nil {
				payload, err := auth.ParseChildPayload(cookie)
				if err != nil {
					c.SetCookie(ChildSessionCookie, "", -1, "/", "", false, true)
					c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid child session"})
					c.Abort()
					return
				}
				tokenString = payload.Token
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claims, err := auth.VerifyChildToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("child_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

// PageGateMiddleware enforces the page-level session rules: it classifies
// the requested path, checks which sessions the browser holds and issues
// the redirect the resolver decides on. A broken child payload is cleared
// before redirecting. When the request passes, the verified identity is
// placed on the context under the same keys the API middlewares use, so
// page handlers aggregate for the logged-in account.
func PageGateMiddleware(auth *services.AuthService, resolver *services.SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parentClaims *services.Claims
		if cookie, err := c.Cookie(ParentSessionCookie); err == nil && cookie != "" {
			if claims, err := auth.VerifyParentToken(cookie); err == nil {
				parentClaims = &claims
			}
		}

		var childPayload *services.ChildSessionPayload
		childBroken := false
		if cookie, err := c.Cookie(ChildSessionCookie); err == nil && cookie != "" {
			if payload, err := auth.ParseChildPayload(cookie); err == nil {
				childPayload = &payload
			} else {
				childBroken = true
			}
		}

		decision := resolver.Resolve(c.Request.URL.Path, parentClaims != nil, childPayload != nil)
		if decision.ClearChildSession || childBroken {
			c.SetCookie(ChildSessionCookie, "", -1, "/", "", false, true)
		}
		if decision.RedirectTo != "" {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		if parentClaims != nil {
			c.Set("parent_id", parentClaims.UserID)
			c.Set("user_type", parentClaims.UserType)
		}
		if childPayload != nil {
			c.Set("child_id", childPayload.Child.ID)
			c.Set("child_payload", *childPayload)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
