package handlers

import (
	"net/http"
	"strings"

	"directory-service/auth"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"github.com/gin-gonic/gin"
)

var tokenService *auth.TokenService

// UseTokenService installs the token service the login handler and the
// guard run on. Called once at startup.
func UseTokenService(service *auth.TokenService) {
	tokenService = service
}

// HandleLogin signs the submitted claims and returns the bearer token.
func HandleLogin(c *gin.Context) {
	defer log.LogNTraceEnterExit("HandleLogin", c)()
	claims := map[string]interface{}{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		ResponseFailedToBindJson(c, err)
		return
	}
	token, err := tokenService.IssueToken(claims)
	if err != nil {
		ResponseInternalServerError(c, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// TokenGuard protects mutating routes. A missing bearer header is
// unauthorized; a present but invalid or expired credential is forbidden.
func TokenGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(consts.AuthorizationHeader)
		if header == "" {
			ResponseUnauthorized(c, "missing authorization token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, consts.BearerSchema))
		claims, err := tokenService.VerifyToken(token)
		if err != nil {
			ResponseForbidden(c, err.Error())
			return
		}
		c.Set(consts.AuthClaims, claims)
		c.Next()
	}
}
