package auth

import (
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the login route issuing bearer tokens for the admin
// frontend.
func AddRoutes(g *gin.Engine) {
	g.POST(consts.LoginPath, handlers.HandleLogin)
}
