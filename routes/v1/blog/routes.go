package blog

import (
	"directory-service/db"
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the blog CRUD routes plus the like/unlike toggle and
// the embedded comments sub-resource. Likes and comments are visitor
// interactions and stay outside the token guard.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.BlogsPath).
		WithDBCollection(consts.BlogsCollection).
		WithDefaultSort(db.NewSortBuilder().AddDescending(consts.CreatedAtField)).
		WithCreatedAtStamp(true).
		Get())

	group := g.Group(consts.BlogsPath, handlers.DBContextMiddleware(consts.BlogsCollection))
	group.POST("/:"+consts.IDParam+"/like", handleLike)
	group.GET("/:"+consts.IDParam+"/comments", handleListComments)
	group.POST("/:"+consts.IDParam+"/comments", handleAddComment)
}
