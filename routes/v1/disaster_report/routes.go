package disaster_report

import (
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the disaster report routes. Listing is paginated and
// served by a dedicated handler; the status transition is a guarded PATCH.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.DisasterReportsPath).
		WithDBCollection(consts.DisasterReportsCollection).
		WithCreatedAtStamp(true).
		WithServeGet(false).
		WithServePut(false).
		Get())

	group := g.Group(consts.DisasterReportsPath, handlers.DBContextMiddleware(consts.DisasterReportsCollection))
	group.GET("", handleListPaginated)
	group.PATCH("/:"+consts.IDParam+"/status", handlers.TokenGuard(), handleSetStatus)
}
