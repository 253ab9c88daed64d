package media

import (
	"directory-service/db"
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the media directories: news articles, notices and
// journalists.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.NewsPath).
		WithDBCollection(consts.NewsCollection).
		WithRequiredFields("title", "content", "category", "author").
		WithTimeDefault(consts.PublishDateField).
		WithServePut(false).
		WithServePatch(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.NoticesPath).
		WithDBCollection(consts.NoticesCollection).
		WithRequiredFields("title", "description").
		WithTimeDefault(consts.PublishDateField).
		WithDefaultSort(db.NewSortBuilder().AddDescending(consts.PublishDateField)).
		WithServePut(false).
		WithServePatch(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.JournalistsPath).
		WithDBCollection(consts.JournalistsCollection).
		Get())
}
