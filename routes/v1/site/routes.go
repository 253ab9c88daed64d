package site

import (
	"directory-service/db"
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the site content collections: ads, sliders, partners,
// content creators and contact messages.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.AdsPath).
		WithDBCollection(consts.AdsCollection).
		Get())

	// sliders are only ever fetched as a full set
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.SlidersPath).
		WithDBCollection(consts.SlidersCollection).
		WithServeGetByID(false).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.PartnersPath).
		WithDBCollection(consts.PartnersCollection).
		WithDefaultSort(db.NewSortBuilder().
			AddAscending(consts.OrderField).
			AddDescending(consts.CreatedAtField)).
		WithCreatedAtStamp(true).
		WithUpdatedAtStamp(true).
		WithServePatch(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.ContentCreatorsPath).
		WithDBCollection(consts.ContentCreatorsCollection).
		Get())

	// contact messages come from the public contact form, so create is not
	// behind the guard; messages are immutable once submitted
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.ContactsPath).
		WithDBCollection(consts.ContactsCollection).
		WithDefaultSort(db.NewSortBuilder().AddDescending(consts.CreatedAtField)).
		WithCreatedAtStamp(true).
		WithPublicPost(true).
		WithServePut(false).
		Get())
}
