package transport

import (
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the transport directories: railway stations, buses,
// courier services and car rentals.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.StationsPath).
		WithDBCollection(consts.StationsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.BusesPath).
		WithDBCollection(consts.BusesCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.CouriersPath).
		WithDBCollection(consts.CouriersCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.RentCarsPath).
		WithDBCollection(consts.RentCarsCollection).
		WithCreatedAtStamp(true).
		Get())
}
