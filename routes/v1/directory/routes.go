package directory

import (
	"directory-service/db"
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the general directories: lawyers, notable people,
// restaurants, events and travel destinations.
func AddRoutes(g *gin.Engine) {
	// new lawyer entries always start unapproved; the PATCH route flips the
	// approval flag
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.LawyersPath).
		WithDBCollection(consts.LawyersCollection).
		WithCreateSet(consts.ApprovedField, false).
		WithServePatch(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.FamousPath).
		WithDBCollection(consts.FamousCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.RestaurantsPath).
		WithDBCollection(consts.RestaurantsCollection).
		WithDefaultSort(db.NewSortBuilder().AddAscending(consts.NameField)).
		WithCreatedAtStamp(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.EventsPath).
		WithDBCollection(consts.EventsCollection).
		WithDefaultSort(db.NewSortBuilder().AddAscending(consts.EventDateField)).
		WithCreatedAtStamp(true).
		Get())

	// the portal only lists destinations of its home district
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.DestinationsPath).
		WithDBCollection(consts.DestinationsCollection).
		WithFixedListFilter(db.NewFilterBuilder().WithValue(consts.DistrictField, consts.HomeDistrict)).
		WithRequiredFields("name", "location", "category", "district").
		Get())
}
