package civic

import (
	"directory-service/db"
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the civic and utility directories: unions,
// municipalities, water offices, electricity and internet providers,
// education institutes and government e-services.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.UnionsPath).
		WithDBCollection(consts.UnionsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.MunicipalitiesPath).
		WithDBCollection(consts.MunicipalitiesCollection).
		WithDefaultSort(db.NewSortBuilder().AddAscending(consts.NameField)).
		WithCreatedAtStamp(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.WaterOfficesPath).
		WithDBCollection(consts.WaterOfficesCollection).
		WithCreatedAtStamp(true).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.ElectricitiesPath).
		WithDBCollection(consts.ElectricitiesCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.InternetProvidersPath).
		WithDBCollection(consts.InternetProvidersCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.EducationsPath).
		WithDBCollection(consts.EducationsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.EshebaPath).
		WithDBCollection(consts.EshebaCollection).
		WithServePut(false).
		WithServePatch(true).
		Get())
}
