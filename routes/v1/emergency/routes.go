package emergency

import (
	"directory-service/handlers"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
)

// AddRoutes registers the emergency service directories: blood donors,
// hospitals, doctors, ambulances, fire and police stations.
func AddRoutes(g *gin.Engine) {
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.DonorsPath).
		WithDBCollection(consts.DonorsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.HospitalsPath).
		WithDBCollection(consts.HospitalsCollection).
		Get())

	// the old frontend still calls /api/doctors
	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.DoctorsPath).
		WithAliasPath(consts.DoctorsLegacyPath).
		WithDBCollection(consts.DoctorsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.AmbulancesPath).
		WithDBCollection(consts.AmbulancesCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.FireStationsPath).
		WithDBCollection(consts.FireStationsCollection).
		Get())

	handlers.AddRoutes(g, handlers.NewRouterOptionsBuilder().
		WithPath(consts.PoliceStationsPath).
		WithDBCollection(consts.PoliceStationsCollection).
		WithRequiredFields("name", "address", "officer").
		WithRequiredFieldsOnUpdate(true).
		Get())
}
