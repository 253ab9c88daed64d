package consts

import "time"

const (

	//Context keys for stored values
	Collection = "collection" //key for db collection name of the request
	ReqLogger  = "reqLogger"  //key for request logger
	AuthClaims = "authClaims" //key for verified token claims

	//PATHS
	LoginPath             = "/login"
	DonorsPath            = "/donors"
	HospitalsPath         = "/hospitals"
	DoctorsPath           = "/doctors"
	DoctorsLegacyPath     = "/api/doctors"
	AmbulancesPath        = "/ambulances"
	FireStationsPath      = "/fire-stations"
	PoliceStationsPath    = "/policestations"
	LawyersPath           = "/lawyers"
	StationsPath          = "/stations"
	JournalistsPath       = "/journalists"
	DestinationsPath      = "/destinations"
	BusesPath             = "/buses"
	CouriersPath          = "/couriers"
	EducationsPath        = "/educations"
	ElectricitiesPath     = "/electricities"
	InternetProvidersPath = "/internet-providers"
	NewsPath              = "/news"
	NoticesPath           = "/notices"
	EshebaPath            = "/esheba"
	UnionsPath            = "/unions"
	WaterOfficesPath      = "/water-offices"
	MunicipalitiesPath    = "/municipalities"
	RestaurantsPath       = "/restaurants"
	EventsPath            = "/events"
	RentCarsPath          = "/rent-cars"
	BlogsPath             = "/blogs"
	FamousPath            = "/famous"
	ContactsPath          = "/contacts"
	AdsPath               = "/ads"
	ContentCreatorsPath   = "/content-creators"
	SlidersPath           = "/sliders"
	PartnersPath          = "/partners"
	DisasterReportsPath   = "/disaster-reports"

	//DB collections
	DonorsCollection            = "donors"
	HospitalsCollection         = "hospitals"
	DoctorsCollection           = "doctors"
	AmbulancesCollection        = "ambulances"
	FireStationsCollection      = "fire-stations"
	PoliceStationsCollection    = "policestations"
	LawyersCollection           = "lawyers"
	StationsCollection          = "stations"
	JournalistsCollection       = "journalists"
	DestinationsCollection      = "destinations"
	BusesCollection             = "buses"
	CouriersCollection          = "couriers"
	EducationsCollection        = "educations"
	ElectricitiesCollection     = "electricities"
	InternetProvidersCollection = "internetProviders"
	NewsCollection              = "news"
	NoticesCollection           = "notices"
	EshebaCollection            = "esheba"
	UnionsCollection            = "unions"
	WaterOfficesCollection      = "waterOffices"
	MunicipalitiesCollection    = "municipalities"
	RestaurantsCollection       = "restaurants"
	EventsCollection            = "events"
	RentCarsCollection          = "rent_cars"
	BlogsCollection             = "blogs"
	FamousCollection            = "famous"
	ContactsCollection          = "contacts"
	AdsCollection               = "ads"
	ContentCreatorsCollection   = "content-creators"
	SlidersCollection           = "sliders"
	PartnersCollection          = "partners"
	DisasterReportsCollection   = "disaster-reports"

	//Common document fields
	IdField          = "_id"
	NameField        = "name"
	CreatedAtField   = "createdAt"
	UpdatedAtField   = "updatedAt"
	PublishDateField = "publishDate"
	LikesField       = "likes"
	CommentsField    = "comments"
	StatusField      = "status"
	ApprovedField    = "approved"
	OrderField       = "order"
	DistrictField    = "district"
	EventDateField   = "date"

	//Path and query params
	IDParam     = "id"
	PageParam   = "page"
	LimitParam  = "limit"
	StatusParam = "status"

	//Pagination defaults
	DefaultPage     = 1
	DefaultPageSize = 10

	//Auth
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer"
	TokenExpiry         = 2 * time.Hour

	//Fixed filter values
	HomeDistrict = "bogura"
)
