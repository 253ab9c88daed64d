package handlers

import (
	"strings"

	"directory-service/db"
	"directory-service/utils/consts"

	"github.com/gertd/go-pluralize"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var pluralizer = pluralize.NewClient()

// routerOptions is the declarative per-resource configuration the generic
// handlers run on: path, collection binding, required fields, default sort,
// fixed filter, timestamp stamping and which verbs the resource serves.
type routerOptions struct {
	path             string
	dbCollection     string
	resourceName     string //singular, for error messages
	serveGet         bool
	serveGetByID     bool
	servePost        bool
	servePut         bool
	servePatch       bool
	serveDelete      bool
	publicPost       bool //create stays outside the token guard (public submission forms)
	requiredFields   []string
	requiredOnUpdate bool
	fixedListFilter  *db.FilterBuilder
	defaultSort      *db.SortBuilder
	stampCreatedAt   bool
	stampUpdatedAt   bool
	timeDefaults     []string //fields set to the server clock when absent on create
	createSet        map[string]interface{}
	aliasPaths       []string
}

type RouterOptionsBuilder struct {
	opts routerOptions
}

func NewRouterOptionsBuilder() *RouterOptionsBuilder {
	return &RouterOptionsBuilder{
		opts: routerOptions{
			serveGet:     true,
			serveGetByID: true,
			servePost:    true,
			servePut:     true,
			serveDelete:  true,
		},
	}
}

func (b *RouterOptionsBuilder) Get() *routerOptions {
	return &b.opts
}

func (b *RouterOptionsBuilder) WithPath(path string) *RouterOptionsBuilder {
	b.opts.path = path
	return b
}

func (b *RouterOptionsBuilder) WithDBCollection(collection string) *RouterOptionsBuilder {
	b.opts.dbCollection = collection
	return b
}

func (b *RouterOptionsBuilder) WithServeGet(serve bool) *RouterOptionsBuilder {
	b.opts.serveGet = serve
	return b
}

func (b *RouterOptionsBuilder) WithServeGetByID(serve bool) *RouterOptionsBuilder {
	b.opts.serveGetByID = serve
	return b
}

func (b *RouterOptionsBuilder) WithServePost(serve bool) *RouterOptionsBuilder {
	b.opts.servePost = serve
	return b
}

func (b *RouterOptionsBuilder) WithServePut(serve bool) *RouterOptionsBuilder {
	b.opts.servePut = serve
	return b
}

func (b *RouterOptionsBuilder) WithServePatch(serve bool) *RouterOptionsBuilder {
	b.opts.servePatch = serve
	return b
}

func (b *RouterOptionsBuilder) WithServeDelete(serve bool) *RouterOptionsBuilder {
	b.opts.serveDelete = serve
	return b
}

func (b *RouterOptionsBuilder) WithPublicPost(public bool) *RouterOptionsBuilder {
	b.opts.publicPost = public
	return b
}

func (b *RouterOptionsBuilder) WithRequiredFields(fields ...string) *RouterOptionsBuilder {
	b.opts.requiredFields = fields
	return b
}

// WithRequiredFieldsOnUpdate enforces the required field list on full
// updates as well as on create.
func (b *RouterOptionsBuilder) WithRequiredFieldsOnUpdate(required bool) *RouterOptionsBuilder {
	b.opts.requiredOnUpdate = required
	return b
}

func (b *RouterOptionsBuilder) WithFixedListFilter(filter *db.FilterBuilder) *RouterOptionsBuilder {
	b.opts.fixedListFilter = filter
	return b
}

func (b *RouterOptionsBuilder) WithDefaultSort(sort *db.SortBuilder) *RouterOptionsBuilder {
	b.opts.defaultSort = sort
	return b
}

func (b *RouterOptionsBuilder) WithCreatedAtStamp(stamp bool) *RouterOptionsBuilder {
	b.opts.stampCreatedAt = stamp
	return b
}

func (b *RouterOptionsBuilder) WithUpdatedAtStamp(stamp bool) *RouterOptionsBuilder {
	b.opts.stampUpdatedAt = stamp
	return b
}

// WithTimeDefault sets the field to the server clock on create when the
// client does not supply it.
func (b *RouterOptionsBuilder) WithTimeDefault(field string) *RouterOptionsBuilder {
	b.opts.timeDefaults = append(b.opts.timeDefaults, field)
	return b
}

// WithCreateSet forces a field value on every create, overriding whatever
// the client sent.
func (b *RouterOptionsBuilder) WithCreateSet(field string, value interface{}) *RouterOptionsBuilder {
	if b.opts.createSet == nil {
		b.opts.createSet = map[string]interface{}{}
	}
	b.opts.createSet[field] = value
	return b
}

func (b *RouterOptionsBuilder) WithAliasPath(path string) *RouterOptionsBuilder {
	b.opts.aliasPaths = append(b.opts.aliasPaths, path)
	return b
}

// AddRoutes registers the resource's routes on the engine: collection
// middleware on every route, the token guard on mutating verbs, generic
// handlers for the rest.
func AddRoutes(g *gin.Engine, opts *routerOptions) {
	if opts.dbCollection == "" {
		opts.dbCollection = strings.TrimPrefix(opts.path, "/")
	}
	if opts.resourceName == "" {
		opts.resourceName = pluralizer.Singular(pathTail(opts.path))
	}
	if err := db.ValidateCollection(opts.dbCollection); err != nil {
		zap.L().Warn("skipping collection indexing", zap.String("collection", opts.dbCollection), zap.Error(err))
	}
	for _, path := range append([]string{opts.path}, opts.aliasPaths...) {
		group := g.Group(path, DBContextMiddleware(opts.dbCollection))
		if opts.serveGet {
			group.GET("", HandleGetAll(opts))
		}
		if opts.serveGetByID {
			group.GET("/:"+consts.IDParam, HandleGetByID(opts))
		}
		if opts.servePost {
			if opts.publicPost {
				group.POST("", HandlePost(opts))
			} else {
				group.POST("", TokenGuard(), HandlePost(opts))
			}
		}
		if opts.servePut {
			group.PUT("/:"+consts.IDParam, TokenGuard(), HandleUpdate(opts))
		}
		if opts.servePatch {
			group.PATCH("/:"+consts.IDParam, TokenGuard(), HandleUpdate(opts))
		}
		if opts.serveDelete {
			group.DELETE("/:"+consts.IDParam, TokenGuard(), HandleDelete(opts))
		}
	}
}

// DBContextMiddleware stores the collection name and a request logger in the
// context for the db sugar functions and the log helpers.
func DBContextMiddleware(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.Collection, collection)
		c.Set(consts.ReqLogger, zap.L().With(
			zap.String("collection", collection),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path)))
		c.Next()
	}
}

func pathTail(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return parts[len(parts)-1]
}
