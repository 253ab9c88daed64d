package handlers

import (
	"net/http"
	"time"

	"directory-service/db"
	"directory-service/types"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/////////////////////////////////////////gin handlers/////////////////////////////////////////

// ////////////////////////////////////////GET///////////////////////////////////////////////

// HandleGetAll - list the resource's collection with its fixed filter and
// default sort applied
func HandleGetAll(opts *routerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer log.LogNTraceEnterExit("HandleGetAll", c)()
		findOpts := db.NewFindOptions()
		if opts.fixedListFilter != nil {
			findOpts.WithFilter(opts.fixedListFilter)
		}
		if opts.defaultSort != nil {
			findOpts.WithSort(opts.defaultSort)
		}
		docs, err := db.Find(c, findOpts)
		if err != nil {
			ResponseInternalServerError(c, "failed to read documents", err)
			return
		}
		DocsResponse(c, docs)
	}
}

// HandleGetByID - get a single document by the id in path
func HandleGetByID(opts *routerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer log.LogNTraceEnterExit("HandleGetByID", c)()
		id, ok := MustPathID(c, opts.resourceName)
		if !ok {
			return
		}
		doc, err := db.GetByID(c, id)
		if err != nil {
			ResponseInternalServerError(c, "failed to read document", err)
			return
		}
		if doc == nil {
			ResponseDocumentNotFound(c, opts.resourceName)
			return
		}
		docResponse(c, doc)
	}
}

// ////////////////////////////////////////POST///////////////////////////////////////////////

// HandlePost - create a document from the request body; the server stamps
// timestamps and forced fields, the store assigns the identifier
func HandlePost(opts *routerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer log.LogNTraceEnterExit("HandlePost", c)()
		doc := types.Entry{}
		if err := c.ShouldBindJSON(&doc); err != nil {
			ResponseFailedToBindJson(c, err)
			return
		}
		if missing := doc.MissingFields(opts.requiredFields); len(missing) > 0 {
			ResponseMissingFields(c, missing)
			return
		}
		doc.StripID()
		for field, value := range opts.createSet {
			doc[field] = value
		}
		normalizeTimeFields(doc, opts.timeDefaults)
		now := time.Now().UTC()
		for _, field := range opts.timeDefaults {
			if !doc.Has(field) {
				doc[field] = now
			}
		}
		if opts.stampCreatedAt {
			doc[consts.CreatedAtField] = now
		}
		if opts.stampUpdatedAt {
			doc[consts.UpdatedAtField] = now
		}
		insertedID, err := db.InsertOne(c, doc)
		if err != nil {
			ResponseInternalServerError(c, "failed to create document", err)
			return
		}
		CreatedResponse(c, insertedID.Hex())
	}
}

// ////////////////////////////////////////PUT - PATCH///////////////////////////////////////////////

// HandleUpdate - overwrite the named fields of a document with set
// semantics; fields not in the body are left untouched, the identifier can
// never be overwritten
func HandleUpdate(opts *routerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer log.LogNTraceEnterExit("HandleUpdate", c)()
		id, ok := MustPathID(c, opts.resourceName)
		if !ok {
			return
		}
		doc := types.Entry{}
		if err := c.ShouldBindJSON(&doc); err != nil {
			ResponseFailedToBindJson(c, err)
			return
		}
		if opts.requiredOnUpdate && c.Request.Method == http.MethodPut {
			if missing := doc.MissingFields(opts.requiredFields); len(missing) > 0 {
				ResponseMissingFields(c, missing)
				return
			}
		}
		doc.StripID()
		normalizeTimeFields(doc, opts.timeDefaults)
		if opts.stampUpdatedAt {
			doc[consts.UpdatedAtField] = time.Now().UTC()
		}
		if len(doc) == 0 {
			ResponseBadRequest(c, "no fields to update")
			return
		}
		res, err := db.UpdateSetByID(c, id, doc)
		if err != nil {
			ResponseInternalServerError(c, "failed to update document", err)
			return
		}
		if res.MatchedCount == 0 {
			ResponseDocumentNotFound(c, opts.resourceName)
			return
		}
		UpdatedResponse(c, res.MatchedCount, res.ModifiedCount)
	}
}

// ////////////////////////////////////////DELETE///////////////////////////////////////////////

// HandleDelete - delete a document by the id in path; deleting an absent
// document is not found, never an error
func HandleDelete(opts *routerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer log.LogNTraceEnterExit("HandleDelete", c)()
		id, ok := MustPathID(c, opts.resourceName)
		if !ok {
			return
		}
		deleted, err := db.DeleteByID(c, id)
		if err != nil {
			ResponseInternalServerError(c, "failed to delete document", err)
			return
		}
		if deleted == 0 {
			ResponseDocumentNotFound(c, opts.resourceName)
			return
		}
		DeletedResponse(c, deleted)
	}
}

// normalizeTimeFields coerces client-supplied string values of date fields
// into native timestamps so the field stays sortable across documents.
// Values that parse as neither RFC3339 nor a plain date are stored as
// submitted.
func normalizeTimeFields(doc types.Entry, fields []string) {
	for _, field := range fields {
		s, ok := doc[field].(string)
		if !ok || s == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			doc[field] = ts
			continue
		}
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			doc[field] = ts
		}
	}
}

// MustPathID parses the id path param through the identifier codec and
// aborts with a client error on malformed input, so bad ids never reach the
// store.
func MustPathID(c *gin.Context, resource string) (primitive.ObjectID, bool) {
	id, err := db.ParseID(c.Param(consts.IDParam))
	if err != nil {
		ResponseInvalidID(c, resource)
		return primitive.NilObjectID, false
	}
	return id, true
}
