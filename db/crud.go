package db

import (
	"context"
	"fmt"

	"directory-service/db/mongo"
	"directory-service/types"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// triggers collection actions - called by the router builder on startup
func ValidateCollection(collection string) error {
	return mongo.IndexCollection(collection)
}

//////////////////////////////////Sugar functions for mongo using values in gin context /////////////////////////////////////////
/////////////////////////////////all methods are expecting the collection name in the context///////////////////////////////////

// Find returns the documents matching the find options. The result is never
// nil so an empty collection serializes as an empty array.
func Find(c context.Context, findOps *FindOptions) ([]types.Entry, error) {
	defer log.LogNTraceEnterExit("Find", c)()
	collection, err := readCollection(c)
	if err != nil {
		return nil, err
	}
	if findOps == nil {
		findOps = NewFindOptions()
	}
	dbFindOptions := options.Find()
	if findOps.Projection().Len() > 0 {
		dbFindOptions.SetProjection(findOps.projection.get())
	}
	if findOps.Sort().Len() > 0 {
		dbFindOptions.SetSort(findOps.sort.get())
	}
	if findOps.skip > 0 {
		dbFindOptions.SetSkip(findOps.skip)
	}
	if findOps.limit > 0 {
		dbFindOptions.SetLimit(findOps.limit)
	}

	result := []types.Entry{}
	cur, err := mongo.GetReadCollection(collection).
		Find(c, findOps.filter.get(), dbFindOptions)
	if err != nil {
		return nil, err
	}
	if err := cur.All(c, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FindPaginated runs the count and the page query concurrently and returns
// the total alongside the requested page.
func FindPaginated(c context.Context, findOps *FindOptions, page, limit int64) (int64, []types.Entry, error) {
	defer log.LogNTraceEnterExit("FindPaginated", c)()
	if findOps == nil {
		findOps = NewFindOptions()
	}
	var total int64
	var entries []types.Entry
	errGroup, ctx := errgroup.WithContext(c)
	errGroup.Go(func() error {
		count, err := CountDocs(ctx, findOps.Filter())
		total = count
		return err
	})
	errGroup.Go(func() error {
		pageOps := NewFindOptions().
			WithFilter(findOps.Filter()).
			WithSort(findOps.Sort()).
			WithProjection(findOps.Projection()).
			SetPagination(page, limit)
		result, err := Find(ctx, pageOps)
		entries = result
		return err
	})
	if err := errGroup.Wait(); err != nil {
		return 0, nil, err
	}
	return total, entries, nil
}

// GetByID returns the document with the given key, or nil when no document
// matches.
func GetByID(c context.Context, id primitive.ObjectID) (types.Entry, error) {
	defer log.LogNTraceEnterExit("GetByID", c)()
	collection, err := readCollection(c)
	if err != nil {
		return nil, err
	}
	var result types.Entry
	if err := mongo.GetReadCollection(collection).
		FindOne(c, NewFilterBuilder().WithID(id).get()).
		Decode(&result); err != nil {
		if err == mongoDB.ErrNoDocuments {
			return nil, nil
		}
		log.LogNTraceError("failed to get document by id", err, c)
		return nil, err
	}
	return result, nil
}

// InsertOne stores a new document and returns the key the store assigned.
func InsertOne(c context.Context, doc types.Entry) (primitive.ObjectID, error) {
	defer log.LogNTraceEnterExit("InsertOne", c)()
	collection, err := readCollection(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := mongo.GetWriteCollection(collection).InsertOne(c, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

// UpdateSetByID overwrites the given fields of a document with set
// semantics. Fields not named in the update are left untouched.
func UpdateSetByID(c context.Context, id primitive.ObjectID, fields types.Entry) (*mongoDB.UpdateResult, error) {
	defer log.LogNTraceEnterExit("UpdateSetByID", c)()
	collection, err := readCollection(c)
	if err != nil {
		return nil, err
	}
	filter := NewFilterBuilder().WithID(id).get()
	return mongo.GetWriteCollection(collection).
		UpdateOne(c, filter, GetUpdateSetCommand(fields))
}

// DeleteByID removes a document and returns the number of documents deleted
// (zero when the key matches nothing).
func DeleteByID(c context.Context, id primitive.ObjectID) (int64, error) {
	defer log.LogNTraceEnterExit("DeleteByID", c)()
	collection, err := readCollection(c)
	if err != nil {
		return 0, err
	}
	res, err := mongo.GetWriteCollection(collection).
		DeleteOne(c, NewFilterBuilder().WithID(id).get())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountDocs counts documents that match the filter
func CountDocs(c context.Context, filterBuilder *FilterBuilder) (int64, error) {
	defer log.LogNTraceEnterExit("CountDocs", c)()
	collection, err := readCollection(c)
	if err != nil {
		return 0, err
	}
	if filterBuilder == nil {
		filterBuilder = NewFilterBuilder()
	}
	return mongo.GetReadCollection(collection).CountDocuments(c, filterBuilder.get())
}

// IncFieldByID applies an atomic counter update and returns the updated
// document, or nil when the filter matches nothing. The increment is a
// single store-level operation so concurrent writers never lose an update.
func IncFieldByID(c context.Context, id primitive.ObjectID, field string, delta int64, extraFilter *FilterBuilder) (types.Entry, error) {
	defer log.LogNTraceEnterExit("IncFieldByID", c)()
	collection, err := readCollection(c)
	if err != nil {
		return nil, err
	}
	filter := NewFilterBuilder().WithID(id)
	if extraFilter != nil {
		filter.WithFilter(extraFilter)
	}
	var result types.Entry
	if err := mongo.GetWriteCollection(collection).
		FindOneAndUpdate(c, filter.get(), GetUpdateIncCommand(field, delta),
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&result); err != nil {
		if err == mongoDB.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

// PushToArrayByID appends items to an embedded array in a single atomic
// store-level update.
func PushToArrayByID(c context.Context, id primitive.ObjectID, arrayPath string, items ...interface{}) (modified int64, err error) {
	defer log.LogNTraceEnterExit("PushToArrayByID", c)()
	collection, err := readCollection(c)
	if err != nil {
		return 0, err
	}
	res, err := mongo.GetWriteCollection(collection).
		UpdateOne(c, NewFilterBuilder().WithID(id).get(), GetUpdatePushCommand(arrayPath, items...))
	if res != nil {
		modified = res.ModifiedCount
	}
	return modified, err
}

// helpers

func readCollection(c context.Context) (collection string, err error) {
	if val := c.Value(consts.Collection); val != nil {
		collection = val.(string)
	}
	if collection == "" {
		err = fmt.Errorf("collection is not in context")
	}
	return collection, err
}
