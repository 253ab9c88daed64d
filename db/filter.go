package db

import (
	"directory-service/utils/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterBuilder builds filters for queries
type FilterBuilder struct {
	filter bson.D
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		filter: bson.D{},
	}
}

func (f *FilterBuilder) WithFilter(filterBuilder *FilterBuilder) *FilterBuilder {
	filter := filterBuilder.get()
	f.filter = append(f.filter, filter...)
	return f
}

func (f *FilterBuilder) Len() int {
	return len(f.filter)
}

func (f *FilterBuilder) get() bson.D {
	return f.filter
}

func (f *FilterBuilder) WithID(id primitive.ObjectID) *FilterBuilder {
	return f.WithValue(consts.IdField, id)
}

func (f *FilterBuilder) WithValue(key string, value interface{}) *FilterBuilder {
	f.filter = append(f.filter, bson.E{Key: key, Value: value})
	return f
}

func (f *FilterBuilder) WithGreaterThan(key string, value interface{}) *FilterBuilder {
	f.filter = append(f.filter, bson.E{Key: key, Value: bson.D{{Key: "$gt", Value: value}}})
	return f
}

func (f *FilterBuilder) WithIn(key string, value interface{}) *FilterBuilder {
	f.filter = append(f.filter, bson.E{Key: key, Value: bson.D{{Key: "$in", Value: value}}})
	return f
}
