package db

import (
	"directory-service/utils/consts"

	"go.mongodb.org/mongo-driver/bson"
)

// ProjectionBuilder builds projection of query results
type ProjectionBuilder struct {
	projection bson.D
}

func NewProjectionBuilder() *ProjectionBuilder {
	return &ProjectionBuilder{
		projection: bson.D{},
	}
}

func (p *ProjectionBuilder) get() bson.D {
	return p.projection
}

func (p *ProjectionBuilder) Len() int {
	return len(p.projection)
}

func (p *ProjectionBuilder) Include(key ...string) *ProjectionBuilder {
	for _, k := range key {
		p.projection = append(p.projection, bson.E{Key: k, Value: 1})
	}
	return p
}

func (p *ProjectionBuilder) Exclude(key ...string) *ProjectionBuilder {
	for _, k := range key {
		p.projection = append(p.projection, bson.E{Key: k, Value: 0})
	}
	return p
}

func (p *ProjectionBuilder) ExcludeID() *ProjectionBuilder {
	return p.Exclude(consts.IdField)
}
