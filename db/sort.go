package db

import (
	"go.mongodb.org/mongo-driver/bson"
)

// SortBuilder builds the sort order of query results
type SortBuilder struct {
	sort bson.D
}

func NewSortBuilder() *SortBuilder {
	return &SortBuilder{
		sort: bson.D{},
	}
}

func (s *SortBuilder) get() bson.D {
	return s.sort
}

func (s *SortBuilder) Len() int {
	return len(s.sort)
}

func (s *SortBuilder) AddAscending(key ...string) *SortBuilder {
	for _, k := range key {
		s.sort = append(s.sort, bson.E{Key: k, Value: 1})
	}
	return s
}

func (s *SortBuilder) AddDescending(key ...string) *SortBuilder {
	for _, k := range key {
		s.sort = append(s.sort, bson.E{Key: k, Value: -1})
	}
	return s
}
