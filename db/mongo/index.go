package mongo

import (
	"context"
	"fmt"

	"directory-service/utils/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// collectionIndexes is a map of collection name to index models for collections that need custom indexes
// if a collection is not in this map, it will use the default index
var collectionIndexes = map[string][]mongo.IndexModel{
	consts.BlogsCollection: {
		{
			Keys: bson.D{
				{Key: consts.CreatedAtField, Value: -1},
			},
		},
	},
	consts.DisasterReportsCollection: {
		{
			Keys: bson.D{
				{Key: consts.CreatedAtField, Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: consts.StatusField, Value: 1},
			},
		},
	},
	consts.NoticesCollection: {
		{
			Keys: bson.D{
				{Key: consts.PublishDateField, Value: -1},
			},
		},
	},
	consts.ContactsCollection: {
		{
			Keys: bson.D{
				{Key: consts.CreatedAtField, Value: -1},
			},
		},
	},
	consts.PartnersCollection: {
		{
			Keys: bson.D{
				{Key: consts.OrderField, Value: 1},
				{Key: consts.CreatedAtField, Value: -1},
			},
		},
	},
	consts.DestinationsCollection: {
		{
			Keys: bson.D{
				{Key: consts.DistrictField, Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: consts.NameField, Value: 1},
			},
		},
	},
	consts.EventsCollection: {
		{
			Keys: bson.D{
				{Key: consts.EventDateField, Value: 1},
			},
		},
	},
}

// defaultIndex is the default index for all collections unless overridden in collectionIndexes
var defaultIndex = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: consts.NameField, Value: 1},
		},
	},
}

func IndexCollection(collectionName string) error {
	if !IsConnected() {
		return fmt.Errorf("cannot index collection %s: mongo is not connected", collectionName)
	}
	indexModels, ok := collectionIndexes[collectionName]
	if !ok {
		indexModels = defaultIndex
	}
	res, err := GetWriteCollection(collectionName).Indexes().CreateMany(context.Background(), indexModels)
	if err != nil {
		zap.L().Error("failed to create indexes", zap.Error(err), zap.String("collection", collectionName))
		return err
	}
	zap.L().Info("created indexes", zap.String("collection", collectionName), zap.Strings("indexes", res))
	return nil
}
