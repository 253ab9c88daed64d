package db

import (
	"directory-service/types"
	"directory-service/utils/consts"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUpdateSetCommand builds a $set update from the named fields. The
// identifier field is never part of the command even if present.
func GetUpdateSetCommand(fields types.Entry) bson.D {
	set := bson.D{}
	for key, value := range fields {
		if key == consts.IdField {
			continue
		}
		set = append(set, bson.E{Key: key, Value: value})
	}
	return bson.D{{Key: "$set", Value: set}}
}

func GetUpdateIncCommand(field string, delta int64) bson.D {
	return bson.D{{Key: "$inc", Value: bson.D{{Key: field, Value: delta}}}}
}

func GetUpdatePushCommand(arrayPath string, items ...interface{}) bson.D {
	if len(items) == 1 {
		return bson.D{{Key: "$push", Value: bson.D{{Key: arrayPath, Value: items[0]}}}}
	}
	return bson.D{{Key: "$push", Value: bson.D{{Key: arrayPath, Value: bson.D{{Key: "$each", Value: items}}}}}}
}
