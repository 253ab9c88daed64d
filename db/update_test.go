package db

import (
	"testing"

	"directory-service/types"
	"directory-service/utils/consts"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGetUpdateSetCommandStripsID(t *testing.T) {
	cmd := GetUpdateSetCommand(types.Entry{
		consts.IdField: "client-supplied",
		"name":         "bogura sadar",
	})

	assert.Len(t, cmd, 1)
	assert.Equal(t, "$set", cmd[0].Key)
	set, ok := cmd[0].Value.(bson.D)
	assert.True(t, ok)
	assert.Len(t, set, 1)
	assert.Equal(t, bson.E{Key: "name", Value: "bogura sadar"}, set[0])
}

func TestGetUpdateIncCommand(t *testing.T) {
	expected := bson.D{{Key: "$inc", Value: bson.D{{Key: consts.LikesField, Value: int64(-1)}}}}
	if diff := cmp.Diff(expected, GetUpdateIncCommand(consts.LikesField, -1)); diff != "" {
		t.Errorf("unexpected inc command (-want +got):\n%s", diff)
	}
}

func TestGetUpdatePushCommand(t *testing.T) {
	single := GetUpdatePushCommand(consts.CommentsField, "first")
	expectedSingle := bson.D{{Key: "$push", Value: bson.D{{Key: consts.CommentsField, Value: "first"}}}}
	if diff := cmp.Diff(expectedSingle, single); diff != "" {
		t.Errorf("unexpected push command (-want +got):\n%s", diff)
	}

	multi := GetUpdatePushCommand(consts.CommentsField, "first", "second")
	expectedMulti := bson.D{{Key: "$push", Value: bson.D{{Key: consts.CommentsField,
		Value: bson.D{{Key: "$each", Value: []interface{}{"first", "second"}}}}}}}
	if diff := cmp.Diff(expectedMulti, multi); diff != "" {
		t.Errorf("unexpected push command (-want +got):\n%s", diff)
	}
}
