package blog

import (
	"testing"

	"directory-service/types"
	"directory-service/utils/consts"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExtractCommentsFromStoredDocument(t *testing.T) {
	stored := types.Entry{
		consts.IdField: primitive.NewObjectID(),
		"title":        "bogura in pictures",
		consts.CommentsField: []types.Comment{
			types.NewComment("reader", "first"),
			types.NewComment("another reader", "second"),
		},
	}
	raw, err := bson.Marshal(stored)
	assert.NoError(t, err)

	// decode the way the store hands documents back to the handler
	var decoded types.Entry
	assert.NoError(t, bson.Unmarshal(raw, &decoded))

	comments := extractComments(decoded)
	assert.Len(t, comments, 2)
	first, ok := comments[0].(types.Entry)
	assert.True(t, ok)
	assert.Equal(t, "first", first["text"])
}

func TestExtractCommentsWithoutComments(t *testing.T) {
	comments := extractComments(types.Entry{"title": "no comments yet"})
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
