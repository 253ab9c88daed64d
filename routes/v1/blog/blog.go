package blog

import (
	"net/http"

	"directory-service/db"
	"directory-service/handlers"
	"directory-service/types"
	"directory-service/utils"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const resourceName = "blog"

// handleLike applies the like/unlike toggle as a single atomic counter
// update and returns the resulting value. Unlike is filtered on likes > 0
// so the counter never goes negative, even under concurrent toggles.
func handleLike(c *gin.Context) {
	defer log.LogNTraceEnterExit("handleLike", c)()
	id, ok := handlers.MustPathID(c, resourceName)
	if !ok {
		return
	}
	var req types.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.ResponseFailedToBindJson(c, err)
		return
	}

	switch req.Action {
	case types.LikeAction:
		doc, err := db.IncFieldByID(c, id, consts.LikesField, 1, nil)
		if err != nil {
			handlers.ResponseInternalServerError(c, "failed to update likes", err)
			return
		}
		if doc == nil {
			handlers.ResponseDocumentNotFound(c, resourceName)
			return
		}
		likesResponse(c, utils.ToInt64(doc[consts.LikesField]))
	case types.UnlikeAction:
		doc, err := db.IncFieldByID(c, id, consts.LikesField, -1,
			db.NewFilterBuilder().WithGreaterThan(consts.LikesField, 0))
		if err != nil {
			handlers.ResponseInternalServerError(c, "failed to update likes", err)
			return
		}
		if doc == nil {
			// the counter was already at zero, or the blog is gone
			existing, err := db.GetByID(c, id)
			if err != nil {
				handlers.ResponseInternalServerError(c, "failed to read blog", err)
				return
			}
			if existing == nil {
				handlers.ResponseDocumentNotFound(c, resourceName)
				return
			}
			likesResponse(c, utils.ToInt64(existing[consts.LikesField]))
			return
		}
		likesResponse(c, utils.ToInt64(doc[consts.LikesField]))
	default:
		handlers.ResponseBadRequest(c, "invalid action")
	}
}

func likesResponse(c *gin.Context, likes int64) {
	c.JSON(http.StatusOK, gin.H{"success": true, "likes": likes})
}

// handleListComments returns the blog's embedded comments in stored order,
// oldest first. A blog without comments yields an empty array.
func handleListComments(c *gin.Context) {
	defer log.LogNTraceEnterExit("handleListComments", c)()
	id, ok := handlers.MustPathID(c, resourceName)
	if !ok {
		return
	}
	findOpts := db.NewFindOptions().
		WithFilter(db.NewFilterBuilder().WithID(id)).
		WithProjection(db.NewProjectionBuilder().Include(consts.CommentsField))
	docs, err := db.Find(c, findOpts)
	if err != nil {
		handlers.ResponseInternalServerError(c, "failed to read comments", err)
		return
	}
	if len(docs) == 0 {
		handlers.ResponseDocumentNotFound(c, resourceName)
		return
	}
	c.JSON(http.StatusOK, extractComments(docs[0]))
}

// extractComments pulls the embedded comments array out of a decoded blog
// document. The bson decoder materializes embedded arrays as primitive.A.
func extractComments(doc types.Entry) []interface{} {
	switch comments := doc[consts.CommentsField].(type) {
	case primitive.A:
		return []interface{}(comments)
	case []interface{}:
		return comments
	}
	return []interface{}{}
}

// handleAddComment appends a comment to the blog's embedded sequence in a
// single atomic push. The service assigns the comment id and timestamp.
func handleAddComment(c *gin.Context) {
	defer log.LogNTraceEnterExit("handleAddComment", c)()
	id, ok := handlers.MustPathID(c, resourceName)
	if !ok {
		return
	}
	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.ResponseFailedToBindJson(c, err)
		return
	}
	if req.Author == "" || req.Text == "" {
		handlers.ResponseBadRequest(c, "author and text are required")
		return
	}
	comment := types.NewComment(req.Author, req.Text)
	modified, err := db.PushToArrayByID(c, id, consts.CommentsField, comment)
	if err != nil {
		handlers.ResponseInternalServerError(c, "failed to add comment", err)
		return
	}
	if modified == 0 {
		handlers.ResponseDocumentNotFound(c, resourceName)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
