package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"directory-service/types"
	"directory-service/utils/log"

	"github.com/gin-gonic/gin"
)

/////////////////////////////////////////response helpers/////////////////////////////////////////
// every error response is a JSON object with a human readable message field,
// internal details stay in the log

func ResponseInternalServerError(c *gin.Context, msg string, err error) {
	if err != nil {
		log.LogNTraceError(msg, err, c)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msg})
}

func ResponseBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

func ResponseFailedToBindJson(c *gin.Context, err error) {
	log.LogNTraceError("failed to bind json", err, c)
	ResponseBadRequest(c, "invalid request body")
}

func ResponseInvalidID(c *gin.Context, resource string) {
	ResponseBadRequest(c, fmt.Sprintf("invalid %s id", resource))
}

func ResponseMissingFields(c *gin.Context, fields []string) {
	ResponseBadRequest(c, "missing required fields: "+strings.Join(fields, ", "))
}

func ResponseDocumentNotFound(c *gin.Context, resource string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
}

func ResponseUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

func ResponseForbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
}

func docResponse(c *gin.Context, doc types.Entry) {
	c.JSON(http.StatusOK, doc)
}

func DocsResponse(c *gin.Context, docs []types.Entry) {
	if docs == nil {
		docs = []types.Entry{}
	}
	c.JSON(http.StatusOK, docs)
}

func CreatedResponse(c *gin.Context, insertedID string) {
	c.JSON(http.StatusCreated, gin.H{"insertedId": insertedID})
}

func UpdatedResponse(c *gin.Context, matched, modified int64) {
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

func DeletedResponse(c *gin.Context, deleted int64) {
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
