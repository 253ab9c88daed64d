package types

import (
	"directory-service/utils/consts"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a schema-less resource document. Payload fields are stored as
// submitted; the store assigns the identifier on insert.
type Entry map[string]interface{}

// StripID removes the identifier field so clients can never set or
// overwrite it on create and update.
func (e Entry) StripID() {
	delete(e, consts.IdField)
}

// Has reports whether the field is present with a usable value. Missing,
// nil and empty-string values all count as absent, matching the required
// field checks of the portal frontend.
func (e Entry) Has(field string) bool {
	v, ok := e[field]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

// MissingFields returns the subset of fields the entry does not carry.
func (e Entry) MissingFields(fields []string) []string {
	var missing []string
	for _, f := range fields {
		if !e.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Comment is an embedded blog comment sub-document. Comments are append
// only, the service assigns the identifier and timestamp.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Author    string             `json:"author" bson:"author"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

func NewComment(author, text string) Comment {
	return Comment{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// PagedResult is the disaster reports list envelope. The reports frontend
// depends on this exact shape.
type PagedResult struct {
	Total      int64   `json:"total"`
	Page       int64   `json:"page"`
	Limit      int64   `json:"limit"`
	TotalPages int64   `json:"totalPages"`
	Reports    []Entry `json:"reports"`
}

func NewPagedResult(total, page, limit int64, reports []Entry) *PagedResult {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &PagedResult{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Reports:    reports,
	}
}

// LikeRequest is the body of the blog like/unlike toggle.
type LikeRequest struct {
	Action string `json:"action"`
}

const (
	LikeAction   = "like"
	UnlikeAction = "unlike"
)

// CommentRequest is the body of the add comment operation.
type CommentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// StatusRequest is the body of the disaster report status transition.
type StatusRequest struct {
	Status string `json:"status"`
}
