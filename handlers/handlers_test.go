package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"directory-service/types"
	"directory-service/utils/consts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func updateTestContext(t *testing.T, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: consts.IDParam, Value: primitive.NewObjectID().Hex()}}
	c.Request = httptest.NewRequest(method, "/policestations/x", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestUpdateRequiredFieldsOnlyOnFullUpdate(t *testing.T) {
	opts := NewRouterOptionsBuilder().
		WithPath(consts.PoliceStationsPath).
		WithRequiredFields("name", "address", "officer").
		WithRequiredFieldsOnUpdate(true).
		Get()
	handler := HandleUpdate(opts)

	// a partial PUT is rejected before the store
	c, w := updateTestContext(t, http.MethodPut, `{"name":"sadar thana"}`)
	handler(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "officer")

	// the same partial body passes validation on PATCH and reaches the
	// store layer (which fails here, no collection is bound)
	c, w = updateTestContext(t, http.MethodPatch, `{"name":"sadar thana"}`)
	handler(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNormalizeTimeFields(t *testing.T) {
	doc := types.Entry{
		consts.PublishDateField: "2024-03-01T10:30:00Z",
		"title":                 "road closure",
	}
	normalizeTimeFields(doc, []string{consts.PublishDateField})
	ts, ok := doc[consts.PublishDateField].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, "road closure", doc["title"])

	doc = types.Entry{consts.PublishDateField: "2024-03-01"}
	normalizeTimeFields(doc, []string{consts.PublishDateField})
	_, ok = doc[consts.PublishDateField].(time.Time)
	assert.True(t, ok)

	// unparsable values are stored as submitted
	doc = types.Entry{consts.PublishDateField: "next friday"}
	normalizeTimeFields(doc, []string{consts.PublishDateField})
	assert.Equal(t, "next friday", doc[consts.PublishDateField])

	// absent fields stay absent, the create default fills them later
	doc = types.Entry{"title": "x"}
	normalizeTimeFields(doc, []string{consts.PublishDateField})
	assert.NotContains(t, doc, consts.PublishDateField)
}
