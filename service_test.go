package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"directory-service/auth"
	"directory-service/handlers"
	"directory-service/utils"
	"directory-service/utils/consts"

	rndStr "github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

var testTokenService = auth.NewTokenService(testSecret, consts.TokenExpiry)

func newTestEngine() http.Handler {
	handlers.UseTokenService(testTokenService)
	return buildEngine(utils.Configuration{
		Port:           "0",
		AllowedOrigins: []string{"http://localhost:5173"},
	}, zap.NewNop())
}

func testRequest(t *testing.T, engine http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(consts.AuthorizationHeader, consts.BearerSchema+" "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func mustToken(t *testing.T) string {
	t.Helper()
	token, err := testTokenService.IssueToken(map[string]interface{}{"email": "admin@test.com"})
	assert.NoError(t, err)
	return token
}

func TestRouteTable(t *testing.T) {
	handlers.UseTokenService(testTokenService)
	engine := buildEngine(utils.Configuration{
		Port:           "0",
		AllowedOrigins: []string{"http://localhost:5173"},
	}, zap.NewNop())

	routes := map[string]bool{}
	for _, route := range engine.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /login",
		"GET /donors", "GET /donors/:id", "POST /donors", "PUT /donors/:id", "DELETE /donors/:id",
		"GET /doctors", "GET /api/doctors", "GET /api/doctors/:id",
		"PATCH /lawyers/:id",
		"PATCH /news/:id",
		"PATCH /esheba/:id",
		"GET /sliders",
		"POST /contacts",
		"GET /blogs", "POST /blogs/:id/like", "GET /blogs/:id/comments", "POST /blogs/:id/comments",
		"GET /disaster-reports", "GET /disaster-reports/:id", "PATCH /disaster-reports/:id/status",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}

	absent := []string{
		"GET /sliders/:id",
		"PUT /news/:id",
		"PUT /esheba/:id",
		"PUT /contacts/:id",
		"PUT /disaster-reports/:id",
	}
	for _, route := range absent {
		assert.False(t, routes[route], "unexpected route %s", route)
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestEngine()
	w := testRequest(t, engine, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	engine := newTestEngine()
	email := rndStr.New() + "@test.com"

	w := testRequest(t, engine, http.MethodPost, consts.LoginPath, map[string]interface{}{"email": email}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	claims, err := testTokenService.VerifyToken(body["token"])
	assert.NoError(t, err)
	assert.Equal(t, email, claims["email"])
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	engine := newTestEngine()
	id := primitive.NewObjectID().Hex()

	// no credential at all
	w := testRequest(t, engine, http.MethodDelete, "/donors/"+id, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing authorization token", responseMessage(t, w))

	// present but not a token
	w = testRequest(t, engine, http.MethodDelete, "/donors/"+id, nil, "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// signed with the right key but expired
	expired, err := auth.NewTokenService(testSecret, -time.Minute).
		IssueToken(map[string]interface{}{"email": "admin@test.com"})
	assert.NoError(t, err)
	w = testRequest(t, engine, http.MethodDelete, "/donors/"+id, nil, expired)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, auth.ErrTokenExpired.Error(), responseMessage(t, w))
}

func TestMalformedIDIsClientError(t *testing.T) {
	engine := newTestEngine()
	token := mustToken(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/hospitals/not-an-id"},
		{http.MethodDelete, "/donors/123"},
		{http.MethodPut, "/ambulances/zzz"},
		{http.MethodPost, "/blogs/not-an-id/like"},
		{http.MethodGet, "/blogs/not-an-id/comments"},
		{http.MethodPatch, "/disaster-reports/not-an-id/status"},
	} {
		w := testRequest(t, engine, tc.method, tc.path, map[string]interface{}{"name": "x"}, token)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRequiredFieldsOnCreate(t *testing.T) {
	engine := newTestEngine()
	token := mustToken(t)

	w := testRequest(t, engine, http.MethodPost, consts.PoliceStationsPath,
		map[string]interface{}{"name": "sadar thana", "address": "bogura"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, responseMessage(t, w), "officer")

	w = testRequest(t, engine, http.MethodPost, consts.DestinationsPath,
		map[string]interface{}{"name": "mohasthangarh", "location": "shibganj", "category": "heritage"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, responseMessage(t, w), consts.DistrictField)
}

func TestRequiredFieldsOnFullUpdate(t *testing.T) {
	engine := newTestEngine()
	token := mustToken(t)
	path := fmt.Sprintf("%s/%s", consts.PoliceStationsPath, primitive.NewObjectID().Hex())

	w := testRequest(t, engine, http.MethodPut, path,
		map[string]interface{}{"name": "sadar thana"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, responseMessage(t, w), "missing required fields")
}

func TestBlogLikeRejectsUnknownAction(t *testing.T) {
	engine := newTestEngine()
	path := fmt.Sprintf("%s/%s/like", consts.BlogsPath, primitive.NewObjectID().Hex())

	w := testRequest(t, engine, http.MethodPost, path, map[string]interface{}{"action": "boost"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid action", responseMessage(t, w))
}

func TestBlogCommentValidation(t *testing.T) {
	engine := newTestEngine()
	path := fmt.Sprintf("%s/%s/comments", consts.BlogsPath, primitive.NewObjectID().Hex())

	for _, body := range []map[string]interface{}{
		{"author": "reader"},
		{"text": "nice post"},
		{"author": "", "text": "nice post"},
	} {
		w := testRequest(t, engine, http.MethodPost, path, body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "author and text are required", responseMessage(t, w))
	}
}

func TestReportStatusValidation(t *testing.T) {
	engine := newTestEngine()
	path := fmt.Sprintf("%s/%s/status", consts.DisasterReportsPath, primitive.NewObjectID().Hex())

	// status transition is guarded
	w := testRequest(t, engine, http.MethodPatch, path, map[string]interface{}{"status": "resolved"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// empty status is a client error
	w = testRequest(t, engine, http.MethodPatch, path, map[string]interface{}{}, mustToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status is required", responseMessage(t, w))
}

func TestPublicContactSubmission(t *testing.T) {
	engine := newTestEngine()

	// a malformed body fails on binding, not on the token guard, so public
	// submissions never need a credential
	req := httptest.NewRequest(http.MethodPost, consts.ContactsPath, bytes.NewReader([]byte("not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmptyUpdateRejected(t *testing.T) {
	engine := newTestEngine()
	path := fmt.Sprintf("%s/%s", consts.DonorsPath, primitive.NewObjectID().Hex())

	w := testRequest(t, engine, http.MethodPut, path, map[string]interface{}{}, mustToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", responseMessage(t, w))
}

func TestIdentifierCannotBeOverwritten(t *testing.T) {
	engine := newTestEngine()
	path := fmt.Sprintf("%s/%s", consts.DonorsPath, primitive.NewObjectID().Hex())

	// a body carrying only _id strips down to an empty update
	w := testRequest(t, engine, http.MethodPut, path,
		map[string]interface{}{consts.IdField: primitive.NewObjectID().Hex()}, mustToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", responseMessage(t, w))
}
