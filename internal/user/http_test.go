package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := newFakeRepo()
	router := gin.New()
	RegisterRoutes(router, NewService(repo))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateUserEndpoint(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email":     "alice@example.com",
		"username":  "alice",
		"full_name": "Alice A",
	})

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var u User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "alice", u.Username)
	assert.True(t, u.IsActive)
	assert.NotZero(t, u.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router := newUserRouter()

	first := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email": "a@example.com", "username": "a",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email": "a@example.com", "username": "b",
	})
	require.Equal(t, http.StatusBadRequest, second.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "Email already registered", resp["detail"])
}

func TestCreateUserInvalidBody(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email": "not-an-email", "username": "a",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetUserNotFound(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodGet, "/users/99", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["detail"])
}

func TestGetUserInvalidID(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodGet, "/users/abc", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateUserPartial(t *testing.T) {
	router := newUserRouter()

	created := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email": "a@example.com", "username": "a", "full_name": "A",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var u User
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &u))

	rr := doJSON(t, router, http.MethodPut, "/users/1", map[string]any{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.False(t, updated.IsActive)
	assert.Equal(t, u.Email, updated.Email)
	assert.Equal(t, u.Username, updated.Username)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "A", *updated.FullName)
}

func TestUpdateUserNotFound(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPut, "/users/5", map[string]any{"username": "x"})

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUserEndpoint(t *testing.T) {
	router := newUserRouter()

	created := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email": "a@example.com", "username": "a",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	rr := doJSON(t, router, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User deleted successfully", resp["message"])

	again := doJSON(t, router, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusNotFound, again.Code)
}

func TestListUsersEmpty(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodGet, "/users/", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
