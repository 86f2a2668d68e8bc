package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	authdomain "github.com/linkhoard/bookmark-service/internal/auth/domain"
	authhandler "github.com/linkhoard/bookmark-service/internal/auth/handler"
	authservice "github.com/linkhoard/bookmark-service/internal/auth/service"
	"github.com/linkhoard/bookmark-service/internal/bookmark/domain"
	"github.com/linkhoard/bookmark-service/internal/bookmark/dto"
	"github.com/linkhoard/bookmark-service/internal/bookmark/handler"
	"github.com/linkhoard/bookmark-service/internal/bookmark/service"
	"github.com/linkhoard/bookmark-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	app          *fiber.App
	bookmarkRepo *mocks.MockBookmarkRepository
	userRepo     *mocks.MockUserRepository
	token        string
	user         *authdomain.User
}

// newTestEnv wires the bookmark surface behind a real auth gate and returns a
// valid bearer token for the test user. Each authenticated request costs one
// GetByID expectation on the user repo.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	hasher := authservice.NewBcryptHasher(bcrypt.MinCost)
	tokens := authservice.NewTokenService("test-secret")
	userService := authservice.NewUserService(userRepo, hasher, tokens)
	authHandler := authhandler.NewAuthHandler(userService)

	bookmarkRepo := mocks.NewMockBookmarkRepository(ctrl)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)

	app := fiber.New()
	handler.RegisterRoutes(app, bookmarkHandler, authHandler.RequireAuth())

	user := &authdomain.User{ID: "user-123", Email: "alice@example.com"}
	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	return &testEnv{
		app:          app,
		bookmarkRepo: bookmarkRepo,
		userRepo:     userRepo,
		token:        token,
		user:         user,
	}
}

func (e *testEnv) expectGate() {
	e.userRepo.EXPECT().GetByID(gomock.Any(), e.user.ID).Return(e.user, nil)
}

func (e *testEnv) request(t *testing.T, method, path string, payload any, authenticated bool) (int, []byte) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+e.token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, buf.Bytes()
}

func TestBookmarkRoutes_RequireAuthentication(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/bookmarks"},
		{"GET", "/api/v1/bookmarks"},
		{"PATCH", "/api/v1/bookmarks"},
		{"GET", "/api/v1/bookmarks/b-1"},
		{"DELETE", "/api/v1/bookmarks/b-1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			// No repo expectations: the gate must reject before any
			// bookmark logic runs.
			status, _ := env.request(t, rt.method, rt.path, nil, false)
			assert.Equal(t, fiber.StatusUnauthorized, status)
		})
	}
}

func TestCreateBookmark(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()
		env.bookmarkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		status, body := env.request(t, "POST", "/api/v1/bookmarks", dto.CreateBookmarkInput{
			Title: "Go blog",
			URL:   "https://go.dev/blog",
		}, true)

		assert.Equal(t, fiber.StatusOK, status)

		var out dto.BookmarkOutput
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, env.user.ID, out.UserID)
		assert.Equal(t, "Go blog", out.Title)
		assert.NotEmpty(t, out.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()

		status, _ := env.request(t, "POST", "/api/v1/bookmarks", dto.CreateBookmarkInput{
			URL: "https://go.dev/blog",
		}, true)

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestListBookmarks(t *testing.T) {
	env := newTestEnv(t)
	env.expectGate()

	env.bookmarkRepo.EXPECT().ListByUser(gomock.Any(), env.user.ID, 10).Return([]domain.Bookmark{
		{ID: "b-1", UserID: env.user.ID, Title: "one", URL: "https://one"},
		{ID: "b-2", UserID: env.user.ID, Title: "two", URL: "https://two"},
	}, nil)

	status, body := env.request(t, "GET", "/api/v1/bookmarks", nil, true)

	assert.Equal(t, fiber.StatusOK, status)

	var out []dto.BookmarkOutput
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "b-1", out[0].ID)
}

func TestGetBookmark(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()

		env.bookmarkRepo.EXPECT().GetByID(gomock.Any(), env.user.ID, "b-1").Return(&domain.Bookmark{
			ID: "b-1", UserID: env.user.ID, Title: "one", URL: "https://one",
		}, nil)

		status, _ := env.request(t, "GET", "/api/v1/bookmarks/b-1", nil, true)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("foreign bookmark is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()

		env.bookmarkRepo.EXPECT().GetByID(gomock.Any(), env.user.ID, "b-9").Return(nil, nil)

		status, _ := env.request(t, "GET", "/api/v1/bookmarks/b-9", nil, true)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeleteBookmark(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()

		env.bookmarkRepo.EXPECT().Delete(gomock.Any(), env.user.ID, "b-1").Return(&domain.Bookmark{
			ID: "b-1", UserID: env.user.ID, Title: "one", URL: "https://one",
		}, nil)

		status, _ := env.request(t, "DELETE", "/api/v1/bookmarks/b-1", nil, true)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("missing is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectGate()

		env.bookmarkRepo.EXPECT().Delete(gomock.Any(), env.user.ID, "b-9").Return(nil, nil)

		status, _ := env.request(t, "DELETE", "/api/v1/bookmarks/b-9", nil, true)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestSetFavorite(t *testing.T) {
	env := newTestEnv(t)
	env.expectGate()

	env.bookmarkRepo.EXPECT().SetFavorite(gomock.Any(), env.user.ID, "b-1", true).Return(&domain.Bookmark{
		ID: "b-1", UserID: env.user.ID, Title: "one", URL: "https://one", IsFavorite: true,
	}, nil)

	status, body := env.request(t, "PATCH", "/api/v1/bookmarks", dto.SetFavoriteInput{
		BookmarkID: "b-1",
		IsFavorite: true,
	}, true)

	assert.Equal(t, fiber.StatusOK, status)

	var out dto.BookmarkOutput
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.IsFavorite)
}
