package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	ListFunc   func(ctx context.Context, page, limit int) ([]entity.User, error)
	GetFunc    func(ctx context.Context, id string) (*entity.User, error)
	CreateFunc func(ctx context.Context, name, email, password string) (*entity.User, error)
	UpdateFunc func(ctx context.Context, id string, params usecase.UpdateParams) (*entity.User, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockUserUsecase) List(ctx context.Context, page, limit int) ([]entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *mockUserUsecase) Get(ctx context.Context, id string) (*entity.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, email, password)
	}
	return nil, errors.New("create failed")
}

func (m *mockUserUsecase) Update(ctx context.Context, id string, params usecase.UpdateParams) (*entity.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserUsecase) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newRouter(uc UserUsecase) *gin.Engine {
	h := NewUserHandler(uc)
	r := gin.New()
	r.GET("/api/v1/users", h.List)
	r.GET("/api/v1/users/:id", h.Get)
	r.POST("/api/v1/users", h.Create)
	r.PUT("/api/v1/users/:id", h.Update)
	r.DELETE("/api/v1/users/:id", h.Delete)
	return r
}

func doJSON(router *gin.Engine, method, path string, body gin.H) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestUserHandler_List(t *testing.T) {
	t.Run("returns envelope with count", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			ListFunc: func(ctx context.Context, page, limit int) ([]entity.User, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return []entity.User{{ID: "u-1"}, {ID: "u-2"}}, nil
			},
		})

		w := doJSON(router, http.MethodGet, "/api/v1/users?page=2&limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(2), body["count"])
		assert.Len(t, body["data"], 2)
	})

	t.Run("missing and invalid params fall back to defaults", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			ListFunc: func(ctx context.Context, page, limit int) ([]entity.User, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 10, limit)
				return nil, nil
			},
		})

		w := doJSON(router, http.MethodGet, "/api/v1/users?page=abc&limit=-3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, float64(0), body["count"])
		assert.Equal(t, []any{}, body["data"])
	})
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			GetFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return &entity.User{ID: id, Name: "A", Email: "a@x.com"}, nil
			},
		})

		w := doJSON(router, http.MethodGet, "/api/v1/users/u-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "u-1", data["_id"])
		assert.NotContains(t, data, "password")
	})

	t.Run("absent user yields 404", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{})

		w := doJSON(router, http.MethodGet, "/api/v1/users/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "User not found", body["error"])
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("responds 201 with the stored record", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			CreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return &entity.User{ID: "u-9", Name: name, Email: email}, nil
			},
		})

		w := doJSON(router, http.MethodPost, "/api/v1/users",
			gin.H{"name": "B", "email": "b@x.com", "password": "Password123!"})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "u-9", data["_id"])
	})

	t.Run("validation failure yields 400 before usecase", func(t *testing.T) {
		called := false
		router := newRouter(&mockUserUsecase{
			CreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				called = true
				return nil, nil
			},
		})

		w := doJSON(router, http.MethodPost, "/api/v1/users",
			gin.H{"name": "B", "email": "not-an-email", "password": "Password123!"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("duplicate email yields 400", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			CreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, domain.ErrEmailAlreadyExists
			},
		})

		w := doJSON(router, http.MethodPost, "/api/v1/users",
			gin.H{"name": "B", "email": "b@x.com", "password": "Password123!"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "User already exists", body["error"])
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("partial update passes only set fields", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{
			UpdateFunc: func(ctx context.Context, id string, params usecase.UpdateParams) (*entity.User, error) {
				require.NotNil(t, params.Name)
				assert.Equal(t, "C", *params.Name)
				assert.Nil(t, params.Email)
				assert.Nil(t, params.Password)
				return &entity.User{ID: id, Name: *params.Name}, nil
			},
		})

		w := doJSON(router, http.MethodPut, "/api/v1/users/u-1", gin.H{"name": "C"})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "C", data["name"])
	})

	t.Run("absent user yields 404", func(t *testing.T) {
		router := newRouter(&mockUserUsecase{})

		w := doJSON(router, http.MethodPut, "/api/v1/users/missing", gin.H{"name": "C"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	router := newRouter(&mockUserUsecase{})

	// Delete is idempotent: both calls respond 200 with an empty data object.
	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodDelete, "/api/v1/users/u-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, map[string]any{}, body["data"])
	}
}
