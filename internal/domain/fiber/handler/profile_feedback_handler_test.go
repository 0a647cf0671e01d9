package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/feedback-service/internal/domain/fiber/handler"
	"github.com/fadilmartias/feedback-service/internal/repository/memory"
	"github.com/fadilmartias/feedback-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	handler.NewHealthHandler().RegisterRoutes(app)
	handler.NewProfileFeedbackHandler(
		usecase.NewProfileFeedbackUsecase(memory.NewProfileFeedbackStore()),
	).RegisterRoutes(app)
	handler.NewAppFeedbackHandler(
		usecase.NewAppFeedbackUsecase(memory.NewAppFeedbackStore()),
	).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func createProfileFeedback(t *testing.T, app *fiber.App, payload map[string]any) map[string]any {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/feedback/profile", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestProfileFeedbackCRUDOverHTTP(t *testing.T) {
	app := newTestApp()

	payload := map[string]any{
		"reviewer_profile_id": uuid.New().String(),
		"reviewee_profile_id": uuid.New().String(),
		"overall_experience":  5,
		"tags":                []string{"Kind", "punctual"},
	}
	out := createProfileFeedback(t, app, payload)
	id := out["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, []any{"kind", "punctual"}, out["tags"])

	resp, env := doJSON(t, app, http.MethodGet, "/feedback/profile/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, _ = doJSON(t, app, http.MethodPatch, "/feedback/profile/"+id, map[string]any{"overall_experience": 4})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/feedback/profile/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, "/feedback/profile/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestProfileFeedbackConflictOverHTTP(t *testing.T) {
	app := newTestApp()

	payload := map[string]any{
		"reviewer_profile_id": uuid.New().String(),
		"reviewee_profile_id": uuid.New().String(),
		"match_id":            uuid.New().String(),
		"overall_experience":  5,
	}
	createProfileFeedback(t, app, payload)

	resp, env := doJSON(t, app, http.MethodPost, "/feedback/profile", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestProfileFeedbackValidationOverHTTP(t *testing.T) {
	app := newTestApp()

	id := uuid.New().String()
	resp, _ := doJSON(t, app, http.MethodPost, "/feedback/profile", map[string]any{
		"reviewer_profile_id": id,
		"reviewee_profile_id": id,
		"overall_experience":  5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/feedback/profile", map[string]any{
		"reviewer_profile_id": uuid.New().String(),
		"reviewee_profile_id": uuid.New().String(),
		"overall_experience":  9,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileFeedbackListRejectsBadParams(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/feedback/profile?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/feedback/profile?limit=101", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/feedback/profile?sort=comment", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/feedback/profile?cursor=garbage", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/feedback/profile?reviewee_profile_id=not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileFeedbackListPagesOverHTTP(t *testing.T) {
	app := newTestApp()

	reviewee := uuid.New().String()
	for i := 0; i < 3; i++ {
		createProfileFeedback(t, app, map[string]any{
			"reviewer_profile_id": uuid.New().String(),
			"reviewee_profile_id": reviewee,
			"overall_experience":  3 + i%2,
		})
	}

	type page struct {
		Items      []map[string]any `json:"items"`
		NextCursor *string          `json:"next_cursor"`
		Count      int              `json:"count"`
	}

	resp, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/feedback/profile?reviewee_profile_id=%s&limit=2", reviewee), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p1 page
	require.NoError(t, json.Unmarshal(env.Data, &p1))
	assert.Len(t, p1.Items, 2)
	assert.Equal(t, 2, p1.Count)
	require.NotNil(t, p1.NextCursor)

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/feedback/profile?reviewee_profile_id=%s&limit=2&cursor=%s", reviewee, *p1.NextCursor), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p2 page
	require.NoError(t, json.Unmarshal(env.Data, &p2))
	assert.Len(t, p2.Items, 1)
	assert.Nil(t, p2.NextCursor)
}

func TestProfileFeedbackStatsOverHTTP(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/feedback/profile/stats", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	reviewee := uuid.New().String()
	resp, env := doJSON(t, app, http.MethodGet, "/feedback/profile/stats?reviewee_profile_id="+reviewee, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, float64(0), stats["count_total"])
	assert.Nil(t, stats["avg_overall_experience"])
}

func TestAppFeedbackAnonymousOverHTTP(t *testing.T) {
	app := newTestApp()

	resp, env := doJSON(t, app, http.MethodPost, "/feedback/app", map[string]any{
		"overall": 4,
		"tags":    []string{"praise"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Nil(t, out["author_profile_id"])

	resp, env = doJSON(t, app, http.MethodGet, "/feedback/app/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, float64(1), stats["count_total"])
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health?echo=hi", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "OK", payload["status_message"])
	assert.Equal(t, "hi", payload["echo"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ping", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "ping", payload["path_echo"])
}
