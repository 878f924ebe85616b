package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/memstore"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
	"github.com/vaanicall/vaani-backend/internal/navigation"
	"github.com/vaanicall/vaani-backend/pkg/validation"
)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newOnboardingRouter(t *testing.T) (*gin.Engine, *memstore.ProfileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memstore.NewProfileStore()
	svc := application.NewOnboardingService(store, navigation.NewManager(), nil, logger)
	h := NewOnboardingHandler(svc, logger)

	r := gin.New()
	r.Use(middleware.DeviceID())
	grp := r.Group("/onboarding")
	{
		grp.GET("/steps", h.Steps)
		grp.POST("/role", h.SelectRole)
		grp.POST("/username", h.SubmitUsername)
		grp.POST("/name", h.SubmitName)
		grp.POST("/avatar", h.SubmitAvatar)
		grp.GET("/avatars", h.Avatars)
		grp.POST("/language", h.SubmitLanguage)
		grp.GET("/languages", h.Languages)
		grp.POST("/verification", h.CompleteVerification)
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, device string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if device != "" {
		req.Header.Set("X-Device-ID", device)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestStepsEndpoint(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/onboarding/steps?role=female", "dev-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		Role  string   `json:"role"`
		Steps []string `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "female", data.Role)
	assert.Len(t, data.Steps, 4)
}

func TestStepsEndpointUnknownRole(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/onboarding/steps?role=other", "dev-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestSelectRoleEndpoint(t *testing.T) {
	r, store := newOnboardingRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/onboarding/role", "dev-1", gin.H{"role": "female"})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Next string `json:"next"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "FemaleNameSetup", data.Next)
	assert.Equal(t, 1, store.Len("dev-1"))
}

func TestSelectRoleMissingPayload(t *testing.T) {
	r, store := newOnboardingRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/onboarding/role", "dev-1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, 0, store.Len("dev-1"))
}

func TestStepOutOfOrderIsConflict(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/onboarding/name", "dev-1", gin.H{"name": "Priya"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestShortNameIsUnprocessable(t *testing.T) {
	r, _ := newOnboardingRouter(t)
	_, _ = doJSON(t, r, http.MethodPost, "/onboarding/role", "dev-1", gin.H{"role": "female"})

	w, _ := doJSON(t, r, http.MethodPost, "/onboarding/name", "dev-1", gin.H{"name": "ab"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFullListenerFlowOverHTTP(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	steps := []struct {
		path string
		body gin.H
	}{
		{"/onboarding/role", gin.H{"role": "female"}},
		{"/onboarding/name", gin.H{"name": "Priya"}},
		{"/onboarding/avatar", gin.H{}},
		{"/onboarding/language", gin.H{"language": "hi"}},
		{"/onboarding/verification", gin.H{"has_recording": true}},
	}
	var env envelope
	for _, s := range steps {
		var w *httptest.ResponseRecorder
		w, env = doJSON(t, r, http.MethodPost, s.path, "dev-1", s.body)
		require.Equal(t, http.StatusOK, w.Code, s.path)
	}

	var data struct {
		Next   string `json:"next"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "FemaleHome", data.Next)
	assert.Equal(t, "pending", data.Status)
}

func TestDevicesAreIsolated(t *testing.T) {
	r, _ := newOnboardingRouter(t)
	_, _ = doJSON(t, r, http.MethodPost, "/onboarding/role", "dev-1", gin.H{"role": "female"})

	// The second device has not selected a role yet.
	w, _ := doJSON(t, r, http.MethodPost, "/onboarding/name", "dev-2", gin.H{"name": "Priya"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMissingDeviceIDIsMinted(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/onboarding/avatars", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Device-ID"))
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newOnboardingRouter(t)

	_, env := doJSON(t, r, http.MethodGet, "/onboarding/avatars", "dev-1", nil)
	var avatars struct {
		Avatars []string `json:"avatars"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &avatars))
	assert.Len(t, avatars.Avatars, 12)
	assert.Equal(t, avatars.Avatars[0], avatars.Default)

	_, env = doJSON(t, r, http.MethodGet, "/onboarding/languages", "dev-1", nil)
	var langs struct {
		Languages []struct {
			Code string `json:"code"`
		} `json:"languages"`
		Default string `json:"default"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &langs))
	assert.Len(t, langs.Languages, 10)
	assert.Equal(t, "en", langs.Default)
}
