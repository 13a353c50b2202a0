package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"plantcare/config"
	"plantcare/internal/delivery/http/middleware"
	"plantcare/internal/delivery/http/router"
	"plantcare/internal/delivery/http/router/handler"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/lock"
	"plantcare/internal/infra/persistence/persistencetest"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/infra/pubsub"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/usecase/engine"
	"plantcare/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type apiClient struct {
	t     *testing.T
	e     *echo.Echo
	token string
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"

	db := persistencetest.NewSQLite(t)
	repos := postgres.NewRepositoryFactory(db)
	txManager := postgres.NewTransactionManager(db)
	eng := engine.New(gamification.DefaultSettings())
	hasher := auth.NewBcryptHasherWithCost(0)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	runner := impl.NewOperationRunner(impl.OperationRunnerParams{
		TxManager: txManager,
		Locker:    lock.NewUserLocker(),
		Publisher: pubsub.NewNoopPublisher(logger),
		Engine:    eng,
		Logger:    logger,
	})

	seed := impl.NewSeedService(impl.SeedServiceParams{
		TxManager: txManager,
		Repos:     repos,
		Hasher:    hasher,
		Engine:    eng,
		Logger:    logger,
	})
	_, err = seed.SeedCatalog(context.Background())
	require.NoError(t, err)

	plantUC := impl.NewPlantService(impl.PlantServiceParams{Runner: runner, Engine: eng, Repos: repos, QRCode: qrcode.NewQRCodeService(nil), Logger: logger})
	taskUC := impl.NewTaskService(impl.TaskServiceParams{Runner: runner, Engine: eng, Repos: repos, Logger: logger})

	r := router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(impl.NewUserService(impl.UserServiceParams{
			Repos:        repos,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       logger,
		}), logger),
		PlantHandler: handler.NewPlantHandler(plantUC, taskUC),
		TaskHandler:  handler.NewTaskHandler(taskUC),
		BadgeHandler: handler.NewBadgeHandler(impl.NewGamificationService(impl.GamificationServiceParams{
			Runner: runner, Engine: eng, Repos: repos, Logger: logger,
		})),
		NotificationHandler: handler.NewNotificationHandler(impl.NewNotificationService(impl.NotificationServiceParams{
			Runner: runner, Engine: eng, Repos: repos, Logger: logger,
		})),
		AnalysisHandler: handler.NewAnalysisHandler(impl.NewAnalysisService(impl.AnalysisServiceParams{
			Runner: runner, Engine: eng, Repos: repos, Logger: logger,
		})),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	return &apiClient{t: t, e: NewEcho(cfg, logger, r)}
}

func (a *apiClient) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if a.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get(echo.HeaderContentType) != "image/png" {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func (a *apiClient) register(username string) {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/auth/register", map[string]string{"username": username, "password": "secret123"})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.AccessToken)
	a.token = out.AccessToken
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

type idOnly struct {
	ID uint64 `json:"id"`
}

func TestServer_HealthAndAuth(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec, env = api.do(http.MethodGet, "/api/plants", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	api.token = "not-a-jwt"
	rec, _ = api.do(http.MethodGet, "/api/plants", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	api.token = ""

	api.register("fern")

	rec, env = api.do(http.MethodPost, "/auth/register", map[string]string{"username": "fern", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	rec, env = api.do(http.MethodPost, "/auth/login", map[string]string{"username": "fern", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	rec, env = api.do(http.MethodPost, "/auth/register", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_PlantLifecycle(t *testing.T) {
	api := newTestAPI(t)
	api.register("ivy")

	rec, env := api.do(http.MethodPost, "/api/plants", map[string]string{"name": "Monstera"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[struct {
		Plant   idOnly `json:"plant"`
		Effects []struct {
			Kind string `json:"kind"`
		} `json:"effects"`
	}](t, env.Data)
	require.NotZero(t, created.Plant.ID)

	kinds := make([]string, 0, len(created.Effects))
	for _, effect := range created.Effects {
		kinds = append(kinds, effect.Kind)
	}
	assert.Contains(t, kinds, "badge_awarded")

	rec, env = api.do(http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[struct {
		User struct {
			Points int `json:"points"`
			Level  int `json:"level"`
		} `json:"user"`
		BadgeCount int `json:"badge_count"`
	}](t, env.Data)
	assert.Equal(t, 25, profile.User.Points)
	assert.Equal(t, 1, profile.User.Level)
	assert.Equal(t, 1, profile.BadgeCount)
	assert.NotContains(t, rec.Body.String(), "password")

	plantPath := "/api/plants/" + strconv.FormatUint(created.Plant.ID, 10)

	rec, _ = api.do(http.MethodPatch, plantPath, map[string]string{"species": "Monstera deliciosa"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, plantPath+"/qrcode", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec, _ = api.do(http.MethodGet, plantPath+"/analysis/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = api.do(http.MethodPost, plantPath+"/analysis", map[string]any{
		"health_score":   55,
		"water_level":    20,
		"light_level":    70,
		"nutrient_level": 60,
		"pest_risk":      5,
		"issues":         []map[string]string{{"name": "Underwatering", "icon": "water_drop"}},
		"recommendations": []map[string]string{
			{"title": "Water thoroughly", "priority": "urgent", "type": "water"},
			{"title": "Check again next month", "priority": "maintenance", "type": "inspect"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = api.do(http.MethodGet, plantPath+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]idOnly](t, env.Data)
	require.Len(t, tasks, 1)

	rec, env = api.do(http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notifications := decode[[]idOnly](t, env.Data)
	require.NotEmpty(t, notifications)

	rec, env = api.do(http.MethodPatch, "/api/notifications/"+strconv.FormatUint(notifications[0].ID, 10)+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[struct {
		Read bool `json:"read"`
	}](t, env.Data).Read)

	taskPath := "/api/tasks/" + strconv.FormatUint(tasks[0].ID, 10)
	rec, env = api.do(http.MethodPost, taskPath+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completed := decode[struct {
		Task struct {
			Completed bool `json:"completed"`
		} `json:"task"`
	}](t, env.Data)
	assert.True(t, completed.Task.Completed)

	rec, _ = api.do(http.MethodGet, plantPath+"/analysis/latest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodDelete, plantPath, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodGet, plantPath+"/tasks", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLANT_NOT_FOUND", env.Error.Code)

	rec, env = api.do(http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]idOnly](t, env.Data))
}

func TestServer_RequestErrors(t *testing.T) {
	api := newTestAPI(t)
	api.register("moss")

	rec, env := api.do(http.MethodGet, "/api/plants/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = api.do(http.MethodPost, "/api/plants", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = api.do(http.MethodGet, "/api/plants/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLANT_NOT_FOUND", env.Error.Code)

	rec, env = api.do(http.MethodGet, "/no/such/route", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, env = api.do(http.MethodGet, "/api/badges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]idOnly](t, env.Data), len(gamification.Catalog()))

	other := &apiClient{t: t, e: api.e}
	other.register("sage")
	rec, env = other.do(http.MethodPost, "/api/plants", map[string]string{"name": "Aloe"})
	require.Equal(t, http.StatusCreated, rec.Code)
	aloe := decode[struct {
		Plant idOnly `json:"plant"`
	}](t, env.Data)

	rec, _ = api.do(http.MethodGet, "/api/plants/"+strconv.FormatUint(aloe.Plant.ID, 10), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
