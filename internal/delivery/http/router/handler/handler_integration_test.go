package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"istiqdam/config"
	httpmiddleware "istiqdam/internal/delivery/http/middleware"
	"istiqdam/internal/delivery/http/validator"
	"istiqdam/internal/domain/entity"
	"istiqdam/internal/infra/auth"
	"istiqdam/internal/infra/clock"
	"istiqdam/internal/infra/idgen"
	"istiqdam/internal/infra/importer"
	"istiqdam/internal/infra/memstore"
	"istiqdam/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// registerTestRoutes mirrors the production route table closely enough for
// end-to-end request tests without pulling in the Fx container.
func registerTestRoutes(e *echo.Echo, authHandler *AuthHandler, officeHandler *OfficeHandler, workerHandler *WorkerHandler, reservationHandler *ReservationHandler, authMW *httpmiddleware.AuthMiddleware) {
	e.GET("/health", HealthCheck)

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW.Authenticate)
	e.GET("/auth/me", authHandler.Me, authMW.Authenticate)

	e.GET("/offices", officeHandler.ListOffices)
	e.GET("/offices/:id", officeHandler.GetOffice)
	e.GET("/offices/:id/workers", officeHandler.ListOfficeWorkers)
	e.GET("/workers", workerHandler.SearchWorkers)
	e.GET("/workers/:id", workerHandler.GetWorker)

	officeGroup := e.Group("/office", authMW.Authenticate, authMW.RequireRole(entity.RoleOffice))
	officeGroup.GET("/workers", workerHandler.ListMyWorkers)
	officeGroup.POST("/workers", workerHandler.CreateWorker)
	officeGroup.PUT("/workers/:id", workerHandler.UpdateWorker)
	officeGroup.DELETE("/workers/:id", workerHandler.DeleteWorker)
	officeGroup.GET("/requests", reservationHandler.ListOfficeRequests)
	officeGroup.POST("/requests/:id/approve", reservationHandler.ApproveRequest)
	officeGroup.POST("/requests/:id/reject", reservationHandler.RejectRequest)
	officeGroup.GET("/statistics", reservationHandler.GetStatistics)

	requestGroup := e.Group("/requests", authMW.Authenticate, authMW.RequireRole(entity.RoleCustomer))
	requestGroup.POST("", reservationHandler.CreateRequest)
	requestGroup.GET("", reservationHandler.ListMyRequests)
	requestGroup.POST("/:id/cancel", reservationHandler.CancelRequest)
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.Default()
	store := memstore.NewStore()
	ids := idgen.NewUUIDGenerator()
	clk := clock.NewSystemClock()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountRepo := memstore.NewAccountRepository(store)
	officeRepo := memstore.NewOfficeRepository(store)
	workerRepo := memstore.NewWorkerRepository(store)
	reservationRepo := memstore.NewReservationRepository(store)
	sessionRepo := memstore.NewSessionRepository(store)

	require.NoError(t, memstore.Seed(store, ids, hasher, logger))

	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		AccountRepo: accountRepo, SessionRepo: sessionRepo, Hasher: hasher,
		Tokens: tokens, IDs: ids, Clock: clk, Logger: logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		WorkerRepo: workerRepo, ReservationRepo: reservationRepo,
		IDs: ids, Clock: clk, Logger: logger,
	})
	reservationUC := impl.NewReservationService(impl.ReservationServiceParams{
		ReservationRepo: reservationRepo, WorkerRepo: workerRepo,
		IDs: ids, Clock: clk, Logger: logger,
	})
	officeUC := impl.NewOfficeService(officeRepo)

	authMW := httpmiddleware.NewAuthMiddleware(httpmiddleware.AuthMiddlewareParams{
		TokenSvc: tokens, SessionRepo: sessionRepo, Clock: clk,
	})
	errorMW := httpmiddleware.NewErrorMiddleware(logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorMW.HandleHTTPError

	registerTestRoutes(e,
		NewAuthHandler(sessionUC),
		NewOfficeHandler(officeUC, catalogUC),
		NewWorkerHandler(catalogUC, importer.NewCSVImporter()),
		NewReservationHandler(reservationUC),
		authMW,
	)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)

	return body.Data.AccessToken
}

func TestRoutes_HealthIsPublic(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_LoginRejectsBadCredentials(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"email":"alnoor@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/office/workers", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_CustomerCannotUseOfficeEndpoints(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e, "customer1@example.com", "customer123")

	rec := doJSON(e, http.MethodGet, "/office/statistics", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_OfficeCannotUseCustomerEndpoints(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e, "alnoor@example.com", "office123")

	rec := doJSON(e, http.MethodGet, "/requests", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_FullReservationFlow(t *testing.T) {
	e := newTestServer(t)
	officeToken := login(t, e, "alnoor@example.com", "office123")
	customerToken := login(t, e, "customer1@example.com", "customer123")

	// Office lists a worker.
	rec := doJSON(e, http.MethodPost, "/office/workers", officeToken,
		`{"name":"Maria Santos","sex":"female","type":"housekeeper","age":30,"salary_per_month":1400,"full_package_price":9000,"deposit_amount":2500}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var workerBody struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workerBody))

	// The worker is publicly searchable.
	rec = doJSON(e, http.MethodGet, "/workers?q=maria", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maria Santos")

	// Customer files a reservation request.
	rec = doJSON(e, http.MethodPost, "/requests", customerToken,
		fmt.Sprintf(`{"worker_id":%q}`, workerBody.Data.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var requestBody struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &requestBody))
	assert.Equal(t, "pending", requestBody.Data.Status)

	// Office approves it.
	rec = doJSON(e, http.MethodPost, "/office/requests/"+requestBody.Data.ID+"/approve", officeToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A second approve hits the terminal-state guard.
	rec = doJSON(e, http.MethodPost, "/office/requests/"+requestBody.Data.ID+"/approve", officeToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")

	// Statistics reflect the approved deal.
	rec = doJSON(e, http.MethodGet, "/office/statistics", officeToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var statsBody struct {
		Data struct {
			TotalWorkers  int   `json:"total_workers"`
			ApprovedCount int   `json:"approved_count"`
			TotalRevenue  int64 `json:"total_revenue"`
			TotalFees     int64 `json:"total_fees"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statsBody))
	assert.Equal(t, 1, statsBody.Data.TotalWorkers)
	assert.Equal(t, 1, statsBody.Data.ApprovedCount)
	assert.Equal(t, int64(9000), statsBody.Data.TotalRevenue)
	assert.Equal(t, int64(6500), statsBody.Data.TotalFees)
}

func TestRoutes_LogoutInvalidatesToken(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e, "customer1@example.com", "customer123")

	rec := doJSON(e, http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// The JWT itself has not expired, but the session behind it is gone.
	rec = doJSON(e, http.MethodGet, "/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
