package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjeevani/coordination-api/internal/handler"
	authHandler "github.com/sanjeevani/coordination-api/internal/handler/auth"
	donorHandler "github.com/sanjeevani/coordination-api/internal/handler/donor"
	organHandler "github.com/sanjeevani/coordination-api/internal/handler/organ"
	requestHandler "github.com/sanjeevani/coordination-api/internal/handler/request"
	stockHandler "github.com/sanjeevani/coordination-api/internal/handler/stock"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository/memory"
	donorService "github.com/sanjeevani/coordination-api/internal/service/donor"
	identityService "github.com/sanjeevani/coordination-api/internal/service/identity"
	notifierService "github.com/sanjeevani/coordination-api/internal/service/notifier"
	resourceService "github.com/sanjeevani/coordination-api/internal/service/resource"
	"github.com/sanjeevani/coordination-api/pkg/logger"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	directory := memory.NewUserDirectory()
	require.NoError(t, memory.SeedDirectory(ctx, directory))
	donationRepo := memory.NewDonationRepository()
	oppRepo := memory.NewOpportunityRepository()
	require.NoError(t, memory.SeedDonorData(ctx, donationRepo, oppRepo))

	notifier := notifierService.NewService(nil, notifierService.Config{
		HospitalContactDelay: time.Millisecond,
		DonorNotifyDelay:     time.Millisecond,
	}, logger.NewLogger(nil))
	identitySvc := identityService.NewService(directory, identityService.NewDefaultPolicy(directory), time.Hour)
	resourceSvc := resourceService.NewService(
		memory.NewStockRepository(),
		memory.NewOrganRepository(),
		memory.NewRequestRepository(),
		notifier,
	)
	donorSvc := donorService.NewService(donationRepo, oppRepo)

	r := NewRouter(
		middleware.NewAuthMiddleware(identitySvc),
		handler.NewHandler(),
		authHandler.NewHandler(identitySvc),
		stockHandler.NewHandler(resourceSvc),
		organHandler.NewHandler(resourceSvc),
		requestHandler.NewHandler(resourceSvc),
		donorHandler.NewHandler(donorSvc),
		Config{CORS: middleware.DefaultCORSConfig()},
	)
	r.Setup()
	return r.Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func login(t *testing.T, engine *gin.Engine, email, password, role string) model.Session {
	t.Helper()

	w := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session model.Session
	decodeData(t, w, &session)
	require.NotEmpty(t, session.Token)
	return session
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		w := do(t, engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1.0", w.Header().Get("X-API-Version"))
	}
}

func TestLoginAndMe(t *testing.T) {
	engine := newTestEngine(t)

	session := login(t, engine, "hospital@sanjeevani.com", "hospital123", model.RoleHospital)
	assert.Equal(t, "Dr. Rajesh Sharma", session.User.Name)
	assert.NotContains(t, session.User.Email, "password")

	w := do(t, engine, http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me model.User
	decodeData(t, w, &me)
	assert.Equal(t, model.RoleHospital, me.Role)
}

func TestLoginResponseCarriesNoPassword(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "donor@sanjeevani.com",
		"password": "donor123",
		"role":     model.RoleDonor,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "donor123")
}

func TestLoginFailureIsUnauthorized(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "donor@sanjeevani.com",
		"password": "wrong",
		"role":     model.RoleDonor,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/v1/stock", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStockLifecycleOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	session := login(t, engine, "hospital@sanjeevani.com", "hospital123", model.RoleHospital)

	w := do(t, engine, http.MethodPost, "/api/v1/stock", session.Token, gin.H{
		"type":        model.StockTypeBlood,
		"blood_group": "A+",
		"quantity":    5,
		"expiry_date": "2026-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item model.StockItem
	decodeData(t, w, &item)

	w = do(t, engine, http.MethodGet, "/api/v1/stock/summary", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalUnits int `json:"total_units"`
	}
	decodeData(t, w, &summary)
	assert.Equal(t, 5, summary.TotalUnits)

	w = do(t, engine, http.MethodPatch, "/api/v1/stock/"+item.ID.String(), session.Token, gin.H{
		"quantity": 9,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated model.StockItem
	decodeData(t, w, &updated)
	assert.Equal(t, 9, updated.Quantity)
	assert.Equal(t, "A+", updated.BloodGroup)

	w = do(t, engine, http.MethodDelete, "/api/v1/stock/"+item.ID.String(), session.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is still a success
	w = do(t, engine, http.MethodDelete, "/api/v1/stock/"+item.ID.String(), session.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/stock", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []model.StockItem
	decodeData(t, w, &items)
	assert.Empty(t, items)
}

func TestStockMutationsAreHospitalOnly(t *testing.T) {
	engine := newTestEngine(t)
	session := login(t, engine, "donor@sanjeevani.com", "donor123", model.RoleDonor)

	w := do(t, engine, http.MethodPost, "/api/v1/stock", session.Token, gin.H{
		"type":        model.StockTypeBlood,
		"blood_group": "A+",
		"quantity":    1,
		"expiry_date": "2026-12-31",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to any authenticated role
	w = do(t, engine, http.MethodGet, "/api/v1/stock", session.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestFlow(t *testing.T) {
	engine := newTestEngine(t)

	// A patient files a request; at most one session is active at a time, so
	// hospital actions below re-login and invalidate the patient's token.
	patient := login(t, engine, "patient@sanjeevani.com", "patient123", model.RolePatient)

	w := do(t, engine, http.MethodPost, "/api/v1/requests", patient.Token, gin.H{
		"patient_name":   "Amit Kumar",
		"requirement":    model.RequirementBlood,
		"blood_group":    "B+",
		"quantity":       2,
		"urgency":        model.UrgencyHigh,
		"location":       "Bangalore",
		"contact_number": patient.User.Phone,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.MedicalRequest
	decodeData(t, w, &created)
	assert.Equal(t, model.RequestStatusPending, created.Status)

	// The patient's list is scoped to their own phone number
	w = do(t, engine, http.MethodGet, "/api/v1/requests", patient.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []model.MedicalRequest
	decodeData(t, w, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, patient.User.Phone, mine[0].ContactNumber)

	hospital := login(t, engine, "hospital@sanjeevani.com", "hospital123", model.RoleHospital)

	// The replaced patient token no longer works
	w = do(t, engine, http.MethodGet, "/api/v1/requests", patient.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/requests", hospital.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []model.MedicalRequest
	decodeData(t, w, &all)
	require.Len(t, all, 1)

	w = do(t, engine, http.MethodPatch, "/api/v1/requests/"+created.ID.String()+"/status", hospital.Token, gin.H{
		"status": model.RequestStatusApproved,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var approved model.MedicalRequest
	decodeData(t, w, &approved)
	assert.Equal(t, model.RequestStatusApproved, approved.Status)

	w = do(t, engine, http.MethodPatch, "/api/v1/requests/"+created.ID.String()+"/status", hospital.Token, gin.H{
		"status": model.RequestStatusPending,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/dashboard/stats", hospital.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats model.DashboardStats
	decodeData(t, w, &stats)
	assert.Equal(t, 0, stats.PendingRequests)
	assert.Equal(t, 0, stats.CompletedRequests)
}

func TestEmergencyRequestIsPublic(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/v1/requests/emergency", "", gin.H{
		"patient_name":   "Ravi Singh",
		"requirement":    model.RequirementBlood,
		"blood_group":    "O-",
		"quantity":       3,
		"location":       "Pune",
		"contact_number": "+91 9111111111",
		"hospital_name":  "City Hospital",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.MedicalRequest
	decodeData(t, w, &created)
	assert.Equal(t, model.UrgencyHigh, created.Urgency)
	assert.Equal(t, model.RequestStatusPending, created.Status)
}

func TestDonorEndpoints(t *testing.T) {
	engine := newTestEngine(t)
	session := login(t, engine, "donor@sanjeevani.com", "donor123", model.RoleDonor)

	w := do(t, engine, http.MethodGet, "/api/v1/donors/eligibility?last_donation=2023-11-15", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var eligibility model.Eligibility
	decodeData(t, w, &eligibility)
	assert.True(t, eligibility.Eligible)
	assert.Equal(t, 0, eligibility.DaysRemaining)

	w = do(t, engine, http.MethodGet, "/api/v1/donors/donations", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Donations []model.DonationRecord `json:"donations"`
		Total     int                    `json:"total"`
	}
	decodeData(t, w, &history)
	assert.Equal(t, 4, history.Total)

	w = do(t, engine, http.MethodGet, "/api/v1/donors/opportunities", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var opps []model.DonationOpportunity
	decodeData(t, w, &opps)
	require.Len(t, opps, 2)

	w = do(t, engine, http.MethodPost, "/api/v1/donors/opportunities/"+opps[0].ID.String()+"/register", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var registered model.DonationOpportunity
	decodeData(t, w, &registered)
	assert.Contains(t, registered.RegisteredDonors, session.User.ID)
}

func TestDonorRoutesRequireDonorRole(t *testing.T) {
	engine := newTestEngine(t)
	session := login(t, engine, "patient@sanjeevani.com", "patient123", model.RolePatient)

	w := do(t, engine, http.MethodGet, "/api/v1/donors/opportunities", session.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	do(t, engine, http.MethodGet, "/api/v1/health/live", "", nil)

	w := do(t, engine, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sanjeevani_requests_total")
}
