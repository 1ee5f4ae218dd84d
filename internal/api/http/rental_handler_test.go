package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/security"
	"alugo-backend/internal/service"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, shopID int64, params service.CreateRentalParams) (*domain.Rental, error) {
	args := m.Called(ctx, shopID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ExtendRental(ctx context.Context, accessCode string, minutes int32) (*domain.Rental, error) {
	args := m.Called(ctx, accessCode, minutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) FinalizeRental(ctx context.Context, shopID, rentalID int64) (*service.FinalizeResult, error) {
	args := m.Called(ctx, shopID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FinalizeResult), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, shopID, rentalID int64) (*domain.Rental, error) {
	args := m.Called(ctx, shopID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, shopID int64, status string, page, pageSize int32) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, shopID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalService) TrackRental(ctx context.Context, accessCode string) (*domain.Rental, error) {
	args := m.Called(ctx, accessCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func withClaims(r *http.Request, shopID int64) *http.Request {
	claims := &security.UserClaims{UserID: 1, ShopID: shopID, Type: security.TokenTypeAccess}
	return r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims))
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return buf
}

func TestRentalHandler_Extend(t *testing.T) {
	code := "k7mzqa3xvgdw2plc9fnrt5bhye8js4u6"

	t.Run("Success", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		end := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		svc.On("ExtendRental", mock.Anything, code, int32(30)).
			Return(&domain.Rental{ID: 9, EndTime: end, ExtensionCount: 2}, nil)

		req := httptest.NewRequest("POST", "/api/v1/rentals/extend",
			jsonBody(t, map[string]interface{}{"access_code": code, "minutes": 30}))
		rec := httptest.NewRecorder()
		h.Extend(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp extendRentalResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.EndTime.Equal(end))
		assert.Equal(t, int32(2), resp.ExtensionCount)
	})

	t.Run("Missing access code", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		req := httptest.NewRequest("POST", "/api/v1/rentals/extend",
			jsonBody(t, map[string]interface{}{"minutes": 30}))
		rec := httptest.NewRecorder()
		h.Extend(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ExtendRental", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid minutes", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("ExtendRental", mock.Anything, code, int32(241)).Return(nil, domain.ErrInvalidMinutes)

		req := httptest.NewRequest("POST", "/api/v1/rentals/extend",
			jsonBody(t, map[string]interface{}{"access_code": code, "minutes": 241}))
		rec := httptest.NewRecorder()
		h.Extend(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_MINUTES")
	})

	t.Run("Finalized rental", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("ExtendRental", mock.Anything, code, int32(30)).Return(nil, domain.ErrRentalNotFound)

		req := httptest.NewRequest("POST", "/api/v1/rentals/extend",
			jsonBody(t, map[string]interface{}{"access_code": code, "minutes": 30}))
		rec := httptest.NewRecorder()
		h.Extend(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RENTAL_NOT_FOUND")
	})
}

func TestRentalHandler_Finalize(t *testing.T) {
	actualEnd := time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)

	t.Run("Success returns the billed totals", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("FinalizeRental", mock.Anything, int64(1), int64(9)).
			Return(&service.FinalizeResult{TotalCents: 4500, OverageMinutes: 30, ActualEndTime: actualEnd}, nil)

		req := withClaims(httptest.NewRequest("POST", "/api/v1/rentals/finalize",
			jsonBody(t, map[string]interface{}{"rental_id": 9})), 1)
		rec := httptest.NewRecorder()
		h.Finalize(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp finalizeRentalResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(4500), resp.TotalCostCents)
		assert.Equal(t, int64(30), resp.TotalOverageMinutes)
	})

	t.Run("Already finalized returns 409 with stored totals", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("FinalizeRental", mock.Anything, int64(1), int64(9)).
			Return(&service.FinalizeResult{TotalCents: 4450, OverageMinutes: 29, ActualEndTime: actualEnd},
				domain.ErrRentalAlreadyFinalized)

		req := withClaims(httptest.NewRequest("POST", "/api/v1/rentals/finalize",
			jsonBody(t, map[string]interface{}{"rental_id": 9})), 1)
		rec := httptest.NewRecorder()
		h.Finalize(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp finalizeRentalResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(4450), resp.TotalCostCents)
		assert.Equal(t, int64(29), resp.TotalOverageMinutes)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("FinalizeRental", mock.Anything, int64(1), int64(99)).Return(nil, domain.ErrRentalNotFound)

		req := withClaims(httptest.NewRequest("POST", "/api/v1/rentals/finalize",
			jsonBody(t, map[string]interface{}{"rental_id": 99})), 1)
		rec := httptest.NewRecorder()
		h.Finalize(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("No claims", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		req := httptest.NewRequest("POST", "/api/v1/rentals/finalize",
			jsonBody(t, map[string]interface{}{"rental_id": 9}))
		rec := httptest.NewRecorder()
		h.Finalize(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "FinalizeRental", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentalHandler_Track(t *testing.T) {
	code := "k7mzqa3xvgdw2plc9fnrt5bhye8js4u6"

	t.Run("Active rental counts down", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("TrackRental", mock.Anything, code).Return(&domain.Rental{
			ID:         9,
			AccessCode: code,
			Status:     domain.RentalStatusActive,
			StartTime:  time.Now().Add(-time.Hour),
			EndTime:    time.Now().Add(30 * time.Minute),
		}, nil)

		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/track/"+code, nil),
			map[string]string{"accessCode": code})
		rec := httptest.NewRecorder()
		h.Track(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp trackResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, domain.RentalStatusActive, resp.Status)
		assert.Greater(t, resp.RemainingSeconds, int64(0))
		// The public view never leaks client details or rates.
		assert.NotContains(t, rec.Body.String(), "client_name")
		assert.NotContains(t, rec.Body.String(), "price_per_minute_cents")
	})

	t.Run("Finalized rental has no countdown", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		end := time.Now().Add(-time.Hour)
		svc.On("TrackRental", mock.Anything, code).Return(&domain.Rental{
			Status:        domain.RentalStatusFinalized,
			StartTime:     end.Add(-2 * time.Hour),
			EndTime:       end,
			ActualEndTime: &end,
		}, nil)

		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/track/"+code, nil),
			map[string]string{"accessCode": code})
		rec := httptest.NewRecorder()
		h.Track(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp trackResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(0), resp.RemainingSeconds)
	})

	t.Run("Unknown code", func(t *testing.T) {
		svc := new(MockRentalService)
		h := NewRentalHandler(svc)

		svc.On("TrackRental", mock.Anything, "nope").Return(nil, domain.ErrRentalNotFound)

		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/track/nope", nil),
			map[string]string{"accessCode": "nope"})
		rec := httptest.NewRecorder()
		h.Track(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
