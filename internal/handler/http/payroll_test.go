package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollService struct {
	calculateErr error
	breakdown    payroll.BreakdownResponse
	setStatusErr error
	payslipErr   error
}

func (s *stubPayrollService) Calculate(_ context.Context, req payroll.CalculateRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if s.calculateErr != nil {
		return payroll.BreakdownResponse{}, s.calculateErr
	}
	return s.breakdown, nil
}

func (s *stubPayrollService) Recalculate(_ context.Context, _ payroll.CalculateRequest) (payroll.BreakdownResponse, error) {
	return s.breakdown, nil
}

func (s *stubPayrollService) GetForEmployee(_ context.Context, _ string, _, _ *int) ([]payroll.RecordResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) GetAll(_ context.Context, _ payroll.Filter) ([]payroll.RecordResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) GetStats(_ context.Context, _ payroll.Filter) (payroll.StatsResponse, error) {
	return payroll.StatsResponse{}, nil
}

func (s *stubPayrollService) SetStatus(_ context.Context, req payroll.SetStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.setStatusErr
}

func (s *stubPayrollService) GetPayslip(_ context.Context, _ string) (payroll.PayslipResponse, error) {
	if s.payslipErr != nil {
		return payroll.PayslipResponse{}, s.payslipErr
	}
	return payroll.PayslipResponse{}, nil
}

func newPayrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	handler := NewPayrollHandler(svc)
	r := chi.NewRouter()
	r.Post("/payroll/calculate", handler.Calculate)
	r.Patch("/payroll/{id}/status", handler.SetStatus)
	r.Get("/payroll/{id}/payslip", handler.GetPayslip)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateEndpointCreated(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	rec := postJSON(t, router, "/payroll/calculate", payroll.CalculateRequest{
		EmployeeID: "emp-1", Month: 4, Year: 2024,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCalculateEndpointValidationError(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	rec := postJSON(t, router, "/payroll/calculate", payroll.CalculateRequest{
		EmployeeID: "emp-1", Month: 13, Year: 2024,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "month")
}

func TestCalculateEndpointDuplicateConflict(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{
		calculateErr: payroll.ErrPayrollRecordAlreadyExists,
	})

	rec := postJSON(t, router, "/payroll/calculate", payroll.CalculateRequest{
		EmployeeID: "emp-1", Month: 4, Year: 2024,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCalculateEndpointBadBody(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/payroll/calculate", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStatusEndpointInvalidStatus(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	payload := []byte(`{"status":"archived"}`)
	req := httptest.NewRequest(http.MethodPatch, "/payroll/pr-1/status", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPayslipEndpointNotFound(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{
		payslipErr: payroll.ErrPayrollRecordNotFound,
	})

	req := httptest.NewRequest(http.MethodGet, "/payroll/pr-404/payslip", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
