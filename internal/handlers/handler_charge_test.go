package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/handlers"
)

// --- Mock ChargeService ---
type MockChargeService struct {
	mock.Mock
}

func (m *MockChargeService) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charge), args.Error(1)
}

func (m *MockChargeService) CreateCharge(ctx context.Context, req dto.CreateChargeRequest) (*domain.Charge, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) UpdateCharge(ctx context.Context, chargeID string, req dto.UpdateChargeRequest) (*domain.Charge, error) {
	args := m.Called(ctx, chargeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) DeleteCharge(ctx context.Context, chargeID string) error {
	args := m.Called(ctx, chargeID)
	return args.Error(0)
}

func (m *MockChargeService) DeclareContribution(ctx context.Context, month domain.MonthKey) (*domain.Charge, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) MarkContributionPaid(ctx context.Context, chargeID string) (*domain.Charge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) ResetPending(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ChargeSvcFacade = (*MockChargeService)(nil)

// --- Test Suite ---
type ChargeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockChargeService *MockChargeService
}

func (suite *ChargeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockChargeService = new(MockChargeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterChargeRoutes(v1, suite.mockChargeService)
}

// --- Test Cases ---

func (suite *ChargeHandlerTestSuite) TestListCharges_Success() {
	expected := []domain.Charge{
		{
			ChargeID:         "c1",
			Type:             domain.ChargeTypeRevenue,
			Amount:           decimal.NewFromInt(100),
			GrossAmount:      decimal.NewFromInt(120),
			VATAmount:        decimal.NewFromInt(20),
			VATRate:          decimal.NewFromInt(20),
			DeclarationMonth: "2025-03",
			Status:           domain.ChargeStatusPending,
		},
	}

	suite.mockChargeService.On("ListCharges", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/charges", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ChargeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("c1", body[0].ChargeID)
	suite.Equal(string(domain.ChargeTypeRevenue), body[0].Type)
	suite.Equal("2025-03", body[0].DeclarationMonth)

	suite.mockChargeService.AssertExpectations(suite.T())
}

func (suite *ChargeHandlerTestSuite) TestListCharges_ServiceError() {
	suite.mockChargeService.On("ListCharges", mock.Anything).Return(nil, apperrors.ErrStorage).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/charges", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *ChargeHandlerTestSuite) TestCreateCharge_Success() {
	dueDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	created := &domain.Charge{
		ChargeID:         "c1",
		Type:             domain.ChargeTypeRevenue,
		Amount:           decimal.NewFromInt(100),
		VATRate:          decimal.NewFromInt(20),
		VATAmount:        decimal.NewFromInt(20),
		GrossAmount:      decimal.NewFromInt(120),
		DueDate:          dueDate,
		DeclarationMonth: "2025-03",
		Status:           domain.ChargeStatusPending,
	}

	suite.mockChargeService.On("CreateCharge", mock.Anything, mock.MatchedBy(func(r dto.CreateChargeRequest) bool {
		return r.GrossAmount.Equal(decimal.NewFromInt(120)) && r.VATRate.Equal(decimal.NewFromInt(20))
	})).Return(created, nil).Once()

	payload := `{"grossAmount":120,"vatRate":20,"dueDate":"2025-03-31T00:00:00Z"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.ChargeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("c1", body.ChargeID)
	suite.True(body.Amount.Equal(decimal.NewFromInt(100)))

	suite.mockChargeService.AssertExpectations(suite.T())
}

func (suite *ChargeHandlerTestSuite) TestCreateCharge_BadPayload() {
	payload := `{"vatRate":20}` // missing grossAmount and dueDate
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockChargeService.AssertNotCalled(suite.T(), "CreateCharge", mock.Anything, mock.Anything)
}

func (suite *ChargeHandlerTestSuite) TestCreateCharge_ValidationError() {
	suite.mockChargeService.On("CreateCharge", mock.Anything, mock.AnythingOfType("dto.CreateChargeRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	payload := `{"grossAmount":120,"vatRate":13,"dueDate":"2025-03-31T00:00:00Z"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChargeHandlerTestSuite) TestDeclareContribution_Success() {
	created := &domain.Charge{
		ChargeID:    "u1",
		Type:        domain.ChargeTypeContribution,
		Amount:      decimal.RequireFromString("231"),
		GrossAmount: decimal.RequireFromString("231"),
		Status:      domain.ChargeStatusPending,
	}

	suite.mockChargeService.On("DeclareContribution", mock.Anything, domain.MonthKey("2025-03")).
		Return(created, nil).Once()

	payload := `{"month":"2025-03"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/contributions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.ChargeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(string(domain.ChargeTypeContribution), body.Type)
	suite.mockChargeService.AssertExpectations(suite.T())
}

func (suite *ChargeHandlerTestSuite) TestDeclareContribution_InvalidMonth() {
	payload := `{"month":"march-2025"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/contributions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockChargeService.AssertNotCalled(suite.T(), "DeclareContribution", mock.Anything, mock.Anything)
}

func (suite *ChargeHandlerTestSuite) TestDeclareContribution_NoPendingRevenue() {
	suite.mockChargeService.On("DeclareContribution", mock.Anything, domain.MonthKey("2025-03")).
		Return(nil, apperrors.ErrNoPendingRevenue).Once()

	payload := `{"month":"2025-03"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/contributions", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChargeHandlerTestSuite) TestUpdateCharge_NotFound() {
	suite.mockChargeService.On("UpdateCharge", mock.Anything, "missing", mock.AnythingOfType("dto.UpdateChargeRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	payload := `{"grossAmount":240}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/charges/missing", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ChargeHandlerTestSuite) TestDeleteCharge_Success() {
	suite.mockChargeService.On("DeleteCharge", mock.Anything, "c1").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/charges/c1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockChargeService.AssertExpectations(suite.T())
}

func (suite *ChargeHandlerTestSuite) TestMarkPaid_Success() {
	paidAt := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	paid := &domain.Charge{
		ChargeID:    "u1",
		Type:        domain.ChargeTypeContribution,
		Amount:      decimal.RequireFromString("231"),
		GrossAmount: decimal.RequireFromString("231"),
		Status:      domain.ChargeStatusPaid,
		PaymentDate: &paidAt,
	}

	suite.mockChargeService.On("MarkContributionPaid", mock.Anything, "u1").Return(paid, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/u1/pay", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ChargeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(string(domain.ChargeStatusPaid), body.Status)
	suite.Require().NotNil(body.PaymentDate)
	suite.True(body.PaymentDate.Equal(paidAt))
}

func (suite *ChargeHandlerTestSuite) TestMarkPaid_RevenueRejected() {
	suite.mockChargeService.On("MarkContributionPaid", mock.Anything, "r1").
		Return(nil, apperrors.ErrValidation).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/r1/pay", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChargeHandlerTestSuite) TestResetPending_Success() {
	suite.mockChargeService.On("ResetPending", mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/charges/reset", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockChargeService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestChargeHandler(t *testing.T) {
	suite.Run(t, new(ChargeHandlerTestSuite))
}
