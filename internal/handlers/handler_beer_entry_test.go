package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mjaros/beertracker/internal/apperrors"
	"github.com/mjaros/beertracker/internal/core/domain"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
	"github.com/mjaros/beertracker/internal/dto"
	"github.com/mjaros/beertracker/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BeerEntryService ---
type MockBeerEntryService struct {
	mock.Mock
}

func (m *MockBeerEntryService) CreateBeerEntry(ctx context.Context, req dto.CreateBeerEntryRequest) (*domain.BeerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerEntry), args.Error(1)
}

func (m *MockBeerEntryService) ListBeerEntries(ctx context.Context) ([]domain.BeerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BeerEntry), args.Error(1)
}

func (m *MockBeerEntryService) DeleteBeerEntry(ctx context.Context, entryID int64) (bool, error) {
	args := m.Called(ctx, entryID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.BeerEntrySvcFacade = (*MockBeerEntryService)(nil)

// --- Test Suite ---
type BeerEntryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBeerEntryService
}

func (suite *BeerEntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockBeerEntryService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{BeerEntry: suite.mockService})
}

func (suite *BeerEntryHandlerTestSuite) performRequest(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BeerEntryHandlerTestSuite) TestCreateBeerEntry_Success() {
	purchaseDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	created := &domain.BeerEntry{
		EntryID:          1,
		BeerName:         "Test Beer",
		OriginalPrice:    decimal.RequireFromString("10.50"),
		OriginalCurrency: domain.CurrencyEUR,
		PurchaseDate:     purchaseDate,
		EURPrice:         decimal.RequireFromString("10.50"),
		USDPrice:         decimal.RequireFromString("11.55"),
		ExchangeRate:     decimal.RequireFromString("1.1"),
		CreatedAt:        time.Now().UTC(),
	}

	suite.mockService.On("CreateBeerEntry", mock.Anything, mock.MatchedBy(func(req dto.CreateBeerEntryRequest) bool {
		return req.BeerName == "Test Beer" &&
			req.OriginalCurrency == "EUR" &&
			req.PurchaseDate == "2023-01-01" &&
			req.OriginalPrice.Equal(decimal.RequireFromString("10.50"))
	})).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entries",
		`{"beerName":"Test Beer","originalPrice":"10.50","originalCurrency":"EUR","purchaseDate":"2023-01-01"}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.BeerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.EntryID)
	suite.Equal("Test Beer", resp.BeerName)
	suite.Equal("EUR", resp.OriginalCurrency)
	suite.Equal("2023-01-01", resp.PurchaseDate)
	suite.True(resp.USDPrice.Equal(decimal.RequireFromString("11.55")))
	suite.False(resp.RateUnavailable)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestCreateBeerEntry_UnknownCurrencyRejectedByBinding() {
	w := suite.performRequest(http.MethodPost, "/api/v1/entries",
		`{"beerName":"Test Beer","originalPrice":"10.50","originalCurrency":"GBP","purchaseDate":"2023-01-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateBeerEntry", mock.Anything, mock.Anything)
}

func (suite *BeerEntryHandlerTestSuite) TestCreateBeerEntry_BadDateFormat() {
	w := suite.performRequest(http.MethodPost, "/api/v1/entries",
		`{"beerName":"Test Beer","originalPrice":"10.50","originalCurrency":"EUR","purchaseDate":"01.01.2023"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateBeerEntry", mock.Anything, mock.Anything)
}

func (suite *BeerEntryHandlerTestSuite) TestCreateBeerEntry_MissingName() {
	w := suite.performRequest(http.MethodPost, "/api/v1/entries",
		`{"originalPrice":"10.50","originalCurrency":"EUR","purchaseDate":"2023-01-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateBeerEntry", mock.Anything, mock.Anything)
}

func (suite *BeerEntryHandlerTestSuite) TestCreateBeerEntry_ServiceFailure() {
	suite.mockService.On("CreateBeerEntry", mock.Anything, mock.AnythingOfType("dto.CreateBeerEntryRequest")).
		Return(nil, apperrors.NewAppError(500, "failed to save beer entry", nil)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entries",
		`{"beerName":"Test Beer","originalPrice":"10.50","originalCurrency":"EUR","purchaseDate":"2023-01-01"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestListBeerEntries_Success() {
	entries := []domain.BeerEntry{
		{
			EntryID:          1,
			BeerName:         "Beer One",
			OriginalPrice:    decimal.RequireFromString("5.00"),
			OriginalCurrency: domain.CurrencyEUR,
			PurchaseDate:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			EURPrice:         decimal.RequireFromString("5.00"),
			USDPrice:         decimal.RequireFromString("5.50"),
			ExchangeRate:     decimal.RequireFromString("1.1"),
		},
		{
			EntryID:          2,
			BeerName:         "Beer Two",
			OriginalPrice:    decimal.RequireFromString("8.00"),
			OriginalCurrency: domain.CurrencyUSD,
			PurchaseDate:     time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			EURPrice:         decimal.RequireFromString("7.20"),
			USDPrice:         decimal.RequireFromString("8.00"),
			ExchangeRate:     decimal.RequireFromString("0.9"),
		},
	}

	suite.mockService.On("ListBeerEntries", mock.Anything).Return(entries, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entries", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.BeerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Beer One", resp[0].BeerName)
	suite.Equal("Beer Two", resp[1].BeerName)
	suite.True(resp[0].USDPrice.Equal(decimal.RequireFromString("5.50")))
	suite.True(resp[1].EURPrice.Equal(decimal.RequireFromString("7.20")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestListBeerEntries_EmptyIsAnArray() {
	suite.mockService.On("ListBeerEntries", mock.Anything).Return([]domain.BeerEntry{}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entries", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", strings.TrimSpace(w.Body.String()))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestDeleteBeerEntry_Success() {
	suite.mockService.On("DeleteBeerEntry", mock.Anything, int64(42)).Return(true, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/entries/42", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestDeleteBeerEntry_NotFound() {
	suite.mockService.On("DeleteBeerEntry", mock.Anything, int64(999)).Return(false, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/entries/999", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BeerEntryHandlerTestSuite) TestDeleteBeerEntry_NonNumericID() {
	w := suite.performRequest(http.MethodDelete, "/api/v1/entries/abc", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteBeerEntry", mock.Anything, mock.Anything)
}

func (suite *BeerEntryHandlerTestSuite) TestHealthCheck() {
	w := suite.performRequest(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestBeerEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerEntryHandlerTestSuite))
}
