package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/handlers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	handlerSuite
	mockTransactionService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.resetRouter()
	suite.mockTransactionService = new(MockTransactionService)
	handlers.RegisterTransactionRoutes(suite.v1, suite.mockTransactionService, nil)
}

func validTransactionBody() map[string]any {
	return map[string]any{
		"document_number":  "F-1001",
		"document_type_id": 1,
		"transaction_date": "2024-03-15",
		"amount_net":       "100.00",
		"tax_amount":       "19.00",
		"tax_rate_id":      1,
		"amount_total":     "119.00",
		"category_id":      3,
		"vendor_id":        4,
		"status_id":        1,
		"type":             "expense",
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := "42"
	created := &domain.Transaction{
		ID:              uuid.NewString(),
		DocumentNumber:  "F-1001",
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		AmountTotal:     decimal.RequireFromString("119.00"),
		UserID:          userID,
		Type:            domain.TypeExpense,
	}

	suite.mockTransactionService.On("CreateTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(t domain.Transaction) bool {
			return t.DocumentNumber == "F-1001" &&
				t.Type == domain.TypeExpense &&
				t.TransactionDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) &&
				t.AmountTotal.Equal(decimal.RequireFromString("119")) &&
				t.TaxRateID != nil && *t.TaxRateID == 1 &&
				t.CompanyID == nil
		}),
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", userID, validTransactionBody())

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	env := suite.decode(w)
	var got domain.Transaction
	suite.Require().NoError(json.Unmarshal(env.Data, &got))
	suite.Equal(created.ID, got.ID)
	suite.True(got.AmountTotal.Equal(created.AmountTotal))
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFailed() {
	body := validTransactionBody()
	delete(body, "document_number")
	body["type"] = "transfer"
	body["amount_total"] = "-1"

	w := suite.do(http.MethodPost, "/api/v1/transactions", "42", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decode(w)
	suite.Equal("invalid_input", env.Error.Kind)
	suite.Equal("validation failed", env.Error.Message)
	suite.ElementsMatch([]string{"document_number", "amount_total", "type"}, suite.fieldNames(env))
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/transactions", "42", `{"document_number":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decode(w)
	suite.Equal("invalid_input", env.Error.Kind)
	suite.Contains(env.Error.Message, "invalid request")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ServiceErrorsMapToStatus() {
	cases := []struct {
		name    string
		err     error
		status  int
		kind    string
		message string
	}{
		{"duplicate", apperrors.NewConflictError("a transaction with document number F-1001 already exists"), http.StatusConflict, "conflict", "a transaction with document number F-1001 already exists"},
		{"mismatch", apperrors.NewValidationError("category is not valid for expense transactions"), http.StatusBadRequest, "invalid_input", "category is not valid for expense transactions"},
		{"foreign company", apperrors.NewForbiddenError("you do not have access to this company"), http.StatusForbidden, "forbidden", "you do not have access to this company"},
		{"missing category", apperrors.NewNotFoundError("category not found"), http.StatusNotFound, "not_found", "category not found"},
		{"storage", errors.New("connection refused"), http.StatusInternalServerError, "internal", "internal server error"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockTransactionService.On("CreateTransaction", mock.Anything, "42", mock.Anything).
				Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/transactions", "42", validTransactionBody())

			suite.Equal(tc.status, w.Code)
			env := suite.decode(w)
			suite.Equal(tc.kind, env.Error.Kind)
			suite.Equal(tc.message, env.Error.Message)
		})
	}
}

func (suite *TransactionHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.do(http.MethodGet, "/api/v1/transactions", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	env := suite.decode(w)
	suite.Equal("unauthenticated", env.Error.Kind)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FiltersAndPagination() {
	userID := "42"
	page := &domain.TransactionPage{
		Data: []domain.TransactionListItem{{
			Transaction:   domain.Transaction{ID: uuid.NewString(), Type: domain.TypeIncome},
			PaymentsCount: 1,
			Settlement:    domain.SettlementPartial,
		}},
		Pagination: domain.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2, HasPrev: true},
	}

	suite.mockTransactionService.On("ListTransactions",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Type != nil && *f.Type == domain.TypeIncome &&
				f.CategoryID != nil && *f.CategoryID == 3 &&
				f.StartDate != nil && f.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.DocumentNumber != nil && *f.DocumentNumber == "F-10"
		}),
		domain.PageRequest{Page: 2, Limit: 10},
	).Return(page, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/transactions?type=income&categoryId=3&startDate=2024-01-01&documentNumber=F-10&page=2&limit=10",
		userID, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	env := suite.decode(w)
	var items []domain.TransactionListItem
	suite.Require().NoError(json.Unmarshal(env.Data, &items))
	suite.Len(items, 1)
	suite.Equal(domain.SettlementPartial, items[0].Settlement)
	var meta domain.Pagination
	suite.Require().NoError(json.Unmarshal(env.Pagination, &meta))
	suite.Equal(11, meta.Total)
	suite.True(meta.HasPrev)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?startDate=15-03-2024", "42", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestGetSummary() {
	summary := &domain.TransactionSummary{
		TotalIncome:  decimal.NewFromInt(500),
		TotalExpense: decimal.NewFromInt(200),
		NetBalance:   decimal.NewFromInt(300),
	}
	suite.mockTransactionService.On("GetSummary", mock.AnythingOfType("*context.valueCtx"), "42", domain.SummaryFilter{}).
		Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/summary", "42", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	env := suite.decode(w)
	var got domain.TransactionSummary
	suite.Require().NoError(json.Unmarshal(env.Data, &got))
	suite.True(got.NetBalance.Equal(decimal.NewFromInt(300)))
	suite.mockTransactionService.AssertNotCalled(suite.T(), "GetTransaction")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_ForeignIsNotFound() {
	id := uuid.NewString()
	suite.mockTransactionService.On("GetTransaction", mock.Anything, "42", id).
		Return(nil, apperrors.NewNotFoundError("transaction not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/"+id, "42", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("not_found", suite.decode(w).Error.Kind)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_PassesOnlyGivenFields() {
	id := uuid.NewString()
	suite.mockTransactionService.On("UpdateTransaction", mock.Anything, "42", id,
		mock.MatchedBy(func(p domain.TransactionPatch) bool {
			return p.StatusID != nil && *p.StatusID == 2 && p.AmountTotal == nil && p.DocumentNumber == nil
		}),
	).Return(&domain.Transaction{ID: id, StatusID: 2}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/"+id, "42", map[string]any{"status_id": 2})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	id := uuid.NewString()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, "42", id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/"+id, "42", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
