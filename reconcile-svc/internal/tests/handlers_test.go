package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httpapi "tandoor-ordering/reconcile-svc/internal/api/http"
	"tandoor-ordering/reconcile-svc/internal/domain"
	"tandoor-ordering/reconcile-svc/internal/mocks"
)

func setupTestRouter(t *testing.T) (*mux.Router, *mocks.ReconcilerInterface) {
	reconciler := mocks.NewReconcilerInterface(t)
	r := mux.NewRouter()
	httpapi.NewHandler(reconciler, zap.NewNop()).RegisterRoutes(r)
	return r, reconciler
}

func TestListReconciliationsHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMocks func(m *mocks.ReconcilerInterface)
		wantCode     int
		wantLen      int
	}{
		{
			name:  "open",
			query: "?status=open",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("List", mock.Anything, domain.StatusOpen).Return([]domain.Reconciliation{
					{ID: 7, OrderID: "42", Total: decimal.RequireFromString("32.01"), Status: domain.StatusOpen},
				}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantLen:  1,
		},
		{
			name: "all",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("List", mock.Anything, domain.Status("")).Return([]domain.Reconciliation{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "invalid_status",
			query: "?status=pending",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("List", mock.Anything, domain.Status("pending")).Return(nil, domain.ErrInvalidStatus).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "database_error",
			query: "?status=open",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("List", mock.Anything, domain.StatusOpen).Return(nil, errors.New("connection refused")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, reconciler := setupTestRouter(t)
			testCase.prepareMocks(reconciler)

			req := httptest.NewRequest("GET", "/api/reconciliations"+testCase.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var recs []map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
				assert.Len(t, recs, testCase.wantLen)
				if testCase.wantLen > 0 {
					assert.Equal(t, "32.01", recs[0]["total"])
				}
			}
		})
	}
}

func TestResolveReconciliationHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		prepareMocks func(m *mocks.ReconcilerInterface)
		wantCode     int
	}{
		{
			name: "resolved",
			id:   "7",
			body: `{"note":"confirmed in CRM"}`,
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("Resolve", mock.Anything, int64(7), "confirmed in CRM").
					Return(&domain.Reconciliation{ID: 7, Status: domain.StatusResolved}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "no_body",
			id:   "7",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("Resolve", mock.Anything, int64(7), "").
					Return(&domain.Reconciliation{ID: 7, Status: domain.StatusResolved}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "invalid_id",
			id:           "abc",
			prepareMocks: func(m *mocks.ReconcilerInterface) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "invalid_json",
			id:           "7",
			body:         `{invalid}`,
			prepareMocks: func(m *mocks.ReconcilerInterface) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name: "not_found",
			id:   "99",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("Resolve", mock.Anything, int64(99), "").Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already_resolved",
			id:   "7",
			prepareMocks: func(m *mocks.ReconcilerInterface) {
				m.On("Resolve", mock.Anything, int64(7), "").Return(nil, domain.ErrAlreadyResolved).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, reconciler := setupTestRouter(t)
			testCase.prepareMocks(reconciler)

			req := httptest.NewRequest("POST", "/api/reconciliations/"+testCase.id+"/resolve", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}
