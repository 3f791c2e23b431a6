package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/api"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/services"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
	"github.com/babylonlabs-io/staking-reward-ledger/tests/mocks"
)

func newRouter(t *testing.T) (http.Handler, *mocks.LedgerService) {
	t.Helper()
	metrics.Init("")

	service := mocks.NewLedgerService(t)
	return api.NewRouter(api.NewHandler(service)), service
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var resp api.Response[T]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestDeposit(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(7)).Once()
		service.On("Deposit", mock.Anything, "alice", mock.MatchedBy(func(a sdkmath.Uint) bool {
			return a.Equal(sdkmath.NewUint(250))
		}), ledger.Ordinal(7)).Return(nil).Once()

		rec := do(t, router, http.MethodPost, "/v1/participants/alice/deposit", `{"amount":"250"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		data := decodeData[api.OperationResponse](t, rec)
		assert.Equal(t, api.OperationResponse{ParticipantID: "alice", Amount: "250", Ordinal: 7}, data)
	})

	badRequests := []struct {
		name string
		path string
		body string
		code types.ErrorCode
	}{
		{"invalid participant", "/v1/participants/al%20ice/deposit", `{"amount":"1"}`, types.ValidationError},
		{"malformed body", "/v1/participants/alice/deposit", `{"amount":`, types.BadRequest},
		{"unknown field", "/v1/participants/alice/deposit", `{"amount":"1","memo":"x"}`, types.BadRequest},
		{"missing amount", "/v1/participants/alice/deposit", `{}`, types.InvalidAmount},
		{"negative amount", "/v1/participants/alice/deposit", `{"amount":"-5"}`, types.InvalidAmount},
		{"not a number", "/v1/participants/alice/deposit", `{"amount":"ten"}`, types.InvalidAmount},
	}
	for _, tc := range badRequests {
		t.Run(tc.name, func(t *testing.T) {
			// the service must not be reached
			router, _ := newRouter(t)

			rec := do(t, router, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.code.String(), decodeError(t, rec).ErrorCode)
		})
	}
}

func TestServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		code       types.ErrorCode
		hideDetail bool
	}{
		{
			name:   "zero amount",
			err:    types.NewError(http.StatusBadRequest, types.InvalidAmount, ledger.ErrInvalidAmount),
			status: http.StatusBadRequest,
			code:   types.InvalidAmount,
		},
		{
			name:   "time went backwards",
			err:    types.NewError(http.StatusConflict, types.InvalidOrdinal, ledger.ErrInvalidOrdinal),
			status: http.StatusConflict,
			code:   types.InvalidOrdinal,
		},
		{
			name:   "custody failure",
			err:    types.NewError(http.StatusBadGateway, types.TransferFailure, errors.New("custody unreachable")),
			status: http.StatusBadGateway,
			code:   types.TransferFailure,
		},
		{
			name:       "plain error",
			err:        errors.New("mongo: connection reset"),
			status:     http.StatusInternalServerError,
			code:       types.InternalServiceError,
			hideDetail: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, service := newRouter(t)
			service.On("Now").Return(ledger.Ordinal(3)).Once()
			service.On("Deposit", mock.Anything, "alice", mock.Anything, ledger.Ordinal(3)).Return(tc.err).Once()

			rec := do(t, router, http.MethodPost, "/v1/participants/alice/deposit", `{"amount":"1"}`)
			assert.Equal(t, tc.status, rec.Code)

			resp := decodeError(t, rec)
			assert.Equal(t, tc.code.String(), resp.ErrorCode)
			if tc.hideDetail {
				assert.NotContains(t, resp.Message, "mongo")
			} else {
				assert.Equal(t, tc.err.Error(), resp.Message)
			}
		})
	}
}

func TestWithdrawAndClaim(t *testing.T) {
	t.Run("withdraw reports the withdrawn amount", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(12)).Once()
		service.On("Withdraw", mock.Anything, "bob", ledger.Ordinal(12)).Return(sdkmath.NewUint(100), nil).Once()

		rec := do(t, router, http.MethodPost, "/v1/participants/bob/withdraw", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, api.OperationResponse{ParticipantID: "bob", Amount: "100", Ordinal: 12}, decodeData[api.OperationResponse](t, rec))
	})

	t.Run("withdraw without stake", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(12)).Once()
		service.On("Withdraw", mock.Anything, "bob", ledger.Ordinal(12)).
			Return(sdkmath.Uint{}, types.NewError(http.StatusConflict, types.NoStake, ledger.ErrNoStake)).Once()

		rec := do(t, router, http.MethodPost, "/v1/participants/bob/withdraw", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, types.NoStake.String(), decodeError(t, rec).ErrorCode)
	})

	t.Run("claim pays out", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(10)).Once()
		service.On("Claim", mock.Anything, "alice", ledger.Ordinal(10)).Return(sdkmath.NewUint(70), nil).Once()

		rec := do(t, router, http.MethodPost, "/v1/participants/alice/claim", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "70", decodeData[api.OperationResponse](t, rec).Amount)
	})

	t.Run("nothing to claim", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(10)).Once()
		service.On("Claim", mock.Anything, "alice", ledger.Ordinal(10)).
			Return(sdkmath.Uint{}, types.NewError(http.StatusConflict, types.NoClaimable, ledger.ErrNoClaimable)).Once()

		rec := do(t, router, http.MethodPost, "/v1/participants/alice/claim", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, types.NoClaimable.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestReadEndpoints(t *testing.T) {
	t.Run("claimable", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Now").Return(ledger.Ordinal(10)).Once()
		service.On("Claimable", "carol", ledger.Ordinal(10)).Return(sdkmath.ZeroUint()).Once()

		rec := do(t, router, http.MethodGet, "/v1/participants/carol/claimable", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, api.ClaimableResponse{ParticipantID: "carol", Claimable: "0", Ordinal: 10}, decodeData[api.ClaimableResponse](t, rec))
	})

	t.Run("history", func(t *testing.T) {
		router, service := newRouter(t)
		checkpoint := ledger.Ordinal(10)
		service.On("History", "alice").Return(&services.ParticipantHistory{
			Events: []ledger.StakeEvent{
				{Time: 0, Amount: sdkmath.NewUint(100)},
				{Time: 12, Amount: sdkmath.ZeroUint()},
			},
			ClaimCheckpoint: &checkpoint,
			TotalClaimed:    sdkmath.NewUint(70),
		}, true).Once()

		rec := do(t, router, http.MethodGet, "/v1/participants/alice/history", "")
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeData[api.HistoryResponse](t, rec)
		assert.Equal(t, []api.StakeEventPublic{{Ordinal: 0, Amount: "100"}, {Ordinal: 12, Amount: "0"}}, data.Events)
		require.NotNil(t, data.ClaimCheckpoint)
		assert.Equal(t, checkpoint, *data.ClaimCheckpoint)
		assert.Equal(t, "70", data.TotalClaimed)
	})

	t.Run("history of unknown participant", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("History", "nobody").Return(&services.ParticipantHistory{
			Events:       []ledger.StakeEvent{},
			TotalClaimed: sdkmath.ZeroUint(),
		}, false).Once()

		rec := do(t, router, http.MethodGet, "/v1/participants/nobody/history", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"events":[]`)
		assert.NotContains(t, rec.Body.String(), "claim_checkpoint")
	})

	t.Run("stats", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("OverallStats", mock.Anything).Return(&services.OverallStats{
			Ordinal:            20,
			TotalStaked:        sdkmath.NewUint(100),
			Participants:       2,
			ActiveParticipants: 1,
			PendingRewards:     sdkmath.NewUint(120),
			TotalClaimed:       sdkmath.NewUint(70),
		}, nil).Once()

		rec := do(t, router, http.MethodGet, "/v1/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, api.StatsResponse{
			Ordinal:            20,
			TotalStaked:        "100",
			Participants:       2,
			ActiveParticipants: 1,
			PendingRewards:     "120",
			TotalClaimed:       "70",
		}, decodeData[api.StatsResponse](t, rec))
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Ping", mock.Anything).Return(nil).Once()

		rec := do(t, router, http.MethodGet, "/healthcheck", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decodeData[string](t, rec))
	})

	t.Run("store down", func(t *testing.T) {
		router, service := newRouter(t)
		service.On("Ping", mock.Anything).Return(fmt.Errorf("dial tcp: connection refused")).Once()

		rec := do(t, router, http.MethodGet, "/healthcheck", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, types.ServiceUnavailable.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, http.MethodGet, "/v1/participants/alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/participants/alice/deposit", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
