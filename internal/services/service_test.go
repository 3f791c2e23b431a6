package services_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/clients/custody"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/memdb"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/queue"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/services"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
	"github.com/babylonlabs-io/staking-reward-ledger/tests/mocks"
)

type fixedClock struct {
	now ledger.Ordinal
}

func (c *fixedClock) Now() ledger.Ordinal {
	return c.now
}

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			RewardRate:   "10",
			TickInterval: time.Second,
		},
		Poller: config.PollerConfig{
			StatsPollingInterval: time.Minute,
			StatsWorkers:         2,
		},
	}
}

func newService(t *testing.T, database db.DbInterface, c custody.Custody, clk *fixedClock) (*services.Service, *mocks.Publisher) {
	t.Helper()
	metrics.Init("")

	publisher := mocks.NewPublisher(t)
	return services.NewService(testConfig(), database, c, publisher, clk), publisher
}

func uint64Amount(v uint64) sdkmath.Uint {
	return sdkmath.NewUint(v)
}

func amountOf(v uint64) interface{} {
	return mock.MatchedBy(func(a sdkmath.Uint) bool {
		return a.Equal(sdkmath.NewUint(v))
	})
}

func eventOf(eventType types.EventType, participant string, amount uint64, ordinal uint64) interface{} {
	return mock.MatchedBy(func(ev *queue.LedgerEvent) bool {
		return ev.EventType == eventType &&
			ev.ParticipantID == participant &&
			ev.Amount == sdkmath.NewUint(amount).String() &&
			ev.Ordinal == ordinal
	})
}

func TestLedgerOperations(t *testing.T) {
	ctx := t.Context()
	database := memdb.New()
	vault := custody.NewVault(sdkmath.ZeroUint())
	service, publisher := newService(t, database, vault, &fixedClock{})

	publisher.On("Publish", mock.Anything, eventOf(types.EventDeposit, "alice", 100, 0)).Return(nil).Once()
	publisher.On("Publish", mock.Anything, eventOf(types.EventDeposit, "bob", 100, 4)).Return(nil).Once()
	publisher.On("Publish", mock.Anything, eventOf(types.EventClaim, "alice", 70, 10)).Return(nil).Once()
	publisher.On("Publish", mock.Anything, eventOf(types.EventWithdraw, "bob", 100, 12)).Return(nil).Once()

	require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(100), 0))
	require.NoError(t, service.Deposit(ctx, "bob", uint64Amount(100), 4))

	// alice: 4 ticks alone (40) then 6 ticks at half (30)
	assert.Equal(t, "70", service.Claimable("alice", 10).String())
	assert.Equal(t, "30", service.Claimable("bob", 10).String())
	assert.Equal(t, "0", service.Claimable("carol", 10).String())

	claimed, err := service.Claim(ctx, "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, "70", claimed.String())
	assert.True(t, service.Claimable("alice", 10).IsZero())
	assert.Equal(t, "130", vault.Balance().String(), "200 deposited minus 70 claimed")

	withdrawn, err := service.Withdraw(ctx, "bob", 12)
	require.NoError(t, err)
	assert.Equal(t, "100", withdrawn.String())
	assert.Equal(t, "40", service.Claimable("bob", 20).String(), "rewards accrued before withdrawal are kept")
	assert.Equal(t, "10", service.Claimable("alice", 12).String())
	assert.Equal(t, "30", vault.Balance().String())

	history, found := service.History("alice")
	require.True(t, found)
	require.Len(t, history.Events, 1)
	require.NotNil(t, history.ClaimCheckpoint)
	assert.Equal(t, ledger.Ordinal(10), *history.ClaimCheckpoint)
	assert.Equal(t, "70", history.TotalClaimed.String())

	history, found = service.History("bob")
	require.True(t, found)
	require.Len(t, history.Events, 2)
	assert.True(t, history.Events[1].Amount.IsZero())
	assert.Nil(t, history.ClaimCheckpoint)

	history, found = service.History("carol")
	assert.False(t, found)
	assert.Empty(t, history.Events)

	entries, err := database.GetLedgerEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "withdraw", entries[2].Kind)
	assert.Equal(t, "100", entries[2].NewTotal)

	claim, err := database.GetClaim(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), claim.Checkpoint)
	assert.Equal(t, "70", claim.TotalClaimed)
}

func TestRejectedOperations(t *testing.T) {
	ctx := t.Context()
	database := memdb.New()
	custodyMock := mocks.NewCustody(t)
	service, publisher := newService(t, database, custodyMock, &fixedClock{})

	custodyMock.On("TransferIn", mock.Anything, "alice", mock.Anything).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(10), 5))

	cases := []struct {
		name       string
		op         func() error
		sentinel   error
		code       types.ErrorCode
		statusCode int
	}{
		{
			name:       "zero deposit",
			op:         func() error { return service.Deposit(ctx, "alice", sdkmath.ZeroUint(), 6) },
			sentinel:   ledger.ErrInvalidAmount,
			code:       types.InvalidAmount,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "deposit before last change",
			op:         func() error { return service.Deposit(ctx, "alice", uint64Amount(1), 4) },
			sentinel:   ledger.ErrInvalidOrdinal,
			code:       types.InvalidOrdinal,
			statusCode: http.StatusConflict,
		},
		{
			name: "withdraw without stake",
			op: func() error {
				_, err := service.Withdraw(ctx, "bob", 6)
				return err
			},
			sentinel:   ledger.ErrNoStake,
			code:       types.NoStake,
			statusCode: http.StatusConflict,
		},
		{
			name: "claim without reward",
			op: func() error {
				_, err := service.Claim(ctx, "alice", 5)
				return err
			},
			sentinel:   ledger.ErrNoClaimable,
			code:       types.NoClaimable,
			statusCode: http.StatusConflict,
		},
		{
			name: "claim by unknown participant",
			op: func() error {
				_, err := service.Claim(ctx, "bob", 9)
				return err
			},
			sentinel:   ledger.ErrNoClaimable,
			code:       types.NoClaimable,
			statusCode: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			require.ErrorIs(t, err, tc.sentinel)

			var apiErr *types.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.code, apiErr.ErrorCode)
			assert.Equal(t, tc.statusCode, apiErr.StatusCode)

			entries, err := database.GetLedgerEntries(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, entries, 1)

			history, _ := service.History("alice")
			assert.Len(t, history.Events, 1)
		})
	}
}

func TestTransferDeclined(t *testing.T) {
	ctx := t.Context()
	database := memdb.New()
	custodyMock := mocks.NewCustody(t)
	service, _ := newService(t, database, custodyMock, &fixedClock{})

	custodyMock.On("TransferIn", mock.Anything, "alice", mock.Anything).
		Return(custody.ErrTransferDeclined).Once()

	err := service.Deposit(ctx, "alice", uint64Amount(10), 1)
	require.ErrorIs(t, err, custody.ErrTransferDeclined)
	assert.Equal(t, types.TransferFailure, types.CodeOf(err))

	_, found := service.History("alice")
	assert.False(t, found)
	entries, err := database.GetLedgerEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalFailureCompensates(t *testing.T) {
	ctx := t.Context()

	t.Run("deposit", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		custodyMock := mocks.NewCustody(t)
		service, _ := newService(t, dbMock, custodyMock, &fixedClock{})

		dbMock.On("SaveLedgerEntry", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		custodyMock.On("TransferIn", mock.Anything, "alice", amountOf(10)).Return(nil).Once()
		custodyMock.On("TransferOut", mock.Anything, "alice", amountOf(10)).Return(nil).Once()

		err := service.Deposit(ctx, "alice", uint64Amount(10), 1)
		require.Error(t, err)
		assert.Equal(t, types.InternalServiceError, types.CodeOf(err))

		_, found := service.History("alice")
		assert.False(t, found)
		assert.True(t, service.Claimable("alice", 100).IsZero())
	})
	t.Run("claim", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		custodyMock := mocks.NewCustody(t)
		service, publisher := newService(t, dbMock, custodyMock, &fixedClock{})

		dbMock.On("SaveLedgerEntry", mock.Anything, mock.Anything).Return(nil).Once()
		custodyMock.On("TransferIn", mock.Anything, "alice", amountOf(10)).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
		require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(10), 0))

		custodyMock.On("TransferOut", mock.Anything, "alice", amountOf(50)).Return(nil).Once()
		dbMock.On("SaveClaim", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
		custodyMock.On("TransferIn", mock.Anything, "alice", amountOf(50)).Return(nil).Once()

		_, err := service.Claim(ctx, "alice", 5)
		require.Error(t, err)

		history, _ := service.History("alice")
		assert.Nil(t, history.ClaimCheckpoint)
		assert.Equal(t, "50", service.Claimable("alice", 5).String())
	})
}

func TestPublishFailureKeepsOperation(t *testing.T) {
	ctx := t.Context()
	service, publisher := newService(t, memdb.New(), custody.NewVault(sdkmath.ZeroUint()), &fixedClock{})

	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(10), 0))

	history, found := service.History("alice")
	require.True(t, found)
	assert.Len(t, history.Events, 1)
}

func TestBootstrap(t *testing.T) {
	ctx := t.Context()

	t.Run("replays journal and claims", func(t *testing.T) {
		database := memdb.New()
		vault := custody.NewVault(uint64Amount(1000))
		service, publisher := newService(t, database, vault, &fixedClock{})
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(30), 0))
		require.NoError(t, service.Deposit(ctx, "bob", uint64Amount(10), 2))
		_, err := service.Claim(ctx, "alice", 6)
		require.NoError(t, err)
		require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(10), 8))
		_, err = service.Withdraw(ctx, "bob", 9)
		require.NoError(t, err)

		restarted, _ := newService(t, database, vault, &fixedClock{})
		require.NoError(t, restarted.Bootstrap(ctx))

		for _, participant := range []string{"alice", "bob"} {
			for _, now := range []ledger.Ordinal{6, 9, 15} {
				assert.Equal(t,
					service.Claimable(participant, now).String(),
					restarted.Claimable(participant, now).String(),
					"%s at %d", participant, now,
				)
			}
			before, _ := service.History(participant)
			after, _ := restarted.History(participant)
			assert.Equal(t, len(before.Events), len(after.Events))
			assert.Equal(t, before.ClaimCheckpoint, after.ClaimCheckpoint)
			assert.Equal(t, before.TotalClaimed.String(), after.TotalClaimed.String())
		}
	})
	t.Run("sequence gap", func(t *testing.T) {
		database := memdb.New()
		for _, seq := range []uint64{1, 3} {
			require.NoError(t, database.SaveLedgerEntry(ctx, &model.LedgerEntryDocument{
				Seq:           seq,
				ParticipantID: "alice",
				Kind:          "deposit",
				Ordinal:       seq,
				Delta:         "1",
				NewStake:      "1",
				NewTotal:      "1",
			}))
		}

		service, _ := newService(t, database, custody.NewVault(sdkmath.ZeroUint()), &fixedClock{})
		err := service.Bootstrap(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger entry 3")
	})
	t.Run("store failure", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetLedgerEntries", mock.Anything, uint64(0)).Return(nil, errors.New("unreachable")).Once()

		service, _ := newService(t, dbMock, custody.NewVault(sdkmath.ZeroUint()), &fixedClock{})
		require.Error(t, service.Bootstrap(ctx))
	})
}

func TestStats(t *testing.T) {
	ctx := t.Context()
	database := memdb.New()
	clk := &fixedClock{}
	service, publisher := newService(t, database, custody.NewVault(sdkmath.ZeroUint()), clk)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, service.Deposit(ctx, "alice", uint64Amount(100), 0))
	require.NoError(t, service.Deposit(ctx, "bob", uint64Amount(100), 4))
	require.NoError(t, service.Deposit(ctx, "carol", uint64Amount(50), 4))
	_, err := service.Withdraw(ctx, "carol", 6)
	require.NoError(t, err)
	_, err = service.Claim(ctx, "bob", 8)
	require.NoError(t, err)

	stats := service.Stats(10)
	assert.Equal(t, uint64(3), stats.Participants)
	assert.Equal(t, uint64(2), stats.ActiveParticipants)
	assert.Equal(t, "200", stats.TotalStaked.String())

	expectedPending := sdkmath.ZeroUint()
	for _, p := range []string{"alice", "bob", "carol"} {
		expectedPending = expectedPending.Add(service.Claimable(p, 10))
	}
	assert.Equal(t, expectedPending.String(), stats.PendingRewards.String())
	history, _ := service.History("bob")
	assert.Equal(t, history.TotalClaimed.String(), stats.TotalClaimed.String())

	// nothing stored yet, computed on the fly at the clock's tick
	clk.now = 10
	live, err := service.OverallStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.PendingRewards.String(), live.PendingRewards.String())

	clk.now = 12
	require.NoError(t, service.CalculateAndUpdateStats(ctx))
	stored, err := database.GetOverallStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), stored.Ordinal)
	assert.Equal(t, "200", stored.TotalStaked)

	fromStore, err := service.OverallStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger.Ordinal(12), fromStore.Ordinal)
	assert.Equal(t, service.Stats(12).PendingRewards.String(), fromStore.PendingRewards.String())
}
