package vipservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI, *MockLedger, *MockRollovers) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	ledger := NewMockLedger(ctrl)
	rollovers := NewMockRollovers(ctrl)

	rewards, err := ParseRewards(map[string]string{"2": "10", "4": "50"})
	require.NoError(t, err)
	return New("http://vip", client, ledger, rollovers, rewards, "USD"), client, ledger, rollovers
}

func TestService_AccrueExp(t *testing.T) {
	service, client, _, _ := NewMock(t)
	order := domain.Order{ID: 7, UserID: 1, Currency: "USD", Amount: decimal.NewFromInt(25), Status: domain.OrderStatusCompleted}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		anyError      bool
	}{
		{
			name: "Accepted",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), "http://vip/api/vip/exp", gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ http.Header, body []byte) (int, []byte, error) {
						var req ExpRequest
						require.NoError(t, json.Unmarshal(body, &req))
						assert.Equal(t, int64(7), req.OrderID)
						assert.Equal(t, "25", req.Amount.String())
						return http.StatusAccepted, nil, nil
					})
			},
		},
		{
			name: "Already accrued",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusConflict, nil, nil)
			},
			expectedError: domain.ErrDuplicateEvent,
		},
		{
			name: "Rejected order is permanent",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadRequest, nil, nil)
			},
			expectedError: domain.ErrInvalidEvent,
		},
		{
			name: "Server error is retryable",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil)
			},
			anyError: true,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused"))
			},
			anyError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.AccrueExp(context.Background(), order)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.anyError:
				assert.Error(t, err)
				assert.False(t, domain.Permanent(err))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_AccrueExp_SkipsCancelled(t *testing.T) {
	service, _, _, _ := NewMock(t)
	order := domain.Order{ID: 7, UserID: 1, Amount: decimal.NewFromInt(25), Status: domain.OrderStatusCancelled}
	assert.NoError(t, service.AccrueExp(context.Background(), order))
}

func TestService_OnLevelUpgraded(t *testing.T) {
	service, _, ledger, rollovers := NewMock(t)

	tests := []struct {
		name          string
		upgrade       domain.VipUpgrade
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Rewards every passed level",
			upgrade: domain.VipUpgrade{UserID: 1, OldLevel: 1, NewLevel: 4},
			prepareMock: func() {
				gomock.InOrder(
					ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error) {
							assert.Equal(t, domain.TransactionVipReward, req.Type)
							assert.Equal(t, "vip:1:2", req.RelatedEntityID)
							assert.Equal(t, "10", req.Amount.String())
							return &domain.Balance{}, &domain.Transaction{}, nil
						}),
					rollovers.EXPECT().OnDeposit(gomock.Any(), int64(1), "USD", gomock.Any(), domain.RolloverSourceVipReward, "vip:1:2").Return(nil),
					ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, req domain.LedgerRequest) (*domain.Balance, *domain.Transaction, error) {
							assert.Equal(t, "50", req.Amount.String())
							return &domain.Balance{}, &domain.Transaction{}, nil
						}),
					rollovers.EXPECT().OnDeposit(gomock.Any(), int64(1), "USD", gomock.Any(), domain.RolloverSourceVipReward, "vip:1:4").Return(nil),
				)
			},
		},
		{
			name:    "Redelivered upgrade still opens rollover",
			upgrade: domain.VipUpgrade{UserID: 1, OldLevel: 1, NewLevel: 2},
			prepareMock: func() {
				ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, nil, domain.ErrDuplicateEvent)
				rollovers.EXPECT().OnDeposit(gomock.Any(), int64(1), "USD", gomock.Any(), domain.RolloverSourceVipReward, "vip:1:2").Return(nil)
			},
		},
		{
			name:        "Level without reward",
			upgrade:     domain.VipUpgrade{UserID: 1, OldLevel: 2, NewLevel: 3},
			prepareMock: func() {},
		},
		{
			name:          "Downgrade is invalid",
			upgrade:       domain.VipUpgrade{UserID: 1, OldLevel: 3, NewLevel: 2},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidEvent,
		},
		{
			name:    "Ledger failure",
			upgrade: domain.VipUpgrade{UserID: 1, OldLevel: 1, NewLevel: 2},
			prepareMock: func() {
				ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, nil, domain.ErrContention)
			},
			expectedError: domain.ErrContention,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.OnLevelUpgraded(context.Background(), tt.upgrade)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_OnLevelUpgraded_NotConfigured(t *testing.T) {
	service := New("http://vip", nil, nil, nil, nil, "USD")
	err := service.OnLevelUpgraded(context.Background(), domain.VipUpgrade{UserID: 1, OldLevel: 0, NewLevel: 1})
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestParseRewards(t *testing.T) {
	_, err := ParseRewards(map[string]string{"gold": "10"})
	assert.Error(t, err)

	_, err = ParseRewards(map[string]string{"1": "-5"})
	assert.Error(t, err)

	rewards, err := ParseRewards(map[string]string{"3": "12.5"})
	require.NoError(t, err)
	assert.Equal(t, "12.5", rewards[3].String())
}
