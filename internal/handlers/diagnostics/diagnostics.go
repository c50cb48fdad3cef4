package diagnostics

//go:generate mockgen -destination=mock_diagnostics.go -package=diagnostics . Ledger,Rollovers,Cashback

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/dto"
	"github.com/GlebRadaev/wagering/pkg/utils"
)

type Ledger interface {
	GetBalance(ctx context.Context, userID int64, currency string) (*domain.Balance, error)
	ListTransactions(ctx context.Context, userID int64, currency string, limit int) ([]domain.Transaction, error)
}

type Rollovers interface {
	ListByUser(ctx context.Context, userID int64, currency string) ([]domain.Rollover, error)
}

type Cashback interface {
	Claim(ctx context.Context, userID, cashbackID int64) (*domain.WeeklyCashback, error)
}

type DiagnosticsHandler struct {
	ledger    Ledger
	rollovers Rollovers
	cashback  Cashback
}

func New(ledger Ledger, rollovers Rollovers, cashback Cashback) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		ledger:    ledger,
		rollovers: rollovers,
		cashback:  cashback,
	}
}

// GetBalance godoc
//
//	@Summary		Get a user balance
//	@Tags			Diagnostics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		int						true	"User ID"
//	@Param			currency	path		string					true	"Currency code"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		400			{object}	utils.Response			"Invalid user id"
//	@Failure		404			{object}	utils.Response			"Balance not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/balances/{currency} [get]
func (h *DiagnosticsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), userID, chi.URLParam(r, "currency"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "balance not found")
			return
		}
		internalError(w, "balance", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(*balance))
}

// ListTransactions godoc
//
//	@Summary		List ledger transactions of a user
//	@Description	Most recent first. Limit defaults to 50.
//	@Tags			Diagnostics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		int								true	"User ID"
//	@Param			currency	query		string							false	"Currency code"
//	@Param			limit		query		int								false	"Page size"
//	@Success		200			{array}		dto.TransactionResponseDTO		"Transactions"
//	@Failure		400			{object}	utils.Response					"Invalid parameters"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/users/{userID}/transactions [get]
func (h *DiagnosticsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	transactions, err := h.ledger.ListTransactions(r.Context(), userID, r.URL.Query().Get("currency"), limit)
	if err != nil {
		internalError(w, "transactions", err)
		return
	}
	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.NewTransactionResponse(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListRollovers godoc
//
//	@Summary		List rollover requirements of a user
//	@Tags			Diagnostics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		int							true	"User ID"
//	@Param			currency	query		string						false	"Currency code"
//	@Success		200			{array}		dto.RolloverResponseDTO		"Rollovers in FIFO order"
//	@Failure		400			{object}	utils.Response				"Invalid user id"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{userID}/rollovers [get]
func (h *DiagnosticsHandler) ListRollovers(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	rollovers, err := h.rollovers.ListByUser(r.Context(), userID, r.URL.Query().Get("currency"))
	if err != nil {
		internalError(w, "rollovers", err)
		return
	}
	response := make([]dto.RolloverResponseDTO, len(rollovers))
	for i, ro := range rollovers {
		response[i] = dto.NewRolloverResponse(ro)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ClaimCashback godoc
//
//	@Summary		Claim a finalized weekly cashback
//	@Tags			Diagnostics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		int						true	"User ID"
//	@Param			cashbackID	path		int						true	"Cashback ID"
//	@Success		200			{object}	dto.CashbackResponseDTO	"Claimed cashback"
//	@Failure		400			{object}	utils.Response			"Invalid parameters"
//	@Failure		404			{object}	utils.Response			"Cashback not found"
//	@Failure		409			{object}	utils.Response			"Cashback not claimable"
//	@Failure		503			{object}	utils.Response			"Balance contention"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/cashbacks/{cashbackID}/claim [post]
func (h *DiagnosticsHandler) ClaimCashback(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	cashbackID, err := strconv.ParseInt(chi.URLParam(r, "cashbackID"), 10, 64)
	if err != nil || cashbackID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid cashback id")
		return
	}

	cashback, err := h.cashback.Claim(r.Context(), userID, cashbackID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "cashback not found")
		case errors.Is(err, domain.ErrNotClaimable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrContention):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "balance contention, retry later")
		default:
			internalError(w, "cashback claim", err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCashbackResponse(*cashback))
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return userID, true
}

func internalError(w http.ResponseWriter, what string, err error) {
	zap.L().Error("diagnostics request failed", zap.String("resource", what), zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
