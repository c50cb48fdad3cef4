package events

//go:generate mockgen -destination=mock_events.go -package=events . Dispatcher

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/dto"
	"github.com/GlebRadaev/wagering/pkg/auth"
	"github.com/GlebRadaev/wagering/pkg/utils"
)

// Dispatcher queues a signal. HTTP producers get no completion ack, so the
// returned channel is ignored here.
type Dispatcher interface {
	OrderCompleted(ctx context.Context, order domain.Order) (<-chan struct{}, error)
	DepositCompleted(ctx context.Context, deposit domain.Deposit) (<-chan struct{}, error)
	VipUpgraded(ctx context.Context, upgrade domain.VipUpgrade) (<-chan struct{}, error)
}

type EventsHandler struct {
	dispatcher Dispatcher
}

func New(dispatcher Dispatcher) *EventsHandler {
	return &EventsHandler{
		dispatcher: dispatcher,
	}
}

// OrderCompleted godoc
//
//	@Summary		Ingest an order completion signal
//	@Description	Queue the order for rollover, bonus task, cashback and VIP handlers.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderCompletedDTO	true	"Completed order"
//	@Success		202		{object}	dto.AcceptedResponseDTO	"Signal queued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Service not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid signal"
//	@Failure		503		{object}	utils.Response			"Dispatcher unavailable"
//	@Router			/api/events/orders/completed [post]
func (h *EventsHandler) OrderCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderCompletedDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	_, err = h.dispatcher.OrderCompleted(r.Context(), order)
	h.accepted(w, r, "order.completed", err)
}

// DepositCompleted godoc
//
//	@Summary		Ingest a deposit completion signal
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositCompletedDTO	true	"Completed deposit"
//	@Success		202		{object}	dto.AcceptedResponseDTO	"Signal queued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Service not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid signal"
//	@Failure		503		{object}	utils.Response			"Dispatcher unavailable"
//	@Router			/api/events/deposits/completed [post]
func (h *EventsHandler) DepositCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositCompletedDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deposit, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	_, err = h.dispatcher.DepositCompleted(r.Context(), deposit)
	h.accepted(w, r, "deposit.completed", err)
}

// VipUpgraded godoc
//
//	@Summary		Ingest a VIP level upgrade signal
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VipUpgradedDTO		true	"Level upgrade"
//	@Success		202		{object}	dto.AcceptedResponseDTO	"Signal queued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Service not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid signal"
//	@Failure		503		{object}	utils.Response			"Dispatcher unavailable"
//	@Router			/api/events/vip/upgraded [post]
func (h *EventsHandler) VipUpgraded(w http.ResponseWriter, r *http.Request) {
	var req dto.VipUpgradedDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	upgrade, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	_, err = h.dispatcher.VipUpgraded(r.Context(), upgrade)
	h.accepted(w, r, "vip.level_upgraded", err)
}

func (h *EventsHandler) accepted(w http.ResponseWriter, r *http.Request, signal string, err error) {
	if err != nil {
		service, _ := r.Context().Value(auth.ServiceKey).(string)
		zap.L().Error("failed to queue signal", zap.String("signal", signal), zap.String("service", service), zap.Error(err))
		utils.RespondWithError(w, http.StatusServiceUnavailable, "dispatcher unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.AcceptedResponseDTO{Message: "accepted"})
}
