package wallet

import (
	"net/http"

	"pixel_casino/internal/api/apierr"
	dto "pixel_casino/internal/api/dto/wallet"
	"pixel_casino/internal/events"
	"pixel_casino/internal/middleware"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/req"
	"pixel_casino/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv        service.WalletService
	Broadcaster *events.BalanceBroadcaster
	Logger      *zap.Logger
}

type Handler struct {
	serv        service.WalletService
	broadcaster *events.BalanceBroadcaster
	logger      *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		broadcaster: deps.Broadcaster,
		logger:      deps.Logger,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	balance, err := h.serv.Get(r.Context(), playerID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	balance, err := h.serv.Add(r.Context(), playerID, payload.Amount)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	balance, err := h.serv.Set(r.Context(), playerID, payload.Value)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	balance, err := h.serv.Reset(r.Context(), playerID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}
