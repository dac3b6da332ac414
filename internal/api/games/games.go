package games

import (
	"net/http"

	"pixel_casino/internal/api/apierr"
	dto "pixel_casino/internal/api/dto/games"
	"pixel_casino/internal/converter"
	"pixel_casino/internal/middleware"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/req"
	"pixel_casino/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.RoundService
}

type Handler struct {
	serv service.RoundService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List игры и меню ставок
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.ListResponse{
		Games: h.serv.Games(),
		Bets:  h.serv.Bets(),
	})
}

// Start списывает ставку и открывает раунд
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	round, err := h.serv.Start(r.Context(), playerID, chi.URLParam(r, "game"), payload.Bet, converter.ToSelection(payload.Selection))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Act ход в раунде: pick, cashout, hit, stand и т.д.
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ActRequest](r.Body)
	if err != nil || payload.Action == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	round, err := h.serv.Act(r.Context(), playerID, chi.URLParam(r, "game"), converter.ToAction(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	round, err := h.serv.Current(r.Context(), playerID, chi.URLParam(r, "game"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Reset убирает завершенный раунд
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	if err := h.serv.Reset(r.Context(), playerID, chi.URLParam(r, "game")); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	entries, err := h.serv.History(r.Context(), playerID, chi.URLParam(r, "game"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context(), chi.URLParam(r, "game"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}
