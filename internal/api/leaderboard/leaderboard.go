package leaderboard

import (
	"net/http"

	"pixel_casino/internal/api/apierr"
	"pixel_casino/internal/converter"
	"pixel_casino/internal/middleware"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	entries, err := h.serv.Leaderboard(r.Context(), playerID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}
