package bonus

import (
	"net/http"

	"pixel_casino/internal/api/apierr"
	"pixel_casino/internal/converter"
	"pixel_casino/internal/middleware"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.BonusService
}

type Handler struct {
	serv service.BonusService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Claim начисляет бонус {key} один раз
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	claim, err := h.serv.Claim(r.Context(), playerID, chi.URLParam(r, "key"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*claim))
}
