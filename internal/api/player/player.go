package player

import (
	"net/http"

	"pixel_casino/internal/api/apierr"
	"pixel_casino/internal/converter"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PlayerService
}

type Handler struct {
	serv service.PlayerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register выдает нового игрока и его access_token
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	p, err := h.serv.Register(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRegisterResponse(*p))
}
