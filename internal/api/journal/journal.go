package journal

import (
	"net/http"
	"strconv"

	"pixel_casino/internal/api/apierr"
	"pixel_casino/internal/converter"
	"pixel_casino/internal/service"
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

// List записи журнала после индекса ?after=N, не больше ?limit=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	after, err := parseUint(q.Get("after"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid after")
		return
	}
	limit, err := parseUint(q.Get("limit"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	records, err := h.serv.Journal(r.Context(), after, int(limit))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToJournalListResponse(records, after))
}

// Replay повторяет раунд {index} и сверяет выплату с журналом
func (h *Handler) Replay(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid index")
		return
	}

	replay, err := h.serv.Replay(r.Context(), index)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReplayResponse(*replay))
}

func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
