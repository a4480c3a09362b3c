package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// sportIcon redirects to a presigned URL of the sport's icon.
func (h *Handler) sportIcon(w http.ResponseWriter, r *http.Request) {
	url, err := h.icons.IconURL(r.Context(), chi.URLParam(r, "sport"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.errorResponse(w, r, http.StatusNotFound, "unknown sport")
			return
		}
		h.serverErrorResponse(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
