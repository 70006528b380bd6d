package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", respond.Handle(h.check))
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) error {
	if err := h.db.PingContext(r.Context()); err != nil {
		return apperr.Internal("database unavailable").Wrap(err)
	}

	respond.JSON(w, http.StatusOK, respond.Status{Status: "ok"})

	return nil
}
