package invoice

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", respond.Handle(h.list))
	r.Post("/", respond.Handle(h.create))
	r.Get("/{id}", respond.Handle(h.get))
	r.Put("/{id}", respond.Handle(h.update))
	r.Delete("/{id}", respond.Handle(h.delete))
}

// parseID reads the {id} path parameter. Invoice ids are serial (int4), so
// anything outside the 32-bit range is rejected before it reaches the store.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, apperr.BadRequest("invalid invoice id").Wrap(err)
	}

	return id, nil
}

func toAppError(id int64, err error) error {
	switch {
	case errors.Is(err, invoice.ErrNotFound):
		return apperr.NotFound(fmt.Sprintf("Invoice id %d not found in database.", id)).Wrap(err)
	case errors.Is(err, invoice.ErrInvalid):
		return apperr.BadRequest("Invoice rejected: check comp_code and amt.").Wrap(err)
	default:
		return err
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}

	respond.JSON(w, http.StatusOK, invoicesResponse{Invoices: toSummaryList(invoices)})

	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return toAppError(id, err)
	}

	respond.JSON(w, http.StatusOK, detailEnvelope{Invoice: toDetail(inv)})

	return nil
}

type createInvoiceRequest struct {
	CompCode *string          `json:"comp_code" validate:"required"`
	Amount   *decimal.Decimal `json:"amt" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	var req createInvoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		return err
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CompCode: *req.CompCode,
		Amount:   *req.Amount,
	})
	if err != nil {
		return toAppError(0, err)
	}

	respond.JSON(w, http.StatusCreated, invoiceEnvelope{Invoice: toResponse(inv)})

	return nil
}

type updateInvoiceRequest struct {
	Amount *decimal.Decimal `json:"amt" validate:"required"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	var req updateInvoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		return err
	}

	inv, err := h.svc.UpdateAmount(r.Context(), id, *req.Amount)
	if err != nil {
		return toAppError(id, err)
	}

	respond.JSON(w, http.StatusOK, invoiceEnvelope{Invoice: toResponse(inv)})

	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		return toAppError(id, err)
	}

	respond.JSON(w, http.StatusOK, respond.Status{Status: "deleted"})

	return nil
}
