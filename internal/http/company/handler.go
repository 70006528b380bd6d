package company

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
	"github.com/MrJamesThe3rd/biztime/internal/company"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", respond.Handle(h.list))
	r.Post("/", respond.Handle(h.create))
	r.Get("/{code}", respond.Handle(h.get))
	r.Put("/{code}", respond.Handle(h.update))
	r.Delete("/{code}", respond.Handle(h.delete))
}

// toAppError maps service errors for the company identified by code.
func toAppError(code string, err error) error {
	switch {
	case errors.Is(err, company.ErrNotFound):
		return apperr.NotFound(fmt.Sprintf("Company code %s not found in database.", code)).Wrap(err)
	case errors.Is(err, company.ErrDuplicate):
		return apperr.BadRequest("Company code or company name already in use.").Wrap(err)
	case errors.Is(err, company.ErrInvalid):
		return apperr.BadRequest("Company rejected: check code, name and description.").Wrap(err)
	default:
		return err
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}

	respond.JSON(w, http.StatusOK, companiesResponse{Companies: toResponseList(companies)})

	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	code := chi.URLParam(r, "code")

	c, err := h.svc.Get(r.Context(), code)
	if err != nil {
		return toAppError(code, err)
	}

	respond.JSON(w, http.StatusOK, companyEnvelope{Company: toResponse(c)})

	return nil
}

type createCompanyRequest struct {
	Code        *string            `json:"code" validate:"required"`
	Name        *string            `json:"name" validate:"required"`
	Description respond.NullString `json:"description" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	var req createCompanyRequest
	if err := respond.Decode(r, &req); err != nil {
		return err
	}

	c, err := h.svc.Create(r.Context(), company.CreateParams{
		Code:        *req.Code,
		Name:        *req.Name,
		Description: req.Description.Value,
	})
	if err != nil {
		return toAppError(*req.Code, err)
	}

	respond.JSON(w, http.StatusCreated, companyEnvelope{Company: toResponse(c)})

	return nil
}

type updateCompanyRequest struct {
	Name        *string            `json:"name" validate:"required"`
	Description respond.NullString `json:"description" validate:"required"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	code := chi.URLParam(r, "code")

	var req updateCompanyRequest
	if err := respond.Decode(r, &req); err != nil {
		return err
	}

	c, err := h.svc.Update(r.Context(), code, company.UpdateParams{
		Name:        *req.Name,
		Description: req.Description.Value,
	})
	if err != nil {
		return toAppError(code, err)
	}

	respond.JSON(w, http.StatusOK, companyEnvelope{Company: toResponse(c)})

	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	code := chi.URLParam(r, "code")

	if err := h.svc.Delete(r.Context(), code); err != nil {
		return toAppError(code, err)
	}

	respond.JSON(w, http.StatusOK, respond.Status{Status: "deleted"})

	return nil
}
