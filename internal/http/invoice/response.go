package invoice

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

type invoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

type invoicesResponse struct {
	Invoices []invoiceSummary `json:"invoices"`
}

// invoiceResponse is the full row, returned by create and update.
type invoiceResponse struct {
	ID       int64       `json:"id"`
	CompCode string      `json:"comp_code"`
	Amount   json.Number `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  string      `json:"add_date"`
	PaidDate *string     `json:"paid_date"`
}

type invoiceEnvelope struct {
	Invoice invoiceResponse `json:"invoice"`
}

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// invoiceDetail is the single-invoice view with its company nested.
type invoiceDetail struct {
	ID       int64            `json:"id"`
	Amount   json.Number      `json:"amt"`
	Paid     bool             `json:"paid"`
	AddDate  string           `json:"add_date"`
	PaidDate *string          `json:"paid_date"`
	Company  *companyResponse `json:"company"`
}

type detailEnvelope struct {
	Invoice invoiceDetail `json:"invoice"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return new(t.Format(time.DateOnly))
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amount:   json.Number(inv.Amount.String()),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(time.DateOnly),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func toCompanyResponse(c *company.Company) *companyResponse {
	if c == nil {
		return nil
	}

	return &companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toDetail(inv *invoice.Invoice) invoiceDetail {
	return invoiceDetail{
		ID:       inv.ID,
		Amount:   json.Number(inv.Amount.String()),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(time.DateOnly),
		PaidDate: formatDate(inv.PaidDate),
		Company:  toCompanyResponse(inv.Company),
	}
}

func toSummaryList(invoices []*invoice.Invoice) []invoiceSummary {
	resp := make([]invoiceSummary, len(invoices))
	for i, inv := range invoices {
		resp[i] = invoiceSummary{ID: inv.ID, CompCode: inv.CompCode}
	}

	return resp
}
