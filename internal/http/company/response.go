package company

import (
	"github.com/MrJamesThe3rd/biztime/internal/company"
)

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type companyEnvelope struct {
	Company companyResponse `json:"company"`
}

type companiesResponse struct {
	Companies []companyResponse `json:"companies"`
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toResponseList(companies []*company.Company) []companyResponse {
	resp := make([]companyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toResponse(c)
	}

	return resp
}
