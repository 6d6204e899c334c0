package http

import (
	"time"

	"relationship-os/internal/person"
	pkgErrors "relationship-os/pkg/errors"
)

// --- Request DTOs ---

type createReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=255"`
	Phone   string `json:"phone"   binding:"max=32"`
	Email   string `json:"email"   binding:"omitempty,email"`
	Company string `json:"company" binding:"max=255"`
	Notes   string `json:"notes"   binding:"max=5000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() person.CreatePersonInput {
	return person.CreatePersonInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Company: r.Company,
		Notes:   r.Notes,
	}
}

// ---

type listReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() person.ListPersonsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return person.ListPersonsInput{
		Query:  r.Query,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID      string `json:"-"` // populated from URI param
	Name    string `json:"name"    binding:"omitempty,min=1,max=255"`
	Phone   string `json:"phone"   binding:"max=32"`
	Email   string `json:"email"   binding:"omitempty,email"`
	Company string `json:"company" binding:"max=255"`
	Notes   string `json:"notes"   binding:"max=5000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() person.UpdatePersonInput {
	return person.UpdatePersonInput{
		ID:      r.ID,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Company: r.Company,
		Notes:   r.Notes,
	}
}

// ---

type searchReq struct {
	Phone string `form:"phone"`
	Email string `form:"email"`
	Name  string `form:"name"`
}

func (r searchReq) validate() error {
	if r.Phone == "" && r.Email == "" && r.Name == "" {
		return pkgErrors.NewHTTPError(400, "at least one of phone, email or name is required")
	}
	return nil
}

func (r searchReq) toInput() person.SearchPersonInput {
	return person.SearchPersonInput{
		Phone: r.Phone,
		Email: r.Email,
		Name:  r.Name,
	}
}

// --- Response DTOs ---

type personResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPersonResp(p person.Person) personResp {
	return personResp{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Company:   p.Company,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type createResp struct {
	Person personResp `json:"person"`
}

func (h *handler) newCreateResp(out person.CreatePersonOutput) createResp {
	return createResp{Person: newPersonResp(out.Person)}
}

type listResp struct {
	Persons []personResp `json:"persons"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func (h *handler) newListResp(out person.ListPersonsOutput) listResp {
	persons := make([]personResp, len(out.Persons))
	for i, p := range out.Persons {
		persons[i] = newPersonResp(p)
	}
	return listResp{
		Persons: persons,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type detailResp struct {
	Person personResp `json:"person"`
}

func (h *handler) newDetailResp(out person.DetailPersonOutput) detailResp {
	return detailResp{Person: newPersonResp(out.Person)}
}

type updateResp struct {
	Person personResp `json:"person"`
}

func (h *handler) newUpdateResp(out person.UpdatePersonOutput) updateResp {
	return updateResp{Person: newPersonResp(out.Person)}
}

type searchResp struct {
	Matched bool        `json:"matched"`
	Person  *personResp `json:"person,omitempty"`
}

func (h *handler) newSearchResp(out person.SearchPersonOutput) searchResp {
	if !out.Matched {
		return searchResp{}
	}
	p := newPersonResp(out.Person)
	return searchResp{Matched: true, Person: &p}
}
