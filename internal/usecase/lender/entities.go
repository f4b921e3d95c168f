package lender

import (
	"time"

	domain "lendbridge/internal/domain/lender"
)

type RegisterInput struct {
	CompanyName          string `json:"company_name"`
	CINNumber            string `json:"cin_number"`
	RegistrationYear     int    `json:"registration_year"`
	HeadquartersLocation string `json:"headquarters_location"`
	ContactFullName      string `json:"contact_full_name"`
	Designation          string `json:"designation"`
	OfficialEmail        string `json:"official_email"`
	PhoneNumber          string `json:"phone_number"`
}

type LenderDTO struct {
	LenderID             string               `json:"lender_id"`
	CompanyName          string               `json:"company_name"`
	CINNumber            string               `json:"cin_number"`
	RegistrationYear     int                  `json:"registration_year"`
	HeadquartersLocation string               `json:"headquarters_location"`
	Contact              domain.ContactPerson `json:"contact"`
	Status               string               `json:"status"`
	Stats                domain.Stats         `json:"stats"`
	CreatedAt            time.Time            `json:"created_at"`
}

func toDTO(l *domain.Lender) *LenderDTO {
	return &LenderDTO{
		LenderID:             l.LenderID,
		CompanyName:          l.CompanyName,
		CINNumber:            l.CINNumber,
		RegistrationYear:     l.RegistrationYear,
		HeadquartersLocation: l.HeadquartersLocation,
		Contact:              l.Contact,
		Status:               string(l.Status),
		Stats:                l.Stats,
		CreatedAt:            l.CreatedAt,
	}
}
