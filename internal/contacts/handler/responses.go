package handler

import (
	"contacts/internal/contacts/models"
)

type PersonResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	Age                *int   `json:"age,omitempty"`
	Gender             string `json:"gender,omitempty"`
	CountryID          string `json:"country_id,omitempty"`
	CountryName        string `json:"country_name,omitempty"`
	Address            string `json:"address,omitempty"`
	ReceiveNewsletters bool   `json:"receive_newsletters"`
}

type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
	Total   int              `json:"total"`
}

type CountryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CountryListResponse struct {
	Countries []CountryResponse `json:"countries"`
	Total     int               `json:"total"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

func toPersonResponse(v *models.PersonView) *PersonResponse {
	res := &PersonResponse{
		ID:                 v.ID.String(),
		Name:               v.Name,
		Email:              v.Email,
		Age:                v.Age,
		Gender:             string(v.Gender),
		CountryName:        v.CountryName,
		Address:            v.Address,
		ReceiveNewsletters: v.ReceiveNewsletters,
	}
	if v.DateOfBirth != nil {
		res.DateOfBirth = v.DateOfBirth.Format(models.DateLayout)
	}
	if !v.CountryID.IsNil() {
		res.CountryID = v.CountryID.String()
	}
	return res
}

func toPersonListResponse(views []models.PersonView) *PersonListResponse {
	persons := make([]PersonResponse, 0, len(views))
	for i := range views {
		persons = append(persons, *toPersonResponse(&views[i]))
	}
	return &PersonListResponse{Persons: persons, Total: len(persons)}
}

func toCountryResponse(v *models.CountryView) *CountryResponse {
	return &CountryResponse{ID: v.ID.String(), Name: v.Name}
}

func toCountryListResponse(views []models.CountryView) *CountryListResponse {
	countries := make([]CountryResponse, 0, len(views))
	for i := range views {
		countries = append(countries, *toCountryResponse(&views[i]))
	}
	return &CountryListResponse{Countries: countries, Total: len(countries)}
}
