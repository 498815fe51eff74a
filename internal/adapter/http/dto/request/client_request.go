package request

import (
	"joinerypro/internal/domain/entities"
	"strings"
)

type GPSLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ClientRequest struct {
	Name        string              `json:"name" binding:"required"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	Email       string              `json:"email" binding:"omitempty,email"`
	Notes       string              `json:"notes"`
	GPSLocation *GPSLocationRequest `json:"gpsLocation"`
}

func (r ClientRequest) ToEntity(id string) entities.Client {
	c := entities.Client{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Address: r.Address,
		Email:   strings.TrimSpace(r.Email),
		Notes:   r.Notes,
	}
	if r.GPSLocation != nil {
		c.GPSLocation = &entities.GPSLocation{Lat: r.GPSLocation.Lat, Lng: r.GPSLocation.Lng}
	}
	return c
}
