package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationNotice announces that a product was added to the inventory.
type RegistrationNotice struct {
	ID           string    `json:"id"`
	Product      Product   `json:"product"`
	RegisteredAt time.Time `json:"registered_at"`
}

func NewRegistrationNotice(p Product) RegistrationNotice {
	return RegistrationNotice{
		ID:           uuid.New().String(),
		Product:      p,
		RegisteredAt: time.Now().UTC(),
	}
}
