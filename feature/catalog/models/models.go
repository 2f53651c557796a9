package models

import "time"

// DocumentType classifies a client's identity document.
type DocumentType string

const (
	DocumentCC       DocumentType = "CC"
	DocumentNIT      DocumentType = "NIT"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "PASSPORT"
)

// Client is a catalog customer record. DocumentNumber is the unique key the
// sync pipeline upserts by. DocumentType is inferred heuristically from the
// upstream code and must be treated as best-effort by consumers.
type Client struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Code           string       `gorm:"size:64" json:"code,omitempty"`
	Name           string       `gorm:"size:255;not null" json:"name"`
	DocumentType   DocumentType `gorm:"size:16;not null" json:"documentType"`
	DocumentNumber string       `gorm:"size:64;uniqueIndex;not null" json:"documentNumber"`
	Email          *string      `gorm:"size:255" json:"email,omitempty"`
	Phone          *string      `gorm:"size:64" json:"phone,omitempty"`
	Address        *string      `gorm:"size:255" json:"address,omitempty"`
	City           *string      `gorm:"size:128" json:"city,omitempty"`
	Department     *string      `gorm:"size:128" json:"department,omitempty"`
	Country        string       `gorm:"size:128;default:Colombia" json:"country"`
	Active         bool         `gorm:"index" json:"active"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Product is a catalog item keyed by its upstream code.
type Product struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Code                string    `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	ProductClass        *string   `gorm:"size:128;index:idx_products_taxonomy" json:"productClass,omitempty"`
	Category            *string   `gorm:"size:128;index:idx_products_taxonomy" json:"category,omitempty"`
	Stock               float64   `json:"stock"`
	Colors              *string   `gorm:"size:255" json:"colors,omitempty"`
	UnitOfMeasure       *string   `gorm:"size:64" json:"unitOfMeasure,omitempty"`
	Feature             *string   `gorm:"size:255" json:"feature,omitempty"`
	CareRecommendations *string   `gorm:"type:text" json:"careRecommendations,omitempty"`
	UseRecommendations  *string   `gorm:"type:text" json:"useRecommendations,omitempty"`
	PricePerMeter       *float64  `json:"pricePerMeter,omitempty"`
	PricePerKilo        *float64  `json:"pricePerKilo,omitempty"`
	Active              bool      `gorm:"index" json:"active"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ProductCategory is a taxonomy entry keyed by name. The slug is derived once
// at creation and never rewritten by updates.
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Active    bool      `gorm:"index" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductClass is a taxonomy entry for the upstream "Clase/Familia" axis.
type ProductClass struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Active    bool      `gorm:"index" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
