package models

import "time"

// ProductLineGallery holds the image set shown for one (category, class)
// product line. The pair is unique; images are stored as a JSON array of
// public URLs.
type ProductLineGallery struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Category     string    `gorm:"size:128;not null;uniqueIndex:idx_gallery_line" json:"category"`
	ProductClass string    `gorm:"size:128;not null;uniqueIndex:idx_gallery_line" json:"productClass"`
	ImageURLs    []string  `gorm:"serializer:json" json:"imageUrls"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
