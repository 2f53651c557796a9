package catalog

import (
	"context"
	"errors"
	"fmt"

	"icoltex-hub/core/utils"
	"icoltex-hub/feature/catalog/models"

	"gorm.io/gorm"
)

// ClientStore persists clients keyed by document number.
type ClientStore struct {
	db *gorm.DB
}

// NewClientStore creates a client store.
func NewClientStore(db *gorm.DB) *ClientStore {
	return &ClientStore{db: db}
}

// FindByDocumentNumber returns the client with the given document number, or
// (nil, nil) when no such client exists. The lookup is exact and
// case-sensitive; upstream document codes are treated as opaque.
func (s *ClientStore) FindByDocumentNumber(ctx context.Context, number string) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).Where("document_number = ?", number).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Insert creates a new client.
func (s *ClientStore) Insert(ctx context.Context, client *models.Client) error {
	return s.db.WithContext(ctx).Create(client).Error
}

// UpdateFields overwrites the given fields on an existing client. The map
// may contain nil values, which clear the corresponding column.
func (s *ClientStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(fields).Error
}

// List returns clients, optionally filtered to active ones and matched
// against a search term over name and document number.
func (s *ClientStore) List(ctx context.Context, query string, activeOnly bool) ([]models.Client, error) {
	var clients []models.Client
	q := s.db.WithContext(ctx).Order("name")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR document_number LIKE ?", like, like)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// ProductStore persists products keyed by code.
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a product store.
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// FindByCode returns the product with the given code, or (nil, nil) when no
// such product exists. The lookup is exact and case-sensitive.
func (s *ProductStore) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Insert creates a new product.
func (s *ProductStore) Insert(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// UpdateFields overwrites the given fields on an existing product.
func (s *ProductStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// List returns products, optionally filtered by search term, category,
// class, and active state.
func (s *ProductStore) List(ctx context.Context, query, category, productClass string, activeOnly bool) ([]models.Product, error) {
	var products []models.Product
	q := s.db.WithContext(ctx).Order("name")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR code LIKE ?", like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if productClass != "" {
		q = q.Where("product_class = ?", productClass)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// TaxonomyStore persists one taxonomy table (categories or classes), keyed
// case-insensitively by name. Both tables share shape and upsert semantics,
// so one store implementation covers them via the table name.
type TaxonomyStore struct {
	db    *gorm.DB
	table string
}

// NewCategoryStore creates a store over the product_categories table.
func NewCategoryStore(db *gorm.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db, table: "product_categories"}
}

// NewClassStore creates a store over the product_classes table.
func NewClassStore(db *gorm.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db, table: "product_classes"}
}

// TaxonomyEntry is the common row shape of both taxonomy tables.
type TaxonomyEntry struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// FindByName returns the entry whose name matches case-insensitively, or
// (nil, nil) when absent. Upstream feeds vary casing between runs, so "Telas"
// and "TELAS" must resolve to the same row.
func (s *TaxonomyStore) FindByName(ctx context.Context, name string) (*TaxonomyEntry, error) {
	var entry TaxonomyEntry
	err := s.db.WithContext(ctx).Table(s.table).
		Where("LOWER(name) = LOWER(?)", name).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Insert creates a new entry, deriving its slug from the name. Slug
// derivation happens only here: updates never rewrite an existing slug.
func (s *TaxonomyStore) Insert(ctx context.Context, name string, active bool) error {
	slug := utils.Slugify(name)
	if slug == "" {
		return fmt.Errorf("name %q produces an empty slug", name)
	}
	if s.table == "product_categories" {
		return s.db.WithContext(ctx).Create(&models.ProductCategory{Name: name, Slug: slug, Active: active}).Error
	}
	return s.db.WithContext(ctx).Create(&models.ProductClass{Name: name, Slug: slug, Active: active}).Error
}

// UpdateFields overwrites the given fields on an existing entry.
func (s *TaxonomyStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if s.table == "product_categories" {
		return s.db.WithContext(ctx).Model(&models.ProductCategory{}).Where("id = ?", id).Updates(fields).Error
	}
	return s.db.WithContext(ctx).Model(&models.ProductClass{}).Where("id = ?", id).Updates(fields).Error
}

// List returns entries ordered by name, optionally active only.
func (s *TaxonomyStore) List(ctx context.Context, activeOnly bool) ([]TaxonomyEntry, error) {
	var entries []TaxonomyEntry
	q := s.db.WithContext(ctx).Table(s.table).Order("name")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
