package sync

import (
	"context"
	"strings"

	"icoltex-hub/feature/catalog"
	"icoltex-hub/feature/catalog/models"
)

// clientAdapter reconciles clients by document number.
type clientAdapter struct {
	store *catalog.ClientStore
}

func (a *clientAdapter) Label() string                  { return "clients" }
func (a *clientAdapter) Identify(item RawItem) string   { return ClientIdentifier(item) }
func (a *clientAdapter) DedupeKey(e Entity) string      { return "" }

func (a *clientAdapter) Map(item RawItem) (Entity, bool) {
	return MapClient(item)
}

func (a *clientAdapter) Upsert(ctx context.Context, e Entity) (bool, error) {
	client := e.(*models.Client)
	existing, err := a.store.FindByDocumentNumber(ctx, client.DocumentNumber)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, a.store.UpdateFields(ctx, existing.ID, clientFields(client))
	}
	return true, a.store.Insert(ctx, client)
}

// clientFields is the full mapped field set, replaced wholesale on update.
// Nil pointers clear columns: last write wins per field set, no deep merge.
func clientFields(c *models.Client) map[string]any {
	return map[string]any{
		"code":            c.Code,
		"name":            c.Name,
		"document_type":   c.DocumentType,
		"document_number": c.DocumentNumber,
		"email":           c.Email,
		"phone":           c.Phone,
		"address":         c.Address,
		"city":            c.City,
		"department":      c.Department,
		"country":         c.Country,
		"active":          c.Active,
	}
}

// productAdapter reconciles products by code.
type productAdapter struct {
	store *catalog.ProductStore
}

func (a *productAdapter) Label() string                { return "products" }
func (a *productAdapter) Identify(item RawItem) string { return ProductIdentifier(item) }
func (a *productAdapter) DedupeKey(e Entity) string    { return "" }

func (a *productAdapter) Map(item RawItem) (Entity, bool) {
	return MapProduct(item)
}

func (a *productAdapter) Upsert(ctx context.Context, e Entity) (bool, error) {
	product := e.(*models.Product)
	existing, err := a.store.FindByCode(ctx, product.Code)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, a.store.UpdateFields(ctx, existing.ID, productFields(product))
	}
	return true, a.store.Insert(ctx, product)
}

func productFields(p *models.Product) map[string]any {
	return map[string]any{
		"code":                 p.Code,
		"name":                 p.Name,
		"product_class":        p.ProductClass,
		"category":             p.Category,
		"stock":                p.Stock,
		"colors":               p.Colors,
		"unit_of_measure":      p.UnitOfMeasure,
		"feature":              p.Feature,
		"care_recommendations": p.CareRecommendations,
		"use_recommendations":  p.UseRecommendations,
		"price_per_meter":      p.PricePerMeter,
		"price_per_kilo":       p.PricePerKilo,
		"active":               p.Active,
	}
}

// taxonomyAdapter reconciles categories or classes by case-insensitive name.
// Upstream feeds repeat the same name within one fetch, so an in-run dedupe
// key is provided.
type taxonomyAdapter struct {
	label    string
	nameKeys []string
	store    *catalog.TaxonomyStore
}

func newCategoryAdapter(store *catalog.TaxonomyStore) *taxonomyAdapter {
	return &taxonomyAdapter{label: "categories", nameKeys: categoryNameKeys, store: store}
}

func newClassAdapter(store *catalog.TaxonomyStore) *taxonomyAdapter {
	return &taxonomyAdapter{label: "classes", nameKeys: classNameKeys, store: store}
}

func (a *taxonomyAdapter) Label() string                { return a.label }
func (a *taxonomyAdapter) Identify(item RawItem) string { return GetString(item, a.nameKeys...) }

func (a *taxonomyAdapter) Map(item RawItem) (Entity, bool) {
	return mapTaxonomy(item, a.nameKeys)
}

func (a *taxonomyAdapter) DedupeKey(e Entity) string {
	return strings.ToLower(e.(*TaxonomyRecord).Name)
}

func (a *taxonomyAdapter) Upsert(ctx context.Context, e Entity) (bool, error) {
	record := e.(*TaxonomyRecord)
	existing, err := a.store.FindByName(ctx, record.Name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		// The slug is deliberately absent: it is fixed at creation.
		return false, a.store.UpdateFields(ctx, existing.ID, map[string]any{
			"name":   record.Name,
			"active": record.Active,
		})
	}
	return true, a.store.Insert(ctx, record.Name, record.Active)
}
