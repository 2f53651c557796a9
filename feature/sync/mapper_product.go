package sync

import (
	"strings"

	"icoltex-hub/feature/catalog/models"
)

// Accepted spellings of the product code, exact pass first.
var productIDKeys = []string{"ItemCode", "Item Code", "itemCode", "item_code", "Código", "Codigo", "codigo", "id", "ID"}

// Fuzzy fallback tokens for the product code.
var productIDTokens = []string{"itemcode", "codigo"}

// ProductIdentifier returns the record's product code, or "" when none of
// the accepted spellings (or fuzzy fallbacks) resolve.
func ProductIdentifier(item RawItem) string {
	return GetIdentifier(item, productIDKeys, productIDTokens)
}

// MapProduct converts one unwrapped raw record into a canonical product.
// Returns false when no code can be resolved.
func MapProduct(item RawItem) (*models.Product, bool) {
	code := ProductIdentifier(item)
	if code == "" {
		return nil, false
	}

	name := GetString(item, "ItemName", "Item Name", "itemName", "Nombre", "nombre")
	if name == "" {
		name = code
	}

	// Only the literal status "ACTIVO" means active; anything else,
	// including an absent status, maps to inactive.
	status := strings.ToUpper(GetString(item, "Estado", "estado"))
	active := status == "ACTIVO"

	stock, _ := GetNumber(item, "Stock", "stock")

	return &models.Product{
		Code:                code,
		Name:                name,
		ProductClass:        optString(item, "Clase/Familia", "Clase Familia", "claseFamilia"),
		Category:            optString(item, "Categoría", "Categoria", "categoria"),
		Stock:               stock,
		Colors:              optString(item, "Colores", "colores"),
		UnitOfMeasure:       optString(item, "Unidad de Medida", "UnidadMedida", "unidadMedida"),
		Feature:             optString(item, "Característica", "Caracteristica", "caracteristica"),
		CareRecommendations: optString(item, "Recomendaciones_Cuidados", "RecomendacionesCuidados"),
		UseRecommendations:  optString(item, "Recomendaciones_Usos", "RecomendacionesUsos"),
		PricePerMeter:       optNumber(item, "Precio Metro", "PrecioMetro", "precioMetro"),
		PricePerKilo:        optNumber(item, "Precio Kilos", "PrecioKilos", "precioKilos"),
		Active:              active,
	}, true
}
