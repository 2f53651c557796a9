package sync

// Accepted spellings of taxonomy names.
var (
	categoryNameKeys = []string{"Categoria", "Categoría", "categoria", "nombre"}
	classNameKeys    = []string{"Clase/Familia", "Clase Familia", "claseFamilia", "clase", "familia", "nombre"}
)

// TaxonomyRecord is the mapped shape shared by categories and classes. The
// slug is not part of the mapping; it is derived by the store at creation
// time so updates never rewrite it.
type TaxonomyRecord struct {
	Name   string
	Active bool
}

// MapCategory converts one unwrapped raw record into a category name.
func MapCategory(item RawItem) (*TaxonomyRecord, bool) {
	return mapTaxonomy(item, categoryNameKeys)
}

// MapClass converts one unwrapped raw record into a class/family name.
func MapClass(item RawItem) (*TaxonomyRecord, bool) {
	return mapTaxonomy(item, classNameKeys)
}

func mapTaxonomy(item RawItem, keys []string) (*TaxonomyRecord, bool) {
	name := GetString(item, keys...)
	if name == "" {
		return nil, false
	}
	return &TaxonomyRecord{Name: name, Active: true}, true
}
