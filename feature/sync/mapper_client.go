package sync

import (
	"strings"

	"icoltex-hub/feature/catalog/models"
)

// Accepted spellings of the client identifier, exact pass first.
var clientIDKeys = []string{"CardCode", "Card Code", "cardCode", "cardcode", "card_code", "Código", "Codigo", "codigo", "id", "ID"}

// Fuzzy fallback tokens for the client identifier.
var clientIDTokens = []string{"card", "codigo"}

// ClientIdentifier returns the record's client identifier, or "" when none
// of the accepted spellings (or fuzzy fallbacks) resolve.
func ClientIdentifier(item RawItem) string {
	return GetIdentifier(item, clientIDKeys, clientIDTokens)
}

// MapClient converts one unwrapped raw record into a canonical client.
// Returns false when no identifier can be resolved; such records are counted
// as skipped by the reconciler, never as errors.
func MapClient(item RawItem) (*models.Client, bool) {
	code := ClientIdentifier(item)
	if code == "" {
		return nil, false
	}

	name := GetString(item, "Razón Social", "Razon Social", "Nombre Comercial", "nombreComercial", "Nombre", "nombre")
	if name == "" {
		name = code
	}

	country := GetString(item, "País", "Pais", "pais")
	if country == "" {
		country = "Colombia"
	}

	return &models.Client{
		Code:           strings.ToUpper(code),
		Name:           name,
		DocumentType:   inferDocumentType(code),
		DocumentNumber: code,
		Email:          optString(item, "Correo Electrónico", "Correo Electronico", "correoElectronico", "Email", "email"),
		Phone:          optString(item, "Telefono", "telefono", "Teléfono"),
		Address:        optString(item, "Dirección", "Direccion", "direccion"),
		City:           optString(item, "Ciudad", "ciudad"),
		Department:     optString(item, "Departamento", "departamento"),
		Country:        country,
		Active:         true,
	}, true
}

// inferDocumentType guesses the document type from the lexical shape of the
// upstream code. This is a heuristic, not a validated classification;
// consumers must treat the result as best-effort.
func inferDocumentType(code string) models.DocumentType {
	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "NIT"), isAllDigits(code) && len(code) >= 9:
		return models.DocumentNIT
	case strings.HasPrefix(upper, "CE"):
		return models.DocumentCE
	case strings.HasPrefix(upper, "P"):
		return models.DocumentPassport
	default:
		return models.DocumentCC
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// optString resolves an optional attribute: absent maps to nil, never to "".
func optString(item RawItem, keys ...string) *string {
	s := GetString(item, keys...)
	if s == "" {
		return nil
	}
	return &s
}

// optNumber resolves an optional numeric attribute.
func optNumber(item RawItem, keys ...string) *float64 {
	f, ok := GetNumber(item, keys...)
	if !ok {
		return nil
	}
	return &f
}
