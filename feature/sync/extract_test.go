package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Run("First Match In Priority Order", func(t *testing.T) {
		item := RawItem{"Nombre": "Segundo", "Razón Social": "Primero"}
		assert.Equal(t, "Primero", GetString(item, "Razón Social", "Nombre"))
	})

	t.Run("Skips Empty And Whitespace Values", func(t *testing.T) {
		item := RawItem{"a": "  ", "b": "val"}
		assert.Equal(t, "val", GetString(item, "a", "b"))
	})

	t.Run("Stringifies Numbers Without Decimal Tail", func(t *testing.T) {
		item := RawItem{"id": 900123456.0}
		assert.Equal(t, "900123456", GetString(item, "id"))
	})

	t.Run("Skips Null Values", func(t *testing.T) {
		item := RawItem{"a": nil, "b": "val"}
		assert.Equal(t, "val", GetString(item, "a", "b"))
	})

	t.Run("No Match Returns Empty", func(t *testing.T) {
		assert.Equal(t, "", GetString(RawItem{"x": "y"}, "a", "b"))
	})
}

func TestGetNumber(t *testing.T) {
	t.Run("Parses Numeric Strings", func(t *testing.T) {
		f, ok := GetNumber(RawItem{"Stock": "12.5"}, "Stock")
		assert.True(t, ok)
		assert.Equal(t, 12.5, f)
	})

	t.Run("Skips Unparseable Candidates", func(t *testing.T) {
		f, ok := GetNumber(RawItem{"a": "n/a", "b": 3.0}, "a", "b")
		assert.True(t, ok)
		assert.Equal(t, 3.0, f)
	})

	t.Run("No Match", func(t *testing.T) {
		_, ok := GetNumber(RawItem{}, "Stock")
		assert.False(t, ok)
	})
}

func TestGetIdentifier(t *testing.T) {
	t.Run("Exact Key Wins", func(t *testing.T) {
		item := RawItem{"CardCode": "C001"}
		assert.Equal(t, "C001", GetIdentifier(item, clientIDKeys, clientIDTokens))
	})

	t.Run("Fuzzy Fallback Matches Unknown Spellings By Token", func(t *testing.T) {
		// "CARD-CODE" is in no exact list; the normalized key still
		// contains the "card" token.
		item := RawItem{"CARD-CODE": "C777"}
		assert.Equal(t, "C777", GetIdentifier(item, clientIDKeys, clientIDTokens))
	})

	t.Run("Fuzzy Fallback Strips Diacritics", func(t *testing.T) {
		item := RawItem{"Código Interno": "Z9"}
		assert.Equal(t, "Z9", GetIdentifier(item, nil, []string{"codigo"}))
	})

	t.Run("No Identifier", func(t *testing.T) {
		item := RawItem{"Nombre": "sin codigo"}
		assert.Equal(t, "", GetIdentifier(item, clientIDKeys, clientIDTokens))
	})
}

func TestFuzzySpacedItemCode(t *testing.T) {
	// Both upstream spellings resolve through the production key lists.
	a := ProductIdentifier(RawItem{"Item Code": "TX10"})
	b := ProductIdentifier(RawItem{"ItemCode": "TX10"})
	assert.Equal(t, a, b)
	assert.Equal(t, "TX10", a)
}
