// Package utils provides common utility functions for the catalog hub.
// It includes helpers for type conversion and text normalization (diacritic
// stripping, slug derivation) shared by the sync and catalog features.
package utils
