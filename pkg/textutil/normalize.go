// Package textutil normaliza texto en español para búsquedas:
// "Almacén" y "almacen" deben encontrar el mismo producto.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// remover marcas diacríticas tras descomponer (NFD) y recomponer (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve el término en minúsculas y sin tildes/diacríticos.
// Si la transformación falla (entrada no UTF-8 válida) devuelve el término
// original en minúsculas: una búsqueda menos precisa, nunca un error.
func Normalize(term string) string {
	folded, _, err := transform.String(foldTransformer, term)
	if err != nil {
		return strings.ToLower(term)
	}
	return strings.ToLower(folded)
}
