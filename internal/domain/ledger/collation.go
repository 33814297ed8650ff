package ledger

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collate.Collator y cases.Caser no son seguros para uso concurrente.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Turkish, collate.IgnoreCase)
)

// compareNames compara nombres con reglas turcas (ç, ğ, ı, İ, ö, ş, ü).
func compareNames(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// foldTurkish pasa a minúsculas con reglas turcas ("İ" → "i", "I" → "ı").
func foldTurkish(s string) string {
	return cases.Lower(language.Turkish).String(strings.TrimSpace(s))
}

// MatchesName indica si name contiene search (sin distinguir mayúsculas, reglas turcas).
// Un search vacío coincide siempre.
func MatchesName(name, search string) bool {
	search = foldTurkish(search)
	if search == "" {
		return true
	}
	return strings.Contains(foldTurkish(name), search)
}
