package scoring

import "strings"

// synonymTable maps a canonical (lowercased) key point to alternative
// substrings that count as mentioning it. Only exact table keys get synonym
// expansion; every other key point is matched by literal containment alone.
var synonymTable = map[string][]string{
	"memoria":      {"ligero", "recursos", "consume menos"},
	"cloud native": {"nube", "enfocado para nube", "cloud"},
	"rapido":       {"cold start", "velocidad", "rápido", "performance"},
	"asincrono":    {"desacoplar", "no afecte", "independiente", "paralelo"},
	"merchant id":  {"codigo del comercio", "comercio", "merchant"},
	"checksum":     {"validar", "verificar", "integridad"},
	"payload":      {"datos", "información", "contenido"},
	"crc":          {"validación", "verificación"},
}

// KeyPointCoverage reports the fraction of key points mentioned by the
// answer, in [0,1]. Matching is case-insensitive substring containment; each
// key point weighs the same and earns no partial credit. Zero key points
// yield zero coverage.
func KeyPointCoverage(answer string, keyPoints []string) float64 {
	if len(keyPoints) == 0 {
		return 0
	}
	text := strings.ToLower(answer)
	found := 0
	for _, kp := range keyPoints {
		if keyPointFound(text, kp) {
			found++
		}
	}
	return float64(found) / float64(len(keyPoints))
}

func keyPointFound(text, keyPoint string) bool {
	kp := strings.ToLower(keyPoint)
	if strings.Contains(text, kp) {
		return true
	}
	for _, syn := range synonymTable[kp] {
		if strings.Contains(text, syn) {
			return true
		}
	}
	return false
}
