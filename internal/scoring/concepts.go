package scoring

import "strings"

// conceptPair ties vocabulary expected in a model answer to vocabulary an
// applicant might use to express the same idea in different words.
type conceptPair struct {
	expected []string
	user     []string
}

var conceptPairs = []conceptPair{
	{expected: []string{"tráfico", "trafico"}, user: []string{"distribucion", "distribución"}},
	{expected: []string{"5-10%", "porcentaje", "mínimo"}, user: []string{"minima", "mínima", "pequeño", "poco"}},
	{expected: []string{"errores", "error"}, user: []string{"exito", "éxito", "transacional"}},
	{expected: []string{"latencia"}, user: []string{"tiempo", "respuesta", "velocidad"}},
	{expected: []string{"monitoreo", "métricas"}, user: []string{"monitoreo", "seguimiento", "control"}},
	{expected: []string{"rollout", "despliegue"}, user: []string{"rollout", "despliegue", "implementación"}},
	{expected: []string{"memoria"}, user: []string{"ligero", "recursos", "consume menos"}},
	{expected: []string{"cloud native"}, user: []string{"nube", "enfocado para nube", "cloud"}},
	{expected: []string{"rapido"}, user: []string{"cold start", "velocidad", "rápido", "performance"}},
	{expected: []string{"asincrono"}, user: []string{"desacoplar", "no afecte", "independiente", "paralelo"}},
}

// Each matched pair counts as this many word-equivalents in the similarity
// ratio.
const conceptPairBonus = 2

// ConceptBonus awards word-equivalents when the model text mentions one side
// of a known concept pair and the applicant text mentions the other. Both
// inputs must already be lowercased.
func ConceptBonus(userText, expectedText string) int {
	bonus := 0
	for _, p := range conceptPairs {
		if containsAny(expectedText, p.expected) && containsAny(userText, p.user) {
			bonus += conceptPairBonus
		}
	}
	return bonus
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
