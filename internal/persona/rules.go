package persona

import "regexp"

// KeywordPoints is credited once per distinct keyword found in the text.
const KeywordPoints = 2

// MaxPatternMultiplier caps how many matches of one pattern are credited.
const MaxPatternMultiplier = 3

// Pattern is a named regular expression with a per-match weight.
type Pattern struct {
	Name   string
	Weight float64
	re     *regexp.Regexp
}

// Count returns the number of non-overlapping matches in text.
func (p Pattern) Count(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}

// RuleSet is the evidence table for one category.
type RuleSet struct {
	Keywords []string
	Patterns []Pattern
}

func pattern(name string, weight float64, expr string) Pattern {
	return Pattern{Name: name, Weight: weight, re: regexp.MustCompile(expr)}
}

// rules is indexed by Category. Keywords are lower-case substrings; patterns
// run against the original text.
var rules = [numCategories]RuleSet{
	Analitico: {
		Keywords: []string{"analis", "dados", "lógic", "planej", "estrutur", "método", "process", "avaliar", "comparar", "detalhe"},
		Patterns: []Pattern{
			pattern("lista numerada", 4, `(?m)^\s*\d+[.)]\s`),
			pattern("marcadores sequenciais", 3, `(?i)\b(primeiro|segundo|terceiro|depois|por fim|finalmente)\b`),
			pattern("conectivos causais", 2, `(?i)\b(porque|portanto|logo|consequentemente|assim sendo)\b`),
			pattern("dados numéricos", 1, `\d+(?:[.,]\d+)?\s*%`),
		},
	},
	Pragmatico: {
		Keywords: []string{"agir", "entregar", "resultado", "fazer", "execut", "prátic", "objetivo", "metas", "direto", "rápid"},
		Patterns: []Pattern{
			pattern("verbos de ação", 2, `(?i)\b(faço|fiz|resolvo|resolvi|decido|decidi|começo|comecei)\b`),
			pattern("urgência", 2, `(?i)\b(agora|hoje|imediatamente|urgente|curto prazo)\b`),
			pattern("foco em eficiência", 1, `(?i)\b(efici\pL*|produtiv\pL*|simples)\b`),
		},
	},
	Criativo: {
		Keywords: []string{"imagin", "ideia", "criar", "criativ", "inov", "artíst", "sonh", "inventar", "diferente", "original"},
		Patterns: []Pattern{
			pattern("metáforas", 2, `(?i)\b(como se|feito um|tipo um|parece um)\b`),
			pattern("possibilidades", 2, `(?i)\b(e se|imagine|poderíamos)\b`),
			pattern("exclamações", 1, `!`),
		},
	},
	Colaborativo: {
		Keywords: []string{"equipe", "junt", "pessoas", "ajudar", "colabor", "time", "grupo", "parceri", "ouvir", "comunidade"},
		Patterns: []Pattern{
			pattern("primeira pessoa do plural", 2, `(?i)\b(nosso|nossa|nossos|nossas|a gente)\b`),
			pattern("empatia", 2, `(?i)\b(sinto|sentir|sentimos|entendo|compreendo)\b`),
		},
	},
	Visionario: {
		Keywords: []string{"futuro", "visão", "propósito", "transform", "impacto", "legado", "longo prazo", "mudar o mundo", "missão", "estratég"},
		Patterns: []Pattern{
			pattern("horizonte temporal", 3, `(?i)\b(daqui a \d+ anos|no futuro|a longo prazo|um dia)\b`),
			pattern("ambição", 1, `(?i)\b(sempre|nunca|tudo|todos|mundo)\b`),
		},
	},
	Hesitante: {
		Keywords: []string{"acho", "talvez", "não sei", "pensando bem", "dúvida", "medo", "insegur", "receio", "hesit", "confus"},
		Patterns: []Pattern{
			pattern("atenuadores", 2, `(?i)\b(acho|talvez|quem sabe|pode ser)\b|\bsei l[aá]`),
			pattern("condicionais", 2, `(?i)\b(deveria|poderia|seria|devesse|pudesse|fosse)\b`),
			pattern("reticências", 1, `\.\.\.|…`),
			pattern("interrogações", 1, `\?`),
		},
	},
}

// Rules returns the evidence table for c.
func Rules(c Category) RuleSet {
	if !c.Valid() {
		return RuleSet{}
	}
	return rules[c]
}
