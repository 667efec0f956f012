package persona

import "regexp"

// MaxAuxiliaryScore caps each auxiliary score.
const MaxAuxiliaryScore = 10

// Auxiliary holds the secondary 0–10 readings. They are informational and do
// not influence the category decision.
type Auxiliary struct {
	EmotionalIntensity int `json:"emotional_intensity"`
	AnalyticalDepth    int `json:"analytical_depth"`
	CreativityMarkers  int `json:"creativity_markers"`
}

type weighted struct {
	re     *regexp.Regexp
	points int
}

var emotionalFamily = []weighted{
	{regexp.MustCompile(`(?i)\b(amo|odeio|adoro|feliz|triste|raiva|alegria|paix\pL+|ansios\pL*|frustrad\pL*)\b`), 2},
	{regexp.MustCompile(`(?i)\b(muito|demais|extremamente|totalmente|super)\b`), 1},
	{regexp.MustCompile(`!`), 1},
	{regexp.MustCompile(`\b[A-Z]{4,}\b`), 1},
}

var analyticalFamily = []weighted{
	{regexp.MustCompile(`(?i)\b(portanto|consequentemente|entretanto|contudo|por outro lado|além disso|em resumo)\b`), 2},
	{regexp.MustCompile(`(?i)\b(mais|menos|melhor|pior) (do )?que\b`), 1},
	{regexp.MustCompile(`\d+`), 1},
	{regexp.MustCompile(`(?i)\b(hipótese|evidência|critério|variáve\pL+|métrica\pL*)`), 2},
}

var creativityFamily = []weighted{
	{regexp.MustCompile(`(?i)\b(imagin\pL*|sonh\pL*|invent\pL*|inspira\pL*)`), 2},
	{regexp.MustCompile(`(?i)\b(como se|feito um|parece um)\b`), 2},
	{regexp.MustCompile(`(?i)\b(e se|quem sabe um dia|por que não)\b`), 1},
	{regexp.MustCompile(`(?i)\b(cor|cores|som|música|desenho|história)\b`), 1},
}

func familyScore(text string, family []weighted) int {
	total := 0
	for _, w := range family {
		total += len(w.re.FindAllStringIndex(text, -1)) * w.points
		if total >= MaxAuxiliaryScore {
			return MaxAuxiliaryScore
		}
	}
	return total
}

// EmotionalIntensity scores affective vocabulary, intensifiers, exclamations
// and shouting.
func EmotionalIntensity(text string) int { return familyScore(text, emotionalFamily) }

// AnalyticalDepth scores argumentative connectives, comparisons and data.
func AnalyticalDepth(text string) int { return familyScore(text, analyticalFamily) }

// CreativityMarkers scores imagination vocabulary, metaphors and hypotheticals.
func CreativityMarkers(text string) int { return familyScore(text, creativityFamily) }

// AuxiliaryScores computes all three auxiliary readings.
func AuxiliaryScores(text string) Auxiliary {
	return Auxiliary{
		EmotionalIntensity: EmotionalIntensity(text),
		AnalyticalDepth:    AnalyticalDepth(text),
		CreativityMarkers:  CreativityMarkers(text),
	}
}
