package entity

// ChoiceKeys are the only values allowed in QuizItem.Reponse.
var ChoiceKeys = []string{"choix_1", "choix_2", "choix_3"}

type QuizItem struct {
	Question string   `json:"question"`
	Choix1   string   `json:"choix_1"`
	Choix2   string   `json:"choix_2"`
	Choix3   string   `json:"choix_3"`
	Reponse  []string `json:"reponse"`
}

// Choices returns the option texts in display order.
func (q QuizItem) Choices() []string {
	return []string{q.Choix1, q.Choix2, q.Choix3}
}

// ChoiceText resolves a choice key such as "choix_2" to its text.
func (q QuizItem) ChoiceText(key string) (string, bool) {
	switch key {
	case "choix_1":
		return q.Choix1, true
	case "choix_2":
		return q.Choix2, true
	case "choix_3":
		return q.Choix3, true
	}
	return "", false
}

// CorrectAnswers returns the texts of the correct choices.
func (q QuizItem) CorrectAnswers() []string {
	out := make([]string, 0, len(q.Reponse))
	for _, key := range q.Reponse {
		if text, ok := q.ChoiceText(key); ok {
			out = append(out, text)
		}
	}
	return out
}

// SingleAnswer reports whether exactly one choice is correct.
func (q QuizItem) SingleAnswer() bool {
	return len(q.Reponse) == 1
}

// ItemKind names what each entry of a multi-quiz batch was built from.
type ItemKind string

const (
	ItemKindDay     ItemKind = "day"
	ItemKindSection ItemKind = "section"
)

// Label is the human prefix used in error strings ("Day 2: ...").
func (k ItemKind) Label() string {
	if k == ItemKindSection {
		return "Section"
	}
	return "Day"
}

// FormTitleSuffix renders the French title fragment for item n.
func (k ItemKind) FormTitleSuffix(n int) string {
	if k == ItemKindSection {
		return "Quiz de la section " + itoa(n)
	}
	return "Quiz du jour " + itoa(n)
}

// QuizBatch is positionally aligned with its input: failed slots are nil.
type QuizBatch struct {
	Quizzes    [][]QuizItem `json:"quiz_data"`
	Errors     []string     `json:"errors"`
	Successful int          `json:"successful"`
	Total      int          `json:"total"`
}

// Failed is true only when no slot succeeded.
func (b *QuizBatch) Failed() bool {
	return b.Successful == 0
}
