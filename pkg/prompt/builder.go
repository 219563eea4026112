package prompt

import (
	"fmt"
	"strings"

	"presentation-builder-be/internal/constant"
	"presentation-builder-be/internal/pkg/apperr"
)

// PlanParams describes the training a plan is generated for.
type PlanParams struct {
	Domain      string
	Subject     string
	Description string
	Level       string
	Days        int
}

// ContentParams describes one plan node to expand.
type ContentParams struct {
	Domain      string
	Subject     string
	Title       string
	Subsections []string
	Day         int
}

type QuizParams struct {
	Content   string
	Level     string
	Questions int
}

// Plan builds the section-based plan prompt.
func Plan(p PlanParams) string {
	var b strings.Builder

	writeRole(&b, p.Domain)
	fmt.Fprintf(&b, "Ton objectif est de générer un plan de présentation détaillé et pédagogique sur le sujet suivant : %s.\n", p.Subject)
	writeDescription(&b, p.Description)
	fmt.Fprintf(&b, "Ce plan est destiné à des apprenants de niveau %s.\n\n", p.Level)

	b.WriteString("Ce plan doit comporter :\n")
	b.WriteString("  - Des sections principales clairement définies.\n")
	b.WriteString("  - Pour chaque section, des sous-sections sous forme de guidelines détaillées, spécifiques et pertinentes.\n")
	b.WriteString("  - Un contenu progressif, pédagogique et adapté au niveau des apprenants.\n")
	b.WriteString("  - Des titres de sections uniques.\n\n")

	b.WriteString("N'intègre pas encore le contenu complet de la présentation, uniquement le plan détaillé avec les titres des sections et sous-sections.\n")
	fmt.Fprintf(&b, "Pour la conclusion, n'ajoute pas de sous-sections : utilise la valeur \"%s\".\n\n", "none")

	b.WriteString(constant.JSONOnlyInstruction)
	b.WriteString("\n\n")
	writeExample(&b, constant.PlanExampleJSON)

	return b.String()
}

// DailyPlan builds the day-indexed plan prompt. days must be at least 1.
func DailyPlan(p PlanParams) (string, error) {
	if p.Days < 1 {
		return "", apperr.InvalidParameter("nombre_jours must be a positive integer, got %d", p.Days)
	}

	var b strings.Builder

	writeRole(&b, p.Domain)
	fmt.Fprintf(&b, "Ton objectif est de générer un plan de présentation détaillé et pédagogique sur le sujet suivant : %s, organisé sur %d jours de formation.\n", p.Subject, p.Days)
	writeDescription(&b, p.Description)
	fmt.Fprintf(&b, "Ce plan est destiné à des apprenants de niveau %s en %s.\n\n", p.Level, p.Domain)

	b.WriteString("Ce plan doit comporter :\n")
	fmt.Fprintf(&b, "  - Une organisation par jours (de 1 à %d), avec le numéro du jour dans \"day\".\n", p.Days)
	b.WriteString("  - Pour chaque jour, plusieurs sessions principales clairement définies et de titres uniques.\n")
	b.WriteString("  - Pour chaque session, des sous-sections sous forme de guidelines détaillées, spécifiques et pertinentes.\n")
	fmt.Fprintf(&b, "  - Une répartition équilibrée des sessions sur les %d jours.\n\n", p.Days)

	b.WriteString("N'intègre pas encore le contenu complet de la présentation, uniquement le plan détaillé avec les titres des sessions et sous-sections.\n\n")

	b.WriteString(constant.JSONOnlyInstruction)
	b.WriteString("\n\n")
	writeExample(&b, constant.DailyPlanExampleJSON)

	return b.String(), nil
}

// Content builds the prompt expanding one plan section.
func Content(p ContentParams) string {
	var b strings.Builder

	writeRole(&b, p.Domain)
	fmt.Fprintf(&b, "Ton objectif est de générer le contenu pédagogique détaillé pour la section suivante d'une présentation sur le sujet %s.\n\n", p.Subject)
	fmt.Fprintf(&b, "Voici la section à développer :\n  %s :\n    Sous-sections : %s\n\n", p.Title, strings.Join(p.Subsections, " // "))

	b.WriteString("Pour chaque sous-section (sauf conclusion) :\n")
	b.WriteString("  - Rédige une explication détaillée de tous les concepts d'une façon claire et progressive.\n")
	b.WriteString("  - Ajoute si nécessaire des exemples bien commentés, le code étant une liste de lignes dans \"code\".\n")
	b.WriteString("  - Utilise si nécessaire des tableaux (\"table\", première ligne = en-têtes) ou des listes à puces (\"bullets\").\n\n")

	fmt.Fprintf(&b, "Le titre du JSON doit être exactement \"%s\".\n", p.Title)
	b.WriteString(constant.JSONOnlyInstruction)
	b.WriteString("\n\n")
	writeExample(&b, constant.ContentExampleJSON)

	return b.String()
}

// DailyContent builds the prompt expanding one session of a given day.
func DailyContent(p ContentParams) string {
	var b strings.Builder

	writeRole(&b, p.Domain)
	fmt.Fprintf(&b, "Ton objectif est de générer le contenu pédagogique détaillé pour la session suivante, qui fait partie du jour %d d'une présentation sur le sujet %s.\n\n", p.Day, p.Subject)
	fmt.Fprintf(&b, "Voici la session à développer :\n  Session : %s\n  Sous-sections : %s\n\n", p.Title, strings.Join(p.Subsections, ", "))

	b.WriteString("Pour chaque sous-section :\n")
	b.WriteString("  1. Rédige une explication détaillée de tous les concepts d'une façon claire et progressive.\n")
	b.WriteString("  2. Ajoute des exemples bien commentés quand c'est pertinent (\"example\").\n")
	b.WriteString("  3. Utilise des tableaux pour synthétiser les informations complexes (\"table\").\n")
	b.WriteString("  4. Si applicable, inclus des points clés sous forme de liste à puces (\"bullets\").\n")
	b.WriteString("  5. Pour les sujets techniques, ajoute des exemples de code (\"code\", une ligne par élément).\n\n")

	fmt.Fprintf(&b, "Le titre du JSON doit être exactement \"%s\".\n", p.Title)
	b.WriteString(constant.JSONOnlyInstruction)
	b.WriteString("\n\n")
	writeExample(&b, constant.ContentExampleJSON)

	return b.String()
}

// QuizSystem is the fixed system instruction of every quiz request.
func QuizSystem() string {
	return constant.QuizSystemPrompt
}

// Quiz builds the user prompt of a quiz request.
func Quiz(p QuizParams) string {
	var b strings.Builder

	b.WriteString("### Données d'entrée :\n")
	fmt.Fprintf(&b, "  - contenu de la formation : %s\n", p.Content)
	fmt.Fprintf(&b, "  - niveau de difficulté : %s\n", p.Level)
	fmt.Fprintf(&b, "  - nombre de questions : %d\n\n", p.Questions)

	b.WriteString(constant.JSONOnlyInstruction)
	b.WriteString("\n")
	b.WriteString("La sortie doit être exactement au même format que l'exemple : une seule liste contenant des objets.\n")
	b.WriteString("\"reponse\" contient uniquement des clés parmi choix_1, choix_2 et choix_3.\n\n")
	writeExample(&b, constant.QuizExampleJSON)

	return b.String()
}

func writeRole(b *strings.Builder, domain string) {
	fmt.Fprintf(b, "Tu es un formateur expert en %s.\n", domain)
}

func writeDescription(b *strings.Builder, description string) {
	if strings.TrimSpace(description) == "" {
		return
	}
	fmt.Fprintf(b, "Description du sujet : %s\n", description)
}

func writeExample(b *strings.Builder, example string) {
	b.WriteString("Exemple de résultat attendu :\n")
	b.WriteString(example)
	b.WriteString("\n")
}
