package dto

import (
	"encoding/json"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/serverutils"
)

type GeneratePlanRequest struct {
	Domaine          string `json:"domaine" validate:"required"`
	Sujet            string `json:"sujet" validate:"required"`
	DescriptionSujet string `json:"description_sujet"`
	NiveauApprenant  string `json:"niveau_apprenant"`
}

type GeneratePlanResponse struct {
	serverutils.Envelope
	Plan *entity.Plan `json:"plan"`
}

type GenerateDailyPlanRequest struct {
	GeneratePlanRequest
	NombreJours FlexInt `json:"nombre_jours"`
}

type GenerateDailyPlanResponse struct {
	serverutils.Envelope
	PlanJour []entity.DayPlan `json:"plan_jour"`
}

// GenerateContentRequest keeps the plan raw so it can be decoded leniently
// once presence has been checked.
type GenerateContentRequest struct {
	Domaine string          `json:"domaine" validate:"required"`
	Sujet   string          `json:"sujet" validate:"required"`
	Plan    json.RawMessage `json:"plan"`
}

type GenerateContentResponse struct {
	serverutils.Envelope
	Content []entity.ContentNode `json:"content"`
}

type GenerateDailyContentRequest struct {
	Domaine  string          `json:"domaine" validate:"required"`
	Sujet    string          `json:"sujet" validate:"required"`
	PlanJour json.RawMessage `json:"plan_jour"`
}

type GenerateDailyContentResponse struct {
	serverutils.Envelope
	ContenuJour []entity.DayContent `json:"contenu_jour"`
}
