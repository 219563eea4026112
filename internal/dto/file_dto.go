package dto

import (
	"encoding/json"

	"presentation-builder-be/internal/pkg/serverutils"
)

type GenerateFilesRequest struct {
	Sujet       string          `json:"sujet" validate:"required"`
	Contenu     json.RawMessage `json:"contenu"`
	Format      string          `json:"format" validate:"omitempty,oneof=pdf pptx both"`
	TrainerName string          `json:"trainer_name"`
	Mode        string          `json:"mode" validate:"omitempty,oneof=sections jour"`
}

type FileInfo struct {
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

type GenerateFilesResponse struct {
	serverutils.Envelope
	Files  []FileInfo `json:"files"`
	Errors []string   `json:"errors,omitempty"`
}
