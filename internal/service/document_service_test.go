package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"presentation-builder-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = `[{
	"title": "Introduction",
	"subsections": [
		{"title": "Pourquoi Go", "content": "Go est simple.", "bullets": ["rapide", "typé"], "table": [["Outil", "Rôle"], ["go vet", "analyse"]]}
	]
}]`

func TestDocumentService_GenerateFiles(t *testing.T) {
	dir := t.TempDir()
	svc := NewDocumentService(dir, "", nopLog)

	result, err := svc.GenerateFiles(context.Background(), FilesRequest{
		Subject: "Programmer en Go",
		Content: json.RawMessage(sampleContent),
		Format:  "both",
		Trainer: "Camille",
	})

	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Empty(t, result.Errors)

	pdf, pptx := result.Files[0], result.Files[1]
	assert.Equal(t, "pdf", pdf.Type)
	assert.Equal(t, "Programmer_en_Go_presentation.pdf", pdf.Filename)
	assert.Equal(t, "/api/download/Programmer_en_Go_presentation.pdf", pdf.DownloadURL)
	assert.Equal(t, "pptx", pptx.Type)
	assert.Equal(t, "Programmer_en_Go_presentation.pptx", pptx.Filename)

	for _, f := range result.Files {
		info, err := os.Stat(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
	assert.FileExists(t, filepath.Join(dir, "default_logo.png"))

	path, err := svc.DownloadPath(pdf.Filename)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, pdf.Filename), path)
}

func TestDocumentService_GenerateFiles_DefaultsToPDF(t *testing.T) {
	svc := NewDocumentService(t.TempDir(), "", nopLog)

	result, err := svc.GenerateFiles(context.Background(), FilesRequest{
		Subject: "Go",
		Content: json.RawMessage(`[{"day": 1, "content": ` + sampleContent + `}]`),
		Mode:    "jour",
	})

	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "pdf", result.Files[0].Type)
}

func TestDocumentService_GenerateFiles_InvalidInput(t *testing.T) {
	svc := NewDocumentService(t.TempDir(), "", nopLog)
	ctx := context.Background()

	tests := []FilesRequest{
		{Content: json.RawMessage(sampleContent)},
		{Subject: "Go"},
		{Subject: "Go", Content: json.RawMessage(`[]`)},
		{Subject: "Go", Content: json.RawMessage(sampleContent), Format: "docx"},
		{Subject: "Go", Content: json.RawMessage(sampleContent), Mode: "semaine"},
		{Subject: "Go", Content: json.RawMessage(`[[]]`)},
	}
	for _, req := range tests {
		_, err := svc.GenerateFiles(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrInvalidParameter)
	}
}

func TestDocumentService_DownloadPath(t *testing.T) {
	dir := t.TempDir()
	svc := NewDocumentService(dir, "", nopLog)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF"), 0o644))

	_, err := svc.DownloadPath("a.pdf")
	assert.NoError(t, err)

	for _, name := range []string{"missing.pdf", "../a.pdf", "sub/a.pdf", ""} {
		_, err := svc.DownloadPath(name)
		assert.ErrorIs(t, err, apperr.ErrNotFound, name)
	}
}
