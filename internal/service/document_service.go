package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"presentation-builder-be/internal/constant"
	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/fileutil"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/tracer"
	"presentation-builder-be/pkg/render"
)

// FilesRequest asks for one subject rendered in one or both formats.
type FilesRequest struct {
	Subject string
	Content json.RawMessage
	Format  string
	Trainer string
	Mode    string
}

// FilesResult lists the formats that were written. Errors names the formats
// that failed.
type FilesResult struct {
	Files  []dto.FileInfo
	Errors []string
}

type IDocumentService interface {
	GenerateFiles(ctx context.Context, req FilesRequest) (*FilesResult, error)
	// DownloadPath resolves a generated file for download.
	DownloadPath(filename string) (string, error)
}

type documentService struct {
	outputDir string
	logoPath  string
	logger    logger.ILogger
}

func NewDocumentService(outputDir, logoPath string, log logger.ILogger) IDocumentService {
	return &documentService{
		outputDir: outputDir,
		logoPath:  logoPath,
		logger:    log,
	}
}

type renderFunc func(doc render.Document, w io.Writer, opts render.Options) error

func (s *documentService) GenerateFiles(ctx context.Context, req FilesRequest) (*FilesResult, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" || dto.IsEmptyJSON(req.Content) {
		return nil, apperr.InvalidParameter("Missing required parameters")
	}

	format := req.Format
	if format == "" {
		format = constant.FormatPDF
	}
	var formats []string
	switch format {
	case constant.FormatPDF, constant.FormatPPTX:
		formats = []string{format}
	case constant.FormatBoth:
		formats = []string{constant.FormatPDF, constant.FormatPPTX}
	default:
		return nil, apperr.InvalidParameter("format must be one of pdf, pptx, both")
	}

	mode := req.Mode
	if mode == "" {
		mode = constant.ModeSections
	}
	if mode != constant.ModeSections && mode != constant.ModeDaily {
		return nil, apperr.InvalidParameter("mode must be one of sections, jour")
	}

	groups, err := render.ParseContent(req.Content, mode == constant.ModeDaily, s.warn)
	if err != nil {
		if errors.Is(err, render.ErrNoContent) {
			return nil, apperr.InvalidParameter("contenu has no sections")
		}
		return nil, apperr.InvalidParameter("contenu is not readable: %v", err)
	}

	trainer := strings.TrimSpace(req.Trainer)
	if trainer == "" {
		trainer = constant.DefaultTrainerName
	}
	doc := render.Document{
		Title:   subject,
		Trainer: trainer,
		Daily:   mode == constant.ModeDaily,
		Groups:  groups,
	}

	logo, err := render.ResolveLogo(s.logoPath, s.outputDir)
	if err != nil {
		s.logger.Warn("DocumentService", "No logo available, rendering without it", map[string]interface{}{"error": err.Error()})
		logo = ""
	}
	opts := render.Options{LogoPath: logo, Warn: s.warn}

	result := &FilesResult{Files: []dto.FileInfo{}}
	safe := fileutil.SafeFilename(subject)
	for _, f := range formats {
		name, fn := s.target(f, safe)
		_, span := tracer.Start(ctx, "render."+f)
		err := s.writeFile(name, doc, opts, fn)
		span.End()
		if err != nil {
			s.logger.Error("DocumentService", "Rendering failed", map[string]interface{}{
				"format": f,
				"file":   name,
				"error":  err.Error(),
			})
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", f, err))
			continue
		}
		result.Files = append(result.Files, dto.FileInfo{
			Type:        f,
			Filename:    name,
			DownloadURL: constant.DownloadRoute + name,
		})
	}

	if len(result.Files) == 0 {
		return nil, fmt.Errorf("no file could be generated: %s", strings.Join(result.Errors, "; "))
	}

	s.logger.Info("DocumentService", "Files generated", map[string]interface{}{
		"subject": subject,
		"mode":    mode,
		"files":   len(result.Files),
	})
	return result, nil
}

func (s *documentService) target(format, safe string) (string, renderFunc) {
	if format == constant.FormatPPTX {
		return fmt.Sprintf(constant.PPTXFileFormat, safe), render.RenderPPTX
	}
	return fmt.Sprintf(constant.PDFFileFormat, safe), render.RenderPDF
}

// writeFile renders into memory first so a failed render never leaves a
// truncated file behind.
func (s *documentService) writeFile(name string, doc render.Document, opts render.Options, fn renderFunc) error {
	var buf bytes.Buffer
	if err := fn(doc, &buf, opts); err != nil {
		return err
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.outputDir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *documentService) DownloadPath(filename string) (string, error) {
	if !fileutil.IsPlainFilename(filename) {
		return "", apperr.NotFound("file %s not found", filename)
	}
	path := filepath.Join(s.outputDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", apperr.NotFound("file %s not found", filename)
	}
	return path, nil
}

func (s *documentService) warn(message string, details map[string]interface{}) {
	s.logger.Warn("DocumentService", message, details)
}
