package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/service"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <content.json>",
	Short: "Render a content file to PDF and/or PPTX without starting the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("subject", "", "Presentation subject (defaults to the file name)")
	renderCmd.Flags().String("format", "both", "Output format: pdf, pptx or both")
	renderCmd.Flags().String("mode", "sections", "Content layout: sections or jour")
	renderCmd.Flags().String("trainer", "", "Trainer name shown on the presenter slide")
	renderCmd.Flags().String("out", "", "Output folder (defaults to OUTPUT_FOLDER)")
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if !json.Valid(raw) {
		return fmt.Errorf("%s is not valid JSON", args[0])
	}

	cfg := config.Load()
	subject, _ := cmd.Flags().GetString("subject")
	if subject == "" {
		base := filepath.Base(args[0])
		subject = base[:len(base)-len(filepath.Ext(base))]
	}
	format, _ := cmd.Flags().GetString("format")
	mode, _ := cmd.Flags().GetString("mode")
	trainer, _ := cmd.Flags().GetString("trainer")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.App.OutputFolder
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	log := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer log.Sync()

	docs := service.NewDocumentService(out, cfg.App.LogoPath, log)
	res, err := docs.GenerateFiles(cmd.Context(), service.FilesRequest{
		Subject: subject,
		Content: raw,
		Format:  format,
		Trainer: trainer,
		Mode:    mode,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Files {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(out, f.Filename))
	}
	for _, e := range res.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", e)
	}
	return nil
}
