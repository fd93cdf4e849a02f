package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file.json>",
	Short: "Render a résumé to HTML, plain text or PDF",
	Long:  "Renders a résumé JSON file with one of the built-in templates. PDF output needs a local Chrome or Chromium.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderTemplate string
	renderFormat   string
	renderOutput   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", string(types.DefaultTemplate), "Template: modern, professional, creative or minimalist")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, txt or pdf")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file (default derived from the résumé title, - for stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	tmpl, err := types.ParseTemplate(renderTemplate)
	if err != nil {
		return err
	}
	format, err := rendering.ParseFormat(renderFormat)
	if err != nil {
		return err
	}
	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	exporter := &rendering.Exporter{}
	if format == rendering.FormatPDF {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		exporter.PDF = rendering.NewChromePDF(cfg.Rendering.ChromePath, cfg.Rendering.PDFTimeout)
	}

	ctx := commandContext(cmd)
	data, err := exporter.Export(ctx, doc, tmpl, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", args[0], err)
	}

	out := renderOutput
	if out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if out == "" {
		out = rendering.Filename(doc, format)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
	return nil
}
