package main

import (
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.json>",
	Short: "Print a summary of a résumé file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectTemplate string

func init() {
	inspectCmd.Flags().StringVarP(&inspectTemplate, "template", "t", "", "Also show the layout produced by this template")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintDocument(doc)

	if inspectTemplate == "" {
		return nil
	}
	tmpl, err := types.ParseTemplate(inspectTemplate)
	if err != nil {
		return err
	}
	view, err := rendering.Render(doc, tmpl)
	if err != nil {
		return err
	}
	printer.PrintView(view)
	return nil
}
