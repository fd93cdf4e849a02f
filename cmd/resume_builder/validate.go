package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a résumé JSON file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	err = schemas.ValidateResumeJSON(content)
	observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(err)

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%s is not a valid résumé (%d problem(s))", args[0], len(ve.Errors))
	}
	return err
}
