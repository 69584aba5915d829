package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	textfield "github.com/goliatone/go-textfield"
	"github.com/goliatone/go-textfield/pkg/check"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/renderers/live"
	"github.com/goliatone/go-textfield/pkg/renderers/prompt"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	var (
		rendererName string
		errorsFlag   []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render field definitions with a registered renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defs, err := root.definitions(ctx)
			if err != nil {
				return err
			}
			options, err := root.renderOptions()
			if err != nil {
				return err
			}
			options.Errors = errorsFlag

			registry, err := textfield.NewRegistry()
			if err != nil {
				return err
			}
			for _, def := range defs {
				f, err := newField(def)
				if err != nil {
					return fmt.Errorf("field %q: %w", def.ID, err)
				}
				out, err := registry.Render(ctx, rendererName, f, options)
				if err != nil {
					return err
				}
				if err := writeLine(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "vanilla", "Renderer name")
	cmd.Flags().StringArrayVar(&errorsFlag, "error", nil, "Server-side error message to show (repeatable)")
	return cmd
}

func newPromptCmd(root *rootFlags) *cobra.Command {
	var (
		format      string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for each field with terminal prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputFormat, err := render.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			defs, err := root.definitions(ctx)
			if err != nil {
				return err
			}
			options, err := root.renderOptions()
			if err != nil {
				return err
			}

			for _, def := range defs {
				f, err := newField(def)
				if err != nil {
					return fmt.Errorf("field %q: %w", def.ID, err)
				}
				renderer := prompt.New(
					prompt.WithOutputFormat(outputFormat),
					prompt.WithMaxAttempts(maxAttempts),
					prompt.WithValidator(prompt.Validator(check.ForKind(def.Kind))),
				)
				out, err := renderer.Render(ctx, f, options)
				if errors.Is(err, prompt.ErrAborted) {
					return nil
				}
				if err != nil {
					return err
				}
				if err := writeLine(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(render.OutputFormatJSON), "Output format: json, form or pretty")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 3, "Give up after this many rejected answers (0 for no limit)")
	return cmd
}

func newEditCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one field interactively, applying transforms as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputFormat, err := render.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			defs, err := root.definitions(ctx)
			if err != nil {
				return err
			}
			if len(defs) != 1 {
				return fmt.Errorf("edit needs exactly one field, got %d (use --id)", len(defs))
			}
			options, err := root.renderOptions()
			if err != nil {
				return err
			}

			f, err := newField(defs[0])
			if err != nil {
				return fmt.Errorf("field %q: %w", defs[0].ID, err)
			}
			renderer := live.New(
				live.WithOutputFormat(outputFormat),
				live.WithValidator(check.ForKind(defs[0].Kind)),
			)
			out, err := renderer.Render(ctx, f, options)
			if errors.Is(err, live.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(render.OutputFormatJSON), "Output format: json, form or pretty")
	return cmd
}

func writeLine(w io.Writer, out []byte) error {
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
