package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldspec"
	"github.com/goliatone/go-textfield/pkg/render"
)

type rootFlags struct {
	debugMode     bool
	specPath      string
	openAPIPath   string
	schemaName    string
	fieldID       string
	locale        string
	catalogPath   string
	defaultLocale string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "textfield",
		Short: "Render and edit declarative text fields",
		Example: `  textfield render --spec fields.yaml
  textfield prompt --spec fields.yaml --format pretty
  textfield edit --openapi api.yaml --schema Account --id handle`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flags.debugMode {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.debugMode, "debug", "d", false, "Enable debug logging")
	pf.StringVar(&flags.specPath, "spec", "", "Field definition file or directory (YAML/JSON)")
	pf.StringVar(&flags.openAPIPath, "openapi", "", "OpenAPI document to read field definitions from")
	pf.StringVar(&flags.schemaName, "schema", "", "Component schema name used with --openapi")
	pf.StringVar(&flags.fieldID, "id", "", "Only use the field with this id")
	pf.StringVar(&flags.locale, "locale", "", "Locale for translated labels and helper text")
	pf.StringVar(&flags.catalogPath, "catalog", "", "Translation catalog (YAML: locale -> key -> message)")
	pf.StringVar(&flags.defaultLocale, "default-locale", "en", "Catalog fallback locale")

	cmd.AddCommand(newRenderCmd(&flags))
	cmd.AddCommand(newPromptCmd(&flags))
	cmd.AddCommand(newEditCmd(&flags))

	return cmd
}

// definitions loads the field definitions selected by the flags.
func (f *rootFlags) definitions(ctx context.Context) ([]fieldspec.Definition, error) {
	var (
		defs []fieldspec.Definition
		err  error
	)
	switch {
	case f.specPath != "" && f.openAPIPath != "":
		return nil, errors.New("--spec and --openapi are mutually exclusive")
	case f.specPath != "":
		defs, err = loadSpec(f.specPath)
	case f.openAPIPath != "":
		if f.schemaName == "" {
			return nil, errors.New("--schema is required with --openapi")
		}
		var data []byte
		data, err = os.ReadFile(f.openAPIPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.openAPIPath, err)
		}
		defs, err = fieldspec.FromOpenAPI(ctx, data, f.schemaName)
	default:
		return nil, errors.New("one of --spec or --openapi is required")
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded field definitions", "count", len(defs))
	return selectDefinitions(defs, f.fieldID)
}

func loadSpec(path string) ([]fieldspec.Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		set, err := fieldspec.LoadFS(os.DirFS(path))
		if err != nil {
			return nil, err
		}
		return set.List(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fieldspec.Parse(data, path)
}

func selectDefinitions(defs []fieldspec.Definition, id string) ([]fieldspec.Definition, error) {
	if len(defs) == 0 {
		return nil, errors.New("no field definitions found")
	}
	if id == "" {
		return defs, nil
	}
	for _, def := range defs {
		if def.ID == id {
			return []fieldspec.Definition{def}, nil
		}
	}
	return nil, fmt.Errorf("field %q not found", id)
}

// renderOptions builds the per-request options shared by every subcommand.
func (f *rootFlags) renderOptions() (render.RenderOptions, error) {
	options := render.RenderOptions{Locale: f.locale}
	if f.catalogPath == "" {
		return options, nil
	}
	data, err := os.ReadFile(f.catalogPath)
	if err != nil {
		return options, fmt.Errorf("read %s: %w", f.catalogPath, err)
	}
	catalog, err := render.ParseCatalog(f.defaultLocale, data)
	if err != nil {
		return options, err
	}
	options.Translator = catalog
	options.OnMissing = func(locale, key string, params []any, err error) string {
		slog.Debug("Missing translation", "locale", locale, "key", key, "error", err)
		if m, ok := params[0].(map[string]any); ok {
			if fallback, _ := m["default"].(string); fallback != "" {
				return fallback
			}
		}
		return key
	}
	return options, nil
}

// newField builds a field whose commits are logged at debug level.
func newField(def fieldspec.Definition) (*field.Field, error) {
	return field.New(def.Config(func(value string) {
		slog.Debug("Value committed", "field", def.ID, "value", value)
	}))
}
