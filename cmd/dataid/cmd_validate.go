package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dataid/internal/config"
	"dataid/value"
)

func newValidateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a schema file and list its fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, schemaPath)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Schema YAML file (required)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	f, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	s, diags, err := f.Schema()
	diags.WithSource(path)

	if all := diags.All(); len(all) > 0 {
		t := newTable()
		t.AppendHeader([]any{"Severity", "Code", "Field", "Message"})

		for _, d := range all {
			msg := d.Message
			if len(d.Suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
			}

			t.AppendRow([]any{d.Severity, d.Code, d.Field, msg})
		}

		fmt.Fprintln(out, t.Render())
	}

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	t := newTable()
	t.AppendHeader([]any{"Field", "Required", "Transitive", "Type", "Default"})

	for _, def := range config.FromSchema(s).Fields {
		typ := def.Type
		if def.Enum != nil {
			typ = "enum[" + strings.Join(def.Enum, ", ") + "]"
		}

		dflt := ""
		if def.Default != nil {
			dflt = value.Repr(def.Default)
		}

		t.AppendRow([]any{def.Name, def.Required, def.Transitive, typ, dflt})
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%s: %d fields, ok\n", path, s.Len())

	return nil
}
