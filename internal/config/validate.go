package config

import (
	"fmt"

	"dataid/internal/common"
	"dataid/internal/dataid"
	"dataid/internal/diagnostic"
	"dataid/internal/match"
)

// Validate checks every field record of f and reports all problems.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "")
		return res
	}

	if len(f.Fields) == 0 {
		res.AddWarning("empty_schema", "schema declares no fields", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Fields {
		def := &f.Fields[i]

		if def.Name == "" {
			res.AddError(diagnostic.CodeEmptyFieldName, fmt.Sprintf("field #%d has an empty name", i+1), "")
			continue
		}

		if _, dup := seen[def.Name]; dup {
			res.AddError(diagnostic.CodeDuplicateField, fmt.Sprintf("field %q declared twice", def.Name), def.Name)
			continue
		}

		seen[def.Name] = struct{}{}

		validateField(res, def)
	}

	return res
}

func validateField(res *diagnostic.Diagnostics, def *FieldDef) {
	for _, key := range def.Unknown {
		var suggestions []string
		if s, ok := match.Suggest(key, recordKeys); ok {
			suggestions = append(suggestions, s)
		}

		res.AddWarning(diagnostic.CodeUnknownAttribute,
			fmt.Sprintf("unknown attribute %q is ignored", key), def.Name, suggestions...)
	}

	if def.Enum != nil && def.Type != "" {
		res.AddError(diagnostic.CodeEnumAndType,
			"cannot have both type and enum for the same id key", def.Name)

		return
	}

	if def.Type != "" {
		validateType(res, def)
	}

	if def.Enum != nil {
		validateEnum(res, def)
	}
}

func validateType(res *diagnostic.Diagnostics, def *FieldDef) {
	if _, ok := dataid.LookupType(def.Type); ok {
		return
	}

	var suggestions []string
	if s, ok := match.Suggest(def.Type, dataid.TypeNames()); ok {
		suggestions = append(suggestions, s)
	}

	res.AddError(diagnostic.CodeUnknownType, fmt.Sprintf("unknown type %q", def.Type), def.Name, suggestions...)
}

func validateEnum(res *diagnostic.Diagnostics, def *FieldDef) {
	if len(def.Enum) == 0 {
		res.AddError(diagnostic.CodeEmptyEnum, "enum has no members", def.Name)
		return
	}

	for _, dup := range common.Duplicates(def.Enum) {
		res.AddError(diagnostic.CodeDuplicateEnumValue, fmt.Sprintf("enum member %q listed twice", dup), def.Name)
	}

	for _, name := range def.Enum {
		if name == "" {
			res.AddError(diagnostic.CodeEmptyEnum, "enum member with empty name", def.Name)
		}
	}
}
