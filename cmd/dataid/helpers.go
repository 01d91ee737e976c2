package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dataid/internal/config"
	"dataid/internal/dataid"
	"dataid/value"
)

// idFlags are shared by the commands working on a list of identifiers.
type idFlags struct {
	schema string
	ids    string
	query  string
	dump   bool
}

func (f *idFlags) register(cmd *cobra.Command, queryRequired bool) {
	fl := cmd.Flags()
	fl.StringVar(&f.schema, "schema", "", "Schema YAML file (default: built-in identifier schema)")
	fl.StringVar(&f.ids, "ids", "", "YAML file with a list of identifier attribute mappings (required)")
	fl.StringVar(&f.query, "query", "", "Query as k=v pairs separated by commas")
	fl.BoolVar(&f.dump, "dump", false, "Dump the resulting identifiers' fields")

	_ = cmd.MarkFlagRequired("ids")

	if queryRequired {
		_ = cmd.MarkFlagRequired("query")
	}
}

func (f *idFlags) load() (*dataid.Schema, []*dataid.DataID, error) {
	s := dataid.DefaultIDKeys

	if f.schema != "" {
		loaded, _, err := config.Load(f.schema)
		if err != nil {
			return nil, nil, err
		}

		s = loaded
	}

	ids, err := loadIDs(s, f.ids)
	if err != nil {
		return nil, nil, err
	}

	return s, ids, nil
}

func loadIDs(s *dataid.Schema, path string) ([]*dataid.DataID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read identifiers file %s", path)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "failed to parse identifiers file %s", path)
	}

	ids := make([]*dataid.DataID, 0, len(raw))

	for i, attrs := range raw {
		id, err := s.New(attrs)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: identifier #%d", path, i+1)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// parseQuery reads "name=ch1,calibration=*,resolution=500|1000".
func parseQuery(s string) (*dataid.Query, error) {
	var pairs []dataid.Pair

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		k, v, ok := strings.Cut(item, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid query item %q, expected key=value", item)
		}

		pairs = append(pairs, dataid.Pair{Key: strings.TrimSpace(k), Value: parseValue(strings.TrimSpace(v))})
	}

	return dataid.NewQuery(pairs...), nil
}

func parseValue(s string) any {
	switch {
	case s == value.WildcardMarker:
		return value.Wildcard
	case strings.Contains(s, "|"):
		parts := strings.Split(s, "|")
		alts := make(value.OneOf, 0, len(parts))

		for _, p := range parts {
			alts = append(alts, parseValue(p))
		}

		return alts
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return value.ModifierTuple{}
		}

		return value.ModifierTuple(strings.Split(inner, ";"))
	}

	return parseKey(s)
}

// parseKey reads a lookup key: a number is a wavelength, anything else a name.
func parseKey(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	return t
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func dumpIDs(cmd *cobra.Command, ids []*dataid.DataID) {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

	for _, id := range ids {
		cfg.Fdump(cmd.OutOrStdout(), id.ToMap())
	}
}
