package finstmt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// CheckShape verifies that a raw generator payload has the shape of a
// report document: required fields present, rows carrying a label and both
// year amounts as numbers. It judges shape only, never values; provenance
// of the payload is the caller's problem.
func CheckShape(raw []byte) error {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return fmt.Errorf("report payload is not valid JSON: %w", err)
	}

	var errs []error
	check := func(path, kind string) {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			errs = append(errs, fmt.Errorf("missing %s: %w", path, err))
			return
		}
		if !hasKind(jval, kind) {
			errs = append(errs, fmt.Errorf("%s: want %s, got %T", path, kind, jval))
		}
	}

	check("$.companyName", "string")
	check("$.notesToFinancialStatements", "string")
	check("$.incomeStatement.netProfit.item", "string")
	check("$.incomeStatement.netProfit.amount2025", "number")
	check("$.incomeStatement.netProfit.amount2024", "number")

	for _, section := range []string{
		"$.incomeStatement.revenue",
		"$.incomeStatement.expenses",
		"$.balanceSheet.assets",
		"$.balanceSheet.liabilities",
		"$.balanceSheet.equity",
	} {
		jval, err := jsonpath.Get(section, jobj)
		if err != nil {
			errs = append(errs, fmt.Errorf("missing %s: %w", section, err))
			continue
		}
		rows, ok := jval.([]any)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: want array, got %T", section, jval))
			continue
		}
		errs = append(errs, checkRows(jobj, section, len(rows))...)
	}

	return errors.Join(errs...)
}

// checkRows verifies that every row of a section has its label and both
// amounts. A wildcard query silently skips rows missing the key, so a count
// shorter than the row count means some row is incomplete.
func checkRows(jobj any, section string, n int) []error {
	if n == 0 {
		return nil
	}
	var errs []error
	fields := []struct {
		name string
		kind string
	}{
		{"item", "string"},
		{"amount2025", "number"},
		{"amount2024", "number"},
	}
	for _, f := range fields {
		path := section + "[*]." + f.name
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			errs = append(errs, fmt.Errorf("cannot query %s: %w", path, err))
			continue
		}
		// jsonpath is never clear about whether it returns a list or a
		// single answer; a wildcard over rows always yields a list.
		list, ok := jval.([]any)
		if !ok {
			list = []any{jval}
		}
		if len(list) != n {
			errs = append(errs, fmt.Errorf("%s: %d of %d rows have it", path, len(list), n))
			continue
		}
		for i, v := range list {
			if !hasKind(v, f.kind) {
				errs = append(errs, fmt.Errorf("%s row %d: want %s, got %T", path, i, f.kind, v))
			}
		}
	}
	return errs
}

// hasKind reports whether a decoded JSON value has the named JSON type.
func hasKind(v any, kind string) bool {
	switch kind {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		_, ok := v.(float64)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
