package convert

import (
	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// Projection is the column and kind selection computed for a read.
type Projection struct {
	Columns []string
	Kinds   []provider.Kind
}

// Plan computes the minimal projection for the requested fields: the data
// columns to fetch and the kind tags to filter by.
//
// A nil fields slice means "everything" and expands to the full readable
// field set. The bookkeeping columns (row id, contact id, lookup key, display
// name, kind tag) are always included; folding requires them. Unknown field
// names are silently skipped, never rejected.
func Plan(fields []contact.Field) Projection {
	if fields == nil {
		fields = readFields
	}

	columns := []string{
		provider.KeyRowID,
		provider.KeyContactID,
		provider.KeyLookup,
		provider.KeyDisplayName,
		provider.KeyMimetype,
	}
	seen := map[string]struct{}{}
	for _, column := range columns {
		seen[column] = struct{}{}
	}

	kinds := make([]provider.Kind, 0, len(fields))
	seenKinds := map[provider.Kind]struct{}{}

	for _, field := range fields {
		spec, ok := fieldSpecs[field]
		if !ok {
			continue
		}
		for _, column := range spec.columns {
			if _, exists := seen[column]; exists {
				continue
			}
			seen[column] = struct{}{}
			columns = append(columns, column)
		}
		if _, exists := seenKinds[spec.kind]; !exists {
			seenKinds[spec.kind] = struct{}{}
			kinds = append(kinds, spec.kind)
		}
	}

	return Projection{Columns: columns, Kinds: kinds}
}
