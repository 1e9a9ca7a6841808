package dto

import (
	"net/url"
	"strings"
)

// ListParams is the untyped query-parameter mapping the listing query is
// composed from. Repeated keys are comma-joined, mirroring how the original
// wire format carried multi-valued filters.
type ListParams map[string]string

func ListParamsFromQuery(values url.Values) ListParams {
	params := make(ListParams, len(values))
	for key, vals := range values {
		params[key] = strings.Join(vals, ",")
	}

	return params
}
