package http

import (
	"strings"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// BuildURL joins origin, the API prefix, path and query into an absolute URL.
// An empty query adds nothing; otherwise it is appended with '?' or, when path
// already carries a query, with '&'.
func BuildURL(origin, path string, query dispatch.Query) string {
	result := origin + constants.APIPrefix + path

	if len(query) == 0 {
		return result
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return result + separator + query.Encode()
}
