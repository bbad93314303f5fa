package leakradar

import (
	"fmt"
	"net/url"
	"strconv"
)

// Filters is a pass-through mapping of filter names to values for the
// advanced search endpoints. Keys are not validated locally: unknown or
// malformed filters are rejected by the remote API and surface as
// *ValidationError.
//
// Known filters include username, password, url_domain, url_host,
// url_scheme, url_port, url_tld, is_email, email_domain, email_host,
// email_tld and password_strength.
type Filters map[string]any

// queryValues encodes the filters as query parameters. Nil values are
// skipped, matching the remote API's treatment of absent filters.
func (f Filters) queryValues() url.Values {
	values := url.Values{}
	for key, value := range f {
		if value == nil {
			continue
		}
		values.Set(key, formatParam(value))
	}
	return values
}

// formatParam renders a filter value the way the remote API expects:
// lowercase booleans, unpadded numbers, everything else via fmt.
func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
