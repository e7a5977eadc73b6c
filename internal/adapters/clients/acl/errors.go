// Package acl implements the Anti-Corruption Layer between the Explore
// Kerinci REST API and the domain. Resource translators live in subpackages
// (acl/catalog, acl/account); the response envelope, error mapping and the
// request lifecycle live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/explorekerinci/web/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the API's failure envelope:
//
//	{"success": false, "message": "...", "errors": {"email": ["..."]}}
type errorBody struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// TranslateHTTPError maps an API error response to a domain error.
// Validation failures (422, or 400 with field errors) become a
// *domain.ValidationError carrying the first message per field; the
// envelope's message is kept as the form-level message.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	message := body.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", message, domain.ErrNotFound)

	case resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusBadRequest && len(body.Errors) > 0:
		return toValidationError(body)

	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s: %w", message, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", message, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", message, domain.ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", message, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", message, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, message)
	}
}

// parseErrorBody reads the failure envelope. Returns a zero errorBody when
// the body is missing or not JSON (HTML error pages from a proxy, say).
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError keeps the first message of each field, which is what
// the forms display under the input.
func toValidationError(body errorBody) *domain.ValidationError {
	fields := make(map[string]string, len(body.Errors))
	for field, msgs := range body.Errors {
		if len(msgs) > 0 {
			fields[field] = msgs[0]
		}
	}
	return &domain.ValidationError{Message: body.Message, Fields: fields}
}
