package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/explorekerinci/web/internal/adapters/clients/acl/catalog"
	"github.com/explorekerinci/web/internal/platform/httpclient"
)

// envelope is the API's success wrapper:
//
//	{"success": true, "message": "...", "data": ..., "meta": {...}}
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Meta    *catalog.MetaDTO `json:"meta"`
}

// Call describes one API request.
type Call struct {
	Method string
	// Path is relative to the client's base URL, e.g. "/api/destinations".
	Path  string
	Query url.Values
	// Body is JSON-encoded, except *Multipart which is sent as
	// multipart/form-data.
	Body any
	// Data receives the envelope's data member. Nil skips decoding.
	Data any
	// Meta receives the envelope's pagination block when present.
	Meta *catalog.MetaDTO
}

// File is one file part of a multipart body.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Multipart is a multipart/form-data request body. Fields keep their order
// so repeated keys (categories[]) survive.
type Multipart struct {
	Fields [][2]string
	Files  []File
}

// Add appends a text field.
func (m *Multipart) Add(key, value string) {
	m.Fields = append(m.Fields, [2]string{key, value})
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, body encoding, execution via httpclient.Client,
// response body cleanup, status validation, error translation, and
// envelope decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes the call. Any 2xx status is a success; anything else is
// passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, call Call) error {
	u := r.client.BaseURL() + call.Path
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}

	body, contentType, err := encodeBody(call.Body)
	if err != nil {
		return fmt.Errorf("encoding %s body for %s: %w", call.Method, call.Path, err)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", call.Method, call.Path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return r.execute(req, call)
}

// Name identifies the API in the health registry.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the API's availability from the circuit breaker
// state; no network call is made.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return http.NoBody, "", nil
	case *Multipart:
		return encodeMultipart(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}

func encodeMultipart(m *Multipart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and decodes the
// envelope. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, call Call) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if call.Data == nil && call.Meta == nil {
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}

	if call.Data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, call.Data); err != nil {
			return fmt.Errorf("decoding data from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	if call.Meta != nil && env.Meta != nil {
		*call.Meta = *env.Meta
	}

	return nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
