package view

import (
	"bytes"
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/platform/format"
)

var (
	md        = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	sanitizer = bluemonday.UGCPolicy()
)

// Funcs is the template function map: sprig's HTML-safe helpers plus the
// site's formatting helpers.
func Funcs() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["rupiah"] = format.Rupiah
	funcs["number"] = func(n int) string { return format.Number(int64(n)) }
	funcs["rating"] = format.Rating
	funcs["date"] = format.Date
	funcs["dateShort"] = format.DateShort
	funcs["markdown"] = Markdown
	funcs["stars"] = Stars
	funcs["fieldError"] = FieldError
	funcs["now"] = time.Now
	return funcs
}

// Markdown renders user-editable text to sanitized HTML. Raw HTML in the
// source is escaped by goldmark and whatever survives is filtered through
// the UGC policy.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitized above
}

// Stars lists five slots, true for each filled star of rating.
func Stars(rating int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < rating
	}
	return out
}

// FieldError returns the message for a form field, or "" when err carries
// none.
func FieldError(err *domain.ValidationError, field string) string {
	return err.Field(field)
}
