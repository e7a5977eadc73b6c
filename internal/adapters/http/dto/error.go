package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/explorekerinci/web/internal/domain"
)

// ErrorPage is the view model of the error page.
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}

// NewErrorPage builds the error page for a domain error. Details of the
// underlying error are never shown; the message depends only on the status.
func NewErrorPage(err error) ErrorPage {
	status := StatusFor(err)
	title, message := errorCopy(status)
	return ErrorPage{Status: status, Title: title, Message: message}
}

// StatusFor maps domain sentinel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// AsValidation returns the *domain.ValidationError wrapped in err, or nil.
func AsValidation(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func errorCopy(status int) (title, message string) {
	switch status {
	case http.StatusNotFound:
		return "Halaman tidak ditemukan", "Halaman atau destinasi yang Anda cari tidak ada atau sudah dipindahkan."
	case http.StatusUnauthorized:
		return "Sesi berakhir", "Silakan masuk kembali untuk melanjutkan."
	case http.StatusForbidden:
		return "Akses ditolak", "Anda tidak memiliki izin untuk membuka halaman ini."
	case http.StatusConflict:
		return "Tidak dapat diproses", "Data sedang dipakai atau sudah berubah. Muat ulang halaman lalu coba lagi."
	case http.StatusUnprocessableEntity:
		return "Data tidak valid", "Periksa kembali isian formulir."
	case http.StatusBadGateway:
		return "Layanan sedang tidak tersedia", "Server Explore Kerinci tidak dapat dihubungi. Coba beberapa saat lagi."
	case http.StatusGatewayTimeout:
		return "Permintaan terlalu lama", "Server membutuhkan waktu terlalu lama untuk merespons. Coba beberapa saat lagi."
	default:
		return "Terjadi kesalahan", "Maaf, terjadi kesalahan pada server. Coba beberapa saat lagi."
	}
}
