package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/explorekerinci/web/internal/adapters/http/handlers"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/mocks"
)

func newProfileHandler(t *testing.T) (*handlers.ProfileHandler, *mocks.MockAccountService) {
	t.Helper()
	accounts := mocks.NewMockAccountService(t)
	store := newStore()
	return handlers.NewProfileHandler(accounts, newRenderer(t, store), store), accounts
}

func myReviews() *listing.Page[review.Review] {
	return &listing.Page[review.Review]{
		Items: []review.Review{{
			ID: 4, Rating: 4, Comment: "Pemandangan dari puncak luar biasa.", CreatedAt: testTime,
			Author:      &review.Author{ID: 7, Name: "Rina"},
			Destination: &review.DestinationRef{ID: 1, Name: "Gunung Kerinci", Slug: "gunung-kerinci"},
		}},
		Meta: listing.Meta{CurrentPage: 1, LastPage: 2, PerPage: 10, Total: 11},
	}
}

func TestProfileShow(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	u := visitor().User
	accounts.EXPECT().Profile(mock.Anything).Return(u, nil)
	accounts.EXPECT().MyReviews(mock.Anything, 1).Return(myReviews(), nil)

	rec := httptest.NewRecorder()
	h.Show(rec, signedIn(httptest.NewRequest(http.MethodGet, "/profil", nil), visitor()))

	requireStatus(t, rec, http.StatusOK)
	requireBody(t, rec, `value="rina@example.com"`, "Gunung Kerinci", "Pemandangan dari puncak luar biasa.", "/profil?page=2")
}

func TestProfileShow_ReviewsPage(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	accounts.EXPECT().Profile(mock.Anything).Return(visitor().User, nil)
	accounts.EXPECT().MyReviews(mock.Anything, 2).Return(&listing.Page[review.Review]{
		Meta: listing.Meta{CurrentPage: 2, LastPage: 2, PerPage: 10, Total: 11},
	}, nil)

	rec := httptest.NewRecorder()
	h.Show(rec, signedIn(httptest.NewRequest(http.MethodGet, "/profil?page=2", nil), visitor()))

	requireStatus(t, rec, http.StatusOK)
}

func TestProfileUpdate_Success(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	updated := &user.User{ID: 7, Name: "Rina Sari", Email: "rina@example.com", Role: user.RoleUser}
	accounts.EXPECT().UpdateProfile(mock.Anything, user.ProfileUpdate{Name: "Rina Sari", Email: "rina@example.com"}).
		Return(updated, nil)

	rec := httptest.NewRecorder()
	h.Update(rec, signedIn(postForm("/profil", url.Values{
		"name":  {"Rina Sari"},
		"email": {"rina@example.com"},
	}), visitor()))

	requireRedirect(t, rec, "/profil")
	if sessionCookie(rec) == nil {
		t.Error("session cookie was not re-signed")
	}
	if flashOf(rec) == "" {
		t.Error("no success notice queued")
	}
}

func TestProfileUpdate_Validation(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	accounts.EXPECT().UpdateProfile(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"current_password": "Kata sandi saat ini salah."}})
	accounts.EXPECT().MyReviews(mock.Anything, 1).Return(myReviews(), nil)

	rec := httptest.NewRecorder()
	h.Update(rec, signedIn(postForm("/profil", url.Values{
		"name":                  {"Rina"},
		"email":                 {"rina@example.com"},
		"current_password":      {"keliru"},
		"password":              {"baru12345"},
		"password_confirmation": {"baru12345"},
	}), visitor()))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	requireBody(t, rec, "Kata sandi saat ini salah.")
	if strings.Contains(rec.Body.String(), "baru12345") {
		t.Error("password echoed back into the form")
	}
}

func TestProfileUpdate_ReviewsUnavailableStillShowsForm(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	accounts.EXPECT().UpdateProfile(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"email": "Email sudah digunakan."}})
	accounts.EXPECT().MyReviews(mock.Anything, 1).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.Update(rec, signedIn(postForm("/profil", url.Values{"name": {"Rina"}, "email": {"budi@example.com"}}), visitor()))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	requireBody(t, rec, "Email sudah digunakan.", `value="budi@example.com"`)
}

func TestProfileUpdate_ExpiredToken(t *testing.T) {
	t.Parallel()
	h, accounts := newProfileHandler(t)

	accounts.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	req := postForm("/profil", url.Values{"name": {"Rina"}, "email": {"rina@example.com"}})
	req.Header.Set("Referer", "http://example.com/profil")

	rec := httptest.NewRecorder()
	h.Update(rec, signedIn(req, visitor()))

	requireRedirect(t, rec, "/login?next=%2Fprofil")
}
