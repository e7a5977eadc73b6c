package handlers

import (
	"net/http"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/session"
	"github.com/explorekerinci/web/internal/ports"
)

const profilePath = "/profil"

// ProfileHandler serves the signed-in visitor's profile page.
type ProfileHandler struct {
	pages
	accounts ports.AccountService
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(accounts ports.AccountService, rd Renderer, sessions SessionWriter) *ProfileHandler {
	return &ProfileHandler{pages: pages{rd: rd, sessions: sessions}, accounts: accounts}
}

// Show handles GET /profil[?page=N].
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	u, err := h.accounts.Profile(r.Context())
	if err != nil {
		h.fail(w, r, "profile", err)
		return
	}
	view, err := h.view(r, u, dto.ProfileFormFrom(u), nil)
	if err != nil {
		h.fail(w, r, "my_reviews", err)
		return
	}
	h.rd.Render(w, r, http.StatusOK, "profil.html", "Profil", view)
}

// Update handles POST /profil: name, email, optional password change and
// optional avatar. The session cookie is re-signed with the updated user.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := dto.ParseForm(w, r, dto.UploadLimit(user.MaxAvatarBytes)); err != nil {
		h.invalid(w, r, dto.ProfileForm{}, err)
		return
	}
	form, err := dto.ParseProfileForm(r)
	if err != nil {
		h.fail(w, r, "update_profile", err)
		return
	}

	u, err := h.accounts.UpdateProfile(ctx, form.ToProfileUpdate())
	if err != nil {
		if dto.AsValidation(err) != nil {
			h.invalid(w, r, form, err)
			return
		}
		h.fail(w, r, "update_profile", err)
		return
	}

	if err := h.sessions.Refresh(w, session.FromContext(ctx), u); err != nil {
		h.fail(w, r, "refresh_session", err)
		return
	}
	h.done(w, r, profilePath, "Profil berhasil diperbarui.")
}

// invalid re-renders the profile form with its errors. Password fields are
// never echoed back.
func (h *ProfileHandler) invalid(w http.ResponseWriter, r *http.Request, form dto.ProfileForm, err error) {
	u := session.FromContext(r.Context()).User
	if u == nil {
		h.fail(w, r, "update_profile", domain.ErrUnauthorized)
		return
	}
	if form.Name == "" && form.Email == "" {
		form = dto.ProfileFormFrom(u)
	}
	form.CurrentPassword, form.Password, form.PasswordConfirmation = "", "", ""
	form.Avatar = nil

	view, verr := h.view(r, u, form, dto.AsValidation(err))
	if verr != nil {
		// The reviews column is secondary; show the form without it.
		view = &dto.ProfileView{User: u, Form: form, Errors: dto.AsValidation(err)}
	}
	h.rd.Render(w, r, http.StatusUnprocessableEntity, "profil.html", "Profil", view)
}

func (h *ProfileHandler) view(r *http.Request, u *user.User, form dto.ProfileForm, ve *domain.ValidationError) (*dto.ProfileView, error) {
	reviews, err := h.accounts.MyReviews(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		return nil, err
	}
	return &dto.ProfileView{
		User:    u,
		Form:    form,
		Errors:  ve,
		Reviews: dto.ToReviewViews(reviews.Items),
		Pages:   dto.PageLinks(reviews.Meta, profilePath, ""),
	}, nil
}
