package dto

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
)

const (
	// MaxFormBytes bounds a urlencoded form body.
	MaxFormBytes = 1 << 20
	// multipartSlack is allowed on top of the file limit for the other
	// fields and part headers.
	multipartSlack = 1 << 20
)

// ErrMissingFile is returned by ReadFile when the field holds no file.
var ErrMissingFile = errors.New("no file uploaded")

// ParseForm parses a urlencoded or multipart body. maxBytes bounds the whole
// body; use MaxFormBytes for forms without uploads.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return &domain.ValidationError{Message: "Berkas terlalu besar atau formulir rusak."}
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return &domain.ValidationError{Message: "Formulir tidak dapat dibaca."}
	}
	return nil
}

// UploadLimit is the body limit for a form carrying one file of at most
// fileBytes.
func UploadLimit(fileBytes int) int64 {
	return int64(fileBytes) + multipartSlack
}

// FilePart is an uploaded file read into memory.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReadFile reads the named file field of a parsed multipart form. The
// content type is sniffed from the data rather than taken from the client.
// Returns ErrMissingFile when the field is absent or empty.
func ReadFile(r *http.Request, field string, maxBytes int) (*FilePart, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return nil, ErrMissingFile
	}
	defer func() { _ = f.Close() }()

	if hdr.Size == 0 {
		return nil, ErrMissingFile
	}

	// One byte over the limit is enough for the domain check to reject it.
	data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}
	return &FilePart{
		Filename:    hdr.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// --- Listing filter ---

// Filter actions posted by the listing's filter forms.
const (
	ActionSearch   = "search"
	ActionCategory = "category"
	ActionApply    = "apply"
	ActionCancel   = "cancel"
	ActionReset    = "reset"
	ActionPage     = "page"
)

// FilterForm is the POST /wisata/filter body. From is the listing URL the
// form was rendered on; every action rewrites it.
type FilterForm struct {
	Action   string
	From     string
	Search   string
	Category string
	Pending  string
	Page     int
	LastPage int
}

// ParseFilterForm reads a parsed filter form.
func ParseFilterForm(r *http.Request) FilterForm {
	return FilterForm{
		Action:   r.PostFormValue("action"),
		From:     r.PostFormValue("from"),
		Search:   r.PostFormValue("search"),
		Category: r.PostFormValue("category"),
		Pending:  r.PostFormValue("pending"),
		Page:     atoi(r.PostFormValue("page")),
		LastPage: atoi(r.PostFormValue("last_page")),
	}
}

// --- Accounts ---

// LoginForm is the login form. Next is where to go after signing in.
type LoginForm struct {
	Email    string
	Password string
	Next     string
}

// ParseLoginForm reads a parsed login form.
func ParseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Next:     r.PostFormValue("next"),
	}
}

// ToCredentials converts the form to domain credentials.
func (f *LoginForm) ToCredentials() user.Credentials {
	return user.Credentials{Email: f.Email, Password: f.Password}
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// ParseRegisterForm reads a parsed sign-up form.
func ParseRegisterForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Name:                 strings.TrimSpace(r.PostFormValue("name")),
		Email:                strings.TrimSpace(r.PostFormValue("email")),
		Password:             r.PostFormValue("password"),
		PasswordConfirmation: r.PostFormValue("password_confirmation"),
	}
}

// ToRegistration converts the form to a domain registration.
func (f *RegisterForm) ToRegistration() user.Registration {
	return user.Registration{
		Name:                 f.Name,
		Email:                f.Email,
		Password:             f.Password,
		PasswordConfirmation: f.PasswordConfirmation,
	}
}

// ProfileForm is the profile form. Avatar is nil when no file was chosen.
type ProfileForm struct {
	Name                 string
	Email                string
	CurrentPassword      string
	Password             string
	PasswordConfirmation string
	Avatar               *FilePart
}

// ParseProfileForm reads a parsed multipart profile form, including the
// optional avatar file.
func ParseProfileForm(r *http.Request) (ProfileForm, error) {
	f := ProfileForm{
		Name:                 strings.TrimSpace(r.PostFormValue("name")),
		Email:                strings.TrimSpace(r.PostFormValue("email")),
		CurrentPassword:      r.PostFormValue("current_password"),
		Password:             r.PostFormValue("password"),
		PasswordConfirmation: r.PostFormValue("password_confirmation"),
	}
	avatar, err := ReadFile(r, "avatar", user.MaxAvatarBytes)
	switch {
	case errors.Is(err, ErrMissingFile):
	case err != nil:
		return f, err
	default:
		f.Avatar = avatar
	}
	return f, nil
}

// ToProfileUpdate converts the form to a domain profile update.
func (f *ProfileForm) ToProfileUpdate() user.ProfileUpdate {
	u := user.ProfileUpdate{
		Name:                 f.Name,
		Email:                f.Email,
		CurrentPassword:      f.CurrentPassword,
		Password:             f.Password,
		PasswordConfirmation: f.PasswordConfirmation,
	}
	if f.Avatar != nil {
		u.Avatar = &user.Avatar{Filename: f.Avatar.Filename, ContentType: f.Avatar.ContentType, Data: f.Avatar.Data}
	}
	return u
}

// ReviewForm is the review form on the detail page.
type ReviewForm struct {
	Rating  int
	Comment string
}

// ParseReviewForm reads a parsed review form. A missing or malformed rating
// reads as 0, which fails validation.
func ParseReviewForm(r *http.Request) ReviewForm {
	return ReviewForm{
		Rating:  atoi(r.PostFormValue("rating")),
		Comment: r.PostFormValue("comment"),
	}
}

// ToSubmission converts the form to a domain submission.
func (f *ReviewForm) ToSubmission(destinationID int64) review.Submission {
	return review.Submission{DestinationID: destinationID, Rating: f.Rating, Comment: f.Comment}
}

// --- Admin ---

// DestinationForm is the admin create/edit form. Values are kept as typed
// so an invalid form re-renders unchanged.
type DestinationForm struct {
	Name        string
	Description string
	Location    string
	MapURL      string
	TicketPrice string
	OpenHours   string
	Status      string
	CategoryIDs []int64
}

// ParseDestinationForm reads a parsed destination form. Unparseable
// category IDs are dropped.
func ParseDestinationForm(r *http.Request) DestinationForm {
	f := DestinationForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Location:    r.PostFormValue("location"),
		MapURL:      strings.TrimSpace(r.PostFormValue("map_url")),
		TicketPrice: strings.TrimSpace(r.PostFormValue("ticket_price")),
		OpenHours:   r.PostFormValue("open_hours"),
		Status:      r.PostFormValue("status"),
	}
	for _, raw := range r.PostForm["categories"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.CategoryIDs = append(f.CategoryIDs, id)
		}
	}
	return f
}

// DestinationFormFrom prefills the edit form from an existing destination.
func DestinationFormFrom(d *destination.Destination) DestinationForm {
	f := DestinationForm{
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		MapURL:      d.MapURL,
		TicketPrice: strconv.FormatInt(d.TicketPrice, 10),
		OpenHours:   d.OpenHours,
		Status:      d.Status.String(),
	}
	for _, c := range d.Categories {
		f.CategoryIDs = append(f.CategoryIDs, c.ID)
	}
	return f
}

// ToPayload converts the form to a domain payload. The ticket price accepts
// digits with optional thousands dots ("15.000"); an empty price is free.
func (f *DestinationForm) ToPayload() (destination.Payload, error) {
	p := destination.Payload{
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		MapURL:      f.MapURL,
		OpenHours:   f.OpenHours,
		Status:      destination.Status(f.Status),
		CategoryIDs: f.CategoryIDs,
	}
	if f.TicketPrice != "" {
		price, err := strconv.ParseInt(strings.ReplaceAll(f.TicketPrice, ".", ""), 10, 64)
		if err != nil {
			return p, &domain.ValidationError{Fields: map[string]string{"ticket_price": "harus berupa angka"}}
		}
		p.TicketPrice = price
	}
	return p, nil
}

// HasCategory reports whether the form selects the category, for checkbox
// state.
func (f DestinationForm) HasCategory(id int64) bool {
	return slices.Contains(f.CategoryIDs, id)
}

// CategoryForm is the admin category create/rename form.
type CategoryForm struct {
	Name string
}

// ParseCategoryForm reads a parsed category form.
func ParseCategoryForm(r *http.Request) CategoryForm {
	return CategoryForm{Name: strings.TrimSpace(r.PostFormValue("name"))}
}

func atoi(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
