package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
	"github.com/explorekerinci/web/internal/ports"
)

const (
	adminDestinationsPath = "/admin/wisata"
	adminCategoriesPath   = "/admin/kategori"
	adminReviewsPath      = "/admin/ulasan"
)

// AdminHandler serves the back-office. Routes are mounted behind
// RequireAdmin.
type AdminHandler struct {
	pages
	admin ports.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin ports.AdminService, rd Renderer, sessions SessionWriter) *AdminHandler {
	return &AdminHandler{pages: pages{rd: rd, sessions: sessions}, admin: admin}
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d := h.admin.Dashboard(r.Context())
	h.rd.Render(w, r, http.StatusOK, "admin/dashboard.html", "Dasbor", dto.DashboardView{Stats: dto.NewDashboardStats(d)})
}

// --- Destinations ---

// Destinations handles GET /admin/wisata[?page=N].
func (h *AdminHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	page, err := h.admin.Destinations(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		h.fail(w, r, "admin_destinations", err)
		return
	}
	h.rd.Render(w, r, http.StatusOK, "admin/destinations.html", "Destinasi", dto.AdminDestinationsView{
		Rows:  dto.ToAdminDestinationRows(page.Items),
		Pages: dto.PageLinks(page.Meta, adminDestinationsPath, ""),
		Total: page.Meta.Total,
	})
}

// NewDestination handles GET /admin/wisata/baru.
func (h *AdminHandler) NewDestination(w http.ResponseWriter, r *http.Request) {
	view := &dto.DestinationEditView{Form: dto.DestinationForm{Status: destination.StatusDraft.String()}}
	h.renderDestinationForm(w, r, http.StatusOK, view)
}

// CreateDestination handles POST /admin/wisata.
func (h *AdminHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	form, payload, ok := h.destinationPayload(w, r, 0)
	if !ok {
		return
	}
	d, err := h.admin.CreateDestination(r.Context(), payload)
	if err != nil {
		h.saveFailed(w, r, "create_destination", &dto.DestinationEditView{Form: form}, err)
		return
	}
	h.logChange(r, "destination created", slog.Int64("destination_id", d.ID))
	h.done(w, r, editPath(d.ID), "Destinasi \""+d.Name+"\" ditambahkan. Unggah foto di bawah.")
}

// EditDestination handles GET /admin/wisata/{id}/edit.
func (h *AdminHandler) EditDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "edit_destination", err)
		return
	}
	d, err := h.admin.Destination(r.Context(), id)
	if err != nil {
		h.fail(w, r, "edit_destination", err)
		return
	}
	view := &dto.DestinationEditView{ID: d.ID, Form: dto.DestinationFormFrom(d), Images: d.Images}
	h.renderDestinationForm(w, r, http.StatusOK, view)
}

// UpdateDestination handles POST /admin/wisata/{id}.
func (h *AdminHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "update_destination", err)
		return
	}
	form, payload, ok := h.destinationPayload(w, r, id)
	if !ok {
		return
	}
	d, err := h.admin.UpdateDestination(r.Context(), id, payload)
	if err != nil {
		h.saveFailed(w, r, "update_destination", &dto.DestinationEditView{ID: id, Form: form}, err)
		return
	}
	h.logChange(r, "destination updated", slog.Int64("destination_id", d.ID))
	h.done(w, r, editPath(d.ID), "Perubahan disimpan.")
}

// DeleteDestination handles POST /admin/wisata/{id}/hapus.
func (h *AdminHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "delete_destination", err)
		return
	}
	if err := h.admin.DeleteDestination(r.Context(), id); err != nil {
		h.fail(w, r, "delete_destination", err)
		return
	}
	h.logChange(r, "destination deleted", slog.Int64("destination_id", id))
	h.done(w, r, adminDestinationsPath, "Destinasi dihapus.")
}

// UploadImage handles POST /admin/wisata/{id}/foto.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "upload_image", err)
		return
	}

	upload, err := readUpload(w, r)
	if err == nil {
		_, err = h.admin.UploadImage(r.Context(), id, upload)
	}
	if err != nil {
		if ve := dto.AsValidation(err); ve != nil {
			h.imageRejected(w, r, id, ve)
			return
		}
		h.fail(w, r, "upload_image", err)
		return
	}
	h.logChange(r, "image uploaded", slog.Int64("destination_id", id), slog.Int("bytes", len(upload.Data)))
	h.done(w, r, editPath(id), "Foto diunggah.")
}

// DeleteImage handles POST /admin/wisata/{id}/foto/{imageId}/hapus.
func (h *AdminHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "delete_image", err)
		return
	}
	imageID, err := parseID(r, "imageId")
	if err != nil {
		h.fail(w, r, "delete_image", err)
		return
	}
	if err := h.admin.DeleteImage(r.Context(), id, imageID); err != nil {
		h.fail(w, r, "delete_image", err)
		return
	}
	h.logChange(r, "image deleted", slog.Int64("destination_id", id), slog.Int64("image_id", imageID))
	h.done(w, r, editPath(id), "Foto dihapus.")
}

func readUpload(w http.ResponseWriter, r *http.Request) (destination.Upload, error) {
	if err := dto.ParseForm(w, r, dto.UploadLimit(destination.MaxUploadBytes)); err != nil {
		return destination.Upload{}, err
	}
	part, err := dto.ReadFile(r, "image", destination.MaxUploadBytes)
	if errors.Is(err, dto.ErrMissingFile) {
		return destination.Upload{}, domain.NewValidationError(map[string]string{"image": "pilih foto terlebih dahulu"})
	}
	if err != nil {
		return destination.Upload{}, err
	}
	return destination.Upload{Filename: part.Filename, ContentType: part.ContentType, Data: part.Data}, nil
}

// imageRejected re-renders the edit page with the upload error.
func (h *AdminHandler) imageRejected(w http.ResponseWriter, r *http.Request, id int64, ve *domain.ValidationError) {
	d, err := h.admin.Destination(r.Context(), id)
	if err != nil {
		h.fail(w, r, "upload_image", err)
		return
	}
	view := &dto.DestinationEditView{ID: d.ID, Form: dto.DestinationFormFrom(d), Images: d.Images, Errors: ve}
	h.renderDestinationForm(w, r, http.StatusUnprocessableEntity, view)
}

// destinationPayload parses the destination form. An unparseable form is
// re-rendered and ok is false.
func (h *AdminHandler) destinationPayload(w http.ResponseWriter, r *http.Request, id int64) (dto.DestinationForm, destination.Payload, bool) {
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "destination_form", err)
		return dto.DestinationForm{}, destination.Payload{}, false
	}
	form := dto.ParseDestinationForm(r)
	payload, err := form.ToPayload()
	if err != nil {
		h.saveFailed(w, r, "destination_form", &dto.DestinationEditView{ID: id, Form: form}, err)
		return form, payload, false
	}
	return form, payload, true
}

// saveFailed re-renders the form on validation errors and renders the error
// page otherwise.
func (h *AdminHandler) saveFailed(w http.ResponseWriter, r *http.Request, op string, view *dto.DestinationEditView, err error) {
	ve := dto.AsValidation(err)
	if ve == nil {
		h.fail(w, r, op, err)
		return
	}
	view.Errors = ve
	if view.ID != 0 {
		if d, derr := h.admin.Destination(r.Context(), view.ID); derr == nil {
			view.Images = d.Images
		}
	}
	h.renderDestinationForm(w, r, http.StatusUnprocessableEntity, view)
}

// renderDestinationForm fills in the category checkboxes and renders the
// create/edit page. Without categories the form still renders.
func (h *AdminHandler) renderDestinationForm(w http.ResponseWriter, r *http.Request, status int, view *dto.DestinationEditView) {
	categories, err := h.admin.Categories(r.Context())
	if err != nil {
		logFailure(r.Context(), "admin_categories", err)
	}
	view.Categories = categories
	view.Statuses = dto.DestinationStatuses()

	title := "Tambah destinasi"
	if view.ID != 0 {
		title = "Ubah destinasi"
	}
	h.rd.Render(w, r, status, "admin/destination_form.html", title, view)
}

// --- Categories ---

// Categories handles GET /admin/kategori.
func (h *AdminHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.renderCategories(w, r, http.StatusOK, dto.CategoryForm{}, nil)
}

// CreateCategory handles POST /admin/kategori.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "create_category", err)
		return
	}
	form := dto.ParseCategoryForm(r)

	c, err := h.admin.CreateCategory(r.Context(), form.Name)
	if err != nil {
		h.categoryFailed(w, r, "create_category", form, err)
		return
	}
	h.logChange(r, "category created", slog.Int64("category_id", c.ID))
	h.done(w, r, adminCategoriesPath, "Kategori \""+c.Name+"\" ditambahkan.")
}

// RenameCategory handles POST /admin/kategori/{id}.
func (h *AdminHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "rename_category", err)
		return
	}
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "rename_category", err)
		return
	}
	form := dto.ParseCategoryForm(r)

	c, err := h.admin.RenameCategory(r.Context(), id, form.Name)
	if err != nil {
		h.categoryFailed(w, r, "rename_category", dto.CategoryForm{}, err)
		return
	}
	h.logChange(r, "category renamed", slog.Int64("category_id", c.ID))
	h.done(w, r, adminCategoriesPath, "Kategori diganti menjadi \""+c.Name+"\".")
}

// DeleteCategory handles POST /admin/kategori/{id}/hapus. A category still
// in use is refused by the backend with a conflict, shown as a notice.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, "delete_category", err)
		return
	}
	if err := h.admin.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logFailure(r.Context(), "delete_category", err)
			h.sessions.SetFlash(w, session.FlashError, "Kategori masih dipakai oleh destinasi dan tidak dapat dihapus.")
			seeOther(w, r, adminCategoriesPath)
			return
		}
		h.fail(w, r, "delete_category", err)
		return
	}
	h.logChange(r, "category deleted", slog.Int64("category_id", id))
	h.done(w, r, adminCategoriesPath, "Kategori dihapus.")
}

func (h *AdminHandler) categoryFailed(w http.ResponseWriter, r *http.Request, op string, form dto.CategoryForm, err error) {
	if ve := dto.AsValidation(err); ve != nil {
		h.renderCategories(w, r, http.StatusUnprocessableEntity, form, ve)
		return
	}
	h.fail(w, r, op, err)
}

func (h *AdminHandler) renderCategories(w http.ResponseWriter, r *http.Request, status int, form dto.CategoryForm, ve *domain.ValidationError) {
	categories, err := h.admin.Categories(r.Context())
	if err != nil {
		h.fail(w, r, "admin_categories", err)
		return
	}
	h.rd.Render(w, r, status, "admin/categories.html", "Kategori", dto.AdminCategoriesView{
		Categories: categories,
		Form:       form,
		Errors:     ve,
	})
}

// --- Reviews ---

// Reviews handles GET /admin/ulasan[?status=pending|approved][&page=N].
// An unknown status lists every review.
func (h *AdminHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	status := reviewStatus(r.URL.Query().Get("status"))
	page, err := h.admin.Reviews(r.Context(), status, queryInt(r, "page", 1))
	if err != nil {
		h.fail(w, r, "admin_reviews", err)
		return
	}
	h.rd.Render(w, r, http.StatusOK, "admin/reviews.html", "Ulasan", dto.AdminReviewsView{
		Status:  status.String(),
		Tabs:    dto.ReviewTabs(status),
		Reviews: dto.ToReviewViews(page.Items),
		Pages:   dto.PageLinks(page.Meta, adminReviewsPath, status.String()),
	})
}

// ApproveReview handles POST /admin/ulasan/{id}/setujui.
func (h *AdminHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "approve_review", h.admin.ApproveReview, "Ulasan disetujui.")
}

// RejectReview handles POST /admin/ulasan/{id}/tolak.
func (h *AdminHandler) RejectReview(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "reject_review", h.admin.RejectReview, "Persetujuan ulasan dibatalkan.")
}

// DeleteReview handles POST /admin/ulasan/{id}/hapus.
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "delete_review", h.admin.DeleteReview, "Ulasan dihapus.")
}

// moderate runs one moderation action and returns to the queue tab the
// action was taken from.
func (h *AdminHandler) moderate(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	action func(ctx context.Context, id int64) error,
	message string,
) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, op, err)
		return
	}
	if err := action(r.Context(), id); err != nil {
		h.fail(w, r, op, err)
		return
	}
	h.logChange(r, "review moderated", slog.String("operation", op), slog.Int64("review_id", id))

	target := adminReviewsPath
	if status := reviewStatus(r.PostFormValue("status")); status != review.StatusAll {
		target += "?status=" + status.String()
	}
	h.done(w, r, target, message)
}

func reviewStatus(raw string) review.Status {
	if s := review.Status(raw); s.IsValid() {
		return s
	}
	return review.StatusAll
}

func editPath(id int64) string {
	return adminDestinationsPath + "/" + strconv.FormatInt(id, 10) + "/edit"
}

func (h *AdminHandler) logChange(r *http.Request, msg string, attrs ...any) {
	logging.FromContext(r.Context()).InfoContext(r.Context(), msg, attrs...)
}
