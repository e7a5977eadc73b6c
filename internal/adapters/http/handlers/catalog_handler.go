package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/metric"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/app/browse"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/telemetry"
	"github.com/explorekerinci/web/internal/ports"
)

// commitPage labels pagination jumps in the filter commit metric.
const commitPage = "page"

// CatalogOptions tunes the listing pages.
type CatalogOptions struct {
	PerPage  int
	Debounce time.Duration
}

// CatalogHandler serves the public pages: home, listing, filter actions,
// destination detail and review submission.
type CatalogHandler struct {
	pages
	catalog  ports.CatalogService
	accounts ports.AccountService
	metrics  *telemetry.Metrics
	opts     CatalogOptions
}

// NewCatalogHandler creates a CatalogHandler. metrics may be nil.
func NewCatalogHandler(
	catalog ports.CatalogService,
	accounts ports.AccountService,
	rd Renderer,
	sessions SessionWriter,
	metrics *telemetry.Metrics,
	opts CatalogOptions,
) *CatalogHandler {
	if opts.PerPage < 1 {
		opts.PerPage = listing.DefaultPerPage
	}
	if opts.Debounce <= 0 {
		opts.Debounce = browse.DefaultDebounce
	}
	return &CatalogHandler{
		pages:    pages{rd: rd, sessions: sessions},
		catalog:  catalog,
		accounts: accounts,
		metrics:  metrics,
		opts:     opts,
	}
}

// Home handles GET /.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home := h.catalog.Home(r.Context())
	h.rd.Render(w, r, http.StatusOK, "home.html", "", dto.NewHomeView(home))
}

// List handles GET /wisata. The URL is the whole filter state: the page is
// rendered from it and every control links or posts back to a rewrite of it.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := listing.FromQuery(r.URL.Query(), h.opts.PerPage)

	result := h.catalog.Browse(ctx, filter)
	if result.Degraded {
		h.recordDegraded(r, "browse")
	}

	from := r.URL.RequestURI()
	loc, err := browse.NewLocation(from, nil)
	if err != nil {
		h.fail(w, r, "list", err)
		return
	}
	ctrl := browse.NewController(loc)
	defer ctrl.Close()

	view := dto.NewListView(result, ctrl, browse.NewPagination(loc, result.Meta), from, h.opts.Debounce)
	h.rd.Render(w, r, http.StatusOK, "wisata/list.html", "Destinasi Wisata", view)
}

// Filter handles POST /wisata/filter. It replays the posted action on a
// controller bound to the listing URL the form was rendered on and
// redirects to the URL the controller commits. Actions that commit nothing
// (cancel, unknown) return to that URL unchanged.
func (h *CatalogHandler) Filter(w http.ResponseWriter, r *http.Request) {
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "filter", err)
		return
	}
	form := dto.ParseFilterForm(r)
	from := listingURL(form.From)

	var target string
	nav := ports.NavigatorFunc(func(u string) { target = u })

	loc, err := browse.NewLocation(from, nav)
	if err != nil {
		h.fail(w, r, "filter", err)
		return
	}
	ctrl := browse.NewController(loc,
		browse.WithDebounce(h.opts.Debounce),
		browse.WithCommitHook(func(kind, _ string) { h.recordCommit(r, kind) }),
	)
	defer ctrl.Close()

	switch form.Action {
	case dto.ActionSearch:
		ctrl.Type(form.Search)
		ctrl.Flush()
	case dto.ActionCategory:
		ctrl.Type(form.Search)
		ctrl.SelectCategory(form.Category)
	case dto.ActionApply:
		ctrl.OpenFilter()
		ctrl.StageCategory(form.Pending)
		ctrl.ApplyFilter()
	case dto.ActionCancel:
		ctrl.OpenFilter()
		ctrl.CancelFilter()
	case dto.ActionReset:
		ctrl.Reset()
	case dto.ActionPage:
		current := listing.FromQuery(loc.Query().Values(), h.opts.PerPage).Page
		pag := browse.NewPagination(loc, listing.Meta{CurrentPage: current, LastPage: form.LastPage})
		pag.GoTo(form.Page)
		h.recordCommit(r, commitPage)
	default:
		logging.FromContext(r.Context()).WarnContext(r.Context(), "unknown filter action",
			slog.String("action", form.Action),
		)
	}

	if target == "" {
		target = loc.URL()
	}
	seeOther(w, r, target)
}

// Detail handles GET /wisata/{slug}. ?foto=N selects the gallery photo.
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	d, err := h.catalog.Destination(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, "destination_detail", err)
		return
	}
	view := dto.NewDetailView(d, queryInt(r, "foto", 1))
	h.rd.Render(w, r, http.StatusOK, "wisata/detail.html", d.Name, &view)
}

// SubmitReview handles POST /wisata/{slug}/ulasan. An invalid review
// re-renders the detail page with the form filled in.
func (h *CatalogHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := dto.ParseForm(w, r, dto.MaxFormBytes); err != nil {
		h.fail(w, r, "submit_review", err)
		return
	}
	form := dto.ParseReviewForm(r)

	d, err := h.catalog.Destination(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, "submit_review", err)
		return
	}

	if _, err := h.accounts.SubmitReview(ctx, form.ToSubmission(d.ID)); err != nil {
		if ve := dto.AsValidation(err); ve != nil {
			view := dto.NewDetailView(d, 1)
			view.ReviewForm = form
			view.ReviewErrors = ve
			h.rd.Render(w, r, http.StatusUnprocessableEntity, "wisata/detail.html", d.Name, &view)
			return
		}
		h.fail(w, r, "submit_review", err)
		return
	}

	logging.FromContext(ctx).InfoContext(ctx, "review submitted",
		slog.Int64("destination_id", d.ID),
		slog.Int("rating", form.Rating),
	)
	h.done(w, r, dto.DestinationURL(d.Slug)+"#ulasan", "Terima kasih! Ulasan Anda akan tampil setelah disetujui admin.")
}

// listingURL keeps a posted listing URL when it points at the listing page
// and falls back to the bare listing otherwise.
func listingURL(raw string) string {
	u, err := url.Parse(localPath(raw, dto.ListPath))
	if err != nil || u.Path != dto.ListPath {
		return dto.ListPath
	}
	return u.RequestURI()
}

func (h *CatalogHandler) recordCommit(r *http.Request, kind string) {
	if h.metrics == nil {
		return
	}
	h.metrics.FilterCommits.Add(r.Context(), 1, metric.WithAttributes(telemetry.AttrCommitKind.String(kind)))
}

func (h *CatalogHandler) recordDegraded(r *http.Request, op string) {
	if h.metrics == nil {
		return
	}
	h.metrics.DegradedRenders.Add(r.Context(), 1, metric.WithAttributes(telemetry.AttrOperation.String(op)))
}
