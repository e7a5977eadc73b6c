// Package dto provides the form DTOs and page view models of the inbound
// HTTP adapter, and the mapping from domain errors to error pages.
//
// Forms are parsed from the request into plain structs that keep the values
// as typed, so an invalid form can be re-rendered unchanged, and converted
// to domain types with To* methods. View models are flat, preformatted
// structs the templates render without further logic.
package dto

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/explorekerinci/web/internal/app/browse"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/format"
	"github.com/explorekerinci/web/internal/ports"
)

// ListPath is the destination listing page.
const ListPath = "/wisata"

// FilterPath receives the listing's filter forms.
const FilterPath = "/wisata/filter"

// EmptyListMessage is shown when a listing has no results.
const EmptyListMessage = "Tidak ada destinasi ditemukan."

// DestinationURL is the detail page of a destination.
func DestinationURL(slug string) string {
	return ListPath + "/" + slug
}

// DestinationCard is one destination in a card grid.
type DestinationCard struct {
	Name       string
	URL        string
	Location   string
	CoverURL   string
	Price      string
	Free       bool
	Rating     string
	HasRating  bool
	Reviews    int
	Categories []string
}

// ToDestinationCard converts a destination for the card grid.
func ToDestinationCard(d *destination.Destination) DestinationCard {
	card := DestinationCard{
		Name:      d.Name,
		URL:       DestinationURL(d.Slug),
		Location:  d.Location,
		Price:     format.Rupiah(d.TicketPrice),
		Free:      d.TicketPrice == 0,
		Rating:    format.Rating(d.RatingAvg),
		HasRating: d.HasRating(),
		Reviews:   d.ReviewCount,
	}
	if img, ok := d.Cover(); ok {
		card.CoverURL = img.URL
	}
	for _, c := range d.Categories {
		card.Categories = append(card.Categories, c.Name)
	}
	return card
}

// ToDestinationCards converts a destination list for the card grid.
func ToDestinationCards(items []destination.Destination) []DestinationCard {
	cards := make([]DestinationCard, len(items))
	for i := range items {
		cards[i] = ToDestinationCard(&items[i])
	}
	return cards
}

// CategoryOption is one entry of the category filter.
type CategoryOption struct {
	Slug     string
	Name     string
	Selected bool
}

// ToCategoryOptions lists the categories, marking the one matching selected.
// An unknown selected slug marks nothing.
func ToCategoryOptions(categories []category.Category, selected string) []CategoryOption {
	opts := make([]CategoryOption, len(categories))
	for i, c := range categories {
		opts[i] = CategoryOption{Slug: c.Slug, Name: c.Name, Selected: c.Slug == selected}
	}
	return opts
}

// FilterView drives the search box, the category chips and the compact
// filter panel. From is posted back so the filter endpoint rewrites the URL
// the visitor is on.
type FilterView struct {
	Action     string
	From       string
	Search     string
	Category   string
	Categories []CategoryOption
	HasFilter  bool
	DebounceMS int64
}

// PageLink is one slot of the pagination control.
type PageLink struct {
	Number  int
	URL     string
	Current bool
	Gap     bool
}

// PaginationView is the pagination control. It is only built when there is
// more than one page.
type PaginationView struct {
	Current  int
	Last     int
	PrevURL  string
	NextURL  string
	Links    []PageLink
	Action   string
	From     string
	Summary  string
	LastPage int
}

// NewPaginationView renders the controller's state, or nil when the listing
// fits on one page.
func NewPaginationView(p *browse.Pagination, from string, total int) *PaginationView {
	if !p.Visible() {
		return nil
	}
	links := p.Links()
	view := &PaginationView{
		Current:  p.Current(),
		Last:     p.Last(),
		PrevURL:  p.PrevURL(),
		NextURL:  p.NextURL(),
		Links:    make([]PageLink, len(links)),
		Action:   FilterPath,
		From:     from,
		Summary:  "Halaman " + strconv.Itoa(p.Current()) + " dari " + strconv.Itoa(p.Last()) + " · " + format.Number(int64(total)) + " destinasi",
		LastPage: p.Last(),
	}
	for i, l := range links {
		view.Links[i] = PageLink{Number: l.Number, URL: l.URL, Current: l.Current, Gap: l.Gap}
	}
	return view
}

// ListView is the destination listing page. Empty switches the grid to the
// empty-state message; Pagination is nil on single-page results.
type ListView struct {
	Filter       FilterView
	Cards        []DestinationCard
	Empty        bool
	EmptyMessage string
	Pagination   *PaginationView
	Degraded     bool
	Total        int
}

// NewListView assembles the listing page from the browse result and the
// controllers bound to the current URL.
func NewListView(b *ports.Browse, ctrl *browse.Controller, pag *browse.Pagination, from string, debounce time.Duration) ListView {
	return ListView{
		Filter: FilterView{
			Action:     FilterPath,
			From:       from,
			Search:     ctrl.Input(),
			Category:   ctrl.Category(),
			Categories: ToCategoryOptions(b.Categories, ctrl.Category()),
			HasFilter:  ctrl.HasFilter(),
			DebounceMS: debounce.Milliseconds(),
		},
		Cards:        ToDestinationCards(b.Destinations),
		Empty:        len(b.Destinations) == 0,
		EmptyMessage: EmptyListMessage,
		Pagination:   NewPaginationView(pag, from, b.Meta.Total),
		Degraded:     b.Degraded,
		Total:        b.Meta.Total,
	}
}

// HomeView is the landing page.
type HomeView struct {
	Featured   []DestinationCard
	Categories []CategoryOption
	Search     FilterView
}

// NewHomeView assembles the landing page. Its search box posts to the
// filter endpoint as if typed on the bare listing.
func NewHomeView(h *ports.Home) HomeView {
	return HomeView{
		Featured:   ToDestinationCards(h.Featured),
		Categories: ToCategoryOptions(h.Categories, ""),
		Search:     FilterView{Action: FilterPath, From: ListPath},
	}
}

// --- Detail page ---

// GalleryImage is one photo of the gallery strip.
type GalleryImage struct {
	URL    string
	Index  int
	Link   string
	Active bool
}

// Gallery is the detail page photo viewer. Photos are addressed with the
// 1-based ?foto=N parameter and the arrows wrap around.
type Gallery struct {
	Images  []GalleryImage
	Active  GalleryImage
	PrevURL string
	NextURL string
	Count   int
}

// NewGallery selects the photo at index (1-based). Out-of-range indexes
// select the first photo. Returns nil when there are no photos.
func NewGallery(images []destination.Image, base string, index int) *Gallery {
	n := len(images)
	if n == 0 {
		return nil
	}
	if index < 1 || index > n {
		index = 1
	}

	link := func(i int) string {
		return base + "?foto=" + strconv.Itoa(i)
	}
	g := &Gallery{Images: make([]GalleryImage, n), Count: n}
	for i, img := range images {
		g.Images[i] = GalleryImage{URL: img.URL, Index: i + 1, Link: link(i + 1), Active: i+1 == index}
	}
	g.Active = g.Images[index-1]
	if n > 1 {
		g.PrevURL = link((index+n-2)%n + 1)
		g.NextURL = link(index%n + 1)
	}
	return g
}

// ReviewView is one review as listed on a page.
type ReviewView struct {
	ID              int64
	Author          string
	AvatarURL       string
	Rating          int
	Comment         string
	Date            string
	Approved        bool
	DestinationName string
	DestinationURL  string
}

// ToReviewView converts a review. Reviews of removed accounts are credited
// to "Pengguna".
func ToReviewView(r *review.Review) ReviewView {
	v := ReviewView{
		ID:       r.ID,
		Author:   "Pengguna",
		Rating:   r.Rating,
		Comment:  r.Comment,
		Date:     format.Date(r.CreatedAt),
		Approved: r.IsApproved(),
	}
	if r.Author != nil {
		v.Author = r.Author.Name
		v.AvatarURL = r.Author.AvatarURL
	}
	if r.Destination != nil {
		v.DestinationName = r.Destination.Name
		v.DestinationURL = DestinationURL(r.Destination.Slug)
	}
	return v
}

// ToReviewViews converts a review list.
func ToReviewViews(reviews []review.Review) []ReviewView {
	out := make([]ReviewView, len(reviews))
	for i := range reviews {
		out[i] = ToReviewView(&reviews[i])
	}
	return out
}

// DetailView is the destination detail page.
type DetailView struct {
	Name        string
	Slug        string
	URL         string
	Description string
	Location    string
	MapURL      string
	// MapEmbed is the iframe source for MapURL, empty when there is none.
	MapEmbed    string
	OpenHours   string
	Price       string
	Rating      string
	HasRating   bool
	ReviewCount int
	Categories  []category.Category
	Gallery     *Gallery
	Reviews     []ReviewView
	ReviewForm  ReviewForm
	// ReviewErrors is set when a submitted review failed validation.
	ReviewErrors *domain.ValidationError
}

// NewDetailView assembles the detail page with the gallery on photo index.
func NewDetailView(d *destination.Destination, photo int) DetailView {
	link := DestinationURL(d.Slug)
	return DetailView{
		Name:        d.Name,
		Slug:        d.Slug,
		URL:         link,
		Description: d.Description,
		Location:    d.Location,
		MapURL:      d.MapURL,
		MapEmbed:    MapEmbedURL(d.MapURL, d.Name),
		OpenHours:   d.OpenHours,
		Price:       format.Rupiah(d.TicketPrice),
		Rating:      format.Rating(d.RatingAvg),
		HasRating:   d.HasRating(),
		ReviewCount: d.ReviewCount,
		Categories:  d.Categories,
		Gallery:     NewGallery(d.Images, link, photo),
		Reviews:     ToReviewViews(d.Reviews),
	}
}

// MapEmbedURL turns a map link into an embeddable map. Links that already
// point at an embed are used as they are; any other link is searched by its
// q parameter, or by name when it has none. Non-http links embed nothing.
func MapEmbedURL(mapURL, name string) string {
	u, err := url.Parse(strings.TrimSpace(mapURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	if strings.Contains(u.Path, "/maps/embed") {
		return u.String()
	}
	q := strings.TrimSpace(u.Query().Get("q"))
	if q == "" {
		q = strings.TrimSpace(name)
	}
	if q == "" {
		return ""
	}
	return "https://maps.google.com/maps?" + url.Values{"q": {q}, "output": {"embed"}}.Encode()
}

// PageLinks builds numbered links for back-office and profile lists, which
// are not driven by the listing controllers. A non-empty status is kept on
// every link.
func PageLinks(meta listing.Meta, base, status string) []PageLink {
	items := listing.Pager(meta.CurrentPage, meta.LastPage)
	links := make([]PageLink, len(items))
	for i, it := range items {
		links[i] = PageLink{Number: it.Number, Current: it.Current, Gap: it.Gap}
		if it.Gap {
			continue
		}
		var q listing.Params
		if status != "" {
			q.Set("status", status)
		}
		q.Set(listing.KeyPage, strconv.Itoa(it.Number))
		links[i].URL = listing.BuildURL(base, q)
	}
	return links
}

// --- Back-office ---

// Stat is one dashboard counter. Counters the backend could not supply
// render as a dash.
type Stat struct {
	Label string
	Value string
	URL   string
}

// NewDashboardStats lists the dashboard counters.
func NewDashboardStats(d *ports.Dashboard) []Stat {
	count := func(n *int) string {
		if n == nil {
			return "–"
		}
		return format.Number(int64(*n))
	}
	return []Stat{
		{Label: "Destinasi", Value: count(d.Destinations), URL: "/admin/wisata"},
		{Label: "Ulasan menunggu", Value: count(d.PendingReviews), URL: "/admin/ulasan?status=pending"},
		{Label: "Kategori", Value: count(d.Categories), URL: "/admin/kategori"},
	}
}

// AdminDestinationRow is one row of the back-office destination table.
type AdminDestinationRow struct {
	ID       int64
	Name     string
	Location string
	Price    string
	Status   string
	Rating   string
	Reviews  int
	Photos   int
	EditURL  string
	Created  string
}

// ToAdminDestinationRows converts destinations for the back-office table.
func ToAdminDestinationRows(items []destination.Destination) []AdminDestinationRow {
	rows := make([]AdminDestinationRow, len(items))
	for i := range items {
		d := &items[i]
		rows[i] = AdminDestinationRow{
			ID:       d.ID,
			Name:     d.Name,
			Location: d.Location,
			Price:    format.Rupiah(d.TicketPrice),
			Status:   d.Status.String(),
			Rating:   format.Rating(d.RatingAvg),
			Reviews:  d.ReviewCount,
			Photos:   len(d.Images),
			EditURL:  "/admin/wisata/" + strconv.FormatInt(d.ID, 10) + "/edit",
			Created:  format.DateShort(d.CreatedAt),
		}
	}
	return rows
}

// --- Form pages ---

// LoginView is the login page.
type LoginView struct {
	Form   LoginForm
	Errors *domain.ValidationError
}

// RegisterView is the sign-up page.
type RegisterView struct {
	Form   RegisterForm
	Errors *domain.ValidationError
}

// ProfileView is the profile page: the edit form and the visitor's reviews.
type ProfileView struct {
	User    *user.User
	Form    ProfileForm
	Errors  *domain.ValidationError
	Reviews []ReviewView
	Pages   []PageLink
}

// ProfileFormFrom prefills the profile form.
func ProfileFormFrom(u *user.User) ProfileForm {
	return ProfileForm{Name: u.Name, Email: u.Email}
}

// DashboardView is the back-office landing page.
type DashboardView struct {
	Stats []Stat
}

// AdminDestinationsView is the back-office destination table.
type AdminDestinationsView struct {
	Rows  []AdminDestinationRow
	Pages []PageLink
	Total int
}

// DestinationEditView is the create/edit page. ID is 0 when creating.
type DestinationEditView struct {
	ID         int64
	Form       DestinationForm
	Errors     *domain.ValidationError
	Categories []category.Category
	Images     []destination.Image
	Statuses   []string
}

// Action is where the form posts.
func (v DestinationEditView) Action() string {
	if v.ID == 0 {
		return "/admin/wisata"
	}
	return "/admin/wisata/" + strconv.FormatInt(v.ID, 10)
}

// DestinationStatuses lists the publication states for the status select.
func DestinationStatuses() []string {
	return []string{
		destination.StatusActive.String(),
		destination.StatusDraft.String(),
		destination.StatusInactive.String(),
	}
}

// AdminCategoriesView is the back-office category page.
type AdminCategoriesView struct {
	Categories []category.Category
	Form       CategoryForm
	Errors     *domain.ValidationError
}

// ReviewTab is one status filter of the moderation queue.
type ReviewTab struct {
	Label  string
	URL    string
	Active bool
}

// AdminReviewsView is the moderation queue.
type AdminReviewsView struct {
	Status  string
	Tabs    []ReviewTab
	Reviews []ReviewView
	Pages   []PageLink
}

// ReviewTabs lists the status filters, marking the active one.
func ReviewTabs(status review.Status) []ReviewTab {
	tabs := []ReviewTab{
		{Label: "Semua", URL: "/admin/ulasan"},
		{Label: "Menunggu", URL: "/admin/ulasan?status=pending"},
		{Label: "Disetujui", URL: "/admin/ulasan?status=approved"},
	}
	switch status {
	case review.StatusPending:
		tabs[1].Active = true
	case review.StatusApproved:
		tabs[2].Active = true
	default:
		tabs[0].Active = true
	}
	return tabs
}
