package browse

import (
	"sync"
	"time"

	"github.com/explorekerinci/web/internal/domain/listing"
)

// DefaultDebounce is how long the search box must stay idle before the
// typed text is committed to the URL.
const DefaultDebounce = 400 * time.Millisecond

// Commit kinds reported to the commit hook.
const (
	CommitSearch   = "search"
	CommitCategory = "category"
	CommitApply    = "apply"
	CommitReset    = "reset"
)

// Stopper cancels a scheduled callback. *time.Timer satisfies it.
type Stopper interface {
	Stop() bool
}

// Scheduler arms a one-shot callback after d.
type Scheduler func(d time.Duration, f func()) Stopper

func timeScheduler(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithScheduler replaces time.AfterFunc, letting tests drive the timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithCommitHook registers fn to be called with the commit kind and the
// target URL after each navigation the controller issues.
func WithCommitHook(fn func(kind, target string)) Option {
	return func(c *Controller) {
		c.onCommit = fn
	}
}

// Controller keeps the search box, the committed category, and the staged
// category of the compact filter panel consistent with the URL.
//
// Keystrokes update the input immediately and re-arm a single-slot debounce
// timer; only when the input has been idle for the debounce window is the
// text committed. Category picks commit at once. Close cancels any armed
// timer, and a timer that fires concurrently with Close never navigates.
//
// Commits run with the controller's lock held, so the Navigator must not
// call back into the Controller.
type Controller struct {
	loc      *Location
	debounce time.Duration
	schedule Scheduler
	onCommit func(kind, target string)

	mu         sync.Mutex
	input      string
	category   string
	pending    string
	filterOpen bool
	timer      Stopper
	generation uint64
	closed     bool
}

// NewController starts from the search and category in the location's query.
func NewController(loc *Location, opts ...Option) *Controller {
	q := loc.Query()
	c := &Controller{
		loc:      loc,
		debounce: DefaultDebounce,
		schedule: timeScheduler,
		input:    q.Get(listing.KeySearch),
		category: q.Get(listing.KeyCategory),
	}
	c.pending = c.category
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type sets the search box text and re-arms the debounce timer.
func (c *Controller) Type(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.input = text
	gen := c.disarm()
	c.timer = c.schedule(c.debounce, func() { c.fire(gen) })
}

// Flush commits a typed search without waiting for the timer, as when the
// visitor presses Enter. Returns false when nothing was pending.
func (c *Controller) Flush() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.timer == nil {
		return false
	}
	c.disarm()
	c.commitSearch()
	return true
}

// SelectCategory commits a category immediately together with the current
// search text. An empty slug means all categories. Slugs are not checked
// against the loaded categories; the backend answers unknown ones with an
// empty page.
func (c *Controller) SelectCategory(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.disarm()
	c.category = slug
	c.pending = slug
	c.commit(CommitCategory, listing.Search(c.input), listing.Category(slug))
}

// OpenFilter opens the compact filter panel, staging the committed category.
func (c *Controller) OpenFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = c.category
	c.filterOpen = true
}

// StageCategory changes the staged category without touching the URL.
// Ignored while the panel is closed.
func (c *Controller) StageCategory(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filterOpen {
		c.pending = slug
	}
}

// ApplyFilter commits the staged category and closes the panel. Returns
// false when the panel was not open.
func (c *Controller) ApplyFilter() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.filterOpen {
		return false
	}
	c.disarm()
	c.filterOpen = false
	c.category = c.pending
	c.commit(CommitApply, listing.Search(c.input), listing.Category(c.category))
	return true
}

// CancelFilter closes the panel and discards the staged category.
func (c *Controller) CancelFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filterOpen = false
	c.pending = c.category
}

// Reset clears search and category and navigates to the bare path.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.disarm()
	c.input, c.category, c.pending = "", "", ""
	c.filterOpen = false
	target := c.loc.Push(c.loc.Path(), listing.Params{})
	c.notify(CommitReset, target)
}

// Close tears the controller down. Any armed timer is cancelled and later
// calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disarm()
	c.closed = true
}

// Input returns the search box text, committed or not.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Category returns the committed category slug.
func (c *Controller) Category() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// Pending returns the category staged in the filter panel.
func (c *Controller) Pending() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// FilterOpen reports whether the compact filter panel is open.
func (c *Controller) FilterOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterOpen
}

// HasFilter reports whether a search text or category is active, which is
// when the reset control is shown.
func (c *Controller) HasFilter() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input != "" || c.category != ""
}

// fire is the timer callback. gen identifies the arming it belongs to; a
// callback from a superseded or cancelled arming does nothing.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation || c.timer == nil {
		return
	}
	c.timer = nil
	c.commitSearch()
}

// disarm stops the armed timer, if any, and invalidates its callback.
// Returns the new generation. Caller holds c.mu.
func (c *Controller) disarm() uint64 {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
	return c.generation
}

func (c *Controller) commitSearch() {
	c.commit(CommitSearch, listing.Search(c.input), listing.Category(c.category))
}

// commit rewrites the location. Caller holds c.mu.
func (c *Controller) commit(kind string, changes ...listing.Change) {
	target := c.loc.Rewrite(func(q listing.Params) listing.Params {
		return listing.ApplyChanges(q, changes...)
	})
	c.notify(kind, target)
}

func (c *Controller) notify(kind, target string) {
	if c.onCommit != nil {
		c.onCommit(kind, target)
	}
}
