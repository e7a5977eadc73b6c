// Package review holds visitor reviews and their moderation state.
package review

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/explorekerinci/web/internal/domain"
)

// Rating bounds and the minimum comment length accepted on submission.
const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
)

// Status filters the admin moderation queue. The zero value lists every review.
type Status string

const (
	StatusAll      Status = ""
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusPending, StatusApproved:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Author is the reviewer as embedded in a review. Nil when the account was removed.
type Author struct {
	ID        int64
	Name      string
	AvatarURL string
}

// DestinationRef identifies the reviewed destination on cross-destination lists.
type DestinationRef struct {
	ID   int64
	Name string
	Slug string
}

// Review is a rating with a comment. ApprovedAt is nil while the review
// waits in the moderation queue.
type Review struct {
	ID          int64
	Rating      int
	Comment     string
	ApprovedAt  *time.Time
	Author      *Author
	Destination *DestinationRef
	CreatedAt   time.Time
}

// IsApproved reports whether a moderator approved the review.
func (r *Review) IsApproved() bool {
	return r.ApprovedAt != nil
}

// Submission is a new review written by a signed-in visitor.
type Submission struct {
	DestinationID int64
	Rating        int
	Comment       string
}

// Validate checks the same rules as the review form: a star rating must be
// picked and the trimmed comment must have at least MinCommentLength characters.
func (s *Submission) Validate() error {
	fields := make(map[string]string)

	if s.DestinationID <= 0 {
		fields["destination_id"] = domain.MsgInvalid
	}
	if s.Rating < MinRating || s.Rating > MaxRating {
		fields["rating"] = "pilih rating bintang terlebih dahulu"
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Comment)) < MinCommentLength {
		fields["comment"] = fmt.Sprintf("minimal %d karakter", MinCommentLength)
	}

	return domain.NewValidationError(fields)
}
