// Package format renders prices, ratings and dates the way Indonesian
// visitors read them. The functions are registered as template helpers.
package format

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Free is shown instead of a zero ticket price.
const Free = "Gratis"

// NoRating is shown for destinations without approved reviews.
const NoRating = "Belum ada ulasan"

// WIB is Western Indonesia Time (Asia/Jakarta). It has no daylight saving,
// so a fixed zone avoids depending on the host's tz database.
var WIB = time.FixedZone("WIB", 7*60*60)

var printer = message.NewPrinter(language.Indonesian)

var (
	monthsLong = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
	monthsShort = [...]string{
		"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
		"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
	}
)

// Number groups thousands with dots: 1500000 -> "1.500.000".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Rupiah formats a ticket price: 15000 -> "Rp 15.000",
// 0 -> "Gratis".
func Rupiah(amount int64) string {
	if amount == 0 {
		return Free
	}
	if amount < 0 {
		return "-Rp " + Number(-amount)
	}
	return "Rp " + Number(amount)
}

// Rating formats an average rating with one decimal, or NoRating when nil.
func Rating(avg *float64) string {
	if avg == nil {
		return NoRating
	}
	return strconv.FormatFloat(*avg, 'f', 1, 64)
}

// Date formats a timestamp as "17 Agustus 2026" in WIB. Zero time renders
// as an empty string.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(WIB)
	return strconv.Itoa(t.Day()) + " " + monthsLong[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// DateShort formats a timestamp as "17 Agu 2026" in WIB.
func DateShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(WIB)
	return strconv.Itoa(t.Day()) + " " + monthsShort[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
