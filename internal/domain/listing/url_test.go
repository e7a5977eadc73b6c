package listing

import (
	"net/url"
	"testing"
)

func TestApplyChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		changes []Change
		want    string
	}{
		{
			name:    "category change drops page and keeps key order",
			current: "search=air&page=3",
			changes: []Change{Category("air-terjun")},
			want:    "search=air&category=air-terjun",
		},
		{
			name:    "search replaces value in place",
			current: "category=danau-sungai&search=old&page=2",
			changes: []Change{Search("danau")},
			want:    "category=danau-sungai&search=danau",
		},
		{
			name:    "empty search deletes the key",
			current: "search=air&category=agrowisata",
			changes: []Change{Search("")},
			want:    "category=agrowisata",
		},
		{
			name:    "empty search on empty query stays empty",
			current: "",
			changes: []Change{Search("")},
			want:    "",
		},
		{
			name:    "both keys applied in order",
			current: "per_page=12&page=4",
			changes: []Change{Search("kayangan"), Category("bukit-pandang")},
			want:    "per_page=12&search=kayangan&category=bukit-pandang",
		},
		{
			name:    "unrelated key leaves page alone",
			current: "search=air&page=2",
			changes: []Change{{Key: KeyPerPage, Value: "18"}},
			want:    "search=air&page=2&per_page=18",
		},
		{
			name:    "duplicate keys collapse on set",
			current: "search=a&search=b&page=5",
			changes: []Change{Search("c")},
			want:    "search=c",
		},
		{
			name:    "spaces are form encoded",
			current: "",
			changes: []Change{Search("air terjun")},
			want:    "search=air+terjun",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ApplyChanges(ParseParams(tt.current), tt.changes...).Encode()
			if got != tt.want {
				t.Errorf("ApplyChanges(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestApplyChanges_NeverCarriesPage(t *testing.T) {
	t.Parallel()

	currents := []string{"", "page=1", "page=9&search=x", "category=a&page=2&per_page=3", "page=1&page=2"}
	changeSets := [][]Change{
		{Search("danau")},
		{Search("")},
		{Category("ekowisata")},
		{Category("")},
		{Search("a"), Category("b")},
	}

	for _, current := range currents {
		for _, changes := range changeSets {
			got := ApplyChanges(ParseParams(current), changes...)
			if got.Has(KeyPage) {
				t.Errorf("ApplyChanges(%q, %v) kept page: %q", current, changes, got.Encode())
			}
		}
	}
}

func TestApplyChanges_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	current := ParseParams("search=air&page=3")
	_ = ApplyChanges(current, Category("air-terjun"))

	if got := current.Encode(); got != "search=air&page=3" {
		t.Errorf("input mutated: %q", got)
	}
}

func TestWithPage(t *testing.T) {
	t.Parallel()

	current := ParseParams("search=air&category=air-terjun")
	got := WithPage(current, 2).Encode()
	if want := "search=air&category=air-terjun&page=2"; got != want {
		t.Errorf("WithPage() = %q, want %q", got, want)
	}

	got = WithPage(ParseParams("page=2&search=air"), 3).Encode()
	if want := "page=3&search=air"; got != want {
		t.Errorf("WithPage() = %q, want %q", got, want)
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	if got := BuildURL("/wisata", Params{}); got != "/wisata" {
		t.Errorf("BuildURL(empty) = %q", got)
	}
	if got := BuildURL("/wisata", ParseParams("?search=danau")); got != "/wisata?search=danau" {
		t.Errorf("BuildURL() = %q", got)
	}
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	p := ParseParams("?search=air+terjun&category=&bad=%zz&&flag")
	if got := p.Get(KeySearch); got != "air terjun" {
		t.Errorf("Get(search) = %q", got)
	}
	if !p.Has(KeyCategory) {
		t.Error("Has(category) = false, want true for empty value")
	}
	if got := p.Get("bad"); got != "%zz" {
		t.Errorf("Get(bad) = %q, want raw value", got)
	}
	if !p.Has("flag") {
		t.Error("Has(flag) = false")
	}
	if got := p.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestParamsFromValues(t *testing.T) {
	t.Parallel()

	v := url.Values{
		"zeta":     {"1"},
		"page":     {"2"},
		"category": {"agrowisata"},
		"alpha":    {"x"},
		"search":   {"teh"},
	}
	got := ParamsFromValues(v).Encode()
	want := "search=teh&category=agrowisata&page=2&alpha=x&zeta=1"
	if got != want {
		t.Errorf("ParamsFromValues() = %q, want %q", got, want)
	}
}

func TestParams_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	a := ParseParams("search=a&category=b")
	b := a
	b.Del(KeySearch)
	b.Set(KeyCategory, "c")

	if got := a.Encode(); got != "search=a&category=b" {
		t.Errorf("original changed to %q", got)
	}
}
