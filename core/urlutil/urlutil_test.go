package urlutil

import (
	"net/url"
	"strings"
	"testing"
)

func TestAppendQuery_NoExistingQuery(t *testing.T) {
	got := AppendQuery("/pages", map[string]string{"p": "2"}, nil)
	if got != "/pages?p=2" {
		t.Errorf("AppendQuery = %q, want /pages?p=2", got)
	}
}

func TestAppendQuery_MergesAndOverrides(t *testing.T) {
	got := AppendQuery("/pages?p=1&limit=20", map[string]string{"p": "2"}, nil)
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("p") != "2" {
		t.Errorf("p = %q, want 2", q.Get("p"))
	}
	if q.Get("limit") != "20" {
		t.Errorf("limit = %q, want 20", q.Get("limit"))
	}
}

func TestAppendQuery_ConditionalOnlyWhenAbsent(t *testing.T) {
	got := AppendQuery("/pages?sort=name", nil, map[string]string{"sort": "size", "order": "asc"})
	q, _ := url.Parse(got)
	if q.Query().Get("sort") != "name" {
		t.Errorf("conditional overwrote existing sort: %q", q.Query().Get("sort"))
	}
	if q.Query().Get("order") != "asc" {
		t.Errorf("order = %q, want asc", q.Query().Get("order"))
	}

	got = AppendQuery("/pages", map[string]string{"sort": "ctime"}, map[string]string{"sort": "size"})
	q, _ = url.Parse(got)
	if q.Query().Get("sort") != "ctime" {
		t.Errorf("params should win over conditional: %q", q.Query().Get("sort"))
	}
}

func TestStripQuery(t *testing.T) {
	got := StripQuery("https://example.com/a/b?x=1&y=2#frag")
	if got != "https://example.com/a/b#frag" {
		t.Errorf("StripQuery = %q", got)
	}
}

func TestJoinQueryParams(t *testing.T) {
	existing := url.Values{"p": {"1", "3"}, "limit": {"20"}}
	got := JoinQueryParams("/pages", existing, map[string]string{"p": "2"})
	if !strings.HasPrefix(got, "/pages?") {
		t.Fatalf("JoinQueryParams = %q", got)
	}
	q, _ := url.ParseQuery(strings.TrimPrefix(got, "/pages?"))
	// Coerced to one value per key, overrides win
	if len(q["p"]) != 1 || q.Get("p") != "2" {
		t.Errorf("p = %v, want [2]", q["p"])
	}
	if q.Get("limit") != "20" {
		t.Errorf("limit = %q, want 20", q.Get("limit"))
	}
}

func TestJoin(t *testing.T) {
	if got := Join("https://example.com/a/", "b/c"); got != "https://example.com/a/b/c" {
		t.Errorf("Join = %q", got)
	}
	if got := Join("https://example.com/a/", "/root"); got != "https://example.com/root" {
		t.Errorf("Join absolute = %q", got)
	}
}

func TestJoinList(t *testing.T) {
	if got := JoinList([]string{"url", "page_id"}); got != "url,page_id" {
		t.Errorf("JoinList = %q", got)
	}
	if got := JoinList(nil); got != "" {
		t.Errorf("JoinList(nil) = %q", got)
	}
}
