// Package urlutil holds URL and query-string helpers shared by the HTML
// layer (template funcs) and the API modules.
package urlutil

import (
	"net/url"
	"strings"
)

// AppendQuery adds the GET query from params to rawurl, merging with any
// query already present. params win over the existing query.
//
// conditional entries are only used if a param with that key is not already
// present in the original url or in params.
//
// Returns the new url; an unparseable url is returned unchanged.
func AppendQuery(rawurl string, params map[string]string, conditional map[string]string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return rawurl
	}
	q := u.Query()
	for k, v := range conditional {
		if _, ok := q[k]; !ok {
			if _, ok := params[k]; !ok {
				q.Set(k, v)
			}
		}
	}
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// StripQuery removes the query string from rawurl, keeping the fragment.
func StripQuery(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return rawurl
	}
	u.RawQuery = ""
	return u.String()
}

// JoinQueryParams builds "<path>?<query>" from the existing query values and
// the overrides. The result holds exactly one value per key, with priority
// to overrides. Keys are emitted in sorted order (url.Values.Encode).
func JoinQueryParams(path string, existing url.Values, overrides map[string]string) string {
	merged := url.Values{}
	for k := range existing {
		merged.Set(k, existing.Get(k))
	}
	for k, v := range overrides {
		merged.Set(k, v)
	}
	return path + "?" + merged.Encode()
}

// Join resolves ref against base, like urllib's urljoin.
func Join(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return b.ResolveReference(r).String()
}

// JoinList joins values with commas, for emitting declared parameter lists
// as a single data attribute.
func JoinList(values []string) string {
	return strings.Join(values, ",")
}
