package client

import (
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// Header names the request header the resolved token travels in.
const Header = "X-CSRFToken"

// Page is a loaded portal page: the response cookies plus the parsed
// document. It is the only source the token resolver consults; resolving
// never triggers a request of its own.
type Page struct {
	cookies []*http.Cookie
	doc     *html.Node
}

// ParsePage parses a page body together with the cookies it arrived with.
func ParsePage(body io.Reader, cookies []*http.Cookie) (*Page, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return nil, err
	}
	return &Page{cookies: cookies, doc: doc}, nil
}

// TokenResolver locates the anti-forgery token on a page. Sources are tried
// in order: the token cookie, then a hidden form input, then a meta tag.
type TokenResolver struct {
	CookieName string
	FieldName  string
	MetaName   string
}

// NewTokenResolver uses the portal's conventional names.
func NewTokenResolver() *TokenResolver {
	return &TokenResolver{
		CookieName: "csrftoken",
		FieldName:  "csrfmiddlewaretoken",
		MetaName:   "csrf-token",
	}
}

// Resolve returns the token, or a ConfigError when no source has one. Any
// submission attempted after that fails locally without touching the
// network.
func (r *TokenResolver) Resolve(page *Page) (string, error) {
	if page != nil {
		for _, c := range page.cookies {
			if c.Name == r.CookieName && c.Value != "" {
				return c.Value, nil
			}
		}
		if v := findAttr(page.doc, "input", "name", r.FieldName, "value"); v != "" {
			return v, nil
		}
		if v := findAttr(page.doc, "meta", "name", r.MetaName, "content"); v != "" {
			return v, nil
		}
	}
	return "", &ConfigError{Message: "anti-forgery token not found on page"}
}

// findAttr walks the document for the first <tag matchAttr=matchVal> and
// returns its wantAttr value.
func findAttr(n *html.Node, tag, matchAttr, matchVal, wantAttr string) string {
	if n == nil {
		return ""
	}
	if n.Type == html.ElementNode && n.Data == tag {
		matched := false
		want := ""
		for _, a := range n.Attr {
			if a.Key == matchAttr && strings.EqualFold(a.Val, matchVal) {
				matched = true
			}
			if a.Key == wantAttr {
				want = a.Val
			}
		}
		if matched && want != "" {
			return want
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if v := findAttr(child, tag, matchAttr, matchVal, wantAttr); v != "" {
			return v
		}
	}
	return ""
}
