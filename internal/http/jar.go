package http

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// newJar returns the cookie jar for a credentials mode. Omit returns nil.
func newJar(mode, origin string) http.CookieJar {
	if mode == dispatch.CredentialsOmit {
		return nil
	}

	// cookiejar.New only fails on a broken PublicSuffixList option.
	jar, _ := cookiejar.New(nil)

	if mode == dispatch.CredentialsInclude {
		return jar
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return nil
	}

	return &originJar{origin: originURL, jar: jar}
}

// originJar only stores and returns cookies for the configured origin.
type originJar struct {
	origin *url.URL
	jar    http.CookieJar
}

func (j *originJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if j.sameOrigin(u) {
		j.jar.SetCookies(u, cookies)
	}
}

func (j *originJar) Cookies(u *url.URL) []*http.Cookie {
	if !j.sameOrigin(u) {
		return nil
	}

	return j.jar.Cookies(u)
}

func (j *originJar) sameOrigin(u *url.URL) bool {
	return u.Scheme == j.origin.Scheme && u.Host == j.origin.Host
}
