package remote

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

// credentialJar is the cookie jar holding the remote session cookie. It can be
// reset while requests are in flight.
type credentialJar struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

func newCredentialJar() *credentialJar {
	jar, _ := cookiejar.New(nil)
	return &credentialJar{jar: jar}
}

func (j *credentialJar) current() *cookiejar.Jar {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar
}

func (j *credentialJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.current().SetCookies(u, cookies)
}

func (j *credentialJar) Cookies(u *url.URL) []*http.Cookie {
	return j.current().Cookies(u)
}

// expireAll expires every cookie held for u and then drops the jar, so
// cookies scoped to other paths go too.
func (j *credentialJar) expireAll(u *url.URL) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var expired []*http.Cookie
	for _, c := range j.jar.Cookies(u) {
		expired = append(expired, &http.Cookie{Name: c.Name, Path: "/", MaxAge: -1})
	}
	if len(expired) > 0 {
		j.jar.SetCookies(u, expired)
	}
	j.jar, _ = cookiejar.New(nil)
}
