package authapi

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"authsession/internal/domain"
)

// Jar is an http.CookieJar that mirrors every cookie it accepts into a
// domain.CookieStore. Cookies deleted or expired by the server are dropped
// from the store as well.
type Jar struct {
	inner *cookiejar.Jar
	store domain.CookieStore
	log   *zap.Logger
	now   func() time.Time

	mu    sync.Mutex
	saved map[string]domain.StoredCookie
}

// NewJar builds a jar seeded from store. A nil store yields an in-memory jar.
func NewJar(store domain.CookieStore, log *zap.Logger) (*Jar, error) {
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	j := &Jar{
		inner: inner,
		store: store,
		log:   log,
		now:   time.Now,
		saved: make(map[string]domain.StoredCookie),
	}
	if store == nil {
		return j, nil
	}

	stored, err := store.LoadCookies()
	if err != nil {
		return nil, err
	}
	now := j.now()
	for _, sc := range stored {
		if sc.Expired(now) {
			continue
		}
		u, err := url.Parse(sc.URL)
		if err != nil {
			log.Warn("dropping stored cookie with bad url", zap.String("url", sc.URL), zap.Error(err))
			continue
		}
		inner.SetCookies(u, []*http.Cookie{sc.HTTPCookie()})
		j.saved[sc.Key()] = sc
	}
	return j, nil
}

// SetCookies implements http.CookieJar.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	if j.store == nil {
		return
	}

	origin := (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String()
	now := j.now()

	j.mu.Lock()
	defer j.mu.Unlock()
	for _, c := range cookies {
		sc := domain.StoredCookie{
			URL:      origin,
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		switch {
		case c.MaxAge < 0:
			delete(j.saved, sc.Key())
			continue
		case c.MaxAge > 0:
			sc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		if sc.Expired(now) {
			delete(j.saved, sc.Key())
			continue
		}
		j.saved[sc.Key()] = sc
	}
	j.persist()
}

// persist writes the saved set, or removes the file once nothing is left.
// Caller holds mu.
func (j *Jar) persist() {
	var err error
	if len(j.saved) == 0 {
		err = j.store.Clear()
	} else {
		err = j.store.SaveCookies(j.snapshot())
	}
	if err != nil {
		j.log.Warn("persist cookies", zap.Error(err))
	}
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie { return j.inner.Cookies(u) }

// snapshot returns the saved cookies in a stable order. Caller holds mu.
func (j *Jar) snapshot() []domain.StoredCookie {
	out := make([]domain.StoredCookie, 0, len(j.saved))
	for _, sc := range j.saved {
		out = append(out, sc)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key() < out[b].Key() })
	return out
}

var _ http.CookieJar = (*Jar)(nil)
