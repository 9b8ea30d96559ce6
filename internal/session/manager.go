package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"taskflow/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session is a loaded server-side session.
type Session struct {
	ID string
	Data
}

// Manager ties the signed cookie to the session store.
type Manager struct {
	store      Store
	signer     *auth.Signer
	ttl        time.Duration
	cookieName string
	secure     bool
}

type Options struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

func NewManager(store Store, opts Options) *Manager {
	return &Manager{
		store:      store,
		signer:     auth.NewSigner(opts.Secret, opts.TTL),
		ttl:        opts.TTL,
		cookieName: opts.CookieName,
		secure:     opts.Secure,
	}
}

func (m *Manager) CookieName() string { return m.cookieName }

// Start creates a fresh session for data and writes its cookie.
func (m *Manager) Start(c *gin.Context, data Data) (*Session, error) {
	sid := uuid.NewString()
	if err := m.store.Set(c.Request.Context(), sid, data, m.ttl); err != nil {
		return nil, err
	}
	token, err := m.signer.SignSessionID(sid)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	m.writeCookie(c, token, int(m.ttl.Seconds()))
	return &Session{ID: sid, Data: data}, nil
}

// Load returns the request's session, or nil when the cookie is missing,
// tampered or points at an expired session. Store failures are returned.
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	cookie, err := c.Request.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	sid, err := m.signer.ParseSessionID(cookie.Value)
	if err != nil {
		return nil, nil
	}
	data, err := m.store.Get(c.Request.Context(), sid)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Session{ID: sid, Data: *data}, nil
}

// Destroy removes the session from the store and expires the cookie.
func (m *Manager) Destroy(c *gin.Context, sid string) error {
	if err := m.store.Destroy(c.Request.Context(), sid); err != nil {
		return err
	}
	m.writeCookie(c, "", -1)
	return nil
}

func (m *Manager) writeCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
