package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novashop/novashop-backend/config"
	"github.com/novashop/novashop-backend/internal/app/session"
)

const sessionContextKey = "storefront_session"

// SessionMiddleware binds every request to a storefront session via a cookie,
// minting a new session (and cookie) on first contact or after a sweep.
type SessionMiddleware struct {
	store      *session.Store
	cookieName string
}

func NewSessionMiddleware(store *session.Store, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cfg.Session.CookieName,
	}
}

// Attach resolves or creates the session for the request and stores it in the
// gin context.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(m.cookieName)

		sess, created := m.store.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(m.cookieName, sess.ID(), 0, "/", "", false, true)
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// GetSession retrieves the storefront session from the gin context.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
