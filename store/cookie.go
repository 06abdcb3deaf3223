package store

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieStore keeps values in browser cookies. It is bound to a single
// request: reads come from the request, writes go to the response.
type CookieStore struct {
	c      *gin.Context
	maxAge int
	secure bool
}

func NewCookieStore(c *gin.Context, maxAge int, secure bool) *CookieStore {
	return &CookieStore{c: c, maxAge: maxAge, secure: secure}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	value, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes the cookie with the store's max-age. gin URL-escapes the value.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	s.c.SetCookie(key, value, s.maxAge, "/", "", s.secure, false)
	return nil
}

// Expire tells the client to drop the cookie.
func (s *CookieStore) Expire(key string) {
	s.c.SetCookie(key, "", -1, "/", "", s.secure, false)
}
