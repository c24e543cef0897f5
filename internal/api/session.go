package api

import (
	"sync"
	"time"
)

// Session holds the admin token for one client run. Created empty, filled
// by login, cleared by logout. Passed around explicitly instead of living
// in package state.
type Session struct {
	mu        sync.RWMutex
	token     string
	createdAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.createdAt = time.Now()
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.createdAt = time.Time{}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
