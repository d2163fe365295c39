package wizard

import (
	"context"
	"sync"
	"time"

	"ai-interview-backend/lib/utils/helpers"

	log "github.com/sirupsen/logrus"
)

// sessionStore - хранилище активных сессий в памяти процесса.
// Сессии без активности дольше ttl выбрасываются фоновым чистильщиком.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: map[string]*Session{},
		ttl:      ttl,
	}
}

func (s *sessionStore) Add(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *sessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *sessionStore) janitor(ctx context.Context) {
	logger := log.WithField("worker_name", "WizardSessionJanitor")
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if helpers.IsContextDone(ctx) {
				return
			}
			s.evictExpired(logger)
		}
	}
}

func (s *sessionStore) evictExpired(logger *log.Entry) {
	expired := []*Session{}
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.Expired(s.ttl) {
			delete(s.sessions, id)
			expired = append(expired, sess)
		}
	}
	s.mu.Unlock()
	for _, sess := range expired {
		sess.Release()
		logger.WithField("session_id", sess.ID).
			Info("сессия прохождения интервью удалена по таймауту")
	}
}
