package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/intelligrit/travel-optimizer/internal/form"
)

const (
	sessionCookie = "tp_session"

	defaultCountriesTimeout = 10 * time.Second
)

// session returns the caller's session id, creating a fresh page when the
// cookie is missing or points at a session we no longer hold. The page is
// served straight away; its country suggestions arrive in the background.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			ok, err := s.Store.Exists(c.Value)
			if err != nil {
				return "", err
			}
			if ok {
				return c.Value, nil
			}
		}
	}

	id := uuid.NewString()
	if err := s.Store.Put(id, form.NewPage()); err != nil {
		return "", err
	}

	s.loads.Add(1)
	go s.loadCountries(context.WithoutCancel(r.Context()), id)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.Logger.Debug("new session", "id", id)
	return id, nil
}

// loadCountries fetches the suggestion list for a new session and stores it,
// or the fallback list when the planning service fails.
func (s *Server) loadCountries(ctx context.Context, id string) {
	defer s.loads.Done()

	timeout := s.CountriesTimeout
	if timeout <= 0 {
		timeout = defaultCountriesTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	list, fetchErr := s.Planner.FetchCountries(ctx)
	if fetchErr != nil {
		s.Logger.Debug("using fallback countries", "session", id, "error", fetchErr)
	}

	_, err := s.Store.Update(id, func(p *form.Page) error {
		p.ApplyCountries(list, fetchErr)
		return nil
	})
	if err != nil {
		s.Logger.Warn("storing countries", "session", id, "error", err)
	}
}
