package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/intelligrit/travel-optimizer/internal/form"
	"github.com/intelligrit/travel-optimizer/internal/model"
)

// badRequest marks form input the handler cannot use.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id, err := s.session(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	p, err := s.Store.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.Renderer.RenderPage(&buf, p); err != nil {
		s.Logger.Error("rendering page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id, err := s.session(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	p, err := s.Store.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	id, err := s.session(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	p, err := s.Store.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, p.Countries)
}

func (s *Server) handleBasemap(w http.ResponseWriter, r *http.Request) {
	if s.Basemap == "" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(s.Basemap); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, s.Basemap)
}

// action wraps a page mutation as a form POST handler. inside reports whether
// the control lives in the interests selector; any other action counts as a
// click outside it.
func (s *Server) action(inside bool, fn func(p *form.Page, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, err := s.session(w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		_, err = s.Store.Update(id, func(p *form.Page) error {
			p.Selector.PointerDown(inside)
			return fn(p, r)
		})
		if err != nil {
			var br badRequest
			if errors.As(err, &br) {
				http.Error(w, br.msg, http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// handleGenerate submits the current form to the planning service. The
// session lock is released while the service works; the reply is applied
// only if no newer submission started meanwhile.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := s.session(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var (
		token uint64
		req   model.TripRequest
	)
	_, err = s.Store.Update(id, func(p *form.Page) error {
		p.Selector.PointerDown(false)
		if err := applyFields(p, r); err != nil {
			return err
		}
		token, req = p.BeginGenerate()
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	plan, genErr := s.Planner.GeneratePlan(r.Context(), req)
	if genErr != nil {
		s.Logger.Info("plan generation failed", "session", id, "error", genErr)
	}

	_, err = s.Store.Update(id, func(p *form.Page) error {
		if !p.CompleteGenerate(token, plan, genErr) {
			s.Logger.Debug("discarding stale plan", "session", id, "token", token, "current", p.Token)
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// applyFields copies the submitted form fields onto the page. Fields absent
// from the form are left untouched, and origin/destination only trigger the
// chain rule when they actually change.
func applyFields(p *form.Page, r *http.Request) error {
	if v, ok := formValue(r, "from"); ok && v != p.FromCountry {
		p.SetOrigin(v)
	}
	if v, ok := formValue(r, "to"); ok && v != p.ToCountry {
		p.SetDestination(v)
	}
	if v, ok := formValue(r, "budget"); ok {
		p.Budget = v
	}
	if v, ok := formValue(r, "start"); ok {
		p.StartDate = v
	}
	if v, ok := formValue(r, "end"); ok {
		p.EndDate = v
	}
	if v, ok := formValue(r, "pace"); ok {
		p.SetPace(v)
	}
	return nil
}

func moveStop(p *form.Page, r *http.Request) error {
	idx, err := intField(r, "idx")
	if err != nil {
		return err
	}
	dir, err := intField(r, "dir")
	if err != nil {
		return err
	}
	if dir != -1 && dir != 1 {
		return badRequest{"dir must be -1 or 1"}
	}
	p.MoveStop(idx, dir)
	return nil
}

func removeStop(p *form.Page, r *http.Request) error {
	idx, err := intField(r, "idx")
	if err != nil {
		return err
	}
	p.RemoveStop(idx)
	return nil
}

func addStop(p *form.Page, r *http.Request) error {
	p.NewStop = r.PostForm.Get("stop")
	p.AddStop()
	return nil
}

func resetChain(p *form.Page, _ *http.Request) error {
	p.ResetChain()
	return nil
}

func toggleOpen(p *form.Page, _ *http.Request) error {
	p.Selector.ToggleOpen()
	return nil
}

func toggleInterest(p *form.Page, r *http.Request) error {
	opt := r.PostForm.Get("opt")
	if opt == "" {
		return badRequest{"missing opt"}
	}
	p.ToggleInterest(opt)
	return nil
}

func selectAll(p *form.Page, _ *http.Request) error {
	p.SelectAllInterests()
	return nil
}

func clearInterests(p *form.Page, _ *http.Request) error {
	p.ClearInterests()
	return nil
}

func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func intField(r *http.Request, key string) (int, error) {
	n, err := strconv.Atoi(r.PostForm.Get(key))
	if err != nil {
		return 0, badRequest{"invalid '" + key + "' parameter"}
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
