package form

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/intelligrit/travel-optimizer/internal/model"
)

// FallbackCountries is offered for autocomplete when the planning service
// cannot list its countries.
var FallbackCountries = []string{
	"India",
	"United Arab Emirates",
	"United States",
	"United Kingdom",
	"France",
	"Italy",
	"Germany",
	"Austria",
	"Spain",
	"Greece",
}

// Status tracks one plan generation cycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// CountrySource lists countries for autocomplete.
type CountrySource interface {
	FetchCountries(ctx context.Context) ([]string, error)
}

// PlanGenerator turns a trip request into a plan.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req model.TripRequest) (*model.PlanResponse, error)
}

// Page holds every field of the trip preferences form plus the last
// generation result.
type Page struct {
	FromCountry string     `json:"from_country"`
	ToCountry   string     `json:"to_country"`
	Budget      string     `json:"budget"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Interests   []string   `json:"interests"`
	Pace        model.Pace `json:"pace"`
	Chain       []string   `json:"chain"`
	NewStop     string     `json:"new_stop"`

	Countries []string `json:"countries"`
	Selector  Selector `json:"selector"`

	Status Status              `json:"status"`
	Plan   *model.PlanResponse `json:"plan,omitempty"`
	Error  string              `json:"error,omitempty"`

	// Token increases with every submission. Only the response for the
	// current token is applied.
	Token uint64 `json:"token"`
}

// NewPage returns a page with the default trip filled in.
func NewPage() *Page {
	return &Page{
		FromCountry: "India",
		ToCountry:   "United States",
		Budget:      "2500",
		StartDate:   "2025-12-14",
		EndDate:     "2025-12-21",
		Interests:   []string{"museums", "shopping", "history"},
		Pace:        model.PaceBalanced,
		Chain:       []string{"India", "United States"},
		Selector:    NewSelector(DefaultInterestOptions),
		Countries:   []string{},
		Status:      StatusIdle,
	}
}

// SetOrigin updates the origin and re-applies the short-chain rule.
func (p *Page) SetOrigin(country string) {
	p.FromCountry = country
	p.Chain = SyncChain(p.Chain, p.FromCountry, p.ToCountry)
}

// SetDestination updates the destination and re-applies the short-chain rule.
func (p *Page) SetDestination(country string) {
	p.ToCountry = country
	p.Chain = SyncChain(p.Chain, p.FromCountry, p.ToCountry)
}

// SetPace sets the pace, falling back to balanced for unknown values.
func (p *Page) SetPace(s string) {
	pace, err := model.ParsePace(s)
	if err != nil {
		pace = model.PaceBalanced
	}
	p.Pace = pace
}

func (p *Page) MoveStop(idx, dir int) { p.Chain = Move(p.Chain, idx, dir) }

func (p *Page) RemoveStop(idx int) { p.Chain = Remove(p.Chain, idx) }

// AddStop appends the pending new stop to the chain and clears the input.
func (p *Page) AddStop() {
	if strings.TrimSpace(p.NewStop) == "" {
		return
	}
	p.Chain = AddStop(p.Chain, p.FromCountry, p.ToCountry, p.NewStop)
	p.NewStop = ""
}

func (p *Page) ResetChain() { p.Chain = Reset(p.FromCountry, p.ToCountry) }

func (p *Page) ToggleInterest(opt string) { p.Interests = p.Selector.Toggle(p.Interests, opt) }

func (p *Page) SelectAllInterests() { p.Interests = p.Selector.SelectAll() }

func (p *Page) ClearInterests() { p.Interests = p.Selector.Clear() }

// LoadCountries fills the autocomplete list. Any failure is absorbed by
// substituting FallbackCountries; the returned error is informational only.
func (p *Page) LoadCountries(ctx context.Context, src CountrySource) error {
	list, err := src.FetchCountries(ctx)
	p.ApplyCountries(list, err)
	return err
}

// ApplyCountries stores the outcome of a countries fetch made elsewhere.
func (p *Page) ApplyCountries(list []string, err error) {
	if err != nil {
		p.Countries = clone(FallbackCountries)
		return
	}
	p.Countries = clone(list)
}

// ParseBudget converts the budget field to a number, defaulting to 0.
func ParseBudget(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// BuildRequest assembles the request body from the current fields.
func (p *Page) BuildRequest() model.TripRequest {
	interests := clone(p.Interests)
	chain := clone(p.Chain)
	return model.TripRequest{
		FromCountry:  p.FromCountry,
		ToCountry:    p.ToCountry,
		BudgetUSD:    ParseBudget(p.Budget),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Interests:    interests,
		Pace:         p.Pace,
		CountryChain: chain,
	}
}

// BeginGenerate clears the previous outcome and starts a new submission.
func (p *Page) BeginGenerate() (uint64, model.TripRequest) {
	p.Error = ""
	p.Plan = nil
	p.Token++
	p.Status = StatusSubmitting
	return p.Token, p.BuildRequest()
}

// CompleteGenerate applies the outcome of submission token. Outcomes for
// anything but the latest submission are dropped and false is returned.
func (p *Page) CompleteGenerate(token uint64, plan *model.PlanResponse, err error) bool {
	if token != p.Token {
		return false
	}
	if err != nil {
		p.Plan = nil
		p.Error = err.Error()
		p.Status = StatusFailed
		return true
	}
	p.Plan = plan
	p.Error = ""
	p.Status = StatusSuccess
	return true
}

// Generate runs a full submission synchronously.
func (p *Page) Generate(ctx context.Context, gen PlanGenerator) {
	token, req := p.BeginGenerate()
	plan, err := gen.GeneratePlan(ctx, req)
	p.CompleteGenerate(token, plan, err)
}

// Warnings reports chain problems for display.
func (p *Page) Warnings() []string {
	return ChainWarnings(p.Chain)
}
