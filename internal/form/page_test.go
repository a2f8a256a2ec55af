package form

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/intelligrit/travel-optimizer/internal/model"
)

type stubCountries struct {
	list []string
	err  error
}

func (s stubCountries) FetchCountries(context.Context) ([]string, error) {
	return s.list, s.err
}

type stubPlanner struct {
	plan *model.PlanResponse
	err  error
	got  model.TripRequest
}

func (s *stubPlanner) GeneratePlan(_ context.Context, req model.TripRequest) (*model.PlanResponse, error) {
	s.got = req
	return s.plan, s.err
}

func TestLoadCountries(t *testing.T) {
	p := NewPage()
	list := []string{"Japan", "Peru"}
	if err := p.LoadCountries(context.Background(), stubCountries{list: list}); err != nil {
		t.Fatalf("LoadCountries: %v", err)
	}
	if !reflect.DeepEqual(p.Countries, list) {
		t.Errorf("suggestions = %v, want %v", p.Countries, list)
	}

	p = NewPage()
	if err := p.LoadCountries(context.Background(), stubCountries{err: errors.New("down")}); err == nil {
		t.Error("expected the load error to be reported to the caller")
	}
	if !reflect.DeepEqual(p.Countries, FallbackCountries) {
		t.Errorf("suggestions = %v, want fallback", p.Countries)
	}
	if len(p.Countries) != 10 {
		t.Errorf("expected ten fallback countries, got %d", len(p.Countries))
	}
}

func TestOriginDestinationSync(t *testing.T) {
	p := NewPage()
	p.SetOrigin("France")
	if !reflect.DeepEqual(p.Chain, []string{"France", "United States"}) {
		t.Errorf("chain = %v", p.Chain)
	}
	p.SetDestination("Italy")
	if !reflect.DeepEqual(p.Chain, []string{"France", "Italy"}) {
		t.Errorf("chain = %v", p.Chain)
	}

	p.NewStop = "Austria"
	p.AddStop()
	if p.NewStop != "" {
		t.Error("new stop input should be cleared")
	}
	p.SetOrigin("Spain")
	if !reflect.DeepEqual(p.Chain, []string{"France", "Austria", "Italy"}) {
		t.Errorf("chain with stops must not follow origin, got %v", p.Chain)
	}

	p.ResetChain()
	if !reflect.DeepEqual(p.Chain, []string{"Spain", "Italy"}) {
		t.Errorf("reset chain = %v", p.Chain)
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2500", 2500},
		{" 1200.5 ", 1200.5},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := ParseBudget(tt.in); got != tt.want {
			t.Errorf("ParseBudget(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGenerateSuccess(t *testing.T) {
	plan := &model.PlanResponse{Cities: []string{"Delhi", "New York"}, EstimatedTotal: 2100}
	gen := &stubPlanner{plan: plan}

	p := NewPage()
	p.Budget = "abc"
	p.Error = "old error"
	p.Generate(context.Background(), gen)

	if gen.got.BudgetUSD != 0 {
		t.Errorf("unparseable budget should be sent as 0, got %v", gen.got.BudgetUSD)
	}
	if !reflect.DeepEqual(gen.got.CountryChain, []string{"India", "United States"}) {
		t.Errorf("chain sent = %v", gen.got.CountryChain)
	}
	if p.Status != StatusSuccess || p.Plan != plan || p.Error != "" {
		t.Errorf("unexpected page after success: status=%s plan=%v err=%q", p.Status, p.Plan, p.Error)
	}
}

func TestGenerateFailure(t *testing.T) {
	gen := &stubPlanner{err: errors.New("Failed to generate plan")}

	p := NewPage()
	p.Plan = &model.PlanResponse{}
	p.Generate(context.Background(), gen)

	if p.Status != StatusFailed {
		t.Errorf("status = %s", p.Status)
	}
	if p.Plan != nil {
		t.Error("plan must be cleared on failure")
	}
	if p.Error != "Failed to generate plan" {
		t.Errorf("error = %q", p.Error)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	p := NewPage()

	first, _ := p.BeginGenerate()
	second, _ := p.BeginGenerate()
	if second <= first {
		t.Fatalf("tokens must increase: %d then %d", first, second)
	}

	latest := &model.PlanResponse{RoutingMode: "latest"}
	if !p.CompleteGenerate(second, latest, nil) {
		t.Fatal("latest submission should apply")
	}
	if p.CompleteGenerate(first, &model.PlanResponse{RoutingMode: "stale"}, nil) {
		t.Error("stale submission should be discarded")
	}
	if p.Plan.RoutingMode != "latest" {
		t.Errorf("plan = %+v", p.Plan)
	}
}

func TestBeginGenerateResetsOutcome(t *testing.T) {
	p := NewPage()
	p.Status = StatusFailed
	p.Error = "boom"
	p.Plan = &model.PlanResponse{}

	p.BeginGenerate()
	if p.Status != StatusSubmitting || p.Error != "" || p.Plan != nil {
		t.Errorf("expected clean submitting state, got status=%s err=%q plan=%v", p.Status, p.Error, p.Plan)
	}
}

func TestSetPace(t *testing.T) {
	p := NewPage()
	p.SetPace("packed")
	if p.Pace != model.PacePacked {
		t.Errorf("pace = %s", p.Pace)
	}
	p.SetPace("frantic")
	if p.Pace != model.PaceBalanced {
		t.Errorf("unknown pace should fall back to balanced, got %s", p.Pace)
	}
}

func TestApplyCountriesLeavesOtherFields(t *testing.T) {
	p := NewPage()
	p.SetOrigin("Spain")
	p.Token = 3

	p.ApplyCountries([]string{"Chile"}, nil)
	if !reflect.DeepEqual(p.Countries, []string{"Chile"}) {
		t.Errorf("suggestions = %v", p.Countries)
	}
	if p.FromCountry != "Spain" || p.Token != 3 {
		t.Errorf("unrelated fields changed: %+v", p)
	}

	p.ApplyCountries(nil, errors.New("timeout"))
	if !reflect.DeepEqual(p.Countries, FallbackCountries) {
		t.Errorf("suggestions = %v, want fallback", p.Countries)
	}
}
