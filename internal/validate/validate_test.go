package validate

import (
	"math"
	"testing"

	"compound-calc/internal/model"
)

func validParams() model.CalculationParams {
	return model.CalculationParams{
		Principal: 10000,
		Rate:      5,
		Time:      10,
		Frequency: model.Monthly,
	}
}

func TestCheckParams(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*model.CalculationParams)
		wantFields []string
	}{
		{
			name:       "valid params",
			mutate:     func(p *model.CalculationParams) {},
			wantFields: nil,
		},
		{
			name:       "zero principal",
			mutate:     func(p *model.CalculationParams) { p.Principal = 0 },
			wantFields: []string{"principal"},
		},
		{
			name:       "negative principal",
			mutate:     func(p *model.CalculationParams) { p.Principal = -100 },
			wantFields: []string{"principal"},
		},
		{
			name:       "principal over limit",
			mutate:     func(p *model.CalculationParams) { p.Principal = 2e12 },
			wantFields: []string{"principal"},
		},
		{
			name:       "non-finite principal",
			mutate:     func(p *model.CalculationParams) { p.Principal = math.Inf(1) },
			wantFields: []string{"principal"},
		},
		{
			name:       "zero rate",
			mutate:     func(p *model.CalculationParams) { p.Rate = 0 },
			wantFields: []string{"rate"},
		},
		{
			name:       "rate over limit",
			mutate:     func(p *model.CalculationParams) { p.Rate = 101 },
			wantFields: []string{"rate"},
		},
		{
			name:       "NaN rate",
			mutate:     func(p *model.CalculationParams) { p.Rate = math.NaN() },
			wantFields: []string{"rate"},
		},
		{
			name:       "zero time",
			mutate:     func(p *model.CalculationParams) { p.Time = 0 },
			wantFields: []string{"time"},
		},
		{
			name:       "time over limit",
			mutate:     func(p *model.CalculationParams) { p.Time = 101 },
			wantFields: []string{"time"},
		},
		{
			name:       "unknown frequency",
			mutate:     func(p *model.CalculationParams) { p.Frequency = "hourly" },
			wantFields: []string{"frequency"},
		},
		{
			name:       "zero start date",
			mutate:     func(p *model.CalculationParams) { p.StartDate = &model.Date{} },
			wantFields: []string{"startDate"},
		},
		{
			name: "multiple failures reported per field",
			mutate: func(p *model.CalculationParams) {
				p.Principal = -1
				p.Rate = 0
				p.Time = 0
			},
			wantFields: []string{"principal", "rate", "time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			errs := CheckParams(DefaultLimits(), params)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantFields), len(errs), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("error %d: expected field %q, got %q", i, field, errs[i].Field)
				}
				if errs[i].Message == "" {
					t.Errorf("error %d: empty message", i)
				}
			}
		})
	}
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{
		{Field: "principal", Message: "must be greater than zero"},
		{Field: "rate", Message: "must be greater than zero"},
	}
	want := "principal: must be greater than zero; rate: must be greater than zero"
	if got := errs.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStartDatePresentAndValid(t *testing.T) {
	params := validParams()
	d := model.NewDate(2025, 6, 1)
	params.StartDate = &d
	if errs := CheckParams(DefaultLimits(), params); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
