package core

import (
	"errors"
	"testing"
)

func TestValidateAssessment(t *testing.T) {
	tests := []struct {
		name    string
		input   *Assessment
		wantErr error
	}{
		{
			name: "valid assessment",
			input: &Assessment{
				Name:        "Verify - Numerical Reasoning",
				Description: "Measures numerical reasoning ability.",
			},
			wantErr: nil,
		},
		{
			name: "valid with only required fields",
			input: &Assessment{
				Name:        "OPQ",
				Description: "Occupational personality questionnaire.",
			},
			wantErr: nil,
		},
		{
			name:    "nil assessment",
			input:   nil,
			wantErr: ErrInvalidAssessment,
		},
		{
			name: "empty name",
			input: &Assessment{
				Description: "Some description.",
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "empty description",
			input: &Assessment{
				Name: "Coding Simulations - SQL",
			},
			wantErr: ErrEmptyDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssessment(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssessment() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssessment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	a := &Assessment{
		Name:        "Teamwork Styles Assessment",
		Description: "Assesses collaboration preferences.",
	}
	Normalize(a)

	if a.RemoteTesting != FlagUnknown {
		t.Errorf("RemoteTesting = %q, want %q", a.RemoteTesting, FlagUnknown)
	}
	if a.AdaptiveIRT != FlagUnknown {
		t.Errorf("AdaptiveIRT = %q, want %q", a.AdaptiveIRT, FlagUnknown)
	}
	if a.Duration != FlagUnknown {
		t.Errorf("Duration = %q, want %q", a.Duration, FlagUnknown)
	}
	if a.TestType != FlagUnknown {
		t.Errorf("TestType = %q, want %q", a.TestType, FlagUnknown)
	}
}

func TestNormalize_PreservesExisting(t *testing.T) {
	a := &Assessment{
		Name:          "Verify Interactive",
		Description:   "Adaptive cognitive test.",
		RemoteTesting: FlagYes,
		TestType:      "Cognitive Ability",
	}
	Normalize(a)

	if a.RemoteTesting != FlagYes {
		t.Errorf("RemoteTesting = %q, want %q", a.RemoteTesting, FlagYes)
	}
	if a.TestType != "Cognitive Ability" {
		t.Errorf("TestType = %q, want %q", a.TestType, "Cognitive Ability")
	}
}
