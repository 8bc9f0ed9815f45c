package catalog

import (
	"testing"
)

func TestParseTaskCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TaskCategory
		wantErr bool
	}{
		{"code generation", "code_generation", CodeGeneration, false},
		{"formal verification", "formal_verification", FormalVerification, false},
		{"unknown value", "prose_generation", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTaskCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTaskCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{"low", "low", SeverityLow, false},
		{"critical", "critical", SeverityCritical, false},
		{"unknown", "catastrophic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Errorf("Rank(%s) = %d not greater than Rank(%s) = %d",
				ordered[i], ordered[i].Rank(), ordered[i-1], ordered[i-1].Rank())
		}
	}
}

func TestFeasibilityWeight(t *testing.T) {
	tests := []struct {
		level Level
		want  float64
	}{
		{Low, 0.4},
		{Medium, 0.7},
		{High, 1.0},
	}

	for _, tt := range tests {
		if got := tt.level.FeasibilityWeight(); got != tt.want {
			t.Errorf("FeasibilityWeight(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("extreme"); err == nil {
		t.Error("ParseLevel(\"extreme\") expected error, got nil")
	}
	got, err := ParseLevel("medium")
	if err != nil {
		t.Fatalf("ParseLevel(\"medium\") unexpected error: %v", err)
	}
	if got != Medium {
		t.Errorf("ParseLevel(\"medium\") = %v, want %v", got, Medium)
	}
}
