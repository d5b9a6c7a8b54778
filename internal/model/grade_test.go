package model

import (
	"encoding/json"
	"testing"
)

func TestGradeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade Grade
		want  string
	}{
		{GradeExcellent, "EXCELLENT"},
		{GradeGood, "GOOD"},
		{GradeNeedsImprovement, "NEEDS IMPROVEMENT"},
		{GradePoor, "POOR"},
		{Grade(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.grade.String(); got != tt.want {
			t.Errorf("Grade(%d).String() = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestGradeJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals to the display string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(GradeNeedsImprovement)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `"NEEDS IMPROVEMENT"` {
			t.Errorf("marshal = %s, want \"NEEDS IMPROVEMENT\"", data)
		}
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		t.Parallel()

		for _, g := range []Grade{GradePoor, GradeNeedsImprovement, GradeGood, GradeExcellent} {
			data, err := json.Marshal(g)
			if err != nil {
				t.Fatal(err)
			}
			var back Grade
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatal(err)
			}
			if back != g {
				t.Errorf("round-trip of %v produced %v", g, back)
			}
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		t.Parallel()

		var g Grade
		if err := json.Unmarshal([]byte(`"SPECTACULAR"`), &g); err == nil {
			t.Error("unmarshal of unknown grade succeeded, want error")
		}
	})
}

func TestGradeForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  Grade
	}{
		{"top of the scale", 100, GradeExcellent},
		{"excellent boundary is inclusive", 85, GradeExcellent},
		{"just below excellent", 84.99, GradeGood},
		{"good boundary is inclusive", 70, GradeGood},
		{"needs improvement boundary is inclusive", 40, GradeNeedsImprovement},
		{"below every band", 10, GradePoor},
		{"zero", 0, GradePoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := GradeForScore(tt.score, 85, 70, 40); got != tt.want {
				t.Errorf("GradeForScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
