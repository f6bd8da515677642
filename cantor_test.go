package cantor

import (
	"errors"
	"math"
	"testing"
)

// errorsIsDepthRange reports whether err wraps ErrDepthRange.
func errorsIsDepthRange(err error) bool {
	return errors.Is(err, ErrDepthRange)
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeLine, "line"},
		{ModeDust, "dust"},
		{Mode(99), "Mode(99)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{"line", "line", ModeLine, false},
		{"dust", "dust", ModeDust, false},
		{"empty", "", 0, true},
		{"capitalized", "Line", 0, true},
		{"junk", "triangle", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMode_MaxDepth(t *testing.T) {
	if got := ModeLine.MaxDepth(); got != MaxLineDepth {
		t.Errorf("ModeLine.MaxDepth() = %d, want %d", got, MaxLineDepth)
	}
	if got := ModeDust.MaxDepth(); got != MaxDustDepth {
		t.Errorf("ModeDust.MaxDepth() = %d, want %d", got, MaxDustDepth)
	}
}

func TestMode_Count(t *testing.T) {
	tests := []struct {
		mode  Mode
		depth int
		want  int
	}{
		{ModeLine, 0, 1},
		{ModeLine, 1, 2},
		{ModeLine, 10, 1024},
		{ModeDust, 0, 1},
		{ModeDust, 1, 4},
		{ModeDust, 5, 1024},
	}

	for _, tt := range tests {
		if got := tt.mode.Count(tt.depth); got != tt.want {
			t.Errorf("%v.Count(%d) = %d, want %d", tt.mode, tt.depth, got, tt.want)
		}
	}
}

func TestCellSize(t *testing.T) {
	tests := []struct {
		depth int
		want  float64
	}{
		{0, 1},
		{1, 1.0 / 3},
		{2, 1.0 / 9},
		{4, 1.0 / 81},
	}

	for _, tt := range tests {
		if got := CellSize(tt.depth); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("CellSize(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestGenerate_FinalLevelOnly(t *testing.T) {
	set, err := Generate(ModeLine, 3, false)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if set.Levels() != 1 {
		t.Fatalf("Levels() = %d, want 1", set.Levels())
	}
	if len(set.Intervals[0]) != 8 {
		t.Errorf("final level count = %d, want 8", len(set.Intervals[0]))
	}
	if set.Points != nil {
		t.Error("line-mode Set has Points populated")
	}
}

func TestGenerate_AllLevels(t *testing.T) {
	set, err := Generate(ModeDust, 3, true)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if set.Levels() != 4 {
		t.Fatalf("Levels() = %d, want 4", set.Levels())
	}
	for i, level := range set.Points {
		if len(level) != 1<<(2*i) {
			t.Errorf("level %d count = %d, want %d", i, len(level), 1<<(2*i))
		}
	}
	if set.Intervals != nil {
		t.Error("dust-mode Set has Intervals populated")
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		depth int
		want  error
	}{
		{"negative line", ModeLine, -1, ErrDepthRange},
		{"line over max", ModeLine, MaxLineDepth + 1, ErrDepthRange},
		{"dust over max", ModeDust, MaxDustDepth + 1, ErrDepthRange},
		{"unknown mode", Mode(7), 1, ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.mode, tt.depth, false); !errors.Is(err, tt.want) {
				t.Errorf("Generate(%v, %d) error = %v, want %v", tt.mode, tt.depth, err, tt.want)
			}
		})
	}
}
