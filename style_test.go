package glyphstyle

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStyleParameters(t *testing.T) {
	tests := []struct {
		style     Style
		name      string
		tolerance float64
		width     float64
	}{
		{Runic, "runic", 8, 3},
		{Flowing, "flowing", 5, 3},
		{Geometric, "geometric", 15, 3},
		{Organic, "organic", 4, 3},
		{Blocky, "blocky", 20, 6},
		{Minimal, "minimal", 25, 2},
	}

	if len(Styles()) != len(tests) {
		t.Fatalf("Styles() has %d entries, want %d", len(Styles()), len(tests))
	}
	for i, tt := range tests {
		if Styles()[i] != tt.style {
			t.Errorf("Styles()[%d] = %v, want %v", i, Styles()[i], tt.style)
		}
		if got := tt.style.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.style.Tolerance(); got != tt.tolerance {
			t.Errorf("%s: Tolerance() = %v, want %v", tt.name, got, tt.tolerance)
		}
		if got := tt.style.StrokeWidth(); got != tt.width {
			t.Errorf("%s: StrokeWidth() = %v, want %v", tt.name, got, tt.width)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"runic", Runic, false},
		{"Flowing", Flowing, false},
		{"  GEOMETRIC\n", Geometric, false},
		{"oRgAnIc", Organic, false},
		{"blocky", Blocky, false},
		{"MINIMAL", Minimal, false},
		{"", 0, true},
		{"gothic", 0, true},
		{"runic!", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStyle) {
					t.Errorf("ParseStyle(%q) err = %v, want ErrUnknownStyle", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestStyleInvalid(t *testing.T) {
	s := Style(9)
	if s.Valid() {
		t.Error("Style(9).Valid() = true")
	}
	if got := s.String(); got != "Style(9)" {
		t.Errorf("String() = %q, want \"Style(9)\"", got)
	}
	if _, err := s.MarshalText(); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("MarshalText err = %v, want ErrUnknownStyle", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("StrokeWidth on an invalid style did not panic")
		}
	}()
	_ = s.StrokeWidth()
}

func TestStyleJSON(t *testing.T) {
	type request struct {
		Style Style `json:"style"`
	}

	b, err := json.Marshal(request{Style: Blocky})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `{"style":"blocky"}` {
		t.Errorf("Marshal = %s", b)
	}

	var r request
	if err := json.Unmarshal([]byte(`{"style":"Runic"}`), &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if r.Style != Runic {
		t.Errorf("Unmarshal style = %v, want runic", r.Style)
	}
	if err := json.Unmarshal([]byte(`{"style":"baroque"}`), &r); err == nil {
		t.Error("Unmarshal accepted an unknown style")
	}
}
