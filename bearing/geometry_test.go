package bearing

import (
	"math"
	"testing"
)

func TestNewGeometryValidation(t *testing.T) {
	cases := []struct {
		name     string
		elements int
		ball     float64
		pitch    float64
		angle    float64
	}{
		{"zero elements", 0, 7.92, 34.55, 0},
		{"negative ball diameter", 8, -1, 34.55, 0},
		{"zero pitch diameter", 8, 7.92, 0, 0},
		{"negative contact angle", 8, 7.92, 34.55, -1},
		{"contact angle above 90", 8, 7.92, 34.55, 91},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGeometry(tc.elements, tc.ball, tc.pitch, tc.angle); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if _, err := NewGeometry(8, 7.92, 34.55, 0); err != nil {
		t.Fatalf("valid geometry rejected: %v", err)
	}
}

func TestCharacteristicFrequencyBPFO(t *testing.T) {
	geo, err := NewGeometry(8, 7.92, 34.55, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := geo.CharacteristicFrequency(FaultOuterRace, 30)
	want := 4.0 * 30.0 * (1 - 7.92/34.55)

	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("BPFO mismatch: got %.15f want %.15f", got, want)
	}
}

func TestCharacteristicFrequencyFormulas(t *testing.T) {
	geo, err := NewGeometry(9, 8.4, 40, 15)
	if err != nil {
		t.Fatal(err)
	}

	speed := 25.0
	ratio := 8.4 / 40 * math.Cos(15*math.Pi/180)

	cases := []struct {
		fault FaultType
		want  float64
	}{
		{FaultOuterRace, 4.5 * speed * (1 - ratio)},
		{FaultInnerRace, 4.5 * speed * (1 + ratio)},
		{FaultBall, 40 / (2 * 8.4) * speed * (1 - ratio*ratio)},
		{FaultCage, 0.5 * speed * (1 - ratio)},
	}

	for _, tc := range cases {
		got := geo.CharacteristicFrequency(tc.fault, speed)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("%s: got %.15f want %.15f", tc.fault, got, tc.want)
		}
	}
}

func TestCharacteristicFrequencyPositive(t *testing.T) {
	geo, err := NewGeometry(8, 7.92, 34.55, 20)
	if err != nil {
		t.Fatal(err)
	}

	for _, ft := range FaultTypes() {
		if f := geo.CharacteristicFrequency(ft, 30); f <= 0 {
			t.Fatalf("%s: fundamental must be positive, got %f", ft, f)
		}
	}
}

func TestFaultTypeCodes(t *testing.T) {
	codes := map[FaultType]string{
		FaultOuterRace: "O",
		FaultInnerRace: "I",
		FaultBall:      "B",
		FaultCage:      "C",
	}

	for ft, want := range codes {
		if got := ft.Code(); got != want {
			t.Fatalf("%s: code %q, want %q", ft, got, want)
		}
	}

	if FaultOuterRace.Modulated() || FaultCage.Modulated() {
		t.Fatal("outer-race and cage must not be modulated")
	}

	if !FaultInnerRace.Modulated() || !FaultBall.Modulated() {
		t.Fatal("inner-race and ball must be modulated")
	}
}
