package param

import "testing"

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseID(%q) = %v, %v", id.String(), got, err)
		}
	}

	if got, err := ParseID("  Release "); err != nil || got != Release {
		t.Fatalf("ParseID with whitespace = %v, %v", got, err)
	}
	if _, err := ParseID("depth"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestDescribe(t *testing.T) {
	info, ok := Describe(Attack)
	if !ok {
		t.Fatal("Describe(Attack) not found")
	}
	if info.Unit != "ms" || info.Min != 1 || info.Max != 500 {
		t.Fatalf("unexpected attack info: %+v", info)
	}

	if _, ok := Describe(Count); ok {
		t.Fatal("Describe(Count) should fail")
	}
	if Count.String() != "param(5)" {
		t.Fatalf("Count.String() = %q", Count.String())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		id   ID
		v    float64
		want string
	}{
		{Mix, 0.25, "25%"},
		{Gain, 1.5, "1.50x"},
		{Attack, 10, "10.0 ms"},
		{Release, 1500, "1.50 s"},
		{Mode, 0, "Instant"},
		{Mode, 1, "Smoothed"},
		{Mode, 7, "Sidechain"},
	}

	for _, tt := range tests {
		if got := Format(tt.id, tt.v); got != tt.want {
			t.Fatalf("Format(%s, %v) = %q, want %q", tt.id, tt.v, got, tt.want)
		}
	}
}
