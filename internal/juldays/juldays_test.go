package juldays

import (
	"testing"
	"time"
)

func TestFromTimeRoundTrip(t *testing.T) {
	want := time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC)
	jd := FromTime(want)
	got := ToUTC(jd)
	// A float64 Julian Day near 2.46e6 resolves only to tens of
	// microseconds, so the round trip is checked to the millisecond.
	if d := got.Sub(want); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip = %v, want %v (within 1ms)", got, want)
	}
}

func TestAddAndSub(t *testing.T) {
	base := JulDaysUT(2460000.0)
	advanced := base.Add(FractionalDays(1.5))
	if diff := advanced.Sub(base); diff != FractionalDays(1.5) {
		t.Errorf("Sub() = %v, want 1.5", diff)
	}
}

func TestAddHours(t *testing.T) {
	base := JulDaysUT(2460000.0)
	got := base.AddHours(FractionalHours(24))
	want := base.Add(FractionalDays(1))
	if !got.Equal(want) {
		t.Errorf("AddHours(24) = %v, want %v", got, want)
	}
}

func TestEqualBeforeAfter(t *testing.T) {
	a := JulDaysUT(2460000.0)
	b := JulDaysUT(2460000.0 + 1e-7)
	c := JulDaysUT(2460000.5)

	if !a.Equal(b) {
		t.Errorf("Equal() on near-identical values = false, want true")
	}
	if a.Before(b) || a.After(b) {
		t.Errorf("Before/After on equal-within-epsilon values should both be false")
	}
	if !a.Before(c) {
		t.Errorf("a.Before(c) = false, want true")
	}
	if !c.After(a) {
		t.Errorf("c.After(a) = false, want true")
	}
}

func TestCivilDateOf(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	// 2024-03-15 02:30 UTC is 2024-03-14 22:30 in New York.
	jd := FromTime(time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC))
	got := CivilDateOf(jd, loc)
	want := CivilDate{Year: 2024, Month: time.March, Day: 14}
	if got != want {
		t.Errorf("CivilDateOf() = %v, want %v", got, want)
	}
}

func TestCivilDateBeforeAndAddDays(t *testing.T) {
	a := CivilDate{Year: 2024, Month: time.December, Day: 31}
	b := a.AddDays(1)
	want := CivilDate{Year: 2025, Month: time.January, Day: 1}
	if b != want {
		t.Errorf("AddDays(1) = %v, want %v", b, want)
	}
	if !a.Before(b) {
		t.Errorf("a.Before(b) = false, want true")
	}
	if b.Before(a) {
		t.Errorf("b.Before(a) = true, want false")
	}
}

func TestCivilDateStringAndParse(t *testing.T) {
	c := CivilDate{Year: 2024, Month: time.July, Day: 4}
	s := c.String()
	if s != "2024-07-04" {
		t.Errorf("String() = %q, want %q", s, "2024-07-04")
	}
	parsed, err := ParseCivilDate(s)
	if err != nil {
		t.Fatalf("ParseCivilDate(%q) error = %v", s, err)
	}
	if parsed != c {
		t.Errorf("ParseCivilDate(%q) = %v, want %v", s, parsed, c)
	}
}

func TestParseCivilDateInvalid(t *testing.T) {
	if _, err := ParseCivilDate("not-a-date"); err == nil {
		t.Error("ParseCivilDate() error = nil, want non-nil")
	}
}

func TestMidnightUT(t *testing.T) {
	c := CivilDate{Year: 2024, Month: time.June, Day: 1}
	// At longitude 0 the adjustment is zero: MidnightUT should equal the
	// plain UTC midnight instant.
	got := c.MidnightUT(0)
	want := FromTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if !got.Equal(want) {
		t.Errorf("MidnightUT(0) = %v, want %v", got, want)
	}

	// At +180 longitude, astronomical midnight is half a day earlier in UT.
	east := c.MidnightUT(180)
	diff := float64(want.Sub(east)) - 0.5
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-9 {
		t.Errorf("MidnightUT(180) offset = %v, want 0.5", want.Sub(east))
	}
}
