package numberutils

import "testing"

func TestToInt64WithError(t *testing.T) {
	valid := map[string]int64{"1": 1, "42": 42, "-3": -3, " 7 ": 7, "9223372036854775807": 9223372036854775807}
	for input, want := range valid {
		got, err := ToInt64WithError(input)
		if err != nil {
			t.Errorf("ToInt64WithError(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ToInt64WithError(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "abc", "1.5", "1e3", "9223372036854775808"} {
		if _, err := ToInt64WithError(input); err == nil {
			t.Errorf("ToInt64WithError(%q) should fail", input)
		}
	}
}
