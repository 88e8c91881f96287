package slug

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "jane-doe"},
		{"C++ & Java!!", "c-and-java"},
		{"  Hitesh__Choudhary  ", "hitesh-choudhary"},
		{"react@19", "reactand19"},
		{"Web-Development", "web-development"},
		{"---", ""},
		{"", ""},
	}

	for _, c := range cases {
		got := Normalize(c.in)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Jane Doe", "C++ & Java!!", "already-a-slug", "MiXeD CaSe 42"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeNeverEmitsStrayHyphens(t *testing.T) {
	inputs := []string{"--a--b--", "!leading", "trailing!", "a!!!b", "@@@"}
	for _, in := range inputs {
		got := Normalize(in)
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Normalize(%q) = %q has a leading or trailing hyphen", in, got)
		}
		for i := 1; i < len(got); i++ {
			if got[i] == '-' && got[i-1] == '-' {
				t.Errorf("Normalize(%q) = %q has consecutive hyphens", in, got)
			}
		}
	}
}
