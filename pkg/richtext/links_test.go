package richtext

import "testing"

func TestSanitizeHref(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"www.example.com/path?q=1", "https://www.example.com/path?q=1"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"ftp://example.com", "https://ftp://example.com"},
		{"", "https://"},
	}

	for _, tc := range cases {
		if got := SanitizeHref(tc.in); got != tc.want {
			t.Errorf("SanitizeHref(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeHrefAppliedOnce(t *testing.T) {
	once := SanitizeHref("example.com")
	if twice := SanitizeHref(once); twice != once {
		t.Errorf("Re-sanitizing changed %q to %q", once, twice)
	}
}
