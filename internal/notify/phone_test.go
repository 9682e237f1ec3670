package notify

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		cc   string
		want string
	}{
		{"09876543210", "+91", "+919876543210"},
		{"9876543210", "+91", "+919876543210"},
		{"+919876543210", "+91", "+919876543210"},
		{"  09876543210  ", "+91", "+919876543210"},
		{"9876543210", "", "+919876543210"},
		{"0811223344", "+62", "+62811223344"},
		{"", "+91", ""},
	}

	for _, tc := range cases {
		got := NormalizePhone(tc.in, tc.cc)
		if got != tc.want {
			t.Fatalf("NormalizePhone(%q, %q) = %q, want %q", tc.in, tc.cc, got, tc.want)
		}
	}
}
