package frwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{9, "neuf"},
		{10, "dix"},
		{16, "seize"},
		{17, "dix-sept"},
		{20, "vingt"},
		{21, "vingt et un"},
		{22, "vingt-deux"},
		{31, "trente et un"},
		{60, "soixante"},
		{61, "soixante et un"},
		{70, "soixante-dix"},
		{71, "soixante et onze"},
		{72, "soixante-douze"},
		{79, "soixante-dix-neuf"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{90, "quatre-vingt-dix"},
		{91, "quatre-vingt-onze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "cent"},
		{101, "cent un"},
		{180, "cent quatre-vingts"},
		{200, "deux cent"},
		{271, "deux cent soixante et onze"},
		{999, "neuf cent quatre-vingt-dix-neuf"},
		{1000, "mille"},
		{1001, "mille un"},
		{2000, "deux mille"},
		{1984, "mille neuf cent quatre-vingt-quatre"},
		{80000, "quatre-vingts mille"},
		{1000000, "un million"},
		{1500000, "un million cinq cent mille"},
		{2000000, "deux millions"},
		{1000000000, "un milliard"},
		{3000000021, "trois milliards vingt et un"},
		// milliard stays the largest scale word past 10^12
		{1000000000000, "mille milliards"},
		{2500000000000, "deux mille cinq cent milliards"},
		{-42, "moins quarante-deux"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Convert(tc.n), "Convert(%d)", tc.n)
	}
}

func TestParseAmount(t *testing.T) {
	for in, want := range map[string]int64{
		"1500000":    1500000,
		"1.500.000":  1500000,
		"1 500 000":  1500000,
		"1,500,000":  1500000,
		" 250000 ":   250000,
		"1 000": 1000,
	} {
		got, err := ParseAmount(in)
		require.NoError(t, err, "ParseAmount(%q)", in)
		assert.Equal(t, want, got, "ParseAmount(%q)", in)
	}

	_, err := ParseAmount("environ 1000")
	assert.Error(t, err)
}

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1500000", "1.500.000"},
		{"1 500 000", "1.500.000"},
		{"250000", "250.000"},
		{"999", "999"},
		{"1000", "1.000"},
		{"0", "0"},
		{"-1234567", "-1.234.567"},
		// pass-through when not numeric
		{"n/a", "n/a"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatThousands(tc.in), "FormatThousands(%q)", tc.in)
	}
}
