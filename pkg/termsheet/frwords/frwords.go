// Package frwords converts integers to French cardinal words and formats
// amounts with thousands separators, following French orthography rules
// (soixante et onze, quatre-vingts, cent/mille invariant, etc.).
package frwords

import (
	"strconv"
	"strings"
)

var units = []string{
	"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
}

var teens = []string{
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var tens = []string{
	"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante",
}

// Convert renders n as French cardinal words. Negative values are prefixed
// with "moins ". Values at or above 10^12 compose with milliard as the
// largest scale word.
func Convert(n int64) string {
	if n == 0 {
		return "zéro"
	}
	if n < 0 {
		return "moins " + Convert(-n)
	}

	var parts []string

	if b := n / 1_000_000_000; b > 0 {
		switch {
		case b == 1:
			parts = append(parts, "un milliard")
		case b < 1000:
			parts = append(parts, convertHundreds(b)+" milliards")
		default:
			// counts past 999 recurse so milliard stays the largest scale
			parts = append(parts, Convert(b)+" milliards")
		}
		n %= 1_000_000_000
	}
	if m := n / 1_000_000; m > 0 {
		if m == 1 {
			parts = append(parts, "un million")
		} else {
			parts = append(parts, convertHundreds(m)+" millions")
		}
		n %= 1_000_000
	}
	if t := n / 1000; t > 0 {
		if t == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, convertHundreds(t)+" mille")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, convertHundreds(n))
	}

	return strings.Join(parts, " ")
}

// convertHundreds handles 1..999.
func convertHundreds(n int64) string {
	var parts []string

	if h := n / 100; h > 0 {
		if h == 1 {
			parts = append(parts, "cent")
		} else {
			parts = append(parts, units[h]+" cent")
		}
		n %= 100
	}

	if n == 0 {
		return strings.Join(parts, " ")
	}

	switch {
	case n < 10:
		parts = append(parts, units[n])
	case n < 20:
		parts = append(parts, teens[n-10])
	case n < 70:
		t, u := n/10, n%10
		switch {
		case u == 0:
			parts = append(parts, tens[t])
		case u == 1:
			parts = append(parts, tens[t]+" et un")
		default:
			parts = append(parts, tens[t]+"-"+units[u])
		}
	case n < 80:
		// 70..79 compose soixante with the teens; 71 takes "et".
		u := n - 70
		if u == 1 {
			parts = append(parts, "soixante et onze")
		} else {
			parts = append(parts, "soixante-"+teens[u])
		}
	case n == 80:
		parts = append(parts, "quatre-vingts")
	case n < 90:
		parts = append(parts, "quatre-vingt-"+units[n-80])
	default:
		// 90..99 compose quatre-vingt with the teens, never "et".
		parts = append(parts, "quatre-vingt-"+teens[n-90])
	}

	return strings.Join(parts, " ")
}

// ParseAmount parses a free-text amount, tolerating spaces, non-breaking
// spaces, dots and commas as separators.
func ParseAmount(s string) (int64, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ".", "", ",", "").Replace(s)
	return strconv.ParseInt(strings.TrimSpace(cleaned), 10, 64)
}

// FormatThousands reformats a numeric string with "." as the thousands
// separator ("1500000" becomes "1.500.000"). Inputs that do not parse as
// an integer are returned unchanged.
func FormatThousands(s string) string {
	n, err := ParseAmount(s)
	if err != nil {
		return s
	}
	return GroupDigits(n)
}

// GroupDigits renders n with "." between thousands groups.
func GroupDigits(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := strings.Join(groups, ".")
	if neg {
		out = "-" + out
	}
	return out
}
