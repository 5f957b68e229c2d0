package common

import "strings"

// NormalizePhone canonicalizes a country-code selection and a free-text
// national number. All non-digit characters are stripped from the national
// number; the canonical form is "{countryCode}-{nationalDigits}", just the
// national digits when no country code is set, or "" when both are empty.
func NormalizePhone(countryCode, national string) string {
	cc := digitsOnly(countryCode)
	digits := digitsOnly(national)
	switch {
	case cc == "" && digits == "":
		return ""
	case cc == "":
		return digits
	default:
		return cc + "-" + digits
	}
}

// NormalizePhoneValue re-normalizes an already-combined value. Applying it to
// its own output yields the same value.
func NormalizePhoneValue(v string) string {
	if cc, national, ok := strings.Cut(v, "-"); ok {
		return NormalizePhone(cc, national)
	}
	return NormalizePhone("", v)
}

// FormatPhoneDisplay groups national digits into 4-3-3-remainder chunks for
// on-screen editing. It is display-only: the canonical value is re-derived
// from the raw input after each edit, never from this output's punctuation.
func FormatPhoneDisplay(national string) string {
	digits := digitsOnly(national)
	if digits == "" {
		return ""
	}
	groups := []int{4, 3, 3}
	var parts []string
	for _, n := range groups {
		if len(digits) == 0 {
			break
		}
		if len(digits) < n {
			n = len(digits)
		}
		parts = append(parts, digits[:n])
		digits = digits[n:]
	}
	if len(digits) > 0 {
		parts = append(parts, digits)
	}
	return strings.Join(parts, " ")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
