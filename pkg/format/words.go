package format

import (
	"math"
	"strings"
)

// wordsLimit caps NumberToWords at billions; larger magnitudes (and
// anything non-integer) spell out as nothing at all.
const wordsLimit = 999_999_999_999

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

var scales = []string{"", "Thousand", "Million", "Billion"}

// NumberToWords spells an integer out in English, e.g. 1024 becomes
// "One Thousand Twenty Four". It returns "" for non-integers and for
// magnitudes above 999,999,999,999.
func NumberToWords(n float64) string {
	if !IsInteger(n) || math.Abs(n) > wordsLimit {
		return ""
	}

	v := int64(math.Round(n))
	if v == 0 {
		return "Zero"
	}

	negative := v < 0
	if negative {
		v = -v
	}

	// Decompose into 3-digit chunks, least significant first.
	var chunks []int64
	for v > 0 {
		chunks = append(chunks, v%1000)
		v /= 1000
	}

	var parts []string
	for i := len(chunks) - 1; i >= 0; i-- {
		if chunks[i] == 0 {
			continue
		}
		part := chunkToWords(chunks[i])
		if scales[i] != "" {
			part += " " + scales[i]
		}
		parts = append(parts, part)
	}

	words := strings.Join(parts, " ")
	if negative {
		words = "Negative " + words
	}
	return words
}

func chunkToWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		t := tens[n/10]
		if n%10 != 0 {
			t += " " + ones[n%10]
		}
		parts = append(parts, t)
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
