// Package terbilang converts monetary amounts into Indonesian words.
// Example: 10010000 -> "sepuluh juta sepuluh ribu rupiah".
package terbilang

import (
	"strconv"
	"unicode"
)

// satuan covers 0..11; Indonesian special-cases "sepuluh" and "sebelas".
var satuan = []string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

const maxSupported = 1_000_000_000_000 // above this we give up and print digits

// Words converts n to lower-case Indonesian words, no currency suffix.
// Negative values are prefixed with "minus". Amounts of one trillion or
// more fall back to the raw digit string.
func Words(n int64) string {
	if n < 0 {
		return "minus " + Words(-n)
	}
	if n == 0 {
		return "nol"
	}
	return convert(n)
}

func convert(n int64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return satuan[n-10] + " belas"
	case n < 100:
		return withRemainder(satuan[n/10]+" puluh", n%10)
	case n < 200:
		return withRemainder("seratus", n%100)
	case n < 1000:
		return withRemainder(satuan[n/100]+" ratus", n%100)
	case n < 2000:
		return withRemainder("seribu", n%1000)
	case n < 1_000_000:
		return withRemainder(convert(n/1000)+" ribu", n%1000)
	case n < 1_000_000_000:
		return withRemainder(convert(n/1_000_000)+" juta", n%1_000_000)
	case n < maxSupported:
		return withRemainder(convert(n/1_000_000_000)+" miliar", n%1_000_000_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

func withRemainder(head string, rem int64) string {
	if rem == 0 {
		return head
	}
	return head + " " + convert(rem)
}

// Rupiah converts n to words with the " rupiah" suffix.
// Example: Rupiah(150000) -> "seratus lima puluh ribu rupiah".
func Rupiah(n int64) string {
	if n == 0 {
		return "nol rupiah"
	}
	return Words(n) + " rupiah"
}

// RupiahCapitalized is Rupiah with only the first letter upper-cased,
// as printed on the invoice footer.
func RupiahCapitalized(n int64) string {
	s := Rupiah(n)
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
