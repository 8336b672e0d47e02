package terbilang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tml-logistik/invoice-api/pkg/terbilang"
)

func TestWords_KnownAmounts(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "nol"},
		{1, "satu"},
		{9, "sembilan"},
		{10, "sepuluh"},
		{11, "sebelas"},
		{12, "dua belas"},
		{19, "sembilan belas"},
		{20, "dua puluh"},
		{21, "dua puluh satu"},
		{99, "sembilan puluh sembilan"},
		{100, "seratus"},
		{101, "seratus satu"},
		{111, "seratus sebelas"},
		{199, "seratus sembilan puluh sembilan"},
		{200, "dua ratus"},
		{999, "sembilan ratus sembilan puluh sembilan"},
		{1000, "seribu"},
		{1001, "seribu satu"},
		{1999, "seribu sembilan ratus sembilan puluh sembilan"},
		{2000, "dua ribu"},
		{150_000, "seratus lima puluh ribu"},
		{1_000_000, "satu juta"},
		{7_200_000, "tujuh juta dua ratus ribu"},
		{10_010_000, "sepuluh juta sepuluh ribu"},
		{1_000_000_000, "satu miliar"},
		{999_999_999_999, "sembilan ratus sembilan puluh sembilan miliar sembilan ratus sembilan puluh sembilan juta sembilan ratus sembilan puluh sembilan ribu sembilan ratus sembilan puluh sembilan"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, terbilang.Words(c.n), "Words(%d)", c.n)
	}
}

func TestWords_Negative(t *testing.T) {
	assert.Equal(t, "minus lima ratus ribu", terbilang.Words(-500_000))
}

// Above the miliar ceiling the converter prints the raw digits instead of
// guessing at "triliun" phrasing.
func TestWords_BeyondCeilingFallsBackToDigits(t *testing.T) {
	assert.Equal(t, "1000000000000", terbilang.Words(1_000_000_000_000))
}

func TestWords_Deterministic(t *testing.T) {
	for _, n := range []int64{0, 11, 12, 100, 1001, 5_100_000, 123_456_789} {
		assert.Equal(t, terbilang.Words(n), terbilang.Words(n), "Words(%d) must be stable", n)
	}
}

func TestRupiah(t *testing.T) {
	assert.Equal(t, "nol rupiah", terbilang.Rupiah(0))
	assert.Equal(t, "satu juta rupiah", terbilang.Rupiah(1_000_000))
	assert.Equal(t, "tujuh juta dua ratus ribu rupiah", terbilang.Rupiah(7_200_000))
}

func TestRupiahCapitalized(t *testing.T) {
	assert.Equal(t, "Tujuh juta dua ratus ribu rupiah", terbilang.RupiahCapitalized(7_200_000))
	assert.Equal(t, "Nol rupiah", terbilang.RupiahCapitalized(0))
}
