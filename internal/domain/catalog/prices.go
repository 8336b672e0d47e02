package catalog

import "strings"

// SizeAll is the wildcard size of a price entry: the rate applies to both
// 20ft and 40ft containers.
const SizeAll = "all"

// PriceEntry is one negotiated rate for a destination. Several entries may
// share a location — customers have different negotiated prices for the same
// lane, so ambiguity is intentional.
type PriceEntry struct {
	Location string `json:"location"`
	Size     string `json:"size"` // "20", "40" or "all"
	Price    int64  `json:"price"`
}

// priceDatabase: master rates in whole Rupiah, maintained by hand together
// with the sales team. Keep the list sorted by location.
var priceDatabase = []PriceEntry{
	{"ACS", SizeAll, 1_200_000},
	{"ANCOL", SizeAll, 1_400_000},
	{"BALARAJA", SizeAll, 2_200_000},
	{"BANDUNG", SizeAll, 3_700_000},
	{"BANDUNG", SizeAll, 3_800_000},
	{"BANDUNG", SizeAll, 3_900_000},
	{"BATU CEPER", SizeAll, 1_750_000},
	{"BEKASI", SizeAll, 1_600_000},
	{"BEKASI", SizeAll, 1_750_000},
	{"BINTARO", SizeAll, 2_000_000},
	{"BITUNG", SizeAll, 2_000_000},
	{"CAKUNG", SizeAll, 1_200_000},
	{"CAKUNG", SizeAll, 1_400_000},
	{"CENGKARENG", SizeAll, 1_850_000},
	{"CIKANDE", SizeAll, 2_300_000},
	{"CIKARANG", SizeAll, 1_850_000},
	{"CIKARANG", SizeAll, 1_950_000},
	{"CIKUPA", SizeAll, 2_100_000},
	{"CILEDUK", SizeAll, 2_000_000},
	{"CIPONDOH", SizeAll, 2_000_000},
	{"CIREBON", SizeAll, 5_000_000},
	{"CIRUAS", SizeAll, 2_550_000},
	{"DAAN MOGOT", SizeAll, 1_800_000},
	{"DAAN MOGOT", SizeAll, 2_000_000},
	{"DADAP", SizeAll, 1_850_000},
	{"DEMAK", SizeAll, 8_500_000},
	{"HALAL", SizeAll, 400_000},
	{"HALAL", SizeAll, 450_000},
	{"HALAL", SizeAll, 500_000},
	{"HARMONI", SizeAll, 1_750_000},
	{"JATAKE", SizeAll, 2_000_000},
	{"JATIUWUNG", SizeAll, 2_000_000},
	{"KALIDERES", SizeAll, 2_000_000},
	{"KALIMALANG", SizeAll, 1_700_000},
	{"KAMAL MUARA", SizeAll, 1_750_000},
	{"KARANG TENGAH", SizeAll, 2_000_000},
	{"KARAWACI", SizeAll, 2_100_000},
	{"KARAWANG", SizeAll, 1_900_000},
	{"KARAWANG", SizeAll, 2_300_000},
	{"KOSAMBI", SizeAll, 1_850_000},
	{"LEGOK", SizeAll, 2_100_000},
	{"MALANG", SizeAll, 15_000_000},
	{"MALANG", SizeAll, 18_000_000},
	{"MANGGA DUA", SizeAll, 1_650_000},
	{"MUARA BARU", SizeAll, 1_750_000},
	{"NEGLASARI", SizeAll, 2_000_000},
	{"PADALARANG", SizeAll, 3_700_000},
	{"PAJAJARAN", SizeAll, 2_000_000},
	{"PAKUAJI", SizeAll, 2_000_000},
	{"PAKUHAJI", SizeAll, 1_900_000},
	{"PAMULANG", SizeAll, 2_000_000},
	{"PARUNG PANJANG", SizeAll, 2_100_000},
	{"PASAR KAMIS", SizeAll, 2_100_000},
	{"PENJARINGAN", SizeAll, 1_750_000},
	{"PESING", SizeAll, 1_700_000},
	{"PLUIT", SizeAll, 1_750_000},
	{"PULOGADUNG", SizeAll, 1_500_000},
	{"PULOGEBANG", SizeAll, 1_500_000},
	{"SALEMBARAN", SizeAll, 1_850_000},
	{"SEMARANG", SizeAll, 8_000_000},
	{"SEMARANG", SizeAll, 9_000_000},
	{"SEPATAN", SizeAll, 2_000_000},
	{"SUNTER", SizeAll, 700_000},
	{"SUNTER", SizeAll, 1_200_000},
	{"SUNTER", SizeAll, 1_400_000},
	{"SURABAYA", SizeAll, 14_000_000},
	{"SURABAYA", SizeAll, 19_000_000},
	{"TAMBUN", SizeAll, 1_750_000},
	{"TEGAL ALUR", SizeAll, 1_750_000},
	{"TELUK NAGA", SizeAll, 2_000_000},
	{"TIGARAKSA", SizeAll, 2_100_000},
	{"YOGYAKARTA", SizeAll, 8_500_000},
	{"YOGYAKARTA", SizeAll, 11_000_000},
}

// PriceEntries returns the full price list in catalog order.
func PriceEntries() []PriceEntry {
	out := make([]PriceEntry, len(priceDatabase))
	copy(out, priceDatabase)
	return out
}

// Destinations returns the distinct destinations in catalog order.
func Destinations() []string {
	seen := make(map[string]struct{}, len(priceDatabase))
	var out []string
	for _, p := range priceDatabase {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}
	return out
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// LookupPrice finds a single rate for a destination. Matching is
// case-insensitive and whitespace-trimmed. When size is given, an entry with
// that size or the "all" wildcard wins; otherwise any wildcard entry for the
// location; otherwise the first entry for the location regardless of size.
// ok=false means the destination is not in the catalog.
func LookupPrice(location, size string) (int64, bool) {
	loc := normalizeLocation(location)
	if loc == "" {
		return 0, false
	}
	if size != "" {
		for _, p := range priceDatabase {
			if normalizeLocation(p.Location) == loc && (p.Size == size || p.Size == SizeAll) {
				return p.Price, true
			}
		}
	}
	for _, p := range priceDatabase {
		if normalizeLocation(p.Location) == loc && p.Size == SizeAll {
			return p.Price, true
		}
	}
	for _, p := range priceDatabase {
		if normalizeLocation(p.Location) == loc {
			return p.Price, true
		}
	}
	return 0, false
}

// LookupPrices collects every rate for a destination (filtered by
// size-or-wildcard when size is given), de-duplicated by value in catalog
// order. The caller auto-fills when exactly one price comes back, forces a
// manual choice for several, and clears the field for none.
func LookupPrices(location, size string) []int64 {
	loc := normalizeLocation(location)
	if loc == "" {
		return nil
	}
	seen := make(map[int64]struct{})
	var out []int64
	for _, p := range priceDatabase {
		if normalizeLocation(p.Location) != loc {
			continue
		}
		if size != "" && p.Size != size && p.Size != SizeAll {
			continue
		}
		if _, dup := seen[p.Price]; dup {
			continue
		}
		seen[p.Price] = struct{}{}
		out = append(out, p.Price)
	}
	return out
}
