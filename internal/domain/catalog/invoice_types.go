package catalog

// FeeDiscount is the flat per-row discount applied to the designated price
// column of FEE types, in whole Rupiah.
const FeeDiscount int64 = 150_000

// Bank accounts per group.
var bankAccounts = map[BankGroup]BankAccount{
	GrupA: {BankName: "Bank BCA", AccountNumber: "6910380271", AccountHolder: "HERI PURWANTO"},
	GrupB: {BankName: "Bank BCA", AccountNumber: "6910415601", AccountHolder: "RISTUMMIYATI"},
}

// Base columns shared by every invoice type.
var baseColumns = []ColumnDef{
	{Key: "no", Label: "NO", Type: ColumnNumber, Width: "50px", Required: true},
	{Key: "tanggal", Label: "TANGGAL", Type: ColumnDate, Width: "130px", Required: true},
	{Key: "consigne", Label: "CONSIGNE", Type: ColumnText, Width: "150px", Required: true},
	{Key: "noMobil", Label: "NO. MOBIL", Type: ColumnText, Width: "120px", Required: true},
	{Key: "noContainer", Label: "NO. CONTAINER", Type: ColumnText, Width: "140px"},
	{Key: "status", Label: "STATUS", Type: ColumnSelect, Options: ContainerStatuses, Width: "90px"},
	{Key: "size", Label: "SIZE", Type: ColumnSelect, Options: ContainerSizes, Width: "65px"},
}

// Column fragments composed into the per-type schemas.
var (
	colPickup    = ColumnDef{Key: "pickup", Label: "PICK UP", Type: ColumnSelect, Options: PickupLocations, Width: "110px"}
	colDepo      = ColumnDef{Key: "depo", Label: "DEPO", Type: ColumnSelect, Options: Depos, Width: "110px"}
	colSmartDepo = ColumnDef{Key: "smartDepo", Label: "SMART/DEPO", Type: ColumnText, Width: "120px"}
	colEmty      = ColumnDef{Key: "emty", Label: "EMTY", Type: ColumnText, Width: "100px"}
	colTujuan    = ColumnDef{Key: "tujuan", Label: "TUJUAN", Type: ColumnText, Width: "130px", Required: true}
	colHarga     = ColumnDef{Key: "harga", Label: "HARGA", Type: ColumnCurrency, Width: "140px", Required: true}
	colGatePass  = ColumnDef{Key: "gatePass", Label: "GATE PASS", Type: ColumnCurrency, Width: "120px"}
	colLiftOff   = ColumnDef{Key: "liftOff", Label: "LIFT OFF", Type: ColumnCurrency, Width: "120px"}
	colBongkar   = ColumnDef{Key: "bongkar", Label: "BONGKAR", Type: ColumnCurrency, Width: "120px"}
	colPerbaikan = ColumnDef{Key: "perbaikan", Label: "PERBAIKAN", Type: ColumnCurrency, Width: "120px"}
	colParkir    = ColumnDef{Key: "parkir", Label: "PARKIR", Type: ColumnCurrency, Width: "120px"}
	colDemurrage = ColumnDef{Key: "demurrage", Label: "DEMURRAGE", Type: ColumnCurrency, Width: "120px"}
	colPMP       = ColumnDef{Key: "pmp", Label: "PMP", Type: ColumnCurrency, Width: "120px"}
	colRepair    = ColumnDef{Key: "repair", Label: "REPAIR", Type: ColumnCurrency, Width: "120px"}
	colNgemail   = ColumnDef{Key: "ngemail", Label: "NGEMAIL", Type: ColumnCurrency, Width: "120px"}
	colRSM       = ColumnDef{Key: "rsm", Label: "RSM", Type: ColumnCurrency, Width: "120px"}
)

// columns builds a schema from the base columns plus extras, copying so no
// type aliases another's backing array.
func columns(extra ...ColumnDef) []ColumnDef {
	out := make([]ColumnDef, 0, len(baseColumns)+len(extra))
	out = append(out, baseColumns...)
	return append(out, extra...)
}

func standardType(id int, name, customer string, group BankGroup, cols ...ColumnDef) InvoiceType {
	return InvoiceType{
		ID: id, Name: name, CustomerName: customer, BankGroup: group,
		Columns: columns(cols...),
	}
}

func feeType(id int, name, customer string, group BankGroup, cols ...ColumnDef) InvoiceType {
	return InvoiceType{
		ID: id, Name: name, CustomerName: customer, BankGroup: group,
		IsFee: true, DiscountKey: "harga", DiscountAmount: FeeDiscount,
		Columns: columns(cols...),
	}
}

// invoiceTypes: selection is by invoice type, not by customer. A customer can
// appear under several types (e.g. Bpk Dwi has OB, Import and FEE variants).
var invoiceTypes = []InvoiceType{
	// ── Grup A — Heri Purwanto ──
	standardType(1, "OB - PT ISL", "PT ISL", GrupA,
		colPickup, colTujuan, colHarga, colGatePass),
	standardType(2, "Imp/Exp - PT ISL", "PT ISL", GrupA,
		colDepo, colTujuan, colHarga, colLiftOff, colBongkar),
	standardType(3, "OB - Bpk Dwi", "Bpk Dwi", GrupA,
		colPickup, colTujuan, colHarga),
	standardType(4, "Import - Bpk Dwi", "Bpk Dwi", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colPerbaikan, colParkir, colBongkar, colDemurrage),
	feeType(5, "Import FEE - Bpk Dwi", "Bpk Dwi", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colPerbaikan, colParkir, colBongkar, colDemurrage),
	standardType(6, "Import - Bpk William", "Bpk William", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colPMP, colBongkar),
	feeType(7, "Import FEE - Bpk William", "Bpk William", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colPMP, colBongkar),
	standardType(8, "Pribadi Import - Bpk Dwi", "Bpk Dwi", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRepair, colParkir, colBongkar),
	feeType(9, "Pribadi Import FEE - Bpk Dwi", "Bpk Dwi", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRepair, colParkir, colBongkar),
	standardType(10, "Transport - Bpk Ryan", "Bpk Ryan", GrupA,
		colEmty, colTujuan, colHarga, colLiftOff, colParkir, colNgemail, colBongkar),
	standardType(11, "Transport - PT CSL", "PT CSL", GrupA,
		colPickup, colSmartDepo, colTujuan, colHarga, colLiftOff, colRepair, colBongkar),
	standardType(12, "Transport - PT BISMA LOGISTIK", "PT BISMA LOGISTIK", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRepair),
	standardType(13, "Transport - PT LANJAKAR SUKSES MAKMUR", "PT LANJAKAR SUKSES MAKMUR - Mba Amel", GrupA,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colBongkar, colParkir),

	// ── Grup B — Ristummiyati ──
	standardType(14, "Transport - PT LANCAR JAYA KARGO", "PT LANCAR JAYA KARGO - Mba Amel", GrupB,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRepair),
	standardType(15, "Transport - PT HIRO PERMATA ABADI", "PT HIRO PERMATA ABADI", GrupB,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRSM),
	standardType(16, "Transport - PT ROCKET SALES MAKMUR", "PT ROCKET SALES MAKMUR", GrupB,
		colPickup, colDepo, colTujuan, colHarga, colLiftOff, colRSM, colRepair),
}

// Lookup maps, built once at init. The catalog is immutable afterwards.
var (
	typesByID   = make(map[int]*InvoiceType, len(invoiceTypes))
	typesByName = make(map[string]*InvoiceType, len(invoiceTypes))
)

func init() {
	for i := range invoiceTypes {
		t := &invoiceTypes[i]
		typesByID[t.ID] = t
		typesByName[t.Name] = t
	}
}

// Types returns all invoice types in configuration order.
func Types() []InvoiceType {
	out := make([]InvoiceType, len(invoiceTypes))
	copy(out, invoiceTypes)
	return out
}

// TypeByID returns the invoice type with the given id, ok=false if unknown.
func TypeByID(id int) (InvoiceType, bool) {
	t, ok := typesByID[id]
	if !ok {
		return InvoiceType{}, false
	}
	return *t, true
}

// TypeByName returns the invoice type with the given display name.
func TypeByName(name string) (InvoiceType, bool) {
	t, ok := typesByName[name]
	if !ok {
		return InvoiceType{}, false
	}
	return *t, true
}

// FeeTypes returns the types with FEE (discount + down payment) semantics.
func FeeTypes() []InvoiceType { return filterTypes(func(t InvoiceType) bool { return t.IsFee }) }

// StandardTypes returns the non-FEE types.
func StandardTypes() []InvoiceType { return filterTypes(func(t InvoiceType) bool { return !t.IsFee }) }

// GrupATypes returns the types billed through the group A account.
func GrupATypes() []InvoiceType {
	return filterTypes(func(t InvoiceType) bool { return t.BankGroup == GrupA })
}

// GrupBTypes returns the types billed through the group B account.
func GrupBTypes() []InvoiceType {
	return filterTypes(func(t InvoiceType) bool { return t.BankGroup == GrupB })
}

func filterTypes(keep func(InvoiceType) bool) []InvoiceType {
	var out []InvoiceType
	for _, t := range invoiceTypes {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// BankForGroup returns the account printed for a bank group.
func BankForGroup(g BankGroup) (BankAccount, bool) {
	acc, ok := bankAccounts[g]
	return acc, ok
}
