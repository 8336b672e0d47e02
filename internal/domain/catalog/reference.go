package catalog

// Shared option lists for select columns. These mirror the operational
// vocabulary of the dispatch team.

// ContainerStatuses: FULL = loaded, MT = empty repositioning.
var ContainerStatuses = []string{"FULL", "MT"}

// ContainerSizes in feet. The price list additionally accepts "all" as a
// wildcard size.
var ContainerSizes = []string{"20", "40"}

// PickupLocations: terminals and depots around Tanjung Priok where the
// container is picked up.
var PickupLocations = []string{
	"JICT", "KOJA", "NPCT1", "MAL", "UTC 1", "UTC 3", "GRAHA", "MARUNDA",
}

// Depos: empty-container return depots.
var Depos = []string{
	"DWIPA", "MTI", "MCS", "SEGARA", "PRIMANATA", "CONCORD", "KBN",
}
