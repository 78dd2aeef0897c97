package types

// Jurisdiction is an Australian state or territory, in the lowercase form
// used by the public holiday dataset.
type Jurisdiction string

const (
	NSW Jurisdiction = "nsw"
	ACT Jurisdiction = "act"
	VIC Jurisdiction = "vic"
	QLD Jurisdiction = "qld"
	SA  Jurisdiction = "sa"
	WA  Jurisdiction = "wa"
	TAS Jurisdiction = "tas"
	NT  Jurisdiction = "nt"
)

// JurisdictionSet is the set of jurisdictions that share some property, e.g.
// a public holiday on a particular date.
type JurisdictionSet map[Jurisdiction]struct{}

// Contains reports whether j is in the set.
func (s JurisdictionSet) Contains(j Jurisdiction) bool {
	_, ok := s[j]
	return ok
}

// Add inserts j into the set.
func (s JurisdictionSet) Add(j Jurisdiction) {
	s[j] = struct{}{}
}
