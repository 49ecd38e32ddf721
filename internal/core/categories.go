package core

// categories.go defines the fixed checkpoint-exam vocabulary and the
// column resolution rules.
//
// Both exports name the same twelve exams, but never identically: the
// provider writes "Checkpoint Exam: The Internet Protocol" where the
// gradebook has "Checkpoint Exam - Internet Protocol Points Grade",
// drops commas, swaps hyphens for en dashes, and so on. Each category
// therefore carries a canonical label plus alias substrings covering
// the variants seen in real exports. All fuzzy matching lives here;
// the merge logic never does its own string-contains scanning.

import (
	"fmt"
	"strings"
)

// CategoryID is one of the twelve fixed checkpoint-exam categories.
// The set is closed at build time; there are no dynamic categories.
type CategoryID int

const (
	CatBuildSmallNetwork CategoryID = iota
	CatNetworkAccess
	CatInternetProtocol
	CatCommunicationBetweenNetworks
	CatProtocolsForSpecificTasks
	CatNetworkDesign
	CatNetworkAddressing
	CatARPDNSDHCPTransport
	CatConfigureCiscoDevices
	CatPhysicalDataLinkNetwork
	CatIPAddressing
	CatCiscoDevicesTroubleshooting

	numCategories
)

var categoryLabels = [numCategories]string{
	CatBuildSmallNetwork:            "Build a Small Network",
	CatNetworkAccess:                "Network Access",
	CatInternetProtocol:             "Internet Protocol",
	CatCommunicationBetweenNetworks: "Communication Between Networks",
	CatProtocolsForSpecificTasks:    "Protocols for Specific Tasks",
	CatNetworkDesign:                "Characteristics of Network Design",
	CatNetworkAddressing:            "Network Addressing",
	CatARPDNSDHCPTransport:          "ARP, DNS, DHCP and the Transport Layer",
	CatConfigureCiscoDevices:        "Configure Cisco Devices",
	CatPhysicalDataLinkNetwork:      "Physical, Data Link, and Network Layers",
	CatIPAddressing:                 "IP Addressing",
	CatCiscoDevicesTroubleshooting:  "Cisco Devices and Troubleshooting",
}

// String returns the category's canonical label.
func (id CategoryID) String() string {
	if id < 0 || id >= numCategories {
		return fmt.Sprintf("CategoryID(%d)", int(id))
	}
	return categoryLabels[id]
}

// Category pairs a canonical label with the alias substrings seen in
// real export headers.
type Category struct {
	ID      CategoryID
	Label   string
	Aliases []string
}

// DefaultCategories returns the fixed category rule table. A fresh
// slice is built per call so concurrent merges never share state.
func DefaultCategories() []Category {
	return []Category{
		{ID: CatBuildSmallNetwork, Label: categoryLabels[CatBuildSmallNetwork]},
		{ID: CatNetworkAccess, Label: categoryLabels[CatNetworkAccess]},
		{ID: CatInternetProtocol, Label: categoryLabels[CatInternetProtocol]},
		{ID: CatCommunicationBetweenNetworks, Label: categoryLabels[CatCommunicationBetweenNetworks]},
		{ID: CatProtocolsForSpecificTasks, Label: categoryLabels[CatProtocolsForSpecificTasks]},
		{ID: CatNetworkDesign, Label: categoryLabels[CatNetworkDesign]},
		{ID: CatNetworkAddressing, Label: categoryLabels[CatNetworkAddressing]},
		// The gradebook drops the commas: "ARP DNS DHCP and the Transport Layer".
		{ID: CatARPDNSDHCPTransport, Label: categoryLabels[CatARPDNSDHCPTransport], Aliases: []string{"ARP DNS DHCP"}},
		{ID: CatConfigureCiscoDevices, Label: categoryLabels[CatConfigureCiscoDevices]},
		// Gradebook variant without commas: "Physical Data Link and Network Layers".
		{ID: CatPhysicalDataLinkNetwork, Label: categoryLabels[CatPhysicalDataLinkNetwork], Aliases: []string{"Physical Data Link"}},
		{ID: CatIPAddressing, Label: categoryLabels[CatIPAddressing]},
		// Provider spells it out ("...Troubleshooting Network Issues"); the
		// gradebook shortens it to just "Cisco Devices".
		{ID: CatCiscoDevicesTroubleshooting, Label: categoryLabels[CatCiscoDevicesTroubleshooting], Aliases: []string{"Cisco Devices"}},
	}
}

// normalizeHeader lowercases a header cell and collapses whitespace
// runs so label substring checks are layout-insensitive.
func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// matchStrategy reports whether a normalized header cell matches a
// category. Strategies are tried in the fixed order of
// resolveStrategies; exact wins over fuzzy.
type matchStrategy func(header string, cat Category) bool

func matchExact(header string, cat Category) bool {
	return header == normalizeHeader(cat.Label)
}

func matchFuzzy(header string, cat Category) bool {
	if strings.Contains(header, normalizeHeader(cat.Label)) {
		return true
	}
	for _, alias := range cat.Aliases {
		if strings.Contains(header, normalizeHeader(alias)) {
			return true
		}
	}
	return false
}

var resolveStrategies = []matchStrategy{matchExact, matchFuzzy}

// ResolveColumns maps each category to the first header that matches
// it, trying exact then fuzzy matching, ties broken left to right.
//
// Categories are resolved in vocabulary order and each header can be
// claimed only once. This keeps a short alias ("Cisco Devices") from
// stealing the column already claimed by a more specific category
// ("Configure Cisco Devices"). A category with no matching header is
// simply absent from the mapping.
func ResolveColumns(header []string, cats []Category) ColumnMapping {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = normalizeHeader(h)
	}

	claimed := make([]bool, len(header))
	mapping := make(ColumnMapping, len(cats))

	for _, cat := range cats {
		for _, match := range resolveStrategies {
			found := -1
			for i, h := range norm {
				if claimed[i] {
					continue
				}
				if match(h, cat) {
					found = i
					break
				}
			}
			if found >= 0 {
				claimed[found] = true
				mapping[cat.ID] = ResolvedColumn{Index: found, Header: header[found]}
				break
			}
		}
	}

	return mapping
}
