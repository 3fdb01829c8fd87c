// Package records serves the published parcel-register sample shown on the
// portal. This is a static fixture with a linear substring filter, not a
// search subsystem; the authoritative register lives in the office's own
// cadaster system.
package records

import "strings"

// OwnershipEntry is one step in a parcel's recorded ownership history.
type OwnershipEntry struct {
	PreviousOwner string `json:"previousOwner"`
	Date          string `json:"date"`
}

// PropertyRecord is one published parcel entry.
type PropertyRecord struct {
	ID               string           `json:"id"`
	Address          string           `json:"address"`
	Owner            string           `json:"owner"`
	Area             string           `json:"area"`
	Status           string           `json:"status"`
	Valuation        string           `json:"valuation"`
	OwnershipHistory []OwnershipEntry `json:"ownershipHistory"`
}

// published is the sample register the portal exposes.
var published = []PropertyRecord{
	{
		ID:        "SL-102-44-A",
		Address:   "124 Emerald Heights, District 4",
		Owner:     "Logia Development Corp",
		Area:      "450 m²",
		Status:    "Registered",
		Valuation: "€1.2M",
		OwnershipHistory: []OwnershipEntry{
			{PreviousOwner: "Abebe Bikila", Date: "2018-05-12"},
			{PreviousOwner: "City Administration", Date: "2010-01-01"},
		},
	},
	{
		ID:        "SL-105-12-B",
		Address:   "88 Silver Lake Rd, District 2",
		Owner:     "Elena Volkov",
		Area:      "1,200 m²",
		Status:    "Registered",
		Valuation: "€3.5M",
		OwnershipHistory: []OwnershipEntry{
			{PreviousOwner: "Dmitri Volkov", Date: "2022-11-20"},
		},
	},
	{
		ID:               "SL-201-09-C",
		Address:          "Sector 7G, Industrial Zone",
		Owner:            "Samara Energy",
		Area:             "15,000 m²",
		Status:           "Pending",
		Valuation:        "€12.8M",
		OwnershipHistory: []OwnershipEntry{},
	},
}

// Search filters the published register by case-insensitive substring match
// over cadaster id and address. An empty query matches nothing.
func Search(query string) []PropertyRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []PropertyRecord{}
	}
	out := []PropertyRecord{}
	for _, r := range published {
		if strings.Contains(strings.ToLower(r.ID), q) || strings.Contains(strings.ToLower(r.Address), q) {
			out = append(out, r)
		}
	}
	return out
}
