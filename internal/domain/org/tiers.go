package org

import "sort"

type Permission string

const (
	PermPlaceTicket     Permission = "place_ticket"
	PermAcceptTicket    Permission = "accept_ticket"
	PermAssignTicket    Permission = "assign_ticket"
	PermViewInvoices    Permission = "view_invoices"
	PermManageLocations Permission = "manage_locations"
)

type Tier string

const (
	Tier1 Tier = "tier_1"
	Tier2 Tier = "tier_2"
	Tier3 Tier = "tier_3"
)

// tierRank orders the tiers; granting a tier implies every lower tier and
// revoking a tier revokes every higher tier.
var tierRank = map[Tier]int{Tier1: 1, Tier2: 2, Tier3: 3}

// TierSet is a value set of vendor tiers.
type TierSet map[Tier]bool

func NewTierSet(tiers ...Tier) TierSet {
	s := make(TierSet, len(tiers))
	for _, t := range tiers {
		if _, ok := tierRank[t]; ok {
			s[t] = true
		}
	}
	return s
}

// Slice returns the set as a sorted slice for storage and JSON.
func (s TierSet) Slice() []Tier {
	out := make([]Tier, 0, len(s))
	for t, on := range s {
		if on {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return tierRank[out[i]] < tierRank[out[j]] })
	return out
}

func (s TierSet) Has(t Tier) bool { return s[t] }

func (s TierSet) Equal(other TierSet) bool {
	if len(s.Slice()) != len(other.Slice()) {
		return false
	}
	for t, on := range s {
		if on && !other[t] {
			return false
		}
	}
	return true
}

// SetTier applies one checkbox toggle and re-derives the closed set:
// checking a tier grants it and every lower tier; unchecking revokes it and
// every higher tier. The input set is not mutated.
func SetTier(current TierSet, tier Tier, checked bool) TierSet {
	rank, ok := tierRank[tier]
	if !ok {
		// Unknown tier: return an unchanged copy.
		out := make(TierSet, len(current))
		for t, on := range current {
			out[t] = on
		}
		return out
	}

	out := make(TierSet, 3)
	for t, r := range tierRank {
		switch {
		case checked && r <= rank:
			out[t] = true
		case !checked && r >= rank:
			// revoked
		case current[t]:
			out[t] = true
		}
	}
	for t, on := range out {
		if !on {
			delete(out, t)
		}
	}
	return out
}

// TiersFor returns the tier set implied by a permission set: without the
// accept_ticket permission no vendor tier survives.
func TiersFor(perms []Permission, tiers TierSet) TierSet {
	for _, p := range perms {
		if p == PermAcceptTicket {
			return tiers
		}
	}
	return NewTierSet()
}

// AllowsVendorTier reports whether the grant covers a vendor of the given
// tier level (1-3).
func (s TierSet) AllowsVendorTier(level int) bool {
	for t, on := range s {
		if on && tierRank[t] == level {
			return true
		}
	}
	return false
}
