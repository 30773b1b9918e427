package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// GroupingTolerance is the rounding slack allowed when deciding that a set
// of net amounts cancels to zero. It covers accumulated rounding in bank
// exports, not a business rule.
var GroupingTolerance = decimal.NewFromFloat(0.01)

// Search bounds for the reversal-subset search. Groups above
// maxExhaustiveGroup fall back to similarity buckets; triplet search inside
// a bucket only runs up to maxBucketTriplet members.
const (
	maxExhaustiveGroup = 10
	maxBucketTriplet   = 6
)

// Classify labels every transaction by reference-group analysis. Only the
// Class field is mutated; no other side effect. A group confined to one
// account is searched for a cancelling subset (Reversed); a group spanning
// accounts that nets to zero is an inter-account transfer; everything else
// stays Unique.
func Classify(transactions []*domain.Transaction) {
	groups := make(map[string][]*domain.Transaction)
	for _, tx := range transactions {
		groups[tx.ReferenceKey] = append(groups[tx.ReferenceKey], tx)
	}

	// Iterate keys in sorted order so runs are deterministic regardless of
	// map iteration.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		classifyGroup(groups[key])
	}
}

func classifyGroup(group []*domain.Transaction) {
	if len(group) == 1 {
		group[0].Class = domain.ClassificationUnique
		return
	}

	accounts := make(map[string]bool)
	sum := decimal.Zero
	for _, tx := range group {
		accounts[tx.AccountNumber] = true
		sum = sum.Add(tx.Net)
	}

	if len(accounts) > 1 {
		// Shared key across accounts nets to zero: a transfer between two
		// of our own accounts. Otherwise the shared key is coincidental.
		if sum.Abs().LessThan(GroupingTolerance) {
			for _, tx := range group {
				tx.Class = domain.ClassificationInterAccount
			}
		}
		return
	}

	if subset := findReversalSubset(group); subset != nil {
		for _, i := range subset {
			group[i].Class = domain.ClassificationReversed
		}
	}
}

// findReversalSubset returns the indices of the first subset of the group
// whose net amounts cancel within tolerance, or nil. The search order is
// fixed and deterministic: all pairs, then all triplets, then pairs and
// triplets within similarity buckets for large groups. Cancelling pairs are
// the common case, so smaller subsets are always preferred.
func findReversalSubset(group []*domain.Transaction) []int {
	nets := make([]decimal.Decimal, len(group))
	for i, tx := range group {
		nets[i] = tx.Net
	}

	if len(nets) == 2 {
		if nets[0].Add(nets[1]).Abs().LessThan(GroupingTolerance) {
			return []int{0, 1}
		}
		return nil
	}

	if pair := findCancellingPair(nets, nil); pair != nil {
		return pair
	}

	if len(nets) <= maxExhaustiveGroup {
		return findCancellingTriplet(nets, nil)
	}

	// Large group: bound the search by bucketing on the rounded absolute
	// net amount and searching within each bucket only.
	return searchBuckets(nets)
}

// findCancellingPair checks every 2-element subset. When indices is non-nil
// the search runs over that subset of positions and returns original
// indices.
func findCancellingPair(nets []decimal.Decimal, indices []int) []int {
	n := len(nets)
	if indices != nil {
		n = len(indices)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := pick(nets, indices, i), pick(nets, indices, j)
			if a.Add(b).Abs().LessThan(GroupingTolerance) {
				return []int{origin(indices, i), origin(indices, j)}
			}
		}
	}
	return nil
}

func findCancellingTriplet(nets []decimal.Decimal, indices []int) []int {
	n := len(nets)
	if indices != nil {
		n = len(indices)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				sum := pick(nets, indices, i).Add(pick(nets, indices, j)).Add(pick(nets, indices, k))
				if sum.Abs().LessThan(GroupingTolerance) {
					return []int{origin(indices, i), origin(indices, j), origin(indices, k)}
				}
			}
		}
	}
	return nil
}

func searchBuckets(nets []decimal.Decimal) []int {
	buckets := make(map[string][]int)
	order := make([]string, 0)
	for i, net := range nets {
		// Bucket by absolute value rounded to the nearest whole unit.
		key := net.Abs().Round(0).String()
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], i)
	}
	sort.Strings(order)

	for _, key := range order {
		members := buckets[key]
		if len(members) < 2 {
			continue
		}
		if pair := findCancellingPair(nets, members); pair != nil {
			return pair
		}
		if len(members) >= 3 && len(members) <= maxBucketTriplet {
			if triplet := findCancellingTriplet(nets, members); triplet != nil {
				return triplet
			}
		}
	}
	return nil
}

func pick(nets []decimal.Decimal, indices []int, i int) decimal.Decimal {
	if indices == nil {
		return nets[i]
	}
	return nets[indices[i]]
}

func origin(indices []int, i int) int {
	if indices == nil {
		return i
	}
	return indices[i]
}
