package engine

// PackItem is one candidate presented to a selection strategy: its position
// in the score-sorted candidate list, its total minute cost (duration plus
// walk), and its adjusted score.
type PackItem struct {
	Index   int
	Minutes int
	Value   float64
}

// Strategy selects a subset of items whose summed minutes stay at or under
// the budget. Implementations must not reorder the candidate list; they
// return selected indices.
type Strategy interface {
	Name() string
	Pack(items []PackItem, budgetMin int) []int
}

// GreedyStrategy is the default single-pass bin packing: accept items in
// score order while the running total fits. It does not backtrack, so it
// can miss a later, higher-total-value combination. That trade-off is
// deliberate; candidate lists are small and the ordering already encodes
// preference.
type GreedyStrategy struct{}

func (GreedyStrategy) Name() string { return "greedy" }

func (GreedyStrategy) Pack(items []PackItem, budgetMin int) []int {
	var selected []int
	total := 0
	for _, it := range items {
		if total+it.Minutes <= budgetMin {
			selected = append(selected, it.Index)
			total += it.Minutes
		}
	}
	return selected
}

// exactMaxCandidates bounds the exhaustive search; beyond it the exact
// strategy falls back to greedy.
const exactMaxCandidates = 16

// ExactStrategy solves the small-N knapsack exactly by enumerating
// subsets, maximizing total value subject to the minutes budget. Ties on
// value prefer fewer total minutes, then the earlier (higher-ranked)
// subset. For more than exactMaxCandidates items it degrades to greedy.
type ExactStrategy struct{}

func (ExactStrategy) Name() string { return "exact" }

func (ExactStrategy) Pack(items []PackItem, budgetMin int) []int {
	n := len(items)
	if n > exactMaxCandidates {
		return GreedyStrategy{}.Pack(items, budgetMin)
	}

	bestMask := 0
	bestValue := 0.0
	bestMinutes := 0
	for mask := 1; mask < 1<<n; mask++ {
		minutes := 0
		value := 0.0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				minutes += items[i].Minutes
				value += items[i].Value
			}
		}
		if minutes > budgetMin {
			continue
		}
		if value > bestValue || (value == bestValue && minutes < bestMinutes) {
			bestMask = mask
			bestValue = value
			bestMinutes = minutes
		}
	}

	var selected []int
	for i := 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			selected = append(selected, items[i].Index)
		}
	}
	return selected
}

// StrategyByName maps a config string onto a strategy, defaulting to greedy.
func StrategyByName(name string) Strategy {
	if name == "exact" {
		return ExactStrategy{}
	}
	return GreedyStrategy{}
}
