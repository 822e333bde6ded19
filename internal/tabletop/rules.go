package tabletop

// Modifier returns the ability modifier for a score.
func Modifier(ability uint8) int {
	return int(ability)/2 - 5
}

// PassiveScore returns 10 + modifiers, shifted by 5 for (dis)advantage.
func PassiveScore(modifiers int, advantage AdvantageStatus) int {
	bonus := 0
	switch advantage {
	case Advantage:
		bonus = 5
	case Disadvantage:
		bonus = -5
	}
	return 10 + modifiers + bonus
}

// CarryingCapacity returns how many pounds a creature can carry.
func CarryingCapacity(strength uint8, size Size) int {
	total := int(strength) * 15
	switch size {
	case Tiny:
		return total / 2
	case Large:
		return total * 2
	case Huge:
		return total * 4
	case Gargantuan:
		return total * 8
	}
	return total
}

// MoveCapacity returns how many pounds a creature can push, drag or lift.
// Computed directly rather than doubling CarryingCapacity so Tiny creatures
// don't lose the odd pound to truncation.
func MoveCapacity(strength uint8, size Size) int {
	total := int(strength) * 15
	switch size {
	case Tiny:
		return total
	case Large:
		return total * 4
	case Huge:
		return total * 8
	case Gargantuan:
		return total * 16
	}
	return total * 2
}

const (
	// PointBuyBudget is the number of points available when buying scores.
	PointBuyBudget = 27
	// PointBuyMin and PointBuyMax bound a purchasable score.
	PointBuyMin = 8
	PointBuyMax = 15
)

var pointBuyCosts = [...]int{0, 1, 2, 3, 4, 5, 7, 9}

// PointBuyCost returns the cost of raising a score from 8 to score.
// ok is false when score is outside the purchasable range.
func PointBuyCost(score uint8) (cost int, ok bool) {
	if score < PointBuyMin || score > PointBuyMax {
		return 0, false
	}
	return pointBuyCosts[score-PointBuyMin], true
}

// PointBuyTotal returns the summed cost of a stats block.
func PointBuyTotal(s Stats) (int, bool) {
	total := 0
	for a := Ability(0); a < AbilityCount; a++ {
		c, ok := PointBuyCost(s.Get(a))
		if !ok {
			return 0, false
		}
		total += c
	}
	return total, true
}
