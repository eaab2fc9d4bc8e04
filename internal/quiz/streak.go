package quiz

// BaseStreakMilestone is the first streak length worth celebrating.
const BaseStreakMilestone = 5

// NextStreakMilestone returns the next streak milestone above current.
func NextStreakMilestone(current int) int {
	milestones := []int{5, 10, 15, 20}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}
