package progression

// LevelCap is the maximum reachable level.
const LevelCap = 100

// requirements[n] is the cumulative XP at which level n ends: a user is level
// n while xp < requirements[n]. The first step costs 100 XP and each step
// grows by 55 + 10*n, giving a strictly increasing, accelerating curve.
var requirements = buildRequirements()

func buildRequirements() []int64 {
	reqs := make([]int64, 0, LevelCap+1)
	var cumulative int64
	diff := int64(100)
	for n := 0; n <= LevelCap; n++ {
		cumulative += diff
		reqs = append(reqs, cumulative)
		diff += 55 + 10*int64(n)
	}
	return reqs
}

// Requirements returns the threshold table. Callers must treat it as
// read-only.
func Requirements() []int64 {
	return requirements
}

// Level maps cumulative XP to a level. It never scans past the cap; any XP
// beyond the top threshold reports LevelCap.
func Level(xp int64) int {
	for lvl := 0; lvl <= LevelCap; lvl++ {
		if xp < requirements[lvl] {
			return lvl
		}
	}
	return LevelCap
}

// XPToNextLevel returns how much XP is missing until the next level, 0 at
// the cap.
func XPToNextLevel(xp int64) int64 {
	lvl := Level(xp)
	if lvl >= LevelCap {
		return 0
	}
	return requirements[lvl] - xp
}
