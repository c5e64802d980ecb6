package match

import (
	"math"
	"strings"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
)

// MinSuggestionScore filters weak candidates out of suggestions.
const MinSuggestionScore = 0.3

const (
	weightIndustry  = 0.4
	weightSkills    = 0.3
	weightInterests = 0.2
	weightRole      = 0.1
)

// Compatibility scores two profiles in [0, 1] and reports each factor's share.
func Compatibility(a, b user.User) (float64, map[string]float64) {
	factors := map[string]float64{
		"industry":  industryScore(a.Industry, b.Industry),
		"skills":    weightSkills * overlap(a.Skills, b.Skills),
		"interests": weightInterests * overlap(a.Interests, b.Interests),
		"role":      0,
	}
	if a.Role != "" && a.Role == b.Role {
		factors["role"] = weightRole
	}

	var score float64
	for _, v := range factors {
		score += v
	}
	return math.Min(score, 1), factors
}

func industryScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if strings.EqualFold(a, b) {
		return weightIndustry
	}
	// adjacent tech industries earn half
	if strings.Contains(strings.ToLower(a), "tech") && strings.Contains(strings.ToLower(b), "tech") {
		return weightIndustry / 2
	}
	return 0
}

// overlap is |A∩B| / max(|A|, |B|) over comma separated sets.
func overlap(a, b string) float64 {
	setA, setB := csvSet(a), csvSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			shared++
		}
	}
	return float64(shared) / float64(max(len(setA), len(setB)))
}

func csvSet(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out[p] = struct{}{}
		}
	}
	return out
}

// matchReason names the strongest factor.
func matchReason(factors map[string]float64) string {
	best, top := "", 0.0
	for _, k := range []string{"industry", "skills", "interests", "role"} {
		if factors[k] > top {
			best, top = k, factors[k]
		}
	}
	switch best {
	case "industry":
		return "Works in a similar industry"
	case "skills":
		return "Shares several of your skills"
	case "interests":
		return "Has interests in common with you"
	case "role":
		return "Holds a similar role"
	}
	return ""
}
