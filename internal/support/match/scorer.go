package match

import "strings"

// Keywords that mark a question as being about the support domain: agent names
// and the operational terms they cover. Matching is case-insensitive substring.
var domainKeywords = []string{
	"eva", "cam", "phil", "eligibility", "claims", "payment",
	"verification", "processing", "posting", "agents", "benefits",
	"thoughtful",
}

// KeywordBoost is added to the score once per domain keyword that appears in
// both the query and the candidate question.
const KeywordBoost = 0.15

// Ratio is the Ratcliff/Obershelp similarity of two strings after case folding:
// 2*M/T where T is the total length of both strings and M the total length of
// matching blocks found by greedy longest-common-substring matching. Two empty
// strings are fully similar.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2 * float64(matchedLen(a, b)) / float64(total)
}

// matchedLen finds the longest common block, then recurses on the fragments to
// its left and right, summing matched lengths.
func matchedLen(a, b string) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size + matchedLen(a[:ai], b[:bi]) + matchedLen(a[ai+size:], b[bi+size:])
}

// longestCommonBlock locates the longest common contiguous substring. Ties keep
// the earliest position in a, then in b.
func longestCommonBlock(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// prev[j+1] is the length of the common suffix ending at a[i-1], b[j].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				cur[j+1] = 0
				continue
			}
			cur[j+1] = prev[j] + 1
			if cur[j+1] > size {
				size = cur[j+1]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}

// Score combines the similarity ratio of the query and a candidate question
// with the domain keyword boost, capped at 1.0.
func Score(query, question string) float64 {
	q := strings.ToLower(query)
	cand := strings.ToLower(question)

	score := Ratio(query, question)
	for _, kw := range domainKeywords {
		if strings.Contains(q, kw) && strings.Contains(cand, kw) {
			score += KeywordBoost
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
