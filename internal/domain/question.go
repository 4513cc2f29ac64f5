package domain

import "math/rand"

// SelectQuestions filters the bank by category and difficulty, shuffles the
// survivors when rnd is non-nil, and applies the limit. The bank itself is
// never mutated.
func SelectQuestions(bank []Question, f QuestionFilter, rnd *rand.Rand) []Question {
	out := make([]Question, 0, len(bank))
	for _, q := range bank {
		if f.Category != "" && q.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, q)
	}
	if rnd != nil {
		rnd.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// QuestionCategories returns the distinct categories of the bank in
// first-seen order.
func QuestionCategories(bank []Question) []string {
	seen := make(map[string]struct{}, len(bank))
	var out []string
	for _, q := range bank {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
