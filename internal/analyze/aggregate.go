package analyze

import (
	"sort"

	"github.com/citeguard/citeguard/internal/model"
)

// dedupPrefixLen is the number of leading text characters used in the
// dedup key. Two distinct long issues sharing a 50-character prefix will
// merge; kept as-is pending product clarification (see DESIGN.md).
const dedupPrefixLen = 50

// dedupe removes issues sharing a (type, text prefix) key, first
// occurrence wins.
func dedupe(issues []model.PlagiarismIssue) []model.PlagiarismIssue {
	seen := make(map[string]bool, len(issues))
	unique := make([]model.PlagiarismIssue, 0, len(issues))

	for _, issue := range issues {
		prefix := issue.Text
		if len(prefix) > dedupPrefixLen {
			prefix = prefix[:dedupPrefixLen]
		}
		key := string(issue.Type) + prefix
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, issue)
	}

	return unique
}

// sortIssues orders by severity rank descending, then confidence
// descending. The sort is stable so equal issues keep detector order.
func sortIssues(issues []model.PlagiarismIssue) {
	sort.SliceStable(issues, func(i, j int) bool {
		ri, rj := issues[i].Severity.Rank(), issues[j].Severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return issues[i].Confidence > issues[j].Confidence
	})
}

// distinctTexts counts distinct flagged snippet texts across issues
func distinctTexts(issues []model.PlagiarismIssue) int {
	texts := make(map[string]bool, len(issues))
	for _, issue := range issues {
		texts[issue.Text] = true
	}
	return len(texts)
}

// countByType counts issues of the given type
func countByType(issues []model.PlagiarismIssue, t model.IssueType) int {
	n := 0
	for _, issue := range issues {
		if issue.Type == t {
			n++
		}
	}
	return n
}
