package schedule

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
)

// Question banks per experience level. One question is chosen
// deterministically per candidate so regenerating a schedule does not
// reshuffle the interview plan.
var questionBank = map[string][]string{
	"junior": {
		"Tell me about a time when you had to learn a new technology quickly to complete a project. How did you approach it?",
		"Describe a situation where you received critical feedback on your work. What did you do with it?",
		"Tell me about a problem you could not solve on your own. How did you ask for help?",
		"Describe a time you had to balance coursework or learning with a delivery deadline. What did you prioritize?",
	},
	"mid": {
		"Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
		"Describe a project where requirements changed late. How did you adapt the plan?",
		"Tell me about a time you found a defect in production. How did you handle it and what changed afterwards?",
		"Describe a situation where you had to explain a technical trade-off to a non-technical stakeholder.",
	},
	"senior": {
		"Tell me about a time you led a team through a difficult technical migration. What would you do differently?",
		"Describe a situation where you had to make an architectural decision with incomplete information.",
		"Tell me about a time you mentored someone who was struggling. What was your approach?",
		"Describe a conflict between delivery pressure and engineering quality you have had to arbitrate.",
	},
}

var yearsRe = regexp.MustCompile(`(\d+)`)

// experienceLevel buckets the free-text experience field. Unparseable input
// lands in the middle bucket.
func experienceLevel(experience string) string {
	text := strings.ToLower(experience)
	switch {
	case strings.Contains(text, "senior") || strings.Contains(text, "lead") || strings.Contains(text, "principal"):
		return "senior"
	case strings.Contains(text, "junior") || strings.Contains(text, "intern") || strings.Contains(text, "graduate"):
		return "junior"
	}
	if m := yearsRe.FindString(text); m != "" {
		years, err := strconv.Atoi(m)
		if err == nil {
			switch {
			case years < 3:
				return "junior"
			case years >= 7:
				return "senior"
			}
		}
	}
	return "mid"
}

func behavioralQuestion(c candidate.Candidate) string {
	bank := questionBank[experienceLevel(c.Experience)]
	h := fnv.New32a()
	_, _ = h.Write([]byte(c.Email))
	return bank[int(h.Sum32())%len(bank)]
}
