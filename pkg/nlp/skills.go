package nlp

import "strings"

// skillVocabulary lists the skill phrases the matcher recognizes in job
// descriptions and candidate skill lists. Kept deliberately small; extend as
// hiring teams report misses.
var skillVocabulary = []string{
	"go", "golang", "python", "java", "javascript", "typescript",
	"rust", "ruby", "php", "swift", "kotlin",
	"react", "vue", "angular", "next js", "node js", "express",
	"html", "css", "graphql", "rest api", "grpc", "websockets",
	"postgres", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "sql",
	"docker", "kubernetes", "k8s", "terraform", "aws", "gcp", "azure",
	"ci cd", "linux", "git",
	"machine learning", "deep learning", "nlp", "pytorch", "tensorflow",
	"data analysis", "pandas", "spark",
	"ios", "android", "flutter", "react native",
	"penetration testing", "cryptography", "oauth",
	"selenium", "cypress", "unit testing",
	"figma", "ui design", "ux research",
	"agile", "scrum", "team leadership", "mentoring", "communication",
}

// aliases maps a normalized skill to equivalent normalized spellings.
var aliases = map[string][]string{
	"go":         {"golang"},
	"golang":     {"go"},
	"javascript": {"js"},
	"js":         {"javascript"},
	"typescript": {"ts"},
	"ts":         {"typescript"},
	"postgres":   {"postgresql"},
	"postgresql": {"postgres"},
	"kubernetes": {"k8s"},
	"k8s":        {"kubernetes"},
	"rest api":   {"rest"},
	"rest":       {"rest api"},
	"ci cd":      {"cicd"},
	"cicd":       {"ci cd"},
	"node js":    {"nodejs", "node"},
	"next js":    {"nextjs"},
}

// specializationSkills expands an interviewer specialization into the skill
// tokens it implies. The set mirrors the directory's fixed specialization
// enumeration.
var specializationSkills = map[string][]string{
	"frontend":   {"javascript", "typescript", "react", "vue", "angular", "html", "css", "next js"},
	"backend":    {"go", "java", "python", "rest api", "grpc", "postgres", "sql", "redis"},
	"fullstack":  {"javascript", "typescript", "react", "node js", "rest api", "sql", "postgres"},
	"mobile":     {"ios", "android", "swift", "kotlin", "flutter", "react native"},
	"devops":     {"docker", "kubernetes", "terraform", "aws", "gcp", "ci cd", "linux"},
	"data":       {"python", "sql", "pandas", "spark", "data analysis"},
	"ai-ml":      {"machine learning", "deep learning", "python", "pytorch", "tensorflow", "nlp"},
	"security":   {"penetration testing", "cryptography", "oauth", "linux"},
	"qa":         {"selenium", "cypress", "unit testing"},
	"product":    {"agile", "scrum", "communication"},
	"design":     {"figma", "ui design", "ux research"},
	"leadership": {"team leadership", "mentoring", "agile", "communication"},
}

// SkillVariants returns the normalized spellings under which one skill may
// appear, starting with the canonical form.
func SkillVariants(skill string) []string {
	base := NormalizeText(skill)
	if base == "" {
		return nil
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// ExtractSkills scans free text for known skill phrases and returns them in
// vocabulary order, deduplicated through aliases (only the first spelling of
// an alias group is reported).
func ExtractSkills(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, skill := range skillVocabulary {
		if _, ok := seen[skill]; ok {
			continue
		}
		if !phraseInText(normalized, skill) {
			continue
		}
		out = append(out, skill)
		seen[skill] = struct{}{}
		for _, a := range aliases[skill] {
			seen[a] = struct{}{}
		}
	}
	return out
}

// SpecializationSkills returns the implied skills for a specialization, or
// nil for an empty/unknown one (a general interviewer implies nothing).
func SpecializationSkills(specialization string) []string {
	key := strings.ToLower(strings.TrimSpace(specialization))
	return specializationSkills[key]
}

// HasSkill reports whether any spelling of skill occurs in normalized text.
func HasSkill(normalizedText, skill string) bool {
	return phraseInText(normalizedText, NormalizeText(skill))
}

func phraseInText(normalizedText, normalizedSkill string) bool {
	for _, v := range SkillVariants(normalizedSkill) {
		if ContainsPhrase(normalizedText, v) {
			return true
		}
	}
	return false
}
