package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "go react node js", NormalizeText("  Go, React & Node.js!  "))
	assert.Equal(t, "", NormalizeText("  ,;!  "))
}

func TestContainsPhraseWholeWords(t *testing.T) {
	text := NormalizeText("built REST APIs in Go")
	assert.True(t, ContainsPhrase(text, "go"))
	assert.False(t, ContainsPhrase(text, "rest api"), "plural should not match the singular phrase")
	assert.False(t, ContainsPhrase(text, ""))
}

func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills("Senior engineer: Golang, PostgreSQL, Docker and Kubernetes experience required")
	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "postgres")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
	// alias dedupe: golang reported once, under the first vocabulary spelling
	assert.NotContains(t, skills, "golang")
}

func TestExtractSkillsEmpty(t *testing.T) {
	assert.Nil(t, ExtractSkills(""))
	assert.Nil(t, ExtractSkills("   "))
}

func TestSkillVariants(t *testing.T) {
	variants := SkillVariants("K8s")
	require.NotEmpty(t, variants)
	assert.Equal(t, "k8s", variants[0])
	assert.Contains(t, variants, "kubernetes")
}

func TestSpecializationSkills(t *testing.T) {
	assert.NotEmpty(t, SpecializationSkills("backend"))
	assert.NotEmpty(t, SpecializationSkills("  DevOps  "))
	assert.Nil(t, SpecializationSkills(""))
	assert.Nil(t, SpecializationSkills("astrology"))
}

func TestHasSkillThroughAlias(t *testing.T) {
	text := NormalizeText("5 years of golang and node")
	assert.True(t, HasSkill(text, "go"))
	assert.True(t, HasSkill(text, "node js"))
	assert.False(t, HasSkill(text, "python"))
}
