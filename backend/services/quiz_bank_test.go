package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQuizKnownTopic(t *testing.T) {
	questions := GenerateQuiz("python")

	assert.LessOrEqual(t, len(questions), 5)
	assert.NotEmpty(t, questions)

	bank := questionBank["python"]
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.Question], "duplicate question drawn: %s", q.Question)
		seen[q.Question] = true
		assert.Contains(t, bank, q)
	}
}

func TestGenerateQuizCaseInsensitive(t *testing.T) {
	questions := GenerateQuiz("PyThOn")
	assert.NotEmpty(t, questions)
	assert.Contains(t, questionBank["python"], questions[0])
}

func TestGenerateQuizSubstringFallback(t *testing.T) {
	questions := GenerateQuiz("advanced python programming")
	assert.NotEmpty(t, questions)
	assert.Contains(t, questionBank["python"], questions[0])
}

func TestGenerateQuizUnknownTopic(t *testing.T) {
	questions := GenerateQuiz("unknownxyz")

	assert.Len(t, questions, 5)
	for _, q := range questions {
		assert.Contains(t, q.Question, "unknownxyz")
		assert.Equal(t, "a", q.CorrectOption)
	}
}

func TestGenerateQuizSmallBank(t *testing.T) {
	// java bank has exactly 5 questions; all of them come back
	questions := GenerateQuiz("java")
	assert.Len(t, questions, 5)
}
