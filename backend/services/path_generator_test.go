package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLearningPathPython(t *testing.T) {
	path := GenerateLearningPath("python", 10, 2)

	assert.Equal(t, "python", path.CourseName)
	assert.Equal(t, 10, path.TotalDays)
	assert.Equal(t, 2, path.HoursPerDay)
	assert.Equal(t, 20, path.TotalHours)
	assert.Len(t, path.Schedule, 10)

	// Phase sizes: ceil(10*0.3)=3, ceil(10*0.4)=4, remainder 3
	for i, entry := range path.Schedule {
		assert.Equal(t, i+1, entry.Day)
		assert.Equal(t, 2, entry.Hours)
		switch {
		case i < 3:
			assert.Equal(t, "Fundamentals", entry.Phase)
		case i < 7:
			assert.Equal(t, "Deep Dive", entry.Phase)
		default:
			assert.Equal(t, "Advanced & Projects", entry.Phase)
		}
	}
}

func TestGenerateLearningPathPhaseOrder(t *testing.T) {
	path := GenerateLearningPath("React", 20, 3)

	var phases []string
	for _, entry := range path.Schedule {
		if len(phases) == 0 || phases[len(phases)-1] != entry.Phase {
			phases = append(phases, entry.Phase)
		}
	}
	assert.Equal(t, []string{"Fundamentals", "Deep Dive", "Advanced & Projects"}, phases)
	assert.Equal(t, 60, path.TotalHours)
}

func TestGenerateLearningPathUnknownTopic(t *testing.T) {
	path := GenerateLearningPath("underwater basket weaving", 10, 1)

	assert.Len(t, path.Schedule, 10)
	assert.Contains(t, path.Schedule[0].Topic, "underwater basket weaving Fundamentals")
}

func TestGenerateLearningPathDeterministic(t *testing.T) {
	first := GenerateLearningPath("java", 14, 2)
	second := GenerateLearningPath("java", 14, 2)
	assert.Equal(t, first, second)
}

func TestGenerateLearningPathTinyBudget(t *testing.T) {
	// ceil(1*0.3)=1, ceil(1*0.4)=1, phase3 clamps to 0
	path := GenerateLearningPath("python", 1, 2)
	for _, entry := range path.Schedule {
		assert.NotEqual(t, "Advanced & Projects", entry.Phase)
	}
}
