package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLearningPath(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/learning-path/generate", "", map[string]interface{}{
		"course_name":   "python",
		"days":          10,
		"hours_per_day": 2,
	})
	require.Equal(t, fiber.StatusOK, status)

	assert.EqualValues(t, 20, result["total_hours"])
	schedule := result["schedule"].([]interface{})
	assert.Len(t, schedule, 10)

	firstEntry := schedule[0].(map[string]interface{})
	assert.Equal(t, "Fundamentals", firstEntry["phase"])
	lastEntry := schedule[len(schedule)-1].(map[string]interface{})
	assert.Equal(t, "Advanced & Projects", lastEntry["phase"])
}

func TestGenerateLearningPathValidation(t *testing.T) {
	_, status := doJSON(t, "POST", "/api/learning-path/generate", "", map[string]interface{}{
		"course_name":   "python",
		"days":          0,
		"hours_per_day": 2,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDownloadLearningPathPDF(t *testing.T) {
	body, err := json.Marshal(map[string]interface{}{
		"course_name":   "react",
		"days":          7,
		"hours_per_day": 3,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/learning-path/download", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "react_path.pdf")

	pdfBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateQuizEndpoint(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/assessments/generate", "", map[string]string{
		"topic": "python",
	})
	require.Equal(t, fiber.StatusOK, status)

	questions := result["data"].([]interface{})
	assert.LessOrEqual(t, len(questions), 5)
	assert.NotEmpty(t, questions)
}

func TestGenerateQuizUnknownTopicEndpoint(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/assessments/generate", "", map[string]string{
		"topic": "unknownxyz",
	})
	require.Equal(t, fiber.StatusOK, status)

	questions := result["data"].([]interface{})
	assert.Len(t, questions, 5)
}
