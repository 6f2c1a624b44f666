package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificatePDF(t *testing.T) {
	pdfBytes, err := GenerateCertificatePDF("Jane Doe", "Go Fundamentals", "2026-08-31", "LMS-ABCD1234")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateLearningPathPDF(t *testing.T) {
	rows := []PathRow{
		{Day: 1, Phase: "Fundamentals", Topic: "Variables & Data Types", Activity: "Read docs & practice basic syntax"},
		{Day: 2, Phase: "Deep Dive", Topic: "OOP Concepts", Activity: "Build small components/scripts"},
	}
	pdfBytes, err := GenerateLearningPathPDF("python", 2, 3, 6, rows)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
