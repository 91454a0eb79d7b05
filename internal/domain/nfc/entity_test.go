package nfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentResponseFacts(t *testing.T) {
	content := TagContent{Title: "Tlaxcala", Description: "La cuna de la nación"}
	content.SetFacts([]string{"Estado más pequeño de México", "Fundado en 1525"})

	resp := content.ToResponse()

	assert.Equal(t, "Tlaxcala", resp.Title)
	assert.Equal(t, []string{"Estado más pequeño de México", "Fundado en 1525"}, resp.Facts)
}

func TestContentResponseFactsNeverNil(t *testing.T) {
	content := TagContent{Title: "Tlaxcala"}
	assert.NotNil(t, content.ToResponse().Facts)
	assert.Empty(t, content.ToResponse().Facts)

	content.Facts = "{corrupt"
	assert.Empty(t, content.ToResponse().Facts)
}
