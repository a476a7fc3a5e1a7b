package resources

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestResourcesScreen_Title(t *testing.T) {
	assert.Equal(t, "Resources", New().Title())
	assert.Nil(t, New().Init())
}

func TestResourcesScreen_FirstTopicExpanded(t *testing.T) {
	r := New()
	view := r.View(100, 40)
	assert.Contains(t, view, "Wellness Resources")
	assert.Contains(t, view, "The Science of Mental Health")
}

func TestResourcesScreen_SelectionMovesAndClamps(t *testing.T) {
	r := New()

	r.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, r.selected)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, r.selected)
	assert.Contains(t, r.View(100, 40), "Mindfulness for Beginners")

	for range 20 {
		r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, len(r.topics)-1, r.selected)
	assert.Contains(t, r.View(100, 40), "Understanding Treatment Options")
}

func TestResourcesScreen_KeyHints(t *testing.T) {
	assert.Len(t, New().KeyHints(), 2)
}
