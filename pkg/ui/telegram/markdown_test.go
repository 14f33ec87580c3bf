package telegram

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Markdown_001(t *testing.T) {
	assert := assert.New(t)

	// Plain text passes through without entities
	text, entities := markdownToEntities("Added task to the list")
	assert.Equal("Added task to the list", text)
	assert.Nil(entities)
}

func Test_Markdown_002(t *testing.T) {
	assert := assert.New(t)

	// Bold spans carry UTF-16 offsets
	text, entities := markdownToEntities("Heard: *water the plants*")
	assert.Equal("Heard: water the plants", text)
	if assert.Len(entities, 1) {
		assert.Equal(tele.EntityItalic, entities[0].Type)
		assert.Equal(7, entities[0].Offset)
		assert.Equal(16, entities[0].Length)
	}

	text, entities = markdownToEntities("**Added** task")
	assert.Equal("Added task", text)
	if assert.Len(entities, 1) {
		assert.Equal(tele.EntityBold, entities[0].Type)
		assert.Equal(0, entities[0].Offset)
		assert.Equal(5, entities[0].Length)
	}
}

func Test_Markdown_003(t *testing.T) {
	assert := assert.New(t)

	// Offsets count UTF-16 code units, not bytes or runes
	text, entities := markdownToEntities("🎉🎉 *done*")
	assert.Equal("🎉🎉 done", text)
	if assert.Len(entities, 1) {
		// Each emoji is a surrogate pair
		assert.Equal(5, entities[0].Offset)
		assert.Equal(4, entities[0].Length)
	}
}

func Test_Markdown_004(t *testing.T) {
	assert := assert.New(t)

	// Inline code
	text, entities := markdownToEntities("run `make build` first")
	assert.Equal("run make build first", text)
	if assert.Len(entities, 1) {
		assert.Equal(tele.EntityCode, entities[0].Type)
		assert.Equal(4, entities[0].Offset)
		assert.Equal(10, entities[0].Length)
	}
}

func Test_Markdown_005(t *testing.T) {
	assert := assert.New(t)

	// Links become text links with the destination attached
	text, entities := markdownToEntities("see [the task](https://vikunja.example/tasks/42)")
	assert.Equal("see the task", text)
	if assert.Len(entities, 1) {
		assert.Equal(tele.EntityTextLink, entities[0].Type)
		assert.Equal("https://vikunja.example/tasks/42", entities[0].URL)
		assert.Equal(4, entities[0].Offset)
		assert.Equal(8, entities[0].Length)
	}
}

func Test_Markdown_006(t *testing.T) {
	assert := assert.New(t)

	// Lists render with bullets and ordinals
	text, _ := markdownToEntities("- milk\n- eggs")
	assert.Equal("• milk\n• eggs", text)

	text, _ = markdownToEntities("1. milk\n2. eggs")
	assert.Equal("1. milk\n2. eggs", text)
}

func Test_Markdown_007(t *testing.T) {
	assert := assert.New(t)

	// Paragraphs are separated by a blank line, trailing breaks trimmed
	text, _ := markdownToEntities("Heard: something\n\nAdded task\n")
	assert.Equal("Heard: something\n\nAdded task", text)
}
