package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionItemsObjectWithTasks(t *testing.T) {
	raw := `{"tasks": [{"task": "Review report", "deadline": "2024-01-12", "priority": "high"}]}`

	items := ParseActionItems(raw)
	require.Len(t, items, 1)
	assert.Equal(t, "Review report", items[0].Task)
	require.NotNil(t, items[0].Deadline)
	assert.Equal(t, "2024-01-12", *items[0].Deadline)
	assert.Equal(t, "high", items[0].Priority)
}

func TestParseActionItemsBareArray(t *testing.T) {
	raw := `[{"task": "Call back", "deadline": null}]`

	items := ParseActionItems(raw)
	require.Len(t, items, 1)
	assert.Equal(t, "Call back", items[0].Task)
	assert.Nil(t, items[0].Deadline)
}

func TestParseActionItemsEmptyArray(t *testing.T) {
	items := ParseActionItems(`{"tasks": []}`)
	assert.Empty(t, items)

	items = ParseActionItems(`[]`)
	assert.Empty(t, items)
}

func TestParseActionItemsWrapsPlainText(t *testing.T) {
	items := ParseActionItems("No clear tasks found in this email.")
	require.Len(t, items, 1)
	assert.Equal(t, "No clear tasks found in this email.", items[0].Task)
	assert.Nil(t, items[0].Deadline)
}

func TestParseActionItemsMalformedJSON(t *testing.T) {
	for _, raw := range []string{
		`{"tasks": [{"task": }`,
		`[{"task"`,
		`{"something_else": true}`,
	} {
		items := ParseActionItems(raw)
		require.Len(t, items, 1, "input %q", raw)
		assert.Equal(t, raw, items[0].Task)
	}
}

func TestParseActionItemsEmptyInput(t *testing.T) {
	assert.Empty(t, ParseActionItems(""))
	assert.Empty(t, ParseActionItems("   \n  "))
}

func TestParseActionItemsWhitespacePadded(t *testing.T) {
	items := ParseActionItems("\n  [{\"task\": \"Pay invoice\", \"deadline\": \"2024-02-01\"}]  \n")
	require.Len(t, items, 1)
	assert.Equal(t, "Pay invoice", items[0].Task)
}
