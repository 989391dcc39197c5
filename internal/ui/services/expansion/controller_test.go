package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/ui/services/events"
)

func openWithSearch(t *testing.T, text string) *Controller {
	t.Helper()
	c := NewController(nil)
	require.True(t, c.OpenFromInput())
	require.True(t, c.SetSearch(text))
	return c
}

func TestStartsClosed(t *testing.T) {
	c := NewController(nil)
	assert.False(t, c.IsOpen())
	assert.Equal(t, "", c.Search())
}

func TestTypingWhileClosedIsIgnored(t *testing.T) {
	c := NewController(nil)
	assert.False(t, c.SetSearch("abc"))
	assert.Equal(t, "", c.Search())
}

func TestOpenFromInputDiscardsStaleSearch(t *testing.T) {
	c := openWithSearch(t, "ban")
	c.Escape()
	require.Equal(t, "ban", c.Search())

	assert.True(t, c.OpenFromInput())
	assert.True(t, c.IsOpen())
	assert.Equal(t, "", c.Search())
}

func TestOpenFromInputWhileOpenKeepsSearch(t *testing.T) {
	c := openWithSearch(t, "ban")
	assert.False(t, c.OpenFromInput())
	assert.Equal(t, "ban", c.Search())
}

func TestToggle(t *testing.T) {
	c := openWithSearch(t, "ban")
	c.Escape()

	// toggle from closed keeps the stale text
	c.Toggle()
	assert.True(t, c.IsOpen())
	assert.Equal(t, "ban", c.Search())

	// toggle from open closes and clears
	c.Toggle()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "", c.Search())
}

func TestDismissClearsSearch(t *testing.T) {
	c := openWithSearch(t, "x")
	c.Dismiss()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "", c.Search())
}

func TestEscapePolicies(t *testing.T) {
	c := openWithSearch(t, "x")
	c.Escape()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "x", c.Search())

	c = openWithSearch(t, "x")
	c.SetEscapePolicy(EscapeClearsSearch)
	c.Escape()
	assert.Equal(t, "", c.Search())
}

func TestCloseAfterSelectKeepsSearch(t *testing.T) {
	c := openWithSearch(t, "x")
	c.CloseAfterSelect()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "x", c.Search())
}

func TestOpenFromKeyboardKeepsSearch(t *testing.T) {
	c := openWithSearch(t, "x")
	c.Escape()
	assert.True(t, c.OpenFromKeyboard())
	assert.Equal(t, "x", c.Search())
	assert.False(t, c.OpenFromKeyboard())
}

func TestPublishesTransitions(t *testing.T) {
	bus := events.NewBus()
	var got []interface{}
	bus.SubscribeAll(func(e interface{}) { got = append(got, e) })

	c := NewController(bus)
	c.OpenFromInput()
	c.SetSearch("a")
	c.Dismiss()
	c.Dismiss()

	assert.Equal(t, []interface{}{
		OpenedEvent{Search: ""},
		SearchChangedEvent{Old: "", New: "a"},
		ClosedEvent{Reason: ReasonOutside},
		SearchChangedEvent{Old: "a", New: ""},
	}, got)
}

func TestParseEscapePolicy(t *testing.T) {
	assert.Equal(t, EscapeClearsSearch, ParseEscapePolicy("clear_search"))
	assert.Equal(t, EscapeKeepsSearch, ParseEscapePolicy("keep_search"))
}
