package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibar/internal/domain"
)

func words(ws ...string) []domain.SearchResult {
	out := make([]domain.SearchResult, len(ws))
	for i, w := range ws {
		out[i] = domain.SearchResult{Word: w, Method: domain.MethodPrefix, Score: 0.9}
	}
	return out
}

func TestMoveClampsToBounds(t *testing.T) {
	s := NewService(6)
	s.Reset(words("serene", "serenity", "sergeant"))

	s.Move(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())

	s.Move(DirectionDown)
	s.Move(DirectionDown)
	assert.Equal(t, 2, s.GetCursor())

	s.Move(DirectionDown)
	assert.Equal(t, 2, s.GetCursor(), "clamped at the last row")
}

func TestMoveOnEmptyIsNoop(t *testing.T) {
	s := NewService(6)
	s.Reset(nil)

	assert.False(t, s.Move(DirectionDown))
	assert.Equal(t, 0, s.GetCursor())

	_, ok := s.SelectCurrent()
	assert.False(t, ok)
}

func TestResetAlwaysReturnsToZero(t *testing.T) {
	s := NewService(6)
	s.Reset(words("a1", "a2", "a3", "a4"))
	s.Move(DirectionDown)
	s.Move(DirectionDown)
	require.Equal(t, 2, s.GetCursor())

	// index 2 would still be valid in the new list
	s.Reset(words("b1", "b2", "b3", "b4", "b5"))
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestMoveScrollsIntoView(t *testing.T) {
	s := NewService(2)
	s.Reset(words("a", "b", "c", "d"))

	assert.False(t, s.Move(DirectionDown))
	assert.True(t, s.Move(DirectionDown))
	assert.Equal(t, 1, s.GetViewportOffset())

	start, end := s.Visible()
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	s.Move(DirectionUp)
	assert.True(t, s.Move(DirectionUp))
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestSelectByPointer(t *testing.T) {
	s := NewService(6)
	s.Reset(words("serene", "serenity", "sergeant"))

	assert.True(t, s.SelectByPointer(1))
	r, ok := s.SelectCurrent()
	require.True(t, ok)
	assert.Equal(t, "serenity", r.Word)

	assert.False(t, s.SelectByPointer(7))
	assert.False(t, s.SelectByPointer(-1))
	assert.Equal(t, 1, s.GetCursor())
}

func TestEnterIsLayered(t *testing.T) {
	s := NewService(6)

	assert.Equal(t, ActionNone, s.Enter("", "", true))
	assert.Equal(t, ActionNone, s.Enter("", "   ", true))
	assert.Equal(t, ActionLookupRaw, s.Enter("", "zyzzyva", true))

	s.Reset(words("serene"))
	assert.Equal(t, ActionSelect, s.Enter("", "ser", true))
	assert.Equal(t, ActionAccept, s.Enter("serene", "ser", true))
}

func TestEnterSkipsHiddenList(t *testing.T) {
	s := NewService(6)
	s.Reset(words("serene", "serenity"))
	s.Move(DirectionDown)

	assert.Equal(t, ActionLookupRaw, s.Enter("", "ser", false))
	assert.Equal(t, ActionNone, s.Enter("", "", false))
	assert.Equal(t, ActionAccept, s.Enter("serene", "ser", false))
}

func TestSetViewportHeightKeepsCursorVisible(t *testing.T) {
	s := NewService(5)
	s.Reset(words("a", "b", "c", "d", "e"))
	for i := 0; i < 4; i++ {
		s.Move(DirectionDown)
	}
	require.Equal(t, 0, s.GetViewportOffset())

	s.SetViewportHeight(2)
	assert.Equal(t, 3, s.GetViewportOffset())
	assert.Equal(t, 2, s.GetViewportHeight())
}
