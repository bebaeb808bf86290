package vendus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapListPrecedence(t *testing.T) {
	bare := []any{"a", "b"}
	assert.Equal(t, bare, UnwrapList(bare))

	// "data" wins over "items"
	wrapped := map[string]any{
		"data":  []any{"d"},
		"items": []any{"i"},
	}
	assert.Equal(t, []any{"d"}, UnwrapList(wrapped))

	assert.Equal(t, []any{"i"}, UnwrapList(map[string]any{"items": []any{"i"}}))

	lone := map[string]any{"id": 1.0}
	assert.Equal(t, []any{lone}, UnwrapList(lone))

	assert.Nil(t, UnwrapList(nil))
	assert.Nil(t, UnwrapList("texto"))
}

func TestNumAcceptsNumericStrings(t *testing.T) {
	m := map[string]any{"price": "1.20", "stock": 3.0}

	v, ok := Num(m, "price")
	assert.True(t, ok)
	assert.Equal(t, 1.2, v)

	v, ok = Num(m, "stock_total", "stock")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = Num(m, "missing")
	assert.False(t, ok)
}

func TestExtractIDShapes(t *testing.T) {
	assert.Equal(t, 7.0, ExtractID(map[string]any{"id": 7.0}))
	assert.Equal(t, "x1", ExtractID(map[string]any{"data": map[string]any{"id": "x1"}}))
	assert.Equal(t, 3.0, ExtractID(map[string]any{"order": map[string]any{"id": 3.0}}))
	assert.Nil(t, ExtractID(map[string]any{"data": "nada"}))
	assert.Nil(t, ExtractID(nil))
}

func TestIDKeyNormalizesShapes(t *testing.T) {
	assert.Equal(t, "1", IDKey(1.0))
	assert.Equal(t, "1", IDKey("1"))
	assert.Equal(t, "1.5", IDKey(1.5))
	assert.Equal(t, "", IDKey(nil))
}
