package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAllExactCode(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []string{"EVN"}, r.ResolveAll("EVN"))
	assert.Equal(t, []string{"FCO"}, r.ResolveAll("fco"))
	assert.Equal(t, []string{"LTN"}, r.ResolveAll("  LTN  "))
}

func TestResolveAllMetroCode(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []string{"FCO", "CIA"}, r.ResolveAll("ROM"))
	assert.Equal(t, []string{"DME", "SVO", "VKO"}, r.ResolveAll("mow"))
	assert.Equal(t, []string{"CDG", "ORY"}, r.ResolveAll("PAR"))
}

// BRU and IST are both an airport code and a metro code. The exact
// airport code has to win outright, not merge with the metro members.
func TestResolveAllCodeBeatsMetro(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []string{"BRU"}, r.ResolveAll("BRU"))
	assert.Equal(t, []string{"IST"}, r.ResolveAll("IST"))
}

func TestResolveAllNameSubstring(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []string{"LGW"}, r.ResolveAll("Гатвик"))
	assert.Equal(t, []string{"SVO"}, r.ResolveAll("шереметьево"))
	assert.Equal(t, []string{"LGW"}, r.ResolveAll("gatwick"))

	// Every airport whose name contains the query, in table order.
	assert.Equal(t, []string{"CIA", "FCO"}, r.ResolveAll("Рим"))
	assert.Equal(t, []string{"LGW", "LTN"}, r.ResolveAll("лондон"))
}

func TestResolveAllNoMatch(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.ResolveAll(""))
	assert.Empty(t, r.ResolveAll("   "))
	assert.Empty(t, r.ResolveAll("Атлантида"))
	assert.Empty(t, r.ResolveAll("XQZ"))
}

func TestResolveOne(t *testing.T) {
	r := NewResolver()

	code, ok := r.ResolveOne("EVN")
	assert.True(t, ok)
	assert.Equal(t, "EVN", code)

	code, ok = r.ResolveOne("LON")
	assert.True(t, ok)
	assert.Equal(t, "LTN", code)

	_, ok = r.ResolveOne("nowhere")
	assert.False(t, ok)
}
