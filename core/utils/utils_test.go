package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type level int

func (l level) String() string { return "L" }

func TestToString(t *testing.T) {
	n := 7
	yes := true
	var nilInt *int

	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"Nil", nil, "", false},
		{"String", "abc", "abc", true},
		{"Int", 42, "42", true},
		{"IntPointer", &n, "7", true},
		{"NilPointer", nilInt, "", false},
		{"BoolPointer", &yes, "true", true},
		{"Float", 1.5, "1.5", true},
		{"Uint8", uint8(3), "3", true},
		{"Stringer", level(1), "L", true},
		{"Bytes", []byte("x"), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToString(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestQuery_PreservesOrder(t *testing.T) {
	var nilInt *int
	q := new(Query).
		Add("Name", "Iron Sword").
		Add("Rarity", 2).
		Add("MinStack", nilInt).
		Add("IsCorrupted", false)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "Name=Iron+Sword&Rarity=2&IsCorrupted=false", q.Encode())
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "TradeListing/Filter", WithQuery("TradeListing/Filter", nil))
	assert.Equal(t, "TradeListing/Filter", WithQuery("TradeListing/Filter", &Query{}))
	assert.Equal(t, "Player/Leaderboard?count=50&skip=0",
		WithQuery("Player/Leaderboard", new(Query).Add("count", 50).Add("skip", 0)))
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "John%20Doe", PathSegment("John Doe"))
	assert.Equal(t, "12", PathSegment(12))
}
