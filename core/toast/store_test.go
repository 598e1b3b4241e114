package toast_test

import (
	"testing"
	"time"

	"pot-portal/core/toast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PushDefaults(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	id := s.Push("Saved", toast.Options{})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, id)
	assert.Equal(t, toast.Item{ID: 1, Message: "Saved", Type: toast.TypeSuccess, Duration: toast.DefaultDuration}, items[0])
}

func TestStore_ConfiguredDuration(t *testing.T) {
	s := toast.NewStore(toast.Config{DurationMs: 1500})
	defer s.Close()

	s.Push("x", toast.Options{})
	assert.Equal(t, 1500*time.Millisecond, s.Items()[0].Duration)
}

func TestStore_NewestFirstAndIncreasingIDs(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	first := s.Push("first", toast.Options{Type: toast.TypeInfo})
	second := s.Push("second", toast.Options{Type: toast.TypeWarning})

	assert.Equal(t, first+1, second)
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Message)
	assert.Equal(t, toast.TypeWarning, items[0].Type)
	assert.Equal(t, "first", items[1].Message)
}

func TestStore_AutoDismiss(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	s.Push("short", toast.Options{Duration: 10 * time.Millisecond})
	s.Push("sticky", toast.Options{Duration: toast.NoDismiss})

	assert.Eventually(t, func() bool {
		items := s.Items()
		return len(items) == 1 && items[0].Message == "sticky"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, time.Duration(0), s.Items()[0].Duration)
}

func TestStore_Remove(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	a := s.Push("a", toast.Options{})
	b := s.Push("b", toast.Options{})

	s.Remove(a)
	s.Remove(999)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b, items[0].ID)
}

func TestStore_Subscribe(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	var lengths []int
	unsubscribe := s.Subscribe(func(items []toast.Item) { lengths = append(lengths, len(items)) })

	id := s.Push("a", toast.Options{Duration: toast.NoDismiss})
	s.Remove(id)
	unsubscribe()
	s.Push("b", toast.Options{})

	assert.Equal(t, []int{0, 1, 0}, lengths)
}

func TestStore_ItemsIsACopy(t *testing.T) {
	s := toast.NewStore(toast.Config{})
	defer s.Close()

	s.Push("a", toast.Options{})
	items := s.Items()
	items[0].Message = "changed"

	assert.Equal(t, "a", s.Items()[0].Message)
}
