package list

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBackAndFrontPreserveFIFOOrder(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	require.Equal(t, 3, l.Len())
	require.Equal(t, 1, l.Front().Value)
}

func TestRemoveIsConstantTimeViaThePositionHandle(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	middle := l.PushBack(2)
	l.PushBack(3)

	v, err := l.Remove(middle)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, 2, l.Len())
	require.Equal(t, 1, l.Front().Value)
}

func TestRemoveOfAnElementNotInTheListIsAnError(t *testing.T) {
	l := NewList[int]()
	other := NewList[int]()
	e := other.PushBack(1)

	_, err := l.Remove(e)
	require.ErrorIs(t, err, ErrorListElementIsNotInTheList)
}

func TestRemoveOfNilIsAnError(t *testing.T) {
	l := NewList[int]()
	_, err := l.Remove(nil)
	require.ErrorIs(t, err, ErrorListElementIsNil)
}

func TestCleanEmptiesTheListAndReleasesPooledElements(t *testing.T) {
	pool := &sync.Pool{New: func() any { return new(Element[int]) }}
	l := NewListPooled[int](pool)
	l.PushBack(1)
	l.PushBack(2)

	l.Clean()
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
}
