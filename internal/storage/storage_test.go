// Licensed under the MIT License. See LICENSE file in the project root for details.

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBackGrows(t *testing.T) {
	var s Storage[int]
	require.True(t, s.Empty())

	for i := 0; i < 10; i++ {
		s.PushBack(i)
	}
	require.Equal(t, 10, s.Len())
	require.GreaterOrEqual(t, s.Cap(), 10)
	for i := 0; i < 10; i++ {
		require.Equal(t, i, s.At(i))
	}
}

func TestPopBackZeroesSlot(t *testing.T) {
	var s Storage[*int]
	x := 42
	s.PushBack(&x)
	got := s.PopBack()
	require.Equal(t, &x, got)
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Data()[:1][0])
}

func TestInsertOneShiftsRight(t *testing.T) {
	var s Storage[int]
	for _, v := range []int{1, 2, 3, 4} {
		s.PushBack(v)
	}
	s.InsertOne(2, 99)
	require.Equal(t, []int{1, 2, 99, 3, 4}, s.Data())
}

func TestInsertSlice(t *testing.T) {
	var s Storage[int]
	for _, v := range []int{1, 2, 3} {
		s.PushBack(v)
	}
	s.InsertSlice(1, []int{7, 8, 9})
	require.Equal(t, []int{1, 7, 8, 9, 2, 3}, s.Data())
}

func TestEraseRangeShiftsLeft(t *testing.T) {
	var s Storage[int]
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.PushBack(v)
	}
	s.EraseRange(1, 3)
	require.Equal(t, []int{1, 4, 5}, s.Data())
}

func TestResizeGrowShrink(t *testing.T) {
	var s Storage[int]
	s.ResizeWithValue(3, 7)
	require.Equal(t, []int{7, 7, 7}, s.Data())

	s.Resize(1)
	require.Equal(t, []int{7}, s.Data())

	s.Resize(4)
	require.Equal(t, []int{7, 0, 0, 0}, s.Data())
}

func TestShrinkToFitReleasesCapacity(t *testing.T) {
	var s Storage[int]
	s.Reserve(100)
	s.PushBack(1)
	s.PushBack(2)
	require.Greater(t, s.Cap(), 2)

	changed := s.ShrinkToFit()
	require.True(t, changed)
	require.Equal(t, 2, s.Cap())

	changed = s.ShrinkToFit()
	require.False(t, changed)
}

func TestAssignReplacesContents(t *testing.T) {
	var s Storage[int]
	s.PushBack(1)
	s.Assign([]int{9, 8, 7, 6})
	require.Equal(t, []int{9, 8, 7, 6}, s.Data())
}

func TestGrowthIsGeometricWithMinimumFour(t *testing.T) {
	var s Storage[int]
	s.PushBack(1)
	require.Equal(t, minGrowth, s.Cap())

	for i := 0; i < minGrowth; i++ {
		s.PushBack(i)
	}
	require.Equal(t, 2*minGrowth, s.Cap())
}

func TestSwapWithExchangesBuffers(t *testing.T) {
	var a, b Storage[int]
	a.PushBack(1)
	a.PushBack(2)
	b.PushBack(9)

	a.SwapWith(&b)
	require.Equal(t, []int{9}, a.Data())
	require.Equal(t, []int{1, 2}, b.Data())
}

func TestTakeHandsOffBuffer(t *testing.T) {
	var s Storage[int]
	s.PushBack(1)
	s.PushBack(2)
	taken := s.Take()
	require.Equal(t, []int{1, 2}, taken)
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Cap())
}
