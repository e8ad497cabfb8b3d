package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Reconcile(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		visible  []int
		selected []int
		want     []int
	}{
		{
			name:     "deselect visible keeps off-page",
			initial:  []int{5, 9},
			visible:  []int{5, 6, 7, 8},
			selected: []int{6},
			want:     []int{6, 9},
		},
		{
			name:     "empty incoming clears only visible",
			initial:  []int{1, 2, 30},
			visible:  []int{1, 2, 3},
			selected: nil,
			want:     []int{30},
		},
		{
			name:     "ignores selected ids not visible",
			initial:  nil,
			visible:  []int{1, 2},
			selected: []int{2, 99},
			want:     []int{2},
		},
		{
			name:     "nothing visible changes nothing",
			initial:  []int{4},
			visible:  nil,
			selected: []int{5},
			want:     []int{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.Reconcile(tt.initial, tt.initial)

			s.Reconcile(tt.visible, tt.selected)

			assert.Equal(t, tt.want, s.IDs())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestSelection_NoFalseEntries(t *testing.T) {
	s := NewSelection()
	s.Reconcile([]int{1, 2, 3}, []int{1, 2, 3})
	s.Reconcile([]int{1, 2, 3}, []int{2})

	snap := s.Snapshot()
	assert.Equal(t, map[int]bool{2: true}, snap)
	for _, v := range snap {
		assert.True(t, v)
	}
}

func TestSelection_Clear(t *testing.T) {
	s := NewSelection()
	s.Reconcile([]int{1, 2}, []int{1, 2})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.Empty(t, s.IDs())
}
