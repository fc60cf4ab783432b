package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/uifocus/core"
)

type mockComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[mockComponent]()

	_, ok := s.GetComponent(1)
	assert.False(t, ok)

	s.SetComponent(1, mockComponent{Value: 10})
	s.SetComponent(1, mockComponent{Value: 11})

	val, ok := s.GetComponent(1)
	require.True(t, ok)
	assert.Equal(t, 11, val.Value)
	assert.Equal(t, 1, s.CountEntities(), "update must not duplicate entity")
	assert.True(t, s.HasEntity(1))
}

func TestStoreIterationKeepsInsertionOrder(t *testing.T) {
	s := NewStore[mockComponent]()
	for _, e := range []core.Entity{5, 2, 9, 7} {
		s.SetComponent(e, mockComponent{})
	}

	s.RemoveEntity(2)
	assert.Equal(t, []core.Entity{5, 9, 7}, s.GetAllEntities())

	s.RemoveEntity(5)
	s.RemoveEntity(42)
	assert.Equal(t, []core.Entity{9, 7}, s.GetAllEntities())

	s.SetComponent(1, mockComponent{})
	assert.Equal(t, []core.Entity{9, 7, 1}, s.GetAllEntities())
}

func TestStoreGetAllEntitiesIsCopy(t *testing.T) {
	s := NewStore[mockComponent]()
	s.SetComponent(1, mockComponent{})
	s.SetComponent(2, mockComponent{})

	all := s.GetAllEntities()
	all[0] = 99
	assert.Equal(t, []core.Entity{1, 2}, s.GetAllEntities())
}

func TestStoreClear(t *testing.T) {
	s := NewStore[mockComponent]()
	s.SetComponent(1, mockComponent{})
	s.ClearAllComponents()
	assert.Equal(t, 0, s.CountEntities())
	assert.False(t, s.HasEntity(1))
	assert.Equal(t, mockComponent{}, s.MustGetComponent(1))
}

func TestStoreValuesFollowEntitiesAfterRemoval(t *testing.T) {
	s := NewStore[mockComponent]()
	for i := 1; i <= 6; i++ {
		s.SetComponent(core.Entity(i), mockComponent{Value: i * 10})
	}

	s.RemoveEntity(2)
	s.RemoveEntity(4)
	s.RemoveEntity(5)

	var got []int
	s.Each(func(e core.Entity, val mockComponent) {
		assert.Equal(t, int(e)*10, val.Value)
		got = append(got, val.Value)
	})
	assert.Equal(t, []int{10, 30, 60}, got)

	s.SetComponent(3, mockComponent{Value: 31})
	assert.Equal(t, 31, s.MustGetComponent(3).Value)
	assert.Equal(t, 60, s.MustGetComponent(6).Value)
}

func TestStoreRemoveZeroesVacatedSlot(t *testing.T) {
	s := NewStore[*mockComponent]()
	for i := 1; i <= 3; i++ {
		s.SetComponent(core.Entity(i), &mockComponent{Value: i})
	}

	s.RemoveEntity(1)
	require.Len(t, s.values, 2)
	assert.Nil(t, s.values[:3][2], "vacated slot cleared")
	assert.Equal(t, 2, s.MustGetComponent(2).Value)
	assert.Equal(t, 3, s.MustGetComponent(3).Value)
}
