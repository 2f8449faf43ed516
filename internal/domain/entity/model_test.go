package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	cases := map[string]EntityType{
		"offer":         TypeOffer,
		"Offer":         TypeOffer,
		"service_order": TypeServiceOrder,
		"ServiceOrder":  TypeServiceOrder,
		"service-order": TypeServiceOrder,
		"Dispatch":      TypeDispatch,
		"installation":  TypeInstallation,
		"SALE":          TypeSale,
		"SERVICE_ORDER": TypeServiceOrder,
		"SERVICE-ORDER": TypeServiceOrder,
		"serviceOrder":  TypeServiceOrder,
		"Service Order": TypeServiceOrder,
	}
	for in, want := range cases {
		got, err := ParseEntityType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEntityType("invoice")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
	_, err = ParseEntityType("")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestWireNameRoundTrip(t *testing.T) {
	for _, typ := range WorkflowOrder {
		got, err := ParseEntityType(WireName(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
}

func TestEntityRefValid(t *testing.T) {
	assert.True(t, NewRef(TypeSale, 2).Valid())
	assert.False(t, NewRef(TypeSale, 0).Valid())
	assert.False(t, NewRef(TypeSale, -4).Valid())
	assert.False(t, NewRef("invoice", 2).Valid())
	assert.Equal(t, "sale#2", NewRef(TypeSale, 2).String())
}

func TestEntityRefAsMapKey(t *testing.T) {
	seen := map[EntityRef]bool{}
	seen[NewRef(TypeSale, 2)] = true
	assert.True(t, seen[EntityRef{EntityType: TypeSale, EntityID: 2}])
	assert.False(t, seen[NewRef(TypeOffer, 2)])
}

func TestSortAndGroupByWorkflow(t *testing.T) {
	refs := []EntityRef{
		NewRef(TypeDispatch, 4),
		NewRef(TypeOffer, 1),
		NewRef(TypeServiceOrder, 3),
		NewRef(TypeOffer, 0),
		NewRef(TypeSale, 2),
	}
	sorted := SortByWorkflow(refs)
	assert.Equal(t, []EntityRef{
		NewRef(TypeOffer, 0),
		NewRef(TypeOffer, 1),
		NewRef(TypeSale, 2),
		NewRef(TypeServiceOrder, 3),
		NewRef(TypeDispatch, 4),
	}, sorted)
	assert.Equal(t, NewRef(TypeDispatch, 4), refs[0], "input must not be reordered")

	grouped := GroupByWorkflow(refs)
	assert.Len(t, grouped[TypeOffer], 2)
	assert.Len(t, grouped[TypeDispatch], 1)
	assert.Empty(t, grouped[TypeInstallation])
}

func TestParseRefList(t *testing.T) {
	refs, err := ParseRefList("dispatch:9, ServiceOrder:3")
	require.NoError(t, err)
	assert.Equal(t, []EntityRef{NewRef(TypeDispatch, 9), NewRef(TypeServiceOrder, 3)}, refs)

	refs, err = ParseRefList("")
	require.NoError(t, err)
	assert.Nil(t, refs)

	_, err = ParseRefList("dispatch")
	assert.Error(t, err)
	_, err = ParseRefList("dispatch:abc")
	assert.Error(t, err)
	_, err = ParseRefList("dispatch:0")
	assert.Error(t, err)
}
