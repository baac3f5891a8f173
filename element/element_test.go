package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/element"
)

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "ordinal", element.Ordinal.String())
	assert.Equal(t, "lexical", element.Lexical.String())
	assert.Equal(t, "unknown", element.Domain(42).String())
}

func TestComparatorFor_Ordinal(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	require.NotNil(t, cmp)
	assert.Equal(t, element.Ordinal, cmp.Domain())

	a, b := element.NewOrdinal(1), element.NewOrdinal(2)
	assert.Equal(t, element.Less, cmp.Compare(a, b))
	assert.Equal(t, element.Greater, cmp.Compare(b, a))
	assert.Equal(t, element.Equal, cmp.Compare(a, a))
}

func TestComparatorFor_Lexical(t *testing.T) {
	cmp := element.ComparatorFor(element.Lexical)
	require.NotNil(t, cmp)
	assert.Equal(t, element.Lexical, cmp.Domain())

	a, b := element.NewLexical("apple"), element.NewLexical("pear")
	assert.Equal(t, element.Less, cmp.Compare(a, b))
	assert.Equal(t, element.Greater, cmp.Compare(b, a))
	assert.Equal(t, element.Equal, cmp.Compare(b, b))
}

func TestComparatorFor_UnknownDomain(t *testing.T) {
	assert.Nil(t, element.ComparatorFor(element.Domain(42)))
}

func TestConverters_RoundTrip(t *testing.T) {
	nums := []float64{3, 1, 2}
	vals := element.FromFloats(nums)
	back, err := element.Floats(vals)
	require.NoError(t, err)
	assert.Equal(t, nums, back)

	strs := []string{"b", "a", "c"}
	svals := element.FromStrings(strs)
	sback, err := element.Strings(svals)
	require.NoError(t, err)
	assert.Equal(t, strs, sback)
}

func TestConverters_DomainMismatch(t *testing.T) {
	vals := element.FromInts([]int{1, 2})
	_, err := element.Strings(vals)
	assert.ErrorIs(t, err, element.ErrDomainMismatch)

	svals := element.FromStrings([]string{"a"})
	_, err = element.Floats(svals)
	assert.ErrorIs(t, err, element.ErrDomainMismatch)
}

func TestHomogeneous(t *testing.T) {
	vals := element.FromInts([]int{1, 2, 3})
	require.NoError(t, element.Homogeneous(vals, element.Ordinal))

	// declared domain disagrees with every value
	err := element.Homogeneous(vals, element.Lexical)
	assert.ErrorIs(t, err, element.ErrDomainMismatch)

	// one foreign value in the middle
	mixed := []element.Value{element.NewOrdinal(1), element.NewLexical("x"), element.NewOrdinal(2)}
	err = element.Homogeneous(mixed, element.Ordinal)
	assert.ErrorIs(t, err, element.ErrDomainMismatch)

	// unknown declared domain
	err = element.Homogeneous(vals, element.Domain(42))
	assert.ErrorIs(t, err, element.ErrUnknownDomain)

	// empty slice is homogeneous in any valid domain
	require.NoError(t, element.Homogeneous(nil, element.Lexical))
}

func TestCloneValues_Owned(t *testing.T) {
	vals := element.FromInts([]int{1, 2, 3})
	clone := element.CloneValues(vals)
	require.Equal(t, vals, clone)

	clone[0] = element.NewOrdinal(99)
	assert.Equal(t, float64(1), vals[0].Num(), "clone must not alias the source")

	assert.Nil(t, element.CloneValues(nil))
}

func TestIsSorted(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	assert.True(t, element.IsSorted(element.FromInts([]int{1, 2, 2, 3}), cmp))
	assert.True(t, element.IsSorted(element.FromInts([]int{7}), cmp))
	assert.True(t, element.IsSorted(nil, cmp))
	assert.False(t, element.IsSorted(element.FromInts([]int{2, 1}), cmp))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "42", element.NewOrdinal(42).String())
	assert.Equal(t, "2.5", element.NewOrdinal(2.5).String())
	assert.Equal(t, "pear", element.NewLexical("pear").String())
}
