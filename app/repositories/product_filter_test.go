package repositories

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFilter(t *testing.T) {
	values := url.Values{
		"category": {"Clubes"},
		"team":     {"Real Madrid"},
		"size":     {"M"},
		"search":   {"camisa"},
		"isNew":    {"true"},
		"minPrice": {"100"},
		"maxPrice": {"500.50"},
		"sortBy":   {"price_asc"},
	}

	f := ParseProductFilter(values)

	require.NotNil(t, f.Category)
	assert.Equal(t, "Clubes", *f.Category)
	require.NotNil(t, f.Team)
	assert.Equal(t, "Real Madrid", *f.Team)
	require.NotNil(t, f.Size)
	assert.Equal(t, "M", *f.Size)
	require.NotNil(t, f.Search)
	assert.Equal(t, "camisa", *f.Search)
	require.NotNil(t, f.IsNew)
	assert.True(t, *f.IsNew)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 100.0, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 500.50, *f.MaxPrice)
	assert.Equal(t, SortPriceAsc, f.SortBy)
}

func TestParseProductFilterEmpty(t *testing.T) {
	f := ParseProductFilter(url.Values{})

	assert.Nil(t, f.Category)
	assert.Nil(t, f.Team)
	assert.Nil(t, f.Size)
	assert.Nil(t, f.Search)
	assert.Nil(t, f.IsNew)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Empty(t, f.Conditions())
}

func TestParseProductFilterDropsMalformedValues(t *testing.T) {
	values := url.Values{
		"minPrice": {"abc"},
		"maxPrice": {"NaN"},
		"isNew":    {"yes"},
	}

	f := ParseProductFilter(values)

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.IsNew)
}

func TestParseProductFilterIsNewFalse(t *testing.T) {
	f := ParseProductFilter(url.Values{"isNew": {"false"}})

	require.NotNil(t, f.IsNew)
	assert.False(t, *f.IsNew)
}

func TestConditionsCategoryCaseInsensitive(t *testing.T) {
	category := "clubes"
	f := ProductFilter{Category: &category}

	conds := f.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "LOWER(category) = LOWER(?)", conds[0].Expr)
	assert.Equal(t, []any{"clubes"}, conds[0].Args)
}

func TestConditionsSizeMatchesWholeTokensOnly(t *testing.T) {
	size := "M"
	f := ProductFilter{Size: &size}

	conds := f.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "(sizes = ? OR sizes LIKE ? OR sizes LIKE ? OR sizes LIKE ?)", conds[0].Expr)
	assert.Equal(t, []any{"M", "M,%", "%,M,%", "%,M"}, conds[0].Args)
}

func TestConditionsEscapesLikeMetacharacters(t *testing.T) {
	size := "M_special%"
	f := ProductFilter{Size: &size}

	conds := f.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, []any{"M_special%", `M\_special\%,%`, `%,M\_special\%,%`, `%,M\_special\%`}, conds[0].Args)
}

func TestConditionsSearch(t *testing.T) {
	search := "Brasil"
	f := ProductFilter{Search: &search}

	conds := f.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", conds[0].Expr)
	assert.Equal(t, []any{"%brasil%", "%brasil%"}, conds[0].Args)
}

func TestConditionsOrderIsStable(t *testing.T) {
	category := "Clubes"
	team := "PSG"
	isNew := true
	minPrice := 100.0
	maxPrice := 400.0
	f := ProductFilter{
		Category: &category,
		Team:     &team,
		IsNew:    &isNew,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	}

	conds := f.Conditions()
	require.Len(t, conds, 5)
	assert.Equal(t, "LOWER(category) = LOWER(?)", conds[0].Expr)
	assert.Equal(t, "LOWER(team) = LOWER(?)", conds[1].Expr)
	assert.Equal(t, "is_new = ?", conds[2].Expr)
	assert.Equal(t, "price >= ?", conds[3].Expr)
	assert.Equal(t, "price <= ?", conds[4].Expr)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{SortPriceAsc, "price ASC"},
		{SortPriceDesc, "price DESC"},
		{SortNewest, "created_at DESC"},
		{"", "created_at DESC"},
		{"bogus", "created_at DESC"},
	}

	for _, tt := range tests {
		f := ProductFilter{SortBy: tt.sortBy}
		assert.Equal(t, tt.want, f.OrderClause())
	}
}
