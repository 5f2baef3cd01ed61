package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseFiltersDefaults(t *testing.T) {
	f := ParseFilters(url.Values{})
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestParseFiltersDefensive(t *testing.T) {
	v := url.Values{}
	v.Set("page", "abc")
	v.Set("limit", "-5")
	f := ParseFilters(v)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	v = url.Values{}
	v.Set("page", "0")
	v.Set("limit", "0")
	f = ParseFilters(v)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	v = url.Values{}
	v.Set("limit", "500")
	f = ParseFilters(v)
	assert.Equal(t, MaxLimit, f.Limit)

	v = url.Values{}
	v.Set("minPrice", "not-a-number")
	v.Set("bedrooms", "two")
	f = ParseFilters(v)
	q := f.Build()
	_, hasPrice := q["price"]
	_, hasBedrooms := q["bedrooms"]
	assert.False(t, hasPrice)
	assert.False(t, hasBedrooms)
}

func TestBuildAlwaysExcludesInactive(t *testing.T) {
	q := ParseFilters(url.Values{}).Build()
	assert.Equal(t, true, q["isActive"])
}

func TestBuildExactMatchFilters(t *testing.T) {
	v := url.Values{}
	v.Set("type", "villa")
	v.Set("purpose", "sale")
	v.Set("usage", "Residential")
	q := ParseFilters(v).Build()
	assert.Equal(t, "villa", q["type"])
	assert.Equal(t, "sale", q["purpose"])
	assert.Equal(t, "Residential", q["usage"])
}

func TestBuildPriceRangeMerges(t *testing.T) {
	v := url.Values{}
	v.Set("minPrice", "2000000")
	v.Set("maxPrice", "8000000")
	q := ParseFilters(v).Build()

	price, ok := q["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, float64(2000000), price["$gte"])
	assert.Equal(t, float64(8000000), price["$lte"])
}

func TestBuildSingleBoundRange(t *testing.T) {
	v := url.Values{}
	v.Set("maxArea", "500")
	q := ParseFilters(v).Build()

	area, ok := q["area"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, float64(500), area["$lte"])
	_, hasGte := area["$gte"]
	assert.False(t, hasGte)
}

func TestBuildBedroomsIsMinimumThreshold(t *testing.T) {
	v := url.Values{}
	v.Set("bedrooms", "3")
	v.Set("bathrooms", "2")
	q := ParseFilters(v).Build()

	assert.Equal(t, bson.M{"$gte": 3}, q["bedrooms"])
	assert.Equal(t, bson.M{"$gte": 2}, q["bathrooms"])
}

func TestBuildZeroBedroomsStillConstrains(t *testing.T) {
	v := url.Values{}
	v.Set("bedrooms", "0")
	q := ParseFilters(v).Build()
	assert.Equal(t, bson.M{"$gte": 0}, q["bedrooms"])
}

func TestBuildCityMatchesEitherRepresentation(t *testing.T) {
	v := url.Values{}
	v.Set("city", "Khobar")
	q := ParseFilters(v).Build()

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"city": "khobar"}, or[0])
	assert.Equal(t, bson.M{"location.en": bson.M{"$regex": "Khobar", "$options": "i"}}, or[1])
}

func TestBuildFreeTextSearch(t *testing.T) {
	v := url.Values{}
	v.Set("q", "sea view")
	q := ParseFilters(v).Build()

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 5)
}

func TestBuildCityAndSearchCombineWithAnd(t *testing.T) {
	v := url.Values{}
	v.Set("city", "jeddah")
	v.Set("q", "villa")
	q := ParseFilters(v).Build()

	_, hasOr := q["$or"]
	assert.False(t, hasOr)
	and, ok := q["$and"].(bson.A)
	require.True(t, ok)
	assert.Len(t, and, 2)
}

func TestBuildQuotesRegexMetacharacters(t *testing.T) {
	v := url.Values{}
	v.Set("q", "a.b*")
	q := ParseFilters(v).Build()

	or := q["$or"].(bson.A)
	first := or[0].(bson.M)["title.en"].(bson.M)
	assert.Equal(t, `a\.b\*`, first["$regex"])
}

func TestFindOptionsDefaults(t *testing.T) {
	opts := ParseFilters(url.Values{}).FindOptions()
	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestFindOptionsSortAndWindow(t *testing.T) {
	v := url.Values{}
	v.Set("sortBy", "price")
	v.Set("sortOrder", "asc")
	v.Set("page", "3")
	v.Set("limit", "20")
	opts := ParseFilters(v).FindOptions()

	assert.Equal(t, bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)
	assert.Equal(t, int64(40), *opts.Skip)
	assert.Equal(t, int64(20), *opts.Limit)
}

func TestFindOptionsUnknownSortFieldFallsBack(t *testing.T) {
	v := url.Values{}
	v.Set("sortBy", "$where")
	opts := ParseFilters(v).FindOptions()
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
}

func TestFindOptionsSortHasStableTiebreaker(t *testing.T) {
	// two records with equal prices must keep one order across page windows
	v := url.Values{}
	v.Set("sortBy", "price")
	opts := ParseFilters(v).FindOptions()

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 2)
	assert.Equal(t, "_id", sort[1].Key)
}
