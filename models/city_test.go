package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityByCode(t *testing.T) {
	city := CityByCode("khobar")
	require.NotNil(t, city)
	assert.Equal(t, "Khobar", city.Name.En)
	assert.Equal(t, "الخبر", city.Name.Ar)
	assert.NotEmpty(t, city.Districts)
}

func TestCityByCodeUnknown(t *testing.T) {
	assert.Nil(t, CityByCode("atlantis"))
	assert.Nil(t, CityByCode(""))
	// lookup is by exact code, not display name
	assert.Nil(t, CityByCode("Khobar"))
}

func TestCitiesAreBilingual(t *testing.T) {
	for _, city := range Cities {
		assert.NotEmpty(t, city.Code)
		assert.NotEmpty(t, city.Name.En, "city %s", city.Code)
		assert.NotEmpty(t, city.Name.Ar, "city %s", city.Code)
		for _, d := range city.Districts {
			assert.NotEmpty(t, d.En, "district of %s", city.Code)
			assert.NotEmpty(t, d.Ar, "district of %s", city.Code)
		}
	}
}
