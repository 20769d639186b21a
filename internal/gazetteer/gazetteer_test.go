package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCityIsFirstEntry(t *testing.T) {
	assert.Equal(t, "札幌市中央区", DefaultCity("北海道"))
	assert.Equal(t, "千代田区", DefaultCity("東京都"))
	assert.Equal(t, Unset, DefaultCity("存在しない県"))
	assert.Equal(t, Unset, DefaultCity(Unset))
}

func TestValidCity(t *testing.T) {
	assert.True(t, ValidCity("東京都", "港区"))
	assert.False(t, ValidCity("東京都", "札幌市中央区"))
	assert.False(t, ValidCity("大阪府", "港区")) // Minato-ku is Tokyo's, not Osaka's list
	assert.True(t, ValidCity("大阪府", Unset))
	assert.True(t, ValidCity(Unset, Unset))
	assert.False(t, ValidCity(Unset, "港区"))
}

func TestEveryPrefectureHasCities(t *testing.T) {
	for _, p := range Prefectures() {
		cs := CitiesOf(p)
		assert.NotEmptyf(t, cs, "prefecture %s has no cities", p)
		assert.Equal(t, cs[0], DefaultCity(p))
		for _, c := range cs {
			assert.True(t, ValidCity(p, c))
		}
	}
}
