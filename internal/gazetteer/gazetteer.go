package gazetteer

// Package gazetteer holds the closed prefecture/city tables used by profile
// validation. The tables are fixed at build time; there is no remote lookup.

// Unset is the placeholder value for an unselected prefecture or city.
const Unset = "未設定"

var prefectureOrder = []string{
	"北海道",
	"宮城県",
	"東京都",
	"神奈川県",
	"愛知県",
	"京都府",
	"大阪府",
	"兵庫県",
	"広島県",
	"福岡県",
}

var cities = map[string][]string{
	"北海道":  {"札幌市中央区", "札幌市北区", "函館市", "旭川市", "釧路市"},
	"宮城県":  {"仙台市青葉区", "仙台市宮城野区", "石巻市"},
	"東京都":  {"千代田区", "中央区", "港区", "新宿区", "渋谷区", "世田谷区", "八王子市"},
	"神奈川県": {"横浜市中区", "横浜市西区", "川崎市川崎区", "相模原市中央区"},
	"愛知県":  {"名古屋市中区", "名古屋市東区", "豊田市", "岡崎市"},
	"京都府":  {"京都市中京区", "京都市左京区", "宇治市"},
	"大阪府":  {"大阪市北区", "大阪市中央区", "堺市堺区", "東大阪市"},
	"兵庫県":  {"神戸市中央区", "神戸市灘区", "姫路市", "西宮市"},
	"広島県":  {"広島市中区", "広島市南区", "福山市"},
	"福岡県":  {"福岡市中央区", "福岡市博多区", "北九州市小倉北区", "久留米市"},
}

// Prefectures returns the selectable prefectures in display order.
func Prefectures() []string {
	out := make([]string, len(prefectureOrder))
	copy(out, prefectureOrder)
	return out
}

// CitiesOf returns the cities belonging to the prefecture, or nil when the
// prefecture is unknown or unset.
func CitiesOf(prefecture string) []string {
	cs, ok := cities[prefecture]
	if !ok {
		return nil
	}
	out := make([]string, len(cs))
	copy(out, cs)
	return out
}

// DefaultCity returns the first city of the prefecture, or Unset when the
// prefecture has no city list.
func DefaultCity(prefecture string) string {
	cs := cities[prefecture]
	if len(cs) == 0 {
		return Unset
	}
	return cs[0]
}

// ValidPrefecture reports whether the value is a known prefecture or Unset.
func ValidPrefecture(prefecture string) bool {
	if prefecture == Unset {
		return true
	}
	_, ok := cities[prefecture]
	return ok
}

// ValidCity reports whether city belongs to prefecture. Unset is valid for
// any prefecture, and the only valid city when the prefecture itself is Unset.
func ValidCity(prefecture, city string) bool {
	if city == Unset {
		return true
	}
	for _, c := range cities[prefecture] {
		if c == city {
			return true
		}
	}
	return false
}
