package models

// City is a static reference entry: a bilingual city name plus its ordered
// district list. The set of city codes is closed; there is no write path.
type City struct {
	Code      string          `json:"code"`
	Name      LocalizedText   `json:"name"`
	Districts []LocalizedText `json:"districts"`
}

// Cities is the reference table, loaded once at startup. Order matters for
// dropdown rendering.
var Cities = []City{
	{
		Code: "riyadh",
		Name: LocalizedText{Ar: "الرياض", En: "Riyadh"},
		Districts: []LocalizedText{
			{Ar: "العليا", En: "Al Olaya"},
			{Ar: "الملقا", En: "Al Malqa"},
			{Ar: "النرجس", En: "Al Narjis"},
			{Ar: "حطين", En: "Hittin"},
			{Ar: "الياسمين", En: "Al Yasmin"},
		},
	},
	{
		Code: "jeddah",
		Name: LocalizedText{Ar: "جدة", En: "Jeddah"},
		Districts: []LocalizedText{
			{Ar: "الشاطئ", En: "Ash Shati"},
			{Ar: "الروضة", En: "Ar Rawdah"},
			{Ar: "الحمراء", En: "Al Hamra"},
			{Ar: "أبحر الشمالية", En: "Obhur Al Shamaliyah"},
		},
	},
	{
		Code: "dammam",
		Name: LocalizedText{Ar: "الدمام", En: "Dammam"},
		Districts: []LocalizedText{
			{Ar: "الشاطئ الغربي", En: "Ash Shati Al Gharbi"},
			{Ar: "الفيصلية", En: "Al Faisaliyah"},
			{Ar: "الريان", En: "Ar Rayyan"},
		},
	},
	{
		Code: "khobar",
		Name: LocalizedText{Ar: "الخبر", En: "Khobar"},
		Districts: []LocalizedText{
			{Ar: "العقربية", En: "Al Aqrabiyah"},
			{Ar: "الحزام الذهبي", En: "Golden Belt"},
			{Ar: "العليا", En: "Al Ulaya"},
		},
	},
	{
		Code: "makkah",
		Name: LocalizedText{Ar: "مكة المكرمة", En: "Makkah"},
		Districts: []LocalizedText{
			{Ar: "العزيزية", En: "Al Aziziyah"},
			{Ar: "الشوقية", En: "Ash Shawqiyah"},
		},
	},
	{
		Code: "madinah",
		Name: LocalizedText{Ar: "المدينة المنورة", En: "Madinah"},
		Districts: []LocalizedText{
			{Ar: "قباء", En: "Quba"},
			{Ar: "العوالي", En: "Al Awali"},
		},
	},
}

// CityByCode returns the city for a code, or nil when the code is unknown.
func CityByCode(code string) *City {
	for i := range Cities {
		if Cities[i].Code == code {
			return &Cities[i]
		}
	}
	return nil
}
