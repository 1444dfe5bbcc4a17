package airports

// City groups the airports serving one metropolitan area under a
// shared metro code.
type City struct {
	Code     string
	NameRU   string
	NameEN   string
	Airports []string
}

var Cities = []City{
	{Code: "ROM", NameRU: "Рим", NameEN: "Rome", Airports: []string{"FCO", "CIA"}},
	{Code: "LON", NameRU: "Лондон", NameEN: "London", Airports: []string{"LTN", "LGW"}},
	{Code: "PAR", NameRU: "Париж", NameEN: "Paris", Airports: []string{"CDG", "ORY"}},
	{Code: "MOW", NameRU: "Москва", NameEN: "Moscow", Airports: []string{"DME", "SVO", "VKO"}},
	{Code: "MIL", NameRU: "Милан", NameEN: "Milan", Airports: []string{"MXP"}},
	{Code: "BRU", NameRU: "Брюссель", NameEN: "Brussels", Airports: []string{"BRU", "CRL"}},
	{Code: "IST", NameRU: "Стамбул", NameEN: "Istanbul", Airports: []string{"IST", "SAW"}},
}
