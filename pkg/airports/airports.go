package airports

// Airport is one row of the static reference table.
type Airport struct {
	IATA   string
	NameRU string
	NameEN string
}

// Airports lists every destination the Wizzair timetable can be asked
// about. Display names come in the two languages the bot accepts.
var Airports = []Airport{
	{IATA: "ACE", NameRU: "Лансароте", NameEN: "Lanzarote"},
	{IATA: "ADB", NameRU: "Измир", NameEN: "Izmir"},
	{IATA: "AGP", NameRU: "Малага", NameEN: "Malaga"},
	{IATA: "ALC", NameRU: "Аликанте", NameEN: "Alicante"},
	{IATA: "AMM", NameRU: "Амман", NameEN: "Amman"},
	{IATA: "AMS", NameRU: "Амстердам", NameEN: "Amsterdam"},
	{IATA: "ARN", NameRU: "Стокгольм", NameEN: "Stockholm"},
	{IATA: "ATH", NameRU: "Афины", NameEN: "Athens"},
	{IATA: "AUH", NameRU: "Абу-Даби", NameEN: "Abu Dhabi"},
	{IATA: "AYT", NameRU: "Анталья", NameEN: "Antalya"},
	{IATA: "BAH", NameRU: "Манама", NameEN: "Manama"},
	{IATA: "BCN", NameRU: "Барселона", NameEN: "Barcelona"},
	{IATA: "BEG", NameRU: "Белград", NameEN: "Belgrade"},
	{IATA: "BER", NameRU: "Берлин", NameEN: "Berlin"},
	{IATA: "BEY", NameRU: "Бейрут", NameEN: "Beirut"},
	{IATA: "BFS", NameRU: "Белфаст", NameEN: "Belfast"},
	{IATA: "BGO", NameRU: "Берген", NameEN: "Bergen"},
	{IATA: "BJV", NameRU: "Бодрум", NameEN: "Bodrum"},
	{IATA: "BOD", NameRU: "Бордо", NameEN: "Bordeaux"},
	{IATA: "BOJ", NameRU: "Бургас", NameEN: "Burgas"},
	{IATA: "BRE", NameRU: "Бремен", NameEN: "Bremen"},
	{IATA: "BRI", NameRU: "Бари", NameEN: "Bari"},
	{IATA: "BRQ", NameRU: "Брно", NameEN: "Brno"},
	{IATA: "BRU", NameRU: "Брюссель", NameEN: "Brussels"},
	{IATA: "BTS", NameRU: "Братислава", NameEN: "Bratislava"},
	{IATA: "BUD", NameRU: "Будапешт", NameEN: "Budapest"},
	{IATA: "CAI", NameRU: "Каир", NameEN: "Cairo"},
	{IATA: "CDG", NameRU: "Париж (Шарль-де-Голль)", NameEN: "Paris (Charles de Gaulle)"},
	{IATA: "CFU", NameRU: "Корфу", NameEN: "Corfu"},
	{IATA: "CGN", NameRU: "Кёльн", NameEN: "Cologne"},
	{IATA: "CIA", NameRU: "Рим (Чампино)", NameEN: "Rome (Ciampino)"},
	{IATA: "CLJ", NameRU: "Клуж-Напока", NameEN: "Cluj-Napoca"},
	{IATA: "CMN", NameRU: "Касабланка", NameEN: "Casablanca"},
	{IATA: "CPH", NameRU: "Копенгаген", NameEN: "Copenhagen"},
	{IATA: "CRA", NameRU: "Крайова", NameEN: "Craiova"},
	{IATA: "CRL", NameRU: "Брюссель (Шарлеруа)", NameEN: "Brussels (Charleroi)"},
	{IATA: "CTA", NameRU: "Катания", NameEN: "Catania"},
	{IATA: "DBV", NameRU: "Дубровник", NameEN: "Dubrovnik"},
	{IATA: "DLM", NameRU: "Даламан", NameEN: "Dalaman"},
	{IATA: "DME", NameRU: "Москва (Домодедово)", NameEN: "Moscow (Domodedovo)"},
	{IATA: "DOH", NameRU: "Доха", NameEN: "Doha"},
	{IATA: "DRS", NameRU: "Дрезден", NameEN: "Dresden"},
	{IATA: "DUS", NameRU: "Дюссельдорф", NameEN: "Dusseldorf"},
	{IATA: "DXB", NameRU: "Дубай", NameEN: "Dubai"},
	{IATA: "EDI", NameRU: "Эдинбург", NameEN: "Edinburgh"},
	{IATA: "EIN", NameRU: "Эйндховен", NameEN: "Eindhoven"},
	{IATA: "ESB", NameRU: "Анкара", NameEN: "Ankara"},
	{IATA: "EVN", NameRU: "Ереван", NameEN: "Yerevan"},
	{IATA: "FAO", NameRU: "Фару", NameEN: "Faro"},
	{IATA: "FCO", NameRU: "Рим (Фьюмичино)", NameEN: "Rome (Fiumicino)"},
	{IATA: "FNC", NameRU: "Фуншал", NameEN: "Funchal"},
	{IATA: "FRA", NameRU: "Франкфурт", NameEN: "Frankfurt"},
	{IATA: "FUE", NameRU: "Фуэртевентура", NameEN: "Fuerteventura"},
	{IATA: "GDN", NameRU: "Гданьск", NameEN: "Gdansk"},
	{IATA: "GOT", NameRU: "Гётеборг", NameEN: "Gothenburg"},
	{IATA: "GVA", NameRU: "Женева", NameEN: "Geneva"},
	{IATA: "GYD", NameRU: "Баку", NameEN: "Baku"},
	{IATA: "HAJ", NameRU: "Ганновер", NameEN: "Hannover"},
	{IATA: "HAM", NameRU: "Гамбург", NameEN: "Hamburg"},
	{IATA: "HEL", NameRU: "Хельсинки", NameEN: "Helsinki"},
	{IATA: "HER", NameRU: "Ираклион", NameEN: "Heraklion"},
	{IATA: "HRG", NameRU: "Хургада", NameEN: "Hurghada"},
	{IATA: "IAS", NameRU: "Яссы", NameEN: "Iasi"},
	{IATA: "IBZ", NameRU: "Ибица", NameEN: "Ibiza"},
	{IATA: "INI", NameRU: "Ниш", NameEN: "Nis"},
	{IATA: "IST", NameRU: "Стамбул", NameEN: "Istanbul"},
	{IATA: "JED", NameRU: "Джидда", NameEN: "Jeddah"},
	{IATA: "JTR", NameRU: "Санторини", NameEN: "Santorini"},
	{IATA: "KBP", NameRU: "Киев", NameEN: "Kyiv"},
	{IATA: "KIV", NameRU: "Кишинев", NameEN: "Chisinau"},
	{IATA: "KRK", NameRU: "Краков", NameEN: "Krakow"},
	{IATA: "KRR", NameRU: "Краснодар", NameEN: "Krasnodar"},
	{IATA: "KSC", NameRU: "Кошице", NameEN: "Kosice"},
	{IATA: "KTW", NameRU: "Катовице", NameEN: "Katowice"},
	{IATA: "KUN", NameRU: "Каунас", NameEN: "Kaunas"},
	{IATA: "KUT", NameRU: "Кутаиси", NameEN: "Kutaisi"},
	{IATA: "KWI", NameRU: "Эль-Кувейт", NameEN: "Kuwait City"},
	{IATA: "KZN", NameRU: "Казань", NameEN: "Kazan"},
	{IATA: "LCA", NameRU: "Ларнака", NameEN: "Larnaca"},
	{IATA: "LED", NameRU: "Санкт-Петербург", NameEN: "Saint Petersburg"},
	{IATA: "LEJ", NameRU: "Лейпциг", NameEN: "Leipzig"},
	{IATA: "LGW", NameRU: "Лондон (Гатвик)", NameEN: "London (Gatwick)"},
	{IATA: "LIS", NameRU: "Лиссабон", NameEN: "Lisbon"},
	{IATA: "LJU", NameRU: "Любляна", NameEN: "Ljubljana"},
	{IATA: "LPA", NameRU: "Гран-Канария", NameEN: "Gran Canaria"},
	{IATA: "LPL", NameRU: "Ливерпуль", NameEN: "Liverpool"},
	{IATA: "LTN", NameRU: "Лондон (Лутон)", NameEN: "London (Luton)"},
	{IATA: "LUZ", NameRU: "Люблин", NameEN: "Lublin"},
	{IATA: "LWO", NameRU: "Львов", NameEN: "Lviv"},
	{IATA: "MAD", NameRU: "Мадрид", NameEN: "Madrid"},
	{IATA: "MCT", NameRU: "Маскат", NameEN: "Muscat"},
	{IATA: "MLA", NameRU: "Мальта", NameEN: "Malta"},
	{IATA: "MOW", NameRU: "Москва", NameEN: "Moscow"},
	{IATA: "MRS", NameRU: "Марсель", NameEN: "Marseille"},
	{IATA: "MSQ", NameRU: "Минск", NameEN: "Minsk"},
	{IATA: "MUC", NameRU: "Мюнхен", NameEN: "Munich"},
	{IATA: "MXP", NameRU: "Милан (Мальпенса)", NameEN: "Milan (Malpensa)"},
	{IATA: "NAP", NameRU: "Неаполь", NameEN: "Naples"},
	{IATA: "NCE", NameRU: "Ницца", NameEN: "Nice"},
	{IATA: "NUE", NameRU: "Нюрнберг", NameEN: "Nuremberg"},
	{IATA: "ODS", NameRU: "Одесса", NameEN: "Odessa"},
	{IATA: "OPO", NameRU: "Порту", NameEN: "Porto"},
	{IATA: "ORY", NameRU: "Париж (Орли)", NameEN: "Paris (Orly)"},
	{IATA: "OSL", NameRU: "Осло", NameEN: "Oslo"},
	{IATA: "OTP", NameRU: "Бухарест", NameEN: "Bucharest"},
	{IATA: "PDL", NameRU: "Понта-Делгада", NameEN: "Ponta Delgada"},
	{IATA: "PFO", NameRU: "Пафос", NameEN: "Paphos"},
	{IATA: "PLQ", NameRU: "Паланга", NameEN: "Palanga"},
	{IATA: "PMI", NameRU: "Пальма-де-Майорка", NameEN: "Palma de Mallorca"},
	{IATA: "PMO", NameRU: "Палермо", NameEN: "Palermo"},
	{IATA: "POZ", NameRU: "Познань", NameEN: "Poznan"},
	{IATA: "PRG", NameRU: "Прага", NameEN: "Prague"},
	{IATA: "PRN", NameRU: "Приштина", NameEN: "Pristina"},
	{IATA: "PUY", NameRU: "Пула", NameEN: "Pula"},
	{IATA: "RAK", NameRU: "Марракеш", NameEN: "Marrakesh"},
	{IATA: "RHO", NameRU: "Родос", NameEN: "Rhodes"},
	{IATA: "RIX", NameRU: "Рига", NameEN: "Riga"},
	{IATA: "RUH", NameRU: "Эр-Рияд", NameEN: "Riyadh"},
	{IATA: "RZE", NameRU: "Жешув", NameEN: "Rzeszow"},
	{IATA: "SAW", NameRU: "Стамбул (Сабиха Гекчен)", NameEN: "Istanbul (Sabiha Gokcen)"},
	{IATA: "SBZ", NameRU: "Сибиу", NameEN: "Sibiu"},
	{IATA: "SJJ", NameRU: "Сараево", NameEN: "Sarajevo"},
	{IATA: "SKG", NameRU: "Салоники", NameEN: "Thessaloniki"},
	{IATA: "SKP", NameRU: "Скопье", NameEN: "Skopje"},
	{IATA: "SOF", NameRU: "София", NameEN: "Sofia"},
	{IATA: "SPU", NameRU: "Сплит", NameEN: "Split"},
	{IATA: "SSH", NameRU: "Шарм-эль-Шейх", NameEN: "Sharm El Sheikh"},
	{IATA: "STR", NameRU: "Штутгарт", NameEN: "Stuttgart"},
	{IATA: "SVO", NameRU: "Москва (Шереметьево)", NameEN: "Moscow (Sheremetyevo)"},
	{IATA: "SVX", NameRU: "Екатеринбург", NameEN: "Yekaterinburg"},
	{IATA: "TBS", NameRU: "Тбилиси", NameEN: "Tbilisi"},
	{IATA: "TFS", NameRU: "Тенерифе", NameEN: "Tenerife"},
	{IATA: "TGD", NameRU: "Подгорица", NameEN: "Podgorica"},
	{IATA: "TIA", NameRU: "Тирана", NameEN: "Tirana"},
	{IATA: "TKU", NameRU: "Турку", NameEN: "Turku"},
	{IATA: "TLL", NameRU: "Таллин", NameEN: "Tallinn"},
	{IATA: "TLV", NameRU: "Тель-Авив", NameEN: "Tel Aviv"},
	{IATA: "TRD", NameRU: "Тронхейм", NameEN: "Trondheim"},
	{IATA: "TSR", NameRU: "Тимишоара", NameEN: "Timisoara"},
	{IATA: "VAR", NameRU: "Варна", NameEN: "Varna"},
	{IATA: "VCE", NameRU: "Венеция", NameEN: "Venice"},
	{IATA: "VIE", NameRU: "Вена", NameEN: "Vienna"},
	{IATA: "VKO", NameRU: "Москва (Внуково)", NameEN: "Moscow (Vnukovo)"},
	{IATA: "VNO", NameRU: "Вильнюс", NameEN: "Vilnius"},
	{IATA: "WAW", NameRU: "Варшава", NameEN: "Warsaw"},
	{IATA: "WRO", NameRU: "Вроцлав", NameEN: "Wroclaw"},
	{IATA: "ZAD", NameRU: "Задар", NameEN: "Zadar"},
	{IATA: "ZAG", NameRU: "Загреб", NameEN: "Zagreb"},
	{IATA: "ZRH", NameRU: "Цюрих", NameEN: "Zurich"},
}
