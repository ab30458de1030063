package category

// Region codes for the stamp category hierarchy.
const (
	RegionEurope       = "EU"
	RegionAsia         = "AS"
	RegionAfrica       = "AF"
	RegionLatinAmerica = "LA"
	RegionCaribbean    = "CB"
	RegionMiddleEast   = "ME"
	RegionOceania      = "OC"
	RegionBritish      = "BC"
	RegionUS           = "US"
	RegionCanada       = "CA"
	RegionGB           = "GB"
	RegionTopical      = "TP"
	RegionWorldwide    = "WW"
	RegionSpecialty    = "SP"
)

// rootCategoryID is the top of the stamp hierarchy.
const rootCategoryID = 260

// regionCategoryIDs maps region codes to their parent category ids. Parent
// categories are never valid submission targets; only leaves are. The
// table-consistency test enforces that no table entry returns one of these.
var regionCategoryIDs = map[string]int{
	RegionEurope:       4742,
	RegionAsia:         4734,
	RegionAfrica:       4740,
	RegionLatinAmerica: 4751,
	RegionCaribbean:    4796,
	RegionMiddleEast:   4750,
	RegionOceania:      4748,
	RegionBritish:      4743,
	RegionUS:           261,
	RegionCanada:       3478,
	RegionGB:           3499,
	RegionTopical:      2585,
	RegionWorldwide:    683,
	RegionSpecialty:    3461,
}

// entry is one row of the country pattern table. Patterns are matched as
// substrings against normalized input. A zero categoryID with a non-empty
// region means the caller must disambiguate further before a leaf exists.
type entry struct {
	patterns   []string
	region     string
	label      string
	categoryID int
}

// countryTable is matched top to bottom, first match wins. Order is load
// bearing: native-script and historical aliases (CEYLON, PERSIA, SIAM)
// must hit their country before any regional fallback near the bottom,
// and Romania must precede the Middle East block so that OMAN does not
// swallow it as a substring.
var countryTable = []entry{
	// Great Britain first: "NORTHERN IRELAND" would otherwise be captured
	// by the Ireland entry below. GB has sub-grades by monarch, so no leaf
	// category is returned without further caller input.
	{[]string{"GREAT BRITAIN", "UNITED KINGDOM", "NORTHERN IRELAND", "ENGLAND", "SCOTLAND", "WALES"}, RegionGB, "", 0},

	// Europe.
	{[]string{"ALBANIA", "SHQIPERIA"}, RegionEurope, "Albania", 47125},
	{[]string{"ANDORRA"}, RegionEurope, "Andorra", 47126},
	{[]string{"AUSTRIA", "OSTERREICH"}, RegionEurope, "Austria", 47128},
	{[]string{"BELARUS"}, RegionEurope, "Belarus", 47129},
	{[]string{"BELGIUM", "BELGIQUE", "BELGIE"}, RegionEurope, "Belgium", 47130},
	{[]string{"BOSNIA"}, RegionEurope, "Bosnia & Herzegovina", 47131},
	{[]string{"BULGARIA"}, RegionEurope, "Bulgaria", 47132},
	{[]string{"CROATIA", "HRVATSKA"}, RegionEurope, "Croatia", 47133},
	{[]string{"CZECHOSLOVAKIA", "CESKOSLOVENSKO", "CZECH"}, RegionEurope, "Czechoslovakia", 47134},
	{[]string{"DENMARK", "DANMARK"}, RegionEurope, "Denmark", 47135},
	{[]string{"ESTONIA", "EESTI"}, RegionEurope, "Estonia", 47136},
	{[]string{"FINLAND", "SUOMI"}, RegionEurope, "Finland", 47137},
	{[]string{"FRANCE", "REPUBLIQUE FRANCAISE"}, RegionEurope, "France", 47138},
	{[]string{"GERMANY", "DEUTSCHLAND", "DEUTSCHES REICH", "DEUTSCHE"}, RegionEurope, "Germany", 47139},
	{[]string{"GREECE", "HELLAS", "ΕΛΛΑΣ"}, RegionEurope, "Greece", 47140},
	{[]string{"HUNGARY", "MAGYAR"}, RegionEurope, "Hungary", 47141},
	{[]string{"ICELAND"}, RegionEurope, "Iceland", 47142},
	{[]string{"IRELAND", "EIRE"}, RegionEurope, "Ireland", 47143},
	{[]string{"ITALY", "ITALIA"}, RegionEurope, "Italy", 47144},
	{[]string{"LATVIA", "LATVIJA"}, RegionEurope, "Latvia", 47145},
	{[]string{"LIECHTENSTEIN"}, RegionEurope, "Liechtenstein", 47146},
	{[]string{"LITHUANIA", "LIETUVA"}, RegionEurope, "Lithuania", 47147},
	{[]string{"LUXEMBOURG"}, RegionEurope, "Luxembourg", 47148},
	{[]string{"MALTA"}, RegionEurope, "Malta", 47149},
	{[]string{"MOLDOVA"}, RegionEurope, "Moldova", 47150},
	{[]string{"MONACO"}, RegionEurope, "Monaco", 47151},
	{[]string{"MONTENEGRO"}, RegionEurope, "Montenegro", 47152},
	{[]string{"NETHERLANDS", "NEDERLAND", "HOLLAND"}, RegionEurope, "Netherlands", 47153},
	{[]string{"MACEDONIA"}, RegionEurope, "North Macedonia", 47154},
	{[]string{"NORWAY", "NORGE"}, RegionEurope, "Norway", 47155},
	{[]string{"POLAND", "POLSKA"}, RegionEurope, "Poland", 47156},
	{[]string{"PORTUGAL"}, RegionEurope, "Portugal", 47157},
	{[]string{"ROMANIA", "POSTA ROMANA"}, RegionEurope, "Romania", 47169},
	{[]string{"RUSSIA", "USSR", "CCCP", "РОССИЯ", "SOVIET"}, RegionEurope, "Russia", 47158},
	{[]string{"SAN MARINO"}, RegionEurope, "San Marino", 47159},
	{[]string{"YUGOSLAVIA", "JUGOSLAVIJA"}, RegionEurope, "Yugoslavia", 47160},
	{[]string{"SERBIA"}, RegionEurope, "Serbia", 47161},
	{[]string{"SLOVAKIA", "SLOVENSKO"}, RegionEurope, "Slovakia", 47162},
	{[]string{"SLOVENIA", "SLOVENIJA"}, RegionEurope, "Slovenia", 47163},
	{[]string{"SPAIN", "ESPANA"}, RegionEurope, "Spain", 47164},
	{[]string{"SWEDEN", "SVERIGE"}, RegionEurope, "Sweden", 47165},
	{[]string{"SWITZERLAND", "HELVETIA", "SUISSE", "SCHWEIZ"}, RegionEurope, "Switzerland", 47166},
	{[]string{"UKRAINE", "УКРАЇНА"}, RegionEurope, "Ukraine", 47167},
	{[]string{"VATICAN", "POSTE VATICANE"}, RegionEurope, "Vatican City", 47168},

	// Asia. Historical names resolve before the generic ASIA fallback.
	{[]string{"SRI LANKA", "CEYLON"}, RegionAsia, "Sri Lanka", 47640},
	{[]string{"CHINA", "中国", "CHINE", "PRC"}, RegionAsia, "China", 47641},
	{[]string{"JAPAN", "NIPPON", "日本"}, RegionAsia, "Japan", 47642},
	{[]string{"NORTH KOREA", "DPRK"}, RegionAsia, "North Korea", 47643},
	{[]string{"KOREA", "대한민국"}, RegionAsia, "South Korea", 47644},
	{[]string{"TAIWAN", "FORMOSA", "台湾"}, RegionAsia, "Taiwan", 47645},
	{[]string{"HONG KONG", "香港"}, RegionAsia, "Hong Kong", 47646},
	{[]string{"MACAU", "MACAO"}, RegionAsia, "Macau", 47647},
	{[]string{"MONGOLIA"}, RegionAsia, "Mongolia", 47648},
	{[]string{"VIETNAM", "VIET NAM"}, RegionAsia, "Vietnam", 47649},
	{[]string{"THAILAND", "SIAM"}, RegionAsia, "Thailand", 47650},
	{[]string{"INDIA"}, RegionAsia, "India", 47651},
	{[]string{"PAKISTAN"}, RegionAsia, "Pakistan", 47652},
	{[]string{"BANGLADESH"}, RegionAsia, "Bangladesh", 47653},
	{[]string{"NEPAL"}, RegionAsia, "Nepal", 47654},
	{[]string{"MYANMAR", "BURMA"}, RegionAsia, "Myanmar", 47655},
	{[]string{"MALAYSIA", "MALAYA"}, RegionAsia, "Malaysia", 47656},
	{[]string{"SINGAPORE"}, RegionAsia, "Singapore", 47657},
	{[]string{"INDONESIA", "NED. INDIE"}, RegionAsia, "Indonesia", 47658},
	{[]string{"PHILIPPINES", "PILIPINAS"}, RegionAsia, "Philippines", 47659},
	{[]string{"CAMBODIA", "KAMPUCHEA"}, RegionAsia, "Cambodia", 47660},
	{[]string{"LAOS"}, RegionAsia, "Laos", 47661},

	// Africa.
	{[]string{"EGYPT"}, RegionAfrica, "Egypt", 47830},
	{[]string{"SOUTH AFRICA", "SUID-AFRIKA"}, RegionAfrica, "South Africa", 47831},
	{[]string{"ZIMBABWE", "RHODESIA"}, RegionAfrica, "Zimbabwe", 47832},
	{[]string{"KENYA"}, RegionAfrica, "Kenya", 47833},
	{[]string{"UGANDA"}, RegionAfrica, "Uganda", 47834},
	{[]string{"TANZANIA", "TANGANYIKA"}, RegionAfrica, "Tanzania", 47835},
	{[]string{"NIGERIA"}, RegionAfrica, "Nigeria", 47836},
	{[]string{"GHANA", "GOLD COAST"}, RegionAfrica, "Ghana", 47837},
	{[]string{"ETHIOPIA", "ABYSSINIA"}, RegionAfrica, "Ethiopia", 47838},
	{[]string{"MOROCCO", "MAROC"}, RegionAfrica, "Morocco", 47839},
	{[]string{"ALGERIA", "ALGERIE"}, RegionAfrica, "Algeria", 47840},
	{[]string{"TUNISIA", "TUNISIE"}, RegionAfrica, "Tunisia", 47841},
	{[]string{"LIBYA"}, RegionAfrica, "Libya", 47842},
	{[]string{"SUDAN"}, RegionAfrica, "Sudan", 47843},
	{[]string{"CONGO"}, RegionAfrica, "Congo", 47844},
	{[]string{"MADAGASCAR"}, RegionAfrica, "Madagascar", 47845},

	// Latin America.
	{[]string{"MEXICO"}, RegionLatinAmerica, "Mexico", 47930},
	{[]string{"GUATEMALA"}, RegionLatinAmerica, "Guatemala", 47931},
	{[]string{"HONDURAS"}, RegionLatinAmerica, "Honduras", 47932},
	{[]string{"EL SALVADOR"}, RegionLatinAmerica, "El Salvador", 47933},
	{[]string{"NICARAGUA"}, RegionLatinAmerica, "Nicaragua", 47934},
	{[]string{"COSTA RICA"}, RegionLatinAmerica, "Costa Rica", 47935},
	{[]string{"PANAMA"}, RegionLatinAmerica, "Panama", 47936},
	{[]string{"COLOMBIA"}, RegionLatinAmerica, "Colombia", 47937},
	{[]string{"VENEZUELA"}, RegionLatinAmerica, "Venezuela", 47938},
	{[]string{"ECUADOR"}, RegionLatinAmerica, "Ecuador", 47939},
	{[]string{"PERU"}, RegionLatinAmerica, "Peru", 47940},
	{[]string{"BOLIVIA"}, RegionLatinAmerica, "Bolivia", 47941},
	{[]string{"BRAZIL", "BRASIL"}, RegionLatinAmerica, "Brazil", 47942},
	{[]string{"CHILE"}, RegionLatinAmerica, "Chile", 47943},
	{[]string{"ARGENTINA"}, RegionLatinAmerica, "Argentina", 47944},
	{[]string{"URUGUAY"}, RegionLatinAmerica, "Uruguay", 47945},
	{[]string{"PARAGUAY"}, RegionLatinAmerica, "Paraguay", 47946},

	// Caribbean.
	{[]string{"CUBA"}, RegionCaribbean, "Cuba", 48030},
	{[]string{"JAMAICA"}, RegionCaribbean, "Jamaica", 48031},
	{[]string{"HAITI"}, RegionCaribbean, "Haiti", 48032},
	{[]string{"DOMINICAN"}, RegionCaribbean, "Dominican Republic", 48033},
	{[]string{"TRINIDAD"}, RegionCaribbean, "Trinidad & Tobago", 48034},
	{[]string{"BARBADOS"}, RegionCaribbean, "Barbados", 48035},
	{[]string{"BAHAMAS"}, RegionCaribbean, "Bahamas", 48036},
	{[]string{"PUERTO RICO"}, RegionCaribbean, "Puerto Rico", 48037},
	{[]string{"MARTINIQUE"}, RegionCaribbean, "Martinique", 48038},
	{[]string{"GUADELOUPE"}, RegionCaribbean, "Guadeloupe", 48039},

	// Middle East. Romania is matched above, so OMAN is safe here.
	{[]string{"ISRAEL", "JERUSALEM"}, RegionMiddleEast, "Israel", 48130},
	{[]string{"PALESTINE"}, RegionMiddleEast, "Palestine", 48131},
	{[]string{"TURKEY", "TURKIYE", "OTTOMAN"}, RegionMiddleEast, "Turkey", 48132},
	{[]string{"IRAN", "PERSIA"}, RegionMiddleEast, "Iran", 48133},
	{[]string{"IRAQ"}, RegionMiddleEast, "Iraq", 48134},
	{[]string{"SYRIA", "SYRIE"}, RegionMiddleEast, "Syria", 48135},
	{[]string{"LEBANON", "LIBAN"}, RegionMiddleEast, "Lebanon", 48136},
	{[]string{"JORDAN"}, RegionMiddleEast, "Jordan", 48137},
	{[]string{"SAUDI ARABIA"}, RegionMiddleEast, "Saudi Arabia", 48138},
	{[]string{"KUWAIT"}, RegionMiddleEast, "Kuwait", 48139},
	{[]string{"UNITED ARAB EMIRATES", "UAE", "DUBAI", "ABU DHABI"}, RegionMiddleEast, "United Arab Emirates", 48140},
	{[]string{"QATAR"}, RegionMiddleEast, "Qatar", 48141},
	{[]string{"BAHRAIN"}, RegionMiddleEast, "Bahrain", 48142},
	{[]string{"YEMEN", "ADEN"}, RegionMiddleEast, "Yemen", 48143},
	{[]string{"OMAN", "MUSCAT"}, RegionMiddleEast, "Oman", 48144},
	{[]string{"AFGHANISTAN"}, RegionMiddleEast, "Afghanistan", 48145},

	// Oceania.
	{[]string{"AUSTRALIA"}, RegionOceania, "Australia", 48230},
	{[]string{"NEW ZEALAND"}, RegionOceania, "New Zealand", 48231},
	{[]string{"FIJI"}, RegionOceania, "Fiji", 48232},
	{[]string{"PAPUA NEW GUINEA", "PAPUA"}, RegionOceania, "Papua New Guinea", 48233},
	{[]string{"SAMOA"}, RegionOceania, "Samoa", 48234},
	{[]string{"TONGA"}, RegionOceania, "Tonga", 48235},
	{[]string{"SOLOMON ISLANDS"}, RegionOceania, "Solomon Islands", 48236},
	{[]string{"VANUATU", "NEW HEBRIDES"}, RegionOceania, "Vanuatu", 48237},

	// British territories.
	{[]string{"GIBRALTAR"}, RegionBritish, "Gibraltar", 48330},
	{[]string{"FALKLAND"}, RegionBritish, "Falkland Islands", 48331},
	{[]string{"BERMUDA"}, RegionBritish, "Bermuda", 48332},
	{[]string{"CAYMAN"}, RegionBritish, "Cayman Islands", 48333},
	{[]string{"BRITISH VIRGIN"}, RegionBritish, "British Virgin Islands", 48334},
	{[]string{"ST. HELENA", "ST HELENA", "SAINT HELENA"}, RegionBritish, "St. Helena", 48335},
	{[]string{"PITCAIRN"}, RegionBritish, "Pitcairn Islands", 48336},
	{[]string{"GILBERT", "ELLICE"}, RegionBritish, "Gilbert & Ellice Islands", 48337},

	// United States and Canada carry era/grade sub-categories, so no leaf
	// is selected without further caller input.
	{[]string{"UNITED STATES", "U.S.A", "USA"}, RegionUS, "", 0},
	{[]string{"CANADA"}, RegionCanada, "", 0},

	// Topical / worldwide / specialty catch-alls.
	{[]string{"TOPICAL", "THEMATIC"}, RegionTopical, "Topical Collections", 48430},
	{[]string{"WORLDWIDE", "WORLD MIX", "ALL WORLD"}, RegionWorldwide, "Worldwide Collections", 48431},
	{[]string{"CINDERELLA", "REVENUE", "SPECIMEN", "TELEGRAPH"}, RegionSpecialty, "Back of Book & Specialty", 48432},

	// Regional fallbacks when only a continent is named.
	{[]string{"EUROPE"}, RegionEurope, "European Collections", 48433},
	{[]string{"ASIA"}, RegionAsia, "Asian Collections", 48434},
	{[]string{"AFRICA"}, RegionAfrica, "African Collections", 48435},
	{[]string{"CARIBBEAN", "WEST INDIES"}, RegionCaribbean, "Caribbean Collections", 48436},
	{[]string{"LATIN AMERICA", "SOUTH AMERICA"}, RegionLatinAmerica, "Latin American Collections", 48437},
	{[]string{"MIDDLE EAST"}, RegionMiddleEast, "Middle Eastern Collections", 48438},
	{[]string{"OCEANIA", "PACIFIC ISLANDS"}, RegionOceania, "Oceania Collections", 48439},
}
