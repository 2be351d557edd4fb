package directory

import "sort"

// Locations maps each supported city to its areas.
var Locations = map[string][]string{
	"Harare": {
		"CBD", "Avondale", "Belgravia", "Borrowdale", "Chisipite", "Eastlea",
		"Glen Lorne", "Greendale", "Highlands", "Hillside", "Mabelreign",
		"Milton Park", "Mount Pleasant", "Newlands", "Waterfalls", "Westgate",
		"Highfield", "Glen View", "Budiriro",
	},
	"Bulawayo": {
		"CBD", "Belmont", "Bradfield", "Burnside", "Famona", "Hillcrest",
		"Hillside", "Kumalo", "Matsheumhlope", "Morningside", "North End",
		"Paddonhurst", "Suburbs",
	},
	"Mutare": {
		"CBD", "Darlington", "Fairbridge Park", "Florida", "Greenside",
		"Morningside", "Palmerston", "Yeovil",
	},
	"Gweru": {
		"CBD", "Kopje", "Lundi Park", "Mkoba", "Nashville", "Ridgemont", "Southdowns",
	},
	"Kwekwe":         {"CBD", "Amaveni", "Masasa Park", "Mbizo", "Redcliff"},
	"Masvingo":       {"CBD", "Mucheke", "Rhodene", "Rujeko"},
	"Chinhoyi":       {"CBD", "Hunyani", "Mzari"},
	"Kadoma":         {"CBD", "Eiffel Flats", "Rimuka"},
	"Marondera":      {"CBD", "Cherutombo", "Paradise"},
	"Victoria Falls": {"Town Centre", "Chinotimba", "Low Density Suburbs"},
	"Hwange":         {"Town Centre", "Baobab", "Empumalanga"},
	"Beitbridge":     {"Town Centre", "Dulivhadzimu"},
	"Bindura":        {"CBD", "Chipadze", "Aerodrome"},
}

// Cities returns the supported city names in alphabetical order.
func Cities() []string {
	cities := make([]string, 0, len(Locations))
	for city := range Locations {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
