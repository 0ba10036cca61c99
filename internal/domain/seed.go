package domain

// SeedProperties - начальный справочник, которым заполняется пустое хранилище.
// Возвращает новый срез при каждом вызове.
func SeedProperties() []Property {
	return []Property{
		{Name: "Moustache Udaipur Luxuria", City: "Udaipur", Lat: 24.5764, Lon: 73.6802},
		{Name: "Moustache Udaipur", City: "Udaipur", Lat: 24.5800, Lon: 73.6833},
		{Name: "Moustache Udaipur Verandah", City: "Udaipur", Lat: 24.5854, Lon: 73.7125},
		{Name: "Moustache Jaipur", City: "Jaipur", Lat: 26.9124, Lon: 75.7873},
		{Name: "Moustache Jaisalmer", City: "Jaisalmer", Lat: 26.9157, Lon: 70.9083},
		{Name: "Moustache Jodhpur", City: "Jodhpur", Lat: 26.2967, Lon: 73.0351},
		{Name: "Moustache Agra", City: "Agra", Lat: 27.1591, Lon: 78.0422},
		{Name: "Moustache Delhi", City: "Delhi", Lat: 28.6448, Lon: 77.2167},
		{Name: "Moustache Delhi Hauz Khas", City: "Delhi", Lat: 28.5494, Lon: 77.2001},
		{Name: "Moustache Rishikesh Luxuria", City: "Rishikesh", Lat: 30.1290, Lon: 78.3210},
		{Name: "Moustache Rishikesh Riverside Resort", City: "Rishikesh", Lat: 30.1158, Lon: 78.3206},
		{Name: "Moustache Varanasi", City: "Varanasi", Lat: 25.3109, Lon: 83.0107},
		{Name: "Moustache Goa Luxuria", City: "Goa", Lat: 15.5889, Lon: 73.7405},
		{Name: "Moustache Koksar Luxuria", City: "Koksar", Lat: 32.4108, Lon: 77.2400},
		{Name: "Moustache Daman", City: "Daman", Lat: 20.4142, Lon: 72.8328},
		{Name: "Moustache Pushkar", City: "Pushkar", Lat: 26.4897, Lon: 74.5511},
		{Name: "Moustache Manali", City: "Manali", Lat: 32.2574, Lon: 77.1872},
		{Name: "Moustache Bhimtal", City: "Bhimtal", Lat: 29.3446, Lon: 79.5603},
		{Name: "Moustache Srinagar", City: "Srinagar", Lat: 34.0837, Lon: 74.7973},
		{Name: "Moustache Ranthambore", City: "Ranthambore", Lat: 26.0173, Lon: 76.5026},
		{Name: "Moustache Shoja", City: "Shoja", Lat: 31.5624, Lon: 77.3686},
	}
}

// KnownCities - словарь канонических названий городов для исправления опечаток.
// Содержит города без объектов (Khajuraho, Coimbatore, Sissu): они распознаются,
// но разрешаются через геокодер и поиск по радиусу.
func KnownCities() []string {
	return []string{
		"Udaipur", "Jaipur", "Jaisalmer", "Jodhpur", "Agra", "Delhi", "Rishikesh",
		"Varanasi", "Goa", "Koksar", "Daman", "Pushkar", "Khajuraho",
		"Manali", "Bhimtal", "Srinagar", "Ranthambore", "Coimbatore", "Shoja", "Sissu",
	}
}
