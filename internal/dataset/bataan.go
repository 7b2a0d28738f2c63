package dataset

// Location declares a node with its map placement.
type Location struct {
	Name  string
	X     int
	Y     int
	Color string
}

// Route declares an undirected connection between two locations.
type Route struct {
	From     string
	To       string
	Distance int
}

const defaultColor = "blue"

// Bataan returns the city and municipality network of Bataan province.
func Bataan() ([]Location, []Route) {
	locations := []Location{
		{Name: "Dinalupihan", X: 330, Y: 15, Color: defaultColor},
		{Name: "Orani", X: 460, Y: 60, Color: defaultColor},
		{Name: "Samal", X: 465, Y: 105, Color: defaultColor},
		{Name: "Abucay", X: 458, Y: 160, Color: defaultColor},
		{Name: "Balanga", X: 460, Y: 200, Color: defaultColor},
		{Name: "Pilar", X: 470, Y: 225, Color: defaultColor},
		{Name: "Orion", X: 480, Y: 265, Color: defaultColor},
		{Name: "Limay", X: 485, Y: 320, Color: defaultColor},
		{Name: "Home", X: 490, Y: 400, Color: defaultColor},
		{Name: "Mariveles", X: 350, Y: 420, Color: defaultColor},
		{Name: "Bagac", X: 200, Y: 280, Color: defaultColor},
		{Name: "Morong", X: 80, Y: 185, Color: defaultColor},
		{Name: "Hermosa", X: 280, Y: 40, Color: defaultColor},
	}

	routes := []Route{
		{From: "Dinalupihan", To: "Hermosa", Distance: 15},
		{From: "Dinalupihan", To: "Orani", Distance: 17},
		{From: "Dinalupihan", To: "Orion", Distance: 35},
		{From: "Orani", To: "Samal", Distance: 26},
		{From: "Samal", To: "Abucay", Distance: 5},
		{From: "Abucay", To: "Balanga", Distance: 5},
		{From: "Balanga", To: "Pilar", Distance: 2},
		{From: "Pilar", To: "Orion", Distance: 9},
		{From: "Orion", To: "Limay", Distance: 8},
		{From: "Limay", To: "Home", Distance: 14},
		{From: "Home", To: "Mariveles", Distance: 12},
		{From: "Mariveles", To: "Bagac", Distance: 44},
		{From: "Bagac", To: "Morong", Distance: 25},
		{From: "Bagac", To: "Pilar", Distance: 26},
		{From: "Morong", To: "Hermosa", Distance: 48},
	}

	return locations, routes
}
