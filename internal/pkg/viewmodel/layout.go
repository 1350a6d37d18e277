package viewmodel

// Layout carries the data every rendered page shares.
type Layout struct {
	Title string
	Year  int
	Dev   bool
}

type TeamMember struct {
	Name string
	Role string
}

// AboutPage is the view model for the about page.
type AboutPage struct {
	Layout
	Team []TeamMember
}

// Team returns the members shown on the about page.
func Team() []TeamMember {
	return []TeamMember{
		{Name: "Alice", Role: "Data Engineer"},
		{Name: "Bob", Role: "ML Engineer"},
		{Name: "Carol", Role: "Analytics Lead"},
	}
}
