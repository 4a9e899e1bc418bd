// Package catalog holds the fixed set of supported sports. The order of
// Sports() is display order and drives the card grid.
package catalog

// Sport is the static descriptive record for one supported sport.
type Sport struct {
	Name   string `json:"name"`
	Season string `json:"season"`
	Focus  string `json:"focus"`
	Color  string `json:"color"`
}

// Program holds the 16-week program parameters for a sport.
type Program struct {
	Focus           string `json:"focus"`
	BaseVolume      int    `json:"base_volume_m"` // metres per week
	SessionsPerWeek int    `json:"sessions_per_week"`
}

const cardColor = "#1e40af"

// --------------------------------------------------------------------------
// Sport registry
// --------------------------------------------------------------------------

var sports = []Sport{
	{Name: "Football", Season: "Fall", Focus: "Power & Acceleration", Color: cardColor},
	{Name: "Soccer", Season: "Fall/Spring", Focus: "Agility & Endurance", Color: cardColor},
	{Name: "Basketball", Season: "Winter", Focus: "Vertical & Quickness", Color: cardColor},
	{Name: "Baseball", Season: "Spring", Focus: "Base Running & Throwing", Color: cardColor},
	{Name: "Lacrosse", Season: "Spring", Focus: "Field Transitions", Color: cardColor},
	{Name: "Track & Field", Season: "Spring", Focus: "Pure Speed Development", Color: cardColor},
}

var programs = map[string]Program{
	"Football":      {Focus: "Power & Acceleration", BaseVolume: 320, SessionsPerWeek: 3},
	"Soccer":        {Focus: "Speed Endurance", BaseVolume: 450, SessionsPerWeek: 4},
	"Basketball":    {Focus: "Court Agility", BaseVolume: 280, SessionsPerWeek: 4},
	"Baseball":      {Focus: "Base Running", BaseVolume: 480, SessionsPerWeek: 3},
	"Lacrosse":      {Focus: "Field Transitions", BaseVolume: 380, SessionsPerWeek: 3},
	"Track & Field": {Focus: "Pure Speed", BaseVolume: 600, SessionsPerWeek: 4},
}

// Sports returns the catalog in display order. The slice is a copy.
func Sports() []Sport {
	out := make([]Sport, len(sports))
	copy(out, sports)
	return out
}

// Names returns sport names in display order.
func Names() []string {
	names := make([]string, len(sports))
	for i, s := range sports {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a sport by exact name.
func Lookup(name string) (Sport, bool) {
	for _, s := range sports {
		if s.Name == name {
			return s, true
		}
	}
	return Sport{}, false
}

// Known reports whether name is a catalog sport.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ProgramFor returns the 16-week program parameters for a sport.
func ProgramFor(name string) (Program, bool) {
	p, ok := programs[name]
	return p, ok
}
