package model

import "fmt"

// SeedCatalog returns the records inserted into an empty collection on startup.
// A fresh slice is returned on every call.
func SeedCatalog() []Planet {
	return []Planet{
		{
			ID:          0,
			Name:        "Sun",
			Description: "The Sun is the star at the center of the Solar System. It is a nearly perfect ball of hot plasma, heated to incandescence by nuclear fusion reactions in its core.",
			Image:       "images/sun.png",
			Velocity:    "220 km/s",
			Distance:    "0 km",
		},
		{
			ID:          1,
			Name:        "Mercury",
			Description: "Mercury is the smallest planet in the Solar System and the closest to the Sun. Its orbit around the Sun takes 87.97 Earth days, the shortest of all the planets.",
			Image:       "images/mercury.png",
			Velocity:    "47 km/s",
			Distance:    "58 million km",
		},
		{
			ID:          2,
			Name:        "Venus",
			Description: "Venus is the second planet from the Sun. It is a rocky planet with the densest atmosphere of all the rocky bodies in the Solar System.",
			Image:       "images/venus.png",
			Velocity:    "35 km/s",
			Distance:    "108 million km",
		},
		{
			ID:          3,
			Name:        "Earth",
			Description: "Earth is the third planet from the Sun and the only astronomical object known to harbor life. About 71 percent of its surface is covered by ocean.",
			Image:       "images/earth.png",
			Velocity:    "30 km/s",
			Distance:    "150 million km",
		},
		{
			ID:          4,
			Name:        "Mars",
			Description: "Mars is the fourth planet from the Sun. The surface of Mars is orange-red because it is covered in iron(III) oxide dust, giving it the nickname the Red Planet.",
			Image:       "images/mars.png",
			Velocity:    "24 km/s",
			Distance:    "228 million km",
		},
		{
			ID:          5,
			Name:        "Jupiter",
			Description: "Jupiter is the fifth planet from the Sun and the largest in the Solar System. It is a gas giant with a mass more than two and a half times that of all the other planets combined.",
			Image:       "images/jupiter.png",
			Velocity:    "13 km/s",
			Distance:    "778 million km",
		},
		{
			ID:          6,
			Name:        "Saturn",
			Description: "Saturn is the sixth planet from the Sun and the second largest in the Solar System, after Jupiter. It is a gas giant with a prominent ring system.",
			Image:       "images/saturn.png",
			Velocity:    "9.7 km/s",
			Distance:    "1.4 billion km",
		},
		{
			ID:          7,
			Name:        "Uranus",
			Description: "Uranus is the seventh planet from the Sun. It is a gaseous cyan-coloured ice giant whose axis of rotation is tilted almost into its orbital plane.",
			Image:       "images/uranus.png",
			Velocity:    "6.8 km/s",
			Distance:    "2.9 billion km",
		},
		{
			ID:          8,
			Name:        "Neptune",
			Description: "Neptune is the eighth and farthest known planet from the Sun. It is the fourth largest planet in the Solar System by diameter and the densest giant planet.",
			Image:       "images/neptune.png",
			Velocity:    "5.4 km/s",
			Distance:    "4.5 billion km",
		},
	}
}

// ValidateCatalog checks every record and rejects duplicate ids.
func ValidateCatalog(planets []Planet) error {
	seen := make(map[int]struct{}, len(planets))
	for i := range planets {
		if err := GetValidator().Struct(&planets[i]); err != nil {
			detail := FormatValidationError(err)
			return fmt.Errorf("planet %d: %s", planets[i].ID, detail.Message)
		}
		if _, dup := seen[planets[i].ID]; dup {
			return fmt.Errorf("planet %d: duplicate id", planets[i].ID)
		}
		seen[planets[i].ID] = struct{}{}
	}
	return nil
}
