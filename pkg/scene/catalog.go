package scene

import (
	"fmt"

	"github.com/df07/go-museum-raytracer/pkg/core"
)

// ObjectCatalog is the read-only view of externally managed scene objects
// that the tracer needs. Index bounds are the implementation's concern.
type ObjectCatalog interface {
	Count() int
	Position(index int) core.Vec3
	DiffuseColor(index int) core.Vec3
}

// Exhibit is a museum object as the tracer and CLI know it. Meshes live
// elsewhere; only placement and colors matter here.
type Exhibit struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Position    core.Vec3 `json:"position"`
	Ambient     core.Vec3 `json:"ambient"`
	Diffuse     core.Vec3 `json:"diffuse"`
	Specular    core.Vec3 `json:"specular"`
}

// MuseumCatalog is an in-memory ObjectCatalog of exhibits
type MuseumCatalog struct {
	exhibits []Exhibit
}

// NewMuseumCatalog creates a catalog holding a copy of exhibits
func NewMuseumCatalog(exhibits ...Exhibit) *MuseumCatalog {
	return &MuseumCatalog{exhibits: append([]Exhibit(nil), exhibits...)}
}

// Add appends an exhibit
func (c *MuseumCatalog) Add(e Exhibit) {
	c.exhibits = append(c.exhibits, e)
}

// Remove deletes the exhibit at index. Out of range indices are ignored.
func (c *MuseumCatalog) Remove(index int) {
	if index < 0 || index >= len(c.exhibits) {
		return
	}
	c.exhibits = append(c.exhibits[:index], c.exhibits[index+1:]...)
}

// Exhibit returns the exhibit at index
func (c *MuseumCatalog) Exhibit(index int) (Exhibit, bool) {
	if index < 0 || index >= len(c.exhibits) {
		return Exhibit{}, false
	}
	return c.exhibits[index], true
}

// Count returns the number of exhibits
func (c *MuseumCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.exhibits)
}

// Position returns the world position of the exhibit at index
func (c *MuseumCatalog) Position(index int) core.Vec3 {
	return c.exhibits[index].Position
}

// DiffuseColor returns the diffuse color of the exhibit at index
func (c *MuseumCatalog) DiffuseColor(index int) core.Vec3 {
	return c.exhibits[index].Diffuse
}

// DisplayName returns the exhibit name, or "Object N" (1-based) if it has none
func (c *MuseumCatalog) DisplayName(index int) string {
	if e, ok := c.Exhibit(index); ok && e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("Object %d", index+1)
}

// Names returns the display names of all exhibits in order
func (c *MuseumCatalog) Names() []string {
	names := make([]string, len(c.exhibits))
	for i := range c.exhibits {
		names[i] = c.DisplayName(i)
	}
	return names
}

// FindClosest returns the index of the exhibit nearest to position that is
// strictly closer than maxDistance, or -1
func (c *MuseumCatalog) FindClosest(position core.Vec3, maxDistance float64) int {
	closest := -1
	closestDistance := maxDistance
	for i, e := range c.exhibits {
		if d := position.Subtract(e.Position).Length(); d < closestDistance {
			closestDistance = d
			closest = i
		}
	}
	return closest
}

// DefaultExhibits returns the permanent collection of the gallery, each
// standing on the floor with its center one unit up
func DefaultExhibits() []Exhibit {
	return []Exhibit{
		{
			Name:        "Erkek Heykeli | Man Statue",
			Description: "Bronze, Roman Period, 1st Century AD. Found at Adana Karatas.",
			Position:    core.NewVec3(-6, 1, 0),
			Ambient:     core.NewVec3(0.25, 0.15, 0.05),
			Diffuse:     core.NewVec3(0.70, 0.45, 0.20),
			Specular:    core.NewVec3(0.8, 0.6, 0.4),
		},
		{
			Name:        "Figurlu Mezar Tasi | Tombstones with Figure",
			Description: "Stone, Roman Period, 2nd-3rd Century AD.",
			Position:    core.NewVec3(6, 1, 0),
			Ambient:     core.NewVec3(0.28, 0.25, 0.22),
			Diffuse:     core.NewVec3(0.80, 0.75, 0.70),
			Specular:    core.Splat(0.4),
		},
		{
			Name:        "Akhilleus Lahdi | Sarcophagus of Achilles",
			Description: "Attic-type Achilles sarcophagus of the Roman Imperial Period, AD 170-190.",
			Position:    core.NewVec3(-6, 1, -6),
			Ambient:     core.Splat(0.15),
			Diffuse:     core.Splat(0.45),
			Specular:    core.Splat(0.2),
		},
		{
			Name:        "Arabali Tarhunda Heykeli | Tarhunta in Cart Sculpture",
			Description: "Basalt and limestone, Late Hittite Period, 8th Century BC.",
			Position:    core.NewVec3(6, 1, -6),
			Ambient:     core.Splat(0.15),
			Diffuse:     core.Splat(0.45),
			Specular:    core.Splat(0.2),
		},
		{
			Name:        "Lahit | Sarcophagus",
			Description: "Marble, Roman Period, 3rd Century AD.",
			Position:    core.NewVec3(0, 1, 6),
			Ambient:     core.NewVec3(0.30, 0.28, 0.25),
			Diffuse:     core.NewVec3(0.80, 0.77, 0.75),
			Specular:    core.Splat(0.5),
		},
	}
}
