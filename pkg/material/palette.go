package material

import "fmt"

// Palette is an arena of materials shared by many primitives.
// Primitives store an ID instead of owning their material.
type Palette struct {
	materials []Material
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{}
}

// Add stores a material and returns its handle
func (p *Palette) Add(m Material) ID {
	p.materials = append(p.materials, m)
	return ID(len(p.materials) - 1)
}

// Get returns the material for id.
// It panics on an id that was not produced by Add, which is a programming error.
func (p *Palette) Get(id ID) Material {
	if int(id) < 0 || int(id) >= len(p.materials) {
		panic(fmt.Sprintf("material: unknown id %d (palette has %d materials)", id, len(p.materials)))
	}
	return p.materials[id]
}

// Set replaces the material stored under id
func (p *Palette) Set(id ID, m Material) {
	p.materials[id] = m
}

// Len returns the number of stored materials
func (p *Palette) Len() int {
	return len(p.materials)
}
