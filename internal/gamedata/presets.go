package gamedata

import (
	"errors"
	"fmt"
)

// PresetDef names a board size and mine count.
type PresetDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "beginner")
	Name  string `json:"name"`  // Display name (e.g., "Beginner")
	Size  int    `json:"size"`  // Rows and columns of the square board
	Mines int    `json:"mines"` // Mines placed on the first reveal
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Default string      `json:"default"`
	Presets []PresetDef `json:"presets"`
}

// PresetRegistry holds loaded presets and provides lookup utilities.
type PresetRegistry struct {
	presets   []PresetDef
	byID      map[string]*PresetDef
	defaultID string
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// defaultID falls back to the first preset when it names none of them.
func NewPresetRegistry(presets []PresetDef, defaultID string) *PresetRegistry {
	r := &PresetRegistry{
		presets: presets,
		byID:    make(map[string]*PresetDef, len(presets)),
	}
	for i := range presets {
		r.byID[presets[i].ID] = &presets[i]
	}
	if _, ok := r.byID[defaultID]; !ok && len(presets) > 0 {
		defaultID = presets[0].ID
	}
	r.defaultID = defaultID
	return r
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(file.Presets, file.Default), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.byID[id]
}

// Lookup is GetByID with an error naming the known presets.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if p := r.byID[id]; p != nil {
		return p, nil
	}
	ids := make([]string, len(r.presets))
	for i, p := range r.presets {
		ids[i] = p.ID
	}
	return nil, fmt.Errorf("unknown preset %q (have %v)", id, ids)
}

// Default returns the preset used when none is requested.
func (r *PresetRegistry) Default() *PresetDef {
	return r.byID[r.defaultID]
}

// All returns all preset definitions in file order.
func (r *PresetRegistry) All() []PresetDef {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.presets)
}
