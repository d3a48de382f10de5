// Package geometry provides plain value types with computed properties,
// such as Rectangle with its Area.
package geometry
