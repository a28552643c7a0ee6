// Package placement populates a pop-up from a declarative list of item
// descriptors.
//
// A descriptor is a positional sequence of up to six fields:
//
//	factory, isWidget, position, kind, name, parentName
//
// Only the factory is required; omitted trailing fields take their defaults
// (true, 0, KindRegular, "", ""). Compile validates one descriptor and yields
// a Record or a Code. Resolver.Place mounts a Record into the container named
// by its parent (or the latest-active container when the parent is empty),
// registers the node under its name and, for container kinds, moves the
// latest-active cursor. Resolver.PlaceAll runs a whole list, turning each
// failing line into a Diagnostic and carrying on with the next one.
package placement
