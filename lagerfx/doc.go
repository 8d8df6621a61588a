// Package lagerfx wires lager providers into an Fx dependency injection
// graph. Each provider registers into the "lager.providers" value group; a
// downstream merge engine takes the group as []lager.Provider. Fx does not
// guarantee group ordering, so engines that stack layers by precedence must
// order the providers themselves.
package lagerfx
