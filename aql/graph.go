package aql

// TraversalDirection is the direction of a graph traversal relative to
// its start vertex.
type TraversalDirection int

const (
	DirectionOutbound TraversalDirection = iota
	DirectionInbound
	DirectionAny
)

// String returns the AQL keyword for the direction.
func (d TraversalDirection) String() string {
	switch d {
	case DirectionInbound:
		return "INBOUND"
	case DirectionAny:
		return "ANY"
	default:
		return "OUTBOUND"
	}
}

// traversalSpec describes a graph traversal clause: its direction, the
// depth window and whether the target name is a named graph or a raw
// edge collection. The target name itself lives on the Query node
// (source for root traversals, the child's source for joins).
type traversalSpec struct {
	direction  TraversalDirection
	minDepth   uint
	maxDepth   uint
	namedGraph bool
}
