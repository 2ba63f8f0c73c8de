// Package aql builds ArangoDB AQL statements from immutable query
// values and pages query results through batched cursors. Queries are
// assembled with chained builder calls and rendered to text with
// AQLString; execution goes through the Executor capability so the
// transport stays pluggable.
package aql

import (
	"fmt"
	"strings"
)

// SortDirection is the direction of a SORT key. The empty value renders
// as ascending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type sortKey struct {
	field     string
	direction SortDirection
}

type limitSpec struct {
	count     uint
	offset    uint
	hasOffset bool
}

type itemKind int

const (
	itemFilter itemKind = iota
	itemPrune
	itemSort
	itemLimit
)

// queryItem is one clause of a query node. Clauses render in the order
// they were added: FILTER, SORT and LIMIT are not reordered because
// their relative position changes result semantics (a LIMIT before a
// FILTER limits before filtering).
type queryItem struct {
	kind     itemKind
	filter   Filter
	sortKeys []sortKey
	limit    limitSpec
}

type rootTraversal struct {
	traversalSpec
	startVertex string
}

type joinedQuery struct {
	traversalSpec
	child *Query
}

// Query is a buildable AQL statement over one collection, optionally
// extended with graph traversal joins. All builder methods return a new
// value; a Query is never mutated in place, so rendering the same value
// twice yields byte-identical text.
//
// Joins form a strictly linear chain: each node owns at most one child,
// and each nesting level binds exactly one new iteration variable.
type Query struct {
	source   string
	with     []string
	graph    *rootTraversal
	items    []queryItem
	distinct bool
	join     *joinedQuery
}

// New starts a query over the given collection.
//
// Example:
//
//	New("Companies").AQLString()
//	// Renders: FOR a in Companies return a
func New(collection string) Query {
	return Query{source: collection}
}

// Traversal starts a root-level graph query walking edges of the given
// edge collection from a concrete start vertex.
//
// Example:
//
//	Traversal(DirectionOutbound, 1, 2, "ChildOf", "Users/123").AQLString()
//	// Renders: FOR a in 1..2 OUTBOUND 'Users/123' ChildOf return a
func Traversal(direction TraversalDirection, minDepth, maxDepth uint, edgeCollection, vertexID string) Query {
	return Query{
		source: edgeCollection,
		graph: &rootTraversal{
			traversalSpec: traversalSpec{direction: direction, minDepth: minDepth, maxDepth: maxDepth},
			startVertex:   vertexID,
		},
	}
}

// NamedTraversal starts a root-level graph query walking a pre-declared
// named graph from a concrete start vertex.
//
// Example:
//
//	NamedTraversal(DirectionAny, 1, 2, "SomeGraph", "Users/123").AQLString()
//	// Renders: FOR a in 1..2 ANY 'Users/123' GRAPH SomeGraph return a
func NamedTraversal(direction TraversalDirection, minDepth, maxDepth uint, graphName, vertexID string) Query {
	q := Traversal(direction, minDepth, maxDepth, graphName, vertexID)
	q.graph.namedGraph = true
	return q
}

// Outbound is shorthand for Traversal(DirectionOutbound, ...).
func Outbound(minDepth, maxDepth uint, edgeCollection, vertexID string) Query {
	return Traversal(DirectionOutbound, minDepth, maxDepth, edgeCollection, vertexID)
}

// Inbound is shorthand for Traversal(DirectionInbound, ...).
func Inbound(minDepth, maxDepth uint, edgeCollection, vertexID string) Query {
	return Traversal(DirectionInbound, minDepth, maxDepth, edgeCollection, vertexID)
}

// WithCollections prepends a `WITH c1, c2` declaration to the rendered
// statement, declaring the collections the traversal may read.
func (q Query) WithCollections(collections ...string) Query {
	with := make([]string, len(q.with), len(q.with)+len(collections))
	copy(with, q.with)
	q.with = append(with, collections...)
	return q
}

// Filter appends a FILTER clause bound to this node's iteration
// variable. An empty filter is dropped at render time.
func (q Query) Filter(filter Filter) Query {
	return q.pushItem(queryItem{kind: itemFilter, filter: filter})
}

// Prune appends a PRUNE clause. Pruning stops traversal expansion
// beyond matching vertices, so it is only meaningful on a query that is
// the target of a join; on a plain collection scan the clause renders
// but the database will reject it.
func (q Query) Prune(filter Filter) Query {
	return q.pushItem(queryItem{kind: itemPrune, filter: filter})
}

// Sort appends a sort key. An empty direction sorts ascending.
// Consecutive Sort calls merge into a single comma-joined SORT clause.
//
// Example:
//
//	New("Companies").Sort("name", SortAsc).Sort("age", SortDesc).AQLString()
//	// Renders: FOR a in Companies SORT a.name ASC, a.age DESC return a
func (q Query) Sort(field string, direction SortDirection) Query {
	if direction == "" {
		direction = SortAsc
	}
	key := sortKey{field: field, direction: direction}
	if n := len(q.items); n > 0 && q.items[n-1].kind == itemSort {
		items := make([]queryItem, n)
		copy(items, q.items)
		last := items[n-1]
		keys := make([]sortKey, len(last.sortKeys), len(last.sortKeys)+1)
		copy(keys, last.sortKeys)
		last.sortKeys = append(keys, key)
		items[n-1] = last
		q.items = items
		return q
	}
	return q.pushItem(queryItem{kind: itemSort, sortKeys: []sortKey{key}})
}

// Limit appends a LIMIT clause restricting this node to `count`
// results.
func (q Query) Limit(count uint) Query {
	return q.pushItem(queryItem{kind: itemLimit, limit: limitSpec{count: count}})
}

// LimitWithOffset appends a LIMIT clause skipping `offset` results
// before returning `count`.
func (q Query) LimitWithOffset(offset, count uint) Query {
	return q.pushItem(queryItem{kind: itemLimit, limit: limitSpec{count: count, offset: offset, hasOffset: true}})
}

// Distinct makes the statement return only distinct documents. The flag
// applies to the whole statement: the final `return` carries DISTINCT
// when any node of the chain set it.
func (q Query) Distinct() Query {
	q.distinct = true
	return q
}

// JoinOutbound nests a child query as an outbound graph traversal
// starting from this node's iteration variable. When namedGraph is true
// the child's collection names a pre-declared graph, otherwise an edge
// collection.
//
// Example:
//
//	New("Companies").JoinOutbound(1, 2, false, New("MemberOf")).AQLString()
//	// Renders: FOR b in Companies FOR a in 1..2 OUTBOUND b MemberOf return a
func (q Query) JoinOutbound(minDepth, maxDepth uint, namedGraph bool, child Query) Query {
	return q.joinWith(DirectionOutbound, minDepth, maxDepth, namedGraph, child)
}

// JoinInbound nests a child query as an inbound graph traversal.
func (q Query) JoinInbound(minDepth, maxDepth uint, namedGraph bool, child Query) Query {
	return q.joinWith(DirectionInbound, minDepth, maxDepth, namedGraph, child)
}

// JoinAny nests a child query traversing edges in both directions.
func (q Query) JoinAny(minDepth, maxDepth uint, namedGraph bool, child Query) Query {
	return q.joinWith(DirectionAny, minDepth, maxDepth, namedGraph, child)
}

func (q Query) joinWith(direction TraversalDirection, minDepth, maxDepth uint, namedGraph bool, child Query) Query {
	q.join = &joinedQuery{
		traversalSpec: traversalSpec{direction: direction, minDepth: minDepth, maxDepth: maxDepth, namedGraph: namedGraph},
		child:         &child,
	}
	return q
}

func (q Query) pushItem(item queryItem) Query {
	items := make([]queryItem, len(q.items), len(q.items)+1)
	copy(items, q.items)
	q.items = append(items, item)
	return q
}

// AQLString renders the whole query tree as one AQL statement.
//
// Variable naming is two-phase: a first pass walks the join chain to
// find the nesting depth, then variables are assigned by distance from
// the innermost node, which always binds `a` since `return` refers to
// the innermost loop. A chain of depth 3 therefore renders `d`, `c`,
// `b`, `a` from the outside in.
func (q Query) AQLString() string {
	clauses := make([]string, 0, 8)
	if len(q.with) > 0 {
		clauses = append(clauses, "WITH "+strings.Join(q.with, ", "))
	}

	depth := 0
	for node := &q; node.join != nil; node = node.join.child {
		depth++
	}

	rootVar := iterationVariable(depth)
	if q.graph != nil {
		clauses = append(clauses, fmt.Sprintf("FOR %s in %d..%d %s '%s' %s",
			rootVar, q.graph.minDepth, q.graph.maxDepth, q.graph.direction,
			q.graph.startVertex, traversalTarget(q.graph.namedGraph, q.source)))
	} else {
		clauses = append(clauses, fmt.Sprintf("FOR %s in %s", rootVar, q.source))
	}

	distinct := false
	node, level := &q, depth
	for {
		bindVar := iterationVariable(level)
		distinct = distinct || node.distinct
		for _, item := range node.items {
			clauses = appendClause(clauses, item, bindVar)
		}
		if node.join == nil {
			break
		}
		child := node.join.child
		childVar := iterationVariable(level - 1)
		clauses = append(clauses, fmt.Sprintf("FOR %s in %d..%d %s %s %s",
			childVar, node.join.minDepth, node.join.maxDepth, node.join.direction,
			bindVar, traversalTarget(node.join.namedGraph, child.source)))
		node, level = child, level-1
	}

	returnClause := "return "
	if distinct {
		returnClause += "DISTINCT "
	}
	clauses = append(clauses, returnClause+iterationVariable(0))
	return strings.Join(clauses, " ")
}

func appendClause(clauses []string, item queryItem, bindVar string) []string {
	switch item.kind {
	case itemFilter:
		if item.filter.isEmpty() {
			return clauses
		}
		return append(clauses, "FILTER "+item.filter.AQLString(bindVar))
	case itemPrune:
		if item.filter.isEmpty() {
			return clauses
		}
		return append(clauses, "PRUNE "+item.filter.AQLString(bindVar))
	case itemSort:
		keys := make([]string, 0, len(item.sortKeys))
		for _, key := range item.sortKeys {
			keys = append(keys, fmt.Sprintf("%s.%s %s", bindVar, key.field, key.direction))
		}
		return append(clauses, "SORT "+strings.Join(keys, ", "))
	case itemLimit:
		if item.limit.hasOffset {
			return append(clauses, fmt.Sprintf("LIMIT %d, %d", item.limit.offset, item.limit.count))
		}
		return append(clauses, fmt.Sprintf("LIMIT %d", item.limit.count))
	}
	return clauses
}

func traversalTarget(namedGraph bool, name string) string {
	if namedGraph {
		return "GRAPH " + name
	}
	return name
}

const iterationAlphabet = "abcdefghijklmnopqrstuvwxyz"

// iterationVariable names the loop variable at the given distance from
// the innermost node: 0 is `a`, 1 is `b` and so on. Single letters
// cover 26 nesting levels; deeper chains spill into deterministic
// two-letter names (`aa`, `ab`, ...) so names never collide.
func iterationVariable(distance int) string {
	name := ""
	for {
		name = string(iterationAlphabet[distance%26]) + name
		distance = distance/26 - 1
		if distance < 0 {
			return name
		}
	}
}
