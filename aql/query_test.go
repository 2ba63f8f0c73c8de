package aql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Empty(t *testing.T) {
	assert.Equal(t, "FOR a in Companies return a", New("Companies").AQLString())
}

func TestQuery_FilterSortLimitDistinct(t *testing.T) {
	query := New("Companies").
		Filter(NewFilter(Any("emails").Like("%gmail.com"))).
		Sort("company_name", "").
		Sort("company_age", SortDesc).
		Limit(5).
		Distinct()

	assert.Equal(t,
		`FOR a in Companies FILTER a.emails ANY LIKE "%gmail.com" SORT a.company_name ASC, a.company_age DESC LIMIT 5 return DISTINCT a`,
		query.AQLString())
}

func TestQuery_ClausesRenderInCallOrder(t *testing.T) {
	query := New("Users").
		Filter(NewFilter(Field("active").EqTrue())).
		Sort("age", "").
		Limit(5).
		Filter(NewFilter(Field("gender").EqualsStr("f")))

	assert.Equal(t,
		`FOR a in Users FILTER a.active == true SORT a.age ASC LIMIT 5 FILTER a.gender == "f" return a`,
		query.AQLString())
}

func TestQuery_LimitWithOffset(t *testing.T) {
	assert.Equal(t,
		"FOR a in Users LIMIT 3, 5 return a",
		New("Users").LimitWithOffset(3, 5).AQLString())
}

func TestQuery_EmptyFilterOmitsClause(t *testing.T) {
	var empty Filter
	assert.Equal(t, "FOR a in Users return a", New("Users").Filter(empty).AQLString())
}

func TestQuery_WithCollections(t *testing.T) {
	assert.Equal(t,
		"WITH Users, Companies FOR a in Users return a",
		New("Users").WithCollections("Users", "Companies").AQLString())
}

func TestQuery_JoinOutbound(t *testing.T) {
	query := New("Companies").
		Filter(NewFilter(Any("emails").Like("%gmail.com"))).
		Sort("company_name", "").
		JoinOutbound(1, 2, false,
			New("MemberOf").
				Sort("_id", "").
				Prune(NewFilter(Statement("1").Equals(1))))

	assert.Equal(t,
		`FOR b in Companies FILTER b.emails ANY LIKE "%gmail.com" SORT b.company_name ASC FOR a in 1..2 OUTBOUND b MemberOf SORT a._id ASC PRUNE 1 == 1 return a`,
		query.AQLString())
}

func TestQuery_JoinNamedGraph(t *testing.T) {
	query := New("Companies").
		Filter(NewFilter(Any("emails").Like("%gmail.com"))).
		Sort("company_name", "").
		JoinOutbound(1, 2, true,
			New("GraphName").
				Sort("_id", "").
				Prune(NewFilter(Statement("1").Equals(1))))

	assert.Equal(t,
		`FOR b in Companies FILTER b.emails ANY LIKE "%gmail.com" SORT b.company_name ASC FOR a in 1..2 OUTBOUND b GRAPH GraphName SORT a._id ASC PRUNE 1 == 1 return a`,
		query.AQLString())
}

func TestQuery_DeepJoinChainNamesVariablesFromInside(t *testing.T) {
	query := New("Companies").
		Filter(NewFilter(Any("emails").Like("%gmail.com"))).
		Sort("company_name", "").
		JoinOutbound(1, 2, false,
			New("MemberOf").
				Sort("_id", "").
				Filter(NewFilter(Statement("1").Equals(1))).
				JoinInbound(1, 5, false,
					New("BelongsTo").
						JoinOutbound(2, 2, false, New("HasFriend"))))

	assert.Equal(t,
		`FOR d in Companies FILTER d.emails ANY LIKE "%gmail.com" SORT d.company_name ASC FOR c in 1..2 OUTBOUND d MemberOf SORT c._id ASC FILTER 1 == 1 FOR b in 1..5 INBOUND c BelongsTo FOR a in 2..2 OUTBOUND b HasFriend return a`,
		query.AQLString())
}

func TestQuery_DeepJoinChainMixedNamedGraphs(t *testing.T) {
	query := New("Companies").
		Filter(NewFilter(Any("emails").Like("%gmail.com"))).
		Sort("company_name", "").
		JoinOutbound(1, 2, true,
			New("SomeGraph").
				Sort("_id", "").
				Filter(NewFilter(Statement("1").Equals(1))).
				JoinInbound(1, 5, false,
					New("BelongsTo").
						JoinOutbound(2, 2, true, New("OtherGraph"))))

	assert.Equal(t,
		`FOR d in Companies FILTER d.emails ANY LIKE "%gmail.com" SORT d.company_name ASC FOR c in 1..2 OUTBOUND d GRAPH SomeGraph SORT c._id ASC FILTER 1 == 1 FOR b in 1..5 INBOUND c BelongsTo FOR a in 2..2 OUTBOUND b GRAPH OtherGraph return a`,
		query.AQLString())
}

func TestQuery_StatementAlwaysReturnsInnermostVariable(t *testing.T) {
	query := New("Companies").JoinOutbound(1, 2, false, New("MemberOf"))
	aqlText := query.AQLString()

	assert.Contains(t, aqlText, "FOR b in Companies")
	assert.Contains(t, aqlText, "FOR a in 1..2 OUTBOUND b MemberOf")
	assert.Equal(t, "return a", aqlText[len(aqlText)-len("return a"):])
}

func TestQuery_DistinctOnInnerNodePropagatesToReturn(t *testing.T) {
	query := New("Dish").JoinOutbound(1, 1, false,
		New("PartOf").JoinInbound(1, 1, false, New("PartOf").Distinct()))

	assert.Equal(t,
		"FOR c in Dish FOR b in 1..1 OUTBOUND c PartOf FOR a in 1..1 INBOUND b PartOf return DISTINCT a",
		query.AQLString())
}

func TestQuery_RootTraversalConstructors(t *testing.T) {
	assert.Equal(t,
		"FOR a in 1..5 OUTBOUND 'Users/123' ChildOf return a",
		Outbound(1, 5, "ChildOf", "Users/123").AQLString())
	assert.Equal(t,
		"FOR a in 1..1 INBOUND 'Users/123' ChildOf return a",
		Inbound(1, 1, "ChildOf", "Users/123").AQLString())
	assert.Equal(t,
		"FOR a in 1..2 ANY 'Users/123' GRAPH SomeGraph return a",
		NamedTraversal(DirectionAny, 1, 2, "SomeGraph", "Users/123").AQLString())
}

func TestQuery_RenderingIsIdempotent(t *testing.T) {
	query := New("Companies").
		Filter(Field("age").GreaterThan(10).And(Field("age").LesserOrEqual(18))).
		Sort("name", SortDesc).
		Limit(10).
		JoinOutbound(1, 2, false, New("MemberOf").Distinct())

	first := query.AQLString()
	second := query.AQLString()
	assert.Equal(t, first, second)
}

func TestQuery_BuilderStepsDoNotMutateTheReceiver(t *testing.T) {
	base := New("Users").Filter(NewFilter(Field("active").EqTrue()))
	withLimit := base.Limit(1)
	withSort := base.Sort("age", "")

	assert.Equal(t, "FOR a in Users FILTER a.active == true return a", base.AQLString())
	assert.Equal(t, "FOR a in Users FILTER a.active == true LIMIT 1 return a", withLimit.AQLString())
	assert.Equal(t, "FOR a in Users FILTER a.active == true SORT a.age ASC return a", withSort.AQLString())
}

func TestIterationVariable_SingleLetters(t *testing.T) {
	assert.Equal(t, "a", iterationVariable(0))
	assert.Equal(t, "b", iterationVariable(1))
	assert.Equal(t, "d", iterationVariable(3))
	assert.Equal(t, "z", iterationVariable(25))
}

func TestIterationVariable_SpillsBeyondTwentySixLevels(t *testing.T) {
	// 26 single-letter levels is the documented capacity; deeper
	// chains get deterministic two-letter names instead of colliding.
	assert.Equal(t, "aa", iterationVariable(26))
	assert.Equal(t, "ab", iterationVariable(27))
	assert.Equal(t, "az", iterationVariable(51))
	assert.Equal(t, "ba", iterationVariable(52))
}

func TestQuery_TwentySevenLevelChainStaysCollisionFree(t *testing.T) {
	query := New("Root")
	child := New("Level26")
	for i := 0; i < 25; i++ {
		child = New("Edge").JoinOutbound(1, 1, false, child)
	}
	query = query.JoinOutbound(1, 1, false, child)

	aqlText := query.AQLString()
	assert.Contains(t, aqlText, "FOR aa in Root")
	assert.Contains(t, aqlText, "FOR z in 1..1 OUTBOUND aa Edge")
	assert.Equal(t, "return a", aqlText[len(aqlText)-len("return a"):])
}
