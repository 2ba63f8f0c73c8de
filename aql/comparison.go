package aql

import (
	"fmt"
	"strings"
)

// ComparisonBuilder holds the left-hand side of a comparison while the
// caller picks the operator and right-hand value through one of the
// terminal methods (Equals, GreaterThan, InArray, ...).
type ComparisonBuilder struct {
	isField   bool
	statement string
}

// Comparison is a single rendered AQL predicate: `left OP right`.
// Once built by a terminal method it is immutable; rendering only needs
// the iteration variable the predicate is bound to.
type Comparison struct {
	isField    bool
	leftValue  string
	comparator string
	rightValue string
}

// Field starts a comparison on a document field. The field path is
// rendered behind the bound iteration variable.
//
// Example:
//
//	Field("age").GreaterThan(18).AQLString("i")
//	// Renders: i.age > 18
func Field(fieldName string) ComparisonBuilder {
	return ComparisonBuilder{
		isField:   true,
		statement: fieldName,
	}
}

// Statement starts a comparison on an arbitrary AQL expression. The
// expression is rendered as-is, without the iteration variable prefix.
//
// Example:
//
//	Statement("10 * 3").GreaterOrEqual(10).AQLString("i")
//	// Renders: 10 * 3 >= 10
func Statement(expression string) ComparisonBuilder {
	return ComparisonBuilder{
		isField:   false,
		statement: expression,
	}
}

// All starts a comparison on an array field where every element must
// match for the predicate to succeed.
//
// Example:
//
//	All("emails").NotNull().AQLString("i")
//	// Renders: i.emails ALL != null
func All(arrayFieldName string) ComparisonBuilder {
	return ComparisonBuilder{
		isField:   true,
		statement: arrayFieldName + " ALL",
	}
}

// Any starts a comparison on an array field where at least one element
// must match.
//
// Example:
//
//	Any("authorizations").EqTrue().AQLString("i")
//	// Renders: i.authorizations ANY == true
func Any(arrayFieldName string) ComparisonBuilder {
	return ComparisonBuilder{
		isField:   true,
		statement: arrayFieldName + " ANY",
	}
}

// None starts a comparison on an array field where no element may match.
//
// Example:
//
//	None("emails").EqNull().AQLString("i")
//	// Renders: i.emails NONE == null
func None(arrayFieldName string) ComparisonBuilder {
	return ComparisonBuilder{
		isField:   true,
		statement: arrayFieldName + " NONE",
	}
}

func (b ComparisonBuilder) finalize(comparator, rightValue string) Comparison {
	return Comparison{
		isField:    b.isField,
		leftValue:  b.statement,
		comparator: comparator,
		rightValue: rightValue,
	}
}

// Equals finalizes with an equality comparison. The value is rendered
// bare, so it is meant for numeric or otherwise literal values; use
// EqualsStr for string matching.
func (b ComparisonBuilder) Equals(value any) Comparison {
	return b.finalize("==", fmt.Sprint(value))
}

// EqualsStr finalizes with a string equality comparison. The value is
// rendered between double quotes, whatever its Go type.
//
// Example:
//
//	Field("username").EqualsStr("felix").AQLString("i")
//	// Renders: i.username == "felix"
func (b ComparisonBuilder) EqualsStr(value any) Comparison {
	return b.finalize("==", quoted(value))
}

// DifferentThan finalizes with an inequality comparison, value rendered
// bare. Use DifferentThanStr for string matching.
func (b ComparisonBuilder) DifferentThan(value any) Comparison {
	return b.finalize("!=", fmt.Sprint(value))
}

// DifferentThanStr finalizes with a string inequality comparison, value
// rendered between double quotes.
func (b ComparisonBuilder) DifferentThanStr(value any) Comparison {
	return b.finalize("!=", quoted(value))
}

// GreaterThan finalizes with a numeric `>` comparison.
func (b ComparisonBuilder) GreaterThan(value any) Comparison {
	return b.finalize(">", fmt.Sprint(value))
}

// GreaterOrEqual finalizes with a numeric `>=` comparison.
func (b ComparisonBuilder) GreaterOrEqual(value any) Comparison {
	return b.finalize(">=", fmt.Sprint(value))
}

// LesserThan finalizes with a numeric `<` comparison.
func (b ComparisonBuilder) LesserThan(value any) Comparison {
	return b.finalize("<", fmt.Sprint(value))
}

// LesserOrEqual finalizes with a numeric `<=` comparison.
func (b ComparisonBuilder) LesserOrEqual(value any) Comparison {
	return b.finalize("<=", fmt.Sprint(value))
}

// InArray finalizes with an inclusion comparison against a literal
// array. Elements are rendered bare.
//
// Example:
//
//	Field("age").InArray(1, 11, 16, 18).AQLString("i")
//	// Renders: i.age IN [1, 11, 16, 18]
func (b ComparisonBuilder) InArray(values ...any) Comparison {
	return b.finalize("IN", arrayLiteral(values))
}

// NotInArray finalizes with an exclusion comparison against a literal
// array. Elements are rendered bare.
func (b ComparisonBuilder) NotInArray(values ...any) Comparison {
	return b.finalize("NOT IN", arrayLiteral(values))
}

// InStrArray finalizes with an inclusion comparison against a literal
// string array. Every element is rendered between double quotes.
//
// Example:
//
//	Field("username").InStrArray("felix", "gerard").AQLString("i")
//	// Renders: i.username IN ["felix", "gerard"]
func (b ComparisonBuilder) InStrArray(values ...string) Comparison {
	return b.finalize("IN", strArrayLiteral(values))
}

// NotInStrArray finalizes with an exclusion comparison against a literal
// string array, every element rendered between double quotes.
func (b ComparisonBuilder) NotInStrArray(values ...string) Comparison {
	return b.finalize("NOT IN", strArrayLiteral(values))
}

// Like finalizes with an AQL LIKE comparison, pattern quoted.
//
// Example:
//
//	Field("last_name").Like("de %").AQLString("i")
//	// Renders: i.last_name LIKE "de %"
func (b ComparisonBuilder) Like(pattern string) Comparison {
	return b.finalize("LIKE", quoted(pattern))
}

// NotLike finalizes with an AQL NOT LIKE comparison, pattern quoted.
func (b ComparisonBuilder) NotLike(pattern string) Comparison {
	return b.finalize("NOT LIKE", quoted(pattern))
}

// Matches finalizes with a regular expression comparison (`=~`),
// expression quoted.
func (b ComparisonBuilder) Matches(regularExpression string) Comparison {
	return b.finalize("=~", quoted(regularExpression))
}

// DoesNotMatch finalizes with an inverse regular expression comparison
// (`!~`), expression quoted.
func (b ComparisonBuilder) DoesNotMatch(regularExpression string) Comparison {
	return b.finalize("!~", quoted(regularExpression))
}

// EqNull finalizes with a `== null` comparison.
func (b ComparisonBuilder) EqNull() Comparison {
	return b.finalize("==", "null")
}

// NotNull finalizes with a `!= null` comparison.
func (b ComparisonBuilder) NotNull() Comparison {
	return b.finalize("!=", "null")
}

// EqTrue finalizes with a `== true` comparison.
func (b ComparisonBuilder) EqTrue() Comparison {
	return b.finalize("==", "true")
}

// EqFalse finalizes with a `== false` comparison.
func (b ComparisonBuilder) EqFalse() Comparison {
	return b.finalize("==", "false")
}

// And lifts the comparison into a Filter and appends the given
// comparison with an AND connector. Both forms are equivalent:
//
//	NewFilter(Field("age").GreaterThan(10)).And(Field("age").LesserOrEqual(18))
//	Field("age").GreaterThan(10).And(Field("age").LesserOrEqual(18))
func (c Comparison) And(comparison Comparison) Filter {
	return NewFilter(c).And(comparison)
}

// Or lifts the comparison into a Filter and appends the given comparison
// with an OR connector.
func (c Comparison) Or(comparison Comparison) Filter {
	return NewFilter(c).Or(comparison)
}

// AQLString renders the comparison bound to the given iteration
// variable. Field comparisons are prefixed with `<bindVar>.`; statement
// comparisons render the left expression as-is.
//
// Example:
//
//	Field("age").GreaterThan(18).AQLString("i")
//	// Renders: i.age > 18
func (c Comparison) AQLString(bindVar string) string {
	left := c.leftValue
	if c.isField {
		left = bindVar + "." + left
	}
	return left + " " + c.comparator + " " + c.rightValue
}

func quoted(value any) string {
	return `"` + fmt.Sprint(value) + `"`
}

func arrayLiteral(values []any) string {
	rendered := make([]string, 0, len(values))
	for _, value := range values {
		rendered = append(rendered, fmt.Sprint(value))
	}
	return "[" + strings.Join(rendered, ", ") + "]"
}

func strArrayLiteral(values []string) string {
	rendered := make([]string, 0, len(values))
	for _, value := range values {
		rendered = append(rendered, quoted(value))
	}
	return "[" + strings.Join(rendered, ", ") + "]"
}
