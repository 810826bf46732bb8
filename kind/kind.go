// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package kind enumerates the data kinds of tree nodes
// and the categories they belong to.
//
// Every node in a tree store, grammar or AST, has exactly one Kind.
// Concrete kinds are the kinds of actual nodes.
// Categories (Expression, Binary, Statement, ...) are kinds with no nodes of their own;
// they group concrete kinds and other categories
// so that a handler can be registered once for a whole family of kinds.
// A kind may belong to more than one category.
package kind

// A Kind is the discriminant of the data attached to a node.
type Kind int

// Categories.
const (
	Invalid Kind = iota

	// Node is the root category; every other kind is a Node.
	Node
	Grammar
	Trivia
	Literal
	Identifier
	Declaration
	Named
	Typed
	Clause
	Statement
	Expression
	Unary
	Binary

	// Grammar kinds.
	Character
	Sequence
	Alternation
	Reference
	Spawn
	Postfix
	Precedence
	Group
	Predicate

	// AST kinds.
	Root
	Type
	Space
	Line
	Null
	Number
	String
	Boolean
	Name
	Global
	Function
	Variable
	Parameter
	Else
	Block
	ExprStmt
	Return
	If
	DeclStmt
	IdentExpr
	LiteralExpr
	ParenExpr
	Invocation
	Plus
	Minus
	Not
	Add
	Subtract
	Multiply
	Divide
	Equal
	NotEqual
	Greater
	GreaterEqual
	Lesser
	LesserEqual
	Assign
	Access

	numKinds
)

var names = [numKinds]string{
	Invalid:      "Invalid",
	Node:         "Node",
	Grammar:      "Grammar",
	Trivia:       "Trivia",
	Literal:      "Literal",
	Identifier:   "Identifier",
	Declaration:  "Declaration",
	Named:        "Named",
	Typed:        "Typed",
	Clause:       "Clause",
	Statement:    "Statement",
	Expression:   "Expression",
	Unary:        "Unary",
	Binary:       "Binary",
	Character:    "Character",
	Sequence:     "Sequence",
	Alternation:  "Alternation",
	Reference:    "Reference",
	Spawn:        "Spawn",
	Postfix:      "Postfix",
	Precedence:   "Precedence",
	Group:        "Group",
	Predicate:    "Predicate",
	Root:         "Root",
	Type:         "Type",
	Space:        "Space",
	Line:         "Line",
	Null:         "Null",
	Number:       "Number",
	String:       "String",
	Boolean:      "Boolean",
	Name:         "Name",
	Global:       "Global",
	Function:     "Function",
	Variable:     "Variable",
	Parameter:    "Parameter",
	Else:         "Else",
	Block:        "Block",
	ExprStmt:     "ExprStmt",
	Return:       "Return",
	If:           "If",
	DeclStmt:     "DeclStmt",
	IdentExpr:    "IdentExpr",
	LiteralExpr:  "LiteralExpr",
	ParenExpr:    "ParenExpr",
	Invocation:   "Invocation",
	Plus:         "Plus",
	Minus:        "Minus",
	Not:          "Not",
	Add:          "Add",
	Subtract:     "Subtract",
	Multiply:     "Multiply",
	Divide:       "Divide",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Lesser:       "Lesser",
	LesserEqual:  "LesserEqual",
	Assign:       "Assign",
	Access:       "Access",
}

// parents lists the direct categories of each kind,
// more specific first.
var parents = [numKinds][]Kind{
	Grammar:     {Node},
	Trivia:      {Node},
	Literal:     {Node},
	Identifier:  {Node},
	Declaration: {Node},
	Named:       {Node},
	Typed:       {Node},
	Clause:      {Node},
	Statement:   {Node},
	Expression:  {Node},
	Unary:       {Expression},
	Binary:      {Expression},

	Character:   {Grammar},
	Sequence:    {Grammar},
	Alternation: {Grammar},
	Reference:   {Grammar},
	Spawn:       {Grammar},
	Postfix:     {Grammar},
	Precedence:  {Grammar},
	Group:       {Grammar},
	Predicate:   {Grammar},

	Root:         {Node},
	Type:         {Node},
	Space:        {Trivia},
	Line:         {Trivia},
	Null:         {Literal},
	Number:       {Literal},
	String:       {Literal},
	Boolean:      {Literal},
	Name:         {Identifier},
	Global:       {Identifier},
	Function:     {Declaration, Named, Typed},
	Variable:     {Declaration, Named, Typed},
	Parameter:    {Declaration, Named, Typed},
	Else:         {Clause},
	Block:        {Statement},
	ExprStmt:     {Statement},
	Return:       {Statement},
	If:           {Statement},
	DeclStmt:     {Statement},
	IdentExpr:    {Expression},
	LiteralExpr:  {Expression},
	ParenExpr:    {Expression},
	Invocation:   {Expression},
	Plus:         {Unary},
	Minus:        {Unary},
	Not:          {Unary},
	Add:          {Binary},
	Subtract:     {Binary},
	Multiply:     {Binary},
	Divide:       {Binary},
	Equal:        {Binary},
	NotEqual:     {Binary},
	Greater:      {Binary},
	GreaterEqual: {Binary},
	Lesser:       {Binary},
	LesserEqual:  {Binary},
	Assign:       {Binary},
	Access:       {Binary},
}

// lineages[k] is every category of k, nearest first.
var lineages [numKinds][]Kind

func init() {
	for k := Kind(0); k < numKinds; k++ {
		lineages[k] = lineage(k)
	}
}

// lineage walks the category graph breadth first,
// so a category reached in fewer steps comes before one reached in more.
// Ties keep the order of the parents table.
func lineage(k Kind) []Kind {
	var ks []Kind
	seen := map[Kind]bool{k: true}
	queue := append([]Kind(nil), parents[k]...)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if seen[c] {
			continue
		}
		seen[c] = true
		ks = append(ks, c)
		queue = append(queue, parents[c]...)
	}
	return ks
}

func (k Kind) valid() bool { return k > Invalid && k < numKinds }

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(?)"
	}
	return names[k]
}

// Category returns whether k is a category rather than a concrete kind.
func (k Kind) Category() bool { return k >= Node && k <= Binary }

// Lineage returns the categories of k, nearest first.
// The returned slice must not be modified.
func Lineage(k Kind) []Kind {
	if !k.valid() {
		return nil
	}
	return lineages[k]
}

// Is returns whether k is c or belongs to the category c.
func Is(k, c Kind) bool {
	if k == c {
		return k.valid()
	}
	for _, l := range Lineage(k) {
		if l == c {
			return true
		}
	}
	return false
}

// IsAny returns whether k is any of cs.
// An empty cs matches every valid kind.
func IsAny(k Kind, cs ...Kind) bool {
	if len(cs) == 0 {
		return k.valid()
	}
	for _, c := range cs {
		if Is(k, c) {
			return true
		}
	}
	return false
}

// Concrete returns all concrete kinds of the category c, in declaration order.
func Concrete(c Kind) []Kind {
	var ks []Kind
	for k := Binary + 1; k < numKinds; k++ {
		if Is(k, c) {
			ks = append(ks, k)
		}
	}
	return ks
}
