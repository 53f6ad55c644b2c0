package hir

//go:generate go tool stringer -type Kind -trimprefix Kind

// Kind identifies the concrete type of a node.
type Kind uint

const (
	KindCrate Kind = iota
	KindLifetime
	KindLifetimeParam

	// Paths.
	KindPathInExpression
	KindTypePathSegment
	KindTypePathSegmentGeneric
	KindTypePathSegmentFunction
	KindTypePath
	KindQualifiedPathInExpression
	KindQualifiedPathInType

	// Expressions.
	KindLiteralExpr
	KindBorrowExpr
	KindDereferenceExpr
	KindErrorPropagationExpr
	KindNegationExpr
	KindArithmeticOrLogicalExpr
	KindComparisonExpr
	KindLazyBooleanExpr
	KindTypeCastExpr
	KindAssignmentExpr
	KindCompoundAssignmentExpr
	KindGroupedExpr
	KindArrayElemsValues
	KindArrayElemsCopied
	KindArrayExpr
	KindArrayIndexExpr
	KindTupleExpr
	KindTupleIndexExpr
	KindStructExprStruct
	KindStructExprFieldIdentifier
	KindStructExprFieldIdentifierValue
	KindStructExprFieldIndexValue
	KindStructExprStructFields
	KindStructExprStructBase
	KindCallExpr
	KindMethodCallExpr
	KindFieldAccessExpr
	KindClosureExpr
	KindBlockExpr
	KindContinueExpr
	KindBreakExpr
	KindRangeFromToExpr
	KindRangeFromExpr
	KindRangeToExpr
	KindRangeFullExpr
	KindRangeFromToInclExpr
	KindRangeToInclExpr
	KindReturnExpr
	KindUnsafeBlockExpr
	KindLoopExpr
	KindWhileLoopExpr
	KindWhileLetLoopExpr
	KindForLoopExpr
	KindIfExpr
	KindIfExprConseqElse
	KindIfLetExpr
	KindIfLetExprConseqElse
	KindMatchExpr
	KindAwaitExpr
	KindAsyncBlockExpr

	// Generics.
	KindTypeParam
	KindConstGenericParam
	KindLifetimeWhereClauseItem
	KindTypeBoundWhereClauseItem

	// Items.
	KindModule
	KindExternCrate
	KindUseTreeGlob
	KindUseTreeList
	KindUseTreeRebind
	KindUseDeclaration
	KindFunction
	KindTypeAlias
	KindStructStruct
	KindTupleStruct
	KindEnumItem
	KindEnumItemTuple
	KindEnumItemStruct
	KindEnumItemDiscriminant
	KindEnum
	KindUnion
	KindConstantItem
	KindStaticItem
	KindTraitItemFunc
	KindTraitItemConst
	KindTraitItemType
	KindTrait
	KindImplBlock
	KindExternalStaticItem
	KindExternalFunctionItem
	KindExternBlock

	// Patterns.
	KindLiteralPattern
	KindIdentifierPattern
	KindWildcardPattern
	KindRangePatternBoundLiteral
	KindRangePatternBoundPath
	KindRangePatternBoundQualPath
	KindRangePattern
	KindReferencePattern
	KindStructPatternFieldTuplePat
	KindStructPatternFieldIdentPat
	KindStructPatternFieldIdent
	KindStructPattern
	KindTupleStructItemsNoRange
	KindTupleStructItemsRange
	KindTupleStructPattern
	KindTuplePatternItemsMultiple
	KindTuplePatternItemsRanged
	KindTuplePattern
	KindSlicePattern
	KindAltPattern

	// Statements.
	KindEmptyStmt
	KindLetStmt
	KindExprStmt

	// Types.
	KindTraitBound
	KindImplTraitType
	KindTraitObjectType
	KindParenthesisedType
	KindImplTraitTypeOneBound
	KindTupleType
	KindNeverType
	KindRawPointerType
	KindReferenceType
	KindArrayType
	KindSliceType
	KindInferredType
	KindBareFunctionType
)

const numKinds = int(KindBareFunctionType) + 1

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
