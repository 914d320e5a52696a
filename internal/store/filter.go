package store

// Filter is a small tagged expression tree replacing ad-hoc per-handler query
// maps. Each backend translates or evaluates it itself; handlers never build
// store-native query objects.
type Filter struct {
	Op     Op
	Field  string
	Value  interface{}
	Values []interface{}
	Sub    []Filter
}

type Op string

const (
	OpAll         Op = "all"          // matches every document
	OpEq          Op = "eq"           // Field == Value
	OpContains    Op = "contains"     // array Field has member Value
	OpIn          Op = "in"           // Field is one of Values
	OpSubstringCI Op = "substring_ci" // string Field contains Value, case-insensitive
	OpAnd         Op = "and"
	OpOr          Op = "or"
)

func All() Filter { return Filter{Op: OpAll} }

func Eq(field string, value interface{}) Filter {
	return Filter{Op: OpEq, Field: field, Value: value}
}

func Contains(field string, value interface{}) Filter {
	return Filter{Op: OpContains, Field: field, Value: value}
}

func In(field string, values ...interface{}) Filter {
	return Filter{Op: OpIn, Field: field, Values: values}
}

func SubstringCI(field, q string) Filter {
	return Filter{Op: OpSubstringCI, Field: field, Value: q}
}

func And(sub ...Filter) Filter {
	if len(sub) == 1 {
		return sub[0]
	}
	return Filter{Op: OpAnd, Sub: sub}
}

func Or(sub ...Filter) Filter {
	if len(sub) == 1 {
		return sub[0]
	}
	return Filter{Op: OpOr, Sub: sub}
}
