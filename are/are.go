package are

import (
	"time"

	"github.com/shopspring/decimal"
)

// The process-wide families. They are built once and never change.
var (
	Int     = OrderedOf[int]()
	Int64   = OrderedOf[int64]()
	Float64 = OrderedOf[float64]()
	Float32 = OrderedOf[float32]()
	// String compares strings lexicographically. Use Text for containment.
	String = OrderedOf[string]()
	// Decimal compares decimal.Decimals exactly. There is no rounding
	// error to forgive, so EqualTo is decimal.Decimal.Equal.
	Decimal = ComparisonOf(decimal.Decimal.LessThan, decimal.Decimal.Equal)
	Time    = ComparisonOf(time.Time.Before, time.Time.Equal)

	Text  = ContainmentOf[string]()
	Bytes = ContainmentOf[[]byte]()
)
