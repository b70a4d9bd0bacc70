// Package validate offers advisory post-hoc checks over generated datasets.
// Every check logs a warning and returns false on failure; none aborts the
// run, and the pipeline never invokes them automatically.
package validate

import (
	"math"
	"time"

	"novagen/internal/util"

	"go.uber.org/zap"
)

// ForeignKeys reports whether every value in fks exists in the reference key
// set.
func ForeignKeys(column string, fks []string, referenceKeys []string) bool {
	logger := util.GetLogger()

	ref := make(map[string]struct{}, len(referenceKeys))
	for _, k := range referenceKeys {
		ref[k] = struct{}{}
	}

	invalid := make(map[string]struct{})
	for _, fk := range fks {
		if fk == "" {
			continue
		}
		if _, ok := ref[fk]; !ok {
			invalid[fk] = struct{}{}
		}
	}

	if len(invalid) > 0 {
		logger.Warn("Foreign key validation failed",
			zap.String("column", column),
			zap.Int("invalid_values", len(invalid)))
		return false
	}

	logger.Info("Foreign key validation passed", zap.String("column", column))
	return true
}

// DateRange reports whether every date falls inside [min, max]. A zero min
// or max disables that bound.
func DateRange(column string, values []time.Time, min, max time.Time) bool {
	logger := util.GetLogger()

	var early, late int
	for _, v := range values {
		if !min.IsZero() && v.Before(min) {
			early++
		}
		if !max.IsZero() && v.After(max) {
			late++
		}
	}

	if early > 0 || late > 0 {
		logger.Warn("Date range validation failed",
			zap.String("column", column),
			zap.Int("before_min", early),
			zap.Int("after_max", late))
		return false
	}

	logger.Info("Date range validation passed", zap.String("column", column))
	return true
}

// NumericRange reports whether every value falls inside [min, max]. Pass
// -Inf/+Inf to disable a bound.
func NumericRange(column string, values []float64, min, max float64) bool {
	logger := util.GetLogger()

	var below, above int
	for _, v := range values {
		if v < min {
			below++
		}
		if v > max {
			above++
		}
	}

	if below > 0 || above > 0 {
		logger.Warn("Numeric range validation failed",
			zap.String("column", column),
			zap.Int("below_min", below),
			zap.Int("above_max", above))
		return false
	}

	logger.Info("Numeric range validation passed", zap.String("column", column))
	return true
}

// NoBlanks reports whether the column contains no empty values.
func NoBlanks(column string, values []string) bool {
	logger := util.GetLogger()

	var blanks int
	for _, v := range values {
		if v == "" {
			blanks++
		}
	}

	if blanks > 0 {
		logger.Warn("Blank value validation failed",
			zap.String("column", column),
			zap.Int("blank_values", blanks))
		return false
	}

	logger.Info("Blank value validation passed", zap.String("column", column))
	return true
}

// Distribution reports whether each expected value's observed proportion is
// within tolerance of its configured proportion.
func Distribution(column string, values []string, expected map[string]float64, tolerance float64) bool {
	logger := util.GetLogger()

	if len(values) == 0 {
		logger.Warn("Distribution validation failed: no values",
			zap.String("column", column))
		return false
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	ok := true
	for value, want := range expected {
		got := float64(counts[value]) / float64(len(values))
		if math.Abs(got-want) > tolerance {
			logger.Warn("Distribution validation failed",
				zap.String("column", column),
				zap.String("value", value),
				zap.Float64("expected", want),
				zap.Float64("actual", got))
			ok = false
		}
	}

	if ok {
		logger.Info("Distribution validation passed", zap.String("column", column))
	}
	return ok
}

// RecordCount reports whether the row count lies within [min, max]. A
// non-positive bound disables that side.
func RecordCount(dataset string, count, min, max int) bool {
	logger := util.GetLogger()

	if min > 0 && count < min {
		logger.Warn("Record count below minimum",
			zap.String("dataset", dataset),
			zap.Int("count", count),
			zap.Int("min", min))
		return false
	}
	if max > 0 && count > max {
		logger.Warn("Record count above maximum",
			zap.String("dataset", dataset),
			zap.Int("count", count),
			zap.Int("max", max))
		return false
	}

	logger.Info("Record count validation passed",
		zap.String("dataset", dataset),
		zap.Int("count", count))
	return true
}
