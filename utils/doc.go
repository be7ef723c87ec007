// Package utils provides internal utility functions shared by the transitdb packages.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Decimal rounding of reported statistics
//   - Fixed-precision number formatting for text answers
//   - Human-readable distances for log output
package utils
