// Package pagination provides windowing and sorting for CLI list output.
//
// This package contains the logic shared by list commands such as zone history:
//   - Params: --limit, --offset and --sort flag values and validation
//   - Meta: metadata describing the returned window
//   - SortHistory: stable sorting of history rows by year or intensity
package pagination
