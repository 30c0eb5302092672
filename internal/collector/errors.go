package collector

import "fmt"

// InsufficientDataError reports a symbol whose price history is too short
// to compute the full indicator set. The symbol is dropped from the scan.
type InsufficientDataError struct {
	Symbol string
	Have   int
	Need   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: %d observations, need %d", e.Symbol, e.Have, e.Need)
}

// DataFetchError reports a symbol whose history could not be retrieved.
// Treated exactly like insufficient data: dropped, reason recorded.
type DataFetchError struct {
	Symbol string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("%s: fetch failed: %v", e.Symbol, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }
