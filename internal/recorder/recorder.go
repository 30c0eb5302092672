package recorder

import "StockScout/internal/model"

// Recorder persists scan history for later review.
type Recorder interface {
	RecordScan(res *model.ScanResult) error
	Close() error
}
