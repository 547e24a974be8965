package matching

import (
	"context"
	"log"
	"sync"
)

type (
	// MatchDispatcher decouples report submission from the matching scan.
	// Submitting a report must never block on, or fail because of, matching.
	MatchDispatcher interface {
		DispatchScan(reportID string)
		Close()
	}

	matchDispatcher struct {
		matchingService MatchingService
		scans           chan string
		wg              sync.WaitGroup
	}

	syncMatchDispatcher struct {
		matchingService MatchingService
	}
)

func NewMatchDispatcher(matchingService MatchingService, buffer int) MatchDispatcher {
	d := &matchDispatcher{
		matchingService: matchingService,
		scans:           make(chan string, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *matchDispatcher) run() {
	defer d.wg.Done()
	for reportID := range d.scans {
		if err := d.matchingService.ScanAndNotify(context.Background(), reportID); err != nil {
			log.Printf("background matching for report %s failed: %v", reportID, err)
		}
	}
}

func (d *matchDispatcher) DispatchScan(reportID string) {
	select {
	case d.scans <- reportID:
	default:
		log.Printf("matching queue full, dropping scan for report %s", reportID)
	}
}

func (d *matchDispatcher) Close() {
	close(d.scans)
	d.wg.Wait()
}

// NewSyncMatchDispatcher runs scans inline on the calling goroutine.
// Used in tests so matching outcomes are observable immediately.
func NewSyncMatchDispatcher(matchingService MatchingService) MatchDispatcher {
	return &syncMatchDispatcher{matchingService: matchingService}
}

func (d *syncMatchDispatcher) DispatchScan(reportID string) {
	if err := d.matchingService.ScanAndNotify(context.Background(), reportID); err != nil {
		log.Printf("matching for report %s failed: %v", reportID, err)
	}
}

func (d *syncMatchDispatcher) Close() {}
