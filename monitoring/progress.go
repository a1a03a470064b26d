package monitoring

import (
	"sync"
	"time"
)

// ProgressStatus is what the server reports for one progress bar.
type ProgressStatus struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
	Current    string    `json:"current"`
}

// A ProgressBar tracks a sequence of items, such as the steps of a script.
type ProgressBar struct {
	lock   sync.Mutex
	status ProgressStatus
}

func newProgressBar(id, name string, total uint64) *ProgressBar {
	return &ProgressBar{
		status: ProgressStatus{
			ID:        id,
			Name:      name,
			StartTime: time.Now(),
			Total:     total,
		},
	}
}

// StartItem marks one more item as in progress and shows label as the
// current item.
func (b *ProgressBar) StartItem(label string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.status.InProgress++
	b.status.Current = label
}

// FinishItem moves one in-progress item to finished.
func (b *ProgressBar) FinishItem() {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.status.InProgress > 0 {
		b.status.InProgress--
	}

	b.status.Finished++
}

// Status returns a copy of the current status.
func (b *ProgressBar) Status() ProgressStatus {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.status
}
