package loader

import (
	"context"
	"fmt"
)

// Progress receives prefetch progress. progress.Reporter satisfies it.
type Progress interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// PrefetchResult summarizes a prefetch run.
type PrefetchResult struct {
	Restaurants int
	Details     int
	// Failed holds the ids whose detail could not be refreshed.
	Failed []string
}

// Prefetch refreshes the list and every restaurant detail into the caches so
// the app keeps working offline. A failing list aborts the run; failing
// details are logged and reported in the result.
func (l *Loader) Prefetch(ctx context.Context, p Progress) (*PrefetchResult, error) {
	list, err := l.RefreshList(ctx)
	if err != nil {
		l.logFailure("prefetch list", err)
		return nil, fmt.Errorf("refreshing restaurant list: %w", err)
	}

	res := &PrefetchResult{Restaurants: len(list)}
	p.Start(len(list))
	defer p.Finish()

	for i, r := range list {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := l.RefreshDetail(ctx, r.ID); err != nil {
			l.logFailure("prefetch detail "+r.ID, err)
			res.Failed = append(res.Failed, r.ID)
		} else {
			res.Details++
		}
		p.Update(i+1, r.Name)
	}
	return res, nil
}
