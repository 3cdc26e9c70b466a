// Package browser opens profile links in the default OS browser in
// fixed-size batches with a timed pause between batches.
//
// Opening is strictly sequential. The pause between batches is the only
// suspension point and honors context cancellation so that an interrupt
// signal ends a run promptly.
package browser
