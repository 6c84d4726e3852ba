package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/mrled/suns/primepal/internal/model"
	"github.com/mrled/suns/primepal/internal/presenter"
	"github.com/mrled/suns/primepal/internal/validation"
)

// Stats counts what a single scan saw
type Stats struct {
	Candidates  int
	Primes      int
	Palindromes int
	Matches     int
}

// LogValue lets Stats be logged as a single group
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("candidates", s.Candidates),
		slog.Int("primes", s.Primes),
		slog.Int("palindromes", s.Palindromes),
		slog.Int("matches", s.Matches),
	)
}

// ScanUseCase finds prime palindromes in a range of candidates
type ScanUseCase struct {
	logger *slog.Logger
}

// NewScanUseCase creates a new scan use case.
// A nil logger falls back to slog.Default().
func NewScanUseCase(logger *slog.Logger) *ScanUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanUseCase{
		logger: logger,
	}
}

// Validated yields every candidate in r, ascending, with the error from
// validation.Validate. The error is nil exactly for prime palindromes.
func (uc *ScanUseCase) Validated(r model.Range) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i := r.Start; i < r.End; i++ {
			_, err := validation.Validate(i)
			if !yield(i, err) {
				return
			}
		}
	}
}

// Seq lazily yields every prime palindrome in r, in ascending order
func (uc *ScanUseCase) Seq(r model.Range) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n, err := range uc.Validated(r) {
			if err == nil && !yield(n) {
				return
			}
		}
	}
}

// Find scans r and returns every prime palindrome along with the scan stats
func (uc *ScanUseCase) Find(ctx context.Context, r model.Range) ([]int, Stats) {
	var (
		stats   Stats
		matches []int
	)

	debug := uc.logger.Enabled(ctx, slog.LevelDebug)
	for n, err := range uc.Validated(r) {
		stats.Candidates++
		if !errors.Is(err, validation.ErrNotPrime) {
			stats.Primes++
		}
		if !errors.Is(err, validation.ErrNotPalindrome) {
			stats.Palindromes++
		}
		if err != nil {
			continue
		}

		stats.Matches++
		matches = append(matches, n)
		if debug {
			uc.logger.DebugContext(ctx, "Found match",
				slog.Int("candidate", n),
				slog.String("properties", model.PropertyNames(model.AllProperties)))
		}
	}

	uc.logger.InfoContext(ctx, "Scan complete",
		slog.Int("start", r.Start),
		slog.Int("end", r.End),
		slog.Any("stats", stats))

	return matches, stats
}

// Run scans model.DefaultRange and writes the results to w
func (uc *ScanUseCase) Run(ctx context.Context, w io.Writer) (Stats, error) {
	matches, stats := uc.Find(ctx, model.DefaultRange)

	if err := presenter.WriteResults(w, matches); err != nil {
		return stats, fmt.Errorf("failed to write results: %w", err)
	}

	return stats, nil
}
