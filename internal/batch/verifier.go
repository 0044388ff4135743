// Package batch verifies many signature records in parallel.
package batch

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/internal/logging"
	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecsig"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Result is the outcome for one record.
type Result struct {
	Index   int
	Curve   secp.Curve
	Checked bool // false when the batch was cancelled before this record ran
	Valid   bool
	Err     error // why the record was rejected without running the check, if known
}

// Summary aggregates a batch run. Results is ordered like the input.
type Summary struct {
	Total   int
	Valid   int64
	Invalid int64
	Skipped int64
	Results []Result
}

// Failures returns the checked records that did not verify.
func (s *Summary) Failures() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Checked && !r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// Verifier checks records on a pool of workers. Engines are built once per
// curve before the workers start and are shared between them.
type Verifier struct {
	numWorkers int
	backend    string
	logger     *zap.Logger
}

// NewVerifier returns a verifier with numWorkers goroutines (0 means
// GOMAXPROCS) using the named ecarith backend for every curve.
func NewVerifier(numWorkers int, backend string) *Verifier {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if backend == "" {
		backend = ecarith.BackendAuto
	}
	return &Verifier{
		numWorkers: numWorkers,
		backend:    backend,
		logger:     zap.NewNop(),
	}
}

// WithLogger sets the logger.
func (v *Verifier) WithLogger(l *zap.Logger) *Verifier {
	v.logger = logging.OrNop(l)
	return v
}

// NumWorkers returns the size of the worker pool.
func (v *Verifier) NumWorkers() int { return v.numWorkers }

type engineSet map[secp.Curve]*ecsig.Engine

// engines builds one engine per curve named in records. Curves the backend
// cannot serve map to the construction error.
func (v *Verifier) engines(records []*parser.Record) (engineSet, map[secp.Curve]error) {
	engines := make(engineSet)
	failed := make(map[secp.Curve]error)
	for _, rec := range records {
		if _, ok := engines[rec.Curve]; ok {
			continue
		}
		if _, ok := failed[rec.Curve]; ok {
			continue
		}
		params, err := secp.Lookup(string(rec.Curve))
		if err != nil {
			failed[rec.Curve] = err
			continue
		}
		p, err := ecarith.NewBackend(params, v.backend)
		if err != nil {
			failed[rec.Curve] = errors.Wrapf(err, "%s backend for %s", v.backend, rec.Curve)
			continue
		}
		engines[rec.Curve] = ecsig.NewEngine(p).WithLogger(v.logger)
	}
	return engines, failed
}

// Verify checks every record. It stops handing out work once ctx is done and
// then returns the partial summary together with the context error.
func (v *Verifier) Verify(ctx context.Context, records []*parser.Record) (*Summary, error) {
	summary := &Summary{
		Total:   len(records),
		Results: make([]Result, len(records)),
	}
	for i, rec := range records {
		summary.Results[i] = Result{Index: rec.Index, Curve: rec.Curve}
	}

	engines, failed := v.engines(records)

	workChan := make(chan int, v.numWorkers*10)
	var valid, invalid int64

	var wg sync.WaitGroup
	for i := 0; i < v.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-workChan:
					if !ok {
						return
					}
					res := &summary.Results[idx]
					res.Checked = true
					if err, bad := failed[records[idx].Curve]; bad {
						res.Err = err
					} else {
						res.Valid, res.Err = check(engines[records[idx].Curve], records[idx])
					}
					if res.Valid {
						atomic.AddInt64(&valid, 1)
					} else {
						atomic.AddInt64(&invalid, 1)
						v.logger.Debug("record rejected",
							zap.Int("index", res.Index),
							zap.Stringer("curve", res.Curve),
							zap.NamedError("reason", res.Err))
					}
				}
			}
		}()
	}

	fed := make(chan struct{})
	go func() {
		defer close(fed)
		defer close(workChan)
		for i := range records {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	wg.Wait()
	<-fed

	summary.Valid = atomic.LoadInt64(&valid)
	summary.Invalid = atomic.LoadInt64(&invalid)
	summary.Skipped = int64(summary.Total) - summary.Valid - summary.Invalid

	v.logger.Info("batch verification finished",
		zap.Int("total", summary.Total),
		zap.Int64("valid", summary.Valid),
		zap.Int64("invalid", summary.Invalid),
		zap.Int64("skipped", summary.Skipped),
		zap.Int("workers", v.numWorkers))

	if err := ctx.Err(); err != nil {
		return summary, errors.Wrap(err, "batch verification cancelled")
	}
	return summary, nil
}

// check verifies one record. A decode failure is returned as the reason; a
// well-formed signature that does not verify has no reason attached.
func check(engine *ecsig.Engine, rec *parser.Record) (bool, error) {
	if rec.PublicX == nil || rec.PublicY == nil {
		return false, errors.New("record has no public point")
	}
	sig, err := engine.DecodeSignature(rec.Signature)
	if err != nil {
		return false, err
	}
	pub := ecarith.NewPoint(rec.PublicX, rec.PublicY)
	return engine.VerifyRaw(rec.Digest, pub, sig), nil
}
