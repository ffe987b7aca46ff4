package cracker

import (
	"bytes"
	"context"
	"iter"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/password-guesser/internal/types"
)

const (
	// DefaultChunkSize is the number of candidates a worker pulls at once.
	DefaultChunkSize = 512
	// slowChunkSize is used when a bcrypt target is present so workers notice resolution sooner.
	slowChunkSize = 4
)

// Progress is reported after each processed chunk.
type Progress struct {
	Tested   int64
	Resolved int
	Total    int
}

// Options configures a Matcher.
type Options struct {
	// Workers is the pool size; zero means runtime.NumCPU().
	Workers int
	// ChunkSize is the number of consecutive candidates per work unit; zero picks a default
	// based on the slowest target algorithm.
	ChunkSize int
	// OnProgress is called concurrently from worker goroutines.
	OnProgress func(Progress)
}

// Matcher tests a candidate stream against a set of targets in parallel.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher.
func NewMatcher(opts Options) *Matcher {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Matcher{opts: opts}
}

// Workers returns the pool size.
func (m *Matcher) Workers() int {
	return m.opts.Workers
}

// chunk is a contiguous slice of the candidate stream; start is the 1-based position of words[0].
type chunk struct {
	start int64
	words []string
}

// slot is the shared per-target state. resolved is written exactly once by CompareAndSwap;
// candidate and position are written only by the goroutine that won the swap.
type slot struct {
	*parsedTarget
	resolved  atomic.Bool
	attempts  atomic.Int64
	candidate string
	position  int64
}

// run holds the state shared by the producer and the workers of one Crack call.
type run struct {
	slots     []*slot
	groups    map[types.Algorithm][]*slot
	order     []types.Algorithm
	hasBcrypt bool
	remaining atomic.Int64
	tested    atomic.Int64
	done      chan struct{}
	closeDone sync.Once

	digestFailures atomic.Int64
	warnDigest     sync.Once
}

// Crack tests candidates against targets and returns one result per target, in target order.
// It returns as soon as every parsable target is resolved or the stream is exhausted.
// If ctx is cancelled, the partial results are returned together with ctx.Err().
func (m *Matcher) Crack(ctx context.Context, candidates iter.Seq[string], targets []types.CrackTarget) ([]types.CrackResult, error) {
	r, results := newRun(targets)

	var err error
	if len(r.slots) > 0 {
		err = m.distribute(ctx, r, candidates, m.chunkSize(r.hasBcrypt))
	}
	r.collect(results)
	return results, err
}

// newRun parses targets. Malformed targets are resolved immediately in the returned results.
func newRun(targets []types.CrackTarget) (*run, []types.CrackResult) {
	results := make([]types.CrackResult, len(targets))
	r := &run{
		groups: make(map[types.Algorithm][]*slot),
		done:   make(chan struct{}),
	}

	for i, t := range targets {
		p, err := parseTarget(i, t)
		if err != nil {
			results[i] = types.CrackResult{Target: t, Outcome: types.OutcomeMalformed, Err: err}
			continue
		}
		s := &slot{parsedTarget: p}
		r.slots = append(r.slots, s)
		if _, ok := r.groups[t.Algorithm]; !ok {
			r.order = append(r.order, t.Algorithm)
		}
		r.groups[t.Algorithm] = append(r.groups[t.Algorithm], s)
		if t.Algorithm == types.AlgorithmBcrypt {
			r.hasBcrypt = true
		}
	}
	r.remaining.Store(int64(len(r.slots)))
	return r, results
}

// collect writes the outcome of every parsed target into results.
func (r *run) collect(results []types.CrackResult) {
	for _, s := range r.slots {
		res := types.CrackResult{Target: s.target, AttemptsTried: s.attempts.Load()}
		if s.resolved.Load() {
			res.Outcome = types.OutcomeFound
			res.Candidate = s.candidate
			res.AttemptsTried = s.position
		} else {
			res.Outcome = types.OutcomeNotFound
		}
		results[s.index] = res
	}
}

func (m *Matcher) chunkSize(hasBcrypt bool) int {
	if m.opts.ChunkSize > 0 {
		return m.opts.ChunkSize
	}
	if hasBcrypt {
		return slowChunkSize
	}
	return DefaultChunkSize
}

// distribute feeds contiguous chunks to a fixed pool of workers.
func (m *Matcher) distribute(ctx context.Context, r *run, candidates iter.Seq[string], size int) error {
	g, gctx := errgroup.WithContext(ctx)
	chunks := make(chan chunk, m.opts.Workers)

	g.Go(func() error {
		defer close(chunks)
		var pos int64
		buf := make([]string, 0, size)

		send := func() bool {
			c := chunk{start: pos - int64(len(buf)) + 1, words: buf}
			select {
			case chunks <- c:
				buf = make([]string, 0, size)
				return true
			case <-r.done:
				return false
			case <-gctx.Done():
				return false
			}
		}

		for cand := range candidates {
			pos++
			buf = append(buf, cand)
			if len(buf) == size && !send() {
				return gctx.Err()
			}
		}
		if len(buf) > 0 {
			send()
		}
		return gctx.Err()
	})

	for w := 0; w < m.opts.Workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-r.done:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				case c, ok := <-chunks:
					if !ok {
						return nil
					}
					if r.remaining.Load() == 0 {
						return nil
					}
					r.process(c)
					m.report(r)
				}
			}
		})
	}

	err := g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (m *Matcher) report(r *run) {
	if m.opts.OnProgress == nil {
		return
	}
	m.opts.OnProgress(Progress{
		Tested:   r.tested.Load(),
		Resolved: len(r.slots) - int(r.remaining.Load()),
		Total:    len(r.slots),
	})
}

// process tests every candidate of c against the targets that are still unresolved.
func (r *run) process(c chunk) {
	for i, cand := range c.words {
		pos := c.start + int64(i)
		r.tested.Add(1)
		for _, algo := range r.order {
			r.testGroup(algo, r.groups[algo], cand, pos)
		}
		if r.remaining.Load() == 0 {
			return
		}
	}
}

func (r *run) testGroup(algo types.Algorithm, group []*slot, cand string, pos int64) {
	if algo == types.AlgorithmBcrypt {
		for _, s := range group {
			if s.resolved.Load() {
				continue
			}
			s.attempts.Add(1)
			if verifyBcrypt(s.stored, cand) {
				r.resolve(s, cand, pos)
			}
		}
		return
	}

	var sum []byte
	var digestErr error
	for _, s := range group {
		if s.resolved.Load() {
			continue
		}
		if sum == nil && digestErr == nil {
			if sum, digestErr = Digest(algo, cand); digestErr != nil {
				r.digestFailed(algo, digestErr)
			}
		}
		// a candidate that cannot be digested still counts as compared, and never matches
		s.attempts.Add(1)
		if digestErr == nil && bytes.Equal(sum, s.digest) {
			r.resolve(s, cand, pos)
		}
	}
}

// digestFailed counts candidates that could not be digested and logs the first failure of the run.
func (r *run) digestFailed(algo types.Algorithm, err error) {
	r.digestFailures.Add(1)
	r.warnDigest.Do(func() {
		log.Printf("[CRACK] Cannot digest candidates as %s, treating them as non-matching: %v", algo.Display(), err)
	})
}

// resolve records the first match for s. A concurrent second match loses the swap and is dropped.
func (r *run) resolve(s *slot, cand string, pos int64) {
	if !s.resolved.CompareAndSwap(false, true) {
		return
	}
	s.candidate = cand
	s.position = pos
	if r.remaining.Add(-1) == 0 {
		r.closeDone.Do(func() { close(r.done) })
	}
}
