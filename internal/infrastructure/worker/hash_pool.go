package worker

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelworks/hms/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type hashOp int

const (
	opHash hashOp = iota
	opCompare
)

type hashJob struct {
	op       hashOp
	password string
	hash     string
	reply    chan hashResult
}

type hashResult struct {
	hash string
	err  error
}

// HashPool runs bcrypt operations on a fixed set of workers so CPU-bound
// hashing does not pile up on request goroutines. Jobs are distributed
// round-robin; each call blocks until its result arrives or ctx is done.
type HashPool struct {
	workers []chan hashJob
	cost    int
	next    atomic.Uint64
	log     zerolog.Logger
}

// NewHashPool creates a pool with numWorkers workers hashing at the given
// bcrypt cost. Non-positive arguments fall back to defaults.
func NewHashPool(numWorkers, cost int, log zerolog.Logger) *HashPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	p := &HashPool{
		workers: make([]chan hashJob, numWorkers),
		cost:    cost,
		log:     log,
	}
	for i := range p.workers {
		p.workers[i] = make(chan hashJob, channelBuffer)
	}
	return p
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *HashPool) Start(ctx context.Context) {
	for i, ch := range p.workers {
		go p.runWorker(ctx, i, ch)
	}
}

// Hash derives a salted bcrypt hash of password.
func (p *HashPool) Hash(ctx context.Context, password string) (string, error) {
	res, err := p.submit(ctx, hashJob{op: opHash, password: password})
	if err != nil {
		return "", err
	}
	return res.hash, res.err
}

// Compare returns nil when password matches hash. The comparison runs on the
// pool because bcrypt recomputes the full derivation.
func (p *HashPool) Compare(ctx context.Context, hash, password string) error {
	res, err := p.submit(ctx, hashJob{op: opCompare, hash: hash, password: password})
	if err != nil {
		return err
	}
	return res.err
}

func (p *HashPool) submit(ctx context.Context, job hashJob) (hashResult, error) {
	job.reply = make(chan hashResult, 1)
	idx := int(p.next.Add(1)) % len(p.workers)

	select {
	case p.workers[idx] <- job:
		metrics.HashPoolDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(p.workers[idx])))
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	}

	select {
	case res := <-job.reply:
		return res, nil
	case <-ctx.Done():
		return hashResult{}, ctx.Err()
	}
}

func (p *HashPool) runWorker(ctx context.Context, id int, ch <-chan hashJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.HashPoolDepth.WithLabelValues(worker).Set(float64(len(ch)))

			start := time.Now()
			var res hashResult
			switch job.op {
			case opHash:
				b, err := bcrypt.GenerateFromPassword([]byte(job.password), p.cost)
				res = hashResult{hash: string(b), err: err}
				metrics.HashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
			case opCompare:
				err := bcrypt.CompareHashAndPassword([]byte(job.hash), []byte(job.password))
				res = hashResult{err: err}
				metrics.HashDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
			}
			job.reply <- res
		}
	}
}
