package stress

import (
	"context"
	"math/rand"
	"sort"

	"github.com/eaugeas/ordtree/container/tree"
	"github.com/eaugeas/ordtree/errors"
	"github.com/eaugeas/ordtree/logs"
)

// Error codes reported by a Workload when the tree does not
// behave as the reference set it is checked against
const (
	ErrCodeInsert = iota + 100
	ErrCodeFind
	ErrCodeRemove
	ErrCodeIteration
	ErrCodeDestroy
	ErrCodeCanceled
)

const defaultCheckEvery = 256

// Workload is a randomized sequence of operations run against
// a fresh tree. Every operation is mirrored on a reference set
// and the tree is checked against it as the workload goes.
type Workload struct {
	// ID identifies the workload in reports
	ID int

	// Seed of the random sequence of operations
	Seed int64

	// Ops is the number of operations to run
	Ops int

	// Keys is the size of the key space, keys are taken
	// from [0, Keys)
	Keys int

	// RemoveRatio is the share of operations that are removals,
	// the rest are split between insertions and lookups
	RemoveRatio float64

	// NodeLimit bounds the number of nodes the tree can
	// allocate. A NodeLimit <= 0 means no bound
	NodeLimit int

	// CheckEvery is the number of operations between two
	// complete checks of the tree
	CheckEvery int
}

// Report summarizes the run of a Workload
type Report struct {
	ID            int
	Inserts       int
	Duplicates    int
	AllocFailures int
	Finds         int
	Removes       int
	Misses        int
	Checks        int
	Destroyed     int
	Len           int
	Height        int
}

// Log implementation of logs.Loggable
func (r Report) Log(fields logs.Fields) {
	fields.Add("workload", r.ID)
	fields.Add("inserts", r.Inserts)
	fields.Add("duplicates", r.Duplicates)
	fields.Add("alloc_failures", r.AllocFailures)
	fields.Add("finds", r.Finds)
	fields.Add("removes", r.Removes)
	fields.Add("misses", r.Misses)
	fields.Add("checks", r.Checks)
	fields.Add("destroyed", r.Destroyed)
	fields.Add("len", r.Len)
	fields.Add("height", r.Height)
}

type run struct {
	w         Workload
	rnd       *rand.Rand
	tree      *tree.Tree[int]
	reference map[int]struct{}
	destroyed map[int]int
	report    Report
}

// Run runs the workload. It returns the report of the operations
// run so far along with an *errors.Error as soon as the tree
// behaves differently from the reference set.
func (w Workload) Run(ctx context.Context) (Report, error) {
	if w.CheckEvery <= 0 {
		w.CheckEvery = defaultCheckEvery
	}
	if w.Keys <= 0 {
		w.Keys = 1
	}

	r := &run{
		w:         w,
		rnd:       rand.New(rand.NewSource(w.Seed)),
		reference: make(map[int]struct{}),
		destroyed: make(map[int]int),
		report:    Report{ID: w.ID},
	}

	r.tree = tree.NewRedBlackTreeWithOpts[int](tree.OrderedLesser[int]{}, tree.TreeOpts[int]{
		Destroy:  func(v int) { r.destroyed[v]++ },
		FreeList: tree.NewBoundedFreeList[int](tree.DefaultFreeListSize, w.NodeLimit),
	})

	for i := 0; i < w.Ops; i++ {
		if i%w.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r.report, errors.Newf(ErrCodeCanceled, "workload %d canceled: %s", w.ID, err)
			}
			if err := r.check(); err != nil {
				return r.report, err
			}
		}

		if err := r.step(); err != nil {
			return r.report, err
		}
	}

	if err := r.check(); err != nil {
		return r.report, err
	}

	r.report.Len = r.tree.Len()
	r.report.Height = r.tree.Height()
	err := r.destroy()
	return r.report, err
}

func (r *run) step() error {
	key := r.rnd.Intn(r.w.Keys)
	_, present := r.reference[key]

	switch p := r.rnd.Float64(); {
	case p < r.w.RemoveRatio:
		return r.remove(key, present)
	case p < r.w.RemoveRatio+(1-r.w.RemoveRatio)/3:
		return r.find(key, present)
	default:
		return r.insert(key, present)
	}
}

func (r *run) insert(key int, present bool) error {
	v, ok := r.tree.Insert(key)
	if !ok {
		if present || r.w.NodeLimit <= 0 || r.tree.Len() < r.w.NodeLimit {
			return errors.Newf(ErrCodeInsert, "unexpected allocation failure inserting %d with len %d", key, r.tree.Len())
		}
		r.report.AllocFailures++
		return nil
	}

	if v != key {
		return errors.Newf(ErrCodeInsert, "insert of %d returned %d", key, v)
	}

	if present {
		r.report.Duplicates++
	} else {
		r.report.Inserts++
		r.reference[key] = struct{}{}
	}

	if r.tree.Len() != len(r.reference) {
		return errors.Newf(ErrCodeInsert, "tree len %d after insert of %d, expected %d", r.tree.Len(), key, len(r.reference))
	}

	return nil
}

func (r *run) find(key int, present bool) error {
	r.report.Finds++

	v, ok := r.tree.Find(key)
	if ok != present {
		return errors.Newf(ErrCodeFind, "find of %d returned %t, expected %t", key, ok, present)
	}

	if ok && v != key {
		return errors.Newf(ErrCodeFind, "find of %d returned %d", key, v)
	}

	return nil
}

func (r *run) remove(key int, present bool) error {
	before := r.destroyed[key]

	if ok := r.tree.Remove(key); ok != present {
		return errors.Newf(ErrCodeRemove, "remove of %d returned %t, expected %t", key, ok, present)
	}

	if !present {
		r.report.Misses++
		if r.destroyed[key] != before {
			return errors.Newf(ErrCodeRemove, "missing key %d was destroyed", key)
		}
		return nil
	}

	r.report.Removes++
	delete(r.reference, key)

	if r.destroyed[key] != before+1 {
		return errors.Newf(ErrCodeRemove, "removed key %d destroyed %d times", key, r.destroyed[key]-before)
	}

	return nil
}

// check verifies the tree properties and walks the tree in
// both directions comparing it with the reference set
func (r *run) check() error {
	r.report.Checks++

	if err := r.tree.Verify(); err != nil {
		return err
	}

	expected := make([]int, 0, len(r.reference))
	for k := range r.reference {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	var it tree.Iterator[int]
	i := 0
	for v, ok := it.First(r.tree); ok; v, ok = it.Next() {
		if i >= len(expected) || v != expected[i] {
			return errors.Newf(ErrCodeIteration, "forward iteration returned %d at position %d", v, i)
		}
		i++
	}
	if i != len(expected) {
		return errors.Newf(ErrCodeIteration, "forward iteration stopped after %d of %d values", i, len(expected))
	}

	for v, ok := it.Last(r.tree); ok; v, ok = it.Prev() {
		i--
		if i < 0 || v != expected[i] {
			return errors.Newf(ErrCodeIteration, "backward iteration returned %d at position %d", v, i)
		}
	}
	if i != 0 {
		return errors.Newf(ErrCodeIteration, "backward iteration stopped %d values early", i)
	}

	return nil
}

// destroy tears the tree down and checks that every value left
// in the tree was destroyed exactly once
func (r *run) destroy() error {
	before := make(map[int]int, len(r.destroyed))
	for k, v := range r.destroyed {
		before[k] = v
	}

	r.tree.Destroy()

	for k := range r.reference {
		if r.destroyed[k] != before[k]+1 {
			return errors.Newf(ErrCodeDestroy, "value %d destroyed %d times on teardown", k, r.destroyed[k]-before[k])
		}
		r.report.Destroyed++
	}

	if !r.tree.Empty() {
		return errors.Newf(ErrCodeDestroy, "tree holds %d values after teardown", r.tree.Len())
	}

	return nil
}
