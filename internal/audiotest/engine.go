// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"slices"
	"sync"

	"github.com/ik5/parameq/filter"
	"github.com/ik5/parameq/preset"
)

// ErrInjected is the default error returned by a Failure with no Err.
var ErrInjected = errors.New("injected failure")

// Failure makes the At-th call (1-based) of one Factory step fail.
type Failure struct {
	At  int
	Err error
}

func (f Failure) hit(call int) error {
	if f.At == 0 || f.At != call {
		return nil
	}
	if f.Err == nil {
		return ErrInjected
	}
	return f.Err
}

// Factory is a filter.Factory that records the engines it creates.
// Engines shift every sample right by Shift bits, so zero stays zero and
// the number of stages a signal went through can be read off the output.
type Factory struct {
	Shift int

	FailNew       Failure
	FailConfigure Failure
	FailStart     Failure

	mtx     *sync.Mutex
	engines []*Engine
	calls   [3]int
}

var _ filter.Factory = (*Factory)(nil)

func NewFactory() *Factory {
	return &Factory{mtx: &sync.Mutex{}}
}

func (f *Factory) NewEngine(kind preset.Kind) (filter.Engine, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.calls[0]++
	if err := f.FailNew.hit(f.calls[0]); err != nil {
		return nil, err
	}

	e := &Engine{kind: kind, shift: f.Shift, factory: f}
	f.engines = append(f.engines, e)

	return e, nil
}

// Engines returns the engines created so far in creation order.
func (f *Factory) Engines() []*Engine {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return slices.Clone(f.engines)
}

// Created returns how many engines were created.
func (f *Factory) Created() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return len(f.engines)
}

// Live returns how many created engines have not been closed.
func (f *Factory) Live() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	var n int
	for _, e := range f.engines {
		if !e.closed {
			n++
		}
	}
	return n
}

func (f *Factory) step(i int, fail Failure) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.calls[i]++
	return fail.hit(f.calls[i])
}

// Engine is the mock filter.Engine created by Factory.
type Engine struct {
	kind    preset.Kind
	shift   int
	factory *Factory

	Args    []string
	Info    filter.SignalInfo
	Started bool
	Flows   int

	closed bool
	clips  uint64
}

func (e *Engine) Kind() preset.Kind { return e.kind }
func (e *Engine) Clips() uint64     { return e.clips }

func (e *Engine) Configure(args []string) error {
	if err := e.factory.step(1, e.factory.FailConfigure); err != nil {
		return err
	}
	e.Args = slices.Clone(args)

	return nil
}

func (e *Engine) Start(info filter.SignalInfo) error {
	if err := e.factory.step(2, e.factory.FailStart); err != nil {
		return err
	}
	e.Info = info
	e.Started = true

	return nil
}

func (e *Engine) Flow(in, out []int32) (int, int) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = in[i] >> e.shift
	}
	e.Flows++

	return n, n
}

func (e *Engine) Close() error {
	e.factory.mtx.Lock()
	defer e.factory.mtx.Unlock()

	e.closed = true
	return nil
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	e.factory.mtx.Lock()
	defer e.factory.mtx.Unlock()

	return e.closed
}
