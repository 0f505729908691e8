// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/work-diary/models"
)

// Op is the handle of one optimistic mutation. The mirror already shows its
// effect when the Op is returned; Wait reports how reconciliation ended.
type Op struct {
	done chan struct{}
	err  error
}

func newOp() *Op {
	return &Op{done: make(chan struct{})}
}

func completedOp(err error) *Op {
	op := newOp()
	op.finish(err)
	return op
}

func (o *Op) finish(err error) {
	o.err = err
	close(o.done)
}

// Done is closed once the server has confirmed or rejected the mutation.
func (o *Op) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the mutation is reconciled and returns the error that
// was surfaced to the user, or nil.
func (o *Op) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// entryQueues runs the tasks of one entry strictly one after another while
// tasks of different entries run in parallel. A drain goroutine lives as
// long as its entry has queued tasks.
type entryQueues struct {
	mu     sync.Mutex
	queues map[string][]func(context.Context)
	wg     sync.WaitGroup
}

func newEntryQueues() *entryQueues {
	return &entryQueues{queues: make(map[string][]func(context.Context))}
}

func (q *entryQueues) push(ctx context.Context, entryID string, task func(context.Context)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	tasks, running := q.queues[entryID]
	q.queues[entryID] = append(tasks, task)
	if running {
		return
	}

	q.wg.Add(1)
	go q.drain(ctx, entryID)
}

func (q *entryQueues) drain(ctx context.Context, entryID string) {
	defer q.wg.Done()

	for {
		q.mu.Lock()
		tasks := q.queues[entryID]
		if len(tasks) == 0 {
			delete(q.queues, entryID)
			q.mu.Unlock()
			return
		}
		task := tasks[0]
		q.queues[entryID] = tasks[1:]
		q.mu.Unlock()

		task(ctx)
	}
}

// idle is closed when no entry has queued or running tasks.
func (q *entryQueues) idle() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(ch)
	}()
	return ch
}

// todoAliases maps temporary todo ids to the ids the server assigned.
type todoAliases struct {
	mu  sync.RWMutex
	ids map[string]string
}

func newTodoAliases() *todoAliases {
	return &todoAliases{ids: make(map[string]string)}
}

func (a *todoAliases) bind(tempID, id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ids[tempID] = id
}

// lookup returns the server id for todoID. Temporary ids that were never
// confirmed are not found.
func (a *todoAliases) lookup(todoID string) (string, bool) {
	if !models.IsTempID(todoID) {
		return todoID, true
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	id, ok := a.ids[todoID]
	return id, ok
}

// resolve is lookup falling back to todoID itself.
func (a *todoAliases) resolve(todoID string) string {
	if id, ok := a.lookup(todoID); ok {
		return id
	}
	return todoID
}
