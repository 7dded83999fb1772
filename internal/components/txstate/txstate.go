package txstate

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"
)

// Op names a write operation; each op owns exactly one state slot.
type Op string

const (
	OpApprove Op = "approve"
	OpStake   Op = "stake"
	OpClaim   Op = "claim"
)

type State uint32

const (
	Idle State = iota
	Pending
	Confirmed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the op accepts new input again.
func (s State) Terminal() bool {
	return s == Confirmed || s == Failed
}

var ErrPending = errors.New("operation is pending")

type Status struct {
	Op        Op
	State     State
	TxHash    common.Hash
	Err       error
	UpdatedAt time.Time
}

type entry struct {
	status Status
	seq    uint64
}

type Tracker struct {
	mu      sync.Mutex
	entries map[Op]*entry
	feed    event.Feed
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[Op]*entry),
		now:     time.Now,
	}
}

// Begin moves op to Pending. It fails with ErrPending while a previous submission
// of the same op has not settled; other ops are unaffected.
func (t *Tracker) Begin(op Op) (*Ticket, error) {
	t.mu.Lock()
	e, ok := t.entries[op]
	if !ok {
		e = &entry{status: Status{Op: op, State: Idle}}
		t.entries[op] = e
	}
	if e.status.State == Pending {
		t.mu.Unlock()
		return nil, errors.Wrapf(ErrPending, "%s", op)
	}
	e.seq++
	e.status = Status{Op: op, State: Pending, UpdatedAt: t.now()}
	st := e.status
	seq := e.seq
	t.mu.Unlock()

	t.feed.Send(st)
	return &Ticket{tracker: t, op: op, seq: seq}, nil
}

func (t *Tracker) Status(op Op) Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[op]; ok {
		return e.status
	}
	return Status{Op: op, State: Idle}
}

func (t *Tracker) IsPending(op Op) bool {
	return t.Status(op).State == Pending
}

// SubscribeStatusEvent delivers every state change. Send blocks until all
// subscribers have received, so subscribers must keep draining their channel.
func (t *Tracker) SubscribeStatusEvent(ch chan<- Status) event.Subscription {
	return t.feed.Subscribe(ch)
}

func (t *Tracker) update(tk *Ticket, fn func(s *Status)) (Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[tk.op]
	if !ok || e.seq != tk.seq {
		return Status{}, false
	}
	fn(&e.status)
	e.status.UpdatedAt = t.now()
	return e.status, true
}

// Ticket is the handle of one submission. Settle is effective once; later calls
// are ignored so the pending slot is cleared exactly once.
type Ticket struct {
	tracker *Tracker
	op      Op
	seq     uint64
	once    sync.Once
}

func (tk *Ticket) Op() Op {
	return tk.op
}

// SetTxHash records the hash once the transaction has been handed to the node.
func (tk *Ticket) SetTxHash(hash common.Hash) {
	st, ok := tk.tracker.update(tk, func(s *Status) {
		if s.State == Pending {
			s.TxHash = hash
		}
	})
	if ok {
		tk.tracker.feed.Send(st)
	}
}

// Settle moves the op to Confirmed (err == nil) or Failed. It returns false when
// the ticket was already settled.
func (tk *Ticket) Settle(err error) bool {
	settled := false
	tk.once.Do(func() {
		st, ok := tk.tracker.update(tk, func(s *Status) {
			s.Err = err
			if err == nil {
				s.State = Confirmed
			} else {
				s.State = Failed
			}
		})
		settled = true
		if ok {
			tk.tracker.feed.Send(st)
		}
	})
	return settled
}
