package sframe

import (
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/whileproc"
)

// CallFrame records a single active procedure call.
type CallFrame struct {
	Proc string    // name of the called procedure
	Args []float64 // evaluated arguments
}

func (cf CallFrame) String() string {
	args := make([]string, len(cf.Args))
	for i, a := range cf.Args {
		args[i] = whileproc.FormatNumber(a)
	}
	return cf.Proc + "(" + strings.Join(args, ",") + ")"
}

// CallStack is the stack of active procedure calls. Frames are pushed when
// a procedure body is entered and popped when it is left.
//
// The zero value is not usable, create call stacks with NewCallStack.
type CallStack struct {
	frames *linkedliststack.Stack
}

// NewCallStack creates an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{frames: linkedliststack.New()}
}

// PushFrame pushes a frame for a call of proc.
func (cs *CallStack) PushFrame(proc string, args []float64) {
	frame := CallFrame{Proc: proc, Args: args}
	cs.frames.Push(frame)
	tracer().P("call", proc).Debugf("pushing frame %s, depth %d", frame, cs.frames.Size())
}

// PopFrame pops the top-most frame.
func (cs *CallStack) PopFrame() CallFrame {
	f, ok := cs.frames.Pop()
	if !ok {
		panic("attempt to pop frame from empty call stack")
	}
	frame := f.(CallFrame)
	tracer().P("call", frame.Proc).Debugf("popping frame")
	return frame
}

// Depth returns the number of active calls.
func (cs *CallStack) Depth() int {
	return cs.frames.Size()
}

// Trace returns the active calls, innermost first.
func (cs *CallStack) Trace() []CallFrame {
	values := cs.frames.Values()
	trace := make([]CallFrame, len(values))
	for i, v := range values {
		trace[i] = v.(CallFrame)
	}
	return trace
}

// Clear drops all frames, e.g. after a runtime error unwound the stack.
func (cs *CallStack) Clear() {
	cs.frames.Clear()
}
