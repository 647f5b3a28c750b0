package evaluator

// closure is an operand filter together with the frame it was written in.
type closure struct {
	filter *Filter
	env    *frame
}

// frame binds the parameters of one definition call. Parameters are
// filters, not values: each one is evaluated lazily in the caller's frame
// whenever the callee refers to it.
type frame struct {
	args []closure
}

func newFrame(args []*Filter, caller *frame) *frame {
	if len(args) == 0 {
		return nil
	}
	f := &frame{args: make([]closure, len(args))}
	for i, a := range args {
		f.args[i] = closure{filter: a, env: caller}
	}
	return f
}

func (f *frame) param(i int) (closure, bool) {
	if f == nil || i < 0 || i >= len(f.args) {
		return closure{}, false
	}
	return f.args[i], true
}
