package utils

const (
	NODETOL = 1.e-12
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func (op EvalOp) Eval(val, target float64) bool {
	switch op {
	case Equal:
		return val == target
	case Less:
		return val < target
	case Greater:
		return val > target
	case LessOrEqual:
		return val <= target
	case GreaterOrEqual:
		return val >= target
	}
	return false
}
