package boxfish

import (
	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

// scratchRegister is a register under evaluation.
type scratchRegister struct {
	value   bool
	history []bool
	touched bool
}

// gateResult is the outcome of sweeping every register over one move.
type gateResult struct {
	registers  []scratchRegister
	mismatches []grid.TileCoord
}

// vetoed reports whether an EQUAL gate refused the move.
func (r gateResult) vetoed() bool {
	return len(r.mismatches) > 0
}

// sweepGates applies the gates each register passes on its way from
// headBefore along travel. Nothing is written to the avatar; the caller
// commits the result only if the move was not vetoed.
func sweepGates(geo *stage.Geometry, a *Avatar, headBefore grid.TileCoord, travel grid.Travel) gateResult {
	var res gateResult

	for _, seg := range a.Segments {
		if seg.Register == nil {
			continue
		}
		reg := scratchRegister{
			value:   seg.Register.Value,
			history: seg.Register.history,
		}

		// Register i sweeps from i+1 tiles behind the head whether or not
		// the body is inflated.
		from := headBefore.Behind(seg.Index + 1)
		for _, c := range travel.Route(from) {
			gate, ok := geo.GateAt(c)
			if !ok {
				continue
			}
			if mismatch := reg.apply(gate); mismatch {
				res.mismatches = append(res.mismatches, gate.At)
			}
		}
		res.registers = append(res.registers, reg)
	}
	return res
}

// apply runs one gate on the register. It returns true on an EQUAL mismatch.
func (r *scratchRegister) apply(g stage.LogicGateTile) bool {
	switch g.Kind {
	case stage.GateAnd:
		r.record()
		r.value = r.value && g.Value
	case stage.GateOr:
		r.record()
		r.value = r.value || g.Value
	case stage.GateXor:
		r.record()
		r.value = r.value != g.Value
	case stage.GateNot:
		if g.Value {
			r.record()
			r.value = !r.value
		}
	case stage.GateUndo:
		if n := len(r.history); n > 0 {
			r.own()
			r.value = r.history[n-1]
			r.history = r.history[:n-1]
		}
	case stage.GateEqual:
		return r.value != g.Value
	}
	return false
}

// record pushes the current value onto the scratch history.
func (r *scratchRegister) record() {
	r.own()
	r.history = append(r.history, r.value)
}

// own detaches the scratch history from the register it was read from.
func (r *scratchRegister) own() {
	if !r.touched {
		r.history = append([]bool(nil), r.history...)
		r.touched = true
	}
}

// commitGates writes a non-vetoed result back to the avatar.
func commitGates(a *Avatar, res gateResult) {
	for i, reg := range a.Registers() {
		s := res.registers[i]
		reg.Value = s.value
		if s.touched {
			reg.history = s.history
		}
	}
}
