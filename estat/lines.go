package estat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// seedOffset displaces line seeds off the starting charge so the
// singular self-contribution never enters.
const seedOffset = 0.01

// TraceFieldLines integrates field lines outward from the charge at
// startIdx. numLines seeds spread uniformly on a circle around the
// charge in the z plane of the charge; each line advances numSteps
// fixed steps along the unit field direction (reversed for a negative
// start charge) and terminates early when the field vanishes or the
// line comes within half a step of another charge.
func TraceFieldLines(charges []PointCharge, startIdx, numLines, numSteps int, stepSize, epsilon float64) [][]core.Vector3 {
	if startIdx < 0 || startIdx >= len(charges) || numLines <= 0 {
		return nil
	}
	start := charges[startIdx]
	sign := 1.0
	if start.Charge < 0 {
		sign = -1.0
	}

	lines := make([][]core.Vector3, 0, numLines)
	for i := 0; i < numLines; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(numLines)
		pos := core.Vector3{
			X: start.Position.X + seedOffset*math.Cos(angle),
			Y: start.Position.Y + seedOffset*math.Sin(angle),
			Z: start.Position.Z,
		}
		line := make([]core.Vector3, 0, numSteps+1)
		line = append(line, pos)

		for step := 0; step < numSteps; step++ {
			e := FieldAt(charges, pos, epsilon)
			mag := e.Norm()
			if mag < 1e-20 {
				break
			}
			pos = pos.Add(e.Scale(sign * stepSize / mag))
			line = append(line, pos)

			captured := false
			for j, c := range charges {
				if j == startIdx {
					continue
				}
				if pos.Sub(c.Position).Norm() < stepSize*0.5 {
					captured = true
					break
				}
			}
			if captured {
				break
			}
		}
		lines = append(lines, line)
	}
	return lines
}
