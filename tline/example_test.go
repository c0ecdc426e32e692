package tline_test

import (
	"fmt"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/tline"
)

// ExampleAnalyze demonstrates basic reflection analysis of a 100 Ω
// load on a 50 Ω line.
func ExampleAnalyze() {
	rep, _ := tline.Analyze(50, complex(100, 0))
	fmt.Printf("Gamma=%.3f VSWR=%.1f\n", real(rep.Gamma), rep.VSWR)
	// Output:
	// Gamma=0.333 VSWR=2.0
}

// ExampleDesignQuarterWave sizes a quarter-wave transformer for a
// 100 Ω antenna on a 50 Ω feed at 1 GHz.
func ExampleDesignQuarterWave() {
	qw, _ := tline.DesignQuarterWave(50, 100, 1e9, core.C0, 1.5)
	fmt.Printf("Zt=%.2f ohm, VSWR %.0f -> %.0f\n", qw.ZTransformer, qw.VSWRBefore, qw.VSWRAfter)
	// Output:
	// Zt=70.71 ohm, VSWR 2 -> 1
}
