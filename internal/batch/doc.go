// Package batch runs scripts of tool invocations.
//
// A script is a name plus ordered steps, each naming a tool and its
// parameters. Scripts are read from YAML (goccy/go-yaml), TOML
// (pelletier/go-toml/v2) or JSON (bytedance/sonic), chosen by extension:
//
//	name: monthly
//	steps:
//	  - tool: math.compoundInterest
//	    params: {principal: 1000, rate: 0.05, times_compounded: 4, years: 2}
//	  - tool: math.median
//	    params: {numbers: [3, 1, 2]}
//
// Steps run sequentially; a failing step is recorded in the Report and the
// run continues.
package batch
