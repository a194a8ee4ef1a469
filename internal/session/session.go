// Package session orchestrates one diagnostic session: resolve the vendor
// from the MAC, match the described problem to a policy, format the plan,
// and optionally execute the remediation commands.
package session

import (
	"context"
	"log"
	"time"

	"github.com/cneate93/btdoctor/internal/catalog"
	"github.com/cneate93/btdoctor/internal/policy"
	"github.com/cneate93/btdoctor/internal/report"
	"github.com/cneate93/btdoctor/internal/runner"
)

// Printer receives human-readable progress output for the live console.
type Printer interface {
	Println(...interface{})
	Printf(string, ...interface{})
}

type noopPrinter struct{}

func (noopPrinter) Println(...interface{})        {}
func (noopPrinter) Printf(string, ...interface{}) {}

// Inputs are the answers to the interactive prompts (or their flag
// equivalents). Every field may be empty except Problem.
type Inputs struct {
	DeviceType string
	Vendor     string
	Model      string
	MAC        string
	Problem    string
	AutoRun    bool
}

// Params configures one session run.
type Params struct {
	Tables   *catalog.Tables
	Inputs   Inputs
	Run      runner.Func // nil means a real shell runner with the default timeout
	Printer  Printer
	Warnings []string // loader warnings carried into the results

	// Confirm, when set, is consulted after the plan is formatted and
	// decides whether the remediation commands actually run. When nil the
	// decision comes from Inputs.AutoRun.
	Confirm func(report.Results) bool
}

// Run performs the session. A policy that cannot be matched is returned as
// an error (a *policy.NotFoundError when nothing matched at all); any other
// failure inside the session degrades to output text rather than an error.
func Run(ctx context.Context, params Params) (report.Results, error) {
	printer := params.Printer
	if printer == nil {
		printer = noopPrinter{}
	}
	run := params.Run
	if run == nil {
		r := &runner.Runner{}
		run = r.Run
	}

	in := params.Inputs
	res := report.Results{
		When:       time.Now(),
		DeviceType: in.DeviceType,
		Vendor:     in.Vendor,
		Model:      in.Model,
		MAC:        in.MAC,
		Warnings:   params.Warnings,
	}

	if guess, ok := params.Tables.VendorFromMAC(in.MAC); ok {
		res.VendorGuess = guess
	}

	key, pol, err := policy.Match(params.Tables.Problems, in.Problem)
	if err != nil {
		log.Println("policy match error:", err)
		return res, err
	}
	res.PolicyKey = key
	log.Printf("Matched policy %q for input %q", key, in.Problem)

	subst := report.Subst{MAC: in.MAC, Vendor: in.Vendor, Model: in.Model}
	res.Plan = report.FormatPlan(pol, subst, res.VendorGuess, in.MAC != "")

	autoRun := in.AutoRun
	if params.Confirm != nil {
		autoRun = params.Confirm(res)
	}
	if !autoRun {
		return res, nil
	}

	for _, step := range pol.RemediationSteps {
		for _, tmpl := range step.Commands {
			select {
			case <-ctx.Done():
				log.Println("session cancelled:", ctx.Err())
				return res, nil
			default:
			}
			cmd := subst.ForExec(tmpl)
			printer.Printf("Running: %s\n", cmd)
			log.Println("Running remediation command:", cmd)
			exe := run(ctx, cmd)
			printer.Println(exe.Output)
			res.Executions = append(res.Executions, exe)
		}
	}
	return res, nil
}
