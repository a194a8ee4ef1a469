package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/cneate93/btdoctor/internal/banner"
	"github.com/cneate93/btdoctor/internal/catalog"
	"github.com/cneate93/btdoctor/internal/logx"
	"github.com/cneate93/btdoctor/internal/policy"
	"github.com/cneate93/btdoctor/internal/report"
	"github.com/cneate93/btdoctor/internal/runner"
	"github.com/cneate93/btdoctor/internal/session"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

type stdPrinter struct{}

func (stdPrinter) Println(args ...interface{}) {
	fmt.Println(args...)
}

func (stdPrinter) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func main() {
	vendorsFlag := flag.String("vendors", "vendors.json", "Vendor prefix table (JSON)")
	devicesFlag := flag.String("devices", "known_devices.json", "Known device catalog (JSON)")
	problemsFlag := flag.String("problems", "problems.json", "Problem policy table (JSON)")
	typeFlag := flag.String("type", "", "Device type (headphone/mouse/earphone)")
	vendorFlag := flag.String("vendor", "", "Vendor name")
	modelFlag := flag.String("model", "", "Model name")
	macFlag := flag.String("mac", "", "Device MAC address (AA:BB:CC:DD:EE:FF)")
	problemFlag := flag.String("problem", "", "Problem key or 1-based number; skips the interactive prompts")
	yesFlag := flag.Bool("yes", false, "Execute remediation commands without asking")
	outFlag := flag.String("out", "", "Write an HTML session report to the given path")
	jsonFlag := flag.String("json", "", "Write session results as indented JSON to the given path")
	bundleFlag := flag.Bool("bundle", false, "Write zipped evidence bundle (btdoctor-evidence-YYYYMMDD-HHMM.zip)")
	timeoutFlag := flag.Duration("timeout", runner.DefaultTimeout, "Timeout per remediation command (default 15s)")
	noBannerFlag := flag.Bool("no-banner", false, "Skip the banner menu")
	verboseFlag := flag.Bool("verbose", false, "Enable verbose logging to btdoctor.log")
	flag.Parse()

	if err := logx.Configure(*verboseFlag); err != nil {
		fmt.Println("Unable to enable verbose logging:", err)
	} else if *verboseFlag {
		defer logx.Close()
	}

	flagsSet := map[string]bool{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})
	nonInteractive := flagsSet["problem"]

	paths := catalog.Paths{
		Vendors:  stringFlagOrEnv(*vendorsFlag, flagsSet["vendors"], "BTDOCTOR_VENDORS"),
		Devices:  stringFlagOrEnv(*devicesFlag, flagsSet["devices"], "BTDOCTOR_DEVICES"),
		Problems: stringFlagOrEnv(*problemsFlag, flagsSet["problems"], "BTDOCTOR_PROBLEMS"),
	}
	tables, warnings := catalog.Load(paths)
	for _, w := range warnings {
		fmt.Println(warnStyle.Render("[warn] " + w))
		log.Println("table load warning:", w)
	}

	fmt.Println("== Bluetooth Troubleshooter ==")

	var rl *readline.Instance
	if !nonInteractive {
		var err error
		rl, err = readline.New("> ")
		if err != nil {
			fmt.Println("Unable to initialize interactive input:", err)
			os.Exit(1)
		}
		defer rl.Close()
	}
	prompt := func(label string) string {
		if rl == nil {
			return ""
		}
		rl.SetPrompt(label)
		line, err := rl.Readline()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(line)
	}
	yesno := func(label string) bool {
		for {
			switch strings.ToLower(prompt(label + " [y/n]: ")) {
			case "y", "yes":
				return true
			case "n", "no", "":
				return false
			}
		}
	}

	if !nonInteractive && !*noBannerFlag {
		showBannerMenu(prompt)
	}

	in := session.Inputs{
		DeviceType: *typeFlag,
		Vendor:     *vendorFlag,
		Model:      *modelFlag,
		MAC:        *macFlag,
		Problem:    *problemFlag,
		AutoRun:    *yesFlag,
	}

	if !nonInteractive {
		if in.DeviceType == "" {
			in.DeviceType = prompt("Device type (headphone/mouse/earphone): ")
		}
		if in.Vendor == "" {
			in.Vendor = prompt("Vendor name: ")
		}
		if devs := tables.ModelsFor(in.Vendor); len(devs) > 0 {
			fmt.Printf("Known %s devices:\n", in.Vendor)
			for _, d := range devs {
				fmt.Printf("  - %s (%s)\n", d.Model, d.Type)
			}
		}
		if in.Model == "" {
			in.Model = prompt("Model name: ")
		}
		if in.MAC == "" {
			in.MAC = prompt("MAC (AA:BB:CC:DD:EE:FF): ")
		}

		if guess, ok := tables.VendorFromMAC(in.MAC); ok {
			fmt.Println("\nDetected vendor via MAC:", guess)
		} else {
			fmt.Println("\nDetected vendor via MAC: unknown")
		}

		fmt.Println("\nAvailable problem policies:")
		for i, key := range tables.Problems.Keys() {
			p, _ := tables.Problems.Get(key)
			fmt.Printf("%d. %s — %s\n", i+1, key, p.Description)
		}
		in.Problem = prompt("Enter problem key or number: ")
	}

	log.Printf("Session inputs: type=%q vendor=%q model=%q mac=%q problem=%q", in.DeviceType, in.Vendor, in.Model, in.MAC, in.Problem)

	confirm := func(res report.Results) bool {
		fmt.Println("\n" + strings.Repeat("=", 40))
		fmt.Println(res.Plan)
		fmt.Println(strings.Repeat("=", 40))
		if in.AutoRun {
			return true
		}
		if nonInteractive {
			return false
		}
		return yesno("Execute commands automatically?")
	}

	r := &runner.Runner{Timeout: *timeoutFlag}
	res, err := session.Run(context.Background(), session.Params{
		Tables:   tables,
		Inputs:   in,
		Run:      r.Run,
		Printer:  stdPrinter{},
		Warnings: warnings,
		Confirm:  confirm,
	})
	if err != nil {
		var nf *policy.NotFoundError
		if errors.As(err, &nf) {
			fmt.Println(warnStyle.Render(nf.Error()))
		} else {
			fmt.Println(warnStyle.Render("Unable to resolve problem selection: " + err.Error()))
		}
		fmt.Println("No commands found to run.")
		log.Println("session ended without a matched policy:", err)
		return
	}

	if *outFlag != "" {
		if err := report.RenderHTML(res, *outFlag); err != nil {
			fmt.Println("Unable to write HTML report:", err)
			log.Println("HTML report error:", err)
		} else {
			fmt.Println("\n→ Report written to:", *outFlag)
			log.Println("HTML report written to", *outFlag)
		}
	}

	if *jsonFlag != "" {
		if err := report.WriteJSON(*jsonFlag, res); err != nil {
			fmt.Println("Unable to write JSON results:", err)
			log.Println("JSON results error:", err)
		} else {
			fmt.Println("→ JSON results written to:", *jsonFlag)
			log.Println("JSON results written to", *jsonFlag)
		}
	}

	if *bundleFlag {
		bundleName := fmt.Sprintf("btdoctor-evidence-%s.zip", res.When.Format("20060102-1504"))
		raws := map[string][]byte{}
		for i, exe := range res.Executions {
			name := fmt.Sprintf("command-%02d.txt", i+1)
			raws[name] = []byte("$ " + exe.Command + "\n" + exe.Output + "\n")
		}
		if err := report.WriteBundle(bundleName, res, raws); err != nil {
			fmt.Println("Unable to write evidence bundle:", err)
			log.Println("evidence bundle error:", err)
		} else {
			fmt.Println("→ Evidence bundle written to:", bundleName)
			log.Println("Evidence bundle written to", bundleName)
		}
	}

	log.Println("Session complete")
}

func showBannerMenu(prompt func(string) string) {
	fmt.Println("Banner options:")
	fmt.Println("1) ASCII banner")
	fmt.Println("2) ANSI color banner")
	fmt.Println("3) Open HTML preview")
	switch prompt("Choose (1/2/3) or skip: ") {
	case "1":
		if art := banner.ASCII(); art != "" {
			fmt.Println(art)
		}
	case "2":
		if art := banner.ANSI(); art != "" {
			fmt.Println(art)
		}
	case "3":
		if err := banner.OpenHTMLPreview(); err != nil {
			fmt.Println("Unable to open HTML preview:", err)
			log.Println("banner preview error:", err)
		}
	}
}

func stringFlagOrEnv(flagVal string, flagSet bool, envKeys ...string) string {
	val := strings.TrimSpace(flagVal)
	if flagSet {
		return val
	}
	for _, key := range envKeys {
		if envVal := strings.TrimSpace(os.Getenv(key)); envVal != "" {
			return envVal
		}
	}
	return val
}
