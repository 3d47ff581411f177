// Package runner drives a single pomsync run: locate the manifests, read
// the version, rewrite the selected tag and save the target.
package runner

import (
	"context"
	"fmt"

	"github.com/indaco/pomsync/internal/config"
	"github.com/indaco/pomsync/internal/core"
	"github.com/indaco/pomsync/internal/locator"
	"github.com/indaco/pomsync/internal/manifest"
	"github.com/indaco/pomsync/internal/params"
	"github.com/indaco/pomsync/internal/printer"
	"github.com/indaco/pomsync/internal/semver"
)

// Report summarizes a successful run.
type Report struct {
	Source  string
	Target  string
	Version string
	Change  manifest.Result

	// Written is false for dry runs.
	Written bool
}

// Runner wires the locator and manifest operations together.
type Runner struct {
	fs        core.FileSystem
	cfg       *config.Config
	locator   *locator.Service
	extractor manifest.Extractor
	replacer  manifest.Replacer
}

// New creates a Runner. A nil cfg falls back to config.Default.
func New(fs core.FileSystem, cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{
		fs:        fs,
		cfg:       cfg,
		locator:   locator.NewService(fs),
		extractor: manifest.NewExtractor(cfg),
		replacer:  manifest.NewReplacer(cfg),
	}
}

// Run executes p. The first failure ends the run and nothing after it
// happens; in particular the target is never written on error.
func (r *Runner) Run(ctx context.Context, p params.Params) (*Report, error) {
	paths := locator.Paths{Source: p.SourcePath, Target: p.TargetPath}
	if p.Mode == params.ModeDiscovery {
		printer.PrintFaint(fmt.Sprintf("Searching %s", p.WorkingDir))
		located, err := r.locator.Locate(ctx, r.cfg.SourceName, r.cfg.TargetName, p.WorkingDir)
		if err != nil {
			return nil, err
		}
		paths = located
	}

	version, err := r.extractor.ExtractFile(ctx, r.fs, paths.Source)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Version %s read from %s\n", printer.Bold(version), paths.Source)
	if !semver.IsValid(version) {
		printer.PrintWarning(fmt.Sprintf("Warning: %q is not a semantic version, copying it as is", version))
	}

	change, err := r.replacer.ReplaceFile(ctx, r.fs, paths.Target, version, int(p.Index))
	if err != nil {
		return nil, err
	}
	printChange(paths.Target, int(p.Index), change)
	warnOnDowngrade(change.Previous, version)

	report := &Report{
		Source:  paths.Source,
		Target:  paths.Target,
		Version: version,
		Change:  change,
	}

	if p.DryRun {
		printer.PrintInfo(fmt.Sprintf("Dry run: %s was not written", paths.Target))
		return report, nil
	}

	if err := manifest.WriteFile(ctx, r.fs, paths.Target, change.Text); err != nil {
		return nil, err
	}
	report.Written = true

	if change.Changed() {
		printer.PrintSuccess(fmt.Sprintf("✓ %s updated to %s", paths.Target, version))
	} else {
		fmt.Printf("%s %s already at %s\n", printer.SuccessBadge("✓"), paths.Target, version)
	}
	return report, nil
}

func printChange(target string, index int, change manifest.Result) {
	fmt.Printf("%s line %d (occurrence %d of %d):\n", target, change.LineNumber, index, change.Occurrences)
	fmt.Printf("  %s %s\n", printer.Error("-"), change.Before)
	fmt.Printf("  %s %s\n", printer.Success("+"), change.After)
	if change.Changed() {
		fmt.Printf("  %s %s\n", printer.Faint("~"), renderInlineDiff(change.Before, change.After))
	}
}

func warnOnDowngrade(previous, next string) {
	prev, err := semver.Parse(previous)
	if err != nil {
		return
	}
	nv, err := semver.Parse(next)
	if err != nil {
		return
	}
	if nv.Compare(prev) < 0 {
		printer.PrintWarning(fmt.Sprintf("Warning: %s is older than the replaced %s", nv.String(), prev.String()))
	}
}
