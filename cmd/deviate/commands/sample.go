// Copyright 2026 Lumetric
// This file is part of Deviate, the random-sampling library of the
// Lumetric image simulation toolkit.
//
// Deviate is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Deviate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Deviate. If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lumetric/deviate/dist"
	"github.com/lumetric/deviate/logger"
	"github.com/lumetric/deviate/rng"
	"github.com/lumetric/deviate/table"
)

// SampleCommand draws samples from a file-backed density.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draw pseudo-random samples from a tabulated density",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&FileFlag,
		&SeedFlag,
		&NumSamplesFlag,
		&XMinFlag,
		&XMaxFlag,
		&NPointsFlag,
		&InterpolantFlag,
		&logger.LogLevelFlag,
	},
	Description: "Reads a two-column ASCII density table and prints one sample per line.",
}

// newSampler builds a sampler from the command-line flags shared by
// the sample and plot commands.
func newSampler(ctx *cli.Context) (*dist.Sampler, error) {
	path := ctx.String(FileFlag.Name)
	if path == "" {
		return nil, fmt.Errorf("missing required flag --%s", FileFlag.Name)
	}

	var src *rng.Source
	if ctx.IsSet(SeedFlag.Name) {
		src = rng.NewWithSeed(ctx.Uint64(SeedFlag.Name))
	}

	cfg := dist.Config{
		Interpolant: table.Kind(ctx.String(InterpolantFlag.Name)),
		NPoints:     ctx.Int(NPointsFlag.Name),
	}
	if ctx.IsSet(XMinFlag.Name) {
		v := ctx.Float64(XMinFlag.Name)
		cfg.XMin = &v
	}
	if ctx.IsSet(XMaxFlag.Name) {
		v := ctx.Float64(XMaxFlag.Name)
		cfg.XMax = &v
	}
	return dist.New(src, dist.FromFile(path), cfg)
}

// sampleAction draws the requested number of samples and prints them.
func sampleAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Sample")

	sampler, err := newSampler(ctx)
	if err != nil {
		return err
	}
	n := ctx.Int(NumSamplesFlag.Name)
	log.Debugf("Sampling %d values over [%v, %v]", n, sampler.XMin(), sampler.XMax())
	w := ctx.App.Writer
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%v\n", sampler.Draw())
	}
	return nil
}
