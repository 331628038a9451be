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
	"github.com/urfave/cli/v2"

	"github.com/lumetric/deviate/logger"
	"github.com/lumetric/deviate/visualizer"
)

// PlotCommand renders a density table as an HTML page.
var PlotCommand = cli.Command{
	Action:    plotAction,
	Name:      "plot",
	Usage:     "render the density and cumulative tables of a distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&FileFlag,
		&XMinFlag,
		&XMaxFlag,
		&NPointsFlag,
		&InterpolantFlag,
		&OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: "Builds the sampler for a two-column ASCII density table and renders its internal tables as line charts.",
}

// plotAction builds the sampler and renders its tables.
func plotAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Plot")

	sampler, err := newSampler(ctx)
	if err != nil {
		return err
	}
	output := ctx.String(OutputFlag.Name)
	log.Noticef("Write distribution page %v", output)
	return visualizer.RenderHTML(sampler, ctx.String(FileFlag.Name), output)
}
