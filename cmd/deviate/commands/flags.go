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

	"github.com/lumetric/deviate/dist"
	"github.com/lumetric/deviate/table"
)

// Flags shared by the deviate commands.
var (
	FileFlag = cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "two-column ASCII file with the density table (x, p)",
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the uniform stream (default: time-based)",
	}
	NumSamplesFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of samples to draw",
		Value: 10,
	}
	XMinFlag = cli.Float64Flag{
		Name:  "xmin",
		Usage: "minimum desired sample value (default: table domain)",
	}
	XMaxFlag = cli.Float64Flag{
		Name:  "xmax",
		Usage: "maximum desired sample value (default: table domain)",
	}
	NPointsFlag = cli.IntFlag{
		Name:  "npoints",
		Usage: "resolution of the internal cumulative table",
		Value: dist.DefaultNPoints,
	}
	InterpolantFlag = cli.StringFlag{
		Name:  "interpolant",
		Usage: "interpolation scheme (\"linear\", \"spline\", \"ceil\")",
		Value: string(table.Linear),
	}
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "path of the rendered HTML page",
		Value:   "./distribution.html",
	}
)
