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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lumetric/deviate/cmd/deviate/commands"
)

func main() {
	app := &cli.App{
		Name:      "Deviate",
		HelpName:  "deviate",
		Usage:     "draw pseudo-random samples from user-defined probability distributions",
		Copyright: "(c) 2026 Lumetric",
		Commands: []*cli.Command{
			&commands.SampleCommand,
			&commands.PlotCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
