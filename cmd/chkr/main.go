/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"os"

	"github.com/GovTechSG/chkr/pkg/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args))
}
