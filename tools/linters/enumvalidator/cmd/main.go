// Command enumvalidator flags string literals assigned to enum-typed fields
// such as model.WorkspaceType or model.InvitationStatus.
//
//	go run ./tools/linters/enumvalidator/cmd ./internal/...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"tekimax.app/docs/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
