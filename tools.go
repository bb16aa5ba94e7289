//go:build tools

package macroman

import (
	_ "golang.org/x/tools/cmd/stringer"
)
