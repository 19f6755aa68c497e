package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// UpgradeConfigRenderer prints the generated configuration on stdout, or a
// confirmation when it was written to a file
type UpgradeConfigRenderer struct {
	out io.Writer
}

// NewUpgradeConfigRenderer creates a new upgrade config renderer
func NewUpgradeConfigRenderer(out io.Writer) *UpgradeConfigRenderer {
	return &UpgradeConfigRenderer{out: out}
}

// Render renders the result of the generate command
func (r *UpgradeConfigRenderer) Render(result *usecase.GenerateUpgradeConfigResult) error {
	if result.Written != "" {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Configuration for plan %s written to %s",
			result.Plan.Name, getRelativePath(result.Written))))
		return nil
	}
	return writeJSON(r.out, result.Config)
}

var _ Renderer[*usecase.GenerateUpgradeConfigResult] = (*UpgradeConfigRenderer)(nil)
