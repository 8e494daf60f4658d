package scene

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/brickatlas/pkg/brick"
)

// Index errors. A brick referring past the end of a save table is a load
// failure; nothing is substituted.
var (
	ErrAssetIndex   = errors.New("asset index out of range")
	ErrPaletteIndex = errors.New("palette index out of range")
)

// maxReported caps how many offending bricks are listed in one error.
const maxReported = 16

// Validate checks every brick's asset and palette index against the save's
// tables. All offenders up to a cap are reported together.
func Validate(save *brick.Save) error {
	var err error
	reported := 0
	skipped := 0

	report := func(e error) {
		if reported < maxReported {
			err = multierr.Append(err, e)
			reported++
			return
		}
		skipped++
	}

	for i, b := range save.Bricks {
		if int(b.AssetIndex) >= len(save.Assets) {
			report(fmt.Errorf("brick %d: %w: %d (have %d)", i, ErrAssetIndex, b.AssetIndex, len(save.Assets)))
		}
		if !b.Color.Inline && int(b.Color.Index) >= len(save.Palette) {
			report(fmt.Errorf("brick %d: %w: %d (have %d)", i, ErrPaletteIndex, b.Color.Index, len(save.Palette)))
		}
	}

	if skipped > 0 {
		err = multierr.Append(err, fmt.Errorf("%d more index errors", skipped))
	}
	return err
}
