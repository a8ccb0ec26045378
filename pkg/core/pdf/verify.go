package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Verify checks that the file at path is a structurally valid, non-empty PDF.
// It reads the document back independently of the renderer, so a truncated or
// corrupt artifact is caught before the run reports success.
func Verify(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if ctx.PageCount < 1 {
		return fmt.Errorf("document %s has no pages", path)
	}
	return nil
}
