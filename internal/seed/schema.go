package seed

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// validate checks d against #Dataset in schema.cue.
// A fresh CUE context is used per call; contexts are not safe for concurrent use.
func validate(d *Dataset) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Dataset"))
	if !def.Exists() {
		return fmt.Errorf("schema has no #Dataset definition")
	}

	value := ctx.Encode(d)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
