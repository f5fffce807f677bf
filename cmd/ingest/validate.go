package main

import (
	"context"
	"fmt"

	"fitbot/internal/util"

	"github.com/pkg/errors"
)

func runValidate(ctx context.Context, datasets []dataset) error {
	for _, d := range datasets {
		fmt.Printf("Validating %s dataset: %s\n", d.collection, d.location)

		parsed, err := d.parse(ctx)
		if err != nil {
			return err
		}

		if len(parsed.Documents) == 0 {
			return errors.Errorf("%s dataset produced no documents", d.collection)
		}

		fmt.Printf("  ✅ %d documents (%d rows skipped)\n", len(parsed.Documents), parsed.Skipped)
		fmt.Printf("  ✅ %s, sha256 %s\n", util.FormatBytes(parsed.size), parsed.checksum)
	}

	fmt.Println("✅ Validation passed!")

	return nil
}
