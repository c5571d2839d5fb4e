// SPDX-License-Identifier: MIT

package descriptor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/moldesc/molecule"
	"golang.org/x/sync/errgroup"
)

// Batch evaluates the set for every molecule in parallel, one Context per
// molecule, with at most WithWorkers goroutines.
//
// Results are index aligned with mols. Missing values never stop the batch;
// the first defect (or ctx cancellation) cancels the remaining molecules and
// is returned with the molecule index.
func (c *Calculator) Batch(ctx context.Context, mols []molecule.Molecule) ([]*Result, error) {
	batchID := uuid.NewString()
	log := c.logger.With("batch_id", batchID)
	start := time.Now()

	results := make([]*Result, len(mols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, mol := range mols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := c.Calculate(mol)
			if err != nil {
				return fmt.Errorf("molecule %d: %w", i, err)
			}
			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("batch aborted", "molecules", len(mols), "error", err)
		return nil, err
	}

	missing := 0
	for _, r := range results {
		missing += r.countMissing()
	}
	log.Info("batch done",
		"molecules", len(mols),
		"descriptors", len(c.descs),
		"missing", missing,
		"elapsed", time.Since(start),
	)

	return results, nil
}
