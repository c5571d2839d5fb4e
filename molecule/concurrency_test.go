// Package molecule_test verifies thread-safety of Mol under concurrent use.
package molecule_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/moldesc/molecule"
	"github.com/stretchr/testify/require"
)

// TestConcurrentBuildAndRead mixes AddAtom/AddBond with readers; run with -race.
func TestConcurrentBuildAndRead(t *testing.T) {
	m := molecule.New()
	hub, err := m.AddAtom("C")
	require.NoError(t, err)

	const num = 100
	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			idx, err := m.AddAtom("C")
			if err == nil {
				_ = m.AddBond(hub, idx)
			}
		}()
		go func() {
			defer wg.Done()
			for _, a := range m.Atoms() {
				_ = a.Degree()
			}
			_ = m.Connected()
		}()
	}
	wg.Wait()

	require.Equal(t, num+1, m.NumAtoms())
	require.Equal(t, num, m.Atoms()[hub].Degree())
	require.True(t, m.Connected())
}
