// Package life runs Conway's Game of Life on a toroidal grid whose rows are
// bitvec.BitVector values.
//
// Each generation is computed a whole row at a time: the eight neighbour
// rows are obtained by rotating the row above, the row itself and the row
// below one column left and right, and summed with bit-sliced adders built
// from And, Xor and Or. Rows are evaluated in parallel.
//
// # Quick Start
//
//	sim, err := life.NewSimulation(32, 64, life.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	sim.Randomize()
//	runner := life.NewRunner(sim, 10) // 10 generations per second
//	err = runner.Run(ctx, 100, func(gen uint64, g *life.Grid) error {
//	    fmt.Println(gen, g.Population())
//	    return nil
//	})
//
// # Pattern Files
//
// LoadFile and SaveFile read and write the plaintext ("!Name:", 'O', '.')
// and Life 1.06 ("#Life 1.06", "x y") formats. A ".zst" or ".lz4" suffix
// wraps the file in a zstd or LZ4 frame.
package life
