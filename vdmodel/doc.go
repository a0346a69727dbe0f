// Package vdmodel encodes and decodes model blobs: the binary container
// format that carries a vehicle model's lookup tables (torque curves, grip
// maps, aerodynamic coefficient cubes) between the model toolchain and the
// simulator.
//
// # Format
//
// A blob holds many named tables. Tables are identified by the xxHash64 of
// their name, so the hot loading path is hash comparisons rather than
// string handling; the human-readable names, units, and axis labels travel
// separately in a YAML manifest (see Manifest and Registry).
//
// The payload stores each table as contiguous float64 columns (axes first,
// then the value grid) and may be compressed as a whole with Zstd, S2, or
// LZ4. An xxHash64 checksum over the stored payload detects corruption
// before any table is materialized.
//
// # Encoding
//
//	enc, err := vdmodel.NewEncoder(
//	    vdmodel.WithCompression(format.CompressionZstd),
//	)
//	// handle err
//	_ = enc.AddTable1D("engine.torque", torque)
//	_ = enc.AddTable2D("tire.grip", grip)
//	data, err := enc.Finish()
//
// # Decoding
//
//	blob, err := vdmodel.Decode(data)
//	// handle err
//	torque, err := blob.Table1D("engine.torque")
//
// Decoding re-runs full table validation through the lut constructors: a
// malformed table is never materialized, even from a blob with a valid
// checksum.
//
// # Guarantees
//
// Encoding and decoding happen at model build and load time only. Once a
// Blob has handed out its tables, queries run entirely inside the lut
// package with no further involvement of this package.
package vdmodel
