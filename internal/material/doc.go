// Package material provides the monotonic stress-strain laws used by
// section fibers.
//
// Concrete laws: Hognestad, Todeschini, Mander.
// Steel laws: Bilinear, Multilinear, RambergOsgood, MenegottoPinto,
// CustomTrilinear.
//
// Every law is immutable after construction and safe to share between
// fibers and goroutines. Invalid parameters are rejected by the
// constructors with a *ConfigError.
//
// Default concrete parameters are derived from f'c with a unit guess:
// f'c above 15 is read as MPa, otherwise as ksi.
package material
