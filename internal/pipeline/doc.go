// Package pipeline fans batch scoring out across worker goroutines.
//
// Each read pair is aligned independently against a read-only lookup,
// so the only coordination needed is the bounded errgroup and a
// fixed-size result slice indexed by input position.
package pipeline
