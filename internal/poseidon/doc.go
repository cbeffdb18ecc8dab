// Package poseidon implements the algebraic permutation used by the signature
// scheme as a hash-to-scalar primitive, together with the deterministic
// generation and validation of its parameters.
//
// # Parameters
//
// A parameter set fixes the state width t, the number of full rounds R_F, the
// number of partial rounds R_P, the S-box exponent α, a t×t MDS matrix and
// R_F+R_P rows of t round constants. Generate derives the matrices from the
// design parameters with the Grain LFSR procedure of the Poseidon reference
// implementation, so two independent implementations given the same inputs
// produce identical constants.
//
// Validate checks the shape of a parameter set and is applied to every set
// before a Permutation is built, whether generated or loaded from a file.
//
// # Round structure
//
// The permutation runs R_F/2 full rounds, then R_P partial rounds, then R_F/2
// full rounds. Every round adds the round constants, applies x^α (to every
// element in a full round, to element 0 only in a partial round) and
// multiplies the state by the MDS matrix. The Grain stream produces round
// constants in exactly this round order.
//
// # Parameter file
//
// LoadFile and SaveFile read and write the JSON schema
//
//	{
//	  "field": "bls12-381.field.Fr",
//	  "t": 4,
//	  "roundsFull": 8,
//	  "roundsPartial": 60,
//	  "sboxPower": 5,
//	  "mds": [["0x…", …], …],
//	  "roundConstants": [["0x…", …], …]
//	}
//
// with entries in the canonical field encoding of package field.
//
// Params and Permutation values are immutable once built and may be shared
// between goroutines.
package poseidon
