/*
Package xor provides the byte-level XOR primitives used when working through introductory cryptanalysis exercises.

Note that none of this is encryption in any meaningful sense, since every operation is trivially reversible with the key.

# How it works:

Every operation produces a new buffer and never modifies the caller's input.
A key is applied byte by byte, and when the last key byte is used the first is used again, operating like a ring buffer.

  - Fixed combines two buffers of equal length, which is the same as applying a key as long as the input.
  - SingleByte applies a one-byte key to every byte of the input.

Both operations are self-inverse: applying the same key twice returns the original input.

# General guidelines:
  - Fixed returns ErrLengthMismatch rather than truncating or padding either operand.
  - Keys generated with GenKey or GenSingleKey come from the OS entropy pool.
*/
package xor
