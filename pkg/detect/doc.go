/*
Package detect recovers single-byte XOR keys by brute force.

# How it works:

Every key in the byte range is applied to the input with xor.SingleByte, and the result is classified as printable ASCII text or not.
Each key that produces printable text is reported as a Candidate, in ascending key order.
Plausibility is binary here: a Candidate is never preferred over another because of letter frequencies.

# Printable text:

The default allow-list is space (0x20) through tilde (0x7e), inclusive.
Newline, carriage return, and tab are only accepted when the AllowWhitespace option is used.
DEL (0x7f) and anything outside of 7-bit ASCII is never accepted.

# Ranking:

Score, Rank, and Best apply a simple English letter frequency measure on top of the candidates for callers that want a single answer.
This is a heuristic, and short inputs may rank an incorrect candidate first.
*/
package detect
