/*
Package codec converts between raw bytes and their hexadecimal or Base64 text forms.

Both codecs operate on complete in-memory values, and decoding never returns partial output.
A malformed input is reported with ErrInvalidLength or ErrInvalidCharacter, which may be matched with errors.Is.

# Hex:

HexEncode always emits lowercase digits, two per byte with the high nibble first.
HexDecode accepts upper and lower case digits, but the input must have an even length.

# Base64:

The standard alphabet (A-Z, a-z, 0-9, '+', '/') is used with RFC 4648 padding.
Encoded output is always a multiple of 4 characters, ending in zero, one, or two '=' characters.
The '=' character is only accepted as trailing padding when decoding.
*/
package codec
