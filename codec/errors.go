package codec

import "errors"

// ErrUnexpectedEOF is returned when decoding a term would read past
// the end of the input buffer.
var ErrUnexpectedEOF = errors.New("codec: unexpected end of input")

// ErrMalformedFraming is returned when an extended format's inner
// term violates its shape requirement — a list length prefix that
// does not decode to a non-negative Integer, for example.
var ErrMalformedFraming = errors.New("codec: malformed framing")
