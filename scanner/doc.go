/*
Package scanner converts Unicode text to MacRoman codes with a longest-match scan.

Encode is the entry point. It returns an Encoder, a lazy and one-shot
producer of steps: nothing is looked up before the first call to Next, and
once Next has reported the end of input, the Encoder stays exhausted.

	enc := scanner.Encode("café")
	for step, ok := enc.Next(); ok; step, ok = enc.Next() {
		if code, ok := step.Outcome.Code(); ok {
			… // draw glyph #code
		} else {
			… // apply a substitution policy
		}
	}

Every scalar value of the input ends up in exactly one step. A base letter
followed by a combining mark is folded into a single step whenever MacRoman
has a precomposed code for it. Scalar values without a code are reported as
unmappable steps of their own, and scanning continues with the next scalar
value. Scanning never fails.

NewStreamEncoder provides the same steps for input from an io.RuneReader,
for texts which should never be held in memory as a whole.

An Encoder is not safe for concurrent use. Any number of Encoders may run
concurrently, as the mapping table is immutable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner
