// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// generateCode walks the located segments in source order and produces
// the final byte stream. Every identifier is resolved against the
// completed Pass-1 symbol table; nothing here ever changes a segment's
// size, since that was already fixed during layout.
func generateCode(segments []segment, labels map[string]int) ([]byte, error) {
	var out []byte
	for _, seg := range segments {
		switch seg.kind {
		case segInstruction:
			b, err := encodeInstruction(seg, labels)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)

		case segData:
			b, err := encodeData(seg, labels)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)

		case segReserve:
			// ".res" only advances the location counter during layout; it
			// contributes no bytes to the output stream.

		case segAlign:
			out = append(out, make([]byte, seg.size)...)

		default:
			return nil, newError(kindInternal, seg.line, "unhandled segment kind")
		}
	}
	return out, nil
}

func encodeInstruction(seg segment, labels map[string]int) ([]byte, error) {
	operandBytes, err := encodeOperand(seg.variant, seg.operand, seg.addr, labels)
	if err != nil {
		return nil, err
	}
	b := append([]byte{seg.variant.Opcode}, operandBytes...)
	if len(b) != int(seg.variant.Length) {
		return nil, newError(kindInternal, seg.line,
			"encoded length %d disagrees with located length %d for '%s'",
			len(b), seg.variant.Length, seg.mnemonic)
	}
	return b, nil
}

func encodeData(seg segment, labels map[string]int) ([]byte, error) {
	hi := int64(1)<<(8*uint(seg.width)) - 1
	out := make([]byte, 0, len(seg.items)*seg.width)
	for _, item := range seg.items {
		if item.isLiteral {
			out = append(out, item.lit)
			continue
		}
		n, err := item.val.resolve(labels)
		if err != nil {
			return nil, err
		}
		if err := checkRange(item.val.text, n, 0, hi, "data"); err != nil {
			return nil, err
		}
		out = append(out, toBytes(seg.width, int(n))...)
	}
	return out, nil
}
