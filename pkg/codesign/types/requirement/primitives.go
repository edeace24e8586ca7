package requirement

import "encoding/binary"

func readUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, truncated(4, len(data))
	}
	return binary.BigEndian.Uint32(data[:4]), data[4:], nil
}

func readInt32(data []byte) (int32, []byte, error) {
	v, rest, err := readUint32(data)
	if err != nil {
		return 0, nil, err
	}
	return int32(v), rest, nil
}

func readInt64(data []byte) (int64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, truncated(8, len(data))
	}
	return int64(binary.BigEndian.Uint64(data[:8])), data[8:], nil
}

// roundUp4 rounds n up to the next multiple of 4.
func roundUp4(n int) int {
	if rem := n % 4; rem != 0 {
		return n + (4 - rem)
	}
	return n
}

// readBlock reads a 4-byte big-endian length L followed by L bytes of
// payload, then 0-3 bytes of alignment padding so the total consumed is a
// multiple of 4. Padding bytes are skipped without being inspected.
func readBlock(data []byte) (value []byte, rest []byte, err error) {
	length, data, err := readUint32(data)
	if err != nil {
		return nil, nil, err
	}
	n := int(length)
	if len(data) < n {
		return nil, nil, truncated(n, len(data))
	}
	value = data[:n]
	consumed := roundUp4(n)
	if len(data) < consumed {
		return nil, nil, truncated(consumed, len(data))
	}
	return value, data[consumed:], nil
}

// readRawBlock reads a 4-byte big-endian length L followed by L bytes of
// payload with no trailing alignment padding. Used for the digest payloads
// of AnchorCertificateHash and CodeDirectoryHash, which are not padded on
// the wire even though every other length-prefixed block is.
func readRawBlock(data []byte) (value []byte, rest []byte, err error) {
	length, data, err := readUint32(data)
	if err != nil {
		return nil, nil, err
	}
	n := int(length)
	if len(data) < n {
		return nil, nil, truncated(n, len(data))
	}
	return data[:n], data[n:], nil
}
