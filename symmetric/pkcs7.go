package symmetric

import "crypto/subtle"

// pad appends PKCS#7 padding to data, always adding at least one byte.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// unpad strips PKCS#7 padding from data, whose length must be a positive
// multiple of blockSize.
func unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidEncoding
	}
	good := 1
	for _, b := range data[len(data)-n:] {
		good &= subtle.ConstantTimeByteEq(b, byte(n))
	}
	if good != 1 {
		return nil, ErrInvalidEncoding
	}
	return data[:len(data)-n], nil
}
