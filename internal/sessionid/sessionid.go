// Package sessionid names practice sessions with time-sortable identifiers:
// a UUIDv7 (48-bit millisecond timestamp, then random bits) written as 26
// characters of Crockford base32.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

// Crockford's base32 alphabet
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID: 128 bits plus two leading zero bits.
const Length = 26

// ID identifies one practice session.
type ID string

// New creates an ID stamped with now. Random bits come from entropy, or from
// crypto/rand when entropy is nil.
func New(now time.Time, entropy io.Reader) (ID, error) {
	if entropy == nil {
		entropy = rand.Reader
	}

	var uuid [16]byte
	ms := now.UnixMilli()
	for i := range 6 {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	if _, err := io.ReadFull(entropy, uuid[6:]); err != nil {
		return "", fmt.Errorf("reading entropy: %w", err)
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return ID(encode(uuid)), nil
}

// MustNew is New with crypto/rand, panicking if it fails.
func MustNew(now time.Time) ID {
	id, err := New(now, nil)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse validates s and returns it as an ID. Upper case is accepted.
func Parse(s string) (ID, error) {
	s = strings.ToLower(s)
	if len(s) != Length {
		return "", fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(s))
	}
	// the first character only carries three bits
	if s[0] > '7' {
		return "", fmt.Errorf("session ID first character must be 0-7, got %c", s[0])
	}
	for i := range len(s) {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return "", fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return ID(s), nil
}

// Time returns the creation time encoded in the ID, to the millisecond.
func (id ID) Time() time.Time {
	uuid := decode(string(id))
	var ms int64
	for i := range 6 {
		ms = ms<<8 | int64(uuid[i])
	}
	return time.UnixMilli(ms)
}

// Short returns the last eight characters, enough to tell sessions apart in
// logs.
func (id ID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[len(id)-8:])
}

func (id ID) String() string {
	return string(id)
}

// encode writes the 128 bits of data most significant first, after two zero
// pad bits, five bits per character.
func encode(data [16]byte) string {
	out := make([]byte, Length)
	for i := range out {
		var value byte
		for j := range 5 {
			value = value<<1 | bit(data, 5*i+j-2)
		}
		out[i] = alphabet[value]
	}
	return string(out)
}

func decode(s string) [16]byte {
	var data [16]byte
	if len(s) != Length {
		return data
	}
	for k := range 128 {
		pos := k + 2
		value := strings.IndexByte(alphabet, s[pos/5])
		if value < 0 {
			return [16]byte{}
		}
		if value>>(4-pos%5)&1 == 1 {
			data[k/8] |= 1 << (7 - k%8)
		}
	}
	return data
}

// bit returns bit k of data counting from the most significant; negative k
// is a pad bit.
func bit(data [16]byte, k int) byte {
	if k < 0 {
		return 0
	}
	return data[k/8] >> (7 - k%8) & 1
}
