// Package safeprime computes safe primes, i.e. primes of the form 2q+1 where q is also prime.
package safeprime

import (
	"crypto/rand"
	"runtime"
	"sync"

	"github.com/digitalid/cryptography/big"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

// ErrBitsize is returned for bit sizes too small to hold a safe prime.
var ErrBitsize = errors.New("safe primes need a bit size of at least 3")

// GenerateConcurrent generates safe primes on all CPU cores until the stop
// channel receives a struct or is closed. If an error is encountered,
// generation is stopped in all goroutines and the error is sent on the second
// return parameter.
func GenerateConcurrent(bitsize int, stop chan struct{}) (<-chan *big.Int, <-chan error) {
	count := runtime.GOMAXPROCS(0)
	ints := make(chan *big.Int, count)
	errs := make(chan error, count)

	// A single struct{} on stop would reach only one goroutine, so all of
	// them listen on stopped, which is closed exactly once.
	stopped := make(chan struct{})
	var once sync.Once
	halt := func() { once.Do(func() { close(stopped) }) }
	go func() {
		select {
		case <-stop:
			halt()
		case <-stopped:
		}
	}()

	for i := 0; i < count; i++ {
		go func() {
			for {
				x, err := Generate(bitsize, stopped)
				if err != nil {
					errs <- err
					halt()
					return
				}
				if x == nil { // stopped
					return
				}
				select {
				case <-stopped:
					return
				case ints <- x:
				}
			}
		}()
	}

	return ints, errs
}

// GeneratePair returns two distinct safe primes of the given size, generated
// on all CPU cores.
func GeneratePair(bitsize int) (*big.Int, *big.Int, error) {
	if bitsize < 3 {
		return nil, nil, ErrBitsize
	}
	stop := make(chan struct{})
	defer close(stop)
	ints, errs := GenerateConcurrent(bitsize, stop)

	var p *big.Int
	for {
		select {
		case x := <-ints:
			if p == nil {
				p = x
				continue
			}
			if x.Cmp(p) == 0 {
				continue
			}
			Logger.Debugf("generated safe primes of %d bits", bitsize)
			return p, x, nil
		case err := <-errs:
			return nil, nil, errors.WrapPrefix(err, "safe prime generation failed", 0)
		}
	}
}

// Generate a safe prime of the given size, using the fact that:
//     If q is prime and 2^(2q) = 1 mod (2q+1), then 2q+1 is a safe prime.
// We take a random bigint q; if the above formula holds and q is prime, then we return 2q+1.
// (See https://www.ijipbangalore.org/abstracts_2(1)/p5.pdf and
// https://groups.google.com/group/sci.crypt/msg/34c4abf63568a8eb)
//
// Sending a struct{} on stop or closing it makes Generate return nil, nil.
// A nil stop channel cannot cancel.
func Generate(bitsize int, stop <-chan struct{}) (*big.Int, error) {
	if bitsize < 3 {
		return nil, ErrBitsize
	}
	var (
		one        = big.NewInt(1)
		max        = new(big.Int).Lsh(one, uint(bitsize)) // 2^bitsize, len bitsize+1
		twoq       = new(big.Int)
		twoqone    = new(big.Int)
		twoexptwoq = new(big.Int)
		q          *big.Int
		bitlen     int
		err        error
		i          int
	)

	for {
		i++
		if stop != nil && i%1000 == 0 {
			select {
			case <-stop:
				return nil, nil
			default:
			}
		}

		if q, err = big.RandInt(rand.Reader, max); err != nil {
			return nil, err
		}

		bitlen = q.BitLen() // q < max = 2^bitsize, so bitlen <= bitsize

		if q.Bit(0) != uint(1) || // q is not odd
			bitlen < bitsize-1 { // q is too small
			continue
		}

		// 2q+1 must have exactly bitsize bits, so q needs bitsize-1 bits.
		if bitlen == bitsize {
			q.Rsh(q, 1)
			if q.Bit(0) != uint(1) {
				continue
			}
		}

		twoq.Lsh(q, 1)
		twoqone.Add(twoq, one)
		twoexptwoq.Exp(two, twoq, twoqone) // 2^(2q) mod (2q+1)

		if twoexptwoq.Cmp(one) == 0 && q.ProbablyPrime(40) {
			break
		}
	}

	if !ProbablySafePrime(twoqone, 40) {
		return nil, errors.New("safe prime generation returned non-safeprime")
	}
	return twoqone, nil
}

var two = big.NewInt(2)

// ProbablySafePrime reports whether x is probably safe prime, by calling big.Int.ProbablyPrime(n)
// on x as well as on (x-1)/2.
func ProbablySafePrime(x *big.Int, n int) bool {
	if x.Cmp(two) <= 0 {
		return false
	}
	if !x.ProbablyPrime(n) {
		return false
	}
	y := new(big.Int).Rsh(x, 1)
	return y.ProbablyPrime(n)
}
