// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// CookieLength is the fixed length of a reservation cookie.
const CookieLength = 48

// minCookieChar is the lowest byte value a cookie may contain. With
// moduli capped at 89, every byte lands in [33, 121], all printable.
const minCookieChar = 33

// cookiePrimes holds one large prime per cookie byte position.
var cookiePrimes = [CookieLength]uint64{
	15485863, 49979687, 86028121,
	104395303, 122949829, 160481183,
	160481219, 198491317, 198491329,
	236887691, 256203161, 256203221,
	295075147, 295075153, 314606869,
	314606891, 334214459, 334214467,
	353868013, 353868019, 373587883,
	373587911, 393342739, 393342743,
	413158511, 413158523, 433024223,
	433024253, 452930459, 452930477,
	472882027, 472882049, 492876847,
	492876863, 512927357, 512927377,
	533000389, 533000401, 553105243,
	553105253, 573259391, 573259433,
	593441843, 593441861, 613651349,
	613651369, 633910099, 633910111,
}

// cookieModuli holds the 24 primes up to 89; byte positions 2i and
// 2i+1 share modulus i.
var cookieModuli = [CookieLength / 2]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89,
}

// Cookie is the 48-byte bearer token handed out with a reservation
// and required to redeem it. The derivation is deterministic in the
// reservation id and keeps every byte printable. It is an anti-guess
// measure, not a cryptographic one: the goal is that enumerating a
// small space cannot hit another client's cookie.
type Cookie [CookieLength]byte

// NewCookie derives the cookie for a reservation id. Byte i is
// ((id * cookiePrimes[i]) mod cookieModuli[i/2]) + 33.
func NewCookie(reservationID uint32) Cookie {
	var cookie Cookie
	for i := range cookie {
		cookie[i] = byte((uint64(reservationID)*cookiePrimes[i])%cookieModuli[i/2]) + minCookieChar
	}
	return cookie
}
