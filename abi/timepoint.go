package abi

import "time"

// EncodeTimePointSec writes the whole number of seconds since the Unix
// epoch (UTC) as a u32 (spec §3, §4.3).
func EncodeTimePointSec(t time.Time, dst []byte) []byte {
	return EncodeU32(uint32(t.Unix()), dst)
}

// DecodeTimePointSec reads a time_point_sec from the front of b.
func DecodeTimePointSec(b []byte) (time.Time, int, error) {
	secs, n, err := DecodeU32(b)
	if err != nil {
		return time.Time{}, 0, err
	}
	return time.Unix(int64(secs), 0).UTC(), n, nil
}

// EncodeTimePoint writes the whole number of milliseconds since the Unix
// epoch (UTC) as a u64, flooring any sub-millisecond remainder.
func EncodeTimePoint(t time.Time, dst []byte) []byte {
	millis := t.Unix()*1000 + int64(t.Nanosecond())/int64(time.Millisecond)
	return EncodeU64(uint64(millis), dst)
}

// DecodeTimePoint reads a time_point from the front of b.
func DecodeTimePoint(b []byte) (time.Time, int, error) {
	millis, n, err := DecodeU64(b)
	if err != nil {
		return time.Time{}, 0, err
	}
	secs := int64(millis) / 1000
	rem := int64(millis) % 1000
	return time.Unix(secs, rem*int64(time.Millisecond)).UTC(), n, nil
}
