package vault

import (
	"encoding/json"
	"time"

	"github.com/iov-one/vault/errors"
)

// UnixTime is a point in time in seconds since the epoch. Models and
// messages use it instead of time.Time, as block time has seconds
// precision only.
type UnixTime int64

// AsUnixTime drops the sub-second part of t.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// BlockUnixTime returns the block time of the current call.
func BlockUnixTime(ctx Context) (UnixTime, error) {
	now, err := BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return AsUnixTime(now), nil
}

// Time returns the same moment as time.Time in UTC.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// String formats t as time.Time does.
func (t UnixTime) String() string {
	return t.Time().String()
}

// Validate returns an error for a moment before the epoch.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrInput, "time before epoch")
	}
	return nil
}

// UnmarshalJSON accepts a number of seconds or an RFC 3339 string, which is
// easier to write in a genesis file.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err != nil {
		var stdtime time.Time
		if err := json.Unmarshal(raw, &stdtime); err != nil {
			return errors.Wrap(errors.ErrInput, "invalid time format")
		}
		unix = stdtime.Unix()
	}
	parsed := UnixTime(unix)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}
